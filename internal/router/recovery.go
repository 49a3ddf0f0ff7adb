package router

import "fmt"

// panicError carries a recovered panic value into the failure log
type panicError struct {
	value any
}

func (p panicError) Error() string {
	return fmt.Sprintf("panic: %v", p.value)
}
