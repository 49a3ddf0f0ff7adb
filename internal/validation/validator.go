package validation

import (
	"errors"
	"reflect"
	"strings"

	"health-intel-backend/internal/apperror"
	"health-intel-backend/internal/models"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/shopspring/decimal"
)

// Validator checks write payloads against the rules declared in their
// validate tags. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func New() (*Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by the name clients send
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	validate.RegisterCustomTypeFunc(nullDecimalValue, decimal.NullDecimal{})
	validate.RegisterCustomTypeFunc(dateValue, models.Date{})

	english := en.New()
	trans, _ := ut.New(english, english).GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Validator{validate: validate, trans: trans}, nil
}

// MustNew is New for process start-up, where a failure is a programming error
func MustNew() *Validator {
	v, err := New()
	if err != nil {
		panic(err)
	}
	return v
}

// Struct validates payload. Violations come back as a single BadRequest
// naming every offending field.
func (v *Validator) Struct(payload any) error {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.Internal(err)
	}

	phrases := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		phrases = append(phrases, fe.Translate(v.trans))
	}
	return apperror.BadRequest(strings.Join(phrases, "; "))
}

func nullDecimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.NullDecimal); ok && d.Valid {
		f, _ := d.Decimal.Float64()
		return f
	}
	return nil
}

func dateValue(field reflect.Value) any {
	if d, ok := field.Interface().(models.Date); ok && !d.IsZero() {
		return d.Time
	}
	return nil
}
