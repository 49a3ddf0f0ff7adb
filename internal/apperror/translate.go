package apperror

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// MsgDuplicate is returned to callers when a uniqueness rule rejects a write
const MsgDuplicate = "This record already exists."

// MsgConstraint is returned to callers when a check rule rejects a write
const MsgConstraint = "The submitted values violate a data constraint."

// MsgStorage is the only storage detail callers ever see for unclassified faults
const MsgStorage = "Database error"

type constraintClass int

const (
	classOther constraintClass = iota
	classUnique
	classCheck
)

// storageOutcomes is the single mapping from constraint class to domain error.
// Anything not listed becomes Internal.
var storageOutcomes = map[constraintClass]struct {
	kind    Kind
	message string
}{
	classUnique: {KindConflict, MsgDuplicate},
	classCheck:  {KindBadRequest, MsgConstraint},
}

var postgresCodes = map[string]constraintClass{
	"23505": classUnique,
	"23514": classCheck,
}

var mysqlCodes = map[uint16]constraintClass{
	1062: classUnique,
	3819: classCheck,
}

var sqliteCodes = map[sqlite3.ErrNoExtended]constraintClass{
	sqlite3.ErrConstraintUnique:     classUnique,
	sqlite3.ErrConstraintPrimaryKey: classUnique,
	sqlite3.ErrConstraintCheck:      classCheck,
}

// FromStorage classifies an error surfaced by the persistence layer.
// It is applied once, where the storage call returns.
func FromStorage(err error) error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	if outcome, ok := storageOutcomes[classify(err)]; ok {
		return &Error{Kind: outcome.kind, Message: outcome.message, Err: err}
	}
	return &Error{Kind: KindInternal, Message: MsgStorage, Err: err}
}

func classify(err error) constraintClass {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return classUnique
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return classCheck
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return postgresCodes[pgErr.Code]
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return mysqlCodes[myErr.Number]
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return sqliteCodes[liteErr.ExtendedCode]
	}

	return classOther
}
