// Package pgutil holds the conversions shared by the gorm repositories.
package pgutil

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ForUpdate locks the selected rows until the transaction ends. Dialects
// without row locks drop the clause.
var ForUpdate = clause.Locking{Strength: "UPDATE"}

// TranslateError maps constraint violations onto the error taxonomy. It
// expects a connection opened with TranslateError enabled.
func TranslateError(err error, paramName string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.NewConflictErrorWithCause(paramName, err)
	default:
		return err
	}
}

// NotFound turns gorm.ErrRecordNotFound into an ObjectNotFoundError.
func NotFound(err error, paramName string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(paramName, id)
	}
	return err
}

func Money(d decimal.Decimal) (kernel.Money, error) {
	return kernel.NewMoney(d.Round(kernel.MoneyScale))
}

func UUID(raw uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromRaw(raw)
}

func UUIDPtr(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromRaw(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func RawPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Raw()
	return &raw
}
