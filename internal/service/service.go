package service

import (
	"context"

	"health-intel-backend/internal/apperror"

	"github.com/google/uuid"
)

// Validator checks a write payload before it reaches storage
type Validator interface {
	Struct(payload any) error
}

// AuditRecorder stores admin actions
type AuditRecorder interface {
	Create(ctx context.Context, adminID *uuid.UUID, action string, details string) error
}

// recordStore is the storage every entity offers
type recordStore[T any] interface {
	Create(ctx context.Context, record *T) error
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
}

// hospitalScopedStore is a recordStore whose rows belong to one hospital
type hospitalScopedStore[T any] interface {
	recordStore[T]
	ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]T, error)
}

// createRecord validates payload, then stores the record built from it
func createRecord[T any](ctx context.Context, v Validator, store recordStore[T], payload any, build func() *T) (*T, error) {
	if err := v.Struct(payload); err != nil {
		return nil, err
	}

	record := build()
	if err := store.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// findRecord turns a missing row into a NotFound naming the entity
func findRecord[T any](ctx context.Context, store recordStore[T], id uuid.UUID, entity string) (*T, error) {
	record, err := store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NotFound(entity + " not found")
	}
	return record, nil
}
