package service

import (
	"context"
	"time"

	"health-intel-backend/internal/models"

	"github.com/google/uuid"
)

type VisitService struct {
	validator Validator
	visits    hospitalScopedStore[models.Visit]
	now       func() time.Time
}

func NewVisitService(validator Validator, visits hospitalScopedStore[models.Visit]) *VisitService {
	return &VisitService{validator: validator, visits: visits, now: time.Now}
}

// WithClock returns a copy of the service reading the current time from now
func (s *VisitService) WithClock(now func() time.Time) *VisitService {
	clone := *s
	clone.now = now
	return &clone
}

// ScheduleVisit books a pending visit. Walk-ins without a start time start now.
func (s *VisitService) ScheduleVisit(ctx context.Context, req models.CreateVisitRequest) (*models.Visit, error) {
	return createRecord[models.Visit](ctx, s.validator, s.visits, req, func() *models.Visit {
		return req.ToVisit(s.now())
	})
}

func (s *VisitService) GetVisitByID(ctx context.Context, id uuid.UUID) (*models.Visit, error) {
	return findRecord[models.Visit](ctx, s.visits, id, "Visit")
}

func (s *VisitService) GetVisitsByHospital(ctx context.Context, hospitalID uuid.UUID) ([]models.Visit, error) {
	return s.visits.ListByHospital(ctx, hospitalID)
}
