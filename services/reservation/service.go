// File: services/reservation/service.go
package reservation

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"innocurve/models"
	"innocurve/utils"
)

// AvailableSlots returns the slot validator output for a proposed date.
func (s *DefaultReservationService) AvailableSlots(date string) (models.SlotAvailability, error) {
	avail, err := availableSlots(date, s.Now())
	if err != nil {
		return models.SlotAvailability{}, ErrInvalidDate
	}
	return avail, nil
}

// Submit persists a booking request after re-checking the calendar rules and
// the duplicate constraint. The unique index backs up the duplicate check.
func (s *DefaultReservationService) Submit(ctx context.Context, req models.ReservationRequest) (*models.Reservation, error) {
	logger := utils.GetLogger()

	avail, err := availableSlots(req.Date, s.Now())
	if err != nil {
		return nil, ErrInvalidDate
	}
	if avail.Disabled || !containsSlot(avail.Times, req.Time) {
		return nil, ErrInvalidSlot
	}

	existing, err := s.Repo.FindByDateTimePhone(ctx, req.Date, req.Time, req.Phone)
	if err != nil {
		logger.Error("reservation duplicate check failed",
			zap.String("date", req.Date), zap.String("time", req.Time), zap.Error(err))
		return nil, fmt.Errorf("duplicate check: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateReservation
	}

	reservation := models.Reservation{
		Date:    req.Date,
		Time:    req.Time,
		Phone:   req.Phone,
		Content: req.Content,
		Status:  models.StatusPending,
	}
	id, err := s.Repo.Insert(ctx, reservation)
	if err != nil {
		// A concurrent identical submission can slip past the check; the
		// unique index turns it into a duplicate-key error here.
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateReservation
		}
		logger.Error("reservation insert failed",
			zap.String("date", req.Date), zap.String("time", req.Time), zap.Error(err))
		return nil, fmt.Errorf("insert reservation: %w", err)
	}
	reservation.ID = id
	return &reservation, nil
}

func containsSlot(times []string, slot string) bool {
	for _, t := range times {
		if t == slot {
			return true
		}
	}
	return false
}
