// File: services/reservation/interface.go
package reservation

import (
	"context"
	"errors"
	"time"

	"innocurve/database/repository/reservation"
	"innocurve/models"
)

var (
	// ErrInvalidDate reports an unparseable proposed date.
	ErrInvalidDate = errors.New("invalid reservation date")
	// ErrInvalidSlot reports a disabled date or a time outside the bookable set.
	ErrInvalidSlot = errors.New("slot not available")
	// ErrDuplicateReservation reports an existing (date, time, phone) triple.
	ErrDuplicateReservation = errors.New("reservation already exists")
)

// Fixed user-facing result messages.
const (
	MsgReserved     = "예약이 완료되었습니다. 확인 후 연락드리겠습니다."
	MsgDuplicate    = "이미 동일한 예약이 존재합니다."
	MsgInvalidSlot  = "선택하신 날짜와 시간에는 예약할 수 없습니다."
	MsgSubmitFailed = "예약 처리 중 오류가 발생했습니다."
)

// ReservationService validates slots and persists booking requests.
type ReservationService interface {
	AvailableSlots(date string) (models.SlotAvailability, error)
	Submit(ctx context.Context, req models.ReservationRequest) (*models.Reservation, error)
}

// DefaultReservationService is the calendar-rule implementation.
type DefaultReservationService struct {
	Repo reservationRepo.ReservationRepository

	// Now is the clock used for past-slot filtering; defaults to time.Now.
	Now func() time.Time
}

func NewDefaultReservationService(repo reservationRepo.ReservationRepository) *DefaultReservationService {
	return &DefaultReservationService{
		Repo: repo,
		Now:  time.Now,
	}
}
