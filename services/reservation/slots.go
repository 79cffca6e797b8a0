// File: services/reservation/slots.go
package reservation

import (
	"time"

	"innocurve/models"
)

// AvailableTimes is the fixed bookable slot set. No 12:00 slot; that hour is
// kept free.
var AvailableTimes = []string{
	"10:00", "11:00", "13:00", "14:00", "15:00", "16:00", "17:00",
}

// Booking window boundaries.
var (
	minReservationDate = time.Date(2025, time.January, 1, 0, 0, 0, 0, seoulLocation())
	maxReservationDate = time.Date(2025, time.December, 31, 0, 0, 0, 0, seoulLocation())
)

// holidays2025 lists the Korean public holidays excluded from booking.
var holidays2025 = map[string]bool{
	"2025-01-01": true, // 신정
	"2025-01-27": true, // 대체공휴일
	"2025-01-28": true, // 설날
	"2025-01-29": true, // 설날
	"2025-01-30": true, // 설날
	"2025-03-01": true, // 삼일절
	"2025-05-05": true, // 어린이날
	"2025-05-15": true, // 석가탄신일
	"2025-06-06": true, // 현충일
	"2025-08-15": true, // 광복절
	"2025-10-03": true, // 개천절
	"2025-10-05": true, // 추석
	"2025-10-06": true, // 추석
	"2025-10-07": true, // 추석
	"2025-10-09": true, // 한글날
	"2025-12-25": true, // 성탄절
}

const disabledDateReason = "주말, 공휴일은 예약이 불가능합니다. 상담이 필요하신 경우 별도로 연락 부탁드립니다."

const dateLayout = "2006-01-02"

func seoulLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}

// availableSlots enumerates the bookable times for a proposed date relative
// to now. A date outside the window, on a weekend, or on a holiday is
// disabled with an empty slot list. For valid dates, slots whose start is
// not strictly after now are filtered out.
func availableSlots(date string, now time.Time) (models.SlotAvailability, error) {
	loc := seoulLocation()
	day, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return models.SlotAvailability{}, err
	}

	if day.Before(minReservationDate) || day.After(maxReservationDate) ||
		day.Weekday() == time.Saturday || day.Weekday() == time.Sunday ||
		holidays2025[date] {
		return models.SlotAvailability{
			Times:    []string{},
			Disabled: true,
			Reason:   disabledDateReason,
		}, nil
	}

	times := make([]string, 0, len(AvailableTimes))
	for _, slot := range AvailableTimes {
		slotTime, err := time.ParseInLocation(dateLayout+" 15:04", date+" "+slot, loc)
		if err != nil {
			continue
		}
		if slotTime.After(now) {
			times = append(times, slot)
		}
	}
	return models.SlotAvailability{Times: times}, nil
}
