package models

// StatusPending is the initial status of every stored reservation.
const StatusPending = "pending"

// Reservation is one persisted booking request.
type Reservation struct {
	ID      string `bson:"id" json:"id"`
	Date    string `bson:"date" json:"date"` // YYYY-MM-DD
	Time    string `bson:"time" json:"time"` // one of the fixed slots, HH:MM
	Phone   string `bson:"phone" json:"phone"`
	Content string `bson:"content" json:"content"`
	Status  string `bson:"status" json:"status"`
}

// ReservationRequest is the submission payload from the booking form.
type ReservationRequest struct {
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// SlotAvailability is the slot validator output for a proposed date.
type SlotAvailability struct {
	Times    []string `json:"times"`
	Disabled bool     `json:"disabled"`
	Reason   string   `json:"reason,omitempty"`
}
