package handlers

import (
	"errors"
	"net/http"

	"innocurve/models"
	"innocurve/services/reservation"
	"innocurve/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReservationHandler serves the booking-form endpoints.
type ReservationHandler struct {
	Service reservation.ReservationService
}

func NewReservationHandler(svc reservation.ReservationService) *ReservationHandler {
	return &ReservationHandler{Service: svc}
}

// GetSlotsHandler returns the bookable times for a proposed date.
func (h *ReservationHandler) GetSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	avail, err := h.Service.AvailableSlots(date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}
	c.JSON(http.StatusOK, avail)
}

// SubmitHandler persists a booking request.
func (h *ReservationHandler) SubmitHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid reservation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "필수 항목을 모두 입력해주세요.",
		})
		return
	}

	res, err := h.Service.Submit(c.Request.Context(), req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": reservation.MsgReserved,
			"id":      res.ID,
		})
	case errors.Is(err, reservation.ErrDuplicateReservation):
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"error":   reservation.MsgDuplicate,
		})
	case errors.Is(err, reservation.ErrInvalidDate), errors.Is(err, reservation.ErrInvalidSlot):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   reservation.MsgInvalidSlot,
		})
	default:
		logger.Error("reservation submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   reservation.MsgSubmitFailed,
		})
	}
}
