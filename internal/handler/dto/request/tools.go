package request

import (
	"strings"
)

type LookupReservationRequest struct {
	ReservationNumber string `json:"reservation_number" binding:"required"`
}

type QuoteAddBreakfastRequest struct {
	ReservationNumber string `json:"reservation_number" binding:"required"`
}

type ConfirmAddBreakfastRequest struct {
	ReservationNumber string `json:"reservation_number" binding:"required"`
	QuoteID           string `json:"quote_id" binding:"required"`
}

func (r LookupReservationRequest) TrimmedNumber() string {
	return strings.TrimSpace(r.ReservationNumber)
}

func (r QuoteAddBreakfastRequest) TrimmedNumber() string {
	return strings.TrimSpace(r.ReservationNumber)
}

func (r ConfirmAddBreakfastRequest) TrimmedNumber() string {
	return strings.TrimSpace(r.ReservationNumber)
}

func (r ConfirmAddBreakfastRequest) TrimmedQuoteID() string {
	return strings.TrimSpace(r.QuoteID)
}
