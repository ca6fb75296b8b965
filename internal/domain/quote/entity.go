package quote

import (
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("quote not found or expired")
	ErrMismatch = errors.New("quote does not match reservation")
)

// Item is an add-on kind priced and applied through the amendment workflow.
type Item string

const ItemBreakfast Item = "breakfast"

// Currency returns the fixed currency code quotes for this item are priced in.
func (i Item) Currency() string {
	switch i {
	case ItemBreakfast:
		return "GBP"
	default:
		return "GBP"
	}
}

// Quote is a time-bounded price offer bound to a single reservation. It is
// owned by the ledger for the lifetime of the process (or until consumed).
type Quote struct {
	ID                string    `json:"quote_id"`
	Amount            int       `json:"amount"`
	Currency          string    `json:"currency"`
	Item              Item      `json:"item"`
	ReservationNumber string    `json:"reservation_number"`
	CreatedAt         time.Time `json:"created_at"`
}

func New(policy PricePolicy, reservationNumber string, item Item, now time.Time) *Quote {
	return &Quote{
		ID:                newQuoteID(),
		Amount:            policy.PriceFor(item),
		Currency:          item.Currency(),
		Item:              item,
		ReservationNumber: reservationNumber,
		CreatedAt:         now,
	}
}

// Expired reports whether the quote's age exceeds ttl at the given instant.
func (q *Quote) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(q.CreatedAt) > ttl
}

// MatchesReservation compares the bound reservation number against the one
// presented at confirmation time.
func (q *Quote) MatchesReservation(reservationNumber string) bool {
	return q.ReservationNumber == reservationNumber
}

// Quote ids are opaque and must not be guessable from the reservation number
// or time alone; 40 bits of UUID entropy keeps collisions and guessing out of
// reach for a process-lifetime ledger.
func newQuoteID() string {
	u := uuid.New()
	return "q_" + hex.EncodeToString(u[:])[:10]
}
