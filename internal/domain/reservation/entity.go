package reservation

import (
	"strings"
	"time"
)

const AmendmentAddBreakfast = "add_breakfast"

// Reservation mirrors the record held by the external reservation store. The
// workflow never creates or deletes one, it only applies priced amendments.
type Reservation struct {
	Number        string     `json:"reservation_number"`
	GuestName     string     `json:"guest_name"`
	RoomType      string     `json:"room_type"`
	CheckIn       string     `json:"check_in"`
	CheckOut      string     `json:"check_out"`
	HasBreakfast  bool       `json:"has_breakfast"`
	LastPaymentID *string    `json:"last_payment_id,omitempty"`
	LastAmendment *Amendment `json:"last_amendment,omitempty"`
}

// Amendment is the audit record written alongside a successful paid change.
type Amendment struct {
	Type      string    `json:"type"`
	Amount    int       `json:"amount"`
	Currency  string    `json:"currency"`
	QuoteID   string    `json:"quote_id"`
	Timestamp time.Time `json:"timestamp"`
}

// NormalizeNumber trims a caller-supplied reservation number for comparison.
// An empty result means the input was unusable.
func NormalizeNumber(raw string) string {
	return strings.TrimSpace(raw)
}
