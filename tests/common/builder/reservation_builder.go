//go:build unit

package builder

import (
	"time"

	"hotel-concierge/internal/domain/quote"
	"hotel-concierge/internal/domain/reservation"
)

type ReservationBuilder struct {
	res reservation.Reservation
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		res: reservation.Reservation{
			Number:       "HR-2024-001",
			GuestName:    "Anshul Mehta",
			RoomType:     "Deluxe Double",
			CheckIn:      "2026-09-12",
			CheckOut:     "2026-09-15",
			HasBreakfast: false,
		},
	}
}

func (b *ReservationBuilder) WithNumber(number string) *ReservationBuilder {
	b.res.Number = number
	return b
}

func (b *ReservationBuilder) WithBreakfast() *ReservationBuilder {
	b.res.HasBreakfast = true
	return b
}

func (b *ReservationBuilder) WithAmendment(paymentID string, amendment reservation.Amendment) *ReservationBuilder {
	b.res.HasBreakfast = true
	b.res.LastPaymentID = &paymentID
	b.res.LastAmendment = &amendment
	return b
}

func (b *ReservationBuilder) Build() *reservation.Reservation {
	out := b.res
	return &out
}

type QuoteBuilder struct {
	q quote.Quote
}

func NewQuoteBuilder() *QuoteBuilder {
	return &QuoteBuilder{
		q: quote.Quote{
			ID:                "q_0123456789",
			Amount:            42,
			Currency:          "GBP",
			Item:              quote.ItemBreakfast,
			ReservationNumber: "HR-2024-001",
			CreatedAt:         time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		},
	}
}

func (b *QuoteBuilder) WithID(id string) *QuoteBuilder {
	b.q.ID = id
	return b
}

func (b *QuoteBuilder) WithAmount(amount int) *QuoteBuilder {
	b.q.Amount = amount
	return b
}

func (b *QuoteBuilder) WithReservationNumber(number string) *QuoteBuilder {
	b.q.ReservationNumber = number
	return b
}

func (b *QuoteBuilder) WithCreatedAt(t time.Time) *QuoteBuilder {
	b.q.CreatedAt = t
	return b
}

func (b *QuoteBuilder) Build() *quote.Quote {
	out := b.q
	return &out
}
