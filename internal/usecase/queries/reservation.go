package queries

import (
	"context"

	"hotel-concierge/internal/domain/reservation"
	"hotel-concierge/internal/infra"
	"hotel-concierge/internal/pkg/errs"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrInvalidInput        = errs.New("invalid input")
	ErrReadFailed          = errs.New("reservation read failed")
)

// ReservationReadStore is the read side of the reservation store.
type ReservationReadStore interface {
	FindByNumber(ctx context.Context, number string) (*reservation.Reservation, error)
}

type ReservationQueries interface {
	Lookup(ctx context.Context, reservationNumber string) (*reservation.Reservation, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) Lookup(ctx context.Context, reservationNumber string) (*reservation.Reservation, error) {
	number := reservation.NormalizeNumber(reservationNumber)
	if number == "" {
		return nil, ErrInvalidInput
	}

	res, err := q.store.FindByNumber(ctx, number)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, errs.Mark(err, ErrReadFailed)
	}

	return res, nil
}
