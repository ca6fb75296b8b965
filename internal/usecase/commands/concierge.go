package commands

import (
	"context"
	"log/slog"

	"hotel-concierge/internal/domain/quote"
	"hotel-concierge/internal/domain/reservation"
	"hotel-concierge/internal/infra"
	"hotel-concierge/internal/pkg/clock"
	"hotel-concierge/internal/pkg/errs"

	cr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput             = errs.New("invalid input")
	ErrReservationNotFound      = errs.New("reservation not found")
	ErrQuoteNotFound            = errs.New("quote not found or expired")
	ErrQuoteMismatch            = errs.New("quote does not match reservation")
	ErrPaymentFailed            = errs.New("payment failed")
	ErrUpdateFailedAfterPayment = errs.New("payment captured but reservation update failed")
	ErrQuoteStoreFailed         = errs.New("quote store operation failed")
	ErrReservationStoreFailed   = errs.New("reservation store operation failed")
)

// ReservationStore is the keyed store holding reservation records. Reads are
// by trimmed reservation number; ApplyAmendment must be an atomic
// check-and-patch: it only commits when the breakfast flag is still unset.
type ReservationStore interface {
	FindByNumber(ctx context.Context, number string) (*reservation.Reservation, error)
	ApplyAmendment(ctx context.Context, number string, paymentID string, amendment reservation.Amendment) (*reservation.Reservation, error)
}

// QuoteLedger owns live quotes and their TTL expiry. GetAndValidate never
// consumes; Consume is idempotent.
type QuoteLedger interface {
	Store(ctx context.Context, q *quote.Quote) error
	GetAndValidate(ctx context.Context, quoteID, reservationNumber string) (*quote.Quote, error)
	Consume(ctx context.Context, quoteID string) error
}

// PaymentCharge is the write-side snapshot handed to the gateway.
type PaymentCharge struct {
	ReservationNumber string
	Amount            int
	Currency          string
	Description       string
	QuoteID           string
}

type PaymentGateway interface {
	Charge(ctx context.Context, req PaymentCharge) (string, error)
}

type QuoteResult struct {
	Reservation     *reservation.Reservation
	Quote           *quote.Quote
	AlreadyIncluded bool
}

type ConfirmResult struct {
	Reservation     *reservation.Reservation
	PaymentID       string
	AlreadyIncluded bool
}

type ConciergeCommands interface {
	QuoteAddBreakfast(ctx context.Context, reservationNumber string) (*QuoteResult, error)
	ConfirmAddBreakfast(ctx context.Context, reservationNumber, quoteID string) (*ConfirmResult, error)
}

type conciergeUseCaseImpl struct {
	reservations ReservationStore
	ledger       QuoteLedger
	payments     PaymentGateway
	pricePolicy  quote.PricePolicy
	clock        clock.Clock
	logger       *slog.Logger
}

func NewConciergeCommands(
	reservations ReservationStore,
	ledger QuoteLedger,
	payments PaymentGateway,
	pricePolicy quote.PricePolicy,
	clk clock.Clock,
	logger *slog.Logger,
) ConciergeCommands {
	return &conciergeUseCaseImpl{
		reservations: reservations,
		ledger:       ledger,
		payments:     payments,
		pricePolicy:  pricePolicy,
		clock:        clk,
		logger:       logger,
	}
}

func (c *conciergeUseCaseImpl) QuoteAddBreakfast(ctx context.Context, reservationNumber string) (*QuoteResult, error) {
	number := reservation.NormalizeNumber(reservationNumber)
	if number == "" {
		return nil, ErrInvalidInput
	}

	res, err := c.lookupReservation(ctx, number)
	if err != nil {
		return nil, err
	}

	if res.HasBreakfast {
		return &QuoteResult{Reservation: res, AlreadyIncluded: true}, nil
	}

	q := quote.New(c.pricePolicy, number, quote.ItemBreakfast, c.clock.Now())
	if err := c.ledger.Store(ctx, q); err != nil {
		return nil, errs.Mark(err, ErrQuoteStoreFailed)
	}

	return &QuoteResult{Reservation: res, Quote: q}, nil
}

// ConfirmAddBreakfast drives the amendment state machine: lookup,
// already-applied guard, quote validation, payment, conditional update,
// quote consumption. The quote survives every failure before the update so
// the caller can retry with the same id; it is consumed only once the
// amendment is committed.
func (c *conciergeUseCaseImpl) ConfirmAddBreakfast(ctx context.Context, reservationNumber, quoteID string) (*ConfirmResult, error) {
	number := reservation.NormalizeNumber(reservationNumber)
	qid := reservation.NormalizeNumber(quoteID)
	if number == "" || qid == "" {
		return nil, ErrInvalidInput
	}

	res, err := c.lookupReservation(ctx, number)
	if err != nil {
		return nil, err
	}

	// Already-applied guard runs before any payment call: an amendment that
	// is already on the record must never charge again.
	if res.HasBreakfast {
		return &ConfirmResult{Reservation: res, AlreadyIncluded: true}, nil
	}

	q, err := c.ledger.GetAndValidate(ctx, qid, number)
	if err != nil {
		switch {
		case cr.Is(err, quote.ErrNotFound):
			return nil, errs.Mark(err, ErrQuoteNotFound)
		case cr.Is(err, quote.ErrMismatch):
			return nil, errs.Mark(err, ErrQuoteMismatch)
		default:
			return nil, errs.Mark(err, ErrQuoteStoreFailed)
		}
	}

	paymentID, err := c.payments.Charge(ctx, PaymentCharge{
		ReservationNumber: number,
		Amount:            q.Amount,
		Currency:          q.Currency,
		Description:       "Add breakfast to reservation",
		QuoteID:           q.ID,
	})
	if err != nil {
		// No mutation happened and the quote stays live, so this path is
		// safe to retry with the same quote id.
		return nil, errs.Mark(err, ErrPaymentFailed)
	}

	updated, err := c.reservations.ApplyAmendment(ctx, number, paymentID, reservation.Amendment{
		Type:      reservation.AmendmentAddBreakfast,
		Amount:    q.Amount,
		Currency:  q.Currency,
		QuoteID:   q.ID,
		Timestamp: c.clock.Now(),
	})
	if err != nil {
		// Money has been captured but the record does not reflect it. This
		// must reach an operator, never a silent retry.
		c.logger.Error("payment captured but reservation update failed",
			slog.String("reservation_number", number),
			slog.String("quote_id", q.ID),
			slog.String("payment_id", paymentID),
			slog.Any("error", err),
		)
		return nil, errs.Mark(err, ErrUpdateFailedAfterPayment)
	}

	if err := c.ledger.Consume(ctx, q.ID); err != nil {
		// The amendment is committed; a failed consume only risks a replay
		// that the already-applied guard will short-circuit anyway.
		c.logger.Warn("failed to consume quote after amendment",
			slog.String("quote_id", q.ID),
			slog.Any("error", err),
		)
	}

	return &ConfirmResult{Reservation: updated, PaymentID: paymentID}, nil
}

func (c *conciergeUseCaseImpl) lookupReservation(ctx context.Context, number string) (*reservation.Reservation, error) {
	res, err := c.reservations.FindByNumber(ctx, number)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, errs.Mark(err, ErrReservationStoreFailed)
	}
	return res, nil
}
