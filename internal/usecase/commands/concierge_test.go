//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"hotel-concierge/internal/domain/quote"
	"hotel-concierge/internal/domain/reservation"
	"hotel-concierge/internal/infra"
	"hotel-concierge/internal/pkg/clock"
	"hotel-concierge/internal/pkg/errs"
	"hotel-concierge/internal/usecase/commands"
	"hotel-concierge/tests/common/builder"
	commandsmock "hotel-concierge/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ConciergeCommandsTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockReservations *commandsmock.MockReservationStore
	mockLedger       *commandsmock.MockQuoteLedger
	mockPayments     *commandsmock.MockPaymentGateway
	clock            *clock.MockClock
	usecase          commands.ConciergeCommands
}

func (s *ConciergeCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReservations = commandsmock.NewMockReservationStore(s.mockCtrl)
	s.mockLedger = commandsmock.NewMockQuoteLedger(s.mockCtrl)
	s.mockPayments = commandsmock.NewMockPaymentGateway(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.usecase = commands.NewConciergeCommands(
		s.mockReservations,
		s.mockLedger,
		s.mockPayments,
		&quote.FixedPricePolicy{Price: 42},
		s.clock,
		logger,
	)
}

func (s *ConciergeCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestConciergeCommandsSuite(t *testing.T) {
	suite.Run(t, new(ConciergeCommandsTestSuite))
}

// ================================================================================
// TestQuoteAddBreakfast
// ================================================================================

func (s *ConciergeCommandsTestSuite) TestQuoteAddBreakfast() {
	ctx := context.Background()

	s.Run("success: issues a quote bound to the reservation", func() {
		res := builder.NewReservationBuilder().Build()
		s.mockReservations.EXPECT().FindByNumber(gomock.Any(), "HR-2024-001").Return(res, nil)

		var stored *quote.Quote
		s.mockLedger.EXPECT().Store(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q *quote.Quote) error {
				stored = q
				return nil
			})

		result, err := s.usecase.QuoteAddBreakfast(ctx, "HR-2024-001")
		require.NoError(s.T(), err)
		require.NotNil(s.T(), result.Quote)
		s.False(result.AlreadyIncluded)

		s.Equal(stored, result.Quote)
		s.Equal(42, result.Quote.Amount)
		s.Equal("GBP", result.Quote.Currency)
		s.Equal("HR-2024-001", result.Quote.ReservationNumber)
		s.Equal(s.clock.Now(), result.Quote.CreatedAt)
	})

	s.Run("success: trims reservation number before lookup", func() {
		res := builder.NewReservationBuilder().Build()
		s.mockReservations.EXPECT().FindByNumber(gomock.Any(), "HR-2024-001").Return(res, nil)
		s.mockLedger.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.usecase.QuoteAddBreakfast(ctx, "  HR-2024-001  ")
		require.NoError(s.T(), err)
		s.Equal("HR-2024-001", result.Quote.ReservationNumber)
	})

	s.Run("no-op: breakfast already included issues no quote", func() {
		res := builder.NewReservationBuilder().WithBreakfast().Build()
		s.mockReservations.EXPECT().FindByNumber(gomock.Any(), "HR-2024-002").Return(res, nil)

		result, err := s.usecase.QuoteAddBreakfast(ctx, "HR-2024-002")
		require.NoError(s.T(), err)
		s.True(result.AlreadyIncluded)
		s.Nil(result.Quote)
	})

	s.Run("error: blank reservation number", func() {
		_, err := s.usecase.QuoteAddBreakfast(ctx, "   ")
		assert.ErrorIs(s.T(), err, commands.ErrInvalidInput)
	})

	s.Run("error: reservation not found", func() {
		s.mockReservations.EXPECT().FindByNumber(gomock.Any(), "HR-9999-999").
			Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := s.usecase.QuoteAddBreakfast(ctx, "HR-9999-999")
		assert.ErrorIs(s.T(), err, commands.ErrReservationNotFound)
	})

	s.Run("error: reservation store failure", func() {
		s.mockReservations.EXPECT().FindByNumber(gomock.Any(), "HR-2024-001").
			Return(nil, infra.RepositoryError{Kind: infra.KindDBFailure})

		_, err := s.usecase.QuoteAddBreakfast(ctx, "HR-2024-001")
		assert.ErrorIs(s.T(), err, commands.ErrReservationStoreFailed)
	})

	s.Run("error: ledger store failure", func() {
		res := builder.NewReservationBuilder().Build()
		s.mockReservations.EXPECT().FindByNumber(gomock.Any(), "HR-2024-001").Return(res, nil)
		s.mockLedger.EXPECT().Store(gomock.Any(), gomock.Any()).Return(errs.New("redis down"))

		_, err := s.usecase.QuoteAddBreakfast(ctx, "HR-2024-001")
		assert.ErrorIs(s.T(), err, commands.ErrQuoteStoreFailed)
	})
}

// ================================================================================
// TestConfirmAddBreakfast
// ================================================================================

func (s *ConciergeCommandsTestSuite) TestConfirmAddBreakfast() {
	ctx := context.Background()

	s.Run("success: charges, amends and consumes the quote", func() {
		res := builder.NewReservationBuilder().Build()
		q := builder.NewQuoteBuilder().Build()
		updated := builder.NewReservationBuilder().WithAmendment("py_abc123", reservation.Amendment{
			Type:      reservation.AmendmentAddBreakfast,
			Amount:    q.Amount,
			Currency:  q.Currency,
			QuoteID:   q.ID,
			Timestamp: s.clock.Now(),
		}).Build()

		s.mockReservations.EXPECT().FindByNumber(gomock.Any(), "HR-2024-001").Return(res, nil)
		s.mockLedger.EXPECT().GetAndValidate(gomock.Any(), q.ID, "HR-2024-001").Return(q, nil)
		s.mockPayments.EXPECT().Charge(gomock.Any(), commands.PaymentCharge{
			ReservationNumber: "HR-2024-001",
			Amount:            q.Amount,
			Currency:          q.Currency,
			Description:       "Add breakfast to reservation",
			QuoteID:           q.ID,
		}).Return("py_abc123", nil)
		s.mockReservations.EXPECT().
			ApplyAmendment(gomock.Any(), "HR-2024-001", "py_abc123", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, a reservation.Amendment) (*reservation.Reservation, error) {
				s.Equal(reservation.AmendmentAddBreakfast, a.Type)
				s.Equal(q.Amount, a.Amount)
				s.Equal(q.ID, a.QuoteID)
				s.Equal(s.clock.Now(), a.Timestamp)
				return updated, nil
			})
		s.mockLedger.EXPECT().Consume(gomock.Any(), q.ID).Return(nil)

		result, err := s.usecase.ConfirmAddBreakfast(ctx, "HR-2024-001", q.ID)
		require.NoError(s.T(), err)
		s.False(result.AlreadyIncluded)
		s.Equal("py_abc123", result.PaymentID)
		s.True(result.Reservation.HasBreakfast)
	})

	s.Run("no-op: already applied returns success without charging", func() {
		res := builder.NewReservationBuilder().WithBreakfast().Build()
		s.mockReservations.EXPECT().FindByNumber(gomock.Any(), "HR-2024-002").Return(res, nil)

		result, err := s.usecase.ConfirmAddBreakfast(ctx, "HR-2024-002", "q_0123456789")
		require.NoError(s.T(), err)
		s.True(result.AlreadyIncluded)
		s.Empty(result.PaymentID)
	})

	s.Run("error: blank inputs", func() {
		_, err := s.usecase.ConfirmAddBreakfast(ctx, "", "q_0123456789")
		assert.ErrorIs(s.T(), err, commands.ErrInvalidInput)

		_, err = s.usecase.ConfirmAddBreakfast(ctx, "HR-2024-001", "  ")
		assert.ErrorIs(s.T(), err, commands.ErrInvalidInput)
	})

	s.Run("error: reservation not found", func() {
		s.mockReservations.EXPECT().FindByNumber(gomock.Any(), "HR-9999-999").
			Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := s.usecase.ConfirmAddBreakfast(ctx, "HR-9999-999", "q_0123456789")
		assert.ErrorIs(s.T(), err, commands.ErrReservationNotFound)
	})

	s.Run("error: quote not found or expired", func() {
		res := builder.NewReservationBuilder().Build()
		s.mockReservations.EXPECT().FindByNumber(gomock.Any(), "HR-2024-001").Return(res, nil)
		s.mockLedger.EXPECT().GetAndValidate(gomock.Any(), "q_expired0000", "HR-2024-001").
			Return(nil, quote.ErrNotFound)

		_, err := s.usecase.ConfirmAddBreakfast(ctx, "HR-2024-001", "q_expired0000")
		assert.ErrorIs(s.T(), err, commands.ErrQuoteNotFound)
	})

	s.Run("error: quote bound to another reservation", func() {
		res := builder.NewReservationBuilder().Build()
		s.mockReservations.EXPECT().FindByNumber(gomock.Any(), "HR-2024-001").Return(res, nil)
		s.mockLedger.EXPECT().GetAndValidate(gomock.Any(), "q_0123456789", "HR-2024-001").
			Return(nil, quote.ErrMismatch)

		_, err := s.usecase.ConfirmAddBreakfast(ctx, "HR-2024-001", "q_0123456789")
		assert.ErrorIs(s.T(), err, commands.ErrQuoteMismatch)
	})

	s.Run("error: payment failure applies no amendment and keeps the quote", func() {
		res := builder.NewReservationBuilder().Build()
		q := builder.NewQuoteBuilder().Build()

		s.mockReservations.EXPECT().FindByNumber(gomock.Any(), "HR-2024-001").Return(res, nil)
		s.mockLedger.EXPECT().GetAndValidate(gomock.Any(), q.ID, "HR-2024-001").Return(q, nil)
		s.mockPayments.EXPECT().Charge(gomock.Any(), gomock.Any()).
			Return("", errs.New("card declined"))

		_, err := s.usecase.ConfirmAddBreakfast(ctx, "HR-2024-001", q.ID)
		assert.ErrorIs(s.T(), err, commands.ErrPaymentFailed)
	})

	s.Run("error: update failure after payment is surfaced, quote not consumed", func() {
		res := builder.NewReservationBuilder().Build()
		q := builder.NewQuoteBuilder().Build()

		s.mockReservations.EXPECT().FindByNumber(gomock.Any(), "HR-2024-001").Return(res, nil)
		s.mockLedger.EXPECT().GetAndValidate(gomock.Any(), q.ID, "HR-2024-001").Return(q, nil)
		s.mockPayments.EXPECT().Charge(gomock.Any(), gomock.Any()).Return("py_abc123", nil)
		s.mockReservations.EXPECT().
			ApplyAmendment(gomock.Any(), "HR-2024-001", "py_abc123", gomock.Any()).
			Return(nil, infra.RepositoryError{Kind: infra.KindConflict})

		_, err := s.usecase.ConfirmAddBreakfast(ctx, "HR-2024-001", q.ID)
		assert.ErrorIs(s.T(), err, commands.ErrUpdateFailedAfterPayment)
	})

	s.Run("success: failed consume after commit does not fail the call", func() {
		res := builder.NewReservationBuilder().Build()
		q := builder.NewQuoteBuilder().Build()
		updated := builder.NewReservationBuilder().WithBreakfast().Build()

		s.mockReservations.EXPECT().FindByNumber(gomock.Any(), "HR-2024-001").Return(res, nil)
		s.mockLedger.EXPECT().GetAndValidate(gomock.Any(), q.ID, "HR-2024-001").Return(q, nil)
		s.mockPayments.EXPECT().Charge(gomock.Any(), gomock.Any()).Return("py_abc123", nil)
		s.mockReservations.EXPECT().
			ApplyAmendment(gomock.Any(), "HR-2024-001", "py_abc123", gomock.Any()).
			Return(updated, nil)
		s.mockLedger.EXPECT().Consume(gomock.Any(), q.ID).Return(errs.New("redis down"))

		result, err := s.usecase.ConfirmAddBreakfast(ctx, "HR-2024-001", q.ID)
		require.NoError(s.T(), err)
		s.Equal("py_abc123", result.PaymentID)
	})
}
