//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-concierge/internal/handler/api"
	reqdto "hotel-concierge/internal/handler/dto/request"
	resdto "hotel-concierge/internal/handler/dto/response"
	"hotel-concierge/internal/usecase/commands"
	"hotel-concierge/internal/usecase/queries"
	"hotel-concierge/tests/common/builder"
	"hotel-concierge/tests/common/httptest"
	"hotel-concierge/tests/common/testutil"
	commandsmock "hotel-concierge/tests/mock/commands"
	queriesmock "hotel-concierge/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ConciergeHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockConciergeCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ConciergeHandler
}

func (s *ConciergeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockConciergeCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewConciergeHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/tools/lookup_reservation", s.handler.LookupReservation)
	s.router.POST("/api/tools/quote_add_breakfast", s.handler.QuoteAddBreakfast)
	s.router.POST("/api/tools/confirm_add_breakfast", s.handler.ConfirmAddBreakfast)
}

func (s *ConciergeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestConciergeHandlerSuite(t *testing.T) {
	suite.Run(t, new(ConciergeHandlerTestSuite))
}

// ================================================================================
// TestLookupReservation
// ================================================================================

func (s *ConciergeHandlerTestSuite) TestLookupReservation() {
	url := "/api/tools/lookup_reservation"

	s.Run("success: returns reservation with widget", func() {
		res := builder.NewReservationBuilder().Build()
		s.mockQueries.EXPECT().Lookup(gomock.Any(), "HR-2024-001").Return(res, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"reservation_number": "HR-2024-001"})

		var envelope resdto.ToolEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &envelope)
		s.Require().Len(envelope.Content, 2)
		s.Equal("text", envelope.Content[0].Type)
		s.Contains(envelope.Content[0].Text, "Found reservation HR-2024-001.")
		s.Equal("resource", envelope.Content[1].Type)
		s.Equal(resdto.WidgetURI, envelope.Content[1].URI)
		s.Equal(resdto.WidgetURI, envelope.Meta["openai/outputTemplate"])

		data, ok := envelope.StructuredContent["data"].(map[string]any)
		s.Require().True(ok)
		payload, ok := data["reservation"].(map[string]any)
		s.Require().True(ok)
		s.Equal("HR-2024-001", payload["reservation_number"])
		s.Equal("Anshul Mehta", payload["guest_name"])
	})

	s.Run("success: unknown reservation is a 200 without widget", func() {
		s.mockQueries.EXPECT().Lookup(gomock.Any(), "HR-9999-999").
			Return(nil, queries.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"reservation_number": "HR-9999-999"})

		var envelope resdto.ToolEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &envelope)
		s.Require().Len(envelope.Content, 1)
		s.Contains(envelope.Content[0].Text, "No reservation found for HR-9999-999.")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		reqBody := reqdto.LookupReservationRequest{ReservationNumber: "HR-2024-001"}

		tests := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: reservation_number (required)", mutate: testutil.Field("reservation_number", nil)},
			{name: "empty reservation_number", mutate: testutil.Field("reservation_number", "")},
			{name: "whitespace-only reservation_number", mutate: testutil.Field("reservation_number", "   ")},
		}
		for _, tc := range tests {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertToolErrorResponse(s.T(), rec, http.StatusBadRequest, "Reservation number is required.")
			})
		}
	})

	s.Run("error: read failure is a 500", func() {
		s.mockQueries.EXPECT().Lookup(gomock.Any(), "HR-2024-001").
			Return(nil, queries.ErrReadFailed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"reservation_number": "HR-2024-001"})
		httptest.AssertToolErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error.")
	})
}

// ================================================================================
// TestQuoteAddBreakfast
// ================================================================================

func (s *ConciergeHandlerTestSuite) TestQuoteAddBreakfast() {
	url := "/api/tools/quote_add_breakfast"

	s.Run("success: returns quote details", func() {
		res := builder.NewReservationBuilder().Build()
		q := builder.NewQuoteBuilder().Build()
		s.mockCommands.EXPECT().QuoteAddBreakfast(gomock.Any(), "HR-2024-001").
			Return(&commands.QuoteResult{Reservation: res, Quote: q}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"reservation_number": "HR-2024-001"})

		var envelope resdto.ToolEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &envelope)
		s.Require().NotEmpty(envelope.Content)
		s.Contains(envelope.Content[0].Text, "Breakfast will cost an additional £42.")

		payload, ok := envelope.StructuredContent["quote"].(map[string]any)
		s.Require().True(ok)
		s.Equal("q_0123456789", payload["quote_id"])
		s.Equal(float64(42), payload["amount"])
		s.Equal("GBP", payload["currency"])
	})

	s.Run("success: breakfast already included", func() {
		res := builder.NewReservationBuilder().WithBreakfast().Build()
		s.mockCommands.EXPECT().QuoteAddBreakfast(gomock.Any(), "HR-2024-002").
			Return(&commands.QuoteResult{Reservation: res, AlreadyIncluded: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"reservation_number": "HR-2024-002"})

		var envelope resdto.ToolEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &envelope)
		s.Require().NotEmpty(envelope.Content)
		s.Contains(envelope.Content[0].Text, "Breakfast is already included.")
		_, hasQuote := envelope.StructuredContent["quote"]
		s.False(hasQuote)
	})

	s.Run("error: reservation not found", func() {
		s.mockCommands.EXPECT().QuoteAddBreakfast(gomock.Any(), "HR-9999-999").
			Return(nil, commands.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"reservation_number": "HR-9999-999"})
		httptest.AssertToolErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation HR-9999-999 not found.")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		reqBody := reqdto.QuoteAddBreakfastRequest{ReservationNumber: "HR-2024-001"}

		tests := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: reservation_number (required)", mutate: testutil.Field("reservation_number", nil)},
			{name: "whitespace-only reservation_number", mutate: testutil.Field("reservation_number", "   ")},
		}
		for _, tc := range tests {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertToolErrorResponse(s.T(), rec, http.StatusBadRequest, "Reservation number is required.")
			})
		}
	})

	s.Run("error: quote store failure is a 500", func() {
		s.mockCommands.EXPECT().QuoteAddBreakfast(gomock.Any(), "HR-2024-001").
			Return(nil, commands.ErrQuoteStoreFailed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"reservation_number": "HR-2024-001"})
		httptest.AssertToolErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error.")
	})
}

// ================================================================================
// TestConfirmAddBreakfast
// ================================================================================

func (s *ConciergeHandlerTestSuite) TestConfirmAddBreakfast() {
	url := "/api/tools/confirm_add_breakfast"
	validBody := map[string]any{
		"reservation_number": "HR-2024-001",
		"quote_id":           "q_0123456789",
	}

	s.Run("success: returns payment id and updated reservation", func() {
		updated := builder.NewReservationBuilder().WithBreakfast().Build()
		s.mockCommands.EXPECT().ConfirmAddBreakfast(gomock.Any(), "HR-2024-001", "q_0123456789").
			Return(&commands.ConfirmResult{Reservation: updated, PaymentID: "py_abc123"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody)

		var envelope resdto.ToolEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &envelope)
		s.Require().NotEmpty(envelope.Content)
		s.Contains(envelope.Content[0].Text, "Payment successful (py_abc123). Breakfast added.")
		s.Equal("py_abc123", envelope.StructuredContent["payment_id"])

		payload, ok := envelope.StructuredContent["updated_reservation"].(map[string]any)
		s.Require().True(ok)
		s.Equal(true, payload["has_breakfast"])
	})

	s.Run("success: already applied is a no-op 200", func() {
		res := builder.NewReservationBuilder().WithBreakfast().Build()
		s.mockCommands.EXPECT().ConfirmAddBreakfast(gomock.Any(), "HR-2024-001", "q_0123456789").
			Return(&commands.ConfirmResult{Reservation: res, AlreadyIncluded: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody)

		var envelope resdto.ToolEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &envelope)
		s.Require().NotEmpty(envelope.Content)
		s.Contains(envelope.Content[0].Text, "Breakfast is already included.")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		reqBody := reqdto.ConfirmAddBreakfastRequest{
			ReservationNumber: "HR-2024-001",
			QuoteID:           "q_0123456789",
		}

		tests := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: reservation_number (required)", mutate: testutil.Field("reservation_number", nil)},
			{name: "missing field: quote_id (required)", mutate: testutil.Field("quote_id", nil)},
			{name: "whitespace-only quote_id", mutate: testutil.Field("quote_id", "   ")},
		}
		for _, tc := range tests {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertToolErrorResponse(s.T(), rec, http.StatusBadRequest, "Reservation number and quote id are required.")
			})
		}
	})

	s.Run("error taxonomy", func() {
		tests := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{
				name:       "reservation not found",
				err:        commands.ErrReservationNotFound,
				expectCode: http.StatusNotFound,
				expectMsg:  "Reservation HR-2024-001 not found.",
			},
			{
				name:       "quote not found or expired",
				err:        commands.ErrQuoteNotFound,
				expectCode: http.StatusNotFound,
				expectMsg:  "Quote not found or expired.",
			},
			{
				name:       "quote mismatch",
				err:        commands.ErrQuoteMismatch,
				expectCode: http.StatusConflict,
				expectMsg:  "Quote does not match this reservation.",
			},
			{
				name:       "payment failed",
				err:        commands.ErrPaymentFailed,
				expectCode: http.StatusBadGateway,
				expectMsg:  "You have not been charged",
			},
			{
				name:       "update failed after payment",
				err:        commands.ErrUpdateFailedAfterPayment,
				expectCode: http.StatusInternalServerError,
				expectMsg:  "Payment succeeded, but the reservation could not be updated.",
			},
		}
		for _, tc := range tests {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ConfirmAddBreakfast(gomock.Any(), "HR-2024-001", "q_0123456789").
					Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody)
				httptest.AssertToolErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}
