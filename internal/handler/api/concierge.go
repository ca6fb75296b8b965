package api

import (
	"errors"
	"fmt"
	"net/http"

	reqdto "hotel-concierge/internal/handler/dto/request"
	resdto "hotel-concierge/internal/handler/dto/response"
	"hotel-concierge/internal/usecase/commands"
	"hotel-concierge/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ConciergeHandler struct {
	conciergeCommands  commands.ConciergeCommands
	reservationQueries queries.ReservationQueries
}

func NewConciergeHandler(conciergeCommands commands.ConciergeCommands, reservationQueries queries.ReservationQueries) *ConciergeHandler {
	return &ConciergeHandler{
		conciergeCommands:  conciergeCommands,
		reservationQueries: reservationQueries,
	}
}

// @Summary Look up a reservation
// @Description Look up a hotel reservation by reservation number
// @Tags tools
// @Accept json
// @Produce json
// @Param request body reqdto.LookupReservationRequest true "Lookup request"
// @Success 200 {object} resdto.ToolEnvelope
// @Failure 400 {object} resdto.ToolEnvelope
// @Router /api/tools/lookup_reservation [post]
func (h *ConciergeHandler) LookupReservation(c *gin.Context) {
	const (
		invoking = "Searching reservation"
		invoked  = "Reservation loaded"
	)

	var req reqdto.LookupReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TrimmedNumber() == "" {
		c.JSON(http.StatusBadRequest, resdto.ToolErr("Reservation number is required.", invoking, invoked))
		return
	}
	number := req.TrimmedNumber()

	res, err := h.reservationQueries.Lookup(c.Request.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReservationNotFound):
			msg := fmt.Sprintf("No reservation found for %s.", number)
			// no widget on not-found
			c.JSON(http.StatusOK, resdto.ToolOK(msg, gin.H{"message": msg}, invoking, invoked, false))
		case errors.Is(err, queries.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, resdto.ToolErr("Reservation number is required.", invoking, invoked))
		default:
			c.JSON(http.StatusInternalServerError, resdto.ToolErr("Internal server error.", invoking, invoked))
		}
		return
	}

	msg := fmt.Sprintf("Found reservation %s.", number)
	c.JSON(http.StatusOK, resdto.ToolOK(msg, gin.H{
		"message": msg,
		"data":    gin.H{"reservation": resdto.FromReservation(res)},
	}, invoking, invoked, true))
}

// @Summary Quote breakfast add-on
// @Description Provide a time-limited quote to add breakfast to a reservation
// @Tags tools
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteAddBreakfastRequest true "Quote request"
// @Success 200 {object} resdto.ToolEnvelope
// @Failure 400 {object} resdto.ToolEnvelope
// @Failure 404 {object} resdto.ToolEnvelope
// @Router /api/tools/quote_add_breakfast [post]
func (h *ConciergeHandler) QuoteAddBreakfast(c *gin.Context) {
	const (
		invoking = "Quoting breakfast"
		invoked  = "Breakfast price quoted"
	)

	var req reqdto.QuoteAddBreakfastRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TrimmedNumber() == "" {
		c.JSON(http.StatusBadRequest, resdto.ToolErr("Reservation number is required.", invoking, invoked))
		return
	}
	number := req.TrimmedNumber()

	result, err := h.conciergeCommands.QuoteAddBreakfast(c.Request.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, resdto.ToolErr(fmt.Sprintf("Reservation %s not found.", number), invoking, invoked))
		case errors.Is(err, commands.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, resdto.ToolErr("Reservation number is required.", invoking, invoked))
		default:
			c.JSON(http.StatusInternalServerError, resdto.ToolErr("Internal server error.", invoking, invoked))
		}
		return
	}

	if result.AlreadyIncluded {
		msg := "Breakfast is already included."
		c.JSON(http.StatusOK, resdto.ToolOK(msg, gin.H{
			"message":     msg,
			"reservation": resdto.FromReservation(result.Reservation),
		}, invoking, invoked, true))
		return
	}

	msg := fmt.Sprintf("Breakfast will cost an additional £%d.", result.Quote.Amount)
	c.JSON(http.StatusOK, resdto.ToolOK(msg, gin.H{
		"message":     msg,
		"reservation": resdto.FromReservation(result.Reservation),
		"quote":       resdto.FromQuote(result.Quote),
	}, invoking, invoked, true))
}

// @Summary Confirm breakfast add-on
// @Description Charge the quoted amount and amend the reservation to include breakfast
// @Tags tools
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmAddBreakfastRequest true "Confirm request"
// @Success 200 {object} resdto.ToolEnvelope
// @Failure 400 {object} resdto.ToolEnvelope
// @Failure 404 {object} resdto.ToolEnvelope
// @Failure 409 {object} resdto.ToolEnvelope
// @Failure 502 {object} resdto.ToolEnvelope
// @Router /api/tools/confirm_add_breakfast [post]
func (h *ConciergeHandler) ConfirmAddBreakfast(c *gin.Context) {
	const (
		invoking = "Processing payment"
		invoked  = "Payment complete"
	)

	var req reqdto.ConfirmAddBreakfastRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TrimmedNumber() == "" || req.TrimmedQuoteID() == "" {
		c.JSON(http.StatusBadRequest, resdto.ToolErr("Reservation number and quote id are required.", invoking, invoked))
		return
	}
	number := req.TrimmedNumber()

	result, err := h.conciergeCommands.ConfirmAddBreakfast(c.Request.Context(), number, req.TrimmedQuoteID())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, resdto.ToolErr(fmt.Sprintf("Reservation %s not found.", number), invoking, invoked))
		case errors.Is(err, commands.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, resdto.ToolErr("Reservation number and quote id are required.", invoking, invoked))
		case errors.Is(err, commands.ErrQuoteNotFound):
			c.JSON(http.StatusNotFound, resdto.ToolErr("Quote not found or expired. Please request a new quote.", invoking, invoked))
		case errors.Is(err, commands.ErrQuoteMismatch):
			c.JSON(http.StatusConflict, resdto.ToolErr("Quote does not match this reservation. Please request a new quote.", invoking, invoked))
		case errors.Is(err, commands.ErrPaymentFailed):
			c.JSON(http.StatusBadGateway, resdto.ToolErr("Payment failed. You have not been charged; please try again.", invoking, invoked))
		case errors.Is(err, commands.ErrUpdateFailedAfterPayment):
			c.JSON(http.StatusInternalServerError, resdto.ToolErr("Payment succeeded, but the reservation could not be updated. Our team has been notified.", invoking, invoked))
		default:
			c.JSON(http.StatusInternalServerError, resdto.ToolErr("Internal server error.", invoking, invoked))
		}
		return
	}

	if result.AlreadyIncluded {
		msg := "Breakfast is already included."
		c.JSON(http.StatusOK, resdto.ToolOK(msg, gin.H{
			"message":     msg,
			"reservation": resdto.FromReservation(result.Reservation),
		}, invoking, invoked, true))
		return
	}

	msg := fmt.Sprintf("Payment successful (%s). Breakfast added.", result.PaymentID)
	c.JSON(http.StatusOK, resdto.ToolOK(msg, gin.H{
		"message":             msg,
		"updated_reservation": resdto.FromReservation(result.Reservation),
		"payment_id":          result.PaymentID,
	}, invoking, invoked, true))
}
