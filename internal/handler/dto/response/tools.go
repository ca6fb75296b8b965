package response

import (
	"time"

	"hotel-concierge/internal/domain/quote"
	"hotel-concierge/internal/domain/reservation"

	"github.com/jinzhu/copier"
)

// Widget contract keys understood by the conversational UI host.
const (
	WidgetURI = "ui://widget/reservation.html"

	metaOutputTemplate   = "openai/outputTemplate"
	metaWidgetAccessible = "openai/widgetAccessible"
	metaInvoking         = "openai/toolInvocation/invoking"
	metaInvoked          = "openai/toolInvocation/invoked"
)

type ContentPart struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	URI      string `json:"uri,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// ToolEnvelope is the structured result every tool returns: a human-readable
// content list, a machine payload, and UI metadata.
type ToolEnvelope struct {
	Content           []ContentPart  `json:"content"`
	StructuredContent map[string]any `json:"structuredContent"`
	Meta              map[string]any `json:"_meta"`
}

func widgetMeta(invoking, invoked string) map[string]any {
	meta := map[string]any{
		metaOutputTemplate:   WidgetURI,
		metaWidgetAccessible: true,
	}
	if invoking != "" {
		meta[metaInvoking] = invoking
	}
	if invoked != "" {
		meta[metaInvoked] = invoked
	}
	return meta
}

func ToolOK(message string, structured map[string]any, invoking, invoked string, showWidget bool) *ToolEnvelope {
	var content []ContentPart
	if message != "" {
		content = append(content, ContentPart{Type: "text", Text: message})
	}
	if showWidget {
		content = append(content, ContentPart{Type: "resource", URI: WidgetURI, MimeType: "text/html"})
	}
	return &ToolEnvelope{
		Content:           content,
		StructuredContent: structured,
		Meta:              widgetMeta(invoking, invoked),
	}
}

func ToolErr(message, invoking, invoked string) *ToolEnvelope {
	return &ToolEnvelope{
		Content:           []ContentPart{{Type: "text", Text: message}},
		StructuredContent: map[string]any{"message": message},
		Meta:              widgetMeta(invoking, invoked),
	}
}

type ReservationPayload struct {
	Number        string            `json:"reservation_number"`
	GuestName     string            `json:"guest_name"`
	RoomType      string            `json:"room_type"`
	CheckIn       string            `json:"check_in"`
	CheckOut      string            `json:"check_out"`
	HasBreakfast  bool              `json:"has_breakfast"`
	LastPaymentID *string           `json:"last_payment_id,omitempty"`
	LastAmendment *AmendmentPayload `json:"last_amendment,omitempty"`
}

type AmendmentPayload struct {
	Type      string    `json:"type"`
	Amount    int       `json:"amount"`
	Currency  string    `json:"currency"`
	QuoteID   string    `json:"quote_id"`
	Timestamp time.Time `json:"timestamp"`
}

type QuotePayload struct {
	QuoteID  string `json:"quote_id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Item     string `json:"item"`
}

func FromReservation(res *reservation.Reservation) *ReservationPayload {
	var payload ReservationPayload
	_ = copier.Copy(&payload, res)
	return &payload
}

func FromQuote(q *quote.Quote) *QuotePayload {
	return &QuotePayload{
		QuoteID:  q.ID,
		Amount:   q.Amount,
		Currency: q.Currency,
		Item:     string(q.Item),
	}
}
