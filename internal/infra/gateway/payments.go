package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"hotel-concierge/internal/pkg/config"
	"hotel-concierge/internal/pkg/errs"
	"hotel-concierge/internal/usecase/commands"
)

const (
	tokenPath     = "/v1/security/oauth2/token"
	authorizePath = "/v2/payment/records/authorization"
)

// PaymentClient authorizes charges against the hotel payment API. Any
// failure, transport included, surfaces as an error result; the workflow
// never sees a fault it cannot report.
type PaymentClient struct {
	cfg    config.PaymentConfig
	client *http.Client
	logger *slog.Logger
}

func NewPaymentClient(cfg config.Config, logger *slog.Logger) *PaymentClient {
	return &PaymentClient{
		cfg:    cfg.Payment,
		client: &http.Client{Timeout: cfg.Payment.Timeout},
		logger: logger,
	}
}

// Charge runs the two-call flow: fetch a bearer token, then post the
// authorization. Returns the gateway's payment reference.
func (p *PaymentClient) Charge(ctx context.Context, req commands.PaymentCharge) (string, error) {
	token, err := p.fetchToken(ctx)
	if err != nil {
		return "", errs.Wrap(err, "failed to obtain payment token")
	}

	payload := authorizationPayload{}
	payload.Data.Authorization.OperationContext.TermsAndConditions.CredentialsOnFile.ReuseProof.TraceReference = p.cfg.TraceReference
	payload.Data.Authorization.OperationContext.TermsAndConditions.CredentialsOnFile.InstrumentFilingRequest = "REUSE"
	payload.Data.Authorization.OperationContext.TransactionIntent = "REUSABLE"
	payload.Data.Authorization.OperationContext.InteractionCondition = "ON_FILE"
	payload.Data.Authorization.OperationContext.TransactionInitiator = "MERCHANT"
	payload.Data.Authorization.PointOfInteraction.ReferenceType = "propertyId"
	payload.Data.Authorization.PointOfInteraction.Reference = p.cfg.PropertyID
	payload.Data.Authorization.PurposeOfOperation.Sales = []saleReference{
		{Reference: req.ReservationNumber + "_" + p.cfg.PropertyID, ReferenceType: "ORD"},
	}
	payload.Data.Payee.Code = p.cfg.PayeeCode
	payload.Data.Amount.Value = strconv.Itoa(req.Amount)
	payload.Data.Amount.CurrencyCode = req.Currency
	payload.Data.Method = "CARD"
	payload.Data.Card.VendorCode = p.cfg.CardVendorCode
	payload.Data.Card.TokenizedCardNumber = p.cfg.CardToken
	payload.Data.Card.ExpiryDate = p.cfg.CardExpiry
	payload.Data.Card.HolderName = p.cfg.CardHolderName
	payload.Data.Description = req.Description
	payload.Data.ClientReference = req.QuoteID

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errs.Wrap(err, "failed to encode authorization payload")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+authorizePath, bytes.NewReader(body))
	if err != nil {
		return "", errs.Wrap(err, "failed to build authorization request")
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "*/*")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", errs.Wrap(err, "payment authorization request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.Wrap(err, "failed to read authorization response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		p.logger.Warn("payment authorization rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("quote_id", req.QuoteID),
		)
		return "", errs.Newf("payment authorization rejected with status %d", resp.StatusCode)
	}

	var parsed struct {
		Data struct {
			Reference string `json:"reference"`
		} `json:"data"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", errs.Wrap(err, "failed to decode authorization response")
	}
	if parsed.Data.Reference == "" {
		return "", errs.New("authorization response missing payment reference")
	}

	p.logger.Info("payment authorized",
		slog.String("reference", parsed.Data.Reference),
		slog.String("quote_id", req.QuoteID),
	)

	return parsed.Data.Reference, nil
}

func (p *PaymentClient) fetchToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", p.cfg.ClientID)
	form.Set("client_secret", p.cfg.ClientSecret)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errs.Wrap(err, "failed to build token request")
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", errs.Wrap(err, "token request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errs.Newf("token request rejected with status %d", resp.StatusCode)
	}

	var parsed struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errs.Wrap(err, "failed to decode token response")
	}
	if parsed.AccessToken == "" {
		return "", errs.New("token response missing access token")
	}

	return parsed.AccessToken, nil
}

type saleReference struct {
	Reference     string `json:"reference"`
	ReferenceType string `json:"referenceType"`
}

type authorizationPayload struct {
	Data struct {
		Authorization struct {
			OperationContext struct {
				TermsAndConditions struct {
					CredentialsOnFile struct {
						ReuseProof struct {
							TraceReference string `json:"traceReference"`
						} `json:"reuseProof"`
						InstrumentFilingRequest string `json:"instrumentFilingRequest"`
					} `json:"credentialsOnFile"`
				} `json:"termsAndConditions"`
				TransactionIntent    string `json:"transactionIntent"`
				InteractionCondition string `json:"interactionCondition"`
				TransactionInitiator string `json:"transactionInitiator"`
			} `json:"operationContext"`
			PointOfInteraction struct {
				ReferenceType string   `json:"referenceType"`
				Reference     string   `json:"reference"`
				Location      struct{} `json:"location"`
			} `json:"pointOfInteraction"`
			PurposeOfOperation struct {
				Sales []saleReference `json:"sales"`
			} `json:"purposeOfOperation"`
		} `json:"authorization"`
		Payee struct {
			Code string `json:"code"`
		} `json:"payee"`
		Amount struct {
			Value        string `json:"value"`
			CurrencyCode string `json:"currencyCode"`
		} `json:"amount"`
		Method string `json:"method"`
		Card   struct {
			VendorCode          string `json:"vendorCode"`
			TokenizedCardNumber string `json:"tokenizedCardNumber"`
			ExpiryDate          string `json:"expiryDate"`
			HolderName          string `json:"holderName"`
		} `json:"card"`
		Description     string `json:"description,omitempty"`
		ClientReference string `json:"clientReference,omitempty"`
	} `json:"data"`
}
