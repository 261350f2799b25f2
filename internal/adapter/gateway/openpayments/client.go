package openpayments

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"condo-settlement/internal/core/domain"
	"condo-settlement/internal/core/ports"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	paymentSource      = "condo-settlement"
	paymentType        = "utility-payment"
	defaultDescription = "Payment for utilities"
)

// Config holds the client settings taken from the gateway config section.
type Config struct {
	AccessToken string // default grant, used when a wallet has none of its own
	Timeout     time.Duration
}

// APIError is a non-2xx answer from a wallet or resource server.
type APIError struct {
	Op     string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("open payments %s: status %d: %s", e.Op, e.Status, e.Body)
}

// Client implements ports.PaymentGateway against Open Payments servers.
type Client struct {
	http  *resty.Client
	token string
	log   zerolog.Logger
}

// New creates a Client. Outgoing requests are traced through otelhttp.
func New(cfg Config, log zerolog.Logger) *Client {
	rc := resty.New().
		SetTransport(otelhttp.NewTransport(http.DefaultTransport)).
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}
	return &Client{
		http:  rc,
		token: cfg.AccessToken,
		log:   log,
	}
}

type amount struct {
	Value      string `json:"value"`
	AssetCode  string `json:"assetCode"`
	AssetScale int    `json:"assetScale"`
}

func newAmount(v int64, code string, scale int) amount {
	return amount{Value: strconv.FormatInt(v, 10), AssetCode: code, AssetScale: scale}
}

func (a *amount) minor() int64 {
	if a == nil {
		return 0
	}
	v, err := strconv.ParseInt(a.Value, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

type walletAddressDoc struct {
	ID             string `json:"id"`
	PublicName     string `json:"publicName"`
	AssetCode      string `json:"assetCode"`
	AssetScale     int    `json:"assetScale"`
	AuthServer     string `json:"authServer"`
	ResourceServer string `json:"resourceServer"`
}

type incomingPaymentDoc struct {
	ID             string  `json:"id"`
	WalletAddress  string  `json:"walletAddress"`
	IncomingAmount *amount `json:"incomingAmount"`
	ReceivedAmount *amount `json:"receivedAmount"`
	Completed      bool    `json:"completed"`
}

type quoteDoc struct {
	ID            string  `json:"id"`
	WalletAddress string  `json:"walletAddress"`
	Receiver      string  `json:"receiver"`
	DebitAmount   *amount `json:"debitAmount"`
	ReceiveAmount *amount `json:"receiveAmount"`
}

type outgoingPaymentDoc struct {
	ID            string  `json:"id"`
	WalletAddress string  `json:"walletAddress"`
	QuoteID       string  `json:"quoteId"`
	State         string  `json:"state"`
	Failed        bool    `json:"failed"`
	DebitAmount   *amount `json:"debitAmount"`
	SentAmount    *amount `json:"sentAmount"`
}

// state derives a transfer state. Servers that publish an explicit state
// win; otherwise a failed flag or a fully sent debit amount decides.
func (d *outgoingPaymentDoc) state() string {
	if d.State != "" {
		return strings.ToUpper(d.State)
	}
	if d.Failed {
		return ports.TransferStateFailed
	}
	debit := d.DebitAmount.minor()
	if debit > 0 && d.SentAmount.minor() >= debit {
		return ports.TransferStateCompleted
	}
	return ports.TransferStatePending
}

func (c *Client) request(ctx context.Context, accessToken string) *resty.Request {
	r := c.http.R().
		SetContext(ctx).
		ForceContentType("application/json")
	if accessToken == "" {
		accessToken = c.token
	}
	if accessToken != "" {
		r.SetHeader("Authorization", "GNAP "+accessToken)
	}
	return r
}

func check(op string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("open payments %s: %w", op, err)
	}
	if resp.IsError() {
		return &APIError{Op: op, Status: resp.StatusCode(), Body: resp.String()}
	}
	return nil
}

// GetAddressInfo fetches the wallet address document. An address the
// server does not know yields nil, nil.
func (c *Client) GetAddressInfo(ctx context.Context, address string) (*domain.WalletAddressInfo, error) {
	var doc walletAddressDoc
	resp, err := c.request(ctx, "").SetResult(&doc).Get(address)
	if err == nil && resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if err := check("get wallet address", resp, err); err != nil {
		return nil, err
	}
	if doc.ID == "" {
		return nil, nil
	}
	return &domain.WalletAddressInfo{
		ID:             doc.ID,
		PublicName:     doc.PublicName,
		AssetCode:      doc.AssetCode,
		AssetScale:     doc.AssetScale,
		AuthServer:     doc.AuthServer,
		ResourceServer: doc.ResourceServer,
	}, nil
}

// ValidateAddress reports whether the address resolves to a wallet document.
func (c *Client) ValidateAddress(ctx context.Context, address string) (bool, error) {
	info, err := c.GetAddressInfo(ctx, address)
	if err != nil {
		return false, err
	}
	return info != nil, nil
}

func (c *Client) resourceServer(ctx context.Context, address string) (string, error) {
	info, err := c.GetAddressInfo(ctx, address)
	if err != nil {
		return "", err
	}
	if info == nil {
		return "", fmt.Errorf("open payments: unknown wallet address %s", address)
	}
	if info.ResourceServer == "" {
		return "", fmt.Errorf("open payments: wallet address %s publishes no resource server", address)
	}
	return strings.TrimRight(info.ResourceServer, "/"), nil
}

// ReserveIncoming creates an incoming payment on the receiver's resource
// server.
func (c *Client) ReserveIncoming(ctx context.Context, req ports.ReserveRequest) (*ports.IncomingReservation, error) {
	rs, err := c.resourceServer(ctx, req.ReceiverAddress)
	if err != nil {
		return nil, err
	}

	description := req.Description
	if description == "" {
		description = defaultDescription
	}
	body := map[string]any{
		"walletAddress":  req.ReceiverAddress,
		"incomingAmount": newAmount(req.Amount, req.AssetCode, req.AssetScale),
		"metadata": map[string]string{
			"description": description,
			"source":      paymentSource,
			"type":        paymentType,
		},
	}

	var doc incomingPaymentDoc
	resp, err := c.request(ctx, req.AccessToken).SetBody(body).SetResult(&doc).Post(rs + "/incoming-payments")
	if err := check("create incoming payment", resp, err); err != nil {
		return nil, err
	}
	if doc.ID == "" {
		return nil, errors.New("open payments create incoming payment: response carries no id")
	}

	c.log.Debug().Str("incoming_payment_id", doc.ID).Str("receiver", req.ReceiverAddress).Msg("Incoming payment created")
	return &ports.IncomingReservation{
		ID:            doc.ID,
		WalletAddress: doc.WalletAddress,
		Amount:        doc.IncomingAmount.minor(),
		Completed:     doc.Completed,
	}, nil
}

// QuoteTransfer asks the sender's resource server for an ILP quote against
// the reservation.
func (c *Client) QuoteTransfer(ctx context.Context, req ports.QuoteRequest) (*ports.Quote, error) {
	rs, err := c.resourceServer(ctx, req.SenderAddress)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"walletAddress": req.SenderAddress,
		"receiver":      req.ReservationID,
		"method":        "ilp",
		"debitAmount":   newAmount(req.Amount, req.AssetCode, req.AssetScale),
	}

	var doc quoteDoc
	resp, err := c.request(ctx, req.AccessToken).SetBody(body).SetResult(&doc).Post(rs + "/quotes")
	if err := check("create quote", resp, err); err != nil {
		return nil, err
	}
	if doc.ID == "" {
		return nil, errors.New("open payments create quote: response carries no id")
	}

	c.log.Debug().Str("quote_id", doc.ID).Str("sender", req.SenderAddress).Msg("Quote created")
	return &ports.Quote{
		ID:            doc.ID,
		DebitAmount:   doc.DebitAmount.minor(),
		ReceiveAmount: doc.ReceiveAmount.minor(),
	}, nil
}

// ExecuteTransfer creates the outgoing payment for a quote.
func (c *Client) ExecuteTransfer(ctx context.Context, req ports.ExecuteRequest) (*ports.OutgoingTransfer, error) {
	rs, err := c.resourceServer(ctx, req.SenderAddress)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"walletAddress": req.SenderAddress,
		"quoteId":       req.QuoteID,
		"metadata": map[string]string{
			"source": paymentSource,
			"type":   paymentType,
		},
	}

	var doc outgoingPaymentDoc
	resp, err := c.request(ctx, req.AccessToken).SetBody(body).SetResult(&doc).Post(rs + "/outgoing-payments")
	if err := check("create outgoing payment", resp, err); err != nil {
		return nil, err
	}
	if doc.ID == "" {
		return nil, errors.New("open payments create outgoing payment: response carries no id")
	}

	state := doc.state()
	c.log.Debug().Str("outgoing_payment_id", doc.ID).Str("state", state).Msg("Outgoing payment created")
	return &ports.OutgoingTransfer{
		ID:     doc.ID,
		State:  state,
		Failed: state == ports.TransferStateFailed,
	}, nil
}

// GetTransferStatus reads an outgoing payment by its URL id.
func (c *Client) GetTransferStatus(ctx context.Context, transferID, address, accessToken string) (*ports.TransferStatus, error) {
	var doc outgoingPaymentDoc
	resp, err := c.request(ctx, accessToken).SetResult(&doc).Get(transferID)
	if err := check("get outgoing payment", resp, err); err != nil {
		return nil, err
	}

	c.log.Debug().Str("outgoing_payment_id", transferID).Str("wallet", address).Str("state", doc.state()).Msg("Outgoing payment status read")
	return &ports.TransferStatus{
		ID:         transferID,
		State:      doc.state(),
		SentAmount: doc.SentAmount.minor(),
	}, nil
}
