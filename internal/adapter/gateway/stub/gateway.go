// Package stub is an in-memory payment network for local runs and tests.
package stub

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"condo-settlement/internal/core/domain"
	"condo-settlement/internal/core/ports"
)

// Op names a gateway call that can be made to fail.
type Op string

const (
	OpAddressInfo Op = "address_info"
	OpReserve     Op = "reserve"
	OpQuote       Op = "quote"
	OpExecute     Op = "execute"
	OpStatus      Op = "status"
)

type reservation struct {
	receiver string
	amount   int64
}

type quote struct {
	sender        string
	reservationID string
	amount        int64
}

type transfer struct {
	sender string
	amount int64
	state  string
}

// Gateway implements ports.PaymentGateway in memory. Ids are sequential
// per gateway, so runs are reproducible.
type Gateway struct {
	mu           sync.Mutex
	addresses    map[string]domain.WalletAddressInfo
	acceptAny    bool
	assetCode    string
	assetScale   int
	latency      time.Duration
	initialState string
	faults       map[Op]error
	calls        map[Op]int

	seq          int64
	reservations map[string]reservation
	quotes       map[string]quote
	transfers    map[string]*transfer
}

type Option func(*Gateway)

// WithAnyAddress resolves every http(s) address, publishing the given asset.
func WithAnyAddress(assetCode string, assetScale int) Option {
	return func(g *Gateway) {
		g.acceptAny = true
		g.assetCode = assetCode
		g.assetScale = assetScale
	}
}

// WithLatency delays every call. A context that ends first aborts the call.
func WithLatency(d time.Duration) Option {
	return func(g *Gateway) { g.latency = d }
}

// WithInitialState sets the state new transfers start in. Defaults to COMPLETED.
func WithInitialState(state string) Option {
	return func(g *Gateway) { g.initialState = state }
}

// New creates an empty network. Addresses must be registered unless
// WithAnyAddress is given.
func New(opts ...Option) *Gateway {
	g := &Gateway{
		addresses:    make(map[string]domain.WalletAddressInfo),
		initialState: ports.TransferStateCompleted,
		faults:       make(map[Op]error),
		calls:        make(map[Op]int),
		reservations: make(map[string]reservation),
		quotes:       make(map[string]quote),
		transfers:    make(map[string]*transfer),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Register publishes an address on the network.
func (g *Gateway) Register(address, assetCode string, assetScale int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addresses[address] = domain.WalletAddressInfo{
		ID:             address,
		AssetCode:      assetCode,
		AssetScale:     assetScale,
		ResourceServer: address,
	}
}

// Fail makes every later call of op return err until Clear is called.
func (g *Gateway) Fail(op Op, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.faults[op] = err
}

// Clear removes the fault injected for op.
func (g *Gateway) Clear(op Op) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.faults, op)
}

// SetLatency changes the per-call delay.
func (g *Gateway) SetLatency(d time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.latency = d
}

// SetTransferState overrides what the network reports for a transfer.
func (g *Gateway) SetTransferState(id, state string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	t, ok := g.transfers[id]
	if !ok {
		return fmt.Errorf("stub: unknown transfer %s", id)
	}
	t.state = state
	return nil
}

// Calls reports how many times op was invoked.
func (g *Gateway) Calls(op Op) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[op]
}

// enter counts the call, applies latency and returns the injected fault.
func (g *Gateway) enter(ctx context.Context, op Op) error {
	g.mu.Lock()
	g.calls[op]++
	latency := g.latency
	fault := g.faults[op]
	g.mu.Unlock()

	if latency > 0 {
		timer := time.NewTimer(latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return fault
}

func (g *Gateway) nextID(kind string) string {
	g.seq++
	return fmt.Sprintf("stub://%s/%d", kind, g.seq)
}

// lookup must be called with g.mu held.
func (g *Gateway) lookup(address string) (domain.WalletAddressInfo, bool) {
	if info, ok := g.addresses[address]; ok {
		return info, true
	}
	if !g.acceptAny {
		return domain.WalletAddressInfo{}, false
	}
	u, err := url.Parse(address)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.WalletAddressInfo{}, false
	}
	return domain.WalletAddressInfo{
		ID:             address,
		AssetCode:      g.assetCode,
		AssetScale:     g.assetScale,
		ResourceServer: u.Scheme + "://" + u.Host,
	}, true
}

// GetAddressInfo returns nil, nil for addresses the network does not know.
func (g *Gateway) GetAddressInfo(ctx context.Context, address string) (*domain.WalletAddressInfo, error) {
	if err := g.enter(ctx, OpAddressInfo); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	info, ok := g.lookup(address)
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// ValidateAddress reports whether the address is known to the network.
func (g *Gateway) ValidateAddress(ctx context.Context, address string) (bool, error) {
	info, err := g.GetAddressInfo(ctx, address)
	if err != nil {
		return false, err
	}
	return info != nil, nil
}

// ReserveIncoming records an incoming payment on the receiver address.
func (g *Gateway) ReserveIncoming(ctx context.Context, req ports.ReserveRequest) (*ports.IncomingReservation, error) {
	if err := g.enter(ctx, OpReserve); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.lookup(req.ReceiverAddress); !ok {
		return nil, fmt.Errorf("stub: unknown receiver %s", req.ReceiverAddress)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("stub: amount must be positive, got %d", req.Amount)
	}
	id := g.nextID("incoming-payments")
	g.reservations[id] = reservation{receiver: req.ReceiverAddress, amount: req.Amount}
	return &ports.IncomingReservation{ID: id, WalletAddress: req.ReceiverAddress, Amount: req.Amount}, nil
}

// QuoteTransfer quotes the sender against an existing reservation at par.
func (g *Gateway) QuoteTransfer(ctx context.Context, req ports.QuoteRequest) (*ports.Quote, error) {
	if err := g.enter(ctx, OpQuote); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.lookup(req.SenderAddress); !ok {
		return nil, fmt.Errorf("stub: unknown sender %s", req.SenderAddress)
	}
	if _, ok := g.reservations[req.ReservationID]; !ok {
		return nil, fmt.Errorf("stub: unknown incoming payment %s", req.ReservationID)
	}
	id := g.nextID("quotes")
	g.quotes[id] = quote{sender: req.SenderAddress, reservationID: req.ReservationID, amount: req.Amount}
	return &ports.Quote{ID: id, DebitAmount: req.Amount, ReceiveAmount: req.Amount}, nil
}

// ExecuteTransfer creates an outgoing payment in the configured initial state.
func (g *Gateway) ExecuteTransfer(ctx context.Context, req ports.ExecuteRequest) (*ports.OutgoingTransfer, error) {
	if err := g.enter(ctx, OpExecute); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	q, ok := g.quotes[req.QuoteID]
	if !ok {
		return nil, fmt.Errorf("stub: unknown quote %s", req.QuoteID)
	}
	if q.sender != req.SenderAddress {
		return nil, fmt.Errorf("stub: quote %s belongs to %s", req.QuoteID, q.sender)
	}
	id := g.nextID("outgoing-payments")
	g.transfers[id] = &transfer{sender: q.sender, amount: q.amount, state: g.initialState}
	return &ports.OutgoingTransfer{
		ID:     id,
		State:  g.initialState,
		Failed: g.initialState == ports.TransferStateFailed,
	}, nil
}

// GetTransferStatus reports the current state of an outgoing payment.
func (g *Gateway) GetTransferStatus(ctx context.Context, transferID, address, accessToken string) (*ports.TransferStatus, error) {
	if err := g.enter(ctx, OpStatus); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	t, ok := g.transfers[transferID]
	if !ok {
		return nil, fmt.Errorf("stub: unknown transfer %s", transferID)
	}
	var sent int64
	if t.state == ports.TransferStateCompleted {
		sent = t.amount
	}
	return &ports.TransferStatus{ID: transferID, State: t.state, SentAmount: sent}, nil
}
