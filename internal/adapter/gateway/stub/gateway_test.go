package stub

import (
	"context"
	"errors"
	"testing"
	"time"

	"condo-settlement/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alice    = "https://wallet.example/alice"
	treasury = "https://wallet.example/treasury"
)

func runTransfer(t *testing.T, g *Gateway) *ports.OutgoingTransfer {
	t.Helper()
	ctx := context.Background()

	res, err := g.ReserveIncoming(ctx, ports.ReserveRequest{ReceiverAddress: treasury, Amount: 10000})
	require.NoError(t, err)
	q, err := g.QuoteTransfer(ctx, ports.QuoteRequest{SenderAddress: alice, ReservationID: res.ID, Amount: 10000})
	require.NoError(t, err)
	out, err := g.ExecuteTransfer(ctx, ports.ExecuteRequest{SenderAddress: alice, QuoteID: q.ID})
	require.NoError(t, err)
	return out
}

func TestGateway_FullFlow(t *testing.T) {
	g := New()
	g.Register(alice, "USD", 2)
	g.Register(treasury, "USD", 2)

	out := runTransfer(t, g)
	assert.Equal(t, "stub://outgoing-payments/3", out.ID)
	assert.Equal(t, ports.TransferStateCompleted, out.State)
	assert.False(t, out.Failed)

	st, err := g.GetTransferStatus(context.Background(), out.ID, alice, "")
	require.NoError(t, err)
	assert.Equal(t, ports.TransferStateCompleted, st.State)
	assert.Equal(t, int64(10000), st.SentAmount)
}

func TestGateway_UnknownAddress(t *testing.T) {
	g := New()

	info, err := g.GetAddressInfo(context.Background(), alice)
	require.NoError(t, err)
	assert.Nil(t, info)

	ok, err := g.ValidateAddress(context.Background(), alice)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = g.ReserveIncoming(context.Background(), ports.ReserveRequest{ReceiverAddress: alice, Amount: 1})
	assert.Error(t, err)
}

func TestGateway_AnyAddress(t *testing.T) {
	g := New(WithAnyAddress("USD", 2))

	info, err := g.GetAddressInfo(context.Background(), "https://ilp.example/bob")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "USD", info.AssetCode)
	assert.Equal(t, "https://ilp.example", info.ResourceServer)

	info, err = g.GetAddressInfo(context.Background(), "ftp://ilp.example/bob")
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestGateway_FaultInjection(t *testing.T) {
	g := New()
	g.Register(alice, "USD", 2)
	g.Register(treasury, "USD", 2)
	boom := errors.New("quote service down")
	g.Fail(OpQuote, boom)

	res, err := g.ReserveIncoming(context.Background(), ports.ReserveRequest{ReceiverAddress: treasury, Amount: 500})
	require.NoError(t, err)

	_, err = g.QuoteTransfer(context.Background(), ports.QuoteRequest{SenderAddress: alice, ReservationID: res.ID, Amount: 500})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, g.Calls(OpQuote))

	g.Clear(OpQuote)
	_, err = g.QuoteTransfer(context.Background(), ports.QuoteRequest{SenderAddress: alice, ReservationID: res.ID, Amount: 500})
	assert.NoError(t, err)
	assert.Equal(t, 2, g.Calls(OpQuote))
}

func TestGateway_LatencyHonoursContext(t *testing.T) {
	g := New(WithLatency(time.Second))
	g.Register(alice, "USD", 2)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := g.GetAddressInfo(ctx, alice)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGateway_SetTransferState(t *testing.T) {
	g := New(WithInitialState(ports.TransferStatePending))
	g.Register(alice, "USD", 2)
	g.Register(treasury, "USD", 2)

	out := runTransfer(t, g)
	assert.Equal(t, ports.TransferStatePending, out.State)

	require.NoError(t, g.SetTransferState(out.ID, ports.TransferStateFailed))
	st, err := g.GetTransferStatus(context.Background(), out.ID, alice, "")
	require.NoError(t, err)
	assert.Equal(t, ports.TransferStateFailed, st.State)
	assert.Zero(t, st.SentAmount)

	assert.Error(t, g.SetTransferState("stub://outgoing-payments/999", ports.TransferStateCompleted))
}

func TestGateway_ExecuteRejectsForeignQuote(t *testing.T) {
	g := New()
	g.Register(alice, "USD", 2)
	g.Register(treasury, "USD", 2)

	res, err := g.ReserveIncoming(context.Background(), ports.ReserveRequest{ReceiverAddress: treasury, Amount: 100})
	require.NoError(t, err)
	q, err := g.QuoteTransfer(context.Background(), ports.QuoteRequest{SenderAddress: alice, ReservationID: res.ID, Amount: 100})
	require.NoError(t, err)

	_, err = g.ExecuteTransfer(context.Background(), ports.ExecuteRequest{SenderAddress: treasury, QuoteID: q.ID})
	assert.Error(t, err)
}
