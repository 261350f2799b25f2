package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"condo-settlement/internal/core/domain"
	"condo-settlement/internal/core/ports"
	"condo-settlement/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	aliceAddr    = "https://ilp.condo.example/alice"
	treasuryAddr = "https://ilp.condo.example/treasury"
	cacheTTL     = 10 * time.Minute
)

type walletTestDeps struct {
	svc        *WalletService
	userRepo   *mocks.MockUserRepository
	walletRepo *mocks.MockWalletRepository
	gateway    *mocks.MockPaymentGateway
	cache      *mocks.MockAddressCache
	encSvc     *mocks.MockEncryptionService
	ctrl       *gomock.Controller
}

func setupWalletService(t *testing.T) *walletTestDeps {
	ctrl := gomock.NewController(t)
	d := &walletTestDeps{
		userRepo:   mocks.NewMockUserRepository(ctrl),
		walletRepo: mocks.NewMockWalletRepository(ctrl),
		gateway:    mocks.NewMockPaymentGateway(ctrl),
		cache:      mocks.NewMockAddressCache(ctrl),
		encSvc:     mocks.NewMockEncryptionService(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewWalletService(d.userRepo, d.walletRepo, d.gateway, d.cache, d.encSvc, cacheTTL, newTestLogger())
	return d
}

func aliceInfo() *domain.WalletAddressInfo {
	return &domain.WalletAddressInfo{ID: aliceAddr, AssetCode: "USD", AssetScale: 2, ResourceServer: "https://ilp.condo.example"}
}

// expectLiveAddress wires the network check made on registration.
func (d *walletTestDeps) expectLiveAddress(address string, valid bool) {
	d.gateway.EXPECT().ValidateAddress(gomock.Any(), address).Return(valid, nil)
}

// ==================== RegisterWallet Tests ====================

func TestWalletService_RegisterWallet_Success(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.userRepo.EXPECT().GetByID(ctx, int64(3)).Return(activeOwner(), nil)
	d.expectLiveAddress(aliceAddr, true)
	d.walletRepo.EXPECT().GetActiveByUserID(ctx, int64(3)).Return(nil, nil)
	d.encSvc.EXPECT().Encrypt("grant-token").Return("sealed", nil)
	d.walletRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, w *domain.Wallet) error {
			w.ID = 11
			return nil
		})

	wallet, err := d.svc.RegisterWallet(ctx, ports.RegisterWalletRequest{
		UserID:        3,
		WalletAddress: aliceAddr,
		PublicKey:     "pk-alice",
		AccessToken:   strPtr("grant-token"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), wallet.ID)
	assert.Equal(t, int64(0), wallet.Balance)
	assert.True(t, wallet.IsActive)
	require.NotNil(t, wallet.AccessTokenEnc)
	assert.Equal(t, "sealed", *wallet.AccessTokenEnc)
}

func TestWalletService_RegisterWallet_UserNotFound(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	d.userRepo.EXPECT().GetByID(gomock.Any(), int64(404)).Return(nil, nil)

	_, err := d.svc.RegisterWallet(context.Background(), ports.RegisterWalletRequest{UserID: 404, WalletAddress: aliceAddr})
	assertAppError(t, err, "USR_001")
}

func TestWalletService_RegisterWallet_InvalidAddress(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	d.userRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(activeOwner(), nil).Times(2)
	d.expectLiveAddress(aliceAddr, false)

	_, err := d.svc.RegisterWallet(context.Background(), ports.RegisterWalletRequest{UserID: 3, WalletAddress: aliceAddr})
	assertAppError(t, err, "WAL_002")

	// Not a URL at all: rejected before the network is asked.
	_, err = d.svc.RegisterWallet(context.Background(), ports.RegisterWalletRequest{UserID: 3, WalletAddress: "$ilp.example/alice"})
	assertAppError(t, err, "WAL_002")
}

func TestWalletService_RegisterWallet_SkipsAddressCache(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	// No cache expectations: a cached document must not vouch for a new wallet.
	d.userRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(activeOwner(), nil)
	d.gateway.EXPECT().ValidateAddress(gomock.Any(), aliceAddr).Return(false, errors.New("dial tcp: i/o timeout"))

	_, err := d.svc.RegisterWallet(context.Background(), ports.RegisterWalletRequest{UserID: 3, WalletAddress: aliceAddr})
	assertAppError(t, err, "GW_001")
}

func TestWalletService_RegisterWallet_AlreadyHasWallet(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	d.userRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(activeOwner(), nil)
	d.expectLiveAddress(aliceAddr, true)
	d.walletRepo.EXPECT().GetActiveByUserID(gomock.Any(), int64(3)).Return(&domain.Wallet{ID: 10, IsActive: true}, nil)
	// Create must not be called.

	_, err := d.svc.RegisterWallet(context.Background(), ports.RegisterWalletRequest{UserID: 3, WalletAddress: aliceAddr})
	assertAppError(t, err, "WAL_003")
}

func TestWalletService_RegisterWallet_ConstraintRace(t *testing.T) {
	tests := []struct {
		name     string
		repoErr  error
		wantCode string
	}{
		{"active wallet", domain.ErrWalletExists, "WAL_003"},
		{"address taken", domain.ErrWalletAddressTaken, "WAL_004"},
		{"other", errors.New("db down"), "SYS_001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupWalletService(t)
			defer d.ctrl.Finish()

			d.userRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(activeOwner(), nil)
			d.expectLiveAddress(aliceAddr, true)
			d.walletRepo.EXPECT().GetActiveByUserID(gomock.Any(), int64(3)).Return(nil, nil)
			d.walletRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(tt.repoErr)

			_, err := d.svc.RegisterWallet(context.Background(), ports.RegisterWalletRequest{UserID: 3, WalletAddress: aliceAddr})
			assertAppError(t, err, tt.wantCode)
		})
	}
}

// ==================== ValidateAddress Tests ====================

func TestWalletService_ValidateAddress_CacheHit(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	d.cache.EXPECT().Get(gomock.Any(), aliceAddr).Return(aliceInfo(), nil)

	res, err := d.svc.ValidateAddress(context.Background(), aliceAddr)
	require.NoError(t, err)
	assert.True(t, res.IsValid)
	assert.Equal(t, "USD", res.WalletInfo.AssetCode)
}

func TestWalletService_ValidateAddress_CacheDownFallsThrough(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	d.cache.EXPECT().Get(gomock.Any(), aliceAddr).Return(nil, errors.New("redis down"))
	d.gateway.EXPECT().GetAddressInfo(gomock.Any(), aliceAddr).Return(aliceInfo(), nil)
	d.cache.EXPECT().Set(gomock.Any(), aliceAddr, gomock.Any(), cacheTTL).Return(errors.New("redis down"))

	res, err := d.svc.ValidateAddress(context.Background(), aliceAddr)
	require.NoError(t, err)
	assert.True(t, res.IsValid)
}

func TestWalletService_ValidateAddress_GatewayError(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	d.cache.EXPECT().Get(gomock.Any(), aliceAddr).Return(nil, nil)
	d.gateway.EXPECT().GetAddressInfo(gomock.Any(), aliceAddr).Return(nil, errors.New("timeout"))

	_, err := d.svc.ValidateAddress(context.Background(), aliceAddr)
	assertAppError(t, err, "GW_001")
}

// ==================== Treasurer Tests ====================

func TestWalletService_GetTreasurerWallet(t *testing.T) {
	treasurer := domain.User{ID: 1, Role: domain.RoleTreasurer, Active: true}

	tests := []struct {
		name     string
		users    []domain.User
		wallet   *domain.Wallet
		wantCode string
	}{
		{name: "ok", users: []domain.User{treasurer}, wallet: &domain.Wallet{ID: 5, UserID: 1}},
		{name: "none", users: nil, wantCode: "CFG_001"},
		{name: "no wallet", users: []domain.User{treasurer}, wallet: nil, wantCode: "CFG_002"},
		{name: "two", users: []domain.User{treasurer, {ID: 2, Role: domain.RoleTreasurer}}, wantCode: "CFG_003"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupWalletService(t)
			defer d.ctrl.Finish()

			d.userRepo.EXPECT().ListActiveByRole(gomock.Any(), domain.RoleTreasurer).Return(tt.users, nil)
			if len(tt.users) == 1 {
				d.walletRepo.EXPECT().GetActiveByUserID(gomock.Any(), int64(1)).Return(tt.wallet, nil)
			}

			wallet, err := d.svc.GetTreasurerWallet(context.Background())
			if tt.wantCode != "" {
				assertAppError(t, err, tt.wantCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(5), wallet.ID)
		})
	}
}

// ==================== Balance / lifecycle Tests ====================

func TestWalletService_AdjustBalance(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	d.walletRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&domain.Wallet{ID: 5, Balance: 100}, nil)
	d.walletRepo.EXPECT().AdjustBalance(gomock.Any(), nil, int64(5), int64(-40)).Return(int64(60), nil)

	balance, err := d.svc.AdjustBalance(context.Background(), 5, -40)
	require.NoError(t, err)
	assert.Equal(t, int64(60), balance)
}

func TestWalletService_AdjustBalance_Errors(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.AdjustBalance(context.Background(), 5, 0)
	assertAppError(t, err, "REQ_001")

	d.walletRepo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, nil)
	_, err = d.svc.AdjustBalance(context.Background(), 9, 10)
	assertAppError(t, err, "WAL_001")
}

func TestWalletService_DeactivateWallet(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	d.walletRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&domain.Wallet{ID: 5, IsActive: true}, nil)
	d.walletRepo.EXPECT().Deactivate(gomock.Any(), int64(5)).Return(nil)

	require.NoError(t, d.svc.DeactivateWallet(context.Background(), 5))
}

func TestWalletService_GetWalletForUser_None(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	d.walletRepo.EXPECT().GetActiveByUserID(gomock.Any(), int64(8)).Return(nil, nil)

	wallet, err := d.svc.GetWalletForUser(context.Background(), 8)
	require.NoError(t, err)
	assert.Nil(t, wallet)
}
