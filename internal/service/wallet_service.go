package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"condo-settlement/internal/core/domain"
	"condo-settlement/internal/core/ports"
	"condo-settlement/pkg/apperror"

	"github.com/rs/zerolog"
)

// WalletService implements ports.WalletRegistry.
type WalletService struct {
	userRepo   ports.UserRepository
	walletRepo ports.WalletRepository
	gateway    ports.PaymentGateway
	cache      ports.AddressCache
	encSvc     ports.EncryptionService
	cacheTTL   time.Duration
	log        zerolog.Logger
}

// NewWalletService creates a WalletService. cache may be nil.
func NewWalletService(
	userRepo ports.UserRepository,
	walletRepo ports.WalletRepository,
	gateway ports.PaymentGateway,
	cache ports.AddressCache,
	encSvc ports.EncryptionService,
	cacheTTL time.Duration,
	log zerolog.Logger,
) *WalletService {
	return &WalletService{
		userRepo:   userRepo,
		walletRepo: walletRepo,
		gateway:    gateway,
		cache:      cache,
		encSvc:     encSvc,
		cacheTTL:   cacheTTL,
		log:        log,
	}
}

// RegisterWallet links a validated network address to a user. A user holds
// at most one active wallet; nothing is written when a check fails.
func (s *WalletService) RegisterWallet(ctx context.Context, req ports.RegisterWalletRequest) (*domain.Wallet, error) {
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find user: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound()
	}
	if !user.Active {
		return nil, apperror.ErrUserInactive()
	}

	// Registration asks the network directly; cached documents only serve lookups.
	if !isWalletURL(req.WalletAddress) {
		return nil, apperror.ErrInvalidWalletAddress()
	}
	valid, err := s.gateway.ValidateAddress(ctx, req.WalletAddress)
	if err != nil {
		return nil, apperror.ErrGatewayUnavailable(err)
	}
	if !valid {
		return nil, apperror.ErrInvalidWalletAddress()
	}

	existing, err := s.walletRepo.GetActiveByUserID(ctx, req.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find active wallet: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrWalletAlreadyExists()
	}

	wallet := &domain.Wallet{
		UserID:        req.UserID,
		WalletAddress: req.WalletAddress,
		PublicKey:     req.PublicKey,
		Balance:       0,
		IsActive:      true,
	}
	if req.AccessToken != nil && *req.AccessToken != "" {
		sealed, err := s.encSvc.Encrypt(*req.AccessToken)
		if err != nil {
			return nil, apperror.ErrEncryptionFailure(err)
		}
		wallet.AccessTokenEnc = &sealed
	}

	// The unique indexes catch a registration racing this one.
	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		switch {
		case errors.Is(err, domain.ErrWalletExists):
			return nil, apperror.ErrWalletAlreadyExists()
		case errors.Is(err, domain.ErrWalletAddressTaken):
			return nil, apperror.ErrWalletAddressTaken()
		}
		return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}

	s.log.Info().
		Int64("wallet_id", wallet.ID).
		Int64("user_id", wallet.UserID).
		Str("wallet_address", wallet.WalletAddress).
		Msg("wallet registered")
	return wallet, nil
}

// ValidateAddress checks an address against the payment network. Address
// documents are cached; a cache failure only costs a network round trip.
func (s *WalletService) ValidateAddress(ctx context.Context, address string) (*ports.AddressValidation, error) {
	if !isWalletURL(address) {
		return &ports.AddressValidation{IsValid: false}, nil
	}

	if s.cache != nil {
		info, err := s.cache.Get(ctx, address)
		if err != nil {
			s.log.Warn().Err(err).Str("wallet_address", address).Msg("address cache read failed")
		}
		if info != nil {
			return &ports.AddressValidation{IsValid: true, WalletInfo: info}, nil
		}
	}

	info, err := s.gateway.GetAddressInfo(ctx, address)
	if err != nil {
		return nil, apperror.ErrGatewayUnavailable(err)
	}
	if info == nil {
		return &ports.AddressValidation{IsValid: false}, nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, address, info, s.cacheTTL); err != nil {
			s.log.Warn().Err(err).Str("wallet_address", address).Msg("address cache write failed")
		}
	}
	return &ports.AddressValidation{IsValid: true, WalletInfo: info}, nil
}

// GetWallet fetches a wallet by id, active or not.
func (s *WalletService) GetWallet(ctx context.Context, walletID int64) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}
	return wallet, nil
}

// GetWalletForUser returns nil, nil when the user has no active wallet.
func (s *WalletService) GetWalletForUser(ctx context.Context, userID int64) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find active wallet: %w", err))
	}
	return wallet, nil
}

// GetTreasurerWallet resolves the single active treasurer's wallet. Every
// failure here is a deployment problem, not a caller error.
func (s *WalletService) GetTreasurerWallet(ctx context.Context) (*domain.Wallet, error) {
	treasurers, err := s.userRepo.ListActiveByRole(ctx, domain.RoleTreasurer)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list treasurers: %w", err))
	}
	switch len(treasurers) {
	case 0:
		return nil, apperror.ErrTreasurerNotConfigured()
	case 1:
	default:
		return nil, apperror.ErrTreasurerAmbiguous()
	}

	wallet, err := s.walletRepo.GetActiveByUserID(ctx, treasurers[0].ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find treasurer wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrTreasurerWalletMissing()
	}
	return wallet, nil
}

// AdjustBalance applies a manual correction to the local balance estimate.
func (s *WalletService) AdjustBalance(ctx context.Context, walletID int64, delta int64) (int64, error) {
	if delta == 0 {
		return 0, apperror.Validation("delta must be non-zero")
	}
	if _, err := s.GetWallet(ctx, walletID); err != nil {
		return 0, err
	}

	balance, err := s.walletRepo.AdjustBalance(ctx, nil, walletID, delta)
	if err != nil {
		return 0, apperror.InternalError(err)
	}

	s.log.Info().Int64("wallet_id", walletID).Int64("delta", delta).Int64("balance", balance).Msg("wallet balance adjusted")
	return balance, nil
}

// DeactivateWallet flips is_active off. Wallets are never deleted, so the
// transaction history keeps its references.
func (s *WalletService) DeactivateWallet(ctx context.Context, walletID int64) error {
	if _, err := s.GetWallet(ctx, walletID); err != nil {
		return err
	}
	if err := s.walletRepo.Deactivate(ctx, walletID); err != nil {
		return apperror.InternalError(err)
	}
	s.log.Info().Int64("wallet_id", walletID).Msg("wallet deactivated")
	return nil
}

func isWalletURL(address string) bool {
	u, err := url.Parse(address)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
