package domain

import "time"

// Wallet mirrors a user's address on the payment network.
// Balance is a local estimate in minor units; the network holds the
// authoritative figure and the two can drift.
type Wallet struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	WalletAddress  string    `json:"wallet_address"`
	PublicKey      string    `json:"public_key"`
	AccessTokenEnc *string   `json:"-"` // AES-256-GCM sealed grant token
	Balance        int64     `json:"balance"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// WalletAddressInfo is what the payment network publishes for an address.
type WalletAddressInfo struct {
	ID             string `json:"id"`
	PublicName     string `json:"public_name,omitempty"`
	AssetCode      string `json:"asset_code"`
	AssetScale     int    `json:"asset_scale"`
	AuthServer     string `json:"auth_server,omitempty"`
	ResourceServer string `json:"resource_server,omitempty"`
}
