package storage

// RedirectRecord is a persisted mapping from an NFC tag subject id to a
// destination URL, optionally referencing on-chain collectibles.
type RedirectRecord struct {
	Subject          string `json:"uuid"`
	URL              string `json:"url"`
	Description      string `json:"description,omitempty"`
	Number           int64  `json:"number,omitempty"`
	Group            int64  `json:"group,omitempty"`
	XLocation        int64  `json:"x_location,omitempty"`
	ZLocation        int64  `json:"z_location,omitempty"`
	PhygitalContract string `json:"phygital_contract,omitempty"`
	PhygitalTokenID  int64  `json:"phygital_token_id,omitempty"`
	PoapContract     string `json:"poap_contract,omitempty"`
	PoapTokenID      int64  `json:"poap_token_id,omitempty"`
	ChainID          int64  `json:"chain_id,omitempty"`
}

// HasCollectible reports whether the record carries a claimable reference.
// A zero token id is a valid token id, so presence is keyed on the contract
// address and chain id only.
func (r *RedirectRecord) HasCollectible() bool {
	return r.PoapContract != "" && r.ChainID != 0
}

// UserRecord is a registered tag owner. NFC is the tag subject id and is
// unique when present.
type UserRecord struct {
	ID           string `json:"id"`
	NFC          string `json:"nfc"`
	Username     string `json:"username"`
	Address      string `json:"address"`
	Email        string `json:"email"`
	Avatar       string `json:"avatar"`
	Bio          string `json:"bio"`
	X            string `json:"x,omitempty"`
	Instagram    string `json:"instagram,omitempty"`
	TikTok       string `json:"tiktok,omitempty"`
	Shop         string `json:"shop,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
}

// ClaimRecord is a durable note that a claimant redeemed a collectible.
// The (UserAddress, TokenAddress, TokenID, ChainID) tuple is unique.
type ClaimRecord struct {
	ID           string `json:"id"`
	UserAddress  string `json:"user_address"`
	TokenAddress string `json:"token_address"`
	TokenID      int64  `json:"token_id"`
	ChainID      int64  `json:"chain_id"`
}
