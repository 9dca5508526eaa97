// Package models defines the JSON payloads of the HTTP surface.
package models

// CollectibleRef is the wire form of an on-chain claimable reference.
type CollectibleRef struct {
	Address string `json:"address"`
	TokenID int64  `json:"tokenId"`
	ChainID int64  `json:"chainId"`
}

// ClaimRequest records a claim for the collectible bound to the caller's
// credential token.
type ClaimRequest struct {
	UserAddress string `json:"user_address"`
}

// ClaimBySubjectRequest asks for claim status with the subject named
// directly, no credential required.
type ClaimBySubjectRequest struct {
	Subject     string `json:"uuid"`
	UserAddress string `json:"user_address"`
}

// ClaimStatusResponse reports whether a tuple has been claimed. Reference is
// present only while the collectible is unclaimed.
type ClaimStatusResponse struct {
	Message   string          `json:"message"`
	Claimed   bool            `json:"claimed"`
	Reference *CollectibleRef `json:"reference,omitempty"`
}

// ClaimCreatedResponse confirms a newly recorded claim.
type ClaimCreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// RedirectInsert is one row of an administrative bulk insert.
type RedirectInsert struct {
	Subject          string `json:"uuid,omitempty"`
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

// RedirectInserted is the response row: the stored record plus a
// ready-to-program resolve link carrying a non-expiring subject token.
type RedirectInserted struct {
	Subject string `json:"uuid"`
	URL     string `json:"url"`
	Link    string `json:"link"`
}

// UserUpsertRequest creates or updates a user keyed on the NFC subject id.
type UserUpsertRequest struct {
	NFC          string `json:"nfc"`
	Username     string `json:"username"`
	Address      string `json:"address"`
	Email        string `json:"email,omitempty"`
	Avatar       string `json:"avatar,omitempty"`
	Bio          string `json:"bio,omitempty"`
	X            string `json:"x,omitempty"`
	Instagram    string `json:"instagram,omitempty"`
	TikTok       string `json:"tiktok,omitempty"`
	Shop         string `json:"shop,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
}
