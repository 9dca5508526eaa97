package service

import (
	"context"
	"time"

	"github.com/sstmlab/nfc-redirect/internal/storage"
)

// RedirectStore is the narrow gateway to persisted redirect records.
type RedirectStore interface {
	FindRedirectBySubject(ctx context.Context, subject string) (*storage.RedirectRecord, error)
	UpdateRedirectDestination(ctx context.Context, subject, oldURL, newURL string) error
	InsertRedirects(ctx context.Context, rs []storage.RedirectRecord) ([]storage.RedirectRecord, error)
	PingContext(ctx context.Context) error
}

// UserDirectory is the user-lookup collaborator. Reads are keyed on the NFC
// subject id or the display handle; the upsert is keyed on the unique NFC id.
type UserDirectory interface {
	FindUserByNFC(ctx context.Context, nfc string) (*storage.UserRecord, error)
	FindUserByHandle(ctx context.Context, handle string) (*storage.UserRecord, error)
	UpsertUserByNFC(ctx context.Context, u storage.UserRecord) (*storage.UserRecord, error)
}

// ClaimLedger is the narrow gateway to persisted claim records.
type ClaimLedger interface {
	FindClaim(ctx context.Context, claimant, contract string, tokenID, chainID int64) (*storage.ClaimRecord, error)
	InsertClaim(ctx context.Context, claimant, contract string, tokenID, chainID int64) (*storage.ClaimRecord, error)
}

// CodecIface defines the token codec surface used by middleware and handlers.
type CodecIface interface {
	Sign(claims *Claims, ttl time.Duration) (string, error)
	Verify(token string) (*Claims, error)
}

// ResolverIface defines the redirect resolution surface used by handlers.
type ResolverIface interface {
	Resolve(ctx context.Context, token string) (*Resolution, error)
}

// ClaimGuardIface defines the claim deduplication surface used by handlers.
type ClaimGuardIface interface {
	Status(ctx context.Context, claimant string, ref CollectibleRef) (*ClaimStatus, error)
	StatusBySubject(ctx context.Context, subject, claimant string) (*ClaimStatus, error)
	Record(ctx context.Context, claimant string, ref CollectibleRef) (*storage.ClaimRecord, error)
	RecordBySubject(ctx context.Context, subject, claimant string) (*storage.ClaimRecord, error)
	Collectible(ctx context.Context, subject string) (*CollectibleRef, error)
}
