package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/sstmlab/nfc-redirect/internal/storage"
)

// ClaimStatus answers a claim-status query. Reference is echoed back only
// while the collectible is still unclaimed, so the caller can proceed to
// claim it.
type ClaimStatus struct {
	Claimed   bool
	Reference *CollectibleRef
}

// ClaimGuard enforces at most one claim per (claimant, contract, tokenId,
// chainId). The ledger's unique constraint is the authoritative guard; the
// pre-check here only short-circuits the common duplicate case.
type ClaimGuard struct {
	ledger    ClaimLedger
	redirects RedirectStore
	logger    *zap.Logger
}

func NewClaimGuard(ledger ClaimLedger, redirects RedirectStore, logger *zap.Logger) *ClaimGuard {
	return &ClaimGuard{
		ledger:    ledger,
		redirects: redirects,
		logger:    logger,
	}
}

func validateClaim(claimant string, ref CollectibleRef) error {
	if !isAddress(claimant) || !isAddress(ref.Contract) {
		return ErrInvalidRequest
	}
	if ref.TokenID < 0 || ref.ChainID <= 0 {
		return ErrInvalidRequest
	}
	return nil
}

func isAddress(s string) bool {
	return s != "" && strings.HasPrefix(s, "0x")
}

// Collectible returns the claimable reference stored on a redirect record.
func (g *ClaimGuard) Collectible(ctx context.Context, subject string) (*CollectibleRef, error) {
	record, err := g.redirects.FindRedirectBySubject(ctx, subject)
	if err != nil {
		return nil, err
	}

	ref := collectibleOf(record)
	if ref == nil {
		return nil, storage.ErrNotFound
	}

	return ref, nil
}

// Status reports whether the tuple has been claimed.
func (g *ClaimGuard) Status(ctx context.Context, claimant string, ref CollectibleRef) (*ClaimStatus, error) {
	if err := validateClaim(claimant, ref); err != nil {
		return nil, err
	}

	_, err := g.ledger.FindClaim(ctx, claimant, ref.Contract, ref.TokenID, ref.ChainID)
	if errors.Is(err, storage.ErrNotFound) {
		return &ClaimStatus{Claimed: false, Reference: &ref}, nil
	}
	if err != nil {
		return nil, err
	}

	return &ClaimStatus{Claimed: true}, nil
}

// StatusBySubject resolves the collectible reference from the subject's
// redirect record, then answers the same status question.
func (g *ClaimGuard) StatusBySubject(ctx context.Context, subject, claimant string) (*ClaimStatus, error) {
	ref, err := g.Collectible(ctx, subject)
	if err != nil {
		return nil, err
	}

	return g.Status(ctx, claimant, *ref)
}

// Record inserts a claim exactly once per tuple. Concurrent callers racing on
// the same tuple get exactly one success; the loser sees ErrAlreadyClaimed
// from the ledger's unique constraint.
func (g *ClaimGuard) Record(ctx context.Context, claimant string, ref CollectibleRef) (*storage.ClaimRecord, error) {
	if err := validateClaim(claimant, ref); err != nil {
		return nil, err
	}

	_, err := g.ledger.FindClaim(ctx, claimant, ref.Contract, ref.TokenID, ref.ChainID)
	if err == nil {
		return nil, storage.ErrAlreadyClaimed
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	claim, err := g.ledger.InsertClaim(ctx, claimant, ref.Contract, ref.TokenID, ref.ChainID)
	if err != nil {
		return nil, err
	}

	g.logger.Info("claim recorded",
		zap.String("claimant", claimant),
		zap.String("contract", ref.Contract),
		zap.Int64("tokenId", ref.TokenID),
		zap.Int64("chainId", ref.ChainID),
	)

	return claim, nil
}

// RecordBySubject is the token-bound entry point: the collectible reference
// comes from the subject's redirect record, the claimant from the request.
func (g *ClaimGuard) RecordBySubject(ctx context.Context, subject, claimant string) (*storage.ClaimRecord, error) {
	ref, err := g.Collectible(ctx, subject)
	if err != nil {
		return nil, err
	}

	return g.Record(ctx, claimant, *ref)
}
