package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sstmlab/nfc-redirect/internal/storage"
)

func newTestGuard(t *testing.T) (*ClaimGuard, *storage.MemoryStorage) {
	t.Helper()

	mem, err := storage.CreateMemoryStorage()
	require.NoError(t, err)

	return NewClaimGuard(mem, mem, zap.NewNop()), mem
}

func TestClaimGuard_Record_Once(t *testing.T) {
	guard, _ := newTestGuard(t)
	ctx := context.Background()

	ref := CollectibleRef{Contract: "0xBBB", TokenID: 7, ChainID: 1}

	claim, err := guard.Record(ctx, "0xAAA", ref)
	require.NoError(t, err)
	assert.Equal(t, "0xAAA", claim.UserAddress)
	assert.Equal(t, int64(7), claim.TokenID)

	_, err = guard.Record(ctx, "0xAAA", ref)
	assert.ErrorIs(t, err, storage.ErrAlreadyClaimed)
}

func TestClaimGuard_Record_DifferingTupleSucceeds(t *testing.T) {
	guard, _ := newTestGuard(t)
	ctx := context.Background()

	base := CollectibleRef{Contract: "0xBBB", TokenID: 7, ChainID: 1}

	_, err := guard.Record(ctx, "0xAAA", base)
	require.NoError(t, err)

	tests := []struct {
		name     string
		claimant string
		ref      CollectibleRef
	}{
		{"different claimant", "0xCCC", base},
		{"different contract", "0xAAA", CollectibleRef{Contract: "0xDDD", TokenID: 7, ChainID: 1}},
		{"different token id", "0xAAA", CollectibleRef{Contract: "0xBBB", TokenID: 8, ChainID: 1}},
		{"different chain id", "0xAAA", CollectibleRef{Contract: "0xBBB", TokenID: 7, ChainID: 137}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := guard.Record(ctx, tt.claimant, tt.ref)
			assert.NoError(t, err)
		})
	}
}

func TestClaimGuard_Record_Validation(t *testing.T) {
	guard, _ := newTestGuard(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		claimant string
		ref      CollectibleRef
	}{
		{"empty claimant", "", CollectibleRef{Contract: "0xBBB", TokenID: 7, ChainID: 1}},
		{"claimant without 0x prefix", "AAA", CollectibleRef{Contract: "0xBBB", TokenID: 7, ChainID: 1}},
		{"empty contract", "0xAAA", CollectibleRef{TokenID: 7, ChainID: 1}},
		{"negative token id", "0xAAA", CollectibleRef{Contract: "0xBBB", TokenID: -1, ChainID: 1}},
		{"zero chain id", "0xAAA", CollectibleRef{Contract: "0xBBB", TokenID: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := guard.Record(ctx, tt.claimant, tt.ref)
			assert.ErrorIs(t, err, ErrInvalidRequest)

			_, err = guard.Status(ctx, tt.claimant, tt.ref)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestClaimGuard_Status(t *testing.T) {
	guard, _ := newTestGuard(t)
	ctx := context.Background()

	ref := CollectibleRef{Contract: "0xBBB", TokenID: 7, ChainID: 1}

	status, err := guard.Status(ctx, "0xAAA", ref)
	require.NoError(t, err)
	assert.False(t, status.Claimed)
	require.NotNil(t, status.Reference)
	assert.Equal(t, ref, *status.Reference)

	_, err = guard.Record(ctx, "0xAAA", ref)
	require.NoError(t, err)

	status, err = guard.Status(ctx, "0xAAA", ref)
	require.NoError(t, err)
	assert.True(t, status.Claimed)
	assert.Nil(t, status.Reference)
}

func TestClaimGuard_StatusBySubject(t *testing.T) {
	guard, mem := newTestGuard(t)
	ctx := context.Background()

	_, err := mem.InsertRedirects(ctx, []storage.RedirectRecord{
		{Subject: "abc", URL: "https://shop.example.com/item", PoapContract: "0xBBB", PoapTokenID: 7, ChainID: 1},
	})
	require.NoError(t, err)

	status, err := guard.StatusBySubject(ctx, "abc", "0xAAA")
	require.NoError(t, err)
	assert.False(t, status.Claimed)
	require.NotNil(t, status.Reference)
	assert.Equal(t, "0xBBB", status.Reference.Contract)

	_, err = guard.RecordBySubject(ctx, "abc", "0xAAA")
	require.NoError(t, err)

	status, err = guard.StatusBySubject(ctx, "abc", "0xAAA")
	require.NoError(t, err)
	assert.True(t, status.Claimed)
}

func TestClaimGuard_StatusBySubject_NoCollectible(t *testing.T) {
	guard, mem := newTestGuard(t)
	ctx := context.Background()

	_, err := mem.InsertRedirects(ctx, []storage.RedirectRecord{
		{Subject: "abc", URL: "https://shop.example.com/item"},
	})
	require.NoError(t, err)

	_, err = guard.StatusBySubject(ctx, "abc", "0xAAA")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestClaimGuard_RecordBySubject_UnknownSubject(t *testing.T) {
	guard, _ := newTestGuard(t)

	_, err := guard.RecordBySubject(context.Background(), "missing", "0xAAA")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestClaimGuard_Collectible(t *testing.T) {
	guard, mem := newTestGuard(t)
	ctx := context.Background()

	_, err := mem.InsertRedirects(ctx, []storage.RedirectRecord{
		{Subject: "abc", URL: "https://shop.example.com/item", PoapContract: "0xBBB", PoapTokenID: 0, ChainID: 1},
	})
	require.NoError(t, err)

	ref, err := guard.Collectible(ctx, "abc")
	require.NoError(t, err)

	// Token id zero is a valid token id.
	assert.Equal(t, int64(0), ref.TokenID)
	assert.Equal(t, "0xBBB", ref.Contract)
}
