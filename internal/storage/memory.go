package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MemoryStorage keeps all three record families in maps. It backs DSN-less
// dev runs and tests, and mirrors the postgres gateway semantics including
// the claim-tuple uniqueness guarantee.
type MemoryStorage struct {
	mu        sync.Mutex
	redirects map[string]RedirectRecord
	usersNFC  map[string]UserRecord
	claims    map[string]ClaimRecord
}

func CreateMemoryStorage() (*MemoryStorage, error) {
	return &MemoryStorage{
		redirects: make(map[string]RedirectRecord),
		usersNFC:  make(map[string]UserRecord),
		claims:    make(map[string]ClaimRecord),
	}, nil
}

func claimKey(claimant, contract string, tokenID, chainID int64) string {
	return fmt.Sprintf("%s|%s|%d|%d", claimant, contract, tokenID, chainID)
}

func (m *MemoryStorage) FindRedirectBySubject(_ context.Context, subject string) (*RedirectRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r, exists := m.redirects[subject]; exists {
		return &r, nil
	}
	return nil, ErrNotFound
}

// UpdateRedirectDestination replaces the destination only while it still
// equals oldURL, so concurrent registration rewrites cannot clobber each
// other.
func (m *MemoryStorage) UpdateRedirectDestination(_ context.Context, subject, oldURL, newURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, exists := m.redirects[subject]
	if !exists || r.URL != oldURL {
		return ErrNotFound
	}
	r.URL = newURL
	m.redirects[subject] = r
	return nil
}

func (m *MemoryStorage) InsertRedirects(_ context.Context, rs []RedirectRecord) ([]RedirectRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	inserted := make([]RedirectRecord, 0, len(rs))
	for _, r := range rs {
		if r.Subject == "" {
			r.Subject = uuid.New().String()
		}
		m.redirects[r.Subject] = r
		inserted = append(inserted, r)
	}
	return inserted, nil
}

func (m *MemoryStorage) FindUserByNFC(_ context.Context, nfc string) (*UserRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if u, exists := m.usersNFC[nfc]; exists {
		return &u, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryStorage) FindUserByHandle(_ context.Context, handle string) (*UserRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.usersNFC {
		if u.Username == handle {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStorage) UpsertUserByNFC(_ context.Context, u UserRecord) (*UserRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, exists := m.usersNFC[u.NFC]; exists {
		u.ID = existing.ID
	} else if u.ID == "" {
		u.ID = uuid.New().String()
	}
	m.usersNFC[u.NFC] = u
	return &u, nil
}

func (m *MemoryStorage) FindClaim(_ context.Context, claimant, contract string, tokenID, chainID int64) (*ClaimRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, exists := m.claims[claimKey(claimant, contract, tokenID, chainID)]; exists {
		return &c, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryStorage) InsertClaim(_ context.Context, claimant, contract string, tokenID, chainID int64) (*ClaimRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := claimKey(claimant, contract, tokenID, chainID)
	if _, exists := m.claims[key]; exists {
		return nil, ErrAlreadyClaimed
	}

	c := ClaimRecord{
		ID:           uuid.New().String(),
		UserAddress:  claimant,
		TokenAddress: contract,
		TokenID:      tokenID,
		ChainID:      chainID,
	}
	m.claims[key] = c
	return &c, nil
}

func (m *MemoryStorage) PingContext(_ context.Context) error {
	return nil
}
