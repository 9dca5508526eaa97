package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sstmlab/nfc-redirect/internal/storage"
)

// Cookie and query-parameter names carrying issued credentials.
const (
	// SubjectCookie holds the non-expiring subject credential issued on the
	// registration path.
	SubjectCookie = "x-nfc-auth"

	// ClaimCookie holds the short-lived claim-handoff credential.
	ClaimCookie = "x-poap-auth"

	// QueryToken is the query parameter appended to fallback destinations.
	QueryToken = "NFT_JWT"
)

const (
	// ClaimTokenTTL bounds the claim-handoff credential.
	ClaimTokenTTL = 5 * time.Minute

	// DestinationTokenTTL bounds the proof-of-destination query token.
	DestinationTokenTTL = time.Minute
)

// Category classifies a stored destination URL.
type Category int

const (
	// CategoryIdentity marks destinations under the identity-service prefix.
	CategoryIdentity Category = iota

	// CategoryFallback marks every other destination, collectible shops
	// included.
	CategoryFallback
)

// CredentialKind distinguishes how an issued credential travels.
type CredentialKind int

const (
	// CredentialCookie credentials are set as HttpOnly/Secure cookies scoped
	// to the destination's registrable domain.
	CredentialCookie CredentialKind = iota

	// CredentialQuery credentials are appended to the redirect Location,
	// because cross-origin destinations cannot read our cookies.
	CredentialQuery
)

// Credential is the at-most-one side-channel credential a resolution issues.
type Credential struct {
	Kind   CredentialKind
	Name   string
	Value  string
	Domain string
	TTL    time.Duration
}

// Resolution is the terminal outcome of a successful resolution: where to
// redirect and which credential, if any, to attach.
type Resolution struct {
	Location   string
	Credential *Credential
}

// Resolver decides the outgoing response for a verified token. Branching is
// driven entirely by the shape of the stored destination URL, so Classify is
// kept pure and exhaustively tested.
type Resolver struct {
	codec        CodecIface
	redirects    RedirectStore
	users        UserDirectory
	identityBase string
	registerURL  string
	logger       *zap.Logger
}

func NewResolver(codec CodecIface, redirects RedirectStore, users UserDirectory, identityBaseURL string, logger *zap.Logger) (*Resolver, error) {
	base := strings.TrimRight(identityBaseURL, "/")
	if _, err := url.Parse(base); err != nil || base == "" {
		return nil, fmt.Errorf("invalid identity base url %q", identityBaseURL)
	}

	return &Resolver{
		codec:        codec,
		redirects:    redirects,
		users:        users,
		identityBase: base,
		registerURL:  base + "/user/register",
		logger:       logger,
	}, nil
}

// Classify assigns a destination URL to exactly one category. Identity wins
// over fallback; there is no third bucket.
func (r *Resolver) Classify(destination string) Category {
	if strings.HasPrefix(destination, r.identityBase+"/user") {
		return CategoryIdentity
	}
	return CategoryFallback
}

func (r *Resolver) isRegistration(destination string) bool {
	return strings.HasPrefix(destination, r.registerURL)
}

// Resolve walks the state machine: verify the token, load the record,
// classify the destination and decide the redirect plus optional credential.
// Every failure is a typed error; no partial state leaks to the caller.
func (r *Resolver) Resolve(ctx context.Context, token string) (*Resolution, error) {
	claims, err := r.codec.Verify(token)
	if err != nil {
		return nil, err
	}

	record, err := r.redirects.FindRedirectBySubject(ctx, claims.SubjectID)
	if err != nil {
		return nil, err
	}

	ref := collectibleOf(record)

	if r.Classify(record.URL) == CategoryIdentity {
		return r.resolveIdentity(ctx, record, ref)
	}

	return r.resolveFallback(record, ref)
}

func (r *Resolver) resolveIdentity(ctx context.Context, record *storage.RedirectRecord, ref *CollectibleRef) (*Resolution, error) {
	user, err := r.users.FindUserByNFC(ctx, record.Subject)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	userExists := err == nil

	if r.isRegistration(record.URL) {
		if userExists {
			// One-time rewrite to the canonical per-handle URL. The update is
			// conditional on the destination still being the registration URL,
			// so a concurrent winner makes this a no-op.
			newURL := r.identityBase + "/user/" + user.Username
			err := r.redirects.UpdateRedirectDestination(ctx, record.Subject, record.URL, newURL)
			if err != nil && !errors.Is(err, storage.ErrNotFound) {
				return nil, err
			}
			r.logger.Info("rewrote registration destination",
				zap.String("subject", record.Subject),
				zap.String("url", newURL),
			)
			return &Resolution{Location: newURL}, nil
		}

		value, err := r.codec.Sign(&Claims{SubjectID: record.Subject, Collectible: ref}, 0)
		if err != nil {
			return nil, err
		}
		return &Resolution{
			Location: record.URL,
			Credential: &Credential{
				Kind:   CredentialCookie,
				Name:   SubjectCookie,
				Value:  value,
				Domain: registrableDomain(record.URL),
			},
		}, nil
	}

	if userExists {
		value, err := r.codec.Sign(&Claims{
			SubjectID:   record.Subject,
			Collectible: ref,
			User: &UserSnapshot{
				Username: user.Username,
				Address:  user.Address,
				Email:    user.Email,
				Avatar:   user.Avatar,
				Bio:      user.Bio,
			},
		}, ClaimTokenTTL)
		if err != nil {
			return nil, err
		}
		return &Resolution{
			Location: record.URL,
			Credential: &Credential{
				Kind:   CredentialCookie,
				Name:   ClaimCookie,
				Value:  value,
				Domain: registrableDomain(record.URL),
				TTL:    ClaimTokenTTL,
			},
		}, nil
	}

	return &Resolution{Location: record.URL}, nil
}

func (r *Resolver) resolveFallback(record *storage.RedirectRecord, ref *CollectibleRef) (*Resolution, error) {
	value, err := r.codec.Sign(&Claims{SubjectID: record.Subject, Collectible: ref}, DestinationTokenTTL)
	if err != nil {
		return nil, err
	}

	location, err := appendQuery(record.URL, QueryToken, value)
	if err != nil {
		return nil, fmt.Errorf("malformed destination for subject %s: %w", record.Subject, err)
	}

	return &Resolution{
		Location: location,
		Credential: &Credential{
			Kind:  CredentialQuery,
			Name:  QueryToken,
			Value: value,
			TTL:   DestinationTokenTTL,
		},
	}, nil
}

func collectibleOf(record *storage.RedirectRecord) *CollectibleRef {
	if !record.HasCollectible() {
		return nil
	}
	return &CollectibleRef{
		Contract: record.PoapContract,
		TokenID:  record.PoapTokenID,
		ChainID:  record.ChainID,
	}
}

func appendQuery(rawURL, key, value string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// registrableDomain returns the last two DNS labels of the destination host,
// so the cookie is readable by subdomains of the destination.
func registrableDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	host := u.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return host
	}

	return strings.Join(labels[len(labels)-2:], ".")
}
