// Package repository implements the storage gateways on postgres. All backend
// errors are folded into the storage error kinds so nothing pgx-specific
// leaks into the resolver or the claim guard.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/sstmlab/nfc-redirect/internal/storage"
)

func InitDB(ps string, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("pgx", ps)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	createTables := `
	CREATE TABLE IF NOT EXISTS redirects (
		uuid UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		url TEXT NOT NULL,
		description TEXT,
		number INTEGER,
		"group" INTEGER,
		x_location INTEGER,
		z_location INTEGER,
		phygital_contract TEXT,
		phygital_token_id INTEGER,
		poap_contract TEXT,
		poap_token_id INTEGER,
		chain_id INTEGER
	);
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		nfc TEXT UNIQUE,
		username TEXT NOT NULL,
		address TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		avatar TEXT NOT NULL DEFAULT '',
		bio TEXT NOT NULL DEFAULT '',
		x TEXT,
		instagram TEXT,
		tiktok TEXT,
		shop TEXT,
		contact_email TEXT
	);
	CREATE TABLE IF NOT EXISTS nft_claims (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_address TEXT NOT NULL,
		token_address TEXT NOT NULL,
		token_id INTEGER NOT NULL,
		chain_id INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT now(),
		CONSTRAINT nft_claims_tuple_unique UNIQUE (user_address, token_address, token_id, chain_id)
	);`

	_, err = db.Exec(createTables)
	if err != nil {
		logger.Fatal("creating tables", zap.Error(err))
	}

	return db
}

type Repository struct {
	db     *sql.DB
	logger *zap.Logger
}

func New(db *sql.DB, logger *zap.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// unavailable folds a backend error into the single retriable kind.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, storage.ErrUnavailable, err)
}

func (r *Repository) FindRedirectBySubject(ctx context.Context, subject string) (*storage.RedirectRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT uuid, url, COALESCE(description, ''), COALESCE(number, 0), COALESCE("group", 0),
		       COALESCE(x_location, 0), COALESCE(z_location, 0),
		       COALESCE(phygital_contract, ''), COALESCE(phygital_token_id, 0),
		       COALESCE(poap_contract, ''), COALESCE(poap_token_id, 0), COALESCE(chain_id, 0)
		FROM redirects WHERE uuid = $1;`, subject)

	var rec storage.RedirectRecord
	err := row.Scan(&rec.Subject, &rec.URL, &rec.Description, &rec.Number, &rec.Group,
		&rec.XLocation, &rec.ZLocation,
		&rec.PhygitalContract, &rec.PhygitalTokenID,
		&rec.PoapContract, &rec.PoapTokenID, &rec.ChainID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, unavailable("find redirect", err)
	}

	return &rec, nil
}

// UpdateRedirectDestination rewrites the destination only while it still
// equals oldURL. The condition makes the registration rewrite safe under
// concurrent resolution: the losing writer affects zero rows.
func (r *Repository) UpdateRedirectDestination(ctx context.Context, subject, oldURL, newURL string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE redirects SET url = $3 WHERE uuid = $1 AND url = $2;",
		subject, oldURL, newURL,
	)
	if err != nil {
		return unavailable("update redirect destination", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return unavailable("update redirect destination", err)
	}

	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (r *Repository) InsertRedirects(ctx context.Context, rs []storage.RedirectRecord) ([]storage.RedirectRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, unavailable("insert redirects", err)
	}

	inserted := make([]storage.RedirectRecord, 0, len(rs))
	for _, rec := range rs {
		if rec.Subject == "" {
			rec.Subject = uuid.New().String()
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO redirects (uuid, url, description, number, "group", x_location, z_location,
			                       phygital_contract, phygital_token_id, poap_contract, poap_token_id, chain_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`,
			rec.Subject, rec.URL, rec.Description, rec.Number, rec.Group,
			rec.XLocation, rec.ZLocation,
			rec.PhygitalContract, rec.PhygitalTokenID,
			rec.PoapContract, rec.PoapTokenID, rec.ChainID,
		)
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				r.logger.Error("rollback failed", zap.Error(rbErr))
			}
			return nil, unavailable("insert redirects", err)
		}

		inserted = append(inserted, rec)
	}

	if err := tx.Commit(); err != nil {
		return nil, unavailable("insert redirects", err)
	}

	return inserted, nil
}

func (r *Repository) scanUser(row *sql.Row) (*storage.UserRecord, error) {
	var u storage.UserRecord
	err := row.Scan(&u.ID, &u.NFC, &u.Username, &u.Address, &u.Email, &u.Avatar, &u.Bio,
		&u.X, &u.Instagram, &u.TikTok, &u.Shop, &u.ContactEmail)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, unavailable("find user", err)
	}

	return &u, nil
}

const userColumns = `id, COALESCE(nfc, ''), username, address, email, avatar, bio,
	COALESCE(x, ''), COALESCE(instagram, ''), COALESCE(tiktok, ''), COALESCE(shop, ''), COALESCE(contact_email, '')`

func (r *Repository) FindUserByNFC(ctx context.Context, nfc string) (*storage.UserRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE nfc = $1;", nfc)
	return r.scanUser(row)
}

func (r *Repository) FindUserByHandle(ctx context.Context, handle string) (*storage.UserRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE username = $1;", handle)
	return r.scanUser(row)
}

func (r *Repository) UpsertUserByNFC(ctx context.Context, u storage.UserRecord) (*storage.UserRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO users (nfc, username, address, email, avatar, bio, x, instagram, tiktok, shop, contact_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (nfc) DO UPDATE SET
			username = EXCLUDED.username,
			address = EXCLUDED.address,
			email = EXCLUDED.email,
			avatar = EXCLUDED.avatar,
			bio = EXCLUDED.bio,
			x = EXCLUDED.x,
			instagram = EXCLUDED.instagram,
			tiktok = EXCLUDED.tiktok,
			shop = EXCLUDED.shop,
			contact_email = EXCLUDED.contact_email
		RETURNING `+userColumns+";",
		u.NFC, u.Username, u.Address, u.Email, u.Avatar, u.Bio,
		u.X, u.Instagram, u.TikTok, u.Shop, u.ContactEmail,
	)
	return r.scanUser(row)
}

func (r *Repository) FindClaim(ctx context.Context, claimant, contract string, tokenID, chainID int64) (*storage.ClaimRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_address, token_address, token_id, chain_id FROM nft_claims
		WHERE user_address = $1 AND token_address = $2 AND token_id = $3 AND chain_id = $4;`,
		claimant, contract, tokenID, chainID)

	var c storage.ClaimRecord
	err := row.Scan(&c.ID, &c.UserAddress, &c.TokenAddress, &c.TokenID, &c.ChainID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, unavailable("find claim", err)
	}

	return &c, nil
}

// InsertClaim relies on the four-tuple unique constraint as the authoritative
// dedup guard: the constraint violation is reported as ErrAlreadyClaimed.
func (r *Repository) InsertClaim(ctx context.Context, claimant, contract string, tokenID, chainID int64) (*storage.ClaimRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO nft_claims (user_address, token_address, token_id, chain_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_address, token_address, token_id, chain_id;`,
		claimant, contract, tokenID, chainID)

	var c storage.ClaimRecord
	err := row.Scan(&c.ID, &c.UserAddress, &c.TokenAddress, &c.TokenID, &c.ChainID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, storage.ErrAlreadyClaimed
		}
		return nil, unavailable("insert claim", err)
	}

	return &c, nil
}

func (r *Repository) PingContext(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
