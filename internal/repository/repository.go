// Package repository implements link and click storage on PostgreSQL.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/atinyakov/shortlink/internal/models"
	"github.com/atinyakov/shortlink/internal/storage"
)

const linkColumns = "id, owner_id, title, original_url, short_code, COALESCE(custom_alias, ''), created_at"

// InitDB opens the pool and applies migrations.
func InitDB(dsn string, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if err := Migrate(db, logger); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

type LinkRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func CreateLinkRepository(db *sql.DB, logger *zap.Logger) *LinkRepository {
	return &LinkRepository{
		db:     db,
		logger: logger,
	}
}

// CreateLink inserts the link and reserves each of its codes in one
// transaction. A unique violation rolls everything back.
func (r *LinkRepository) CreateLink(ctx context.Context, link models.Link) (*models.Link, error) {
	if link.ID == "" {
		link.ID = uuid.NewString()
	}
	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO links (id, owner_id, title, original_url, short_code, custom_alias, created_at)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7);`,
		link.ID, link.OwnerID, link.Title, link.OriginalURL, link.ShortCode, link.CustomAlias, link.CreatedAt,
	)
	if err != nil {
		return nil, conflictFrom(err, link, "")
	}

	// alias first so an alias clash is reported as such
	codes := link.Codes()
	for i := len(codes) - 1; i >= 0; i-- {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO link_codes (code, link_id) VALUES ($1, $2);", codes[i], link.ID,
		); err != nil {
			return nil, conflictFrom(err, link, codes[i])
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &link, nil
}

// conflictFrom turns a unique violation into a *storage.ConflictError naming
// the colliding code.
func conflictFrom(err error, link models.Link, code string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return err
	}

	switch pgErr.ConstraintName {
	case "links_custom_alias_key":
		code = link.CustomAlias
	case "links_short_code_key":
		code = link.ShortCode
	case "links_pkey":
		code = link.ID
	}

	return &storage.ConflictError{Code: code}
}

func scanLink(row interface{ Scan(...any) error }) (*models.Link, error) {
	var l models.Link
	if err := row.Scan(&l.ID, &l.OwnerID, &l.Title, &l.OriginalURL, &l.ShortCode, &l.CustomAlias, &l.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

// FindByCode looks the code up among short codes and aliases.
func (r *LinkRepository) FindByCode(ctx context.Context, code string) (*models.Link, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+linkColumns+" FROM links WHERE short_code = $1 OR custom_alias = $1;", code)

	return scanLink(row)
}

func (r *LinkRepository) FindByID(ctx context.Context, id string) (*models.Link, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+linkColumns+" FROM links WHERE id = $1;", id)

	return scanLink(row)
}

func (r *LinkRepository) FindByOwner(ctx context.Context, ownerID string) ([]models.Link, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+linkColumns+" FROM links WHERE owner_id = $1 ORDER BY created_at DESC, id;", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []models.Link
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, *l)
	}

	return links, rows.Err()
}

// DeleteLink removes an owned link. Codes and click events go with it
// through ON DELETE CASCADE.
func (r *LinkRepository) DeleteLink(ctx context.Context, id, ownerID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var owner string
	err = tx.QueryRowContext(ctx, "SELECT owner_id FROM links WHERE id = $1 FOR UPDATE;", id).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrNotFound
		}
		return err
	}
	if owner != ownerID {
		return storage.ErrForbidden
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM links WHERE id = $1;", id); err != nil {
		return err
	}

	return tx.Commit()
}

// WriteClick appends one click event. A missing link surfaces as
// storage.ErrNotFound via the foreign key.
func (r *LinkRepository) WriteClick(ctx context.Context, c models.ClickEvent) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO click_events (id, link_id, occurred_at, raw_user_agent, device, city, country)
		 VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		c.ID, c.LinkID, c.OccurredAt, c.RawUserAgent, string(c.Device), c.City, c.Country,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return storage.ErrNotFound
		}
		return fmt.Errorf("insert click: %w", err)
	}

	return nil
}

// ClicksByLink reads the link's events in chronological order. The existence
// check and the read share one repeatable-read snapshot.
func (r *LinkRepository) ClicksByLink(ctx context.Context, linkID string) ([]models.ClickEvent, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var one int
	if err := tx.QueryRowContext(ctx, "SELECT 1 FROM links WHERE id = $1;", linkID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT id, link_id, occurred_at, raw_user_agent, device, city, country
		 FROM click_events WHERE link_id = $1 ORDER BY occurred_at, id;`, linkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]models.ClickEvent, 0)
	for rows.Next() {
		var (
			e      models.ClickEvent
			device string
		)
		if err := rows.Scan(&e.ID, &e.LinkID, &e.OccurredAt, &e.RawUserAgent, &device, &e.City, &e.Country); err != nil {
			return nil, err
		}
		e.Device = models.Device(device)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, tx.Commit()
}

func (r *LinkRepository) OwnerSummary(ctx context.Context, ownerID string) (*models.OwnerSummary, error) {
	var sum models.OwnerSummary
	err := r.db.QueryRowContext(ctx,
		`SELECT
		   (SELECT COUNT(*) FROM links WHERE owner_id = $1),
		   (SELECT COUNT(*) FROM click_events e JOIN links l ON l.id = e.link_id WHERE l.owner_id = $1);`,
		ownerID,
	).Scan(&sum.LinksCreated, &sum.TotalClicks)
	if err != nil {
		return nil, err
	}

	return &sum, nil
}

func (r *LinkRepository) GetStats(ctx context.Context) (*models.ServiceStats, error) {
	var s models.ServiceStats
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*), COUNT(DISTINCT owner_id) FROM links;").Scan(&s.Links, &s.Owners)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *LinkRepository) PingContext(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
