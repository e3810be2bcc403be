package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"medgate/internal/tenant/models"
	"medgate/pkg/platform/sentinel"
)

// Postgres persists tenant configuration in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed tenant store.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Create inserts the tenant, assigning its numeric ID from the sequence.
func (s *Postgres) Create(ctx context.Context, t *models.Tenant) error {
	if t == nil {
		return fmt.Errorf("tenant is required")
	}
	conn, err := json.Marshal(t.Connection)
	if err != nil {
		return fmt.Errorf("marshal connection: %w", err)
	}
	var window []byte
	if t.BatchWindow != nil {
		if window, err = json.Marshal(t.BatchWindow); err != nil {
			return fmt.Errorf("marshal batch window: %w", err)
		}
	}
	query := `
		INSERT INTO tenants (mnemonic, vendor, connection, batch_window, monitored, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err = s.db.QueryRowContext(ctx, query,
		t.Mnemonic,
		string(t.Vendor),
		conn,
		window,
		t.Monitored,
		t.CreatedAt,
		t.UpdatedAt,
	).Scan(&t.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("tenant mnemonic must be unique: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("create tenant: %w", err)
	}
	return nil
}

// GetByMnemonic retrieves a tenant configuration record by mnemonic.
func (s *Postgres) GetByMnemonic(ctx context.Context, mnemonic string) (*models.Tenant, error) {
	query := `
		SELECT id, mnemonic, vendor, connection, batch_window, monitored, created_at, updated_at
		FROM tenants
		WHERE mnemonic = $1
	`
	row := s.db.QueryRowContext(ctx, query, mnemonic)

	var t models.Tenant
	var vendor string
	var conn []byte
	var window []byte
	err := row.Scan(&t.ID, &t.Mnemonic, &vendor, &conn, &window, &t.Monitored, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find tenant by mnemonic: %w", err)
	}

	t.Vendor = models.VendorType(vendor)
	if err := json.Unmarshal(conn, &t.Connection); err != nil {
		return nil, fmt.Errorf("unmarshal connection: %w", err)
	}
	if len(window) > 0 {
		t.BatchWindow = &models.BatchWindow{}
		if err := json.Unmarshal(window, t.BatchWindow); err != nil {
			return nil, fmt.Errorf("unmarshal batch window: %w", err)
		}
	}
	return &t, nil
}

// Count returns the total number of tenants.
func (s *Postgres) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tenants`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count tenants: %w", err)
	}
	return count, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
