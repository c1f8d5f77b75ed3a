package recordstore

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrations embed.FS

// PGStore keeps every table in one jsonb-backed records table.
type PGStore struct{ db *pgxpool.Pool }

func NewPGStore(db *pgxpool.Pool) *PGStore { return &PGStore{db: db} }

// OpenPG connects and pings the database.
func OpenPG(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

// Migrate applies the embedded schema migrations.
func Migrate(dsn string) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("could not open migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, pgx5URL(dsn))
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}
	return nil
}

func pgx5URL(dsn string) string {
	for _, scheme := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, scheme) {
			return "pgx5://" + strings.TrimPrefix(dsn, scheme)
		}
	}
	return dsn
}

func (r *PGStore) Find(ctx context.Context, table, id string) (*Record, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	row := r.db.QueryRow(ctx, `
		SELECT id, fields, created_at FROM records
		WHERE table_name = $1 AND id = $2
	`, table, id)
	rec, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// List honours the first sort key only.
func (r *PGStore) List(ctx context.Context, table string, q Query) ([]Record, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	sql := `SELECT id, fields, created_at FROM records WHERE table_name = $1`
	args := []any{table}
	if len(q.Sort) > 0 {
		dir := "ASC"
		if q.Sort[0].Direction == Desc {
			dir = "DESC"
		}
		args = append(args, q.Sort[0].Field)
		n := len(args)
		sql += fmt.Sprintf(`
		ORDER BY CASE WHEN jsonb_typeof(fields->($%[1]d::text)) = 'number'
		              THEN (fields->>($%[1]d::text))::numeric END %[2]s NULLS LAST,
		         fields->>($%[1]d::text) %[2]s NULLS LAST, created_at`, n, dir)
	} else {
		sql += ` ORDER BY created_at`
	}
	if q.MaxRecords > 0 {
		args = append(args, q.MaxRecords)
		sql += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		rec.Fields = rec.Fields.project(q.Fields)
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (r *PGStore) FindByField(ctx context.Context, table, field, value string) (*Record, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	row := r.db.QueryRow(ctx, `
		SELECT id, fields, created_at FROM records
		WHERE table_name = $1 AND fields->>($2::text) = $3
		ORDER BY created_at LIMIT 1
	`, table, field, value)
	rec, err := scanRecord(row)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	var known bool
	if err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM records WHERE table_name = $1 AND fields ? ($2::text))
	`, table, field).Scan(&known); err != nil {
		return nil, err
	}
	if !known {
		return nil, ErrUnknownField
	}
	return nil, ErrNotFound
}

// CreateMany inserts every row in one transaction.
func (r *PGStore) CreateMany(ctx context.Context, table string, rows []Fields) ([]Record, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	out := make([]Record, 0, len(rows))
	for _, f := range rows {
		raw, err := json.Marshal(f)
		if err != nil {
			return nil, fmt.Errorf("encode fields: %w", err)
		}
		rec := Record{ID: newRecordID(), Fields: f.clone()}
		if err := tx.QueryRow(ctx, `
			INSERT INTO records (id, table_name, fields, created_at)
			VALUES ($1, $2, $3, NOW())
			RETURNING created_at
		`, rec.ID, table, raw).Scan(&rec.CreatedTime); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

func scanRecord(row pgx.Row) (*Record, error) {
	var (
		rec Record
		raw []byte
	)
	if err := row.Scan(&rec.ID, &raw, &rec.CreatedTime); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &rec.Fields); err != nil {
		return nil, fmt.Errorf("decode fields: %w", err)
	}
	return &rec, nil
}
