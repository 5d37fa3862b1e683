package repository

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"personal-site/domain"

	_ "modernc.org/sqlite" // register sqlite driver
)

const calculationSchema = `
CREATE TABLE IF NOT EXISTS calculations (
    id                  TEXT PRIMARY KEY,
    kind                TEXT NOT NULL,
    principal           REAL NOT NULL DEFAULT 0,
    contribution        REAL NOT NULL DEFAULT 0,
    annual_rate_percent REAL NOT NULL,
    years               REAL NOT NULL,
    result              REAL NOT NULL,
    created_at          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_calculations_created ON calculations(created_at);
`

// createdAtLayout is fixed width so created_at sorts lexically.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z"

// CalculationRepositorySQLite keeps the calculation history in a SQLite file.
type CalculationRepositorySQLite struct {
	db *sql.DB
}

// OpenCalculationRepositorySQLite opens or creates the history database at
// dbPath. ":memory:" gives a throwaway database.
func OpenCalculationRepositorySQLite(dbPath string) (*CalculationRepositorySQLite, error) {
	dsn := dbPath
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
			return nil, fmt.Errorf("creating history dir: %w", err)
		}
		dsn = dbPath + "?_pragma=journal_mode(wal)&_pragma=synchronous(normal)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	if dbPath == ":memory:" {
		// every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec(calculationSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &CalculationRepositorySQLite{db: db}, nil
}

func (r *CalculationRepositorySQLite) Close() error {
	return r.db.Close()
}

func (r *CalculationRepositorySQLite) Save(rec domain.CalculationRecord) error {
	_, err := r.db.Exec(`INSERT OR REPLACE INTO calculations
		(id, kind, principal, contribution, annual_rate_percent, years, result, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, string(rec.Kind), rec.Principal, rec.Contribution,
		rec.AnnualRatePercent, rec.Years, rec.Result,
		rec.CreatedAt.UTC().Format(createdAtLayout),
	)
	if err != nil {
		return fmt.Errorf("saving calculation %s: %w", rec.ID, err)
	}
	return nil
}

func (r *CalculationRepositorySQLite) Recent(limit int) ([]domain.CalculationRecord, error) {
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}

	rows, err := r.db.Query(`SELECT id, kind, principal, contribution, annual_rate_percent,
		years, result, created_at
		FROM calculations ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying calculations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.CalculationRecord
	for rows.Next() {
		var rec domain.CalculationRecord
		var kind, createdAt string
		if err := rows.Scan(&rec.ID, &kind, &rec.Principal, &rec.Contribution,
			&rec.AnnualRatePercent, &rec.Years, &rec.Result, &createdAt); err != nil {
			return nil, err
		}
		rec.Kind = domain.CalculationKind(kind)
		if t, err := time.Parse(createdAtLayout, createdAt); err == nil {
			rec.CreatedAt = t
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
