package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"orgnet/internal/domain"

	_ "modernc.org/sqlite"
)

// Repository is the single-node journal backend. It mirrors the MySQL
// repository's behavior on an embedded database file.
type Repository struct {
	db *sql.DB
}

func NewRepository(dbPath string) (*Repository, error) {
	if dbPath == "" {
		return nil, errors.New("db path is required")
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	if err := createSchema(db); err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

func createSchema(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS outcomes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			chain_id INTEGER NOT NULL,
			domain TEXT NOT NULL,
			action TEXT NOT NULL,
			entity_id INTEGER NOT NULL,
			tx_hash TEXT NOT NULL,
			block_number INTEGER NOT NULL,
			sender TEXT NOT NULL,
			status INTEGER NOT NULL,
			gas_used INTEGER NOT NULL,
			created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(tx_hash, action)
		)`,
		`CREATE INDEX IF NOT EXISTS outcomes_entity_idx ON outcomes (domain, entity_id)`,
		`CREATE INDEX IF NOT EXISTS outcomes_sender_idx ON outcomes (sender, block_number)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// StoreOutcome inserts one journal row. A row with the same tx_hash and action
// already present is left untouched, so redelivered stream messages are
// harmless.
func (r *Repository) StoreOutcome(ctx context.Context, record domain.OutcomeRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `INSERT INTO outcomes (chain_id, domain, action, entity_id, tx_hash, block_number, sender, status, gas_used)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(tx_hash, action) DO NOTHING`,
		record.ChainID,
		record.Domain,
		record.Action,
		record.EntityID,
		strings.ToLower(record.TxHash),
		record.BlockNumber,
		strings.ToLower(record.Sender),
		record.Status,
		record.GasUsed,
	)
	return err
}

// QueryOutcomes returns journal rows matching the filter, newest first.
func (r *Repository) QueryOutcomes(ctx context.Context, filter domain.OutcomeFilter) ([]domain.OutcomeRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	clauses := make([]string, 0, 6)
	args := make([]any, 0, 7)

	if filter.Domain != "" {
		clauses = append(clauses, "domain = ?")
		args = append(args, strings.ToLower(filter.Domain))
	}
	if filter.Action != "" {
		clauses = append(clauses, "action = ?")
		args = append(args, strings.ToLower(filter.Action))
	}
	if filter.Sender != "" {
		clauses = append(clauses, "sender = ?")
		args = append(args, strings.ToLower(filter.Sender))
	}
	if filter.EntityID != nil {
		clauses = append(clauses, "entity_id = ?")
		args = append(args, *filter.EntityID)
	}
	if filter.FromBlock != nil {
		clauses = append(clauses, "block_number >= ?")
		args = append(args, *filter.FromBlock)
	}
	if filter.ToBlock != nil {
		clauses = append(clauses, "block_number <= ?")
		args = append(args, *filter.ToBlock)
	}

	query := `SELECT id, chain_id, domain, action, entity_id, tx_hash, block_number, sender, status, gas_used, created_at FROM outcomes`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY id DESC LIMIT ?"

	limit := filter.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.OutcomeRecord
	for rows.Next() {
		var record domain.OutcomeRecord
		if err := rows.Scan(&record.ID, &record.ChainID, &record.Domain, &record.Action, &record.EntityID, &record.TxHash, &record.BlockNumber, &record.Sender, &record.Status, &record.GasUsed, &record.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// LastOutcomeID reports the highest journal row id, or false when the journal
// is empty.
func (r *Repository) LastOutcomeID(ctx context.Context) (int64, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var max sql.NullInt64
	if err := r.db.QueryRowContext(ctx, `SELECT MAX(id) FROM outcomes`).Scan(&max); err != nil {
		return 0, false, err
	}
	if !max.Valid {
		return 0, false, nil
	}
	return max.Int64, true, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return r.db.PingContext(ctx)
}

func (r *Repository) Close() error {
	return r.db.Close()
}
