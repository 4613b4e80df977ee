package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"orgnet/internal/domain"

	_ "github.com/go-sql-driver/mysql"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Repository persists confirmed transaction outcomes in MySQL. The journal is
// append-only; rows are never updated after insert.
type Repository struct {
	db *sql.DB
}

func NewRepository(dsn string) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("db dsn is required")
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
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
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			chain_id BIGINT UNSIGNED NOT NULL,
			domain VARCHAR(32) NOT NULL,
			action VARCHAR(64) NOT NULL,
			entity_id BIGINT UNSIGNED NOT NULL,
			tx_hash VARCHAR(66) NOT NULL,
			block_number BIGINT UNSIGNED NOT NULL,
			sender VARCHAR(42) NOT NULL,
			status TINYINT UNSIGNED NOT NULL,
			gas_used BIGINT UNSIGNED NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (id),
			UNIQUE KEY outcomes_tx_unique (tx_hash, action),
			KEY outcomes_entity_idx (domain, entity_id),
			KEY outcomes_sender_idx (sender, block_number)
		)`,
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
	ctx, span := startDBSpan(ctx, "mysql.StoreOutcome",
		attribute.String("outcome.domain", record.Domain),
		attribute.String("outcome.action", record.Action),
		attribute.String("tx.hash", record.TxHash),
	)
	defer span.End()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `INSERT IGNORE INTO outcomes (chain_id, domain, action, entity_id, tx_hash, block_number, sender, status, gas_used)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
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
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
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

	query := `SELECT id, chain_id, domain, action, entity_id, tx_hash, block_number, sender, status, gas_used, DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s') FROM outcomes`
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

func startDBSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("db.system", "mysql"))
	return otel.Tracer("orgnet/mysql").Start(ctx, name, trace.WithSpanKind(trace.SpanKindClient), trace.WithAttributes(attrs...))
}
