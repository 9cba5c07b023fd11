package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/nethys"
)

// Compile-time interface verification.
var _ nethys.RecordService = (*RecordService)(nil)

// RecordService implements nethys.RecordService using SQLite.
// Records are stored as JSON with a few columns lifted out for filtering.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content []byte) string {
	h := xxhash.Sum64(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// SubmitRecord inserts a record or replaces the stored record with the same key.
func (s *RecordService) SubmitRecord(ctx context.Context, rec *nethys.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	var level sql.NullInt64
	if rec.Level != nil {
		level = sql.NullInt64{Int64: int64(*rec.Level), Valid: true}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (key, id, category, type, name, level, text, body, content_hash, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			type = excluded.type,
			name = excluded.name,
			level = excluded.level,
			text = excluded.text,
			body = excluded.body,
			content_hash = excluded.content_hash,
			indexed_at = excluded.indexed_at
	`, rec.Key(), rec.ID, string(rec.Category), rec.Type, rec.Name, level, rec.Text,
		string(body), hashContent(body), time.Now().UTC().Format(time.RFC3339))

	return err
}

// FindRecordByKey retrieves a record by its category-prefixed key.
func (s *RecordService) FindRecordByKey(ctx context.Context, key string) (*nethys.Record, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM records WHERE key = ?`, key).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, nethys.Errorf(nethys.ENOTFOUND, "record %s not found", key)
	}
	if err != nil {
		return nil, err
	}
	return decodeRecord(body)
}

// FindRecords retrieves records matching the filter ordered by category,
// then name.
func (s *RecordService) FindRecords(ctx context.Context, filter nethys.RecordFilter) ([]*nethys.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT body FROM records WHERE 1=1")

	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, string(*filter.Category))
	}
	if filter.Type != nil {
		query.WriteString(" AND type = ?")
		args = append(args, *filter.Type)
	}
	if filter.Query != nil {
		query.WriteString(" AND (name LIKE ? OR text LIKE ?)")
		pattern := "%" + *filter.Query + "%"
		args = append(args, pattern, pattern)
	}
	if filter.MinLevel != nil {
		query.WriteString(" AND level >= ?")
		args = append(args, *filter.MinLevel)
	}
	if filter.MaxLevel != nil {
		query.WriteString(" AND level <= ?")
		args = append(args, *filter.MaxLevel)
	}

	query.WriteString(" ORDER BY category ASC, name ASC, key ASC")
	args = paginate(&query, args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*nethys.Record
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		rec, err := decodeRecord(body)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ContentHash returns the stored content hash of a record.
func (s *RecordService) ContentHash(ctx context.Context, key string) (string, error) {
	var hash string
	err := s.db.QueryRowContext(ctx, `SELECT content_hash FROM records WHERE key = ?`, key).Scan(&hash)
	if err == sql.ErrNoRows {
		return "", nethys.Errorf(nethys.ENOTFOUND, "record %s not found", key)
	}
	return hash, err
}

func decodeRecord(body string) (*nethys.Record, error) {
	var rec nethys.Record
	if err := json.Unmarshal([]byte(body), &rec); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	return &rec, nil
}
