package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_publication_store.go -package=mocks biopubs-ai/internal/storage PublicationStore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// PublicationStore defines the interface for publication storage operations.
type PublicationStore interface {
	// GetByID gets a publication by ID. Returns nil and ErrNotFound if not found.
	GetByID(ctx context.Context, id string) (*Publication, error)
	// List returns all publications matching the filter.
	List(ctx context.Context, filter Filter) ([]*Publication, error)
	// Insert inserts a new publication, generating an ID if absent.
	Insert(ctx context.Context, pub *Publication) error
	// SetEmbedding durably updates only the embedding column of a publication.
	SetEmbedding(ctx context.Context, id string, embedding []float64) error
	// SetSummary durably updates only the summary column of a publication.
	SetSummary(ctx context.Context, id string, summary string) error
}

// PublicationRepo provides methods for publication operations backed by SQLite.
// It implements the PublicationStore interface.
type PublicationRepo struct {
	db *sql.DB
}

// NewPublicationRepo creates a new PublicationRepo.
func NewPublicationRepo(db *sql.DB) *PublicationRepo {
	return &PublicationRepo{db: db}
}

const publicationColumns = "id, title, link, year, user_id, summary, embedding"

// GetByID gets a publication by ID.
// Returns nil and ErrNotFound if not found.
func (r *PublicationRepo) GetByID(ctx context.Context, id string) (*Publication, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+publicationColumns+" FROM publications WHERE id = ?", id,
	)
	pub, err := scanPublication(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query publication: %w", err)
	}
	return pub, nil
}

// List returns all publications matching the filter, in insertion order.
func (r *PublicationRepo) List(ctx context.Context, filter Filter) ([]*Publication, error) {
	query := "SELECT " + publicationColumns + " FROM publications"
	var clauses []string
	var args []any
	if filter.Year != 0 {
		clauses = append(clauses, "year = ?")
		args = append(args, filter.Year)
	}
	if filter.UserID != "" {
		clauses = append(clauses, "user_id = ?")
		args = append(args, filter.UserID)
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list publications: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var pubs []*Publication
	for rows.Next() {
		pub, err := scanPublication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan publication: %w", err)
		}
		pubs = append(pubs, pub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate publications: %w", err)
	}
	return pubs, nil
}

// Insert inserts a new publication. Generates a UUID when the ID is empty.
func (r *PublicationRepo) Insert(ctx context.Context, pub *Publication) error {
	if pub.ID == "" {
		pub.ID = uuid.New().String()
	}

	var embeddingJSON any
	if pub.HasEmbedding() {
		data, err := json.Marshal(pub.Embedding)
		if err != nil {
			return fmt.Errorf("failed to encode embedding: %w", err)
		}
		embeddingJSON = string(data)
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO publications (id, title, link, year, user_id, summary, embedding)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		pub.ID, pub.Title, pub.Link,
		nullableInt(pub.Year), nullableString(pub.UserID), nullableString(pub.Summary),
		embeddingJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to insert publication: %w", err)
	}
	return nil
}

// SetEmbedding durably updates only the embedding column.
// The write is atomic and idempotent; last write wins.
func (r *PublicationRepo) SetEmbedding(ctx context.Context, id string, embedding []float64) error {
	data, err := json.Marshal(embedding)
	if err != nil {
		return fmt.Errorf("failed to encode embedding: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		"UPDATE publications SET embedding = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		string(data), id,
	)
	if err != nil {
		return fmt.Errorf("failed to set embedding: %w", err)
	}
	return checkAffected(res)
}

// SetSummary durably updates only the summary column.
// The write is atomic and idempotent; last write wins.
func (r *PublicationRepo) SetSummary(ctx context.Context, id string, summary string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE publications SET summary = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		summary, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set summary: %w", err)
	}
	return checkAffected(res)
}

// scanner abstracts *sql.Row and *sql.Rows for scanPublication.
type scanner interface {
	Scan(dest ...any) error
}

func scanPublication(s scanner) (*Publication, error) {
	var pub Publication
	var year sql.NullInt64
	var userID, summary, embedding sql.NullString

	if err := s.Scan(&pub.ID, &pub.Title, &pub.Link, &year, &userID, &summary, &embedding); err != nil {
		return nil, err
	}

	pub.Year = int(year.Int64)
	pub.UserID = userID.String
	pub.Summary = summary.String
	if embedding.Valid && embedding.String != "" {
		if err := json.Unmarshal([]byte(embedding.String), &pub.Embedding); err != nil {
			return nil, fmt.Errorf("failed to decode embedding for %s: %w", pub.ID, err)
		}
	}
	return &pub, nil
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func nullableInt(n int) any {
	if n == 0 {
		return nil
	}
	return n
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
