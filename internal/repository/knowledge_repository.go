package repository

import (
	"context"

	"tritech-assistant/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// KnowledgeRepository reads the dynamically ingested knowledge entries. The
// query engine only lists; Create exists for the seeding collaborator.
type KnowledgeRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewKnowledgeRepository(db *pgxpool.Pool, logger *zap.Logger) *KnowledgeRepository {
	return &KnowledgeRepository{
		db:     db,
		logger: logger,
	}
}

// ListEntries returns all knowledge entries in insertion order.
func (r *KnowledgeRepository) ListEntries(ctx context.Context) ([]models.KnowledgeEntry, error) {
	query := squirrel.Select("id", "product", "question", "answer", "keywords", "created_at").
		From("knowledge_entries").
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.KnowledgeEntry
	for rows.Next() {
		var entry models.KnowledgeEntry
		if err := rows.Scan(
			&entry.ID, &entry.Product, &entry.Question, &entry.Answer, &entry.Keywords, &entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Count returns the number of stored knowledge entries.
func (r *KnowledgeRepository) Count(ctx context.Context) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("knowledge_entries").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// Create inserts a knowledge entry. Used by cmd/seed only.
func (r *KnowledgeRepository) Create(ctx context.Context, entry *models.KnowledgeEntry) error {
	query := squirrel.Insert("knowledge_entries").
		Columns("id", "product", "question", "answer", "keywords", "created_at").
		Values(entry.ID, entry.Product, entry.Question, entry.Answer, entry.Keywords, entry.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
