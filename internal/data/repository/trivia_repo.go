package repository

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TriviaRepository interface {
	Create(ctx context.Context, trivia *entity.Trivia) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Trivia, error)
	FindByContent(ctx context.Context, contentType entity.ContentType, contentID uuid.UUID) ([]*entity.Trivia, error)
	Update(ctx context.Context, trivia *entity.Trivia) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type triviaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTriviaRepository(db database.PgxIface, log *zap.Logger) TriviaRepository {
	return &triviaRepository{
		db:  db,
		log: log.With(zap.String("repository", "trivia")),
	}
}

const triviaColumns = `id, content_type, content_id, question, answer, created_at, updated_at`

func scanTrivia(row pgx.Row) (*entity.Trivia, error) {
	var trivia entity.Trivia
	err := row.Scan(
		&trivia.ID,
		&trivia.ContentType,
		&trivia.ContentID,
		&trivia.Question,
		&trivia.Answer,
		&trivia.CreatedAt,
		&trivia.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &trivia, nil
}

func (r *triviaRepository) Create(ctx context.Context, trivia *entity.Trivia) error {
	query := `
		INSERT INTO trivia (id, content_type, content_id, question, answer, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		trivia.ID,
		trivia.ContentType,
		trivia.ContentID,
		trivia.Question,
		trivia.Answer,
		trivia.CreatedAt,
		trivia.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create trivia",
			zap.Error(err),
			zap.String("content_id", trivia.ContentID.String()),
		)
		return fmt.Errorf("create trivia for %s %s: %w",
			trivia.ContentType, trivia.ContentID.String(), err)
	}

	return nil
}

func (r *triviaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Trivia, error) {
	query := `SELECT ` + triviaColumns + ` FROM trivia WHERE id = $1`

	trivia, err := scanTrivia(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find trivia by ID",
			zap.Error(err),
			zap.String("trivia_id", id.String()),
		)
		return nil, fmt.Errorf("find trivia by ID %s: %w", id.String(), err)
	}

	return trivia, nil
}

func (r *triviaRepository) FindByContent(ctx context.Context, contentType entity.ContentType, contentID uuid.UUID) ([]*entity.Trivia, error) {
	query := `
		SELECT ` + triviaColumns + `
		FROM trivia
		WHERE content_type = $1 AND content_id = $2
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, contentType, contentID)
	if err != nil {
		r.log.Error("Failed to find trivia by content",
			zap.Error(err),
			zap.String("content_id", contentID.String()),
		)
		return nil, fmt.Errorf("find trivia for %s %s: %w", contentType, contentID.String(), err)
	}
	defer rows.Close()

	var items []*entity.Trivia
	for rows.Next() {
		trivia, err := scanTrivia(rows)
		if err != nil {
			r.log.Error("Failed to scan trivia row", zap.Error(err))
			return nil, fmt.Errorf("scan trivia row: %w", err)
		}
		items = append(items, trivia)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate trivia rows: %w", err)
	}

	return items, nil
}

func (r *triviaRepository) Update(ctx context.Context, trivia *entity.Trivia) error {
	query := `
		UPDATE trivia
		SET question = $2, answer = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		trivia.ID,
		trivia.Question,
		trivia.Answer,
		trivia.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update trivia",
			zap.Error(err),
			zap.String("trivia_id", trivia.ID.String()),
		)
		return fmt.Errorf("update trivia %s: %w", trivia.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("trivia %s not found", trivia.ID.String())
	}

	return nil
}

func (r *triviaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM trivia WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete trivia",
			zap.Error(err),
			zap.String("trivia_id", id.String()),
		)
		return fmt.Errorf("delete trivia %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("trivia %s not found", id.String())
	}

	r.log.Info("Trivia deleted", zap.String("trivia_id", id.String()))
	return nil
}
