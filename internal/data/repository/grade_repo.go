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

type GradeRepository interface {
	// Upsert inserts the grade or, when the (user, content) pair already
	// holds one, overwrites its score. The parent content row's
	// average_rating is recomputed in the same transaction.
	Upsert(ctx context.Context, grade *entity.Grade) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Grade, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Grade, error)
	FindByUserAndContent(ctx context.Context, userID uuid.UUID, contentType entity.ContentType, contentID uuid.UUID) (*entity.Grade, error)
	FindByContent(ctx context.Context, contentType entity.ContentType, contentID uuid.UUID) ([]*entity.Grade, error)
	CountByContent(ctx context.Context, contentType entity.ContentType, contentID uuid.UUID) (int64, error)
	Delete(ctx context.Context, grade *entity.Grade) error
}

type gradeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGradeRepository(db database.PgxIface, log *zap.Logger) GradeRepository {
	return &gradeRepository{
		db:  db,
		log: log.With(zap.String("repository", "grade")),
	}
}

const gradeColumns = `id, user_id, content_type, content_id, score, created_at, updated_at`

func scanGrade(row pgx.Row) (*entity.Grade, error) {
	var grade entity.Grade
	err := row.Scan(
		&grade.ID,
		&grade.UserID,
		&grade.ContentType,
		&grade.ContentID,
		&grade.Score,
		&grade.CreatedAt,
		&grade.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &grade, nil
}

func (r *gradeRepository) Upsert(ctx context.Context, grade *entity.Grade) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin grade transaction", zap.Error(err))
		return fmt.Errorf("begin grade upsert: %w", err)
	}
	defer tx.Rollback(ctx)

	// The unique constraint on (user_id, content_type, content_id) makes
	// concurrent submissions collapse into a single row.
	query := `
		INSERT INTO grades (id, user_id, content_type, content_id, score, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, content_type, content_id)
		DO UPDATE SET score = EXCLUDED.score, updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`

	err = tx.QueryRow(ctx, query,
		grade.ID,
		grade.UserID,
		grade.ContentType,
		grade.ContentID,
		grade.Score,
		grade.CreatedAt,
		grade.UpdatedAt,
	).Scan(&grade.ID, &grade.CreatedAt)

	if err != nil {
		r.log.Error("Failed to upsert grade",
			zap.Error(err),
			zap.String("user_id", grade.UserID.String()),
			zap.String("content_id", grade.ContentID.String()),
		)
		return fmt.Errorf("upsert grade for %s %s by user %s: %w",
			grade.ContentType, grade.ContentID.String(), grade.UserID.String(), err)
	}

	if err := recomputeAverageRating(ctx, tx, grade.ContentType, grade.ContentID); err != nil {
		r.log.Error("Failed to recompute average rating",
			zap.Error(err),
			zap.String("content_id", grade.ContentID.String()),
		)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit grade upsert", zap.Error(err))
		return fmt.Errorf("commit grade upsert: %w", err)
	}

	return nil
}

func (r *gradeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Grade, error) {
	query := `SELECT ` + gradeColumns + ` FROM grades WHERE id = $1`

	grade, err := scanGrade(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find grade by ID",
			zap.Error(err),
			zap.String("grade_id", id.String()),
		)
		return nil, fmt.Errorf("find grade by ID %s: %w", id.String(), err)
	}

	return grade, nil
}

func (r *gradeRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Grade, error) {
	query := `
		SELECT ` + gradeColumns + `
		FROM grades
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find grades by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find grades for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var grades []*entity.Grade
	for rows.Next() {
		grade, err := scanGrade(rows)
		if err != nil {
			r.log.Error("Failed to scan grade row", zap.Error(err))
			return nil, fmt.Errorf("scan grade row: %w", err)
		}
		grades = append(grades, grade)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate grade rows: %w", err)
	}

	return grades, nil
}

func (r *gradeRepository) FindByUserAndContent(ctx context.Context, userID uuid.UUID, contentType entity.ContentType, contentID uuid.UUID) (*entity.Grade, error) {
	query := `
		SELECT ` + gradeColumns + `
		FROM grades
		WHERE user_id = $1 AND content_type = $2 AND content_id = $3
	`

	grade, err := scanGrade(r.db.QueryRow(ctx, query, userID, contentType, contentID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find grade by user and content",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("content_id", contentID.String()),
		)
		return nil, fmt.Errorf("find grade for %s %s by user %s: %w",
			contentType, contentID.String(), userID.String(), err)
	}

	return grade, nil
}

func (r *gradeRepository) FindByContent(ctx context.Context, contentType entity.ContentType, contentID uuid.UUID) ([]*entity.Grade, error) {
	query := `
		SELECT ` + gradeColumns + `
		FROM grades
		WHERE content_type = $1 AND content_id = $2
		ORDER BY updated_at DESC
	`

	rows, err := r.db.Query(ctx, query, contentType, contentID)
	if err != nil {
		r.log.Error("Failed to find grades by content",
			zap.Error(err),
			zap.String("content_id", contentID.String()),
		)
		return nil, fmt.Errorf("find grades for %s %s: %w", contentType, contentID.String(), err)
	}
	defer rows.Close()

	var grades []*entity.Grade
	for rows.Next() {
		grade, err := scanGrade(rows)
		if err != nil {
			r.log.Error("Failed to scan grade row", zap.Error(err))
			return nil, fmt.Errorf("scan grade row: %w", err)
		}
		grades = append(grades, grade)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate grade rows: %w", err)
	}

	return grades, nil
}

func (r *gradeRepository) CountByContent(ctx context.Context, contentType entity.ContentType, contentID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM grades WHERE content_type = $1 AND content_id = $2`

	var count int64
	err := r.db.QueryRow(ctx, query, contentType, contentID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count grades by content",
			zap.Error(err),
			zap.String("content_id", contentID.String()),
		)
		return 0, fmt.Errorf("count grades for %s %s: %w", contentType, contentID.String(), err)
	}

	return count, nil
}

func (r *gradeRepository) Delete(ctx context.Context, grade *entity.Grade) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin grade delete transaction", zap.Error(err))
		return fmt.Errorf("begin grade delete: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `DELETE FROM grades WHERE id = $1`, grade.ID)
	if err != nil {
		r.log.Error("Failed to delete grade",
			zap.Error(err),
			zap.String("grade_id", grade.ID.String()),
		)
		return fmt.Errorf("delete grade %s: %w", grade.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("grade %s not found", grade.ID.String())
	}

	if err := recomputeAverageRating(ctx, tx, grade.ContentType, grade.ContentID); err != nil {
		r.log.Error("Failed to recompute average rating after delete",
			zap.Error(err),
			zap.String("content_id", grade.ContentID.String()),
		)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit grade delete", zap.Error(err))
		return fmt.Errorf("commit grade delete: %w", err)
	}

	r.log.Info("Grade deleted", zap.String("grade_id", grade.ID.String()))
	return nil
}
