package repository

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// contentTable maps a content type to the table holding its
// average_rating column.
func contentTable(contentType entity.ContentType) string {
	if contentType == entity.ContentTypeSeries {
		return "series"
	}
	return "movies"
}

// recomputeAverageRating refreshes the stored average for one content
// row from its grades. Runs inside the caller's transaction so a grade
// write and the aggregate it feeds commit together.
func recomputeAverageRating(ctx context.Context, tx pgx.Tx, contentType entity.ContentType, contentID uuid.UUID) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET average_rating = COALESCE(
			(SELECT AVG(score) FROM grades WHERE content_type = $2 AND content_id = $1), 0),
		    updated_at = NOW()
		WHERE id = $1
	`, contentTable(contentType))

	if _, err := tx.Exec(ctx, query, contentID, contentType); err != nil {
		return fmt.Errorf("recompute average rating for %s %s: %w",
			contentType, contentID.String(), err)
	}

	return nil
}

// deleteContentRefs removes the grades and trivia attached to a
// content row. Grades and trivia reference content polymorphically, so
// there is no foreign key cascade to lean on.
func deleteContentRefs(ctx context.Context, tx pgx.Tx, contentType entity.ContentType, contentID uuid.UUID) error {
	if _, err := tx.Exec(ctx,
		`DELETE FROM grades WHERE content_type = $1 AND content_id = $2`,
		contentType, contentID); err != nil {
		return fmt.Errorf("delete grades for %s %s: %w", contentType, contentID.String(), err)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM trivia WHERE content_type = $1 AND content_id = $2`,
		contentType, contentID); err != nil {
		return fmt.Errorf("delete trivia for %s %s: %w", contentType, contentID.String(), err)
	}

	return nil
}
