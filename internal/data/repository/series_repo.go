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

type SeriesRepository interface {
	Create(ctx context.Context, series *entity.Series) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Series, error)
	FindAll(ctx context.Context) ([]*entity.Series, error)
	Update(ctx context.Context, series *entity.Series) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type seriesRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeriesRepository(db database.PgxIface, log *zap.Logger) SeriesRepository {
	return &seriesRepository{
		db:  db,
		log: log.With(zap.String("repository", "series")),
	}
}

const seriesColumns = `id, title, description, episode_count, genre, release_year,
		average_rating, cover_image, status, created_at, updated_at`

func scanSeries(row pgx.Row) (*entity.Series, error) {
	var series entity.Series
	err := row.Scan(
		&series.ID,
		&series.Title,
		&series.Description,
		&series.EpisodeCount,
		&series.Genre,
		&series.ReleaseYear,
		&series.AverageRating,
		&series.CoverImage,
		&series.Status,
		&series.CreatedAt,
		&series.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &series, nil
}

func (r *seriesRepository) Create(ctx context.Context, series *entity.Series) error {
	query := `
		INSERT INTO series (id, title, description, episode_count, genre,
		                    release_year, average_rating, cover_image, status,
		                    created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		series.ID,
		series.Title,
		series.Description,
		series.EpisodeCount,
		series.Genre,
		series.ReleaseYear,
		series.AverageRating,
		series.CoverImage,
		series.Status,
		series.CreatedAt,
		series.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create series",
			zap.Error(err),
			zap.String("title", series.Title),
		)
		return fmt.Errorf("create series: %w", err)
	}

	return nil
}

func (r *seriesRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Series, error) {
	query := `SELECT ` + seriesColumns + ` FROM series WHERE id = $1`

	series, err := scanSeries(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find series by ID",
			zap.Error(err),
			zap.String("series_id", id.String()),
		)
		return nil, fmt.Errorf("find series by ID %s: %w", id.String(), err)
	}

	return series, nil
}

func (r *seriesRepository) FindAll(ctx context.Context) ([]*entity.Series, error) {
	query := `SELECT ` + seriesColumns + ` FROM series ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all series", zap.Error(err))
		return nil, fmt.Errorf("find series: %w", err)
	}
	defer rows.Close()

	var seriesList []*entity.Series
	for rows.Next() {
		series, err := scanSeries(rows)
		if err != nil {
			r.log.Error("Failed to scan series row", zap.Error(err))
			return nil, fmt.Errorf("scan series row: %w", err)
		}
		seriesList = append(seriesList, series)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate series rows: %w", err)
	}

	return seriesList, nil
}

func (r *seriesRepository) Update(ctx context.Context, series *entity.Series) error {
	query := `
		UPDATE series
		SET title = $2, description = $3, episode_count = $4, genre = $5,
		    release_year = $6, cover_image = $7, status = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		series.ID,
		series.Title,
		series.Description,
		series.EpisodeCount,
		series.Genre,
		series.ReleaseYear,
		series.CoverImage,
		series.Status,
		series.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update series",
			zap.Error(err),
			zap.String("series_id", series.ID.String()),
		)
		return fmt.Errorf("update series %s: %w", series.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("series %s not found", series.ID.String())
	}

	return nil
}

// Delete removes the series with its episodes, grades and trivia in
// one transaction.
func (r *seriesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin delete transaction",
			zap.Error(err),
			zap.String("series_id", id.String()),
		)
		return fmt.Errorf("begin delete series %s: %w", id.String(), err)
	}
	defer tx.Rollback(ctx)

	if err := deleteContentRefs(ctx, tx, entity.ContentTypeSeries, id); err != nil {
		r.log.Error("Failed to delete series references",
			zap.Error(err),
			zap.String("series_id", id.String()),
		)
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM episodes WHERE series_id = $1`, id); err != nil {
		r.log.Error("Failed to delete series episodes",
			zap.Error(err),
			zap.String("series_id", id.String()),
		)
		return fmt.Errorf("delete episodes for series %s: %w", id.String(), err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM series WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete series",
			zap.Error(err),
			zap.String("series_id", id.String()),
		)
		return fmt.Errorf("delete series %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("series %s not found", id.String())
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit series delete",
			zap.Error(err),
			zap.String("series_id", id.String()),
		)
		return fmt.Errorf("commit delete series %s: %w", id.String(), err)
	}

	r.log.Info("Series deleted", zap.String("series_id", id.String()))
	return nil
}
