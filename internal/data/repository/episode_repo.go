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

type EpisodeRepository interface {
	Create(ctx context.Context, episode *entity.Episode) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Episode, error)
	FindBySeriesID(ctx context.Context, seriesID uuid.UUID) ([]*entity.Episode, error)
	CountBySeriesID(ctx context.Context, seriesID uuid.UUID) (int64, error)
	Update(ctx context.Context, episode *entity.Episode) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type episodeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEpisodeRepository(db database.PgxIface, log *zap.Logger) EpisodeRepository {
	return &episodeRepository{
		db:  db,
		log: log.With(zap.String("repository", "episode")),
	}
}

const episodeColumns = `id, series_id, title, description, duration_minutes,
		episode_number, cover_image, created_at, updated_at`

func scanEpisode(row pgx.Row) (*entity.Episode, error) {
	var episode entity.Episode
	err := row.Scan(
		&episode.ID,
		&episode.SeriesID,
		&episode.Title,
		&episode.Description,
		&episode.DurationMinutes,
		&episode.EpisodeNumber,
		&episode.CoverImage,
		&episode.CreatedAt,
		&episode.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &episode, nil
}

func (r *episodeRepository) Create(ctx context.Context, episode *entity.Episode) error {
	query := `
		INSERT INTO episodes (id, series_id, title, description, duration_minutes,
		                      episode_number, cover_image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		episode.ID,
		episode.SeriesID,
		episode.Title,
		episode.Description,
		episode.DurationMinutes,
		episode.EpisodeNumber,
		episode.CoverImage,
		episode.CreatedAt,
		episode.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create episode",
			zap.Error(err),
			zap.String("series_id", episode.SeriesID.String()),
			zap.String("title", episode.Title),
		)
		return fmt.Errorf("create episode for series %s: %w", episode.SeriesID.String(), err)
	}

	return nil
}

func (r *episodeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Episode, error) {
	query := `SELECT ` + episodeColumns + ` FROM episodes WHERE id = $1`

	episode, err := scanEpisode(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find episode by ID",
			zap.Error(err),
			zap.String("episode_id", id.String()),
		)
		return nil, fmt.Errorf("find episode by ID %s: %w", id.String(), err)
	}

	return episode, nil
}

func (r *episodeRepository) FindBySeriesID(ctx context.Context, seriesID uuid.UUID) ([]*entity.Episode, error) {
	query := `
		SELECT ` + episodeColumns + `
		FROM episodes
		WHERE series_id = $1
		ORDER BY episode_number ASC
	`

	rows, err := r.db.Query(ctx, query, seriesID)
	if err != nil {
		r.log.Error("Failed to find episodes by series ID",
			zap.Error(err),
			zap.String("series_id", seriesID.String()),
		)
		return nil, fmt.Errorf("find episodes for series %s: %w", seriesID.String(), err)
	}
	defer rows.Close()

	var episodes []*entity.Episode
	for rows.Next() {
		episode, err := scanEpisode(rows)
		if err != nil {
			r.log.Error("Failed to scan episode row", zap.Error(err))
			return nil, fmt.Errorf("scan episode row: %w", err)
		}
		episodes = append(episodes, episode)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate episode rows: %w", err)
	}

	return episodes, nil
}

func (r *episodeRepository) CountBySeriesID(ctx context.Context, seriesID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM episodes WHERE series_id = $1`, seriesID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count episodes",
			zap.Error(err),
			zap.String("series_id", seriesID.String()),
		)
		return 0, fmt.Errorf("count episodes for series %s: %w", seriesID.String(), err)
	}

	return count, nil
}

func (r *episodeRepository) Update(ctx context.Context, episode *entity.Episode) error {
	query := `
		UPDATE episodes
		SET title = $2, description = $3, duration_minutes = $4,
		    episode_number = $5, cover_image = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		episode.ID,
		episode.Title,
		episode.Description,
		episode.DurationMinutes,
		episode.EpisodeNumber,
		episode.CoverImage,
		episode.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update episode",
			zap.Error(err),
			zap.String("episode_id", episode.ID.String()),
		)
		return fmt.Errorf("update episode %s: %w", episode.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("episode %s not found", episode.ID.String())
	}

	return nil
}

func (r *episodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM episodes WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete episode",
			zap.Error(err),
			zap.String("episode_id", id.String()),
		)
		return fmt.Errorf("delete episode %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("episode %s not found", id.String())
	}

	r.log.Info("Episode deleted", zap.String("episode_id", id.String()))
	return nil
}
