package usecase

import (
	"context"
	"testing"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeries(id uuid.UUID) *entity.Series {
	now := time.Now()
	return &entity.Series{
		Base:         entity.Base{ID: id, CreatedAt: now, UpdatedAt: now},
		Title:        "The Expanse",
		Description:  "Belters, Earthers and Martians",
		EpisodeCount: 0,
		Genre:        "Sci-Fi",
		ReleaseYear:  2015,
		Status:       entity.SeriesStatusCompleted,
	}
}

func TestCreateEpisodeRequiresExistingSeries(t *testing.T) {
	repo := newStubRepository()
	created := false
	repo.Episode = &stubEpisodeRepo{
		createFn: func(ctx context.Context, episode *entity.Episode) error {
			created = true
			return nil
		},
	}

	svc := NewEpisodeService(repo, testLogger())

	_, err := svc.CreateEpisode(context.Background(), &request.EpisodeRequest{
		SeriesID:        uuid.New().String(),
		Title:           "Dulcinea",
		DurationMinutes: 45,
		EpisodeNumber:   1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.False(t, created)
}

func TestCreateEpisodeRefreshesSeriesCount(t *testing.T) {
	seriesID := uuid.New()
	series := testSeries(seriesID)

	repo := newStubRepository()
	repo.Series = &stubSeriesRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Series, error) {
			return series, nil
		},
		updateFn: func(ctx context.Context, s *entity.Series) error {
			return nil
		},
	}
	repo.Episode = &stubEpisodeRepo{
		countBySeriesIDFn: func(ctx context.Context, id uuid.UUID) (int64, error) {
			return 1, nil
		},
	}

	svc := NewEpisodeService(repo, testLogger())

	resp, err := svc.CreateEpisode(context.Background(), &request.EpisodeRequest{
		SeriesID:        seriesID.String(),
		Title:           "Dulcinea",
		DurationMinutes: 45,
		EpisodeNumber:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, "Dulcinea", resp.Title)
	assert.Equal(t, 1, series.EpisodeCount)
}

func TestCreateEpisodeValidation(t *testing.T) {
	svc := NewEpisodeService(newStubRepository(), testLogger())

	_, err := svc.CreateEpisode(context.Background(), &request.EpisodeRequest{
		SeriesID:        uuid.New().String(),
		Title:           "",
		DurationMinutes: 45,
		EpisodeNumber:   1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestGetEpisodesBySeriesNotFound(t *testing.T) {
	svc := NewEpisodeService(newStubRepository(), testLogger())

	_, err := svc.GetEpisodesBySeries(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetEpisodesBySeriesOrdered(t *testing.T) {
	seriesID := uuid.New()

	repo := newStubRepository()
	repo.Series = &stubSeriesRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Series, error) {
			return testSeries(seriesID), nil
		},
	}
	repo.Episode = &stubEpisodeRepo{
		findBySeriesIDFn: func(ctx context.Context, id uuid.UUID) ([]*entity.Episode, error) {
			return []*entity.Episode{
				{Base: entity.Base{ID: uuid.New()}, SeriesID: seriesID, Title: "Dulcinea", EpisodeNumber: 1},
				{Base: entity.Base{ID: uuid.New()}, SeriesID: seriesID, Title: "The Big Empty", EpisodeNumber: 2},
			}, nil
		},
	}

	svc := NewEpisodeService(repo, testLogger())

	episodes, err := svc.GetEpisodesBySeries(context.Background(), seriesID.String())
	require.NoError(t, err)
	require.Len(t, episodes, 2)
	assert.Equal(t, 1, episodes[0].EpisodeNumber)
	assert.Equal(t, 2, episodes[1].EpisodeNumber)
}

func TestDeleteEpisodeRefreshesSeriesCount(t *testing.T) {
	seriesID := uuid.New()
	episodeID := uuid.New()
	series := testSeries(seriesID)
	series.EpisodeCount = 2

	repo := newStubRepository()
	repo.Episode = &stubEpisodeRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Episode, error) {
			return &entity.Episode{
				Base:     entity.Base{ID: episodeID},
				SeriesID: seriesID,
				Title:    "Dulcinea",
			}, nil
		},
		countBySeriesIDFn: func(ctx context.Context, id uuid.UUID) (int64, error) {
			return 1, nil
		},
	}
	repo.Series = &stubSeriesRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Series, error) {
			return series, nil
		},
	}

	svc := NewEpisodeService(repo, testLogger())

	err := svc.DeleteEpisode(context.Background(), episodeID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, series.EpisodeCount)
}
