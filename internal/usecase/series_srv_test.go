package usecase

import (
	"context"
	"testing"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSeriesRejectsUnknownStatus(t *testing.T) {
	svc := NewSeriesService(newStubRepository(), testLogger())

	_, err := svc.CreateSeries(context.Background(), &request.SeriesRequest{
		Title:       "The Expanse",
		Description: "Belters, Earthers and Martians",
		Genre:       "Sci-Fi",
		ReleaseYear: 2015,
		Status:      "paused",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestCreateSeries(t *testing.T) {
	repo := newStubRepository()
	var stored *entity.Series
	repo.Series = &stubSeriesRepo{
		createFn: func(ctx context.Context, series *entity.Series) error {
			stored = series
			return nil
		},
	}

	svc := NewSeriesService(repo, testLogger())

	resp, err := svc.CreateSeries(context.Background(), &request.SeriesRequest{
		Title:        "The Expanse",
		Description:  "Belters, Earthers and Martians",
		EpisodeCount: 10,
		Genre:        "Sci-Fi",
		ReleaseYear:  2015,
		Status:       "completed",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.SeriesStatusCompleted, stored.Status)
	assert.Equal(t, 0.0, stored.AverageRating)
	assert.Equal(t, 10, resp.EpisodeCount)
}

func TestUpdateSeriesStatus(t *testing.T) {
	seriesID := uuid.New()
	existing := testSeries(seriesID)
	existing.Status = entity.SeriesStatusOngoing

	repo := newStubRepository()
	var updated *entity.Series
	repo.Series = &stubSeriesRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Series, error) {
			return existing, nil
		},
		updateFn: func(ctx context.Context, series *entity.Series) error {
			updated = series
			return nil
		},
	}

	svc := NewSeriesService(repo, testLogger())

	status := "cancelled"
	resp, err := svc.UpdateSeries(context.Background(), seriesID.String(), &request.SeriesUpdateRequest{
		Status: &status,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, entity.SeriesStatusCancelled, resp.Status)
}

func TestGetSeriesListUsesSharedListing(t *testing.T) {
	repo := newStubRepository()
	repo.Series = &stubSeriesRepo{
		findAllFn: func(ctx context.Context) ([]*entity.Series, error) {
			a := testSeries(uuid.New())
			a.Title = "Breaking Bad"
			a.Genre = "Crime"
			b := testSeries(uuid.New())
			b.Title = "The Expanse"
			return []*entity.Series{a, b}, nil
		},
	}

	svc := NewSeriesService(repo, testLogger())

	resp, err := svc.GetSeries(context.Background(), &request.ListRequest{
		Search: "expanse", Page: 1, PerPage: 10,
	})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "The Expanse", resp.Data[0].Title)
}

func TestGetSeriesByIDIncludesEpisodesAndTrivia(t *testing.T) {
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
			}, nil
		},
	}
	repo.Trivia = &stubTriviaRepo{
		findByContentFn: func(ctx context.Context, contentType entity.ContentType, contentID uuid.UUID) ([]*entity.Trivia, error) {
			assert.Equal(t, entity.ContentTypeSeries, contentType)
			return []*entity.Trivia{
				{Base: entity.Base{ID: uuid.New()}, ContentType: contentType, ContentID: seriesID, Question: "Q", Answer: "A"},
			}, nil
		},
	}

	svc := NewSeriesService(repo, testLogger())

	detail, err := svc.GetSeriesByID(context.Background(), seriesID.String())
	require.NoError(t, err)
	assert.Len(t, detail.Episodes, 1)
	assert.Len(t, detail.Trivia, 1)
}
