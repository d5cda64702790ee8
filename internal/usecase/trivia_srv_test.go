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

func TestCreateTriviaRequiresExistingContent(t *testing.T) {
	repo := newStubRepository()
	created := false
	repo.Trivia = &stubTriviaRepo{
		createFn: func(ctx context.Context, trivia *entity.Trivia) error {
			created = true
			return nil
		},
	}

	svc := NewTriviaService(repo, testLogger())

	_, err := svc.CreateTrivia(context.Background(), &request.TriviaRequest{
		ContentType: "movie",
		ContentID:   uuid.New().String(),
		Question:    "Who directed it?",
		Answer:      "Nobody",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.False(t, created)
}

func TestCreateTriviaForMovie(t *testing.T) {
	movieID := uuid.New()

	repo := newStubRepository()
	repo.Movie = &stubMovieRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
			return testMovie(movieID), nil
		},
	}
	var stored *entity.Trivia
	repo.Trivia = &stubTriviaRepo{
		createFn: func(ctx context.Context, trivia *entity.Trivia) error {
			stored = trivia
			return nil
		},
	}

	svc := NewTriviaService(repo, testLogger())

	resp, err := svc.CreateTrivia(context.Background(), &request.TriviaRequest{
		ContentType: "movie",
		ContentID:   movieID.String(),
		Question:    "Who directed it?",
		Answer:      "Ridley Scott",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.ContentTypeMovie, stored.ContentType)
	assert.Equal(t, movieID, stored.ContentID)
	assert.Equal(t, "Ridley Scott", resp.Answer)
}

func TestCreateTriviaValidation(t *testing.T) {
	svc := NewTriviaService(newStubRepository(), testLogger())

	_, err := svc.CreateTrivia(context.Background(), &request.TriviaRequest{
		ContentType: "movie",
		ContentID:   uuid.New().String(),
		Question:    "",
		Answer:      "Ridley Scott",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestUpdateTriviaPartial(t *testing.T) {
	triviaID := uuid.New()

	repo := newStubRepository()
	var updated *entity.Trivia
	repo.Trivia = &stubTriviaRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Trivia, error) {
			return &entity.Trivia{
				Base:        entity.Base{ID: triviaID},
				ContentType: entity.ContentTypeSeries,
				ContentID:   uuid.New(),
				Question:    "How many seasons?",
				Answer:      "Five",
			}, nil
		},
		updateFn: func(ctx context.Context, trivia *entity.Trivia) error {
			updated = trivia
			return nil
		},
	}

	svc := NewTriviaService(repo, testLogger())

	answer := "Six"
	resp, err := svc.UpdateTrivia(context.Background(), triviaID.String(), &request.TriviaUpdateRequest{
		Answer: &answer,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Six", resp.Answer)
	assert.Equal(t, "How many seasons?", resp.Question)
}

func TestUpdateTriviaNotFound(t *testing.T) {
	svc := NewTriviaService(newStubRepository(), testLogger())

	question := "Anything?"
	_, err := svc.UpdateTrivia(context.Background(), uuid.New().String(), &request.TriviaUpdateRequest{
		Question: &question,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteTriviaNotFound(t *testing.T) {
	svc := NewTriviaService(newStubRepository(), testLogger())

	err := svc.DeleteTrivia(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetTriviaForContentRejectsUnknownType(t *testing.T) {
	svc := NewTriviaService(newStubRepository(), testLogger())

	_, err := svc.GetTriviaForContent(context.Background(), "podcast", uuid.New().String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid content type")
}
