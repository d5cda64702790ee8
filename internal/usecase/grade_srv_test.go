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

func testMovie(id uuid.UUID) *entity.Movie {
	now := time.Now()
	return &entity.Movie{
		Base:            entity.Base{ID: id, CreatedAt: now, UpdatedAt: now},
		Title:           "Blade Runner",
		Description:     "Replicants in Los Angeles",
		DurationMinutes: 117,
		Genre:           "Sci-Fi",
		ReleaseYear:     1982,
	}
}

func TestSubmitGradeStoresScore(t *testing.T) {
	movieID := uuid.New()
	userID := uuid.New()

	repo := newStubRepository()
	repo.Movie = &stubMovieRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
			assert.Equal(t, movieID, id)
			return testMovie(movieID), nil
		},
	}

	var stored *entity.Grade
	repo.Grade = &stubGradeRepo{
		upsertFn: func(ctx context.Context, grade *entity.Grade) error {
			stored = grade
			return nil
		},
	}

	svc := NewGradeService(repo, testLogger())

	resp, err := svc.SubmitGrade(context.Background(), userID, &request.GradeRequest{
		ContentType: "movie",
		ContentID:   movieID.String(),
		Score:       8,
	})
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, 8, stored.Score)
	assert.Equal(t, userID, stored.UserID)
	assert.Equal(t, entity.ContentTypeMovie, stored.ContentType)
	assert.Equal(t, 8, resp.Score)
	assert.Equal(t, userID.String(), resp.UserID)
}

func TestSubmitGradeRejectsOutOfRangeScore(t *testing.T) {
	repo := newStubRepository()
	upsertCalled := false
	repo.Grade = &stubGradeRepo{
		upsertFn: func(ctx context.Context, grade *entity.Grade) error {
			upsertCalled = true
			return nil
		},
	}

	svc := NewGradeService(repo, testLogger())

	for _, score := range []int{0, 11, -3} {
		_, err := svc.SubmitGrade(context.Background(), uuid.New(), &request.GradeRequest{
			ContentType: "movie",
			ContentID:   uuid.New().String(),
			Score:       score,
		})
		require.Error(t, err, "score %d should be rejected", score)
		assert.Contains(t, err.Error(), "validation failed")
	}

	assert.False(t, upsertCalled)
}

func TestSubmitGradeRejectsUnknownContentType(t *testing.T) {
	svc := NewGradeService(newStubRepository(), testLogger())

	_, err := svc.SubmitGrade(context.Background(), uuid.New(), &request.GradeRequest{
		ContentType: "book",
		ContentID:   uuid.New().String(),
		Score:       7,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestSubmitGradeMissingContent(t *testing.T) {
	repo := newStubRepository()
	svc := NewGradeService(repo, testLogger())

	_, err := svc.SubmitGrade(context.Background(), uuid.New(), &request.GradeRequest{
		ContentType: "series",
		ContentID:   uuid.New().String(),
		Score:       6,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSubmitGradeReplacesExistingScore(t *testing.T) {
	movieID := uuid.New()
	userID := uuid.New()

	scores := make(map[string]int)
	repo := newStubRepository()
	repo.Movie = &stubMovieRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
			return testMovie(movieID), nil
		},
	}
	repo.Grade = &stubGradeRepo{
		upsertFn: func(ctx context.Context, grade *entity.Grade) error {
			scores[grade.UserID.String()+"/"+grade.ContentID.String()] = grade.Score
			return nil
		},
	}

	svc := NewGradeService(repo, testLogger())

	for _, score := range []int{8, 5} {
		_, err := svc.SubmitGrade(context.Background(), userID, &request.GradeRequest{
			ContentType: "movie",
			ContentID:   movieID.String(),
			Score:       score,
		})
		require.NoError(t, err)
	}

	// One key per (user, content) pair, last score wins
	require.Len(t, scores, 1)
	assert.Equal(t, 5, scores[userID.String()+"/"+movieID.String()])
}

func TestGetUserGradesOwn(t *testing.T) {
	userID := uuid.New()
	repo := newStubRepository()
	repo.Grade = &stubGradeRepo{
		findByUserIDFn: func(ctx context.Context, id uuid.UUID) ([]*entity.Grade, error) {
			return []*entity.Grade{
				{
					Base:        entity.Base{ID: uuid.New()},
					UserID:      id,
					ContentType: entity.ContentTypeMovie,
					ContentID:   uuid.New(),
					Score:       9,
				},
			}, nil
		},
	}

	svc := NewGradeService(repo, testLogger())

	grades, err := svc.GetUserGrades(context.Background(), userID, userID.String())
	require.NoError(t, err)
	require.Len(t, grades, 1)
	assert.Equal(t, 9, grades[0].Score)
}

func TestGetUserGradesForbiddenForOtherUser(t *testing.T) {
	callerID := uuid.New()
	targetID := uuid.New()

	repo := newStubRepository()
	repo.User = &stubUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{
				Base: entity.Base{ID: id},
				Role: entity.RoleUser,
			}, nil
		},
	}

	svc := NewGradeService(repo, testLogger())

	_, err := svc.GetUserGrades(context.Background(), callerID, targetID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
}

func TestGetUserGradesAdminSeesAnyUser(t *testing.T) {
	callerID := uuid.New()
	targetID := uuid.New()

	repo := newStubRepository()
	repo.User = &stubUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{
				Base: entity.Base{ID: id},
				Role: entity.RoleAdmin,
			}, nil
		},
	}
	repo.Grade = &stubGradeRepo{
		findByUserIDFn: func(ctx context.Context, id uuid.UUID) ([]*entity.Grade, error) {
			assert.Equal(t, targetID, id)
			return nil, nil
		},
	}

	svc := NewGradeService(repo, testLogger())

	_, err := svc.GetUserGrades(context.Background(), callerID, targetID.String())
	assert.NoError(t, err)
}

func TestDeleteGradeOwner(t *testing.T) {
	callerID := uuid.New()
	gradeID := uuid.New()

	deleted := false
	repo := newStubRepository()
	repo.Grade = &stubGradeRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Grade, error) {
			return &entity.Grade{
				Base:   entity.Base{ID: gradeID},
				UserID: callerID,
				Score:  4,
			}, nil
		},
		deleteFn: func(ctx context.Context, grade *entity.Grade) error {
			deleted = true
			return nil
		},
	}

	svc := NewGradeService(repo, testLogger())

	err := svc.DeleteGrade(context.Background(), callerID, gradeID.String())
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteGradeForbiddenForNonOwner(t *testing.T) {
	callerID := uuid.New()
	ownerID := uuid.New()
	gradeID := uuid.New()

	repo := newStubRepository()
	repo.Grade = &stubGradeRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Grade, error) {
			return &entity.Grade{
				Base:   entity.Base{ID: gradeID},
				UserID: ownerID,
			}, nil
		},
	}
	repo.User = &stubUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{Base: entity.Base{ID: id}, Role: entity.RoleUser}, nil
		},
	}

	svc := NewGradeService(repo, testLogger())

	err := svc.DeleteGrade(context.Background(), callerID, gradeID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
}

func TestDeleteGradeNotFound(t *testing.T) {
	svc := NewGradeService(newStubRepository(), testLogger())

	err := svc.DeleteGrade(context.Background(), uuid.New(), uuid.New().String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetOwnGradeForContentNotFound(t *testing.T) {
	svc := NewGradeService(newStubRepository(), testLogger())

	_, err := svc.GetOwnGradeForContent(context.Background(), uuid.New(), "movie", uuid.New().String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
