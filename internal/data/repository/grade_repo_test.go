package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"movie-catalog/internal/data/entity"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testGrade() *entity.Grade {
	now := time.Now()
	grade := &entity.Grade{
		UserID:      uuid.New(),
		ContentType: entity.ContentTypeMovie,
		ContentID:   uuid.New(),
		Score:       8,
	}
	grade.ID = uuid.New()
	grade.CreatedAt = now
	grade.UpdatedAt = now
	return grade
}

func TestUpsertGradeCommitsScoreAndAverageTogether(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	grade := testGrade()

	mock.ExpectBegin()
	mock.ExpectQuery(`(?s)INSERT INTO grades.*ON CONFLICT \(user_id, content_type, content_id\)`).
		WithArgs(grade.ID, grade.UserID, grade.ContentType, grade.ContentID,
			grade.Score, grade.CreatedAt, grade.UpdatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).
			AddRow(grade.ID, grade.CreatedAt))
	mock.ExpectExec(`UPDATE movies`).
		WithArgs(grade.ContentID, grade.ContentType).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	repo := NewGradeRepository(mock, zap.NewNop())
	err = repo.Upsert(context.Background(), grade)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertGradeRollsBackWhenRecomputeFails(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	grade := testGrade()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO grades`).
		WithArgs(grade.ID, grade.UserID, grade.ContentType, grade.ContentID,
			grade.Score, grade.CreatedAt, grade.UpdatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).
			AddRow(grade.ID, grade.CreatedAt))
	mock.ExpectExec(`UPDATE movies`).
		WithArgs(grade.ContentID, grade.ContentType).
		WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	repo := NewGradeRepository(mock, zap.NewNop())
	err = repo.Upsert(context.Background(), grade)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "recompute average rating")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertGradeRecomputesSeriesTable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	grade := testGrade()
	grade.ContentType = entity.ContentTypeSeries

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO grades`).
		WithArgs(grade.ID, grade.UserID, grade.ContentType, grade.ContentID,
			grade.Score, grade.CreatedAt, grade.UpdatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).
			AddRow(grade.ID, grade.CreatedAt))
	mock.ExpectExec(`UPDATE series`).
		WithArgs(grade.ContentID, grade.ContentType).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	repo := NewGradeRepository(mock, zap.NewNop())
	err = repo.Upsert(context.Background(), grade)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteGradeRecomputesAverage(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	grade := testGrade()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM grades WHERE id`).
		WithArgs(grade.ID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`UPDATE movies`).
		WithArgs(grade.ContentID, grade.ContentType).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	repo := NewGradeRepository(mock, zap.NewNop())
	err = repo.Delete(context.Background(), grade)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteGradeNotFoundSkipsRecompute(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	grade := testGrade()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM grades WHERE id`).
		WithArgs(grade.ID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectRollback()

	repo := NewGradeRepository(mock, zap.NewNop())
	err = repo.Delete(context.Background(), grade)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}
