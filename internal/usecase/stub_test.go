package usecase

import (
	"context"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Function-field stubs for the repository interfaces. Unset fields
// return zero values so each test only wires what it needs.

type stubUserRepo struct {
	createFn         func(ctx context.Context, user *entity.User) error
	findByIDFn       func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	findByUsernameFn func(ctx context.Context, username string) (*entity.User, error)
	findByEmailFn    func(ctx context.Context, email string) (*entity.User, error)
	findAllFn        func(ctx context.Context, limit, offset int) ([]*entity.User, error)
	countAllFn       func(ctx context.Context) (int64, error)
	updateFn         func(ctx context.Context, user *entity.User) error
	updateRoleFn     func(ctx context.Context, id uuid.UUID, role entity.UserRole) error
	deleteFn         func(ctx context.Context, id uuid.UUID) error
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *stubUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if s.findByUsernameFn != nil {
		return s.findByUsernameFn(ctx, username)
	}
	return nil, nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if s.findByEmailFn != nil {
		return s.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (s *stubUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	if s.findAllFn != nil {
		return s.findAllFn(ctx, limit, offset)
	}
	return nil, nil
}

func (s *stubUserRepo) CountAll(ctx context.Context) (int64, error) {
	if s.countAllFn != nil {
		return s.countAllFn(ctx)
	}
	return 0, nil
}

func (s *stubUserRepo) Update(ctx context.Context, user *entity.User) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, user)
	}
	return nil
}

func (s *stubUserRepo) UpdateRole(ctx context.Context, id uuid.UUID, role entity.UserRole) error {
	if s.updateRoleFn != nil {
		return s.updateRoleFn(ctx, id, role)
	}
	return nil
}

func (s *stubUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubSessionRepo struct {
	createFn                func(ctx context.Context, session *entity.Session) error
	findValidSessionFn      func(ctx context.Context, token string) (*entity.Session, error)
	revokeFn                func(ctx context.Context, token string) error
	revokeAllUserSessionsFn func(ctx context.Context, userID uuid.UUID) error
}

func (s *stubSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	if s.createFn != nil {
		return s.createFn(ctx, session)
	}
	return nil
}

func (s *stubSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	if s.findValidSessionFn != nil {
		return s.findValidSessionFn(ctx, token)
	}
	return nil, nil
}

func (s *stubSessionRepo) Revoke(ctx context.Context, token string) error {
	if s.revokeFn != nil {
		return s.revokeFn(ctx, token)
	}
	return nil
}

func (s *stubSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	if s.revokeAllUserSessionsFn != nil {
		return s.revokeAllUserSessionsFn(ctx, userID)
	}
	return nil
}

type stubMovieRepo struct {
	createFn   func(ctx context.Context, movie *entity.Movie) error
	findByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	findAllFn  func(ctx context.Context) ([]*entity.Movie, error)
	updateFn   func(ctx context.Context, movie *entity.Movie) error
	deleteFn   func(ctx context.Context, id uuid.UUID) error
}

func (s *stubMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	if s.createFn != nil {
		return s.createFn(ctx, movie)
	}
	return nil
}

func (s *stubMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *stubMovieRepo) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	if s.findAllFn != nil {
		return s.findAllFn(ctx)
	}
	return nil, nil
}

func (s *stubMovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, movie)
	}
	return nil
}

func (s *stubMovieRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubSeriesRepo struct {
	createFn   func(ctx context.Context, series *entity.Series) error
	findByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Series, error)
	findAllFn  func(ctx context.Context) ([]*entity.Series, error)
	updateFn   func(ctx context.Context, series *entity.Series) error
	deleteFn   func(ctx context.Context, id uuid.UUID) error
}

func (s *stubSeriesRepo) Create(ctx context.Context, series *entity.Series) error {
	if s.createFn != nil {
		return s.createFn(ctx, series)
	}
	return nil
}

func (s *stubSeriesRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Series, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *stubSeriesRepo) FindAll(ctx context.Context) ([]*entity.Series, error) {
	if s.findAllFn != nil {
		return s.findAllFn(ctx)
	}
	return nil, nil
}

func (s *stubSeriesRepo) Update(ctx context.Context, series *entity.Series) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, series)
	}
	return nil
}

func (s *stubSeriesRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubEpisodeRepo struct {
	createFn          func(ctx context.Context, episode *entity.Episode) error
	findByIDFn        func(ctx context.Context, id uuid.UUID) (*entity.Episode, error)
	findBySeriesIDFn  func(ctx context.Context, seriesID uuid.UUID) ([]*entity.Episode, error)
	countBySeriesIDFn func(ctx context.Context, seriesID uuid.UUID) (int64, error)
	updateFn          func(ctx context.Context, episode *entity.Episode) error
	deleteFn          func(ctx context.Context, id uuid.UUID) error
}

func (s *stubEpisodeRepo) Create(ctx context.Context, episode *entity.Episode) error {
	if s.createFn != nil {
		return s.createFn(ctx, episode)
	}
	return nil
}

func (s *stubEpisodeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Episode, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *stubEpisodeRepo) FindBySeriesID(ctx context.Context, seriesID uuid.UUID) ([]*entity.Episode, error) {
	if s.findBySeriesIDFn != nil {
		return s.findBySeriesIDFn(ctx, seriesID)
	}
	return nil, nil
}

func (s *stubEpisodeRepo) CountBySeriesID(ctx context.Context, seriesID uuid.UUID) (int64, error) {
	if s.countBySeriesIDFn != nil {
		return s.countBySeriesIDFn(ctx, seriesID)
	}
	return 0, nil
}

func (s *stubEpisodeRepo) Update(ctx context.Context, episode *entity.Episode) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, episode)
	}
	return nil
}

func (s *stubEpisodeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubGradeRepo struct {
	upsertFn               func(ctx context.Context, grade *entity.Grade) error
	findByIDFn             func(ctx context.Context, id uuid.UUID) (*entity.Grade, error)
	findByUserIDFn         func(ctx context.Context, userID uuid.UUID) ([]*entity.Grade, error)
	findByUserAndContentFn func(ctx context.Context, userID uuid.UUID, contentType entity.ContentType, contentID uuid.UUID) (*entity.Grade, error)
	findByContentFn        func(ctx context.Context, contentType entity.ContentType, contentID uuid.UUID) ([]*entity.Grade, error)
	countByContentFn       func(ctx context.Context, contentType entity.ContentType, contentID uuid.UUID) (int64, error)
	deleteFn               func(ctx context.Context, grade *entity.Grade) error
}

func (s *stubGradeRepo) Upsert(ctx context.Context, grade *entity.Grade) error {
	if s.upsertFn != nil {
		return s.upsertFn(ctx, grade)
	}
	return nil
}

func (s *stubGradeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Grade, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *stubGradeRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Grade, error) {
	if s.findByUserIDFn != nil {
		return s.findByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (s *stubGradeRepo) FindByUserAndContent(ctx context.Context, userID uuid.UUID, contentType entity.ContentType, contentID uuid.UUID) (*entity.Grade, error) {
	if s.findByUserAndContentFn != nil {
		return s.findByUserAndContentFn(ctx, userID, contentType, contentID)
	}
	return nil, nil
}

func (s *stubGradeRepo) FindByContent(ctx context.Context, contentType entity.ContentType, contentID uuid.UUID) ([]*entity.Grade, error) {
	if s.findByContentFn != nil {
		return s.findByContentFn(ctx, contentType, contentID)
	}
	return nil, nil
}

func (s *stubGradeRepo) CountByContent(ctx context.Context, contentType entity.ContentType, contentID uuid.UUID) (int64, error) {
	if s.countByContentFn != nil {
		return s.countByContentFn(ctx, contentType, contentID)
	}
	return 0, nil
}

func (s *stubGradeRepo) Delete(ctx context.Context, grade *entity.Grade) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, grade)
	}
	return nil
}

type stubTriviaRepo struct {
	createFn        func(ctx context.Context, trivia *entity.Trivia) error
	findByIDFn      func(ctx context.Context, id uuid.UUID) (*entity.Trivia, error)
	findByContentFn func(ctx context.Context, contentType entity.ContentType, contentID uuid.UUID) ([]*entity.Trivia, error)
	updateFn        func(ctx context.Context, trivia *entity.Trivia) error
	deleteFn        func(ctx context.Context, id uuid.UUID) error
}

func (s *stubTriviaRepo) Create(ctx context.Context, trivia *entity.Trivia) error {
	if s.createFn != nil {
		return s.createFn(ctx, trivia)
	}
	return nil
}

func (s *stubTriviaRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Trivia, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *stubTriviaRepo) FindByContent(ctx context.Context, contentType entity.ContentType, contentID uuid.UUID) ([]*entity.Trivia, error) {
	if s.findByContentFn != nil {
		return s.findByContentFn(ctx, contentType, contentID)
	}
	return nil, nil
}

func (s *stubTriviaRepo) Update(ctx context.Context, trivia *entity.Trivia) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, trivia)
	}
	return nil
}

func (s *stubTriviaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

// newStubRepository bundles fresh stubs so tests can override fields
// on individual repos.
func newStubRepository() *repository.Repository {
	return &repository.Repository{
		User:    &stubUserRepo{},
		Session: &stubSessionRepo{},
		Movie:   &stubMovieRepo{},
		Series:  &stubSeriesRepo{},
		Episode: &stubEpisodeRepo{},
		Grade:   &stubGradeRepo{},
		Trivia:  &stubTriviaRepo{},
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
