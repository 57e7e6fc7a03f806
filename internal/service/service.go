package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/mvoronov/locallibrary/internal/errs"
	"github.com/mvoronov/locallibrary/internal/model"
	genreRepo "github.com/mvoronov/locallibrary/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	log      *zap.Logger
	repo     genreRepo.Repository
	enqueuer Enqueuer
}

func NewService(repo genreRepo.Repository, enqueuer Enqueuer, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		enqueuer: enqueuer,
	}
}

func (s *Service) ListGenres(ctx context.Context) ([]model.Genre, error) {
	return s.repo.ListGenres(ctx)
}

func (s *Service) GetGenre(ctx context.Context, genreUID string) (model.Genre, error) {
	return s.repo.GetGenre(ctx, genreUID)
}

// GenreWithBooks fetches the genre and the books referencing it in parallel.
func (s *Service) GenreWithBooks(ctx context.Context, genreUID string) (model.Genre, []model.Book, error) {
	var (
		genre model.Genre
		books []model.Book
	)
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		var err error
		genre, err = s.repo.GetGenre(ctx, genreUID)
		return err
	})
	gg.Go(func() error {
		var err error
		books, err = s.repo.ListBooksByGenre(ctx, genreUID)
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.Genre{}, nil, err
	}
	return genre, books, nil
}

// CreateGenre inserts a genre under the given name unless one already
// exists, in which case the existing genre is returned. The bool reports
// whether a new record was created.
func (s *Service) CreateGenre(ctx context.Context, name string) (model.Genre, bool, error) {
	existing, err := s.repo.GetGenreByName(ctx, name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return model.Genre{}, false, err
	}

	genre, err := s.repo.CreateGenre(ctx, name)
	if err != nil {
		// A concurrent submission may have won the insert between the
		// lookup and here; fall back to the winner.
		if errors.Is(err, errs.ErrConflict) {
			existing, lookupErr := s.repo.GetGenreByName(ctx, name)
			if lookupErr != nil {
				return model.Genre{}, false, err
			}
			return existing, false, nil
		}
		return model.Genre{}, false, err
	}
	s.publish(catalogEvent(ActionCreated, genre))
	return genre, true, nil
}

func (s *Service) UpdateGenre(ctx context.Context, genreUID, name string) (model.Genre, error) {
	genre, err := s.repo.UpdateGenre(ctx, genreUID, name)
	if err != nil {
		return model.Genre{}, err
	}
	s.publish(catalogEvent(ActionUpdated, genre))
	return genre, nil
}

// DeleteGenre cascades over the genre's books and their instances. An
// unknown uid is a silent no-op.
func (s *Service) DeleteGenre(ctx context.Context, genreUID string) error {
	if err := s.repo.DeleteGenreCascade(ctx, genreUID); err != nil {
		return err
	}
	s.publish(CatalogEvent{Action: ActionDeleted, GenreUID: genreUID, At: now()})
	return nil
}

func (s *Service) publish(ev CatalogEvent) {
	if err := s.enqueuer.Enqueue(ev); err != nil {
		s.log.Warn("catalog event enqueue", zap.String("action", ev.Action), zap.Error(err))
	}
}
