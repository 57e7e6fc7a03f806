package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mvoronov/locallibrary/internal/errs"
	"github.com/mvoronov/locallibrary/internal/model"
	"github.com/mvoronov/locallibrary/internal/service"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	repo_mocks "github.com/mvoronov/locallibrary/internal/repository/mocks"
)

type recordEnqueuer struct {
	events []service.CatalogEvent
}

func (r *recordEnqueuer) Enqueue(ev service.CatalogEvent) error {
	r.events = append(r.events, ev)
	return nil
}

func newTestService(t *testing.T) (*service.Service, *repo_mocks.MockRepository, *recordEnqueuer) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	repo := repo_mocks.NewMockRepository(c)
	enq := &recordEnqueuer{}
	return service.NewService(repo, enq, zap.NewExample().Named("test")), repo, enq
}

var fantasy = model.Genre{
	ID:       1,
	GenreUID: uuid.MustParse("83575e12-7ce0-48ee-9931-51919ff3c9ee"),
	Name:     "Fantasy",
}

func TestService_GenreWithBooks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uid := fantasy.GenreUID.String()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		books := []model.Book{{ID: 1, Title: "The Hobbit"}}
		repo.EXPECT().GetGenre(gomock.Any(), uid).Return(fantasy, nil)
		repo.EXPECT().ListBooksByGenre(gomock.Any(), uid).Return(books, nil)

		genre, got, err := svc.GenreWithBooks(ctx, uid)
		require.NoError(t, err)
		require.Equal(t, fantasy, genre)
		require.Equal(t, books, got)
	})

	t.Run("err. genre not found", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		repo.EXPECT().GetGenre(gomock.Any(), uid).Return(model.Genre{}, errs.ErrNotFound)
		repo.EXPECT().ListBooksByGenre(gomock.Any(), uid).Return(nil, nil).AnyTimes()

		_, _, err := svc.GenreWithBooks(ctx, uid)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestService_CreateGenre(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("ok. new name inserted", func(t *testing.T) {
		t.Parallel()
		svc, repo, enq := newTestService(t)
		repo.EXPECT().GetGenreByName(gomock.Any(), "Fantasy").Return(model.Genre{}, errs.ErrNotFound)
		repo.EXPECT().CreateGenre(gomock.Any(), "Fantasy").Return(fantasy, nil)

		genre, created, err := svc.CreateGenre(ctx, "Fantasy")
		require.NoError(t, err)
		require.True(t, created)
		require.Equal(t, fantasy, genre)
		require.Len(t, enq.events, 1)
		require.Equal(t, service.ActionCreated, enq.events[0].Action)
		require.Equal(t, fantasy.GenreUID.String(), enq.events[0].GenreUID)
	})

	t.Run("ok. existing name is idempotent", func(t *testing.T) {
		t.Parallel()
		svc, repo, enq := newTestService(t)
		repo.EXPECT().GetGenreByName(gomock.Any(), "Fantasy").Return(fantasy, nil)

		genre, created, err := svc.CreateGenre(ctx, "Fantasy")
		require.NoError(t, err)
		require.False(t, created)
		require.Equal(t, fantasy, genre)
		require.Empty(t, enq.events)
	})

	t.Run("ok. racing insert falls back to winner", func(t *testing.T) {
		t.Parallel()
		svc, repo, enq := newTestService(t)
		repo.EXPECT().GetGenreByName(gomock.Any(), "Fantasy").Return(model.Genre{}, errs.ErrNotFound)
		repo.EXPECT().CreateGenre(gomock.Any(), "Fantasy").Return(model.Genre{}, errs.ErrConflict)
		repo.EXPECT().GetGenreByName(gomock.Any(), "Fantasy").Return(fantasy, nil)

		genre, created, err := svc.CreateGenre(ctx, "Fantasy")
		require.NoError(t, err)
		require.False(t, created)
		require.Equal(t, fantasy, genre)
		require.Empty(t, enq.events)
	})

	t.Run("err. lookup fails", func(t *testing.T) {
		t.Parallel()
		svc, repo, enq := newTestService(t)
		repo.EXPECT().GetGenreByName(gomock.Any(), "Fantasy").Return(model.Genre{}, errors.New("db internal"))

		_, _, err := svc.CreateGenre(ctx, "Fantasy")
		require.Error(t, err)
		require.Empty(t, enq.events)
	})
}

func TestService_UpdateGenre(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uid := fantasy.GenreUID.String()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo, enq := newTestService(t)
		updated := fantasy
		updated.Name = "Dark Fantasy"
		repo.EXPECT().UpdateGenre(gomock.Any(), uid, "Dark Fantasy").Return(updated, nil)

		genre, err := svc.UpdateGenre(ctx, uid, "Dark Fantasy")
		require.NoError(t, err)
		require.Equal(t, updated, genre)
		require.Len(t, enq.events, 1)
		require.Equal(t, service.ActionUpdated, enq.events[0].Action)
	})

	t.Run("err. vanished record", func(t *testing.T) {
		t.Parallel()
		svc, repo, enq := newTestService(t)
		repo.EXPECT().UpdateGenre(gomock.Any(), uid, "Dark Fantasy").Return(model.Genre{}, errs.ErrNotFound)

		_, err := svc.UpdateGenre(ctx, uid, "Dark Fantasy")
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.Empty(t, enq.events)
	})
}

func TestService_DeleteGenre(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uid := fantasy.GenreUID.String()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo, enq := newTestService(t)
		repo.EXPECT().DeleteGenreCascade(gomock.Any(), uid).Return(nil)

		require.NoError(t, svc.DeleteGenre(ctx, uid))
		require.Len(t, enq.events, 1)
		require.Equal(t, service.ActionDeleted, enq.events[0].Action)
		require.Equal(t, uid, enq.events[0].GenreUID)
	})

	t.Run("err. cascade fails", func(t *testing.T) {
		t.Parallel()
		svc, repo, enq := newTestService(t)
		repo.EXPECT().DeleteGenreCascade(gomock.Any(), uid).Return(errors.New("db internal"))

		require.Error(t, svc.DeleteGenre(ctx, uid))
		require.Empty(t, enq.events)
	})
}
