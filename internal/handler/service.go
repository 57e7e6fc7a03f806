package handler

import (
	"context"

	"github.com/mvoronov/locallibrary/internal/model"
	"github.com/mvoronov/locallibrary/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go -package=mocks

type GenreService interface {
	ListGenres(ctx context.Context) ([]model.Genre, error)
	GetGenre(ctx context.Context, genreUID string) (model.Genre, error)
	GenreWithBooks(ctx context.Context, genreUID string) (model.Genre, []model.Book, error)
	CreateGenre(ctx context.Context, name string) (model.Genre, bool, error)
	UpdateGenre(ctx context.Context, genreUID, name string) (model.Genre, error)
	DeleteGenre(ctx context.Context, genreUID string) error
}

var _ GenreService = (*service.Service)(nil)
