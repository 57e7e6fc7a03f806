package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/jmoiron/sqlx"
	"github.com/mvoronov/locallibrary/internal/errs"
	"github.com/mvoronov/locallibrary/internal/model"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go -package=mocks

type Repository interface {
	ListGenres(ctx context.Context) ([]model.Genre, error)
	GetGenre(ctx context.Context, genreUID string) (model.Genre, error)
	GetGenreByName(ctx context.Context, name string) (model.Genre, error)
	CreateGenre(ctx context.Context, name string) (model.Genre, error)
	UpdateGenre(ctx context.Context, genreUID, name string) (model.Genre, error)
	DeleteGenreCascade(ctx context.Context, genreUID string) error
	ListBooksByGenre(ctx context.Context, genreUID string) ([]model.Book, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	genreTableName        = `genre`
	bookTableName         = `book`
	bookGenreTableName    = `book_genre`
	bookInstanceTableName = `book_instance`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) ListGenres(ctx context.Context) ([]model.Genre, error) {
	query, args, err := qb.Select("id", "genre_uid", "name").
		From(genreTableName).
		OrderBy("name asc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var genres []model.Genre
	if err := r.db.SelectContext(ctx, &genres, query, args...); err != nil {
		return nil, err
	}
	return genres, nil
}

func (r *repository) GetGenre(ctx context.Context, genreUID string) (model.Genre, error) {
	uid, err := uuid.Parse(genreUID)
	if err != nil {
		return model.Genre{}, errs.ErrNotFound
	}
	query, args, err := qb.Select("id", "genre_uid", "name").
		From(genreTableName).
		Where(sq.Eq{"genre_uid": uid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Genre{}, err
	}

	var genre model.Genre
	if err := r.db.GetContext(ctx, &genre, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Genre{}, errs.ErrNotFound
		}
		return model.Genre{}, err
	}
	return genre, nil
}

func (r *repository) GetGenreByName(ctx context.Context, name string) (model.Genre, error) {
	query, args, err := qb.Select("id", "genre_uid", "name").
		From(genreTableName).
		Where(sq.Eq{"name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Genre{}, err
	}

	var genre model.Genre
	if err := r.db.GetContext(ctx, &genre, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Genre{}, errs.ErrNotFound
		}
		return model.Genre{}, err
	}
	return genre, nil
}

func (r *repository) CreateGenre(ctx context.Context, name string) (model.Genre, error) {
	query, args, err := qb.Insert(genreTableName).
		Columns("genre_uid", "name").
		Values(uuid.New(), name).
		Suffix("returning id, genre_uid, name").
		ToSql()
	if err != nil {
		return model.Genre{}, err
	}

	var genre model.Genre
	if err := r.db.GetContext(ctx, &genre, query, args...); err != nil {
		r.log.Error("CreateGenre", zap.String("q", query), zap.Any("args", args))
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			return model.Genre{}, errs.ErrConflict
		}
		return model.Genre{}, err
	}
	return genre, nil
}

func (r *repository) UpdateGenre(ctx context.Context, genreUID, name string) (model.Genre, error) {
	uid, err := uuid.Parse(genreUID)
	if err != nil {
		return model.Genre{}, errs.ErrNotFound
	}
	query, args, err := qb.Update(genreTableName).
		Set("name", name).
		Where(sq.Eq{"genre_uid": uid}).
		Suffix("returning id, genre_uid, name").
		ToSql()
	if err != nil {
		return model.Genre{}, err
	}

	var genre model.Genre
	if err := r.db.GetContext(ctx, &genre, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Genre{}, errs.ErrNotFound
		}
		return model.Genre{}, err
	}
	return genre, nil
}

func (r *repository) ListBooksByGenre(ctx context.Context, genreUID string) ([]model.Book, error) {
	uid, err := uuid.Parse(genreUID)
	if err != nil {
		return nil, nil
	}
	query, args, err := qb.Select("b.id", "b.book_uid", "b.title", "b.summary").
		From(bookTableName + " b").
		Join(bookGenreTableName + " bg on b.id = bg.book_id").
		Join(genreTableName + " g on g.id = bg.genre_id").
		Where(sq.Eq{"g.genre_uid": uid}).
		OrderBy("b.title asc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

// DeleteGenreCascade removes the genre, every book referencing it and every
// instance of those books in one transaction. A uid that matches nothing is
// a silent no-op.
func (r *repository) DeleteGenreCascade(ctx context.Context, genreUID string) error {
	uid, err := uuid.Parse(genreUID)
	if err != nil {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	query, args, err := qb.Select("b.id").
		From(bookTableName + " b").
		Join(bookGenreTableName + " bg on b.id = bg.book_id").
		Join(genreTableName + " g on g.id = bg.genre_id").
		Where(sq.Eq{"g.genre_uid": uid}).
		ToSql()
	if err != nil {
		return err
	}
	var bookIDs []int
	if err := tx.SelectContext(ctx, &bookIDs, query, args...); err != nil {
		return err
	}

	if len(bookIDs) > 0 {
		query, args, err = qb.Delete(bookInstanceTableName).
			Where(sq.Eq{"book_id": bookIDs}).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}

		// book_genre rows go with the books via fk cascade.
		query, args, err = qb.Delete(bookTableName).
			Where(sq.Eq{"id": bookIDs}).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	query, args, err = qb.Delete(genreTableName).
		Where(sq.Eq{"genre_uid": uid}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return tx.Commit()
}
