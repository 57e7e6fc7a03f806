package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mvoronov/locallibrary/internal/errs"
	"github.com/mvoronov/locallibrary/internal/model"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type GenreResponse struct {
	GenreUID string `json:"genreUid"`
	Name     string `json:"name"`
	URL      string `json:"url"`
}

type BookResponse struct {
	BookUID string `json:"bookUid"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

type GenreDetailResponse struct {
	GenreResponse
	Books []BookResponse `json:"books"`
}

func toGenreResponse(g model.Genre) GenreResponse {
	return GenreResponse{
		GenreUID: g.GenreUID.String(),
		Name:     g.Name,
		URL:      g.URL(),
	}
}

// APIListGenres godoc
// @Summary      List genres
// @Description  All genres ordered by name.
// @Tags         genres
// @Produce      json
// @Success      200 {array} handler.GenreResponse
// @Failure      500 {object} echo.HTTPError
// @Router       /genres [get]
func (h *Handler) APIListGenres(c echo.Context) error {
	genres, err := h.genreSvc.ListGenres(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	items := lo.Map(genres, func(g model.Genre, _ int) GenreResponse {
		return toGenreResponse(g)
	})
	return c.JSON(http.StatusOK, items)
}

// APIGetGenre godoc
// @Summary      Genre detail
// @Description  The genre and the books referencing it.
// @Tags         genres
// @Produce      json
// @Param        id path string true "genre uid"
// @Success      200 {object} handler.GenreDetailResponse
// @Failure      404 {object} echo.HTTPError
// @Failure      500 {object} echo.HTTPError
// @Router       /genres/{id} [get]
func (h *Handler) APIGetGenre(c echo.Context) error {
	genre, books, err := h.genreSvc.GenreWithBooks(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "genre not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, GenreDetailResponse{
		GenreResponse: toGenreResponse(genre),
		Books: lo.Map(books, func(b model.Book, _ int) BookResponse {
			return BookResponse{
				BookUID: b.BookUID.String(),
				Title:   b.Title,
				Summary: b.Summary,
			}
		}),
	})
}
