package handler

import (
	"net/http"
	"strings"

	md "github.com/mvoronov/locallibrary/pkg/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mvoronov/locallibrary/internal/errs"
	"github.com/mvoronov/locallibrary/internal/model"
	"github.com/mvoronov/locallibrary/pkg/validate"
	_ "github.com/mvoronov/locallibrary/swagger"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	genreSvc  GenreService
	sanitizer *bluemonday.Policy
	log       *zap.Logger
}

func New(genreSvc GenreService, log *zap.Logger) *Handler {
	h := &Handler{
		genreSvc:  genreSvc,
		sanitizer: bluemonday.StrictPolicy(),
		log:       log,
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	e.Renderer = newRenderer()
	e.HTTPErrorHandler = newHTTPErrorHandler(h.log)
	e.Validator = validate.NewCustomValidator()

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	catalog := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	catalog.GET("/genres", h.ListGenres)
	catalog.GET("/genre/create", h.CreateGenreForm)
	catalog.POST("/genre/create", h.CreateGenre)
	catalog.GET("/genre/:id", h.GenreDetail)
	catalog.GET("/genre/:id/delete", h.DeleteGenreForm)
	catalog.POST("/genre/:id/delete", h.DeleteGenre)
	catalog.GET("/genre/:id/update", h.UpdateGenreForm)
	catalog.POST("/genre/:id/update", h.UpdateGenre)

	api := catalog.Group("/api/v1")
	api.GET("/genres", h.APIListGenres)
	api.GET("/genres/:id", h.APIGetGenre)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ListGenres(c echo.Context) error {
	genres, err := h.genreSvc.ListGenres(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Render(http.StatusOK, "genre_list", echo.Map{
		"Title":  "Genre List",
		"Genres": genres,
	})
}

func (h *Handler) GenreDetail(c echo.Context) error {
	genre, books, err := h.genreSvc.GenreWithBooks(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "genre not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Render(http.StatusOK, "genre_detail", echo.Map{
		"Title": "Genre Detail",
		"Genre": genre,
		"Books": books,
	})
}

func (h *Handler) CreateGenreForm(c echo.Context) error {
	return c.Render(http.StatusOK, "genre_form", echo.Map{
		"Title": "Create Genre",
		"Genre": model.Genre{},
	})
}

func (h *Handler) CreateGenre(c echo.Context) error {
	var form model.GenreForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	form.Name = h.sanitizer.Sanitize(strings.TrimSpace(form.Name))

	// Validation failures re-render the form with every message; nothing
	// is persisted.
	if err := c.Validate(form); err != nil {
		return c.Render(http.StatusOK, "genre_form", echo.Map{
			"Title":  "Create Genre",
			"Genre":  model.Genre{Name: form.Name},
			"Errors": validate.Messages(err),
		})
	}

	genre, _, err := h.genreSvc.CreateGenre(c.Request().Context(), form.Name)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusSeeOther, genre.URL())
}

func (h *Handler) DeleteGenreForm(c echo.Context) error {
	genre, books, err := h.genreSvc.GenreWithBooks(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "genre not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Render(http.StatusOK, "genre_delete", echo.Map{
		"Title": "Delete Genre",
		"Genre": genre,
		"Books": books,
	})
}

func (h *Handler) DeleteGenre(c echo.Context) error {
	genreUID := c.FormValue("genreid")
	if genreUID == "" {
		genreUID = c.Param("id")
	}
	if err := h.genreSvc.DeleteGenre(c.Request().Context(), genreUID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusSeeOther, "/genres")
}

func (h *Handler) UpdateGenreForm(c echo.Context) error {
	genre, err := h.genreSvc.GetGenre(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "genre not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Render(http.StatusOK, "genre_form", echo.Map{
		"Title": "Update Genre",
		"Genre": genre,
	})
}

func (h *Handler) UpdateGenre(c echo.Context) error {
	genreUID := c.Param("id")
	var form model.GenreForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	form.Name = h.sanitizer.Sanitize(strings.TrimSpace(form.Name))

	if err := c.Validate(form); err != nil {
		candidate := model.Genre{Name: form.Name}
		if uid, parseErr := uuid.Parse(genreUID); parseErr == nil {
			candidate.GenreUID = uid
		}
		return c.Render(http.StatusOK, "genre_form", echo.Map{
			"Title":  "Update Genre",
			"Genre":  candidate,
			"Errors": validate.Messages(err),
		})
	}

	genre, err := h.genreSvc.UpdateGenre(c.Request().Context(), genreUID, form.Name)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "genre not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusSeeOther, genre.URL())
}
