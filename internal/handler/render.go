package handler

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFiles embed.FS

type renderer struct {
	templates *template.Template
}

func newRenderer() *renderer {
	return &renderer{
		templates: template.Must(template.ParseFS(templateFiles, "templates/*.html")),
	}
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// newHTTPErrorHandler renders the error page for browser routes and plain
// JSON for the API group.
func newHTTPErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		msg := http.StatusText(code)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			msg = fmt.Sprintf("%v", he.Message)
		}

		if strings.HasPrefix(c.Request().URL.Path, "/api/") {
			if err := c.JSON(code, echo.Map{"message": msg}); err != nil {
				log.Error("api error response", zap.Error(err))
			}
			return
		}
		if err := c.Render(code, "error", echo.Map{
			"Title":   "Error",
			"Status":  code,
			"Message": msg,
		}); err != nil {
			log.Error("render error page", zap.Error(err))
			_ = c.NoContent(code) //nolint:errcheck
		}
	}
}
