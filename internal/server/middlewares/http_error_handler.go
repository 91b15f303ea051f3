package middlewares

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gofrs/uuid"
	"github.com/gudangapp/gudang/internal/apierror"
	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler is a middleware that formats rendered errors into the
// API's uniform {success, message} shape.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	switch err := err.(type) {
	case *echo.HTTPError:
		log.Printf("Error [ECHO]: %v", err.Internal)
		_ = c.JSON(err.Code, apierror.NewWithCode(err.Code, fmt.Sprintf("%v", err.Message)))
	case *apierror.Error:
		status := apierror.StatusCode(err)
		if status < 500 {
			_ = c.JSON(status, err)
			return
		}

		internal(err, c)
	default:
		internal(err, c)
	}
}

func internal(err error, c echo.Context) {
	id := uuid.Must(uuid.NewV4()).String()
	log.Printf("Error [%s]: %s", id, err.Error())

	_ = c.JSON(http.StatusInternalServerError,
		apierror.NewWithCode(http.StatusInternalServerError, fmt.Sprintf("Unexpected error (id: %s)", id)))
}
