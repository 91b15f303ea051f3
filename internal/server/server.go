package server

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/gudangapp/gudang/internal/apierror"
	"github.com/gudangapp/gudang/internal/database"
	"github.com/gudangapp/gudang/internal/server/middlewares"
	"github.com/gudangapp/gudang/pkg/libgudang"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
)

// A Controller is an Inversion Of Control pattern used to init the server package.
type Controller struct {
	Version  string
	Database database.Client
	// PublicURL is the base under which stored image files are reachable.
	PublicURL string
	// FilesPath is the directory holding the stored image files.
	FilesPath string
}

// EchoEngine instantiates the web server.
func EchoEngine(ctrl Controller) *echo.Echo {
	engine := echo.New()
	engine.Use(middleware.Recover())
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig))
	engine.Use(middleware.Gzip())

	engine.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "[${status}] ${method} ${uri} (${bytes_in}) ${latency_human}\n",
	}))
	engine.Binder = middlewares.NewBinder()
	// Error handler
	engine.HTTPErrorHandler = middlewares.HTTPErrorHandler

	////////////
	// Router //
	////////////

	router := engine.Group("")

	// generic handlers
	//
	router.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"version": ctrl.Version,
		})
	})

	//
	// item & image handlers
	//
	items := &item{
		db: ctrl.Database,
	}
	images := &image{
		db:        ctrl.Database,
		publicURL: strings.TrimRight(ctrl.PublicURL, "/"),
		filespath: ctrl.FilesPath,
	}

	router.GET("/", items.List)
	router.GET("/files/:name", images.Download)

	// Mutations share a single route. The action field of the JSON body
	// selects the behavior, like the spreadsheet script this server replaces.
	actions := map[string]echo.HandlerFunc{
		libgudang.ActionAdd:          items.Add,
		libgudang.ActionEdit:         items.Edit,
		libgudang.ActionUploadImage:  images.Upload,
		libgudang.ActionReplaceImage: images.Replace,
		libgudang.ActionDeleteImage:  images.Delete,
	}
	router.POST("/", func(c echo.Context) error {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return errors.Wrap(err, "could not read request body")
		}
		c.Request().Body = io.NopCloser(bytes.NewReader(body))

		action := fastjson.GetString(body, "action")
		handler, ok := actions[action]
		if !ok {
			return c.JSON(http.StatusOK, apierror.New(fmt.Sprintf("unknown action: %s", action)))
		}

		return handler(c)
	})

	return engine
}

// PrintRoutes prints the Echo engine exposed routes.
func PrintRoutes(e *echo.Echo) {
	ignored := map[string]bool{
		"":   true,
		".":  true,
		"/*": true,
	}

	routes := e.Routes()
	sort.Slice(routes, func(i int, j int) bool {
		return routes[i].Path < routes[j].Path
	})

	fmt.Println("Routes:")
	for _, route := range routes {
		if ignored[route.Path] {
			continue
		}
		fmt.Printf("%6s %s\n", route.Method, route.Path)
	}
}
