package server_test

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/appleboy/gofight/v2"
	"github.com/gudangapp/gudang/internal/database"
	"github.com/gudangapp/gudang/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestVersion(t *testing.T) {
	engine, _, r, cleanup := setup()
	defer cleanup()

	r.GET("/version").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"version":"test"}`, r.Body.String())
	})
}

func TestRequestList_Empty(t *testing.T) {
	engine, _, r, cleanup := setup()
	defer cleanup()

	r.GET("/").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `[]`, r.Body.String())
	})
}

func TestRequestUnknownAction(t *testing.T) {
	engine, _, r, cleanup := setup()
	defer cleanup()

	r.POST("/").SetJSON(gofight.D{"action": "nuke"}).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"success":false,"message":"unknown action: nuke"}`, r.Body.String())
	})
}

func setup() (engine *echo.Echo, ctrl server.Controller, r *gofight.RequestConfig, cleanup func()) {
	tmpfile, err := os.CreateTemp("", "gudang.*.db")
	if err != nil {
		panic(err)
	}
	filename := tmpfile.Name()
	tmpfile.Close()

	filespath, err := os.MkdirTemp("", "gudang-files")
	if err != nil {
		panic(err)
	}

	codec, err := database.StormCodec("msgpack")
	if err != nil {
		panic(err)
	}
	db, err := database.StormOpen(filename, codec)
	if err != nil {
		panic(err)
	}

	ctrl = server.Controller{
		Version:   "test",
		Database:  db,
		PublicURL: "http://files.test",
		FilesPath: filespath,
	}
	engine = server.EchoEngine(ctrl)

	return engine, ctrl, gofight.New(), func() {
		db.Close()
		os.RemoveAll(filename)
		os.RemoveAll(filespath)
	}
}

// add creates an item and returns its server-assigned uuid.
func add(t *testing.T, engine *echo.Echo, r *gofight.RequestConfig, tagging string) string {
	t.Helper()

	r.POST("/").SetJSON(gofight.D{
		"action":            "add",
		"tagging":           tagging,
		"desc":              "books",
		"original_location": "Warehouse 1",
		"current_location":  "",
	}).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"success":true}`, r.Body.String())
	})

	var uuid string
	r.GET("/").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		records := list(t, r)
		for _, record := range records {
			if record["tagging"] == tagging {
				uuid = record["uuid"].(string)
			}
		}
	})
	assert.NotEmpty(t, uuid)

	return uuid
}

func list(t *testing.T, r gofight.HTTPResponse) []map[string]any {
	t.Helper()

	var records []map[string]any
	assert.NoError(t, json.Unmarshal(r.Body.Bytes(), &records))
	return records
}

func fileExists(filespath, url string) bool {
	_, err := os.Stat(filepath.Join(filespath, filepath.Base(url)))
	return err == nil
}
