package server_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/appleboy/gofight/v2"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestUploadImage(t *testing.T) {
	engine, ctrl, r, cleanup := setup()
	defer cleanup()

	uuid := add(t, engine, r, "Box A")

	var url string
	r.POST("/").SetJSON(gofight.D{
		"action": "uploadImage",
		"uuid":   uuid,
		"files": []gofight.D{
			{"fileName": "a.jpg", "mimeType": "image/jpeg", "file": "aGVsbG8="},
		},
	}).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)

		var res struct {
			Success bool     `json:"success"`
			URLs    []string `json:"urls"`
		}
		assert.NoError(t, json.Unmarshal(r.Body.Bytes(), &res))
		assert.True(t, res.Success)
		assert.Len(t, res.URLs, 1)
		url = res.URLs[0]
	})

	assert.True(t, strings.HasPrefix(url, "http://files.test/files/"))
	assert.True(t, fileExists(ctrl.FilesPath, url))

	r.GET("/").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		records := list(t, r)
		assert.Equal(t, url, records[0]["img_url1"])
	})

	// The stored file is served back over plain HTTP.
	name := url[strings.LastIndex(url, "/")+1:]
	r.GET("/files/" + name).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.Equal(t, "hello", r.Body.String())
	})
}

func TestRequestUploadImage_SlotsFull(t *testing.T) {
	engine, _, r, cleanup := setup()
	defer cleanup()

	uuid := add(t, engine, r, "Box A")

	files := []gofight.D{
		{"fileName": "a.jpg", "mimeType": "image/jpeg", "file": "aGVsbG8="},
		{"fileName": "b.jpg", "mimeType": "image/jpeg", "file": "aGVsbG8="},
		{"fileName": "c.jpg", "mimeType": "image/jpeg", "file": "aGVsbG8="},
	}
	r.POST("/").SetJSON(gofight.D{
		"action": "uploadImage",
		"uuid":   uuid,
		"files":  files,
	}).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
	})

	r.POST("/").SetJSON(gofight.D{
		"action": "uploadImage",
		"uuid":   uuid,
		"files": []gofight.D{
			{"fileName": "d.jpg", "mimeType": "image/jpeg", "file": "aGVsbG8="},
		},
	}).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"success":false,"message":"not enough free image slots"}`, r.Body.String())
	})
}

func TestRequestUploadImage_InvalidBase64(t *testing.T) {
	engine, _, r, cleanup := setup()
	defer cleanup()

	uuid := add(t, engine, r, "Box A")

	r.POST("/").SetJSON(gofight.D{
		"action": "uploadImage",
		"uuid":   uuid,
		"files": []gofight.D{
			{"fileName": "a.jpg", "mimeType": "image/jpeg", "file": "not base64 <<<"},
		},
	}).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"success":false,"message":"invalid base64 payload: a.jpg"}`, r.Body.String())
	})
}

func TestRequestReplaceImage(t *testing.T) {
	engine, ctrl, r, cleanup := setup()
	defer cleanup()

	uuid := add(t, engine, r, "Box A")
	oldURL := upload(t, engine, r, uuid, "a.jpg")

	var newURL string
	r.POST("/").SetJSON(gofight.D{
		"action":  "replaceImage",
		"uuid":    uuid,
		"old_url": oldURL,
		"file":    gofight.D{"fileName": "b.jpg", "mimeType": "image/jpeg", "file": "d29ybGQ="},
	}).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)

		var res struct {
			Success bool   `json:"success"`
			NewURL  string `json:"newUrl"`
		}
		assert.NoError(t, json.Unmarshal(r.Body.Bytes(), &res))
		assert.True(t, res.Success)
		newURL = res.NewURL
	})

	assert.NotEqual(t, oldURL, newURL)
	assert.True(t, fileExists(ctrl.FilesPath, newURL))
	assert.False(t, fileExists(ctrl.FilesPath, oldURL), "replaced file is removed")

	r.GET("/").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		records := list(t, r)
		assert.Equal(t, newURL, records[0]["img_url1"], "slot position is kept")
	})
}

func TestRequestReplaceImage_UnknownURL(t *testing.T) {
	engine, _, r, cleanup := setup()
	defer cleanup()

	uuid := add(t, engine, r, "Box A")

	r.POST("/").SetJSON(gofight.D{
		"action":  "replaceImage",
		"uuid":    uuid,
		"old_url": "http://files.test/files/ghost.jpg",
		"file":    gofight.D{"fileName": "b.jpg", "mimeType": "image/jpeg", "file": "d29ybGQ="},
	}).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"success":false,"message":"unknown image url: http://files.test/files/ghost.jpg"}`, r.Body.String())
	})
}

func TestRequestDeleteImage(t *testing.T) {
	engine, ctrl, r, cleanup := setup()
	defer cleanup()

	uuid := add(t, engine, r, "Box A")
	first := upload(t, engine, r, uuid, "a.jpg")
	second := upload(t, engine, r, uuid, "b.jpg")

	r.POST("/").SetJSON(gofight.D{
		"action": "deleteImage",
		"uuid":   uuid,
		"url":    first,
	}).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"success":true}`, r.Body.String())
	})

	assert.False(t, fileExists(ctrl.FilesPath, first))

	r.GET("/").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		records := list(t, r)
		assert.Equal(t, "", records[0]["img_url1"], "slot is cleared")
		assert.Equal(t, second, records[0]["img_url2"], "slots are not compacted")
	})
}

// upload stores one image for the item and returns its URL.
func upload(t *testing.T, engine *echo.Echo, r *gofight.RequestConfig, uuid, filename string) string {
	t.Helper()

	var url string
	r.POST("/").SetJSON(gofight.D{
		"action": "uploadImage",
		"uuid":   uuid,
		"files": []gofight.D{
			{"fileName": filename, "mimeType": "image/jpeg", "file": "aGVsbG8="},
		},
	}).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)

		var res struct {
			Success bool     `json:"success"`
			URLs    []string `json:"urls"`
		}
		assert.NoError(t, json.Unmarshal(r.Body.Bytes(), &res))
		assert.True(t, res.Success)
		assert.Len(t, res.URLs, 1)
		url = res.URLs[0]
	})

	return url
}
