package server_test

import (
	"net/http"
	"testing"

	"github.com/appleboy/gofight/v2"
	"github.com/stretchr/testify/assert"
)

func TestRequestAdd(t *testing.T) {
	engine, _, r, cleanup := setup()
	defer cleanup()

	add(t, engine, r, "Box A")

	r.GET("/").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)

		records := list(t, r)
		assert.Len(t, records, 1)
		assert.NotEmpty(t, records[0]["uuid"])
		assert.Equal(t, "Box A", records[0]["tagging"])
		assert.Equal(t, "books", records[0]["desc"])
		assert.Equal(t, "Warehouse 1", records[0]["original_location"])
		assert.Equal(t, "", records[0]["current_location"])
		assert.Equal(t, "", records[0]["img_url1"])
		assert.Equal(t, "", records[0]["img_url2"])
		assert.Equal(t, "", records[0]["img_url3"])
	})
}

func TestRequestAdd_MissingTagging(t *testing.T) {
	engine, _, r, cleanup := setup()
	defer cleanup()

	r.POST("/").SetJSON(gofight.D{
		"action":  "add",
		"tagging": "   ",
		"desc":    "books",
	}).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"success":false,"message":"tagging is required"}`, r.Body.String())
	})

	r.GET("/").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.JSONEq(t, `[]`, r.Body.String())
	})
}

func TestRequestEdit(t *testing.T) {
	engine, _, r, cleanup := setup()
	defer cleanup()

	uuid := add(t, engine, r, "Box A")

	r.POST("/").SetJSON(gofight.D{
		"action":            "edit",
		"uuid":              uuid,
		"tagging":           "Box A",
		"desc":              "books",
		"original_location": "Warehouse 1",
		"current_location":  "Office",
	}).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"success":true}`, r.Body.String())
	})

	r.GET("/").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		records := list(t, r)
		assert.Len(t, records, 1)
		assert.Equal(t, uuid, records[0]["uuid"], "uuid is stable across edits")
		assert.Equal(t, "Office", records[0]["current_location"])
	})
}

func TestRequestEdit_UnknownItem(t *testing.T) {
	engine, _, r, cleanup := setup()
	defer cleanup()

	r.POST("/").SetJSON(gofight.D{
		"action":  "edit",
		"uuid":    "ghost",
		"tagging": "Box A",
	}).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"success":false,"message":"unknown item: ghost"}`, r.Body.String())
	})
}
