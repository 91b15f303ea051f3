package server

import (
	"net/http"
	"strings"

	"github.com/gudangapp/gudang/internal/apierror"
	"github.com/gudangapp/gudang/internal/database"
	"github.com/gudangapp/gudang/internal/model"
	"github.com/gudangapp/gudang/pkg/libgudang"
	"github.com/labstack/echo/v4"
)

// item contains all item handlers.
type item struct {
	db database.Client
}

///// List
////
//

// List renders every stored item as a bare array of raw records, the
// response shape the mobile clients expect.
func (h *item) List(c echo.Context) error {
	items, err := h.db.AllItems()
	if err != nil {
		return err
	}
	if items == nil {
		items = []*model.Item{}
	}

	return c.JSON(http.StatusOK, items)
}

///// Add
////
//

// Add creates an item. The uuid is assigned here, never by clients.
func (h *item) Add(c echo.Context) error {
	var params libgudang.AddItem
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusOK, apierror.New("could not read add payload"))
	}

	if strings.TrimSpace(params.Tagging) == "" {
		return c.JSON(http.StatusOK, apierror.New("tagging is required"))
	}

	record := &model.Item{
		Tagging:          params.Tagging,
		Desc:             params.Desc,
		OriginalLocation: params.OriginalLocation,
		CurrentLocation:  params.CurrentLocation,
	}
	if err := h.db.Save(record); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, libgudang.Response{Success: true})
}

///// Edit
////
//

// Edit updates the text fields of an existing item. Image slots are managed
// by the image actions only.
func (h *item) Edit(c echo.Context) error {
	var params libgudang.EditItem
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusOK, apierror.New("could not read edit payload"))
	}

	if strings.TrimSpace(params.Tagging) == "" {
		return c.JSON(http.StatusOK, apierror.New("tagging is required"))
	}

	record, err := h.db.FindItem(params.UUID)
	if err != nil {
		if h.db.IsNotFound(err) {
			return c.JSON(http.StatusOK, apierror.New("unknown item: "+params.UUID))
		}
		return err
	}

	record.Tagging = params.Tagging
	record.Desc = params.Desc
	record.OriginalLocation = params.OriginalLocation
	record.CurrentLocation = params.CurrentLocation
	if err := h.db.Save(record); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, libgudang.Response{Success: true})
}
