package server

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gudangapp/gudang/internal/apierror"
	"github.com/gudangapp/gudang/internal/database"
	"github.com/gudangapp/gudang/internal/model"
	"github.com/gudangapp/gudang/pkg/libgudang"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// image contains all image handlers and the on-disk store behind the served
// file URLs.
type image struct {
	db        database.Client
	publicURL string
	filespath string
}

type (
	uploadParams struct {
		UUID  string                 `json:"uuid"`
		Files []libgudang.Base64File `json:"files"`
	}

	replaceParams struct {
		UUID   string               `json:"uuid"`
		OldURL string               `json:"old_url"`
		File   libgudang.Base64File `json:"file"`
	}

	deleteParams struct {
		UUID string `json:"uuid"`
		URL  string `json:"url"`
	}
)

///// Upload
////
//

// Upload stores the given files into the item's free image slots.
func (h *image) Upload(c echo.Context) error {
	var params uploadParams
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusOK, apierror.New("could not read uploadImage payload"))
	}
	if len(params.Files) == 0 {
		return c.JSON(http.StatusOK, apierror.New("no files to upload"))
	}

	record, err := h.db.FindItem(params.UUID)
	if err != nil {
		if h.db.IsNotFound(err) {
			return c.JSON(http.StatusOK, apierror.New("unknown item: "+params.UUID))
		}
		return err
	}

	if record.FreeSlots() < len(params.Files) {
		return c.JSON(http.StatusOK, apierror.New("not enough free image slots"))
	}

	urls := make([]string, 0, len(params.Files))
	for _, file := range params.Files {
		n, _ := record.FreeSlot()
		url, err := h.store(record.ID, n, file)
		if err != nil {
			return h.render(c, err)
		}

		*record.Slots()[n] = url
		urls = append(urls, url)
	}

	if err := h.db.Save(record); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, libgudang.UploadResponse{
		Response: libgudang.Response{Success: true},
		URLs:     urls,
	})
}

///// Replace
////
//

// Replace swaps the image stored at old_url, keeping its slot position.
func (h *image) Replace(c echo.Context) error {
	var params replaceParams
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusOK, apierror.New("could not read replaceImage payload"))
	}

	record, err := h.findOwner(params.UUID, params.OldURL)
	if err != nil {
		return h.render(c, err)
	}

	n, ok := record.SlotOf(params.OldURL)
	if !ok {
		return c.JSON(http.StatusOK, apierror.New("unknown image url: "+params.OldURL))
	}

	url, err := h.store(record.ID, n, params.File)
	if err != nil {
		return h.render(c, err)
	}
	if path.Base(params.OldURL) != path.Base(url) {
		h.remove(params.OldURL)
	}

	*record.Slots()[n] = url
	if err := h.db.Save(record); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, libgudang.ReplaceResponse{
		Response: libgudang.Response{Success: true},
		NewURL:   url,
	})
}

///// Delete
////
//

// Delete clears the slot holding url and removes the stored file.
// Remaining slots keep their positions, they are not compacted.
func (h *image) Delete(c echo.Context) error {
	var params deleteParams
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusOK, apierror.New("could not read deleteImage payload"))
	}

	record, err := h.findOwner(params.UUID, params.URL)
	if err != nil {
		return h.render(c, err)
	}

	n, ok := record.SlotOf(params.URL)
	if !ok {
		return c.JSON(http.StatusOK, apierror.New("unknown image url: "+params.URL))
	}

	*record.Slots()[n] = ""
	if err := h.db.Save(record); err != nil {
		return err
	}
	h.remove(params.URL)

	return c.JSON(http.StatusOK, libgudang.Response{Success: true})
}

///// Download
////
//

// Download serves a stored image file over plain HTTP.
func (h *image) Download(c echo.Context) error {
	name := filepath.Base(c.Param("name")) // no path traversal
	fp := filepath.Join(h.filespath, name)

	if _, err := os.Stat(fp); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "unknown file")
	}

	return c.File(fp)
}

// findOwner locates the item a slot operation targets: by uuid when given,
// by looking its image URL up otherwise.
func (h *image) findOwner(uuid, url string) (*model.Item, error) {
	var record *model.Item
	var err error

	if uuid != "" {
		record, err = h.db.FindItem(uuid)
	} else {
		record, err = h.db.FindItemByImageURL(url)
	}

	if err != nil {
		if h.db.IsNotFound(err) {
			ref := uuid
			if ref == "" {
				ref = url
			}
			return nil, apierror.New("unknown item: " + ref)
		}
		return nil, err
	}

	return record, nil
}

// store decodes and writes one image payload, returning its serving URL.
func (h *image) store(id string, slot int, file libgudang.Base64File) (string, error) {
	payload, err := base64.StdEncoding.DecodeString(file.File)
	if err != nil {
		return "", apierror.New("invalid base64 payload: " + file.FileName)
	}

	filename := filepath.Base(file.FileName)
	if filename == "" || filename == "." {
		filename = "image"
	}
	name := fmt.Sprintf("%s_%d_%s", id, slot+1, filename)

	if err := os.WriteFile(filepath.Join(h.filespath, name), payload, 0644); err != nil {
		return "", errors.Wrap(err, "could not store image")
	}

	return h.publicURL + "/files/" + name, nil
}

// remove drops the stored file behind url. Best effort, a leftover file does
// not fail the action.
func (h *image) remove(url string) {
	_ = os.Remove(filepath.Join(h.filespath, filepath.Base(path.Base(url))))
}

// render writes a business failure as the API's uniform shape, passing real
// errors through to the error handler middleware.
func (h *image) render(c echo.Context, err error) error {
	if apierr, ok := err.(*apierror.Error); ok {
		return c.JSON(apierror.StatusCode(apierr), apierr)
	}
	return err
}
