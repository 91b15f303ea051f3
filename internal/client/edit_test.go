package client_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gudangapp/gudang/internal/client"
	"github.com/gudangapp/gudang/pkg/libgudang"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	successes []string
	warnings  []string
	failures  []string
}

func (r *recorder) Successf(format string, args ...any) {
	r.successes = append(r.successes, fmt.Sprintf(format, args...))
}

func (r *recorder) Warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func (r *recorder) Failf(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

// fake runs an endpoint recording the actions it receives. Actions listed in
// rejected are answered with a business failure.
func fake(t *testing.T, actions *[]string, rejected ...string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			fmt.Fprint(w, `[{"uuid":"123","tagging":"Box A","desc":"books","original_location":"Warehouse 1","current_location":"Warehouse 1","img_url1":"http://files.test/files/123_1_old.jpg","img_url2":"","img_url3":""}]`)
			return
		}

		var payload map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		action, _ := payload["action"].(string)
		*actions = append(*actions, action)

		for _, reject := range rejected {
			if action == reject {
				fmt.Fprint(w, `{"success":false,"message":"nope"}`)
				return
			}
		}
		fmt.Fprint(w, `{"success":true,"urls":["http://files.test/files/123_1_a.jpg"]}`)
	}))
}

func box() *libgudang.Item {
	return &libgudang.Item{
		UUID:             "123",
		Tagging:          "Box A",
		Desc:             "books",
		OriginalLocation: "Warehouse 1",
		CurrentLocation:  "Warehouse 1",
		Images: []libgudang.ItemImage{
			{URL: "http://files.test/files/123_1_old.jpg", Index: 1},
		},
	}
}

func TestSubmitEdit_OnlyFieldsChanged(t *testing.T) {
	var actions []string
	ts := fake(t, &actions)
	defer ts.Close()

	c, err := libgudang.NewDefaultClient(ts.URL)
	assert.NoError(t, err)

	item := box()
	form := client.NewEditForm(item)
	form.CurrentLocation = "Office"

	notify := &recorder{}
	report := client.SubmitEdit(c, notify, item, form)

	assert.Equal(t, []string{"edit"}, actions)
	assert.False(t, report.Images.Attempted)
	assert.True(t, report.Fields.Attempted)
	assert.True(t, report.Fields.Success)
	assert.Equal(t, []string{"item 123 updated"}, notify.successes)
}

func TestSubmitEdit_NothingChanged(t *testing.T) {
	var actions []string
	ts := fake(t, &actions)
	defer ts.Close()

	c, err := libgudang.NewDefaultClient(ts.URL)
	assert.NoError(t, err)

	item := box()
	form := client.NewEditForm(item)
	// Input widgets tend to add whitespace and change casing.
	form.CurrentLocation = "  warehouse 1 "

	notify := &recorder{}
	report := client.SubmitEdit(c, notify, item, form)

	assert.Empty(t, actions)
	assert.False(t, report.Images.Attempted)
	assert.False(t, report.Fields.Attempted)
	assert.Equal(t, []string{"no changes to submit"}, notify.warnings)
}

func TestSubmitEdit_FieldsAndImagesChanged(t *testing.T) {
	var actions []string
	ts := fake(t, &actions)
	defer ts.Close()

	c, err := libgudang.NewDefaultClient(ts.URL)
	assert.NoError(t, err)

	item := box()
	form := client.NewEditForm(item)
	form.CurrentLocation = "Office"
	form.Images = append(form.Images, libgudang.PickedFile{
		FileName: "a.jpg",
		MimeType: "image/jpeg",
		File:     "aGVsbG8=",
	})

	notify := &recorder{}
	report := client.SubmitEdit(c, notify, item, form)

	assert.Equal(t, []string{"uploadImage", "edit"}, actions)
	assert.True(t, report.Images.Success)
	assert.True(t, report.Fields.Success)
}

func TestSubmitEdit_UploadFailureDoesNotBlockEdit(t *testing.T) {
	var actions []string
	ts := fake(t, &actions, "uploadImage")
	defer ts.Close()

	c, err := libgudang.NewDefaultClient(ts.URL)
	assert.NoError(t, err)

	item := box()
	form := client.NewEditForm(item)
	form.CurrentLocation = "Office"
	form.Images = append(form.Images, libgudang.PickedFile{
		FileName: "a.jpg",
		MimeType: "image/jpeg",
		File:     "aGVsbG8=",
	})

	notify := &recorder{}
	report := client.SubmitEdit(c, notify, item, form)

	assert.Equal(t, []string{"uploadImage", "edit"}, actions)
	assert.True(t, report.Images.Attempted)
	assert.False(t, report.Images.Success)
	assert.Equal(t, "nope", report.Images.Message)
	assert.True(t, report.Fields.Success)
	assert.Equal(t, []string{"upload rejected: nope"}, notify.failures)
}

func TestEditForm_Changed(t *testing.T) {
	item := box()

	form := client.NewEditForm(item)
	assert.False(t, form.Changed(item))

	form.Desc = "books and tools"
	assert.True(t, form.Changed(item))

	form = client.NewEditForm(item)
	form.Images = append(form.Images, libgudang.PickedFile{URI: "file:///tmp/a.jpg"})
	assert.True(t, form.Changed(item))
}
