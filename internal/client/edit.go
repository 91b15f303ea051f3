package client

import (
	"strings"

	"github.com/gudangapp/gudang/pkg/libgudang"
	"github.com/gudangapp/gudang/pkg/structs"
	"github.com/pkg/errors"
)

type (
	// An EditForm carries the user's pending changes for one item. Zero
	// values mean "keep the current value" only when the form is built
	// through NewEditForm, the submit itself compares whatever it is given.
	EditForm struct {
		Tagging          string `json:"tagging"`
		Desc             string `json:"desc"`
		OriginalLocation string `json:"original_location"`
		CurrentLocation  string `json:"current_location"`
		// Images is the picker selection. Untouched slots are represented
		// by their current remote URL so unchanged selections are detected.
		Images []libgudang.PickedFile `json:"-"`
	}

	// An Outcome is the result of one submit phase.
	Outcome struct {
		Attempted bool
		Success   bool
		Message   string
	}

	// A SubmitReport aggregates both submit phases. The phases run
	// independently, a failed upload does not abort the field edit.
	SubmitReport struct {
		Images Outcome
		Fields Outcome
	}
)

// NewEditForm pre-fills a form with the item's current values.
func NewEditForm(item *libgudang.Item) EditForm {
	form := EditForm{
		Tagging:          item.Tagging,
		Desc:             item.Desc,
		OriginalLocation: item.OriginalLocation,
		CurrentLocation:  item.CurrentLocation,
	}
	for _, url := range item.ImageURLs() {
		form.Images = append(form.Images, libgudang.PickedFile{URI: url})
	}
	return form
}

// Record returns the form's text fields as a raw field set, keyed the way
// the remote store names its columns.
func (f EditForm) Record() libgudang.Record {
	record := libgudang.Record(structs.Record(f))
	return record
}

// Changed reports whether the form differs from the item, either in its
// text fields or in its picker selection.
func (f EditForm) Changed(item *libgudang.Item) bool {
	if libgudang.IsItemUpdated(item.Record(), f.Record()).Updated {
		return true
	}

	picked := make([]any, 0, len(f.Images))
	for _, file := range f.Images {
		picked = append(picked, file)
	}
	return libgudang.HasImageChanged(picked, item.ImageURLs()).Changed
}

// SubmitEdit pushes the form to the remote store in two phases, images first
// then text fields. Each phase only runs when its diff detects a change and
// each reports through notify on its own; a failed upload never blocks the
// field edit. The returned report tells what was attempted and how it went.
func SubmitEdit(client libgudang.Client, notify Notifier, item *libgudang.Item, form EditForm) SubmitReport {
	var report SubmitReport

	//
	// Phase 1: images

	picked := make([]any, 0, len(form.Images))
	for _, file := range form.Images {
		picked = append(picked, file)
	}

	change := libgudang.HasImageChanged(picked, item.ImageURLs())
	if change.Changed {
		report.Images = submitImages(client, notify, item, form.Images)
	}

	//
	// Phase 2: text fields

	diff := libgudang.IsItemUpdated(item.Record(), form.Record())
	if diff.Updated {
		report.Fields = submitFields(client, notify, item, form)
	}

	if !report.Images.Attempted && !report.Fields.Attempted {
		notify.Warnf("no changes to submit")
	}

	return report
}

func submitImages(client libgudang.Client, notify Notifier, item *libgudang.Item, images []libgudang.PickedFile) Outcome {
	outcome := Outcome{Attempted: true}

	// Remote URLs are untouched slots, only the local selections are pushed.
	fresh := make([]libgudang.PickedFile, 0, len(images))
	for _, file := range images {
		if strings.HasPrefix(strings.ToLower(file.URI), "http") && file.File == "" {
			continue
		}
		fresh = append(fresh, file)
	}
	if len(fresh) == 0 {
		outcome.Message = "no new images to upload"
		notify.Warnf(outcome.Message)
		return outcome
	}

	files, err := libgudang.ConvertPickedFiles(fresh)
	if err != nil {
		outcome.Message = err.Error()
		notify.Failf("could not prepare images: %v", err)
		return outcome
	}

	res, err := client.UploadImage(item.UUID, files)
	if err != nil {
		outcome.Message = err.Error()
		notify.Failf("could not upload images: %v", err)
		return outcome
	}
	if !res.Success {
		outcome.Message = res.Message
		notify.Failf("upload rejected: %s", res.Message)
		return outcome
	}

	outcome.Success = true
	notify.Successf("uploaded %d image(s)", len(res.URLs))
	return outcome
}

func submitFields(client libgudang.Client, notify Notifier, item *libgudang.Item, form EditForm) Outcome {
	outcome := Outcome{Attempted: true}

	res, err := client.Edit(libgudang.EditItem{
		UUID:             item.UUID,
		Tagging:          form.Tagging,
		Desc:             form.Desc,
		OriginalLocation: form.OriginalLocation,
		CurrentLocation:  form.CurrentLocation,
	})
	if err != nil {
		outcome.Message = err.Error()
		notify.Failf("could not edit item: %v", err)
		return outcome
	}
	if !res.Success {
		outcome.Message = res.Message
		notify.Failf("edit rejected: %s", res.Message)
		return outcome
	}

	outcome.Success = true
	notify.Successf("item %s updated", item.UUID)
	return outcome
}

// Edit loads the item, applies the command-line overrides and submits the
// result. overrides is keyed by column name, imagePaths are local files to
// append to the item's free slots.
func Edit(uuid string, overrides map[string]string, imagePaths []string) error {
	cfg, err := Load()
	if err != nil {
		return errors.Wrap(err, "could not load config")
	}

	client, err := libgudang.NewDefaultClient(cfg.Endpoint)
	if err != nil {
		return errors.Wrap(err, "could not reach Gudang endpoint")
	}

	item, err := findItem(client, uuid)
	if err != nil {
		return err
	}

	form := NewEditForm(item)
	for field, value := range overrides {
		switch field {
		case libgudang.FieldTagging:
			form.Tagging = value
		case libgudang.FieldDesc:
			form.Desc = value
		case libgudang.FieldOriginalLocation:
			form.OriginalLocation = value
		case libgudang.FieldCurrentLocation:
			form.CurrentLocation = value
		default:
			return errors.Errorf("unknown field: %s", field)
		}
	}
	for _, path := range imagePaths {
		form.Images = append(form.Images, libgudang.NewPickedFile(path))
	}

	SubmitEdit(client, NewConsoleNotifier(), item, form)
	return nil
}

// findItem fetches the inventory and returns the item carrying uuid.
func findItem(client libgudang.Client, uuid string) (*libgudang.Item, error) {
	items, err := client.Items()
	if err != nil {
		return nil, errors.Wrap(err, "could not get items")
	}

	for _, item := range items {
		if item.UUID == uuid {
			return item, nil
		}
	}
	return nil, errors.Errorf("unknown item: %s", uuid)
}
