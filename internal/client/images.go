package client

import (
	"github.com/gudangapp/gudang/pkg/libgudang"
	"github.com/pkg/errors"
)

// UploadImages pushes the local files at paths into the item's free slots.
func UploadImages(uuid string, paths []string) error {
	client, notify, err := dial()
	if err != nil {
		return err
	}

	picked := make([]libgudang.PickedFile, 0, len(paths))
	for _, path := range paths {
		picked = append(picked, libgudang.NewPickedFile(path))
	}

	files, err := libgudang.ConvertPickedFiles(picked)
	if err != nil {
		return errors.Wrap(err, "could not prepare images")
	}

	res, err := client.UploadImage(uuid, files)
	if err != nil {
		return errors.Wrap(err, "could not upload images")
	}
	if !res.Success {
		notify.Failf("upload rejected: %s", res.Message)
		return nil
	}

	for _, url := range res.URLs {
		notify.Successf("stored %s", url)
	}
	return nil
}

// ReplaceImage swaps the image stored at oldURL with the local file at path.
// The slot position is kept.
func ReplaceImage(uuid, oldURL, path string) error {
	client, notify, err := dial()
	if err != nil {
		return err
	}

	file, err := libgudang.NewPickedFile(path).Base64()
	if err != nil {
		return errors.Wrap(err, "could not prepare image")
	}

	res, err := client.ReplaceImage(uuid, oldURL, file)
	if err != nil {
		return errors.Wrap(err, "could not replace image")
	}
	if !res.Success {
		notify.Failf("replace rejected: %s", res.Message)
		return nil
	}

	notify.Successf("stored %s", res.NewURL)
	return nil
}

// DeleteImage clears the slot holding url. Remaining slots keep their
// positions.
func DeleteImage(uuid, url string) error {
	client, notify, err := dial()
	if err != nil {
		return err
	}

	res, err := client.DeleteImage(uuid, url)
	if err != nil {
		return errors.Wrap(err, "could not delete image")
	}
	if !res.Success {
		notify.Failf("delete rejected: %s", res.Message)
		return nil
	}

	notify.Successf("image removed")
	return nil
}

// dial loads the configuration and connects to the configured endpoint.
func dial() (libgudang.Client, Notifier, error) {
	cfg, err := Load()
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not load config")
	}

	client, err := libgudang.NewDefaultClient(cfg.Endpoint)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not reach Gudang endpoint")
	}

	return client, NewConsoleNotifier(), nil
}
