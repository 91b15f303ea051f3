package libgudang

import (
	"encoding/base64"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

type (
	// A PickedFile is a locally selected photo that has not been uploaded yet.
	PickedFile struct {
		URI      string `json:"uri"`
		FileName string `json:"fileName"`
		MimeType string `json:"mimeType"`
		// File optionally carries the content inline, already base64 encoded.
		File string `json:"file,omitempty"`
	}

	// A Base64File is the wire payload of an image upload. It only lives for
	// the duration of the request.
	Base64File struct {
		FileName string `json:"fileName"`
		MimeType string `json:"mimeType"`
		File     string `json:"file"`
	}
)

// NewPickedFile describes the local file at path. The mime type is guessed
// from the extension.
func NewPickedFile(path string) PickedFile {
	mimetype := mime.TypeByExtension(filepath.Ext(path))
	if mimetype == "" {
		mimetype = "application/octet-stream"
	}

	return PickedFile{
		URI:      path,
		FileName: filepath.Base(path),
		MimeType: mimetype,
	}
}

// FileToBase64 reads the local file behind uri and encodes its content.
func FileToBase64(uri string) (string, error) {
	payload, err := os.ReadFile(strings.TrimPrefix(uri, "file://"))
	if err != nil {
		return "", errors.Wrap(err, "could not read picked file")
	}
	return base64.StdEncoding.EncodeToString(payload), nil
}

// Base64 converts the picked file into its wire payload. An already inlined
// content is used as-is without touching the filesystem.
func (f PickedFile) Base64() (Base64File, error) {
	b64 := Base64File{FileName: f.FileName, MimeType: f.MimeType}

	if f.File != "" {
		b64.File = f.File
		return b64, nil
	}

	var err error
	b64.File, err = FileToBase64(f.URI)
	return b64, err
}

// ConvertPickedFiles converts a whole picker selection into wire payloads.
func ConvertPickedFiles(files []PickedFile) ([]Base64File, error) {
	payloads := make([]Base64File, 0, len(files))
	for _, f := range files {
		b64, err := f.Base64()
		if err != nil {
			return nil, errors.Wrapf(err, "could not convert %s", f.FileName)
		}
		payloads = append(payloads, b64)
	}
	return payloads, nil
}
