package libgudang

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// Actions understood by the remote store. The action field of a POST body
// selects the server-side behavior; listing uses a bare GET instead.
const (
	ActionAdd          = "add"
	ActionEdit         = "edit"
	ActionUploadImage  = "uploadImage"
	ActionReplaceImage = "replaceImage"
	ActionDeleteImage  = "deleteImage"
)

type (
	// A Client defines all interactions that can be performed on a Gudang
	// endpoint. Business failures are reported through Response.Success,
	// never as a Go error; errors are reserved for transport and protocol
	// problems.
	Client interface {
		// Items fetches the whole inventory. Records without a uuid are
		// dropped.
		Items() ([]*Item, error)
		// Add creates a new item. The uuid is assigned by the remote store.
		Add(item AddItem) (*Response, error)
		// Edit updates the text fields of the item identified by its uuid.
		Edit(item EditItem) (*Response, error)
		// UploadImage stores the given files into the item's free image
		// slots.
		UploadImage(uuid string, files []Base64File) (*UploadResponse, error)
		// ReplaceImage swaps the image currently stored at oldURL.
		ReplaceImage(uuid, oldURL string, file Base64File) (*ReplaceResponse, error)
		// DeleteImage clears the image slot holding url.
		DeleteImage(uuid, url string) (*Response, error)
	}

	// An AddItem is the payload of the add action.
	AddItem struct {
		Tagging          string `json:"tagging"`
		Desc             string `json:"desc"`
		OriginalLocation string `json:"original_location"`
		CurrentLocation  string `json:"current_location"`
	}

	// An EditItem is the payload of the edit action.
	EditItem struct {
		UUID             string `json:"uuid"`
		Tagging          string `json:"tagging"`
		Desc             string `json:"desc"`
		OriginalLocation string `json:"original_location"`
		CurrentLocation  string `json:"current_location"`
	}

	// A Response is the outcome of a mutating action.
	Response struct {
		Success bool   `json:"success"`
		Message string `json:"message,omitempty"`
	}

	// An UploadResponse additionally carries the URLs of the stored images.
	UploadResponse struct {
		Response
		URLs []string `json:"urls,omitempty"`
	}

	// A ReplaceResponse additionally carries the URL replacing the old one.
	ReplaceResponse struct {
		Response
		NewURL string `json:"newUrl,omitempty"`
	}

	p      map[string]any
	client struct {
		http     *http.Client
		endpoint string
	}
)

// NewDefaultClient returns a new Client with default HTTP client.
func NewDefaultClient(endpoint string) (Client, error) {
	return NewClient(http.DefaultClient, endpoint)
}

// NewClient returns a new Client.
func NewClient(c *http.Client, endpoint string) (Client, error) {
	_, err := url.Parse(endpoint)
	return &client{endpoint: endpoint, http: c}, errors.Wrap(err, "could not parse endpoint")
}

func (c *client) Items() ([]*Item, error) {
	//
	// Build request
	req, err := http.NewRequest(http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not build request")
	}
	req.Close = true
	req.Header.Add("Accept", "application/json")

	//
	// Perform request
	res, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "could not perform request")
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, parseAPIError(res.Body, res.StatusCode)
	}

	//
	// Process response
	var raws []rawItem
	dec := json.NewDecoder(res.Body)
	if err := dec.Decode(&raws); err != nil {
		return nil, errors.Wrap(err, "could not parse response")
	}

	return parseItems(raws), nil
}

func (c *client) Add(item AddItem) (*Response, error) {
	var response Response
	err := c.perform(ActionAdd, p{
		"tagging":           item.Tagging,
		"desc":              item.Desc,
		"original_location": item.OriginalLocation,
		"current_location":  item.CurrentLocation,
	}, &response)
	return &response, err
}

func (c *client) Edit(item EditItem) (*Response, error) {
	var response Response
	err := c.perform(ActionEdit, p{
		"uuid":              item.UUID,
		"tagging":           item.Tagging,
		"desc":              item.Desc,
		"original_location": item.OriginalLocation,
		"current_location":  item.CurrentLocation,
	}, &response)
	return &response, err
}

func (c *client) UploadImage(uuid string, files []Base64File) (*UploadResponse, error) {
	var response UploadResponse
	err := c.perform(ActionUploadImage, p{
		"uuid":  uuid,
		"files": files,
	}, &response)
	return &response, err
}

func (c *client) ReplaceImage(uuid, oldURL string, file Base64File) (*ReplaceResponse, error) {
	var response ReplaceResponse
	err := c.perform(ActionReplaceImage, p{
		"uuid":    uuid,
		"old_url": oldURL,
		"file":    file,
	}, &response)
	return &response, err
}

func (c *client) DeleteImage(uuid, url string) (*Response, error) {
	var response Response
	err := c.perform(ActionDeleteImage, p{
		"uuid": uuid,
		"url":  url,
	}, &response)
	return &response, err
}

// perform executes one mutating action against the endpoint.
func (c *client) perform(action string, payload p, v any) error {
	//
	// Build request
	payload["action"] = action
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrapf(err, "could not serialize %s payload", action)
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "could not build request")
	}
	req.Close = true
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")

	//
	// Perform request
	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "could not perform request")
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return parseAPIError(res.Body, res.StatusCode)
	}

	//
	// Process response
	dec := json.NewDecoder(res.Body)
	return errors.Wrap(dec.Decode(v), "could not parse response")
}
