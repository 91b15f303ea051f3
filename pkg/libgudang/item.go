package libgudang

import "github.com/gudangapp/gudang/pkg/structs"

// Column names of the editable item fields, as exposed by the remote store.
const (
	FieldTagging          = "tagging"
	FieldDesc             = "desc"
	FieldOriginalLocation = "original_location"
	FieldCurrentLocation  = "current_location"
)

// MaxImages is the number of image slots the remote store exposes per item.
const MaxImages = 3

type (
	// An Item is a tagged physical asset tracked by the inventory.
	Item struct {
		UUID             string      `json:"uuid"`
		Tagging          string      `json:"tagging"`
		Desc             string      `json:"desc"`
		OriginalLocation string      `json:"original_location"`
		CurrentLocation  string      `json:"current_location"`
		Images           []ItemImage `json:"images"`
	}

	// An ItemImage is one of the item's occupied image slots.
	ItemImage struct {
		URL   string `json:"url"`
		Index int    `json:"index"` // 1-based slot position
	}

	// A rawItem is an item record as rendered by the remote store.
	rawItem struct {
		UUID             string `json:"uuid"`
		Tagging          string `json:"tagging"`
		Desc             string `json:"desc"`
		OriginalLocation string `json:"original_location"`
		CurrentLocation  string `json:"current_location"`
		ImgURL1          string `json:"img_url1"`
		ImgURL2          string `json:"img_url2"`
		ImgURL3          string `json:"img_url3"`
	}
)

// item folds the three image-url columns into attachment slots.
// Empty slots are dropped but the remaining ones keep their position.
func (r rawItem) item() *Item {
	item := &Item{
		UUID:             r.UUID,
		Tagging:          r.Tagging,
		Desc:             r.Desc,
		OriginalLocation: r.OriginalLocation,
		CurrentLocation:  r.CurrentLocation,
	}

	for i, url := range []string{r.ImgURL1, r.ImgURL2, r.ImgURL3} {
		if url == "" {
			continue
		}
		item.Images = append(item.Images, ItemImage{URL: url, Index: i + 1})
	}

	return item
}

// parseItems converts the raw records of a list response.
// Records without a uuid are dropped.
func parseItems(raws []rawItem) []*Item {
	items := make([]*Item, 0, len(raws))
	for _, raw := range raws {
		if raw.UUID == "" {
			continue
		}
		items = append(items, raw.item())
	}
	return items
}

// ImageURLs returns the remote URLs of the item's occupied slots, in slot order.
func (i *Item) ImageURLs() []string {
	urls := make([]string, 0, len(i.Images))
	for _, img := range i.Images {
		urls = append(urls, img.URL)
	}
	return urls
}

// Record returns the item's editable fields as a raw field set suitable for
// IsItemUpdated, keyed the way the remote store names its columns.
func (i *Item) Record() Record {
	record := Record(structs.Record(i))
	delete(record, "uuid")
	delete(record, "images")
	return record
}
