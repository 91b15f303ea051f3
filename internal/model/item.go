package model

// An Item represents a database record and its spreadsheet-style API
// rendering: the three image slots are exposed as flat img_url columns.
type Item struct {
	Base `msgpack:",inline" storm:"inline"`

	Tagging          string `json:"tagging"           msgpack:"tagging"           storm:"index"`
	Desc             string `json:"desc"              msgpack:"desc"`
	OriginalLocation string `json:"original_location" msgpack:"original_location" storm:"index"`
	CurrentLocation  string `json:"current_location"  msgpack:"current_location"  storm:"index"`
	ImgURL1          string `json:"img_url1"          msgpack:"img_url1"`
	ImgURL2          string `json:"img_url2"          msgpack:"img_url2"`
	ImgURL3          string `json:"img_url3"          msgpack:"img_url3"`
}

// Slots returns the item's image slots, addressable in place.
func (i *Item) Slots() []*string {
	return []*string{&i.ImgURL1, &i.ImgURL2, &i.ImgURL3}
}

// FreeSlot returns the index of the first empty image slot.
func (i *Item) FreeSlot() (int, bool) {
	for n, slot := range i.Slots() {
		if *slot == "" {
			return n, true
		}
	}
	return 0, false
}

// FreeSlots counts the empty image slots.
func (i *Item) FreeSlots() int {
	var free int
	for _, slot := range i.Slots() {
		if *slot == "" {
			free++
		}
	}
	return free
}

// SlotOf returns the index of the slot holding url.
func (i *Item) SlotOf(url string) (int, bool) {
	for n, slot := range i.Slots() {
		if *slot != "" && *slot == url {
			return n, true
		}
	}
	return 0, false
}
