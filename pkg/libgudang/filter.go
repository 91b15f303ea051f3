package libgudang

import "strings"

// ApplyFilter returns the items whose text fields contain query as a
// case-insensitive substring. An item matches as soon as one of tagging,
// desc, original_location or current_location contains the query. An empty
// (or blank) query returns the input collection unmodified.
func ApplyFilter(items []*Item, query string) []*Item {
	if len(items) == 0 {
		return []*Item{}
	}

	term := strings.ToLower(query)
	if strings.TrimSpace(term) == "" {
		return items
	}

	matched := make([]*Item, 0, len(items))
	for _, item := range items {
		values := []string{item.Tagging, item.Desc, item.OriginalLocation, item.CurrentLocation}
		for _, v := range values {
			if strings.Contains(strings.ToLower(v), term) {
				matched = append(matched, item)
				break
			}
		}
	}

	return matched
}
