package structs

import (
	"strings"

	"github.com/oleiade/reflections"
)

// GetField returns the value of the provided obj field. obj can whether be a structure or pointer to structure.
func GetField(obj any, name string) any {
	v, err := reflections.GetField(obj, name)
	if err != nil {
		panic(err)
	}

	return v
}

// Record returns the exported fields of obj keyed by their json tag. Fields
// without a json tag (or tagged "-") are skipped. obj can whether be a
// structure or pointer to structure.
func Record(obj any) map[string]any {
	tags, err := reflections.Tags(obj, "json")
	if err != nil {
		panic(err)
	}

	record := make(map[string]any, len(tags))
	for field, tag := range tags {
		if i := strings.Index(tag, ","); i >= 0 {
			tag = tag[:i]
		}
		if tag == "" || tag == "-" {
			continue
		}

		record[tag] = GetField(obj, field)
	}

	return record
}
