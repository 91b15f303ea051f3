package libgudang

import "strings"

// Reasons reported by HasImageChanged. Diagnostic only, callers must branch
// on ImageChange.Changed.
const (
	ReasonNoPickedFiles   = "no-picked-files"
	ReasonLocalURIString  = "local-uri-string"
	ReasonHasBase64       = "has-base64"
	ReasonLocalURI        = "local-uri"
	ReasonDifferentLength = "different-length"
	ReasonURLDifferent    = "url-different"
	ReasonNoChange        = "no-change-detected"
)

// An ImageChange tells whether a fresh picker selection warrants an upload.
type ImageChange struct {
	Changed bool   `json:"changed"`
	Reason  string `json:"reason"`
}

// HasImageChanged decides whether the picked files constitute a real change
// against the currently known remote image URLs. Elements of picked can be
// bare URI strings, PickedFile values (or pointers) or raw maps carrying
// uri/path/url/file keys.
//
// Picker output is almost always a local filesystem reference or an inline
// base64 payload, so the common case short-circuits without touching the
// original URLs. The positional URL comparison only triggers when every
// picked entry already is a remote URL.
func HasImageChanged(picked []any, originalURLs []string) ImageChange {
	if len(picked) == 0 {
		return ImageChange{Reason: ReasonNoPickedFiles}
	}

	for _, f := range picked {
		if f == nil {
			continue
		}

		if s, ok := f.(string); ok {
			if !strings.HasPrefix(s, "http") {
				return ImageChange{Changed: true, Reason: ReasonLocalURIString}
			}
			continue
		}

		payload, uri := describePicked(f)
		if payload != "" {
			return ImageChange{Changed: true, Reason: ReasonHasBase64}
		}

		if uri != "" {
			lower := strings.ToLower(uri)
			local := strings.HasPrefix(lower, "file://") ||
				strings.HasPrefix(lower, "content://") ||
				!strings.HasPrefix(lower, "http")
			if local {
				return ImageChange{Changed: true, Reason: ReasonLocalURI}
			}
		}
	}

	// Everything picked looks like a remote URL. Fall back to comparing the
	// lists position by position.
	pickedURLs := make([]string, 0, len(picked))
	for _, f := range picked {
		if url := pickedURL(f); url != "" {
			pickedURLs = append(pickedURLs, strings.ToLower(url))
		}
	}

	original := make([]string, 0, len(originalURLs))
	for _, url := range originalURLs {
		if url != "" {
			original = append(original, strings.ToLower(url))
		}
	}

	if len(pickedURLs) != len(original) {
		return ImageChange{Changed: true, Reason: ReasonDifferentLength}
	}
	for i := range pickedURLs {
		if pickedURLs[i] != original[i] {
			return ImageChange{Changed: true, Reason: ReasonURLDifferent}
		}
	}

	return ImageChange{Reason: ReasonNoChange}
}

// describePicked extracts the inline base64 payload and the URI-like field of
// a picked entry, whatever its concrete shape.
func describePicked(f any) (payload, uri string) {
	switch f := f.(type) {
	case PickedFile:
		return f.File, f.URI
	case *PickedFile:
		if f == nil {
			return "", ""
		}
		return f.File, f.URI
	case map[string]any:
		payload, _ = f["file"].(string)
		for _, key := range []string{"uri", "path"} {
			if s, ok := f[key].(string); ok && s != "" {
				uri = s
				break
			}
		}
		return payload, uri
	}
	return "", ""
}

// pickedURL returns the URL a picked entry refers to, for the fallback
// comparison. url is accepted here on raw maps, unlike in describePicked.
func pickedURL(f any) string {
	switch f := f.(type) {
	case string:
		return f
	case PickedFile:
		return f.URI
	case *PickedFile:
		if f != nil {
			return f.URI
		}
	case map[string]any:
		for _, key := range []string{"uri", "url"} {
			if s, ok := f[key].(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}
