package domain

import "strings"

// ephemeralScheme is the URL scheme of browser-session object URLs. Such
// references cannot be dereferenced outside the page that created them.
const ephemeralScheme = "blob:"

// ImageRefKind discriminates ImageRef.
type ImageRefKind int

const (
	// ImageRefNone means no image is attached.
	ImageRefNone ImageRefKind = iota
	// ImageRefObject is a durable object-storage key, optionally with a
	// previously stored URL to fall back on.
	ImageRefObject
	// ImageRefURL is a durable URL that can be served as-is.
	ImageRefURL
	// ImageRefEphemeral is a browser-session-only reference.
	ImageRefEphemeral
)

func (k ImageRefKind) String() string {
	switch k {
	case ImageRefObject:
		return "object"
	case ImageRefURL:
		return "url"
	case ImageRefEphemeral:
		return "ephemeral"
	default:
		return "none"
	}
}

// ImageRef is a typed image reference. The only way to build one from raw
// strings is ParseImageRef, so an ephemeral URL can never end up as the
// fallback of an object reference or as a durable URL.
type ImageRef struct {
	kind ImageRefKind
	key  string
	url  string
}

// ParseImageRef classifies a stored (key, url) pair.
func ParseImageRef(key, url string) ImageRef {
	key = strings.TrimSpace(key)
	url = strings.TrimSpace(url)
	if IsEphemeralURL(url) {
		url = ""
		if key == "" {
			return ImageRef{kind: ImageRefEphemeral}
		}
	}
	switch {
	case key != "":
		return ImageRef{kind: ImageRefObject, key: key, url: url}
	case url != "":
		return ImageRef{kind: ImageRefURL, url: url}
	default:
		return ImageRef{}
	}
}

// ObjectImageRef references a stored object with an optional fallback URL.
func ObjectImageRef(key, fallbackURL string) ImageRef {
	return ParseImageRef(key, fallbackURL)
}

// Kind reports which variant r holds.
func (r ImageRef) Kind() ImageRefKind { return r.kind }

// Key returns the object-storage key, or "" unless Kind is ImageRefObject.
func (r ImageRef) Key() string { return r.key }

// URL returns the durable URL (the fallback URL for object references).
// It is never an ephemeral reference.
func (r ImageRef) URL() string { return r.url }

// IsDurable reports whether r can be persisted.
func (r ImageRef) IsDurable() bool {
	return r.kind == ImageRefObject || r.kind == ImageRefURL
}

// IsEphemeralURL reports whether url is a browser-session-only reference.
func IsEphemeralURL(url string) bool {
	return strings.HasPrefix(strings.TrimSpace(url), ephemeralScheme)
}

// StoredImage is an image written to object storage.
type StoredImage struct {
	Key string
	// URL is a presigned retrieval URL valid for the configured TTL.
	URL         string
	ContentType string
}
