package pipeline

import (
	"net/url"
	"strings"
)

// CanonicalURL is a parsed, canonicalized URL. Scheme and host may be
// absent (relative references, opaque schemes like mailto); accessors
// report absence instead of returning a zero value blindly.
type CanonicalURL struct {
	u *url.URL
}

// Normalize parses a raw link and canonicalizes it. When resolve is true
// and base is non-nil, the link is first resolved against base per
// RFC 3986 reference resolution. Returns ok=false for links that cannot
// be parsed as URLs at all; callers drop those without failing the run.
func Normalize(raw string, base *url.URL, resolve bool) (CanonicalURL, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return CanonicalURL{}, false
	}

	ref, err := url.Parse(raw)
	if err != nil {
		return CanonicalURL{}, false
	}

	u := ref
	if resolve && base != nil {
		u = base.ResolveReference(ref)
	}

	canonicalize(u)
	return CanonicalURL{u: u}, true
}

// canonicalize applies lowercase scheme/host, default-port removal,
// dot-segment resolution and empty-path normalization in place.
// The result is stable: canonicalizing the serialization of an already
// canonical URL yields the identical serialization.
func canonicalize(u *url.URL) {
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)

	// TrimSuffix keeps IPv6 brackets intact, unlike rebuilding from Hostname().
	switch u.Scheme {
	case "http":
		u.Host = strings.TrimSuffix(u.Host, ":80")
	case "https":
		u.Host = strings.TrimSuffix(u.Host, ":443")
	}

	// ResolveReference against an empty base removes dot segments from
	// absolute and host-relative references. Purely relative paths keep
	// theirs: a leading ".." cannot be resolved without a base.
	if u.Scheme != "" || u.Host != "" {
		*u = *(&url.URL{}).ResolveReference(u)
	}

	if u.Host != "" && u.Path == "" {
		u.Path = "/"
	}
}

// Scheme returns the URL scheme and whether one is present.
func (c CanonicalURL) Scheme() (string, bool) {
	if c.u.Scheme == "" {
		return "", false
	}
	return c.u.Scheme, true
}

// Host returns the URL host and whether one is present.
func (c CanonicalURL) Host() (string, bool) {
	if c.u.Host == "" {
		return "", false
	}
	return c.u.Host, true
}

// Path returns the path component, which may be empty.
func (c CanonicalURL) Path() string {
	return c.u.Path
}

// Extension returns the suffix after the last "." of the final path
// segment, without the dot. A final segment with no dot has extension "".
func (c CanonicalURL) Extension() string {
	seg := c.u.Path
	if i := strings.LastIndex(seg, "/"); i >= 0 {
		seg = seg[i+1:]
	}
	i := strings.LastIndex(seg, ".")
	if i < 0 {
		return ""
	}
	return seg[i+1:]
}

// String returns the canonical serialized form.
func (c CanonicalURL) String() string {
	return c.u.String()
}
