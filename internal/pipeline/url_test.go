package pipeline

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBase(t *testing.T, s string) *url.URL {
	t.Helper()
	b, err := url.Parse(s)
	require.NoError(t, err)
	return b
}

func TestNormalize_ResolvesAgainstBase(t *testing.T) {
	base := mustBase(t, "http://example.com/")

	u, ok := Normalize("/page1.html", base, true)

	require.True(t, ok)
	assert.Equal(t, "http://example.com/page1.html", u.String())
}

func TestNormalize_WithoutResolutionStaysRelative(t *testing.T) {
	base := mustBase(t, "http://example.com/")

	u, ok := Normalize("/page1.html", base, false)

	require.True(t, ok)
	assert.Equal(t, "/page1.html", u.String())
}

func TestNormalize_Canonicalizes(t *testing.T) {
	cases := map[string]string{
		"HTTP://Example.COM/a/../b": "http://example.com/b",
		"http://example.com:80/x":   "http://example.com/x",
		"https://EXAMPLE.com:443/y": "https://example.com/y",
		"http://example.com:8080/z": "http://example.com:8080/z",
		"http://example.com":        "http://example.com/",
		"http://example.com/a/./b":  "http://example.com/a/b",
		"mailto:x@y.com":            "mailto:x@y.com",
	}
	for raw, want := range cases {
		u, ok := Normalize(raw, nil, false)
		require.True(t, ok, raw)
		assert.Equal(t, want, u.String(), raw)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	raws := []string{
		"HTTP://Example.COM:80/a/../b?x=1#frag",
		"https://example.com",
		"http://example.com/%7Euser/page.html",
		"mailto:x@y.com",
		"/relative/path.html",
		"ftp://host/dir/file.txt",
	}
	for _, raw := range raws {
		u, ok := Normalize(raw, nil, false)
		require.True(t, ok, raw)

		again, ok := Normalize(u.String(), nil, false)
		require.True(t, ok, raw)
		assert.Equal(t, u.String(), again.String(), raw)
	}
}

func TestNormalize_MalformedDropped(t *testing.T) {
	for _, raw := range []string{"", "   ", ":", "http://[::1"} {
		_, ok := Normalize(raw, nil, false)
		assert.False(t, ok, "%q should not parse", raw)
	}
}

func TestCanonicalURL_AbsentComponents(t *testing.T) {
	u, ok := Normalize("/x/y.html", nil, false)
	require.True(t, ok)

	_, hasScheme := u.Scheme()
	_, hasHost := u.Host()
	assert.False(t, hasScheme)
	assert.False(t, hasHost)
	assert.Equal(t, "/x/y.html", u.Path())
}

func TestCanonicalURL_MailtoHasSchemeButNoHost(t *testing.T) {
	u, ok := Normalize("mailto:x@y.com", nil, false)
	require.True(t, ok)

	scheme, hasScheme := u.Scheme()
	_, hasHost := u.Host()
	assert.True(t, hasScheme)
	assert.Equal(t, "mailto", scheme)
	assert.False(t, hasHost)
}

func TestCanonicalURL_Extension(t *testing.T) {
	cases := map[string]string{
		"http://a/b.html":    "html",
		"http://a/b":         "",
		"http://a/b.tar.gz":  "gz",
		"http://a/x.y/plain": "",
		"http://a/b.":        "",
		"mailto:x@y.com":     "",
	}
	for raw, want := range cases {
		u, ok := Normalize(raw, nil, false)
		require.True(t, ok, raw)
		assert.Equal(t, want, u.Extension(), raw)
	}
}
