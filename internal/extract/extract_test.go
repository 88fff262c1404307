package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinks_SimpleAnchor(t *testing.T) {
	html := `<html><body><a href="https://example.com">Example</a></body></html>`

	assert.Equal(t, []string{"https://example.com"}, Links(html))
}

func TestLinks_DocumentOrderAndDuplicatesPreserved(t *testing.T) {
	html := `
	<html><body>
		<a href="https://foo.com">Foo</a>
		<a href="/bar">Bar</a>
		<a href="https://foo.com">Foo again</a>
	</body></html>`

	assert.Equal(t, []string{"https://foo.com", "/bar", "https://foo.com"}, Links(html))
}

func TestLinks_NoAnchors(t *testing.T) {
	html := `<html><body><p>No links here!</p></body></html>`

	assert.Empty(t, Links(html))
}

func TestLinks_AnchorWithoutHref(t *testing.T) {
	html := `<html><body><a>nothing</a><a href="">empty</a><a href="  ">blank</a></body></html>`

	assert.Empty(t, Links(html))
}

func TestLinks_InvalidHTMLIsBestEffort(t *testing.T) {
	html := `<html><body><a href="/ok">ok</a><a href="incomplete`

	assert.Equal(t, []string{"/ok"}, Links(html))
}

func TestLinks_AreaElements(t *testing.T) {
	html := `<map><area href="/map-target" shape="rect"></map>`

	assert.Equal(t, []string{"/map-target"}, Links(html))
}

func TestLinks_RawValuesNotValidated(t *testing.T) {
	html := `<a href="javascript:void(0)">x</a><a href="mailto:x@y.com">y</a>`

	assert.Equal(t, []string{"javascript:void(0)", "mailto:x@y.com"}, Links(html))
}
