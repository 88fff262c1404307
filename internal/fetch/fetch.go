// Package fetch resolves a document source (URL, file or stdin) into
// its text.
package fetch

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "linksift/1.0"

	// maxBodySize caps HTTP response bodies.
	maxBodySize = 10 << 20
)

// ErrNoText is returned when the selected source yields no usable text.
var ErrNoText = errors.New("There is no text!")

type sourceKind int

const (
	kindURL sourceKind = iota
	kindFile
	kindStdin
)

// Source names exactly one place to read the document from.
type Source struct {
	kind  sourceKind
	value string
}

func URLSource(u string) Source { return Source{kind: kindURL, value: u} }

func FileSource(path string) Source { return Source{kind: kindFile, value: path} }

func StdinSource() Source { return Source{kind: kindStdin} }

// Describe names the source for diagnostics.
func (s Source) Describe() string {
	switch s.kind {
	case kindURL:
		return s.value
	case kindFile:
		return "file " + s.value
	default:
		return "standard input"
	}
}

// Client fetches document text. The zero value uses the defaults; Stdin
// may be overridden for tests.
type Client struct {
	UserAgent string
	Timeout   time.Duration
	// Progress draws a byte progress bar on stderr while an HTTP body
	// is being read.
	Progress bool
	Stdin    io.Reader
}

// Fetch reads the whole document from src. An empty or whitespace-only
// document is ErrNoText.
func (c *Client) Fetch(src Source) (string, error) {
	var (
		body []byte
		err  error
	)
	switch src.kind {
	case kindURL:
		body, err = c.fetchURL(src.value)
	case kindFile:
		body, err = os.ReadFile(src.value)
	default:
		in := c.Stdin
		if in == nil {
			in = os.Stdin
		}
		body, err = io.ReadAll(in)
	}
	if err != nil {
		return "", err
	}

	text := string(body)
	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}
	return text, nil
}

func (c *Client) fetchURL(rawURL string) ([]byte, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ua := c.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}

	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", ua)

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch %s: %s", rawURL, resp.Status)
	}

	var reader io.Reader = io.LimitReader(resp.Body, maxBodySize)
	if c.Progress {
		bar := progressbar.DefaultBytes(resp.ContentLength, "fetching")
		reader = io.TeeReader(reader, bar)
	}
	return io.ReadAll(reader)
}
