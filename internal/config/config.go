// Package config resolves CLI flags into one immutable Options value.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/linksift/linksift/internal/fetch"
	"github.com/linksift/linksift/internal/pipeline"
)

// Options is everything a run needs, built once before any fetching or
// filtering starts. Nothing mutates it afterwards.
type Options struct {
	Source fetch.Source
	Base   *url.URL

	Verbose bool
	Debug   bool
	Resolve bool
	Unique  bool
	Sort    pipeline.SortMode

	UserAgent string
	Timeout   time.Duration

	Spec *pipeline.FilterSpec
}

// Parse validates the flag set and compiles the filter patterns.
// A pattern that fails to compile aborts here, before anything is
// fetched or filtered.
func Parse(c *cli.Context) (*Options, error) {
	urlArg := c.String("url")
	fileArg := c.String("file")
	if urlArg != "" && fileArg != "" {
		return nil, errors.New("--url and --file are mutually exclusive, pick one source")
	}

	var src fetch.Source
	switch {
	case urlArg != "":
		src = fetch.URLSource(urlArg)
	case fileArg != "":
		src = fetch.FileSource(fileArg)
	default:
		src = fetch.StdinSource()
	}

	// The fetched URL doubles as the resolution base unless overridden.
	baseArg := c.String("base")
	if baseArg == "" {
		baseArg = urlArg
	}
	var base *url.URL
	if baseArg != "" {
		var err error
		base, err = url.Parse(baseArg)
		if err != nil {
			return nil, fmt.Errorf("invalid base URL %q: %w", baseArg, err)
		}
	}

	spec := &pipeline.FilterSpec{
		SchemeInclude: splitSet(c.String("scheme")),
		SchemeExclude: splitSet(c.String("scheme-exclude")),
		HostInclude:   splitSet(c.String("host")),
		HostExclude:   splitSet(c.String("host-exclude")),
		ExtInclude:    splitSet(c.String("ext")),
		ExtExclude:    splitSet(c.String("ext-exclude")),
	}

	var err error
	if spec.PathInclude, err = compilePattern("path", c.String("path")); err != nil {
		return nil, err
	}
	if spec.PathExclude, err = compilePattern("path-exclude", c.String("path-exclude")); err != nil {
		return nil, err
	}
	if spec.URLInclude, err = compilePattern("match", c.String("match")); err != nil {
		return nil, err
	}
	if spec.URLExclude, err = compilePattern("match-exclude", c.String("match-exclude")); err != nil {
		return nil, err
	}

	// Ascending wins when both sort flags are given.
	sortMode := pipeline.SortNone
	switch {
	case c.Bool("sort"):
		sortMode = pipeline.SortAsc
	case c.Bool("sort-desc"):
		sortMode = pipeline.SortDesc
	}

	return &Options{
		Source:    src,
		Base:      base,
		Verbose:   c.Bool("verbose"),
		Debug:     c.Bool("debug"),
		Resolve:   c.Bool("absolute"),
		Unique:    c.Bool("unique"),
		Sort:      sortMode,
		UserAgent: c.String("user-agent"),
		Timeout:   time.Duration(c.Int("timeout")) * time.Second,
		Spec:      spec,
	}, nil
}

// splitSet turns a comma-separated flag value into a membership set.
// An unset flag yields nil, which disables the stage.
func splitSet(value string) pipeline.StringSet {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return pipeline.NewStringSet(items)
}

func compilePattern(flag, pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q for --%s: %w", pattern, flag, err)
	}
	return re, nil
}
