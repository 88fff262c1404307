// Package pipeline turns raw extracted links into the final list of
// serialized URLs: normalize, filter, dedup, sort, in that order.
package pipeline

import (
	"net/url"
	"sort"
)

// SortMode selects the final ordering of the result sequence.
type SortMode int

const (
	// SortNone keeps the order the filter chain produced.
	SortNone SortMode = iota
	// SortAsc sorts serializations ascending, byte-wise.
	SortAsc
	// SortDesc sorts descending. When both sort flags are supplied,
	// ascending takes precedence and SortDesc is never selected.
	SortDesc
)

// Pipeline is a single-run configuration. It holds no state between
// runs; Run reads the input sequence once and returns a new slice.
type Pipeline struct {
	Spec    *FilterSpec
	Base    *url.URL
	Resolve bool
	Unique  bool
	Sort    SortMode

	// Debugf, when set, receives one line per dropped link.
	Debugf func(format string, args ...interface{})
}

// Run executes the pipeline over raw links in document order.
// Unparseable links are dropped here and never abort the run.
func (p *Pipeline) Run(raw []string) []string {
	urls := make([]CanonicalURL, 0, len(raw))
	for _, r := range raw {
		u, ok := Normalize(r, p.Base, p.Resolve)
		if !ok {
			p.debugf("unparseable link dropped: %q", r)
			continue
		}
		urls = append(urls, u)
	}

	spec := p.Spec
	if spec == nil {
		spec = &FilterSpec{}
	}
	urls = spec.Apply(urls, p.Debugf)

	out := make([]string, 0, len(urls))
	for _, u := range urls {
		out = append(out, u.String())
	}

	if p.Unique {
		out = uniqueStrings(out)
	}

	switch p.Sort {
	case SortAsc:
		sort.Strings(out)
	case SortDesc:
		sort.Sort(sort.Reverse(sort.StringSlice(out)))
	}
	return out
}

func (p *Pipeline) debugf(format string, args ...interface{}) {
	if p.Debugf != nil {
		p.Debugf(format, args...)
	}
}

// uniqueStrings keeps the first occurrence of each value, so the result
// is deterministic for a given input order.
func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
