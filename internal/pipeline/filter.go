package pipeline

import "regexp"

// StringSet is a membership set for scheme/host/extension filters.
// Matching is exact and case-sensitive.
type StringSet map[string]struct{}

func NewStringSet(items []string) StringSet {
	if len(items) == 0 {
		return nil
	}
	s := make(StringSet, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

func (s StringSet) Contains(v string) bool {
	_, ok := s[v]
	return ok
}

// FilterSpec holds every configured filter stage. A nil set or pattern
// means the stage was not requested and passes everything through.
// Built once from the parsed options, immutable afterwards.
type FilterSpec struct {
	SchemeInclude StringSet
	SchemeExclude StringSet
	HostInclude   StringSet
	HostExclude   StringSet
	ExtInclude    StringSet
	ExtExclude    StringSet
	PathInclude   *regexp.Regexp
	PathExclude   *regexp.Regexp
	URLInclude    *regexp.Regexp
	URLExclude    *regexp.Regexp
}

type stage struct {
	name string
	keep func(CanonicalURL) bool
}

// stages builds the enabled predicate list in fixed application order:
// scheme, host, extension, path pattern, whole-URL pattern, include
// before exclude for each field.
//
// A URL with no scheme or host never matches a membership test, so it
// fails include stages and survives exclude stages. That asymmetry is
// deliberate.
func (f *FilterSpec) stages() []stage {
	var st []stage
	if f.SchemeInclude != nil {
		st = append(st, stage{"scheme-include", func(u CanonicalURL) bool {
			s, ok := u.Scheme()
			return ok && f.SchemeInclude.Contains(s)
		}})
	}
	if f.SchemeExclude != nil {
		st = append(st, stage{"scheme-exclude", func(u CanonicalURL) bool {
			s, ok := u.Scheme()
			return !ok || !f.SchemeExclude.Contains(s)
		}})
	}
	if f.HostInclude != nil {
		st = append(st, stage{"host-include", func(u CanonicalURL) bool {
			h, ok := u.Host()
			return ok && f.HostInclude.Contains(h)
		}})
	}
	if f.HostExclude != nil {
		st = append(st, stage{"host-exclude", func(u CanonicalURL) bool {
			h, ok := u.Host()
			return !ok || !f.HostExclude.Contains(h)
		}})
	}
	if f.ExtInclude != nil {
		st = append(st, stage{"ext-include", func(u CanonicalURL) bool {
			return f.ExtInclude.Contains(u.Extension())
		}})
	}
	if f.ExtExclude != nil {
		st = append(st, stage{"ext-exclude", func(u CanonicalURL) bool {
			return !f.ExtExclude.Contains(u.Extension())
		}})
	}
	if f.PathInclude != nil {
		st = append(st, stage{"path-include", func(u CanonicalURL) bool {
			return f.PathInclude.MatchString(u.Path())
		}})
	}
	if f.PathExclude != nil {
		st = append(st, stage{"path-exclude", func(u CanonicalURL) bool {
			return !f.PathExclude.MatchString(u.Path())
		}})
	}
	if f.URLInclude != nil {
		st = append(st, stage{"url-include", func(u CanonicalURL) bool {
			return f.URLInclude.MatchString(u.String())
		}})
	}
	if f.URLExclude != nil {
		st = append(st, stage{"url-exclude", func(u CanonicalURL) bool {
			return !f.URLExclude.MatchString(u.String())
		}})
	}
	return st
}

// Apply runs every enabled stage over the sequence and returns the URLs
// that pass all of them. debugf, when non-nil, is told which stage
// dropped which URL.
func (f *FilterSpec) Apply(urls []CanonicalURL, debugf func(format string, args ...interface{})) []CanonicalURL {
	st := f.stages()
	if len(st) == 0 {
		return urls
	}

	out := make([]CanonicalURL, 0, len(urls))
next:
	for _, u := range urls {
		for _, s := range st {
			if !s.keep(u) {
				if debugf != nil {
					debugf("%s dropped %s", s.name, u.String())
				}
				continue next
			}
		}
		out = append(out, u)
	}
	return out
}
