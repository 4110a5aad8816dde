package config

import (
	"fmt"
	"path"
	"strings"
)

// UnresolvedPathError means no sidebar section covers a page. Callers are
// expected to render an empty sidebar rather than fail.
type UnresolvedPathError struct {
	Path string
}

func (e *UnresolvedPathError) Error() string {
	return fmt.Sprintf("no sidebar matches %s", e.Path)
}

// Resolve returns the sidebar for pagePath and the prefix it was matched by.
// The longest matching prefix wins, so "/" only applies when nothing more
// specific does. Prefixes match on segment boundaries: "/docs/pc" covers
// "/docs/pc" and "/docs/pc/a" but not "/docs/pcx". A global sidebar matches
// every page with an empty prefix.
func (s SidebarSpec) Resolve(pagePath string) (string, []SidebarGroup, error) {
	if !s.IsScoped() {
		return "", s.Global, nil
	}

	page := NormalizePagePath(pagePath)

	best := -1
	for i, section := range s.Sections {
		if !coversPage(section.Prefix, page) {
			continue
		}
		if best < 0 || len(section.Prefix) > len(s.Sections[best].Prefix) {
			best = i
		}
	}

	if best < 0 {
		return "", nil, &UnresolvedPathError{Path: page}
	}

	return s.Sections[best].Prefix, s.Sections[best].Groups, nil
}

// GroupsFor is Resolve with unresolved pages degraded to an empty sidebar.
func (s SidebarSpec) GroupsFor(pagePath string) []SidebarGroup {
	_, groups, err := s.Resolve(pagePath)
	if err != nil {
		return []SidebarGroup{}
	}
	return groups
}

func coversPage(prefix, page string) bool {
	if !strings.HasPrefix(page, prefix) {
		return false
	}
	return strings.HasSuffix(prefix, "/") || len(page) == len(prefix) || page[len(prefix)] == '/'
}

// NormalizePagePath strips query and fragment, ensures a leading slash and
// cleans "." and ".." segments. A trailing slash is kept.
func NormalizePagePath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}

	cleaned := path.Clean("/" + p)
	if strings.HasSuffix(p, "/") && cleaned != "/" {
		cleaned += "/"
	}
	return cleaned
}
