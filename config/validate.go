package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// SchemaError reports a single malformed field. Field is a path such as
// themeConfig.nav[2].items[0].link.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// SchemaErrors unpacks the errors returned by Validate.
func SchemaErrors(err error) []*SchemaError {
	var out []*SchemaError
	for _, e := range multierr.Errors(err) {
		var se *SchemaError
		if errors.As(e, &se) {
			out = append(out, se)
		}
	}
	return out
}

type validator struct {
	err error
}

func (v *validator) fail(field, format string, args ...interface{}) {
	v.err = multierr.Append(v.err, &SchemaError{Field: field, Reason: fmt.Sprintf(format, args...)})
}

// Validate checks the whole config and returns every violation found.
func (c *SiteConfig) Validate() error {
	v := &validator{}

	if strings.TrimSpace(c.Title) == "" {
		v.fail("title", "must not be empty")
	}
	if strings.TrimSpace(c.Description) == "" {
		v.fail("description", "must not be empty")
	}

	for i, item := range c.ThemeConfig.Nav {
		v.navItem(fmt.Sprintf("themeConfig.nav[%d]", i), item, true)
	}

	v.sidebar("themeConfig.sidebar", c.ThemeConfig.Sidebar)

	for i, social := range c.ThemeConfig.SocialLinks {
		field := fmt.Sprintf("themeConfig.socialLinks[%d]", i)
		if !social.Icon.Known() {
			v.fail(field+".icon", "unknown icon %q", social.Icon)
		}
		if !isAbsoluteURL(social.Link) {
			v.fail(field+".link", "must be an absolute http(s) url, got %q", social.Link)
		}
	}

	return v.err
}

func (v *validator) navItem(field string, item NavItem, allowGroup bool) {
	if strings.TrimSpace(item.Text) == "" {
		v.fail(field+".text", "must not be empty")
	}

	hasLink := item.Link != ""
	hasItems := len(item.Items) > 0

	switch {
	case hasLink && hasItems:
		v.fail(field, "has both link and items")
		return
	case !hasLink && !hasItems:
		v.fail(field, "needs either a link or items")
		return
	case hasItems && !allowGroup:
		v.fail(field, "nested groups are not supported")
		return
	}

	if hasLink {
		v.link(field+".link", item.Link)
		return
	}

	for i, child := range item.Items {
		v.navItem(fmt.Sprintf("%s.items[%d]", field, i), child, false)
	}
}

func (v *validator) link(field, link string) {
	if strings.TrimSpace(link) == "" {
		v.fail(field, "must not be empty")
		return
	}
	if strings.ContainsAny(link, " \t\n") {
		v.fail(field, "must not contain whitespace")
	}
}

func (v *validator) sidebar(field string, spec SidebarSpec) {
	if !spec.IsScoped() {
		v.groups(field, spec.Global)
		return
	}

	seen := make(map[string]bool, len(spec.Sections))
	for _, section := range spec.Sections {
		key := fmt.Sprintf("%s[%q]", field, section.Prefix)
		if !ValidPathPrefix(section.Prefix) {
			v.fail(key, "invalid path prefix")
		}
		if seen[section.Prefix] {
			v.fail(key, "duplicate path prefix")
		}
		seen[section.Prefix] = true
		v.groups(key, section.Groups)
	}
}

func (v *validator) groups(field string, groups []SidebarGroup) {
	for i, group := range groups {
		gf := fmt.Sprintf("%s[%d]", field, i)
		if strings.TrimSpace(group.Text) == "" {
			v.fail(gf+".text", "must not be empty")
		}
		if len(group.Items) == 0 {
			v.fail(gf+".items", "must not be empty")
		}
		for j, item := range group.Items {
			v.navItem(fmt.Sprintf("%s.items[%d]", gf, j), item, false)
		}
	}
}

// ValidPathPrefix reports whether p is an absolute, clean URL path such as
// "/" or "/docs/pc/".
func ValidPathPrefix(p string) bool {
	if !strings.HasPrefix(p, "/") {
		return false
	}
	if strings.ContainsAny(p, " \t\n?#\\") {
		return false
	}
	if p == "/" {
		return true
	}

	segments := strings.Split(strings.TrimSuffix(p[1:], "/"), "/")
	for _, segment := range segments {
		if segment == "" || segment == "." || segment == ".." {
			return false
		}
	}
	return true
}

func isAbsoluteURL(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
