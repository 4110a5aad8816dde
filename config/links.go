package config

import "strings"

// Links lists every internal link declared in nav and sidebar, first
// occurrence order, without duplicates.
func (c *SiteConfig) Links() []string {
	seen := make(map[string]bool)
	var links []string

	add := func(link string) {
		if !IsInternalLink(link) || seen[link] {
			return
		}
		seen[link] = true
		links = append(links, link)
	}

	var walk func(items []NavItem)
	walk = func(items []NavItem) {
		for _, item := range items {
			add(item.Link)
			walk(item.Items)
		}
	}

	walk(c.ThemeConfig.Nav)

	sidebar := c.ThemeConfig.Sidebar
	for _, group := range sidebar.Global {
		walk(group.Items)
	}
	for _, section := range sidebar.Sections {
		for _, group := range section.Groups {
			walk(group.Items)
		}
	}

	return links
}

func IsInternalLink(link string) bool {
	return strings.HasPrefix(link, "/") && !strings.HasPrefix(link, "//")
}
