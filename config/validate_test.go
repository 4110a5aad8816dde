package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fields(err error) []string {
	var out []string
	for _, se := range SchemaErrors(err) {
		out = append(out, se.Field)
	}
	return out
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestDefaultNavDropdown(t *testing.T) {
	nav := Default().ThemeConfig.Nav

	var group NavItem
	for _, item := range nav {
		if item.Text == "小程序开发" {
			group = item
		}
	}

	assert := assert.New(t)
	assert.True(group.IsGroup())
	assert.False(group.IsLeaf())
	assert.Len(group.Items, 1)
	assert.True(group.Items[0].IsLeaf())
	assert.Equal("Vue2 UI 设计指南", group.Items[0].Text)
	assert.Equal("/docs/miniprogram/MINIPROGRAM_VUE2_UI_GUIDE", group.Items[0].Link)
}

func TestEveryDefaultNavItemIsLeafOrGroup(t *testing.T) {
	var check func(items []NavItem)
	check = func(items []NavItem) {
		for _, item := range items {
			assert.True(t, item.IsLeaf() != item.IsGroup(), item.Text)
			check(item.Items)
		}
	}
	check(Default().ThemeConfig.Nav)
}

func TestValidateNavItemShape(t *testing.T) {
	site := Default()
	site.ThemeConfig.Nav = []NavItem{
		{Text: "both", Link: "/a", Items: []NavItem{{Text: "x", Link: "/x"}}},
		{Text: "neither"},
		{Text: "nested", Items: []NavItem{{Text: "inner", Items: []NavItem{{Text: "y", Link: "/y"}}}}},
		{Text: "", Link: "/ok"},
		{Text: "spaces", Link: "/a b"},
	}

	err := site.Validate()
	assert.Equal(t, []string{
		"themeConfig.nav[0]",
		"themeConfig.nav[1]",
		"themeConfig.nav[2].items[0]",
		"themeConfig.nav[3].text",
		"themeConfig.nav[4].link",
	}, fields(err))
}

func TestValidateRequiredStrings(t *testing.T) {
	site := Default()
	site.Title = " "
	site.Description = ""

	assert.Equal(t, []string{"title", "description"}, fields(site.Validate()))
}

func TestValidateSidebar(t *testing.T) {
	site := Default()
	site.ThemeConfig.Sidebar = SidebarSpec{
		Sections: []SidebarSection{
			{Prefix: "docs/", Groups: []SidebarGroup{{Text: "a", Items: []NavItem{{Text: "a", Link: "/a"}}}}},
			{Prefix: "/docs/", Groups: []SidebarGroup{{Text: "", Items: nil}}},
			{Prefix: "/docs/", Groups: []SidebarGroup{{Text: "c", Items: []NavItem{{Text: "c"}}}}},
		},
	}

	assert.Equal(t, []string{
		`themeConfig.sidebar["docs/"]`,
		`themeConfig.sidebar["/docs/"][0].text`,
		`themeConfig.sidebar["/docs/"][0].items`,
		`themeConfig.sidebar["/docs/"]`,
		`themeConfig.sidebar["/docs/"][0].items[0]`,
	}, fields(site.Validate()))
}

func TestValidateSocialLinks(t *testing.T) {
	site := Default()
	site.ThemeConfig.SocialLinks = []SocialLink{
		{Icon: "myspace", Link: "https://myspace.com"},
		{Icon: IconGithub, Link: "github.com/example"},
	}

	assert.Equal(t, []string{
		"themeConfig.socialLinks[0].icon",
		"themeConfig.socialLinks[1].link",
	}, fields(site.Validate()))
}

func TestEmptySocialLinksIsValid(t *testing.T) {
	site := Default()
	site.ThemeConfig.SocialLinks = nil
	assert.NoError(t, site.Validate())
}

func TestValidPathPrefix(t *testing.T) {
	for _, p := range []string{"/", "/docs/", "/docs/miniprogram/", "/about"} {
		assert.True(t, ValidPathPrefix(p), p)
	}
	for _, p := range []string{"", "docs/", "/docs//pc/", "/docs/../pc/", "/a b/", "/a?b"} {
		assert.False(t, ValidPathPrefix(p), p)
	}
}
