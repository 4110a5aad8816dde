package config

// config/yaml.go

type SiteConfig struct {
	Title       string      `yaml:"title" json:"title"`
	Description string      `yaml:"description" json:"description"`
	ThemeConfig ThemeConfig `yaml:"themeConfig" json:"themeConfig"`
}

type ThemeConfig struct {
	Nav         []NavItem    `yaml:"nav" json:"nav"`
	Sidebar     SidebarSpec  `yaml:"sidebar" json:"sidebar"`
	SocialLinks []SocialLink `yaml:"socialLinks" json:"socialLinks"`
}

// NavItem is either a leaf (Link set) or a dropdown group (Items set).
type NavItem struct {
	Text        string    `yaml:"text" json:"text"`
	Link        string    `yaml:"link,omitempty" json:"link,omitempty"`
	ActiveMatch string    `yaml:"activeMatch,omitempty" json:"activeMatch,omitempty"`
	Items       []NavItem `yaml:"items,omitempty" json:"items,omitempty"`
}

func (n NavItem) IsLeaf() bool {
	return n.Link != "" && len(n.Items) == 0
}

func (n NavItem) IsGroup() bool {
	return n.Link == "" && len(n.Items) > 0
}

type SidebarGroup struct {
	Text      string    `yaml:"text" json:"text"`
	Collapsed *bool     `yaml:"collapsed,omitempty" json:"collapsed,omitempty"`
	Items     []NavItem `yaml:"items" json:"items"`
}

// SidebarSection scopes a list of groups to pages under Prefix.
type SidebarSection struct {
	Prefix string
	Groups []SidebarGroup
}

// SidebarSpec holds either a global list of groups or prefix-scoped
// sections. Sections keep the order they were declared in. Scoped records
// the map form so that an empty map stays a map.
type SidebarSpec struct {
	Global   []SidebarGroup
	Sections []SidebarSection
	Scoped   bool
}

func (s SidebarSpec) IsScoped() bool {
	return s.Scoped || len(s.Sections) > 0
}

type SocialIcon string

const (
	IconDiscord   SocialIcon = "discord"
	IconFacebook  SocialIcon = "facebook"
	IconGithub    SocialIcon = "github"
	IconInstagram SocialIcon = "instagram"
	IconLinkedin  SocialIcon = "linkedin"
	IconMastodon  SocialIcon = "mastodon"
	IconNpm       SocialIcon = "npm"
	IconSlack     SocialIcon = "slack"
	IconTwitter   SocialIcon = "twitter"
	IconX         SocialIcon = "x"
	IconYoutube   SocialIcon = "youtube"
)

var knownIcons = map[SocialIcon]bool{
	IconDiscord:   true,
	IconFacebook:  true,
	IconGithub:    true,
	IconInstagram: true,
	IconLinkedin:  true,
	IconMastodon:  true,
	IconNpm:       true,
	IconSlack:     true,
	IconTwitter:   true,
	IconX:         true,
	IconYoutube:   true,
}

func (i SocialIcon) Known() bool {
	return knownIcons[i]
}

type SocialLink struct {
	Icon SocialIcon `yaml:"icon" json:"icon"`
	Link string     `yaml:"link" json:"link"`
}
