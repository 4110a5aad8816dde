package config

// Default returns the built-in site config. site.yaml at the repo root holds
// the same value.
func Default() *SiteConfig {
	return &SiteConfig{
		Title:       "开发规范文档",
		Description: "小程序与 PC 端前端开发规范及 AI 提示词",
		ThemeConfig: ThemeConfig{
			Nav: []NavItem{
				{Text: "首页", Link: "/"},
				{
					Text: "小程序开发",
					Items: []NavItem{
						{Text: "Vue2 UI 设计指南", Link: "/docs/miniprogram/MINIPROGRAM_VUE2_UI_GUIDE"},
					},
				},
				{
					Text: "PC 端开发",
					Items: []NavItem{
						{Text: "VXE Table 提示词", Link: "/docs/pc/VXE_TABLE_PROMPT"},
					},
				},
			},
			Sidebar: SidebarSpec{
				Scoped: true,
				Sections: []SidebarSection{
					{
						Prefix: "/docs/miniprogram/",
						Groups: []SidebarGroup{
							{
								Text: "小程序开发",
								Items: []NavItem{
									{Text: "Vue2 UI 设计指南", Link: "/docs/miniprogram/MINIPROGRAM_VUE2_UI_GUIDE"},
								},
							},
						},
					},
					{
						Prefix: "/docs/pc/",
						Groups: []SidebarGroup{
							{
								Text: "PC 端开发",
								Items: []NavItem{
									{Text: "VXE Table 提示词", Link: "/docs/pc/VXE_TABLE_PROMPT"},
								},
							},
						},
					},
				},
			},
			SocialLinks: []SocialLink{
				{Icon: IconGithub, Link: "https://github.com/ZacxDev/go-docsite"},
			},
		},
	}
}
