package config

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Renderers iterate these sequences, so nil is written as [] rather than null.

func (t ThemeConfig) MarshalJSON() ([]byte, error) {
	type plain ThemeConfig
	out := plain(t)
	if out.Nav == nil {
		out.Nav = []NavItem{}
	}
	if out.SocialLinks == nil {
		out.SocialLinks = []SocialLink{}
	}

	data, err := json.Marshal(out)
	return data, errors.WithStack(err)
}

func (g SidebarGroup) MarshalJSON() ([]byte, error) {
	type plain SidebarGroup
	out := plain(g)
	if out.Items == nil {
		out.Items = []NavItem{}
	}

	data, err := json.Marshal(out)
	return data, errors.WithStack(err)
}
