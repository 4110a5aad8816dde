package javascript

import (
	"encoding/json"
	"html/template"
	"os"
	"path/filepath"

	"github.com/ZacxDev/go-docsite/config"
	"github.com/evanw/esbuild/pkg/api"
	"github.com/gobuffalo/plush"
	"github.com/pkg/errors"
)

const configTemplate = `import { defineConfig } from 'vitepress'

export default defineConfig({
  title: <%= title %>,
  description: <%= description %>,
  themeConfig: {
    nav: <%= nav %>,
    sidebar: <%= sidebar %>,
    socialLinks: <%= socialLinks %>
  }
})
`

// literal encodes v as a JS literal indented to sit under themeConfig.
func literal(v interface{}) (template.HTML, error) {
	out, err := json.MarshalIndent(v, "    ", "  ")
	if err != nil {
		return "", errors.WithStack(err)
	}
	return template.HTML(out), nil
}

// RenderConfig renders the site as a VitePress config.mts module.
func RenderConfig(site *config.SiteConfig) (string, error) {
	ctx := plush.NewContext()

	values := map[string]interface{}{
		"title":       site.Title,
		"description": site.Description,
		"nav":         site.ThemeConfig.Nav,
		"sidebar":     site.ThemeConfig.Sidebar,
		"socialLinks": site.ThemeConfig.SocialLinks,
	}
	for name, v := range values {
		switch v := v.(type) {
		case []config.NavItem:
			if v == nil {
				values[name] = []config.NavItem{}
			}
		case []config.SocialLink:
			if v == nil {
				values[name] = []config.SocialLink{}
			}
		}

		lit, err := literal(values[name])
		if err != nil {
			return "", errors.Wrapf(err, "error encoding %s", name)
		}
		ctx.Set(name, lit)
	}

	tmpl, err := plush.Parse(configTemplate)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return tmpl.Exec(ctx)
}

// Transpile compiles a TypeScript config module to plain ES module JavaScript.
func Transpile(source string) (string, error) {
	result := api.Transform(source, api.TransformOptions{
		Loader:     api.LoaderTS,
		Format:     api.FormatESModule,
		Target:     api.ES2020,
		Sourcefile: "config.mts",
		Charset:    api.CharsetUTF8,
	})

	if len(result.Errors) > 0 {
		msg := result.Errors[0]
		if msg.Location != nil {
			return "", errors.Errorf("esbuild: %s (line %d)", msg.Text, msg.Location.Line)
		}
		return "", errors.Errorf("esbuild: %s", msg.Text)
	}

	return string(result.Code), nil
}

// WriteConfig writes config.mts into dir, plus config.mjs when transpile is
// set, and returns the written paths.
func WriteConfig(site *config.SiteConfig, dir string, transpile bool) ([]string, error) {
	source, err := RenderConfig(site)
	if err != nil {
		return nil, err
	}

	err = os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	tsPath := filepath.Join(dir, "config.mts")
	if err := os.WriteFile(tsPath, []byte(source), 0644); err != nil {
		return nil, errors.WithStack(err)
	}
	written := []string{tsPath}

	if !transpile {
		return written, nil
	}

	js, err := Transpile(source)
	if err != nil {
		return nil, errors.Wrap(err, "error transpiling config")
	}

	jsPath := filepath.Join(dir, "config.mjs")
	if err := os.WriteFile(jsPath, []byte(js), 0644); err != nil {
		return nil, errors.WithStack(err)
	}

	return append(written, jsPath), nil
}
