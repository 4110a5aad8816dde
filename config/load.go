package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.Errorf("unsupported config extension %q", filepath.Ext(path))
	}
}

// Parse decodes a site config without validating it.
func Parse(data []byte, format Format) (*SiteConfig, error) {
	var site SiteConfig

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &site); err != nil {
			return nil, errors.Wrap(err, "error parsing yaml config")
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &site); err != nil {
			return nil, errors.Wrap(err, "error parsing json config")
		}
	default:
		return nil, errors.Errorf("unsupported config format %q", format)
	}

	return &site, nil
}

// Read parses the file at path without validating it.
func Read(path string) (*SiteConfig, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return Parse(data, format)
}

// Load reads and strictly validates the site config at path.
func Load(path string) (*SiteConfig, error) {
	site, err := Read(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error loading %s", path)
	}

	if err := site.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid site config %s", path)
	}

	return site, nil
}

func (c *SiteConfig) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		out, err := yaml.Marshal(c)
		return out, errors.WithStack(err)
	case FormatJSON:
		out, err := json.MarshalIndent(c, "", "  ")
		return out, errors.WithStack(err)
	default:
		return nil, errors.Errorf("unsupported config format %q", format)
	}
}
