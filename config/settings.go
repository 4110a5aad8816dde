package config

// Settings configures the docsite tool itself. It is filled by viper from
// flags, DOCSITE_* environment variables and an optional docsite.yaml.
type Settings struct {
	Site      string `mapstructure:"site"`
	Port      string `mapstructure:"port"`
	Origin    string `mapstructure:"origin"`
	DocsRoot  string `mapstructure:"docs_root"`
	OutDir    string `mapstructure:"out_dir"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// LoadSite returns the configured site, or the built-in one when no path is
// set.
func (s Settings) LoadSite() (*SiteConfig, error) {
	if s.Site == "" {
		return Default(), nil
	}
	return Load(s.Site)
}

// ReadSite is LoadSite without validation.
func (s Settings) ReadSite() (*SiteConfig, error) {
	if s.Site == "" {
		return Default(), nil
	}
	return Read(s.Site)
}
