package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZacxDev/go-docsite/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestResolveCommand(t *testing.T) {
	out, err := run(t, "resolve", "--site", "", "/docs/pc/VXE_TABLE_PROMPT", "/about")
	require.NoError(t, err)

	assert.Contains(t, out, "/docs/pc/VXE_TABLE_PROMPT -> /docs/pc/ [PC 端开发]\n")
	assert.Contains(t, out, "/about -> (no sidebar)\n")
}

func TestExportCommand(t *testing.T) {
	out, err := run(t, "export", "--site", "", "--format", "yaml")
	require.NoError(t, err)

	site, err := config.Parse([]byte(out), config.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), site)
}

func TestValidateCommand(t *testing.T) {
	_, err := run(t, "validate", "--site", filepath.Join("..", "site.yaml"))
	assert.NoError(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("title: x\ndescription: y\nthemeConfig:\n  nav:\n    - text: broken\n"), 0644))

	_, err = run(t, "validate", "--site", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "themeConfig.nav[0]: needs either a link or items")
}

func TestLintCommand(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.md"), []byte("# Home\n"), 0644))

	out, err := run(t, "lint", "--site", "", "--docs-root", root)
	require.Error(t, err)
	assert.Contains(t, out, "missing: /docs/pc/VXE_TABLE_PROMPT")
	assert.Contains(t, out, "missing: /docs/miniprogram/MINIPROGRAM_VUE2_UI_GUIDE")
	assert.NotContains(t, out, "schema:")
}

func TestBuildCommand(t *testing.T) {
	outDir := t.TempDir()

	_, err := run(t, "build", "--site", "", "--out-dir", outDir, "--origin", "https://docs.example.com", "--transpile")
	require.NoError(t, err)

	for _, name := range []string{"config.json", "config.yaml", "nav.json", "sitemap.xml", ".vitepress/config.mts", ".vitepress/config.mjs"} {
		assert.FileExists(t, filepath.Join(outDir, filepath.FromSlash(name)))
	}
	assert.NoFileExists(t, filepath.Join(outDir, "healthz"))

	sitemap, err := os.ReadFile(filepath.Join(outDir, "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(sitemap), "<loc>https://docs.example.com/docs/pc/VXE_TABLE_PROMPT</loc>")

	site, err := config.Read(filepath.Join(outDir, "config.json"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), site)
}
