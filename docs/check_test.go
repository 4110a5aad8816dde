package docs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZacxDev/go-docsite/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), os.ModePerm))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestSourceFile(t *testing.T) {
	root := filepath.Join("site", "src")

	assert.Equal(t, filepath.Join(root, "index.md"), SourceFile(root, "/"))
	assert.Equal(t, filepath.Join(root, "docs", "pc", "index.md"), SourceFile(root, "/docs/pc/"))
	assert.Equal(t, filepath.Join(root, "docs", "pc", "VXE_TABLE_PROMPT.md"), SourceFile(root, "/docs/pc/VXE_TABLE_PROMPT"))
	assert.Equal(t, filepath.Join(root, "about.md"), SourceFile(root, "/about.html"))
}

func TestPageTitle(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{"frontmatter", "---\ntitle: From Front\n---\n# Heading\n", "From Front"},
		{"frontmatter without title", "---\nlayout: doc\n---\n\n# VXE Table 提示词\n", "VXE Table 提示词"},
		{"heading with code", "Intro\n\n## Sub\n\n# Use `vxe-table` well\n", "Use vxe-table well"},
		{"no heading", "just text\n", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			title, err := PageTitle([]byte(c.content))
			require.NoError(t, err)
			assert.Equal(t, c.want, title)
		})
	}
}

func TestPageTitleBadFrontmatter(t *testing.T) {
	_, err := PageTitle([]byte("---\ntitle: [unclosed\n---\n# x\n"))
	assert.Error(t, err)
}

func TestCheckLinks(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "index.md"), "# Home\n")
	writeFile(t, filepath.Join(root, "docs", "pc", "VXE_TABLE_PROMPT.md"), "---\ntitle: VXE\n---\nbody\n")

	reports, err := CheckLinks(config.Default(), root)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	assert := assert.New(t)
	assert.Equal("/", reports[0].Link)
	assert.True(reports[0].Exists)
	assert.Equal("Home", reports[0].Title)

	assert.Equal("/docs/miniprogram/MINIPROGRAM_VUE2_UI_GUIDE", reports[1].Link)
	assert.False(reports[1].Exists)

	assert.Equal("VXE", reports[2].Title)

	missing := Missing(reports)
	require.Len(t, missing, 1)
	assert.Equal(reports[1], missing[0])
}
