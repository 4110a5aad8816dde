package utils

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSitemapContent(t *testing.T) {
	out, err := GenerateSitemapContent("https://docs.example.com/", []string{"/", "/docs/pc/VXE_TABLE_PROMPT"}, "2026-10-18")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, xml.Header))

	var sitemap Sitemap
	require.NoError(t, xml.Unmarshal([]byte(strings.TrimPrefix(out, xml.Header)), &sitemap))

	assert.Equal(t, []Url{
		{Loc: "https://docs.example.com/", LastMod: "2026-10-18"},
		{Loc: "https://docs.example.com/docs/pc/VXE_TABLE_PROMPT", LastMod: "2026-10-18"},
	}, sitemap.Urls)
}

func TestGenerateSitemapContentNeedsOrigin(t *testing.T) {
	_, err := GenerateSitemapContent("", []string{"/"}, "")
	assert.Error(t, err)
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "warn", "json")
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	logger.Warn().Str("path", "/about").Msg("shown")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["message"])
	assert.Equal(t, "/about", line["path"])
}

func TestNewLoggerRejectsBadInput(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, "loud", "json")
	assert.Error(t, err)

	_, err = NewLogger(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}
