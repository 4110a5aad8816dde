package utils

import (
	"encoding/xml"
	"strings"

	"github.com/pkg/errors"
)

type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	Urls    []Url    `xml:"url"`
}

type Url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// GenerateSitemapContent builds sitemap XML, header included, for the given
// site-relative links. lastMod is written as-is and may be empty.
func GenerateSitemapContent(origin string, links []string, lastMod string) (string, error) {
	if origin == "" {
		return "", errors.New("sitemap origin is required")
	}
	baseURL := strings.TrimSuffix(origin, "/")

	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}

	for _, link := range links {
		sitemap.Urls = append(sitemap.Urls, Url{
			Loc:     baseURL + link,
			LastMod: lastMod,
		})
	}

	xmlOutput, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return "", errors.WithStack(err)
	}

	return xml.Header + string(xmlOutput), nil
}
