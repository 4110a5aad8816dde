package docs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZacxDev/go-docsite/config"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// LinkReport describes the source page behind one internal link.
type LinkReport struct {
	Link   string
	File   string
	Exists bool
	Title  string
}

// CheckLinks maps every internal link of site onto a Markdown file under root
// and reads the page title from it.
func CheckLinks(site *config.SiteConfig, root string) ([]LinkReport, error) {
	var reports []LinkReport

	for _, link := range site.Links() {
		report := LinkReport{Link: link, File: SourceFile(root, link)}

		content, err := os.ReadFile(report.File)
		switch {
		case os.IsNotExist(err):
			reports = append(reports, report)
			continue
		case err != nil:
			return nil, errors.Wrapf(err, "error reading %s", report.File)
		}

		report.Exists = true
		report.Title, err = PageTitle(content)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading title of %s", report.File)
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// Missing filters reports down to links without a source page.
func Missing(reports []LinkReport) []LinkReport {
	var out []LinkReport
	for _, r := range reports {
		if !r.Exists {
			out = append(out, r)
		}
	}
	return out
}

// SourceFile is the Markdown file a link is served from: "/" and links
// ending in a slash map to index.md, anything else gets a .md suffix.
func SourceFile(root, link string) string {
	link = strings.TrimSuffix(link, ".html")
	link = strings.TrimSuffix(link, ".md")

	rel := filepath.FromSlash(strings.TrimPrefix(link, "/"))
	if link == "/" || strings.HasSuffix(link, "/") {
		return filepath.Join(root, rel, "index.md")
	}
	return filepath.Join(root, rel+".md")
}

// PageTitle returns the frontmatter title, falling back to the first
// level-one heading. Empty when neither is present.
func PageTitle(content []byte) (string, error) {
	body := content

	normalized := bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	if bytes.HasPrefix(normalized, []byte("---\n")) {
		parts := strings.SplitN(string(normalized[4:]), "\n---\n", 2)
		if len(parts) == 2 {
			var metadata map[string]interface{}
			if err := yaml.Unmarshal([]byte(parts[0]), &metadata); err != nil {
				return "", errors.Wrap(err, "error parsing frontmatter")
			}
			if title, ok := metadata["title"].(string); ok && title != "" {
				return title, nil
			}
			body = []byte(parts[1])
		}
	}

	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	doc := markdown.Parse(body, p)

	var title string
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		heading, ok := node.(*ast.Heading)
		if !ok || !entering || heading.Level != 1 {
			return ast.GoToNext
		}
		title = headingText(heading)
		return ast.Terminate
	})

	return title, nil
}

func headingText(heading *ast.Heading) string {
	var buf bytes.Buffer
	ast.WalkFunc(heading, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		if leaf := node.AsLeaf(); leaf != nil {
			buf.Write(leaf.Literal)
		}
		return ast.GoToNext
	})
	return strings.TrimSpace(buf.String())
}
