// Package trafilatura extracts main content from fetched HTML pages
// using the go-trafilatura library. It backs the detail-page content
// fallback when simple paragraph scanning comes up short.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/regscout"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements regscout.ContentExtractor at compile time.
var _ regscout.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title and main content,
// with navigation and footer boilerplate stripped.
func (e *Extractor) Extract(rawHTML string) (*regscout.ExtractResult, error) {
	if rawHTML == "" {
		return nil, regscout.Errorf(regscout.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &regscout.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
