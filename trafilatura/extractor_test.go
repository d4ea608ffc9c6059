package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/regscout"
	"github.com/fwojciec/regscout/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements regscout.ContentExtractor at compile time.
var _ regscout.ContentExtractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Circular on Health Insurance Products - IRDAI</title>
<meta property="og:title" content="Circular on Health Insurance Products">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Circular on Health Insurance Products</h1>
<p>All insurers are directed to comply with the revised product filing procedure.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts main content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Notification</title></head>
<body>
<nav><a href="/">Home</a><a href="/circulars">Circulars</a></nav>
<article>
<h1>Notification on Remuneration of Directors</h1>
<p>The Authority hereby notifies the revised limits on remuneration payable to non-executive directors of insurers.</p>
<p>Reference number IRDAI/F&amp;A/CIR/2024/118 applies to all registered insurers.</p>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2024</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "revised limits on remuneration")
		assert.Contains(t, result.ContentHTML, "registered insurers")
	})

	t.Run("removes navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Guidelines</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/about">About Us</a></li>
<li><a href="/media-gallery">Media Gallery</a></li>
</ul>
</nav>
<main>
<h1>Guidelines on Insurance Advertisements</h1>
<p>Every advertisement issued by an insurer shall conform to these guidelines on fairness and disclosure.</p>
</main>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "conform to these guidelines")
		assert.NotContains(t, result.ContentHTML, "main-nav")
	})

	t.Run("removes footer boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Exposure Draft</title></head>
<body>
<article>
<h1>Exposure Draft on Surety Insurance</h1>
<p>Comments are invited from stakeholders on the draft regulatory framework for surety insurance contracts.</p>
</article>
<footer>
<p>Copyright 2024 Example Corp</p>
<nav>Privacy | Terms | Contact</nav>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "draft regulatory framework")
		assert.NotContains(t, result.ContentHTML, "Copyright 2024 Example Corp")
	})

	t.Run("handles portal detail page layout", func(t *testing.T) {
		t.Parallel()

		// Layout typical of the regulator's document detail pages.
		html := `<!DOCTYPE html>
<html>
<head>
<title>Document Detail | Regulator Portal</title>
<meta property="og:title" content="Tender for Supply of IT Equipment">
</head>
<body>
<nav class="navbar">
<a href="/">Portal</a>
<a href="/circulars">Circulars</a>
<a href="/tenders">Tenders</a>
</nav>
<div class="sidebar">
<ul>
<li><a href="/tenders/open">Open Tenders</a></li>
<li><a href="/tenders/closed">Closed Tenders</a></li>
</ul>
</div>
<main class="detailContainer">
<article>
<h1>Tender for Supply of IT Equipment</h1>
<p>Sealed bids are invited from eligible vendors for the supply and installation of IT equipment.</p>
<h2>Eligibility</h2>
<p>Bidders must have completed at least three similar contracts in the last five years.</p>
</article>
</main>
<footer class="footer">
<p>Maintained by the portal team</p>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Sealed bids are invited")
		assert.Contains(t, result.ContentHTML, "Eligibility")
	})

	t.Run("preserves tabular reference numbers", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Annual List</title></head>
<body>
<article>
<h1>Circulars Issued During 2024</h1>
<p>The following circulars were issued:</p>
<ul>
<li><code>IRDAI/HLT/CIR/2024/45</code> - Health product filing.</li>
<li><code>IRDAI/F&amp;A/CIR/2024/118</code> - Remuneration of directors.</li>
</ul>
</article>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "IRDAI/HLT/CIR/2024/45")
		assert.Contains(t, result.ContentHTML, "Remuneration of directors")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
		assert.Equal(t, regscout.EINVALID, regscout.ErrorCode(err))
	})

	t.Run("handles minimal valid HTML", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Simple content</p></body></html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Simple content")
	})
}
