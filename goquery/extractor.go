// Package goquery implements document extraction from fetched pages using
// CSS selectors. Listing pages on regulator sites publish documents as table
// rows linking to detail sub-pages; the extractor walks both shapes.
package goquery

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/regscout"
)

// Acceptance thresholds for extracted candidates.
const (
	// TableThreshold is the minimum score for table-sourced candidates.
	TableThreshold = 0.1

	// DirectThreshold is the minimum score for direct-link candidates.
	DirectThreshold = 0.15

	// LowTitleConfidence marks a table-derived title as too weak to keep
	// when a detail page offers an alternative.
	LowTitleConfidence = 0.3

	// ExactTitleScore is the floor applied when the query and title contain
	// each other after punctuation normalization.
	ExactTitleScore = 0.95

	// backfillScore and backfillContentLen bound the content backfill: a
	// candidate scoring at least backfillScore with content shorter than
	// backfillContentLen gets a synthesized content block.
	backfillScore      = 0.8
	backfillContentLen = 200
)

var (
	datePattern  = regexp.MustCompile(`^\d{1,2}[-/]\d{1,2}[-/]\d{4}$`)
	punctPattern = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// boilerplateCells are cell texts that can never be document titles.
var boilerplateCells = map[string]bool{
	"view":       true,
	"download":   true,
	"read more":  true,
	"click here": true,
}

// navigationSkips disqualify detail-page title candidates that are site
// chrome rather than document titles.
var navigationSkips = []string{
	"function of department",
	"navigation",
	"breadcrumb",
	"home",
	"back to",
	"click here",
}

// Ensure Extractor implements regscout.DocumentExtractor at compile time.
var _ regscout.DocumentExtractor = (*Extractor)(nil)

// Extractor extracts scored candidate documents from listing pages. For each
// unique document identifier it fetches the detail sub-page to obtain an
// authoritative title and content, preferring whichever source scores higher.
type Extractor struct {
	site    *regscout.Site
	fetcher regscout.Fetcher
	scorer  regscout.IntentScorer
	pattern *regexp.Regexp

	content   regscout.ContentExtractor
	converter regscout.Converter
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithContentExtractor installs a fallback used when selector-based content
// extraction on a detail page comes up short.
func WithContentExtractor(c regscout.ContentExtractor, conv regscout.Converter) Option {
	return func(e *Extractor) {
		e.content = c
		e.converter = conv
	}
}

// NewExtractor creates an Extractor for the given site. It returns EINVALID
// if the site's detail link pattern does not compile or lacks an identifier
// capture group.
func NewExtractor(site *regscout.Site, fetcher regscout.Fetcher, scorer regscout.IntentScorer, opts ...Option) (*Extractor, error) {
	pattern, err := regexp.Compile(site.DetailLinkPattern)
	if err != nil {
		return nil, regscout.Errorf(regscout.EINVALID, "invalid detail link pattern %q: %v", site.DetailLinkPattern, err)
	}
	if pattern.NumSubexp() < 1 {
		return nil, regscout.Errorf(regscout.EINVALID, "detail link pattern %q has no identifier capture group", site.DetailLinkPattern)
	}
	e := &Extractor{
		site:    site,
		fetcher: fetcher,
		scorer:  scorer,
		pattern: pattern,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// ExtractDocuments walks the page's tables and direct links and returns
// candidates sorted descending by score. Identifiers already recorded in the
// seen tracker are skipped, so each document is produced at most once per
// search no matter how many pages link to it.
func (e *Extractor) ExtractDocuments(ctx context.Context, html, pageURL string, intent *regscout.Intent, seen regscout.SeenTracker) ([]*regscout.Document, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, regscout.Errorf(regscout.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, regscout.Errorf(regscout.EINVALID, "failed to parse HTML: %v", err)
	}

	var documents []*regscout.Document

	documents = append(documents, e.extractFromTables(ctx, doc, base, intent, seen)...)
	documents = append(documents, e.extractDirectLinks(ctx, doc, base, intent, seen)...)

	sort.SliceStable(documents, func(i, j int) bool {
		return documents[i].Score > documents[j].Score
	})
	return documents, nil
}

// extractFromTables processes every row past the header of every table,
// collecting title candidates from cells and detail links from anchors.
func (e *Extractor) extractFromTables(ctx context.Context, doc *goquery.Document, base *url.URL, intent *regscout.Intent, seen regscout.SeenTracker) []*regscout.Document {
	var documents []*regscout.Document

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(rowIdx int, row *goquery.Selection) {
			if rowIdx == 0 {
				return
			}
			cells := row.Find("td, th")
			if cells.Length() < 2 {
				return
			}

			bestTitle, bestScore := e.bestCellTitle(cells, intent)

			row.Find("a[href]").Each(func(_ int, anchor *goquery.Selection) {
				link, identifier, ok := e.detailLink(base, anchor)
				if !ok || !seen.MarkIdentifier(identifier) {
					return
				}

				title, score := bestTitle, bestScore
				var content string
				var subLinks []string

				if detail, err := e.extractDetail(ctx, link, identifier, intent); err == nil {
					// The detail page wins when it scores higher, when the
					// table title was weak, or when there was no table title.
					if detail.score > bestScore || bestScore < LowTitleConfidence || bestTitle == "" {
						title, score = detail.title, detail.score
					} else if detail.score > score {
						score = detail.score
					}
					content = detail.content
					subLinks = detail.subLinks
				}

				if score < TableThreshold || title == "" {
					return
				}
				documents = append(documents, &regscout.Document{
					URL:           link,
					Title:         title,
					Content:       content,
					SubLinks:      subLinks,
					SourceSection: base.Path,
					Identifier:    identifier,
					Score:         score,
					FetchedAt:     time.Now(),
				})
			})
		})
	})
	return documents
}

// extractDirectLinks catches detail links that live outside any table.
func (e *Extractor) extractDirectLinks(ctx context.Context, doc *goquery.Document, base *url.URL, intent *regscout.Intent, seen regscout.SeenTracker) []*regscout.Document {
	var documents []*regscout.Document

	doc.Find("a[href]").Each(func(_ int, anchor *goquery.Selection) {
		link, identifier, ok := e.detailLink(base, anchor)
		if !ok || !seen.MarkIdentifier(identifier) {
			return
		}

		detail, err := e.extractDetail(ctx, link, identifier, intent)
		if err != nil || detail.score < DirectThreshold {
			return
		}
		documents = append(documents, &regscout.Document{
			URL:           link,
			Title:         detail.title,
			Content:       detail.content,
			SubLinks:      detail.subLinks,
			SourceSection: base.Path,
			Identifier:    identifier,
			Score:         detail.score,
			FetchedAt:     time.Now(),
		})
	})
	return documents
}

// bestCellTitle returns the highest-scoring plausible title among the row's
// cells. Pure numbers, date-shaped strings, and boilerplate are never titles.
func (e *Extractor) bestCellTitle(cells *goquery.Selection, intent *regscout.Intent) (string, float64) {
	var bestTitle string
	var bestScore float64

	cells.Each(func(_ int, cell *goquery.Selection) {
		text := strings.TrimSpace(cell.Text())
		if len(text) <= 15 || len(text) >= 800 {
			return
		}
		if isDigits(text) || datePattern.MatchString(text) || boilerplateCells[strings.ToLower(text)] {
			return
		}
		if score := e.scorer.ScoreIntent(text, intent); score > bestScore {
			bestTitle, bestScore = text, score
		}
	})
	return bestTitle, bestScore
}

// detailLink resolves an anchor's href and extracts the document identifier
// embedded in it. Returns ok=false for anchors that are not detail links.
func (e *Extractor) detailLink(base *url.URL, anchor *goquery.Selection) (link, identifier string, ok bool) {
	href, exists := anchor.Attr("href")
	if !exists || href == "" {
		return "", "", false
	}
	m := e.pattern.FindStringSubmatch(href)
	if m == nil {
		return "", "", false
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", "", false
	}
	return base.ResolveReference(ref).String(), m[1], true
}

// detailResult holds what a detail sub-page yielded.
type detailResult struct {
	title    string
	content  string
	subLinks []string
	score    float64
}

// extractDetail fetches a document detail page and extracts its title,
// content and downloadable file links, scoring the combined text.
func (e *Extractor) extractDetail(ctx context.Context, detailURL, identifier string, intent *regscout.Intent) (*detailResult, error) {
	html, err := e.fetcher.Fetch(ctx, detailURL)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, regscout.Errorf(regscout.EINVALID, "failed to parse detail page: %v", err)
	}

	base, err := url.Parse(detailURL)
	if err != nil {
		return nil, regscout.Errorf(regscout.EINVALID, "invalid detail URL: %v", err)
	}

	title := e.markerTitle(doc)
	subLinks, fileTitles := e.fileLinks(doc, base)
	content := e.contentText(doc, html)

	// Title fallback chain: structural markers, then a body sentence naming
	// both a document type and an authority, then the longest file link
	// text, then a synthetic placeholder.
	if title == "" {
		title = contentTitle(content)
	}
	if title == "" {
		title = longestFileTitle(fileTitles)
	}
	if title == "" {
		title = fmt.Sprintf("Document %s", identifier)
	}

	score := e.scorer.ScoreIntent(title+" "+content, intent)
	if intent != nil && exactTitleMatch(intent.Query, title) && score < ExactTitleScore {
		score = ExactTitleScore
	}

	if score >= backfillScore && len(content) < backfillContentLen {
		content = backfillContent(title, content, detailURL, identifier, score, subLinks)
	}

	return &detailResult{
		title:    title,
		content:  content,
		subLinks: subLinks,
		score:    score,
	}, nil
}

// markerTitle returns the longest plausible title among the site's title
// marker selectors, skipping navigation chrome.
func (e *Extractor) markerTitle(doc *goquery.Document) string {
	var title string
	doc.Find(e.site.Selectors.TitleMarkers).Each(func(_ int, sel *goquery.Selection) {
		candidate := strings.TrimSpace(sel.Text())
		if len(candidate) <= 30 || len(candidate) >= 1000 {
			return
		}
		lower := strings.ToLower(candidate)
		for _, skip := range navigationSkips {
			if strings.Contains(lower, skip) {
				return
			}
		}
		if len(candidate) > len(title) {
			title = candidate
		}
	})
	return title
}

// fileLinks collects downloadable file URLs on the page, along with link
// texts long enough to serve as title candidates.
func (e *Extractor) fileLinks(doc *goquery.Document, base *url.URL) (links, titles []string) {
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		lower := strings.ToLower(href)
		if !strings.HasSuffix(lower, ".pdf") && !strings.Contains(lower, "pdf") && !strings.Contains(lower, "download=true") {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		links = append(links, base.ResolveReference(ref).String())

		text := strings.TrimSpace(sel.Text())
		if len(text) > 20 && !strings.Contains(strings.ToLower(text), "download") {
			titles = append(titles, text)
		}
	})
	return links, titles
}

// contentText extracts the page's main text via the site's content area
// selectors, falling back to the generic content extractor when configured.
func (e *Extractor) contentText(doc *goquery.Document, html string) string {
	var content, longest string
	doc.Find(e.site.Selectors.ContentArea).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := spacePattern.ReplaceAllString(strings.TrimSpace(sel.Text()), " ")
		if len(text) > len(longest) {
			longest = text
		}
		if len(text) > 100 {
			content = text
			return false
		}
		return true
	})
	if content == "" {
		content = longest
	}

	if len(content) < 100 && e.content != nil {
		if res, err := e.content.Extract(html); err == nil && res != nil {
			extracted := res.ContentHTML
			if e.converter != nil {
				if md, err := e.converter.Convert(res.ContentHTML); err == nil {
					extracted = md
				}
			}
			if len(extracted) > len(content) {
				content = extracted
			}
		}
	}
	return content
}

// contentTitle scans the first sentences of the content for one naming both
// a document type and an authority.
func contentTitle(content string) string {
	sentences := strings.Split(content, ".")
	if len(sentences) > 5 {
		sentences = sentences[:5]
	}
	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) <= 50 {
			continue
		}
		lower := strings.ToLower(sentence)
		if containsAny(lower, []string{"regulation", "rule", "guideline", "circular"}) &&
			containsAny(lower, []string{"insurance", "irdai", "authority"}) {
			return sentence
		}
	}
	return ""
}

// longestFileTitle returns the longest file link text above the minimum
// plausible title length.
func longestFileTitle(titles []string) string {
	var longest string
	for _, t := range titles {
		if len(t) > 30 && len(t) > len(longest) {
			longest = t
		}
	}
	return longest
}

// exactTitleMatch reports whether the query and title contain each other
// after punctuation normalization.
func exactTitleMatch(query, title string) bool {
	q := normalize(query)
	t := normalize(title)
	if q == "" || t == "" {
		return false
	}
	return strings.Contains(t, q) || strings.Contains(q, t)
}

func normalize(s string) string {
	s = punctPattern.ReplaceAllString(strings.ToLower(s), " ")
	return strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
}

// backfillContent synthesizes a content block for high-relevance candidates
// whose detail pages carried little extractable text, so downstream
// consumers always receive non-trivial content for strong hits.
func backfillContent(title, content, detailURL, identifier string, score float64, subLinks []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", title)
	fmt.Fprintf(&b, "High relevance match (score %.3f).\n\n", score)
	fmt.Fprintf(&b, "Document ID: %s\nSource: %s\n\n", identifier, detailURL)
	if content != "" {
		fmt.Fprintf(&b, "%s\n\n", content)
	} else {
		b.WriteString("This is an official regulatory document. Refer to the downloadable files for complete details.\n\n")
	}
	fmt.Fprintf(&b, "Downloads available: %d\n", len(subLinks))
	for i, link := range subLinks {
		if i == 3 {
			break
		}
		fmt.Fprintf(&b, "- %s\n", link)
	}
	return b.String()
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
