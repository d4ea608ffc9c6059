package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/fwojciec/regscout"
	regscouthttp "github.com/fwojciec/regscout/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapService_DiscoverSections_FromRobotsTxt(t *testing.T) {
	t.Parallel()

	robotsTxt := `User-agent: *
Disallow: /private/
Sitemap: {{BASE}}/sitemap.xml
`
	sitemapXML := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/circulars/life-2024</loc></url>
  <url><loc>{{BASE}}/circulars/health-2024</loc></url>
  <url><loc>{{BASE}}/guidelines/advertising</loc></url>
</urlset>`

	srv := newTestServer(t, map[string]string{
		"/robots.txt":  robotsTxt,
		"/sitemap.xml": sitemapXML,
	})
	defer srv.Close()

	svc := regscouthttp.NewSitemapService(srv.Client())
	sections, err := svc.DiscoverSections(context.Background(), srv.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"/circulars", "/guidelines"}, sections)
}

func TestSitemapService_DiscoverSections_FallbackToSitemapXML(t *testing.T) {
	t.Parallel()

	// No robots.txt, should fall back to /sitemap.xml
	sitemapXML := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/notifications/2024</loc></url>
</urlset>`

	srv := newTestServer(t, map[string]string{
		"/sitemap.xml": sitemapXML,
	})
	defer srv.Close()

	svc := regscouthttp.NewSitemapService(srv.Client())
	sections, err := svc.DiscoverSections(context.Background(), srv.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"/notifications"}, sections)
}

func TestSitemapService_DiscoverSections_SitemapIndex(t *testing.T) {
	t.Parallel()

	sitemapIndex := `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>{{BASE}}/sitemap-circulars.xml</loc></sitemap>
  <sitemap><loc>{{BASE}}/sitemap-tenders.xml</loc></sitemap>
</sitemapindex>`

	sitemapCirculars := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/circulars/life-2024</loc></url>
  <url><loc>{{BASE}}/circulars/health-2024</loc></url>
</urlset>`

	sitemapTenders := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/tenders/2024-eoi</loc></url>
</urlset>`

	srv := newTestServer(t, map[string]string{
		"/sitemap.xml":           sitemapIndex,
		"/sitemap-circulars.xml": sitemapCirculars,
		"/sitemap-tenders.xml":   sitemapTenders,
	})
	defer srv.Close()

	svc := regscouthttp.NewSitemapService(srv.Client())
	sections, err := svc.DiscoverSections(context.Background(), srv.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"/circulars", "/tenders"}, sections)
}

func TestSitemapService_DiscoverSections_WithIncludeFilter(t *testing.T) {
	t.Parallel()

	sitemapXML := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/circulars/life-2024</loc></url>
  <url><loc>{{BASE}}/gallery/photos</loc></url>
  <url><loc>{{BASE}}/circulars/health-2024</loc></url>
</urlset>`

	srv := newTestServer(t, map[string]string{
		"/sitemap.xml": sitemapXML,
	})
	defer srv.Close()

	filter := &regscout.URLFilter{
		Include: []*regexp.Regexp{regexp.MustCompile(`/circulars/`)},
	}

	svc := regscouthttp.NewSitemapService(srv.Client())
	sections, err := svc.DiscoverSections(context.Background(), srv.URL, filter)

	require.NoError(t, err)
	assert.Equal(t, []string{"/circulars"}, sections)
}

func TestSitemapService_DiscoverSections_FrequencyThenAlphabetical(t *testing.T) {
	t.Parallel()

	sitemapXML := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/notifications/a</loc></url>
  <url><loc>{{BASE}}/circulars/a</loc></url>
  <url><loc>{{BASE}}/notifications/b</loc></url>
  <url><loc>{{BASE}}/acts/a</loc></url>
  <url><loc>{{BASE}}/circulars/b</loc></url>
  <url><loc>https://elsewhere.example.com/circulars/offsite</loc></url>
</urlset>`

	srv := newTestServer(t, map[string]string{
		"/sitemap.xml": sitemapXML,
	})
	defer srv.Close()

	svc := regscouthttp.NewSitemapService(srv.Client())
	sections, err := svc.DiscoverSections(context.Background(), srv.URL, nil)

	require.NoError(t, err)
	// Two-link sections sort by name, the off-host URL is ignored.
	assert.Equal(t, []string{"/circulars", "/notifications", "/acts"}, sections)
}

func TestSitemapService_DiscoverSections_ContextCancellation(t *testing.T) {
	t.Parallel()

	sitemapXML := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/circulars/a</loc></url>
</urlset>`

	srv := newTestServer(t, map[string]string{
		"/sitemap.xml": sitemapXML,
	})
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	svc := regscouthttp.NewSitemapService(srv.Client())
	_, err := svc.DiscoverSections(ctx, srv.URL, nil)

	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSitemapService_DiscoverSections_MultipleSitemapsInRobots(t *testing.T) {
	t.Parallel()

	robotsTxt := `User-agent: *
Sitemap: {{BASE}}/sitemap1.xml
Sitemap: {{BASE}}/sitemap2.xml
`
	sitemap1 := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/circulars/a</loc></url>
</urlset>`

	sitemap2 := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/tenders/b</loc></url>
</urlset>`

	srv := newTestServer(t, map[string]string{
		"/robots.txt":   robotsTxt,
		"/sitemap1.xml": sitemap1,
		"/sitemap2.xml": sitemap2,
	})
	defer srv.Close()

	svc := regscouthttp.NewSitemapService(srv.Client())
	sections, err := svc.DiscoverSections(context.Background(), srv.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"/circulars", "/tenders"}, sections)
}

func TestSitemapService_DiscoverSections_NoSitemapFound(t *testing.T) {
	t.Parallel()

	// No robots.txt, no sitemap.xml
	srv := newTestServer(t, map[string]string{})
	defer srv.Close()

	svc := regscouthttp.NewSitemapService(srv.Client())
	sections, err := svc.DiscoverSections(context.Background(), srv.URL, nil)

	require.NoError(t, err)
	assert.NotNil(t, sections)
	assert.Empty(t, sections)
}

// newTestServer creates a test HTTP server with the given path->content mapping.
// Content strings may contain {{BASE}} which is replaced with the server URL.
func newTestServer(t *testing.T, content map[string]string) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := content[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		// Replace {{BASE}} with actual server URL
		body = replaceBaseURL(body, srv.URL)

		// Set content type based on path
		if r.URL.Path == "/robots.txt" {
			w.Header().Set("Content-Type", "text/plain")
		} else {
			w.Header().Set("Content-Type", "application/xml")
		}
		_, _ = w.Write([]byte(body))
	}))

	return srv
}

func replaceBaseURL(content, baseURL string) string {
	return regexp.MustCompile(`\{\{BASE\}\}`).ReplaceAllString(content, baseURL)
}
