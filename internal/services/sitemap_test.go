package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildSitemap(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
	xml := BuildSitemap("https://www.제주맹글이.site/", now)

	assert.True(t, strings.HasPrefix(xml, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, xml, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)

	// Trailing slash on the base must not double up.
	assert.Contains(t, xml, "<loc>https://www.제주맹글이.site/</loc>")
	assert.NotContains(t, xml, "site//")

	assert.Contains(t, xml, "<loc>https://www.제주맹글이.site/quiz</loc>")
	assert.Contains(t, xml, "<loc>https://www.제주맹글이.site/restaurant</loc>")
	assert.Contains(t, xml, "<loc>https://www.제주맹글이.site/result-dashboard</loc>")
	assert.Contains(t, xml, "<loc>https://www.제주맹글이.site/result/A-C-E</loc>")
	assert.Contains(t, xml, "<loc>https://www.제주맹글이.site/result/B-D-F</loc>")

	assert.Contains(t, xml, "<lastmod>2026-08-29</lastmod>")
	assert.Equal(t, 12, strings.Count(xml, "<url>"))
	assert.Equal(t, 12, strings.Count(xml, "</url>"))
}
