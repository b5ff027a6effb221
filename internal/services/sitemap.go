package services

import (
	"fmt"
	"strings"
	"time"

	"jejuquiz/pkg/utils"
)

// BuildSitemap renders the sitemap XML for the static pages and the eight
// result pages. The document is assembled as text so the emitted layout
// stays byte-for-byte what the crawlers already index.
func BuildSitemap(baseURL string, now time.Time) string {
	baseURL = strings.TrimSuffix(baseURL, "/")
	today := now.Format("2006-01-02")

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")

	writeURL := func(path, changefreq, priority string) {
		fmt.Fprintf(&b, "  <url>\n    <loc>%s%s</loc>\n    <lastmod>%s</lastmod>\n    <changefreq>%s</changefreq>\n    <priority>%s</priority>\n  </url>\n",
			baseURL, path, today, changefreq, priority)
	}

	writeURL("/", "daily", "1.0")
	writeURL("/quiz", "weekly", "0.9")
	writeURL("/restaurant", "weekly", "0.8")
	writeURL("/result-dashboard", "daily", "0.7")
	for _, code := range utils.ResultCodes {
		writeURL("/result/"+code, "weekly", "0.8")
	}

	b.WriteString("</urlset>\n")
	return b.String()
}
