// internal/seo/sitemap.go
package seo

import (
	"encoding/xml"
	"strconv"
	"strings"
	"time"

	"loan-catalog/pkg/registry"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type URLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

type SitemapURL struct {
	Loc             string `xml:"loc"`
	LastModified    string `xml:"lastmod"`
	ChangeFrequency string `xml:"changefreq"`
	Priority        string `xml:"priority"`
}

// Sitemap lists every registry route marked for the sitemap, stamped with
// now.
func (s *Site) Sitemap(routes []registry.Route, now time.Time) URLSet {
	set := URLSet{Xmlns: sitemapNamespace}
	lastMod := now.UTC().Format(time.RFC3339)
	for _, r := range routes {
		if r.Sitemap == nil {
			continue
		}
		set.URLs = append(set.URLs, SitemapURL{
			Loc:             s.AbsoluteURL(r.Sitemap.Loc),
			LastModified:    lastMod,
			ChangeFrequency: r.Sitemap.ChangeFrequency,
			Priority:        strconv.FormatFloat(r.Sitemap.Priority, 'f', 1, 64),
		})
	}
	return set
}

// RenderSitemap encodes set as an XML document with its declaration.
func RenderSitemap(set URLSet) ([]byte, error) {
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}

// Robots renders robots.txt allowing everything except disallow and
// pointing crawlers at the sitemap.
func (s *Site) Robots(disallow []string) string {
	var b strings.Builder
	b.WriteString("User-Agent: *\n")
	b.WriteString("Allow: /\n")
	for _, p := range disallow {
		b.WriteString("Disallow: " + p + "\n")
	}
	b.WriteString("\nSitemap: " + s.AbsoluteURL("/sitemap.xml") + "\n")
	return b.String()
}
