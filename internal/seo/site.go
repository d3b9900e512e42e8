// internal/seo/site.go
package seo

import (
	"strings"

	"loan-catalog/internal/common/config"
)

// Site builds absolute URLs, page metadata and structured data for one
// configured site.
type Site struct {
	cfg  config.SiteConfig
	base string
}

func NewSite(cfg config.SiteConfig) *Site {
	if cfg.Organization.URL == "" {
		cfg.Organization.URL = cfg.URL
	}
	return &Site{cfg: cfg, base: strings.TrimSuffix(cfg.URL, "/")}
}

func (s *Site) Name() string        { return s.cfg.Name }
func (s *Site) Description() string { return s.cfg.Description }
func (s *Site) URL() string         { return s.cfg.URL }
func (s *Site) Locale() string      { return s.cfg.Locale }

// AbsoluteURL joins path onto the site URL. A missing leading slash is
// added, so "" resolves to the site root.
func (s *Site) AbsoluteURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return s.base + path
}

// FullTitle applies the "%s — {site}" template. An empty title yields the
// bare site name.
func (s *Site) FullTitle(title string) string {
	if title == "" {
		return s.cfg.Name
	}
	return title + " — " + s.cfg.Name
}

// PageInput describes a page for BuildPageMetadata. Images may be relative
// or absolute URLs and are passed through as given.
type PageInput struct {
	Title       string
	Description string
	Path        string
	Images      []string
}

type PageMetadata struct {
	Title       string      `json:"title"`
	FullTitle   string      `json:"fullTitle"`
	Description string      `json:"description"`
	Canonical   string      `json:"canonical"`
	OpenGraph   OpenGraph   `json:"openGraph"`
	Twitter     TwitterCard `json:"twitter"`
}

type OpenGraph struct {
	Type        string    `json:"type"`
	SiteName    string    `json:"siteName"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Locale      string    `json:"locale"`
	Images      []OGImage `json:"images,omitempty"`
}

type OGImage struct {
	URL string `json:"url"`
}

type TwitterCard struct {
	Card        string   `json:"card"`
	Site        string   `json:"site"`
	Creator     string   `json:"creator"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images,omitempty"`
}

// BuildPageMetadata fills canonical, OpenGraph and Twitter fields for a
// page. The site description stands in for a missing page description.
func (s *Site) BuildPageMetadata(in PageInput) PageMetadata {
	url := s.AbsoluteURL(in.Path)
	description := in.Description
	if description == "" {
		description = s.cfg.Description
	}

	var ogImages []OGImage
	var twImages []string
	for _, src := range in.Images {
		ogImages = append(ogImages, OGImage{URL: src})
		twImages = append(twImages, src)
	}

	return PageMetadata{
		Title:       in.Title,
		FullTitle:   s.FullTitle(in.Title),
		Description: description,
		Canonical:   url,
		OpenGraph: OpenGraph{
			Type:        "website",
			SiteName:    s.cfg.Name,
			Title:       in.Title,
			Description: description,
			URL:         url,
			Locale:      s.cfg.Locale,
			Images:      ogImages,
		},
		Twitter: TwitterCard{
			Card:        s.cfg.Twitter.Card,
			Site:        s.cfg.Twitter.Site,
			Creator:     s.cfg.Twitter.Creator,
			Title:       in.Title,
			Description: description,
			Images:      twImages,
		},
	}
}
