package registry

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault_IsValid(t *testing.T) {
	reg, err := Load("")
	require.NoError(t, err)

	assert.NotEmpty(t, reg.Routes)
	route, ok := reg.Find("offer-click")
	require.True(t, ok)
	assert.Equal(t, "/go/{offerId}", route.Path)
}

func TestSitemapRoutes(t *testing.T) {
	reg, err := LoadDefault()
	require.NoError(t, err)

	routes := reg.SitemapRoutes()

	require.Len(t, routes, 2)
	assert.Equal(t, "", routes[0].Sitemap.Loc)
	assert.Equal(t, "daily", routes[0].Sitemap.ChangeFrequency)
	assert.Equal(t, 1.0, routes[0].Sitemap.Priority)
	assert.Equal(t, "/loans", routes[1].Sitemap.Loc)
	assert.Equal(t, "weekly", routes[1].Sitemap.ChangeFrequency)
	assert.Equal(t, 0.8, routes[1].Sitemap.Priority)
}

func TestDisallowedPaths(t *testing.T) {
	reg, err := LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, []string{"/go/"}, reg.DisallowedPaths())
}

func TestValidate(t *testing.T) {
	base := func() *RouteRegistry {
		return &RouteRegistry{
			Version: "1.0.0",
			Routes: []Route{
				{ID: "home-page", Method: "GET", Path: "/", Handler: "home-page", Category: "page"},
				{ID: "list-offers", Method: "GET", Path: "/loans", Handler: "list-offers", Category: "page"},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(r *RouteRegistry)
		wantErr string
	}{
		{"valid", func(r *RouteRegistry) {}, ""},
		{"duplicate id", func(r *RouteRegistry) { r.Routes[1].ID = "home-page" }, "duplicate route ID"},
		{"duplicate endpoint", func(r *RouteRegistry) { r.Routes[1].Path = "/" }, "duplicate route: GET /"},
		{"bad method", func(r *RouteRegistry) { r.Routes[0].Method = "PATCH" }, "validation failed"},
		{"relative path", func(r *RouteRegistry) { r.Routes[0].Path = "loans" }, "validation failed"},
		{"bad priority", func(r *RouteRegistry) {
			r.Routes[0].Sitemap = &Sitemap{ChangeFrequency: "daily", Priority: 2}
		}, "validation failed"},
		{"sitemap and disallow", func(r *RouteRegistry) {
			r.Routes[0].Sitemap = &Sitemap{ChangeFrequency: "daily", Priority: 1}
			r.Routes[0].Disallow = true
		}, "both in the sitemap and disallowed"},
		{"no routes", func(r *RouteRegistry) { r.Routes = []Route{} }, "validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := base()
			tt.mutate(reg)

			err := reg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	reg, err := LoadDefault()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "nested", "routes.json")

	require.NoError(t, Save(reg, path))
	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, reg, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
