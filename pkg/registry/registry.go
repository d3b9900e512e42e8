// pkg/registry/registry.go
package registry

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed routes.json
var defaultRoutes []byte

// LoadRegistry reads a registry file without validating it.
func LoadRegistry(path string) (*RouteRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// LoadDefault returns the registry compiled into the binary.
func LoadDefault() (*RouteRegistry, error) {
	return Parse(defaultRoutes)
}

// Load reads path, or the compiled registry when path is empty, and
// validates the result.
func Load(path string) (*RouteRegistry, error) {
	var (
		reg *RouteRegistry
		err error
	)
	if path == "" {
		reg, err = LoadDefault()
	} else {
		reg, err = LoadRegistry(path)
	}
	if err != nil {
		return nil, err
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return reg, nil
}

func Parse(data []byte) (*RouteRegistry, error) {
	var reg RouteRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to parse route registry: %w", err)
	}
	return &reg, nil
}

// Save writes the registry as indented JSON, creating parent directories.
func Save(reg *RouteRegistry, path string) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}
	return nil
}

// Validate checks the registry against its JSON schema, then for duplicate
// ids and duplicate method+path pairs.
func (r *RouteRegistry) Validate() error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(routeRegistrySchema),
		gojsonschema.NewGoLoader(r),
	)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("route registry validation failed: %s", strings.Join(errs, "; "))
	}

	ids := make(map[string]bool, len(r.Routes))
	endpoints := make(map[string]bool, len(r.Routes))
	for _, route := range r.Routes {
		if ids[route.ID] {
			return fmt.Errorf("duplicate route ID: %s", route.ID)
		}
		ids[route.ID] = true

		endpoint := route.Method + " " + route.Path
		if endpoints[endpoint] {
			return fmt.Errorf("duplicate route: %s", endpoint)
		}
		endpoints[endpoint] = true

		if route.Sitemap != nil && route.Disallow {
			return fmt.Errorf("route %s is both in the sitemap and disallowed", route.ID)
		}
	}
	return nil
}

// Find returns the route with id.
func (r *RouteRegistry) Find(id string) (*Route, bool) {
	for i := range r.Routes {
		if r.Routes[i].ID == id {
			return &r.Routes[i], true
		}
	}
	return nil, false
}

// SitemapRoutes returns the routes listed in sitemap.xml in registry order.
func (r *RouteRegistry) SitemapRoutes() []Route {
	var out []Route
	for _, route := range r.Routes {
		if route.Sitemap != nil {
			out = append(out, route)
		}
	}
	return out
}

// DisallowedPaths returns robots.txt disallow prefixes. Path parameters
// are cut off, so /go/{offerId} becomes /go/.
func (r *RouteRegistry) DisallowedPaths() []string {
	var out []string
	seen := map[string]bool{}
	for _, route := range r.Routes {
		if !route.Disallow {
			continue
		}
		p := route.Path
		if i := strings.Index(p, "{"); i >= 0 {
			p = p[:i]
		}
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}
