// pkg/registry/schema.go
package registry

// RouteRegistry lists the site's public routes. Sitemaps, robots rules and
// the route tooling all read it.
type RouteRegistry struct {
	Version     string  `json:"version"`
	LastUpdated string  `json:"lastUpdated"`
	Routes      []Route `json:"routes"`
}

type Route struct {
	ID          string   `json:"id"`
	Method      string   `json:"method"`
	Path        string   `json:"path"`
	Handler     string   `json:"handler"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Sitemap     *Sitemap `json:"sitemap,omitempty"`
	Disallow    bool     `json:"disallow,omitempty"`
	Tags        []string `json:"tags"`
}

// Sitemap marks a route for sitemap.xml. An empty Loc means the site root.
type Sitemap struct {
	Loc             string  `json:"loc"`
	ChangeFrequency string  `json:"changeFrequency"`
	Priority        float64 `json:"priority"`
}

// routeRegistrySchema is checked before the semantic validation.
const routeRegistrySchema = `{
  "type": "object",
  "required": ["version", "routes"],
  "properties": {
    "version": {"type": "string", "minLength": 1},
    "lastUpdated": {"type": "string"},
    "routes": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "method", "path", "handler", "category"],
        "properties": {
          "id": {"type": "string", "pattern": "^[a-z0-9]+(-[a-z0-9]+)*$"},
          "method": {"enum": ["GET", "POST"]},
          "path": {"type": "string", "pattern": "^/"},
          "handler": {"type": "string", "minLength": 1},
          "category": {"enum": ["page", "api", "seo", "tracking", "infrastructure"]},
          "sitemap": {
            "type": "object",
            "required": ["changeFrequency", "priority"],
            "properties": {
              "loc": {"type": "string"},
              "changeFrequency": {"enum": ["always", "hourly", "daily", "weekly", "monthly", "yearly", "never"]},
              "priority": {"type": "number", "minimum": 0, "maximum": 1}
            }
          },
          "disallow": {"type": "boolean"}
        }
      }
    }
  }
}`
