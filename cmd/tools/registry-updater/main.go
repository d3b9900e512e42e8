// cmd/tools/registry-updater/main.go
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"loan-catalog/pkg/registry"
)

type rootOptions struct {
	path string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "registry-updater",
		Short:         "Maintain the site route registry",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.path, "path", "pkg/registry/routes.json", "path to registry file")

	cmd.AddCommand(newAddCommand(opts))
	cmd.AddCommand(newUpdateCommand(opts))
	cmd.AddCommand(newValidateCommand(opts))
	cmd.AddCommand(newListCommand(opts))
	return cmd
}

func newAddCommand(opts *rootOptions) *cobra.Command {
	var (
		route      registry.Route
		changeFreq string
		priority   float64
	)

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a route to the registry",
		Example: `  registry-updater add --id faq-page --method GET --route-path /faq --handler faq-page --category page --changefreq monthly --priority 0.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if route.ID == "" || route.Path == "" || route.Handler == "" || route.Category == "" {
				return fmt.Errorf("id, route-path, handler and category are required")
			}
			if changeFreq != "" {
				route.Sitemap = &registry.Sitemap{Loc: route.Path, ChangeFrequency: changeFreq, Priority: priority}
			}
			if route.Tags == nil {
				route.Tags = []string{}
			}
			if err := addRoute(opts.path, route, time.Now()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added route: %s\n", route.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&route.ID, "id", "", "route ID (e.g. faq-page)")
	f.StringVar(&route.Method, "method", "GET", "HTTP method")
	f.StringVar(&route.Path, "route-path", "", "URL path (e.g. /faq)")
	f.StringVar(&route.Handler, "handler", "", "handler name")
	f.StringVar(&route.Category, "category", "", "page, api, seo, tracking or infrastructure")
	f.StringVar(&route.Description, "description", "", "description")
	f.BoolVar(&route.Disallow, "disallow", false, "exclude from crawling in robots.txt")
	f.StringSliceVar(&route.Tags, "tags", nil, "comma separated tags")
	f.StringVar(&changeFreq, "changefreq", "", "sitemap change frequency; empty keeps the route out of the sitemap")
	f.Float64Var(&priority, "priority", 0.5, "sitemap priority")
	return cmd
}

func newUpdateCommand(opts *rootOptions) *cobra.Command {
	var id, field, value string

	cmd := &cobra.Command{
		Use:     "update",
		Short:   "Update a field of an existing route",
		Example: `  registry-updater update --id list-offers --field priority --value 0.9`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" || field == "" {
				return fmt.Errorf("id and field are required")
			}
			if err := updateRoute(opts.path, id, field, value, time.Now()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated route %s, field %s to %s\n", id, field, value)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "route ID to update")
	cmd.Flags().StringVar(&field, "field", "", "field to update")
	cmd.Flags().StringVar(&value, "value", "", "new value")
	return cmd
}

func newValidateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the registry file",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry.Load(opts.path)
			if err != nil {
				return fmt.Errorf("registry validation failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registry validation passed. Found %d routes.\n", len(reg.Routes))
			return nil
		},
	}
}

func newListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry.LoadRegistry(opts.path)
			if err != nil {
				return fmt.Errorf("failed to load registry: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, r := range reg.Routes {
				marker := ""
				if r.Sitemap != nil {
					marker = " [sitemap]"
				}
				if r.Disallow {
					marker = " [disallow]"
				}
				fmt.Fprintf(out, "%-22s %-5s %-24s %s%s\n", r.ID, r.Method, r.Path, r.Category, marker)
			}
			return nil
		},
	}
}

func addRoute(path string, route registry.Route, now time.Time) error {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to load registry: %w", err)
		}
		reg = &registry.RouteRegistry{Version: "1.0.0", Routes: []registry.Route{}}
	}

	if _, ok := reg.Find(route.ID); ok {
		return fmt.Errorf("route with ID %s already exists", route.ID)
	}

	reg.Routes = append(reg.Routes, route)
	return save(reg, path, now)
}

func updateRoute(path, id, field, value string, now time.Time) error {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	route, ok := reg.Find(id)
	if !ok {
		return fmt.Errorf("route with ID %s not found", id)
	}

	switch field {
	case "method":
		route.Method = value
	case "path":
		route.Path = value
	case "handler":
		route.Handler = value
	case "category":
		route.Category = value
	case "description":
		route.Description = value
	case "disallow":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid disallow value: %w", err)
		}
		route.Disallow = b
	case "changefreq":
		if value == "" {
			route.Sitemap = nil
			break
		}
		if route.Sitemap == nil {
			route.Sitemap = &registry.Sitemap{Loc: route.Path, Priority: 0.5}
		}
		route.Sitemap.ChangeFrequency = value
	case "priority":
		p, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid priority value: %w", err)
		}
		if route.Sitemap == nil {
			return fmt.Errorf("route %s is not in the sitemap", id)
		}
		route.Sitemap.Priority = p
	default:
		return fmt.Errorf("unknown field: %s", field)
	}

	return save(reg, path, now)
}

// save validates before writing so a bad edit never reaches disk.
func save(reg *registry.RouteRegistry, path string, now time.Time) error {
	reg.LastUpdated = now.UTC().Format(time.RFC3339)
	if err := reg.Validate(); err != nil {
		return err
	}
	return registry.Save(reg, path)
}
