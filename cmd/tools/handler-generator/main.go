// cmd/tools/handler-generator/main.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"loan-catalog/pkg/registry"
)

// HandlerData holds data for templates
type HandlerData struct {
	Name        string
	PackageName string
	Method      string
	Path        string
	Description string
	Category    string
	Directory   string
}

const configTemplate = `// {{ .Directory }}/config.go
package {{ .PackageName }}

import (
	"time"

	"loan-catalog/internal/common/config"
)

type Config struct {
	Timeout time.Duration
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		Timeout: config.GetDuration(config.GetHandlerConfig(cfg, HandlerName).Timeout),
	}
}
`

const modelsTemplate = `// {{ .Directory }}/models.go
package {{ .PackageName }}

import "net/url"

type Input struct {
	Query url.Values
}

type Output struct {
	Message string ` + "`json:\"message\"`" + `
}
`

const handlerTemplate = `// {{ .Directory }}/handler.go
package {{ .PackageName }}

import (
	"context"
	"net/http"

	"loan-catalog/internal/common/httputil"
	"loan-catalog/internal/common/logger"
)

const (
	HandlerName = "{{ .Name }}"
)

// Handler serves {{ .Method }} {{ .Path }}.{{ if .Description }} {{ .Description }}{{ end }}
type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"handler": HandlerName}),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	out, err := h.Execute(r.Context(), &Input{Query: r.URL.Query()})
	if err != nil {
		httputil.RespondWithJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, out)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return &Output{Message: HandlerName}, nil
}
`

const testTemplate = `package {{ .PackageName }}

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-catalog/internal/common/logger"
)

func createTestHandler(t *testing.T) *Handler {
	return NewHandler(&Config{}, logger.NewTestLogger(t))
}

func TestHandler_Execute(t *testing.T) {
	h := createTestHandler(t)

	out, err := h.Execute(context.Background(), &Input{})
	require.NoError(t, err)
	assert.Equal(t, HandlerName, out.Message)
}

func TestHandler_ServeHTTP(t *testing.T) {
	h := createTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.Method{{ methodConst .Method }}, "{{ .Path }}", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
`

type options struct {
	route        string
	outputDir    string
	registryPath string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "handler-generator",
		Short:         "Scaffold a handler package for a registry route",
		Example:       "  handler-generator --route faq-page --registry pkg/registry/routes.json",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry.Load(opts.registryPath)
			if err != nil {
				return fmt.Errorf("load registry: %w", err)
			}

			found, ok := reg.Find(opts.route)
			if !ok {
				return fmt.Errorf("route %q not found in registry", opts.route)
			}

			files, err := generate(*found, opts.outputDir)
			if err != nil {
				return fmt.Errorf("generate handler: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, f := range files {
				fmt.Fprintf(out, "Generated %s\n", f)
			}
			fmt.Fprintf(out, "\nNext steps:\n")
			fmt.Fprintf(out, "  1. Implement Execute in handler.go\n")
			fmt.Fprintf(out, "  2. Register %q in internal/app/handlers.go\n", found.Handler)
			fmt.Fprintf(out, "  3. Add a handlers.%s block to configs/config.yaml\n", found.Handler)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.route, "route", "", "route ID from the registry (e.g. faq-page)")
	f.StringVar(&opts.outputDir, "output", "./internal/handlers/", "output directory for the generated handler")
	f.StringVar(&opts.registryPath, "registry", "", "route registry JSON file (embedded registry when empty)")
	_ = cmd.MarkFlagRequired("route")
	return cmd
}

// generate writes the handler scaffold for route under outputDir and
// returns the created paths. Existing files are never overwritten.
func generate(route registry.Route, outputDir string) ([]string, error) {
	data := HandlerData{
		Name:        route.Handler,
		PackageName: strings.ReplaceAll(route.Handler, "-", ""),
		Method:      strings.ToUpper(route.Method),
		Path:        route.Path,
		Description: route.Description,
		Category:    route.Category,
	}
	dir := filepath.Join(outputDir, mapCategoryToDirectory(route.Category), route.Handler)
	data.Directory = filepath.ToSlash(dir)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}

	funcMap := template.FuncMap{
		"methodConst": func(m string) string {
			if m == "" {
				return "Get"
			}
			return strings.ToUpper(m[:1]) + strings.ToLower(m[1:])
		},
	}

	templates := []struct {
		name string
		body string
	}{
		{"config.go", configTemplate},
		{"models.go", modelsTemplate},
		{"handler.go", handlerTemplate},
		{"handler_test.go", testTemplate},
	}

	var created []string
	for _, t := range templates {
		path := filepath.Join(dir, t.name)
		if _, err := os.Stat(path); err == nil {
			return created, fmt.Errorf("%s already exists", path)
		}

		tmpl, err := template.New(t.name).Funcs(funcMap).Parse(t.body)
		if err != nil {
			return created, fmt.Errorf("parse template %s: %w", t.name, err)
		}

		file, err := os.Create(path)
		if err != nil {
			return created, fmt.Errorf("create %s: %w", path, err)
		}
		err = tmpl.Execute(file, data)
		file.Close()
		if err != nil {
			return created, fmt.Errorf("render %s: %w", t.name, err)
		}
		created = append(created, path)
	}
	return created, nil
}

// mapCategoryToDirectory maps registry categories to the handler groups
// under internal/handlers.
func mapCategoryToDirectory(category string) string {
	switch category {
	case "page":
		return "catalog"
	case "seo", "infrastructure":
		return "infrastructure"
	case "tracking":
		return "tracking"
	case "api":
		return "calculator"
	default:
		return strings.ToLower(category)
	}
}
