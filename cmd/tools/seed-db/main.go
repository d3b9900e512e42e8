// cmd/tools/seed-db/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"loan-catalog/internal/common/config"
	"loan-catalog/internal/common/database"
	"loan-catalog/internal/common/logger"
	"loan-catalog/internal/seed"
)

type options struct {
	configPath string
	seed       uint32
	migrate    bool
	dryRun     bool
	timeout    time.Duration
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
		Use:           "seed-db",
		Short:         "Fill the database with deterministic demo data",
		Example:       "  seed-db --config configs/config.yaml\n  seed-db --dry-run",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds := seed.Generate(opts.seed)
			if opts.dryRun {
				printSummary(cmd.OutOrStdout(), opts.seed, ds)
				return nil
			}

			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)

			pg, err := database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			defer pg.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			res, err := run(ctx, seed.NewSeeder(pg, log), opts, ds)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d cities, %d tags, %d organizations, %d offers, %d reviews (seed=%d)\n",
				res.Cities, res.Tags, res.Organizations, res.Offers, res.Reviews, opts.seed)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "config file (defaults to configs/config.yaml lookup)")
	f.Uint32Var(&opts.seed, "seed", seed.DefaultSeed, "random seed")
	f.BoolVar(&opts.migrate, "migrate", true, "apply the schema before seeding")
	f.BoolVar(&opts.dryRun, "dry-run", false, "print what would be written without connecting")
	f.DurationVar(&opts.timeout, "timeout", 2*time.Minute, "overall deadline")
	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromFile(path)
}

func run(ctx context.Context, s *seed.Seeder, opts *options, ds seed.Dataset) (seed.Result, error) {
	if opts.migrate {
		if err := s.Migrate(ctx); err != nil {
			return seed.Result{}, err
		}
	}
	return s.Run(ctx, ds)
}

func printSummary(w io.Writer, seedValue uint32, ds seed.Dataset) {
	links := 0
	withURL := 0
	for _, o := range ds.Offers {
		links += len(o.TagIDs)
		if o.URL != "" {
			withURL++
		}
	}
	fmt.Fprintf(w, "seed:          %d\n", seedValue)
	fmt.Fprintf(w, "cities:        %d\n", len(ds.Cities))
	fmt.Fprintf(w, "tags:          %d\n", len(ds.Tags))
	fmt.Fprintf(w, "organizations: %d\n", len(ds.Organizations))
	fmt.Fprintf(w, "offers:        %d (%d with partner url)\n", len(ds.Offers), withURL)
	fmt.Fprintf(w, "offer tags:    %d\n", links)
	fmt.Fprintf(w, "reviews:       %d\n", len(ds.Reviews))
}
