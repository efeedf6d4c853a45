// Command seed loads the demo authors, books and users into the configured store.
//
// Usage:
//
//	STORE_DRIVER=postgres go run ./cmd/seed
//	go run ./cmd/seed --force
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bookshelf-graphql/internal/config"
	"bookshelf-graphql/pkg/container"
	"bookshelf-graphql/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	force       bool
	storeDriver string
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo data into the bookshelf store",
	Long: `seed creates a small set of authors, books and users through the domain
services, so back-references are maintained exactly as the createBook mutation does.

The store is selected by STORE_DRIVER (or --store). Seeding is skipped when active
authors already exist, unless --force is given.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().BoolVarP(&force, "force", "f", false, "Seed even when the store already has authors")
	rootCmd.Flags().StringVar(&storeDriver, "store", "", "Override STORE_DRIVER (memory, postgres, mongo)")
}

func run(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)

	if storeDriver != "" {
		cfg.Store.Driver = storeDriver
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if cfg.Store.Driver == config.StoreMemory {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: memory store selected, seeded data is discarded on exit")
	}
	// The container must not seed on its own; this command decides.
	cfg.Store.SeedDemoData = false

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := container.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer c.Cleanup()

	res, err := c.Seeder.Run(ctx, force)
	if err != nil {
		return err
	}

	if res.Skipped {
		fmt.Fprintln(cmd.OutOrStdout(), "store already has authors, nothing seeded (use --force)")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d authors, %d books, %d users into %s\n",
		res.Authors, res.Books, res.Users, cfg.Store.Driver)
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
