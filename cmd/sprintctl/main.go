package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/config"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/docstore"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/output"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/repository"
)

// Shared by every command, initialized in cobra.OnInitialize.
var (
	ui   *output.UI
	repo *repository.Repository
	cfg  *config.Config

	verbose bool
	dryRun  bool
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "sprintctl",
	Short: "Inspect and seed sprint planning data",
	Long: `sprintctl works directly on the planner's document store, using the same
environment configuration as the API server. It prints sprint capacity and
remaining effort, renders planning reports and loads fixture files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initDeps)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would happen without making changes")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Env file to load (default .env)")
}

func initDeps() {
	ui = output.New()
	ui.Verbose = verbose
	ui.DryRun = dryRun
}

// getRepository opens the configured store on first use.
func getRepository() (*repository.Repository, error) {
	if repo != nil {
		return repo, nil
	}

	if envFile != "" {
		os.Setenv("ENV_FILE", envFile)
	}

	c, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	ui.VerboseLog("store driver: %s", c.Store.Driver)

	store, err := docstore.Open(c)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	cfg = c
	repo = repository.NewRepository(c, store)
	return repo, nil
}
