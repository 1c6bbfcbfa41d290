package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/PriKalra/priyata-universe/internal/cache"
	"github.com/PriKalra/priyata-universe/internal/catalog"
	"github.com/PriKalra/priyata-universe/internal/config"
	"github.com/PriKalra/priyata-universe/internal/feed"
	"github.com/PriKalra/priyata-universe/internal/hub"
	"github.com/PriKalra/priyata-universe/internal/update"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig  string
	flagRefresh bool
	flagJSON    bool
)

var rootCmd = &cobra.Command{
	Use:   "contentfeed",
	Short: "Aggregated content feed for the priyata-universe site",
	Long: `contentfeed merges the Hey World blog feed with the curated audio-post
catalog into one deduplicated, date-ordered content list. Results are
cached locally and can be printed, exported as a static JSON artifact,
or served over HTTP.`,
	RunE: runList,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "drop the cached snapshot and refetch")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "print the list as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(cacheCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("contentfeed %s (commit: %s, built: %s)\n", version, commit, date)
		if res := update.Check(context.Background(), version); res != nil {
			fmt.Printf("A newer version is available: %s\n", res.LatestVersion)
		}
	},
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, store, err := setup()
	if err != nil {
		return err
	}
	defer store.Close()

	if flagRefresh {
		if err := store.Clear(); err != nil {
			return fmt.Errorf("clearing cache: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	items, err := newHub(cfg, store).Load(ctx)
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}
	printItems(items)
	return nil
}

// setup loads config and opens the cache store; shared by most commands.
func setup() (*config.Config, *cache.Store, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	store, err := cache.Open(config.CachePath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening cache: %w", err)
	}
	return cfg, store, nil
}

func newHub(cfg *config.Config, store *cache.Store) *hub.Hub {
	client := feed.NewClient(feed.Options{
		FeedURL: cfg.FeedURL(),
		Mirrors: cfg.Feed.Mirrors,
		Timeout: cfg.FetchTimeoutDuration(),
		Retries: uint64(cfg.Retries()),
		Backoff: cfg.FetchBackoffDuration(),
		Limit:   cfg.FeedLimit(),
	})
	return hub.New(client, hub.CatalogFunc(catalog.Items), store, cfg.CacheTTLDuration())
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
