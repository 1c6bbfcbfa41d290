package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/PriKalra/priyata-universe/internal/browser"
)

var openCmd = &cobra.Command{
	Use:   "open <n>",
	Short: "Open a content item in the browser",
	Long:  "Open the n-th item of the aggregated list (as printed by the root command) in the default browser.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := setup()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		items, err := newHub(cfg, store).Load(ctx)
		if err != nil {
			return err
		}

		idx, err := resolveIndex(args[0], len(items))
		if err != nil {
			return err
		}
		return browser.Open(items[idx].Link)
	},
}

// resolveIndex converts a 1-based argument to a slice index, rejecting
// anything outside [1, n].
func resolveIndex(arg string, n int) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid item number %q", arg)
	}
	if i < 1 || i > n {
		return 0, fmt.Errorf("item number %d out of range (1-%d)", i, n)
	}
	return i - 1, nil
}
