package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/PriKalra/priyata-universe/internal/artifact"
)

var flagOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the aggregated feed to a static JSON artifact",
	Long: `Run the content pipeline and write the result as a pre-computed JSON
document the web server can ship directly, so browsers get instant
content without calling the remote feed on every page load.`,
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

		out := cfg.Artifact()
		if flagOut != "" {
			out = flagOut
		}
		if err := artifact.Write(out, items); err != nil {
			return fmt.Errorf("writing artifact: %w", err)
		}

		fmt.Printf("Wrote %d item(s) -> %s\n", len(items), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&flagOut, "out", "", "artifact path (default from config)")
}
