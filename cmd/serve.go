package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/PriKalra/priyata-universe/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the aggregated feed over HTTP",
	Long: `Starts the content API server. GET /api/content returns the aggregated
item list with loading and error flags; the cache keeps repeated requests
from hitting the remote feed inside the validity window.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := setup()
		if err != nil {
			return err
		}
		defer store.Close()

		app := server.New(newHub(cfg, store))

		// Graceful shutdown on interrupt
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)
		go func() {
			<-c
			log.Info("shutting down")
			app.ShutdownWithTimeout(10 * time.Second)
		}()

		log.WithField("addr", cfg.ListenAddr()).Info("starting content server")
		if err := app.Listen(cfg.ListenAddr()); err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	},
}
