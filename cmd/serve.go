package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cascade-sh/cascade/commands"
	"github.com/cascade-sh/cascade/core/remote"
	"github.com/cascade-sh/cascade/core/server"
)

// serveCmd exposes the shell over SSH on a local port.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the shell over SSH.",
	RunE: func(cmd *cobra.Command, args []string) error {
		os.Stdin.Close()
		cmd.SilenceUsage = true
		log.Println("Initializing server...")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		lg, logCloser, err := openLogger()
		if err != nil {
			return err
		}
		if logCloser != nil {
			defer logCloser.Close()
		}

		srv, err := server.New(cfg, remote.NewLocal(cfg.TargetRoot), commands.Resolver(), lg)
		if err != nil {
			return err
		}

		go func() {
			log.Printf("Listening on %s", srv.Addr())
			if err := srv.ListenAndServe(); err != nil {
				log.Fatal(err)
			}
		}()

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigs
		log.Printf("Got signal %q, terminating...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Fatalf("Server shutdown failed: %s", err)
		}
		log.Print("Server exited")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
