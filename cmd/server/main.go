package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "chatroom-backend",
		Short:        "Two-party chat backend with realtime sync",
		RunE:         runServer,
		SilenceUsage: true,
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	// A failed storage or config initialization refuses to start the server.
	app, cleanup, err := InitializeApp()
	if err != nil {
		return err
	}
	defer cleanup()

	// The hub's main loop runs for the life of the process.
	go app.Hub.Run()

	slog.Info("server starting", "addr", app.Config.Addr, "env", app.Config.Env)
	return http.ListenAndServe(app.Config.Addr, app.Router)
}
