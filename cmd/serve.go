package cmd

import (
	"net/http"
	"time"

	"github.com/ZacxDev/go-docsite/handlers"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site config to renderers over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		site, err := settings.LoadSite()
		if err != nil {
			return err
		}

		router, err := handlers.SetupRouter(site, handlers.Options{
			Origin:  settings.Origin,
			LastMod: time.Now().Format("2006-01-02"),
			Logger:  logger,
		})
		if err != nil {
			return errors.Wrap(err, "error setting up router")
		}

		logger.Info().Str("port", settings.Port).Msg("starting server")
		return errors.WithStack(http.ListenAndServe(":"+settings.Port, router))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "9010", "Port to run the server on")
	bindFlag("port", serveCmd.Flags().Lookup("port"))
}
