package cmd

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	"github.com/ZacxDev/go-docsite/handlers"
	"github.com/ZacxDev/go-docsite/javascript"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write every config endpoint and the VitePress config to the output directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		transpile, _ := cmd.Flags().GetBool("transpile")
		outDir := settings.OutDir

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

		err = os.MkdirAll(outDir, os.ModePerm)
		if err != nil {
			return errors.Wrap(err, "error creating output directory")
		}

		server := httptest.NewServer(router)
		defer server.Close()

		for _, route := range handlers.GetRegisteredRoutes(router) {
			// Liveness only matters for a running server
			if route == "/healthz" {
				continue
			}

			if err := generateStaticFile(server, outDir, route); err != nil {
				return errors.Wrapf(err, "error generating %s", route)
			}
		}

		written, err := javascript.WriteConfig(site, filepath.Join(outDir, ".vitepress"), transpile)
		if err != nil {
			return err
		}
		for _, path := range written {
			logger.Info().Str("file", path).Msg("generated")
		}

		logger.Info().Str("dir", outDir).Msg("site config built")
		return nil
	},
}

func generateStaticFile(server *httptest.Server, outDir string, route string) error {
	resp, err := http.Get(server.URL + route)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithStack(err)
	}

	filePath := filepath.Join(outDir, filepath.FromSlash(route[1:]))
	err = os.MkdirAll(filepath.Dir(filePath), os.ModePerm)
	if err != nil {
		return errors.WithStack(err)
	}

	err = os.WriteFile(filePath, body, 0644)
	if err != nil {
		return errors.WithStack(err)
	}

	logger.Info().Str("file", filePath).Msg("generated")
	return nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().String("out-dir", "public", "directory to write the build into")
	buildCmd.Flags().Bool("transpile", false, "also write .vitepress/config.mjs")
	bindFlag("out_dir", buildCmd.Flags().Lookup("out-dir"))
}
