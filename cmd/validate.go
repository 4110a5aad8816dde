package cmd

import (
	"fmt"

	"github.com/ZacxDev/go-docsite/config"
	"github.com/ZacxDev/go-docsite/docs"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the site config strictly and fail on any schema violation",
	RunE: func(cmd *cobra.Command, args []string) error {
		site, err := settings.LoadSite()
		if err != nil {
			return err
		}

		logger.Info().
			Str("title", site.Title).
			Int("nav", len(site.ThemeConfig.Nav)).
			Int("links", len(site.Links())).
			Msg("site config is valid")
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Report every schema violation and every link without a source page",
	RunE: func(cmd *cobra.Command, args []string) error {
		site, err := settings.ReadSite()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		problems := 0

		for _, se := range config.SchemaErrors(site.Validate()) {
			fmt.Fprintf(out, "schema: %s\n", se.Error())
			problems++
		}

		reports, err := docs.CheckLinks(site, settings.DocsRoot)
		if err != nil {
			return err
		}
		for _, r := range reports {
			if !r.Exists {
				fmt.Fprintf(out, "missing: %s (expected %s)\n", r.Link, r.File)
				problems++
				continue
			}
			logger.Debug().Str("link", r.Link).Str("title", r.Title).Msg("page found")
		}

		if problems > 0 {
			return errors.Errorf("%d problem(s) found", problems)
		}
		fmt.Fprintln(out, "ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().String("docs-root", ".", "directory the site's Markdown sources live in")
	bindFlag("docs_root", lintCmd.Flags().Lookup("docs-root"))
}
