package cmd

import (
	"fmt"
	"strings"

	"github.com/ZacxDev/go-docsite/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <page-path>...",
	Short: "Show which sidebar applies to each page path",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		site, err := settings.LoadSite()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, page := range args {
			key, groups, err := site.ThemeConfig.Sidebar.Resolve(page)
			if err != nil {
				var unresolved *config.UnresolvedPathError
				if !errors.As(err, &unresolved) {
					return err
				}
				fmt.Fprintf(out, "%s -> (no sidebar)\n", unresolved.Path)
				continue
			}

			if key == "" {
				key = "(global)"
			}
			texts := make([]string, 0, len(groups))
			for _, g := range groups {
				texts = append(texts, g.Text)
			}
			fmt.Fprintf(out, "%s -> %s [%s]\n", config.NormalizePagePath(page), key, strings.Join(texts, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
