package cmd

import (
	"os"

	"github.com/ZacxDev/go-docsite/config"
	"github.com/ZacxDev/go-docsite/javascript"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the site config as json, yaml or a VitePress config module",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		transpile, _ := cmd.Flags().GetBool("transpile")

		site, err := settings.LoadSite()
		if err != nil {
			return err
		}

		if format == "vitepress" {
			if output == "" {
				source, err := javascript.RenderConfig(site)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write([]byte(source))
				return errors.WithStack(err)
			}

			written, err := javascript.WriteConfig(site, output, transpile)
			if err != nil {
				return err
			}
			for _, path := range written {
				logger.Info().Str("file", path).Msg("wrote vitepress config")
			}
			return nil
		}

		data, err := site.Marshal(config.Format(format))
		if err != nil {
			return err
		}

		if output == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return errors.WithStack(err)
		}

		if err := os.WriteFile(output, data, 0644); err != nil {
			return errors.WithStack(err)
		}
		logger.Info().Str("file", output).Str("format", format).Msg("exported site config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("format", "f", "json", "output format: json, yaml or vitepress")
	exportCmd.Flags().StringP("output", "o", "", "output file (directory for vitepress), stdout when empty")
	exportCmd.Flags().Bool("transpile", false, "also write config.mjs next to config.mts (vitepress only)")
}
