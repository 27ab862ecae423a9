package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"sitefront/internal/build"
	"sitefront/web"
)

func newBuildCmd() *cobra.Command {
	var (
		out         string
		concurrency int
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the site as static files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if out == "" {
				out = cfg.OutputDir
			}

			s, err := newSite(cfg, nil)
			if err != nil {
				return err
			}

			report, err := build.Build(cmd.Context(), s, build.Options{
				OutputDir:   out,
				SiteURL:     cfg.SiteURL,
				Static:      web.Static(),
				Concurrency: concurrency,
			})
			if err != nil {
				return err
			}
			slog.Info("build finished",
				"out", out,
				"pages", len(report.Pages),
				"skipped", len(report.Skipped),
				"assets", report.Assets,
				"duration", report.Duration.String(),
			)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (default $OUTPUT_DIR or dist)")
	cmd.Flags().IntVar(&concurrency, "concurrency", build.DefaultConcurrency, "routes rendered at once")
	return cmd
}
