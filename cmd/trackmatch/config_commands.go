package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"trackmatch/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(ctx))
	configCmd.AddCommand(newConfigValidateCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			}

			written, err := config.WriteSample(target)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", written)
			fmt.Fprintln(out, "Set spotify client_id and client_secret (or export SPOTIFY_CLIENT_ID / SPOTIFY_CLIENT_SECRET) before searching.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			// Never echo the secret.
			display := *cfg
			if display.Spotify.ClientSecret != "" {
				display.Spotify.ClientSecret = "<set>"
			}

			out := cmd.OutOrStdout()
			if ctx.jsonOutput() {
				return printJSON(out, display)
			}
			rows := [][]string{
				{"spotify.client_id", display.Spotify.ClientID},
				{"spotify.client_secret", display.Spotify.ClientSecret},
				{"spotify.market", display.Spotify.Market},
				{"spotify.search_limit", fmt.Sprintf("%d", display.Spotify.SearchLimit)},
				{"matching.title_weight", fmt.Sprintf("%.2f", display.Matching.TitleWeight)},
				{"matching.artist_weight", fmt.Sprintf("%.2f", display.Matching.ArtistWeight)},
				{"matching.bracket_weight", fmt.Sprintf("%.2f", display.Matching.BracketWeight)},
				{"matching.keyword_bonus", fmt.Sprintf("%.2f", display.Matching.KeywordBonus)},
				{"matching.stage1_threshold", fmt.Sprintf("%.1f", display.Matching.Stage1Threshold)},
				{"matching.stage2_threshold", fmt.Sprintf("%.1f", display.Matching.Stage2Threshold)},
				{"matching.top_k", fmt.Sprintf("%d", display.Matching.TopK)},
				{"search_cache.enabled", fmt.Sprintf("%t", display.SearchCache.Enabled)},
				{"search_cache.path", display.SearchCache.Path},
				{"search_cache.ttl_minutes", fmt.Sprintf("%d", display.SearchCache.TTLMinutes)},
				{"import.workers", fmt.Sprintf("%d", display.Import.Workers)},
				{"logging.format", display.Logging.Format},
				{"logging.level", display.Logging.Level},
			}
			fmt.Fprintln(out, renderTable([]string{"Setting", "Value"}, rows))
			return nil
		},
	}
}

func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "validate [path]",
		Short:       "Validate a configuration file",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			_, resolved, exists, err := config.Load(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if exists {
				fmt.Fprintf(out, "Configuration at %s is valid.\n", resolved)
			} else {
				fmt.Fprintf(out, "No configuration file found at %s; defaults are valid.\n", resolved)
			}
			return nil
		},
	}
}
