package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"trackmatch/internal/textnorm"
)

func newNormalizeCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "normalize <text>...",
		Short:       "Show the canonical form of a title or artist name",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			normalizer := textnorm.New()
			text := strings.Join(args, " ")
			result := normalizer.Apply(text, textnorm.Options{PreserveAnnotations: true})
			stripped := normalizer.Normalize(text)

			out := cmd.OutOrStdout()
			if ctx.jsonOutput() {
				return printJSON(out, struct {
					textnorm.NormalizedText
					Stripped string `json:"stripped"`
				}{result, stripped})
			}

			fmt.Fprintf(out, "original:    %s\n", result.Original)
			fmt.Fprintf(out, "canonical:   %s\n", result.Canonical)
			fmt.Fprintf(out, "stripped:    %s\n", stripped)
			fmt.Fprintf(out, "main:        %s\n", result.MainSegment)
			if len(result.AnnotationSegments) > 0 {
				fmt.Fprintf(out, "annotations: %s\n", strings.Join(result.AnnotationSegments, " "))
			}
			return nil
		},
	}
	return cmd
}
