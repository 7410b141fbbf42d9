// Command promptctl composes VEO3 prompts from the terminal using the same
// composer and step catalogue as the HTTP server.
//
// Usage:
//
//	promptctl compose --scene "..." --pov close-up --style noir
//	promptctl steps --variant classic
//	promptctl export --scene "..." --out ./downloads
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"magic_prompt_server/internal/prompt"
	"magic_prompt_server/internal/share"
	"magic_prompt_server/internal/types"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// =============================================================================
// ROOT COMMAND
// =============================================================================

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "promptctl",
		Short:         "Compose VEO3 video prompts",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newComposeCmd(), newStepsCmd(), newExportCmd())
	return root
}

// recordFlags binds one flag per wizard field.
func recordFlags(cmd *cobra.Command, r *types.FieldRecord) {
	f := cmd.Flags()
	f.StringVar(&r.Scene, "scene", "", "scene description")
	f.StringVar(&r.Pov, "pov", "", "point of view option key")
	f.StringVar(&r.Environment, "environment", "", "environment description")
	f.StringVar(&r.Movements, "movements", "", "movements description")
	f.StringVar(&r.Emotion, "emotion", "", "emotion description")
	f.StringVar(&r.Sensory, "sensory", "", "sensory details")
	f.StringVar(&r.Style, "style", "", "visual style option key")
	f.StringVar(&r.CharactersCount, "characters", "", "number of characters")
	f.StringVar(&r.DialogLanguage, "dialog-language", "", "dialog language option key")
	f.StringVar(&r.CharacterSpeech, "speech", "", "character speech")
}

// =============================================================================
// COMPOSE COMMAND
// =============================================================================

func newComposeCmd() *cobra.Command {
	var (
		record  types.FieldRecord
		summary bool
	)
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Print the final prompt for the given answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, prompt.Compose(record))
			if summary {
				printSummary(out, record)
			}
			return nil
		},
	}
	recordFlags(cmd, &record)
	cmd.Flags().BoolVar(&summary, "summary", false, "also print the labelled summary")
	return cmd
}

func printSummary(w io.Writer, r types.FieldRecord) {
	fmt.Fprintln(w)
	for _, e := range prompt.Summary(r) {
		fmt.Fprintf(w, "%s: %s\n", e.Label, e.Value)
	}
}

// =============================================================================
// STEPS COMMAND
// =============================================================================

func newStepsCmd() *cobra.Command {
	var variant string
	cmd := &cobra.Command{
		Use:   "steps",
		Short: "List the wizard steps of a variant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			steps, err := prompt.Steps(prompt.Variant(variant))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, s := range steps {
				fmt.Fprintf(out, "%2d. %s (%s, %s)\n", i+1, s.Title, s.Field, s.Input)
				for _, o := range s.Options {
					fmt.Fprintf(out, "      %-22s %s\n", o.Key, o.Label)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&variant, "variant", string(prompt.VariantFull), "step list: full or classic")
	return cmd
}

// =============================================================================
// EXPORT COMMAND
// =============================================================================

func newExportCmd() *cobra.Command {
	var (
		record types.FieldRecord
		dir    string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the final prompt to a veo3-prompt-<ms>.txt file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			final := prompt.Compose(record)
			if strings.TrimSpace(final) == "" {
				return fmt.Errorf("nothing to export: every field is empty")
			}
			path, err := share.WriteDownload(dir, final, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	recordFlags(cmd, &record)
	cmd.Flags().StringVarP(&dir, "out", "o", ".", "directory to write the file into")
	return cmd
}
