package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fmfug/fmfug/internal/core/format"
	"github.com/fmfug/fmfug/internal/output"
)

// sampleName drives the example column of the formats listing.
const sampleName = "Jane Doe"

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the default format patterns",
	Long:  "List the built-in format patterns with a sample expansion for each",
	Args:  cobra.NoArgs,
	RunE:  runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)

	formatsCmd.Flags().String("output-format", "table", "Output format: table, json, yaml")
}

func runFormats(cmd *cobra.Command, args []string) error {
	value, err := cmd.Flags().GetString("output-format")
	if err != nil {
		return err
	}
	f, err := output.ParseFormat(value)
	if err != nil {
		return err
	}

	entries := output.BuildEntries(format.DefaultFormats, sampleName, format.Options{})
	rendered, err := output.FormatPatternList(f, entries)
	if err != nil {
		return err
	}
	if strings.TrimSpace(rendered) != "" {
		fmt.Println(rendered)
	}
	return nil
}
