package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	ConfigPath string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "algotrace",
		Short:         "Step traces for sorting algorithms and linear data structures",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "config.yaml", "path to YAML config")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newSortCommand())
	cmd.AddCommand(newStructureCommand())
	cmd.AddCommand(newReplayCommand())
	cmd.AddCommand(newAlgorithmsCommand())

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
