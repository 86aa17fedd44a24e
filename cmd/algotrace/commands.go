package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"algotrace/pkg/registry"
	"algotrace/pkg/structures"
	"algotrace/pkg/trace"
)

type structureOutput struct {
	Steps    trace.Trace `json:"steps"`
	NewState []any       `json:"new_state"`
}

type replayOutput struct {
	Steps int   `json:"steps"`
	State []any `json:"state"`
}

func newSortCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sort <algorithm> <numbers...>",
		Short: "Print the trace of a sort engine as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := registry.Default[float64]().Lookup(args[0])
			if err != nil {
				return err
			}

			seq := make([]float64, 0, len(args)-1)
			for _, arg := range args[1:] {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid number %q: %w", arg, err)
				}
				seq = append(seq, v)
			}
			return writeJSON(cmd.OutOrStdout(), engine(seq))
		},
	}
}

func newStructureCommand() *cobra.Command {
	var (
		state string
		value string
		index int
	)

	cmd := &cobra.Command{
		Use:   "ds <structure> <action>",
		Short: "Apply one structure action and print the trace and new state",
		Example: `  algotrace ds stack push --state '[1,2]' --value 3
  algotrace ds linked-list delete_at --state '["a","b"]' --index 0`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cur []any
			if err := json.Unmarshal([]byte(state), &cur); err != nil {
				return fmt.Errorf("--state must be a JSON list: %w", err)
			}

			var ops structures.Operands[any]
			if cmd.Flags().Changed("value") {
				var v any
				if err := json.Unmarshal([]byte(value), &v); err != nil {
					return fmt.Errorf("--value must be JSON: %w", err)
				}
				ops.Value = &v
			}
			if cmd.Flags().Changed("index") {
				ops.Index = &index
			}

			tr, next, err := structures.Apply(structures.Structure(args[0]), structures.Action(args[1]), cur, ops)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), structureOutput{Steps: tr, NewState: next})
		},
	}
	cmd.Flags().StringVar(&state, "state", "[]", "current state as a JSON list")
	cmd.Flags().StringVar(&value, "value", "", "value operand as JSON")
	cmd.Flags().IntVar(&index, "index", 0, "index operand for linked-list actions")

	return cmd
}

func newReplayCommand() *cobra.Command {
	var (
		state     string
		stepsPath string
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay a stored trace over an initial state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cur []any
			if err := json.Unmarshal([]byte(state), &cur); err != nil {
				return fmt.Errorf("--state must be a JSON list: %w", err)
			}

			data, err := readSteps(cmd.InOrStdin(), stepsPath)
			if err != nil {
				return err
			}
			tr, err := trace.Decode[any](data)
			if err != nil {
				return fmt.Errorf("decode trace: %w", err)
			}
			final, err := trace.Replay(cur, tr)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), replayOutput{Steps: len(tr), State: final})
		},
	}
	cmd.Flags().StringVar(&state, "state", "[]", "initial state as a JSON list")
	cmd.Flags().StringVar(&stepsPath, "steps", "-", "file with a JSON list of steps, - for stdin")

	return cmd
}

func readSteps(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read steps: %w", err)
	}
	return data, nil
}

func newAlgorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List registered sort engines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range registry.Default[float64]().Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
