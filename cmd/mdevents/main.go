// mdevents tokenizes a Markdown file and dumps the resolved event
// stream, one event per line. It exists for inspecting resolver output
// by hand; the tokenizer itself does no I/O.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/markdown-core/tokenizer/core/event"
	"github.com/markdown-core/tokenizer/definition"
	"github.com/markdown-core/tokenizer/leaf"
	"github.com/markdown-core/tokenizer/tokenizer"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var noDefinitions bool

	cmd := &cobra.Command{
		Use:   "mdevents [file]",
		Short: "Tokenize Markdown and print the resolved event stream",
		Long: `mdevents runs the tokenizer over a Markdown file (or stdin when the
file is "-" or omitted) and prints each event of the resolved stream:
kind, construct name, and source position.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readInput(args)
			if err != nil {
				return err
			}

			defs := definition.Set{}
			if !noDefinitions {
				defs = definition.Collect(source)
			}

			events := leaf.Tokenize(source, tokenizer.WithDefinitions(defs))
			writeEvents(cmd.OutOrStdout(), events)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noDefinitions, "no-definitions", false, "skip the definition pre-pass (reference links will not match)")
	return cmd
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func writeEvents(w io.Writer, events []event.Event) {
	depth := 0
	for _, e := range events {
		if e.Kind == event.Exit {
			depth--
		}
		fmt.Fprintf(w, "%*s%-5s %s %d:%d(%d)\n",
			depth*2, "", e.Kind, e.Name, e.Point.Line, e.Point.Column, e.Point.Index)
		if e.Kind == event.Enter {
			depth++
		}
	}
}
