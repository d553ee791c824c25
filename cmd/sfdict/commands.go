package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/unhappydog/tgen/internal/da"
	"github.com/unhappydog/tgen/internal/delex"
	"github.com/unhappydog/tgen/internal/log"
	"github.com/unhappydog/tgen/internal/surface"
)

func newRootCmd() *cobra.Command {
	var debug int
	root := &cobra.Command{
		Use:           "sfdict",
		Short:         "Inspect surface-form dictionaries and dialogue acts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetLevel(log.LevelFromInt(debug))
		},
	}
	root.PersistentFlags().IntVar(&debug, "debug", 0, "debug level (0=off, 1=basic, 2=detailed, 3=trace)")
	root.AddCommand(newLookupCmd(), newStatsCmd(), newDACmd())
	return root
}

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <surface_forms.json> <token>...",
		Short: "Print the longest surface-form matches found in a token sequence",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := surface.LoadFile(args[0])
			if err != nil {
				return err
			}
			tokens := args[1:]
			if len(tokens) == 1 {
				tokens = strings.Fields(tokens[0])
			}
			return lookup(cmd.OutOrStdout(), dict, tokens)
		},
	}
}

// lookup walks the tokens left to right and prints one line per candidate
// of every match: matched text, lemma and tag.
func lookup(w io.Writer, dict *surface.Dictionary, tokens []string) error {
	found := false
	q := surface.NewQueue(tokens)
	for q.Len() > 0 {
		text, cands, ok := dict.MatchLongest(q)
		if !ok {
			q.Pop()
			continue
		}
		found = true
		for _, c := range cands {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", text, c.Lemma, c.Tag); err != nil {
				return err
			}
		}
	}
	if !found {
		return fmt.Errorf("no surface form found in %q", strings.Join(tokens, " "))
	}
	return nil
}

type dictStats struct {
	Phrases   int            `yaml:"phrases"`
	MaxTokens int            `yaml:"maxTokens"`
	Slots     map[string]int `yaml:"slots"`
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <surface_forms.json>",
		Short: "Print phrase counts of a surface-form dictionary as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := surface.LoadFile(args[0])
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(dictStats{
				Phrases:   dict.Len(),
				MaxTokens: dict.MaxLen(),
				Slots:     dict.SlotCounts(),
			}); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func newDACmd() *cobra.Command {
	var abstSlots []string
	cmd := &cobra.Command{
		Use:   "da <da_line>",
		Short: "Parse a dialogue act and print its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := da.Parse(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, d.String())
			if len(abstSlots) > 0 {
				fmt.Fprintln(out, delex.NewEngine(abstSlots).DA(d).String())
			}
			rows := lo.Map(d, func(item da.Item, _ int) string {
				if !item.Valued {
					return fmt.Sprintf("  %s\t%s", item.Type, item.Slot)
				}
				return fmt.Sprintf("  %s\t%s\t%s", item.Type, item.Slot, item.Value)
			})
			_, err = fmt.Fprintln(out, strings.Join(rows, "\n"))
			return err
		},
	}
	cmd.Flags().StringSliceVarP(&abstSlots, "abst-slots", "a", nil, "also print the DA delexicalized over these slots")
	return cmd
}
