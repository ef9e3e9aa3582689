package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trknhr/phraseguess/internal/score"
	"github.com/trknhr/phraseguess/internal/token"
)

func newTopCmd(opts *rootOptions) *cobra.Command {
	var (
		context string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "top",
		Short: "List the words that most often complete the context",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := score.NormalizePattern([]string{context})
			if len(pattern) == 0 {
				return score.ErrEmptyPattern
			}
			rank, err := opts.rankOptions(limit)
			if err != nil {
				return err
			}

			c, err := opts.loadCorpus(cmd.Context(), pattern, rank.Span)
			if err != nil {
				return err
			}
			results, err := score.NewScorer(c).Distribution(pattern, rank)
			if errors.Is(err, score.ErrNoData) {
				fmt.Fprintf(cmd.OutOrStdout(), "no data for %q\n", token.Join(pattern))
				return nil
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				line := fmt.Sprintf("  %s %.2f%%", r.Text, r.Score)
				if r.Stopword {
					line += " STOPWORD"
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&context, "context", "c", "", "context words next to the guess")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of entries (0 = all)")
	_ = cmd.MarkFlagRequired("context")
	return cmd
}
