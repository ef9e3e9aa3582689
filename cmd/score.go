package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trknhr/phraseguess/internal/score"
	"github.com/trknhr/phraseguess/internal/token"
)

func newScoreCmd(opts *rootOptions) *cobra.Command {
	var context string

	cmd := &cobra.Command{
		Use:   "score <word...>",
		Short: "Print how often a word completes the context",
		Example: `  phraseguess score --corpus book.txt --context "much of a" muchness
  phraseguess score --corpus book.txt --lemmatize --context "the" cats
  phraseguess score --source phrasefinder --before --context "fit" hissy`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := score.NormalizePattern([]string{context})
			if len(pattern) == 0 {
				return score.ErrEmptyPattern
			}
			target := strings.Join(args, " ")
			words := token.Words(target)
			if len(words) == 0 {
				return score.ErrEmptyTarget
			}

			c, err := opts.loadCorpus(cmd.Context(), pattern, len(words))
			if err != nil {
				return err
			}
			pct, err := opts.scoreTarget(score.NewScorer(c), pattern, words)
			if errors.Is(err, score.ErrNoData) {
				fmt.Fprintf(cmd.OutOrStdout(), "no data for %q\n", token.Join(pattern))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %.2f%%\n", token.Join(words), pct)
			return nil
		},
	}
	cmd.Flags().StringVarP(&context, "context", "c", "", "context words next to the guess")
	_ = cmd.MarkFlagRequired("context")
	return cmd
}

// scoreTarget is ScoreIn, or with --lemmatize or --dictionary the target's
// share of the filtered distribution, so score agrees with top.
func (o *rootOptions) scoreTarget(s *score.Scorer, pattern, words []string) (float64, error) {
	if !o.cfg.Lemmatize && o.cfg.Dictionary == "" {
		return s.ScoreIn(pattern, token.Join(words), o.direction())
	}
	rank, err := o.rankOptions(0)
	if err != nil {
		return 0, err
	}
	rank.Span = len(words)
	results, err := s.Distribution(pattern, rank)
	if err != nil {
		return 0, err
	}

	key := words
	if rank.Lemmatizer != nil {
		key = make([]string, len(words))
		for i, w := range words {
			key[i] = rank.Lemmatizer.Lemma(w)
		}
	}
	want := token.Join(key)
	for _, r := range results {
		if r.Text == want {
			return r.Score, nil
		}
	}
	return 0, nil
}
