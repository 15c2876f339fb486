package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Shika-B/speedy-bpe/bpe"
	"github.com/Shika-B/speedy-bpe/internal/corpus"
)

var (
	// Train command flags.
	trainMerges int
	trainModel  string
	trainTrace  int
)

// newTrainCmd creates the train subcommand.
func newTrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train [corpus]",
		Short: "Learn a BPE model from a word corpus",
		Long: `Learn a BPE model from a pre-tokenized word corpus.

The corpus is a text file of whitespace-separated words. If no file is given,
the corpus is read from stdin. Training performs up to --merges merges,
stopping early when no adjacent pair is left to merge, and writes the
resulting model to --model as JSON.

The --trace flag controls the trainer's own diagnostics on stderr:
  0 - silent (default)
  1 - progress every 100 merges
  2 - per-merge trace`,
		Example: `  # Train 1000 merges from a corpus file
  speedy-bpe train --merges 1000 --model model.json corpus.txt

  # Train from stdin with per-merge tracing
  cat corpus.txt | speedy-bpe train --merges 50 --trace 2 --model model.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTrain,
	}

	cmd.Flags().IntVarP(&trainMerges, "merges", "k", 1000, "Number of merges to learn")
	cmd.Flags().StringVarP(&trainModel, "model", "m", "model.json", "Output path for the trained model")
	cmd.Flags().IntVar(&trainTrace, "trace", 0, "Trainer diagnostic level: 0, 1, or 2")

	return cmd
}

func runTrain(_ *cobra.Command, args []string) error {
	var words []string
	var err error
	if len(args) > 0 {
		words, err = corpus.Load(args[0])
	} else {
		words, err = corpus.Read(os.Stdin)
	}
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return fmt.Errorf("corpus contains no words")
	}
	logger.Info().Int("words", len(words)).Msg("corpus loaded")

	start := time.Now()
	model, err := bpe.Train(words, trainMerges, bpe.WithVerbosity(trainTrace))
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}
	logger.Info().
		Int("merges", len(model.Merges())).
		Int("vocab_size", model.VocabSize()).
		Dur("elapsed", time.Since(start)).
		Msg("training complete")

	if err := model.Save(trainModel); err != nil {
		return err
	}
	logger.Info().Str("path", trainModel).Msg("model saved")
	return nil
}
