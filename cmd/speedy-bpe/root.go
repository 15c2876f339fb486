package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Persistent flags.
	flagVerbose bool

	// logger is the process-level operational logger, configured by the root
	// command before any subcommand runs.
	logger zerolog.Logger
)

// newRootCmd creates the speedy-bpe command tree.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "speedy-bpe",
		Short: "Train and apply BPE subword vocabularies",
		Long: `Learn a Byte-Pair Encoding subword vocabulary from a pre-tokenized word
corpus, and use the trained model to encode and decode text.

Training repeatedly merges the most frequent adjacent symbol pair; the
resulting model holds the vocabulary and the ordered merge rules and can be
saved to and loaded from a JSON file.

Available commands:
  train  - Learn a model from a word corpus
  encode - Encode words to token IDs with a trained model
  decode - Decode token IDs back to text
  info   - Display information about a trained model`,
		Example: `  # Train 1000 merges on a corpus and save the model
  speedy-bpe train --merges 1000 --model model.json corpus.txt

  # Encode words
  speedy-bpe encode --model model.json low lower

  # Decode token IDs
  speedy-bpe encode --model model.json low | speedy-bpe decode --model model.json

  # Show model info
  speedy-bpe info --model model.json`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := zerolog.InfoLevel
			if flagVerbose {
				level = zerolog.DebugLevel
			}
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newTrainCmd(),
		newEncodeCmd(),
		newDecodeCmd(),
		newInfoCmd(),
	)

	return cmd
}
