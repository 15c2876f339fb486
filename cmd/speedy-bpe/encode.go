package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Shika-B/speedy-bpe/bpe"
	"github.com/Shika-B/speedy-bpe/internal/corpus"
)

var (
	// Encode command flags.
	encModel     string
	encOutput    string
	encCount     bool
	encCountOnly bool
)

// newEncodeCmd creates the encode subcommand.
func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [words...]",
		Short: "Encode words to token IDs",
		Long: `Encode words into token IDs with a trained model.

Words can be provided as arguments or piped from stdin (whitespace
separated). Every character of the input must be part of the model's
vocabulary.

The output format can be:
  - space: Space-separated token IDs (default)
  - newline: One token ID per line
  - json: JSON array of token IDs`,
		Example: `  # Encode words given as arguments
  speedy-bpe encode --model model.json low lower

  # Encode a whole corpus from stdin
  cat corpus.txt | speedy-bpe encode --model model.json

  # Output as JSON
  speedy-bpe encode --model model.json --output json low

  # Show only the token count
  speedy-bpe encode --model model.json --count-only low lower`,
		RunE: runEncode,
	}

	cmd.Flags().StringVarP(&encModel, "model", "m", "model.json", "Path to the trained model")
	cmd.Flags().StringVarP(&encOutput, "output", "o", "space", "Output format: space, newline, json")
	cmd.Flags().BoolVar(&encCount, "count", false, "Show token count with output")
	cmd.Flags().BoolVar(&encCountOnly, "count-only", false, "Show only token count (no tokens)")

	return cmd
}

func runEncode(_ *cobra.Command, args []string) error {
	model, err := bpe.LoadModel(encModel)
	if err != nil {
		return err
	}
	logger.Debug().Str("path", encModel).Int("vocab_size", model.VocabSize()).Msg("model loaded")

	words := args
	if len(words) == 0 {
		words, err = corpus.Read(os.Stdin)
		if err != nil {
			return err
		}
	}
	if len(words) == 0 {
		return fmt.Errorf("no words provided")
	}

	stream, err := bpe.Encode(model, words)
	if err != nil {
		return fmt.Errorf("encoding failed: %w", err)
	}
	ids := stream.IDs()

	if encCountOnly {
		fmt.Println(len(ids))
		return nil
	}

	switch encOutput {
	case "space":
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = fmt.Sprint(id)
		}
		fmt.Println(strings.Join(parts, " "))
	case "newline":
		for _, id := range ids {
			fmt.Println(id)
		}
	case "json":
		data, err := json.Marshal(ids)
		if err != nil {
			return fmt.Errorf("marshal token IDs: %w", err)
		}
		fmt.Println(string(data))
	default:
		return fmt.Errorf("unknown output format %q (want space, newline, or json)", encOutput)
	}

	if encCount {
		fmt.Fprintf(os.Stderr, "tokens: %d\n", len(ids))
	}
	return nil
}
