package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Shika-B/speedy-bpe/bpe"
)

var (
	// Decode command flags.
	decModel string
)

// newDecodeCmd creates the decode subcommand.
func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [token_ids...]",
		Short: "Decode token IDs to text",
		Long: `Decode token IDs back to text with a trained model.

Token IDs can be provided as arguments or piped from stdin, separated by any
whitespace. The output is the concatenated symbol text of the IDs; bare IDs
carry no word boundaries.`,
		Example: `  # Decode token IDs from arguments
  speedy-bpe decode --model model.json 12 7 3

  # Decode from encode output
  speedy-bpe encode --model model.json lower | speedy-bpe decode --model model.json`,
		RunE: runDecode,
	}

	cmd.Flags().StringVarP(&decModel, "model", "m", "model.json", "Path to the trained model")

	return cmd
}

func runDecode(_ *cobra.Command, args []string) error {
	model, err := bpe.LoadModel(decModel)
	if err != nil {
		return err
	}

	var ids []int
	if len(args) > 0 {
		for _, arg := range args {
			id, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid token ID %q: %w", arg, err)
			}
			ids = append(ids, id)
		}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			id, err := strconv.Atoi(scanner.Text())
			if err != nil {
				return fmt.Errorf("invalid token ID %q: %w", scanner.Text(), err)
			}
			ids = append(ids, id)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read from stdin: %w", err)
		}
	}

	if len(ids) == 0 {
		return fmt.Errorf("no token IDs provided")
	}

	text, err := model.DecodeIDs(ids)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}
