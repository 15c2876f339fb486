package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shika-B/speedy-bpe/bpe"
)

var (
	// Info command flags.
	infoModel  string
	infoMerges int
)

// newInfoCmd creates the info subcommand.
func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Display information about a trained model",
		Long: `Display information about a trained model: vocabulary size, merge count,
and the first learned merge rules.`,
		Example: `  # Show model information
  speedy-bpe info --model model.json`,
		RunE: runInfo,
	}

	cmd.Flags().StringVarP(&infoModel, "model", "m", "model.json", "Path to the trained model")
	cmd.Flags().IntVar(&infoMerges, "show-merges", 10, "Number of merge rules to display")

	return cmd
}

func runInfo(_ *cobra.Command, _ []string) error {
	model, err := bpe.LoadModel(infoModel)
	if err != nil {
		return err
	}

	merges := model.Merges()
	fmt.Printf("Model: %s\n", infoModel)
	fmt.Printf("Vocabulary size: %d\n", model.VocabSize())
	fmt.Printf("Learned merges:  %d\n", len(merges))

	show := infoMerges
	if show > len(merges) {
		show = len(merges)
	}
	if show > 0 {
		fmt.Println()
		fmt.Println("First merges:")
		for _, mg := range merges[:show] {
			left, _ := model.TokenText(mg.Pair.Left)
			right, _ := model.TokenText(mg.Pair.Right)
			merged, _ := model.TokenText(mg.NewID)
			fmt.Printf("  (%q, %q) -> %d %q\n", left, right, mg.NewID, merged)
		}
	}
	return nil
}
