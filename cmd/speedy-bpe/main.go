// Command speedy-bpe trains BPE subword vocabularies from pre-tokenized word
// corpora and applies trained models to encode and decode text.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
