// Package bpe learns Byte-Pair Encoding subword vocabularies from
// pre-tokenized word corpora and applies them to encode and decode new text.
//
// Training repeatedly merges the most frequent adjacent symbol pair into a
// new compound symbol, producing a vocabulary (symbol text -> token id) and
// an ordered merge tree that deterministically reproduces the segmentation
// on fresh input.
//
// # Architecture
//
// The trainer is incremental: instead of rescanning the corpus for pair
// counts after every merge, it keeps three structures in lockstep and
// touches only the neighborhoods a merge disturbs:
//
//   - a doubly-linked token stream holding the current segmentation, with
//     in-place merge of a node and its successor;
//   - a pair index mapping each (left id, right id) pair to the nodes that
//     were at some point its left endpoint; it is append-only, so entries
//     can go stale and are re-validated when consumed;
//   - an indexed max-heap of pair counts supporting increment, decrement,
//     and delete by key in logarithmic time.
//
// Each merge pops the most frequent pair, fuses its surviving occurrences,
// and patches only the adjacent pair counts. Merges never cross word
// boundaries; words are delimited by the word id carried on every token.
//
// # Basic Usage
//
//	model, err := bpe.Train(words, 1000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Encode words to a token stream
//	stream, err := bpe.Encode(model, []string{"low", "lower"})
//
//	// Decode the stream back to words
//	words := stream.Words()
//
// For repeated encoding, create an Encoder: it memoizes per-word
// segmentations so repeated words skip the merge replay entirely.
//
//	enc, err := bpe.NewEncoder(model, bpe.WithCacheSize(8192))
//	stream, err := enc.Encode(words)
//
// # Error Handling
//
// The package defines sentinel errors (ErrUnknownSymbol, ErrUnknownTokenID,
// ErrInvalidModel) and typed wrappers (SymbolError, TokenError, ConfigError)
// carrying the failing operation's context. Encoding input whose characters
// were never seen at training time fails with ErrUnknownSymbol; decoding a
// well-formed stream never fails.
//
// # Concurrency
//
// Training state is confined to one trainer per Train call; train separate
// corpora with separate calls. Models are immutable once trained, and
// Encoders are safe for concurrent use.
package bpe
