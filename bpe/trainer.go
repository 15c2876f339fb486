package bpe

import (
	"errors"
	"fmt"

	"github.com/Shika-B/speedy-bpe/internal/multiheap"
)

// progressInterval is how often VerboseProgress reports during training.
const progressInterval = 100

// Merge records one executed merge: the pair that was fused and the id
// assigned to the fused symbol.
type Merge struct {
	Pair  Pair
	NewID int
}

// trainer owns all mutable training state: the token stream, the pair index,
// the pair-count heap, and the growing vocabulary and merge tree. Instances
// are not shared; training separate corpora concurrently requires separate
// trainers.
type trainer struct {
	cfg    trainConfig
	vocab  *vocabulary
	head   *tokenNode
	pairs  pairIndex
	stats  *multiheap.Heap[Pair]
	merges []Merge
}

// Train learns up to numMerges BPE merges from the given pre-tokenized words
// and returns the resulting model. Each word is a sequence of characters;
// zero-length words contribute nothing. Training ends early once no adjacent
// pair remains to merge.
func Train(words []string, numMerges int, opts ...TrainOption) (*Model, error) {
	cfg := defaultTrainConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	t, err := newTrainer(words, cfg)
	if err != nil {
		return nil, err
	}
	if err := t.run(numMerges); err != nil {
		return nil, err
	}
	return newModel(t.vocab, t.merges), nil
}

// newTrainer builds the initial vocabulary and populates the stream, the
// pair index, and the pair-count heap.
func newTrainer(words []string, cfg trainConfig) (*trainer, error) {
	t := &trainer{
		cfg:   cfg,
		vocab: initialVocab(words),
		stats: multiheap.New[Pair](),
	}
	var err error
	t.head, t.pairs, err = buildStream(words, t.vocab, t.stats)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// run executes the merge loop: pop the most frequent pair, fuse its
// occurrences in place, and grow the vocabulary and merge tree.
func (t *trainer) run(numMerges int) error {
	for i := 0; i < numMerges; i++ {
		if t.cfg.verbosity >= VerboseProgress && i%progressInterval == 0 {
			fmt.Fprintf(t.cfg.diag, "finalized %d merges\n", i)
		}

		count, pair, err := t.stats.PopMax()
		if err != nil {
			if errors.Is(err, multiheap.ErrEmpty) {
				break
			}
			return err
		}

		if t.cfg.verbosity >= VerboseTrace {
			left, _ := t.vocab.text(pair.Left)
			right, _ := t.vocab.text(pair.Right)
			fmt.Fprintf(t.cfg.diag, "merging pair (%q, %q) with count %d\n", left, right, count)
		}

		newID := t.vocab.size()
		if err := mergeStep(t.pairs, pair, newID, t.stats); err != nil {
			return err
		}

		left, _ := t.vocab.text(pair.Left)
		right, _ := t.vocab.text(pair.Right)
		t.vocab.assign(left + right)
		t.merges = append(t.merges, Merge{Pair: pair, NewID: newID})
	}
	return nil
}

// buildStream lays out one node per character, linked consecutively across
// word boundaries, and records every same-word adjacent pair in a fresh pair
// index. When stats is non-nil each recorded pair also increments its heap
// count. Returns a SymbolError if a character has no vocabulary entry.
func buildStream(words []string, vocab *vocabulary, stats *multiheap.Heap[Pair]) (*tokenNode, pairIndex, error) {
	dummy := &tokenNode{id: sentinelID, wordID: -1}
	node := dummy
	pairs := make(pairIndex)

	for wordID, word := range words {
		for _, r := range word {
			id, ok := vocab.id(string(r))
			if !ok {
				return nil, nil, NewSymbolError(string(r), word)
			}
			tok := &tokenNode{text: string(r), id: id, wordID: wordID}
			node.appendNode(tok)
			if node.wordID == tok.wordID {
				pair := Pair{Left: node.id, Right: tok.id}
				pairs.add(pair, node)
				if stats != nil {
					stats.Add(pair, 1)
				}
			}
			node = tok
		}
	}

	head := dummy.next
	if head != nil {
		head.prev = nil
	}
	return head, pairs, nil
}

// mergeStep fuses every live occurrence of pair into a single token carrying
// newID, patching the pair index and, when stats is non-nil, the counts of
// the disturbed neighborhoods.
//
// Candidates come from a snapshot of the pair's bag and may be stale: a node
// qualifies only if it still heads a live occurrence of the pair within one
// word. For each occurrence, the left and right neighbor pairs are re-pointed
// at the fused token before the in-place merge. Counts for the merged pair
// itself are never touched here; the popped key was already drained and its
// remaining occurrences are exactly the ones this loop consumes. Decrements
// skip neighborhoods that themselves form the merged pair, since those
// occurrences are consumed by this same loop.
func mergeStep(pairs pairIndex, pair Pair, newID int, stats *multiheap.Heap[Pair]) error {
	for _, n := range pairs.snapshot(pair) {
		if n.next == nil || n.id != pair.Left || n.next.id != pair.Right {
			continue
		}
		if n.wordID != n.next.wordID {
			continue
		}

		if p := n.prev; p != nil && p.wordID == n.wordID {
			pairs.add(Pair{Left: p.id, Right: newID}, p)
			if stats != nil {
				stats.Add(Pair{Left: p.id, Right: newID}, 1)
				if old := (Pair{Left: p.id, Right: n.id}); old != pair {
					if err := stats.Sub(old, 1); err != nil {
						return fmt.Errorf("patch left neighborhood of pair (%d, %d): %w", pair.Left, pair.Right, err)
					}
				}
			}
		}

		if q := n.next.next; q != nil && n.next.wordID == q.wordID {
			pairs.add(Pair{Left: newID, Right: q.id}, n)
			if stats != nil {
				stats.Add(Pair{Left: newID, Right: q.id}, 1)
				if old := (Pair{Left: n.next.id, Right: q.id}); old != pair {
					if err := stats.Sub(old, 1); err != nil {
						return fmt.Errorf("patch right neighborhood of pair (%d, %d): %w", pair.Left, pair.Right, err)
					}
				}
			}
		}

		n.mergeWithNext(newID)
	}
	return nil
}
