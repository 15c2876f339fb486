package bpe

// Encoder applies a trained model to new word sequences. It is safe for
// concurrent use: the model is read-only and the segmentation cache locks
// internally.
type Encoder struct {
	model *Model
	cache encodeCache
}

// NewEncoder creates an encoder for the given model.
func NewEncoder(m *Model, opts ...EncoderOption) (*Encoder, error) {
	cfg := encoderConfig{cacheSize: defaultCacheSize}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	e := &Encoder{model: m}
	if cfg.cacheSize > 0 {
		e.cache = newLRUCache(cfg.cacheSize)
	}
	return e, nil
}

// Encode segments words by replaying the model's merge tree over a fresh
// token stream. Words already in the cache are materialized directly in their
// final segmentation; only the remaining words take part in the replay, after
// which their segmentations are cached. Output is identical with and without
// the cache.
//
// Returns a SymbolError wrapping ErrUnknownSymbol if any character of the
// input has no vocabulary entry.
func (e *Encoder) Encode(words []string) (*TokenStream, error) {
	dummy := &tokenNode{id: sentinelID, wordID: -1}
	tail := dummy
	pairs := make(pairIndex)

	// The first node of each word survives every merge (merges absorb only
	// successors within one word), so it anchors the cache fill after replay.
	type pendingWord struct {
		word  string
		first *tokenNode
	}
	var pending []pendingWord

	for wordID, word := range words {
		if segs, ok := e.cached(word); ok {
			for _, seg := range segs {
				node := &tokenNode{text: seg.text, id: seg.id, wordID: wordID}
				tail.appendNode(node)
				tail = node
			}
			continue
		}

		var first *tokenNode
		for _, r := range word {
			id, ok := e.model.vocab.id(string(r))
			if !ok {
				return nil, NewSymbolError(string(r), word)
			}
			node := &tokenNode{text: string(r), id: id, wordID: wordID}
			if first == nil {
				first = node
			}
			if tail.wordID == node.wordID {
				pairs.add(Pair{Left: tail.id, Right: node.id}, tail)
			}
			tail.appendNode(node)
			tail = node
		}
		if first != nil {
			pending = append(pending, pendingWord{word: word, first: first})
		}
	}

	head := dummy.next
	if head != nil {
		head.prev = nil
	}

	// Replay with stats disabled; cached words have no pair index entries and
	// are never touched.
	for _, mg := range e.model.merges {
		if err := mergeStep(pairs, mg.Pair, mg.NewID, nil); err != nil {
			return nil, err
		}
	}

	for _, pw := range pending {
		segs := make([]cachedSegment, 0, 4)
		for n := pw.first; n != nil && n.wordID == pw.first.wordID; n = n.next {
			segs = append(segs, cachedSegment{text: n.text, id: n.id})
		}
		e.cacheResult(pw.word, segs)
	}

	return &TokenStream{head: head}, nil
}

// cached retrieves a memoized segmentation if caching is enabled.
func (e *Encoder) cached(word string) ([]cachedSegment, bool) {
	if e.cache == nil {
		return nil, false
	}
	return e.cache.get(word)
}

// cacheResult stores a word's segmentation for future lookups.
func (e *Encoder) cacheResult(word string, segs []cachedSegment) {
	if e.cache != nil {
		e.cache.put(word, segs)
	}
}

// Encode segments words with a one-shot, uncached encoder for the model.
func Encode(m *Model, words []string) (*TokenStream, error) {
	e, err := NewEncoder(m, WithCacheSize(0))
	if err != nil {
		return nil, err
	}
	return e.Encode(words)
}
