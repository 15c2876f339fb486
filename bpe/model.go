package bpe

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Model is a trained BPE model: the learned vocabulary plus the ordered merge
// tree that deterministically reproduces its segmentation on new input.
type Model struct {
	vocab  *vocabulary
	merges []Merge
}

func newModel(vocab *vocabulary, merges []Merge) *Model {
	return &Model{vocab: vocab, merges: merges}
}

// VocabSize reports the number of token ids in the vocabulary.
func (m *Model) VocabSize() int {
	return m.vocab.size()
}

// TokenID returns the token id for the given symbol text.
func (m *Model) TokenID(text string) (int, bool) {
	return m.vocab.id(text)
}

// TokenText returns the symbol text for the given token id.
func (m *Model) TokenText(id int) (string, bool) {
	return m.vocab.text(id)
}

// Vocab returns a copy of the symbol -> token id mapping.
func (m *Model) Vocab() map[string]int {
	vocab := make(map[string]int, len(m.vocab.byText))
	for text, id := range m.vocab.byText {
		vocab[text] = id
	}
	return vocab
}

// Merges returns a copy of the merge tree in merge order.
func (m *Model) Merges() []Merge {
	merges := make([]Merge, len(m.merges))
	copy(merges, m.merges)
	return merges
}

// DecodeIDs joins the symbol text of the given token ids. Word boundaries are
// not recoverable from bare ids; use a TokenStream to reconstruct words.
// Returns a TokenError for an id with no vocabulary entry.
func (m *Model) DecodeIDs(ids []int) (string, error) {
	var text strings.Builder
	for _, id := range ids {
		s, ok := m.vocab.text(id)
		if !ok {
			return "", NewTokenIDError("decode", id, ErrUnknownTokenID)
		}
		text.WriteString(s)
	}
	return text.String(), nil
}

// modelJSON is the on-disk layout of a saved model: the vocabulary as the
// id-ordered token list and the merge tree as (left, right, new id) triples.
type modelJSON struct {
	Vocab  []string `json:"vocab"`
	Merges [][3]int `json:"merges"`
}

// Save writes the model to path as JSON.
func (m *Model) Save(path string) error {
	doc := modelJSON{
		Vocab:  append([]string(nil), m.vocab.byID...),
		Merges: make([][3]int, len(m.merges)),
	}
	for i, mg := range m.merges {
		doc.Merges[i] = [3]int{mg.Pair.Left, mg.Pair.Right, mg.NewID}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal model: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write model file %s: %w", path, err)
	}
	return nil
}

// LoadModel reads a model saved by Save and validates it: every merge must
// reference earlier ids and carry the id its position implies, and ids
// produced by merges must concatenate their operands' text.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model file %s: %w", path, err)
	}
	var doc modelJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse model file %s: %w", path, err)
	}

	vocab := newVocabulary()
	for _, text := range doc.Vocab {
		if text == "" {
			return nil, fmt.Errorf("%w: empty vocabulary entry", ErrInvalidModel)
		}
		vocab.assign(text)
	}

	numInitial := len(doc.Vocab) - len(doc.Merges)
	if numInitial < 0 {
		return nil, fmt.Errorf("%w: more merges than vocabulary entries", ErrInvalidModel)
	}

	merges := make([]Merge, len(doc.Merges))
	for i, triple := range doc.Merges {
		left, right, newID := triple[0], triple[1], triple[2]
		if newID != numInitial+i {
			return nil, fmt.Errorf("%w: merge %d assigns id %d, want %d", ErrInvalidModel, i, newID, numInitial+i)
		}
		if left < 0 || left >= newID || right < 0 || right >= newID {
			return nil, fmt.Errorf("%w: merge %d references ids (%d, %d) out of range", ErrInvalidModel, i, left, right)
		}
		if doc.Vocab[newID] != doc.Vocab[left]+doc.Vocab[right] {
			return nil, fmt.Errorf("%w: merge %d text %q does not concatenate (%q, %q)",
				ErrInvalidModel, i, doc.Vocab[newID], doc.Vocab[left], doc.Vocab[right])
		}
		merges[i] = Merge{Pair: Pair{Left: left, Right: right}, NewID: newID}
	}

	return newModel(vocab, merges), nil
}
