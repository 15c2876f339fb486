package bpe

import "testing"

func benchCorpus() []string {
	return randomWords(42, 2000, 8, "abcdefgh")
}

func BenchmarkTrain(b *testing.B) {
	words := benchCorpus()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Train(words, 200); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	words := benchCorpus()
	model, err := Train(words, 200)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Encode(model, words); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeCached(b *testing.B) {
	words := benchCorpus()
	model, err := Train(words, 200)
	if err != nil {
		b.Fatal(err)
	}
	enc, err := NewEncoder(model)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := enc.Encode(words); err != nil {
			b.Fatal(err)
		}
	}
}
