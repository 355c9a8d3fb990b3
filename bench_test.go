package jgram_test

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/creachadair/jgram"
)

func BenchmarkParse(b *testing.B) {
	input, err := os.ReadFile("testdata/input.json")
	if err != nil {
		b.Fatalf("Reading test input: %v", err)
	}
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Unmarshal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v any
			if err := json.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Parser", func(b *testing.B) {
		p := jgram.NewParser()
		for i := 0; i < b.N; i++ {
			if _, err := p.ParseObject(bytes.NewReader(input)); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}

func BenchmarkFormat(b *testing.B) {
	input, err := os.ReadFile("testdata/input.json")
	if err != nil {
		b.Fatalf("Reading test input: %v", err)
	}
	v, err := jgram.NewParser().ParseObject(bytes.NewReader(input))
	if err != nil {
		b.Fatalf("Parsing test input: %v", err)
	}

	b.Run("Compact", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			jgram.FormatToString(v)
		}
	})
	b.Run("Indented", func(b *testing.B) {
		f := jgram.Formatter{Multiline: true, Indented: true}
		for i := 0; i < b.N; i++ {
			f.FormatToString(v)
		}
	})
}
