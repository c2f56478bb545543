//go:build ignore

// Package main generates synthetic prose corpora for benchmarking.
// Usage: go run scripts/generate-test-corpus.go -files 200 -output testdata/bench
//
// Each file is plain paragraphs with the marker terms sown at a known
// rate. The tool prints per-term totals on exit so slicing runs over the
// corpus can be sanity-checked:
//
//	textmark stats error timeout --file testdata/bench/prose_0001.txt
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

var (
	numFiles   = flag.Int("files", 200, "Number of files to generate")
	outputDir  = flag.String("output", "testdata/bench", "Output directory")
	seed       = flag.Int64("seed", 42, "Random seed for reproducibility")
	paragraphs = flag.Int("paragraphs", 12, "Paragraphs per file")
	termRate   = flag.Float64("term-rate", 0.04, "Probability that a word slot becomes a marker term")
	termList   = flag.String("terms", "error,timeout,retry,cache,socket", "Comma-separated marker terms to sow")
)

// Filler vocabulary. Deliberately free of the default marker terms so
// sown occurrences are the only hits.
var fillers = []string{
	"the", "a", "this", "that", "each", "every", "some", "another",
	"service", "request", "response", "handler", "message", "packet",
	"queue", "buffer", "stream", "record", "batch", "window",
	"arrives", "departs", "waits", "drains", "fills", "settles",
	"before", "after", "during", "until", "while", "between",
	"quickly", "slowly", "eventually", "rarely", "often", "again",
	"upstream", "downstream", "inbound", "outbound", "local", "remote",
	"system", "process", "worker", "client", "server", "broker",
	"reads", "writes", "holds", "drops", "sends", "receives",
	"quietly", "loudly", "badly", "cleanly", "partially", "fully",
}

func main() {
	flag.Parse()
	rng := rand.New(rand.NewSource(*seed))

	terms := splitTerms(*termList)
	if len(terms) == 0 {
		fmt.Fprintln(os.Stderr, "Error: -terms must name at least one term")
		os.Exit(1)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generating %d files in %s...\n", *numFiles, *outputDir)

	sown := make(map[string]int)
	generated := 0
	totalBytes := 0

	for i := 0; i < *numFiles; i++ {
		content := generateFile(rng, terms, sown)
		name := filepath.Join(*outputDir, fmt.Sprintf("prose_%04d.txt", i))
		if err := os.WriteFile(name, []byte(content), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", name, err)
			continue
		}
		generated++
		totalBytes += len(content)
	}

	fmt.Printf("Generated %d files (%d bytes).\n", generated, totalBytes)
	fmt.Println("Sown term occurrences:")
	for _, term := range terms {
		fmt.Printf("  %-12s %d\n", term, sown[term])
	}
}

func splitTerms(s string) []string {
	var terms []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// generateFile builds one file of paragraphs and records how many marker
// terms it sowed into the sown map.
func generateFile(rng *rand.Rand, terms []string, sown map[string]int) string {
	var b strings.Builder

	for p := 0; p < *paragraphs; p++ {
		sentences := 3 + rng.Intn(4)
		for s := 0; s < sentences; s++ {
			writeSentence(&b, rng, terms, sown)
		}
		b.WriteString("\n\n")
	}

	return b.String()
}

func writeSentence(b *strings.Builder, rng *rand.Rand, terms []string, sown map[string]int) {
	words := 8 + rng.Intn(9)
	for w := 0; w < words; w++ {
		word := fillers[rng.Intn(len(fillers))]
		if rng.Float64() < *termRate {
			term := terms[rng.Intn(len(terms))]
			sown[term]++
			word = term
			// Vary the casing occasionally so case-folding paths get real work.
			if rng.Intn(4) == 0 {
				word = strings.ToUpper(word[:1]) + word[1:]
			}
		}
		if w == 0 {
			word = strings.ToUpper(word[:1]) + word[1:]
		}
		b.WriteString(word)
		if w < words-1 {
			b.WriteByte(' ')
		}
	}
	b.WriteString(". ")
}
