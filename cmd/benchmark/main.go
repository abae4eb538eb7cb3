package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kerem-kaynak/phrase-matcher/pkg/phrase"
)

const (
	iterations = 20000
	warmup     = 500
	boxWidth   = 62

	// ANSI color codes
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

var line = strings.Repeat("─", boxWidth)

var defaultPhrases = []string{
	"Analysis paralysis",
	"Bicycle shed",
	"Stovepipe or Silos",
	"Vendor lock-in",
	"Smoke and mirrors",
	"Copy and paste programming",
	"Golden hammer",
}

const page = `<html><head><title>Anti-patterns</title></head><body>
<!-- Golden hammer in a comment -->
<ul><li class="golden hammer">golden hammer</li><li>analysis not paralysis</li>
<li><b>Analysis</b> <i>paralysis</i></li><li>copy of copy and paste programming</li></ul>
<p>Vendor lock-in, smoke and mirrors and a bicycle shed.</p></body></html>`

func main() {
	phrases := defaultPhrases
	if len(os.Args) > 1 {
		loaded, err := phrase.LoadPhrases(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		phrases = loaded
	}

	fmt.Print("Building matcher... ")
	start := time.Now()
	m, err := phrase.NewBuilder().IgnoreCase().AddPhrases(phrases).Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cached, err := phrase.NewBuilder().IgnoreCase().WithCache(4096).AddPhrases(phrases).Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("done (%d phrases, %d first words in %v)\n", m.Size(), m.RootCount(), time.Since(start).Round(time.Microsecond))
	fmt.Printf("Iterations: %d (warmup: %d)\n", iterations, warmup)
	fmt.Println("Reference: 1 second = 1,000,000,000 ns")
	fmt.Println()

	sentence := "the movie golden eye is great. But don't copy of copy and paste programming"
	bigPage := strings.Repeat(page, 20)

	printHeader("FULL PIPELINE THROUGHPUT")
	bench("Sentence (14 words)", func() { m.ParseText(sentence) })
	bench("HTML page", func() { m.ParseText(page) })
	bench("HTML page x20", func() { m.ParseText(bigPage) })
	bench("HTML page x20 (cached)", func() { cached.ParseText(bigPage) })
	printFooter()
	fmt.Println()

	printHeader("COMPONENT BREAKDOWN")
	bench("Tokenize page", func() { phrase.Tokenize(page) })
	bench("Root lookup (hit)", func() { m.LookupRoot("golden") })
	bench("Root lookup (miss)", func() { m.LookupRoot("silver") })
	bench("Build matcher", func() {
		_, _ = phrase.NewBuilder().IgnoreCase().AddPhrases(phrases).Build()
	})
	printFooter()
	fmt.Println()

	printHeader("NORMALIZER STEPS BREAKDOWN")
	bench("Lowercase", func() { phrase.Lowercase("Paralysis") })
	bench("Fold case", func() { phrase.FoldCase("Straße") })
	bench("NFKC", func() { phrase.NFKC("ﬁle") })
	bench("Remove control chars", func() { phrase.RemoveControlChars("Paralysis") })
	bench("Normalize quotes", func() { phrase.NormalizeQuotes("\u201Cdon\u2019t\u201D") })
	printFooter()
}

func bench(name string, fn func()) {
	for i := 0; i < warmup; i++ {
		fn()
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		fn()
	}
	elapsed := time.Since(start)

	opsPerSec := float64(iterations) / elapsed.Seconds()
	nsPerOp := float64(elapsed.Nanoseconds()) / float64(iterations)

	label := name
	if len(label) > 26 {
		label = label[:26]
	}
	// Pad on the uncolored width; escape codes take no columns.
	width := len(fmt.Sprintf("  %-26s %10.0f ops/sec %8.0f ns", label, opsPerSec, nsPerOp))
	row := fmt.Sprintf("  %-26s %s%10.0f%s ops/sec %s%8.0f%s ns",
		label, colorGreen, opsPerSec, colorReset, colorYellow, nsPerOp, colorReset)
	if width < boxWidth {
		row += strings.Repeat(" ", boxWidth-width)
	}
	boxRow(row)
}

func boxRow(content string) {
	fmt.Println(colorDim + "│" + colorReset + content + colorDim + "│" + colorReset)
}

func printHeader(title string) {
	fmt.Println(colorDim + "┌" + line + "┐" + colorReset)
	title = "  " + title
	if pad := boxWidth - len(title); pad > 0 {
		title += strings.Repeat(" ", pad)
	}
	boxRow(colorCyan + title + colorReset)
	fmt.Println(colorDim + "├" + line + "┤" + colorReset)
}

func printFooter() {
	fmt.Println(colorDim + "└" + line + "┘" + colorReset)
}
