// dictconv merges TSV dictionary files into one sorted dictionary and
// validates headwords against the RPA syllable inventory.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xyooj/hmong-go/lexicon"
	"github.com/xyooj/hmong-go/phonology"
)

func main() {
	builtin := flag.Bool("builtin", false, "include the builtin word list")
	validate := flag.Bool("validate", false, "warn about headwords that are not valid RPA syllables")
	out := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	if flag.NArg() == 0 && !*builtin {
		fmt.Fprintln(os.Stderr, "Usage: dictconv [-builtin] [-validate] [-out FILE] <tsv-files...>")
		fmt.Fprintln(os.Stderr, "  Merges TSV dictionaries (headword<TAB>gloss[, gloss...]).")
		fmt.Fprintln(os.Stderr, "  Supports glob patterns: dictconv words/*.tsv")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Expand glob patterns
	var files []string
	for _, arg := range flag.Args() {
		matches, err := filepath.Glob(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad pattern %q: %v\n", arg, err)
			os.Exit(1)
		}
		if matches == nil {
			// No glob match — treat as literal path
			files = append(files, arg)
		} else {
			files = append(files, matches...)
		}
	}

	merged := lexicon.New()
	if *builtin {
		merged = lexicon.Builtin()
	}
	for _, path := range files {
		d, err := lexicon.LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load %s: %v\n", path, err)
			os.Exit(1)
		}
		merged.Merge(d)
	}

	if *validate {
		invalid := 0
		for _, w := range merged.Words() {
			if !phonology.IsValidSyllable(w) {
				// Multi-syllable headwords validate per token.
				ok := true
				for _, tok := range phonology.Tokenize(w) {
					if !phonology.IsValidSyllable(tok) {
						ok = false
						break
					}
				}
				if !ok {
					fmt.Fprintf(os.Stderr, "invalid headword: %s\n", w)
					invalid++
				}
			}
		}
		fmt.Fprintf(os.Stderr, "%d of %d headwords invalid\n", invalid, merged.Len())
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "create %s: %v\n", *out, err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	if err := merged.Write(w); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Merged %d entries from %d files\n", merged.Len(), len(files))
}
