// Command fuzzy computes the edit-distance alignment between a pattern and
// a piece of text and prints the score and an inline diff of the optimal
// alignment.
//
// By default PATTERN and TEXT are read as file paths; pass -inline to treat
// them as literal strings instead.
//
// Usage:
//
//	fuzzy [-inline] PATTERN TEXT
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/samroberts/fuzzygo"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("fuzzy: ")

	inline := flag.Bool("inline", false, "treat PATTERN and TEXT as literal strings instead of file paths")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-inline] PATTERN TEXT\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	pattrn, text, err := readArgs(flag.Arg(0), flag.Arg(1), *inline)
	if err != nil {
		log.Fatal(err)
	}

	result, err := fuzzygo.SolveRegex(pattrn, text)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("score: %d\n", result.Score)
	fmt.Println(result.Diff())
}

func readArgs(pattrnArg, textArg string, inline bool) (pattrn, text string, err error) {
	if inline {
		return pattrnArg, textArg, nil
	}

	patBytes, err := os.ReadFile(pattrnArg)
	if err != nil {
		return "", "", fmt.Errorf("reading pattern file %q: %w", pattrnArg, err)
	}
	textBytes, err := os.ReadFile(textArg)
	if err != nil {
		return "", "", fmt.Errorf("reading text file %q: %w", textArg, err)
	}
	return string(patBytes), string(textBytes), nil
}
