package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kerem-kaynak/phrase-matcher/pkg/phrase"
)

func main() {
	if len(os.Args) < 3 {
		printUsage()
		os.Exit(1)
	}

	listPath := os.Args[1]
	command := os.Args[2]

	list, err := phrase.OpenPhraseList(listPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading phrase list: %v\n", err)
		os.Exit(1)
	}

	switch command {
	case "add":
		if len(os.Args) < 4 {
			fmt.Println("Error: add requires at least one phrase")
			os.Exit(1)
		}
		for _, p := range os.Args[3:] {
			if list.Add(p) {
				fmt.Printf("Added: %s\n", p)
			} else {
				fmt.Printf("Skipped (blank or present): %q\n", p)
			}
		}
		save(list)
		fmt.Printf("Total phrases: %d\n", list.Count())

	case "remove":
		if len(os.Args) < 4 {
			fmt.Println("Error: remove requires at least one phrase")
			os.Exit(1)
		}
		for _, p := range os.Args[3:] {
			if list.Remove(p) {
				fmt.Printf("Removed: %s\n", p)
			} else {
				fmt.Printf("Not found: %s\n", p)
			}
		}
		save(list)
		fmt.Printf("Total phrases: %d\n", list.Count())

	case "contains":
		if len(os.Args) < 4 {
			fmt.Println("Error: contains requires a phrase")
			os.Exit(1)
		}
		p := strings.Join(os.Args[3:], " ")
		if list.Contains(p) {
			fmt.Printf("'%s' exists in phrase list\n", p)
		} else {
			fmt.Printf("'%s' NOT in phrase list\n", p)
			os.Exit(1)
		}

	case "stats":
		m, err := list.Matcher(nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building matcher: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Phrase list: %s\n", listPath)
		fmt.Printf("Phrase count: %d\n", list.Count())
		fmt.Printf("Distinct first words: %d\n", m.RootCount())

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func save(list *phrase.PhraseList) {
	if err := list.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving phrase list: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: phraselist <phrases.txt> <command> [args...]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  add <phrase> [phrase...]    Add phrases to the list")
	fmt.Println("  remove <phrase> [phrase...] Remove phrases from the list")
	fmt.Println("  contains <words...>         Check if a phrase exists")
	fmt.Println("  stats                       Show phrase list statistics")
}
