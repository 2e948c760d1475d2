// Command seek searches for a word in a word list.
//
// The word list is read from a text file, or from stdin when no file is
// given. By default seek answers the presence question; with --index it
// reports the position of the first occurrence instead.
//
//	seek amet lorem.txt
//	seek --index amet lorem.txt
//	cat lorem.txt | seek amet
//
// Exit status is 0 when the word was found, 1 when it was not and 2 on
// usage or input errors.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/seek"
	"github.com/npillmayer/seek/wordlist"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// envPrefix defines the prefix used for environment variables that
// configure the CLI. For example:
//
//	SEEK_SORTED=true
//	SEEK_INDEX=true
const envPrefix = "SEEK"

func main() {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)

	config := viper.New()
	config.SetEnvPrefix(envPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()

	flagSet := pflag.NewFlagSet("seek", pflag.ContinueOnError)
	flagSet.SortFlags = false
	flagSet.Bool("index", false, "Report the position of the first occurrence instead of presence")
	flagSet.Bool("sorted", false, "Assert that the input words are already in ascending order")
	flagSet.Bool("quiet", false, "Suppress output, answer through the exit status only")
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, `seek - search for a word in a word list

Usage:
  seek [options] WORD [FILE]

Options:
`)
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	// Bind flags into the Viper instance so they can be overridden by
	// environment variables and still keep a single source of truth.
	if err := config.BindPFlags(flagSet); err != nil {
		fmt.Fprintf(os.Stderr, "seek: %v\n", err)
		os.Exit(2)
	}

	args := flagSet.Args()
	if len(args) < 1 || len(args) > 2 {
		flagSet.Usage()
		os.Exit(2)
	}
	word := args[0]

	list, err := loadList(args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "seek: %v\n", err)
		os.Exit(2)
	}

	kind := seek.CheckPresence
	if config.GetBool("index") {
		kind = seek.FindIndex
	}
	result := list.Search(word, kind, config.GetBool("sorted"))

	if !config.GetBool("quiet") {
		report(word, kind, result)
	}
	if !result.Found {
		os.Exit(1)
	}
}

// loadList reads the word list from the given file, or from stdin when no
// file argument is present.
func loadList(args []string) (*wordlist.List, error) {
	if len(args) == 0 {
		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return wordlist.FromString(string(input)), nil
	}
	list, err := wordlist.Load(args[0])
	if err != nil {
		return nil, err
	}
	if err := list.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// report prints a verdict line, colored when stdout is a terminal.
func report(word string, kind seek.Kind, result seek.Result) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
	found := color.New(color.FgGreen)
	missing := color.New(color.FgRed)
	switch {
	case kind == seek.FindIndex && result.Found:
		found.Printf("%s at index %d\n", word, result.Index)
	case kind == seek.FindIndex:
		missing.Printf("%s not found\n", word)
	case result.Found:
		found.Printf("%s is present\n", word)
	default:
		missing.Printf("%s is not present\n", word)
	}
}
