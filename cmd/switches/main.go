package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"strconv"
	"strings"

	switches "github.com/rjbs/go-switches"
)

// me stores the program name we consider ourselves to be running as.
//
var me = "switches"

// aliasFlag collects repeatable 'name=canonical' mappings.
//
type aliasFlag map[string]string

func (a aliasFlag) String() string {
	pairs := make([]string, 0, len(a))
	for name, canon := range a {
		pairs = append(pairs, name+"="+canon)
	}
	return strings.Join(pairs, ",")
}

func (a aliasFlag) Set(s string) error {
	name, canon, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("alias '%s': expecting name=canonical", s)
	}
	a[name] = canon
	return nil
}

// showUsage prints a terse usage string.
//
//goland:noinspection GoUnhandledErrorResult // fmt.*
func showUsage() {
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "       %s [option ...] [text ...]\n", me)
	fmt.Fprintln(os.Stderr, "Parses text given as arguments, else read from stdin,")
	fmt.Fprintln(os.Stderr, "printing one parsed unit per line, fields quoted.")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  -c, --colon")
	fmt.Fprintln(os.Stderr, "        Parse colonstrings instead of switches")
	fmt.Fprintln(os.Stderr, "  -l, --literal <tag>")
	fmt.Fprintln(os.Stderr, "        Tag unmatched colonstring words with <tag> (implies -c)")
	fmt.Fprintln(os.Stderr, "  -a, --alias <name=canonical>")
	fmt.Fprintln(os.Stderr, "        Canonicalize names after parsing; may be repeated")
	fmt.Fprintln(os.Stderr, "  -v, --version")
	fmt.Fprintln(os.Stderr, "        Show version and exit")
}

// main
//
func main() {
	// NOTE: Instead of os.Exit, set exitCode then return
	//
	exitCode := 0
	defer func() {
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	}()
	me = path.Base(os.Args[0])
	// Configure logging
	//
	log.SetFlags(0)
	log.SetPrefix(me + ": ")

	var (
		colonMode  bool
		literalTag string
		version    bool
		aliases    = make(aliasFlag)
	)
	flag.BoolVar(&colonMode, "c", false, "")
	flag.BoolVar(&colonMode, "colon", false, "")
	flag.StringVar(&literalTag, "l", "", "")
	flag.StringVar(&literalTag, "literal", "", "")
	flag.BoolVar(&version, "v", false, "")
	flag.BoolVar(&version, "version", false, "")
	flag.Var(aliases, "a", "")
	flag.Var(aliases, "alias", "")
	flag.Usage = showUsage
	flag.Parse()

	if version {
		fmt.Println(me, versionString())
		return
	}
	input := strings.Join(flag.Args(), " ")
	if input == "" {
		stdin, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Print(err)
			exitCode = 2
			return
		}
		input = string(stdin)
	}

	if colonMode || literalTag != "" {
		hunks, err := switches.ParseColonStrings(input, switches.ColonOptions{Literal: literalTag})
		if err != nil {
			log.Print(err)
			exitCode = 1
			return
		}
		hunks.CanonicalizeNames(aliases)
		for _, h := range hunks {
			fmt.Println(formatUnit(h))
		}
		return
	}

	list, err := switches.ParseSwitches(input)
	if err != nil {
		log.Print(err)
		exitCode = 1
		return
	}
	list.CanonicalizeNames(aliases)
	for _, s := range list {
		fmt.Println(formatUnit(s))
	}
}

// formatUnit renders one parsed unit, fields quoted and space-separated.
//
func formatUnit(unit []string) string {
	fields := make([]string, len(unit))
	for i, v := range unit {
		fields[i] = strconv.Quote(v)
	}
	return strings.Join(fields, " ")
}
