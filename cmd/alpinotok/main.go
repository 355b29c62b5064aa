// Command alpinotok sentence-splits and tokenizes Dutch text read from
// stdin, one blank-line-delimited paragraph at a time, against a
// compiled transducer file.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/alpino-nl/alpinotok"
	"github.com/alpino-nl/alpinotok/internal/fstbin"
	"github.com/alpino-nl/alpinotok/tokenbatch"
)

func main() {
	os.Exit(doMain(os.Stdin, os.Stdout, os.Stderr))
}

// doMain is separated out for the purpose of unit testing.
func doMain(stdIn io.Reader, stdOut, stdErr io.Writer) int {
	flag.CommandLine.SetOutput(stdErr)

	var help bool
	flag.BoolVar(&help, "h", false, "Prints usage.")

	var maxRunes string
	flag.StringVar(&maxRunes, "max-runes", "0", "Reject paragraphs longer than this many runes. 0 means unbounded.")

	var format string
	flag.StringVar(&format, "format", "plain", "Output format: plain (one sentence per line, tokens space-separated) or conll.")

	var verbose bool
	flag.BoolVar(&verbose, "v", false, "Logs rejected paragraphs and load diagnostics to stderr.")

	flag.Parse()

	if help || flag.NArg() == 0 {
		printUsage(stdErr)
		return 0
	}

	maxRunesInt, err := cast.ToIntE(maxRunes)
	if err != nil {
		fmt.Fprintf(stdErr, "invalid -max-runes %q: %v\n", maxRunes, err)
		return 1
	}

	if format != "plain" && format != "conll" {
		fmt.Fprintf(stdErr, "invalid -format %q: must be plain or conll\n", format)
		return 1
	}

	transducerPath := flag.Arg(0)

	var logger *slog.Logger
	opts := []alpinotok.TokenizerOption{alpinotok.WithMaxParagraphRunes(maxRunesInt)}
	if verbose {
		logger = slog.New(slog.NewTextHandler(stdErr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, alpinotok.WithLogger(logger))
	}

	started := time.Now()
	transducer, err := fstbin.LoadFile(transducerPath)
	if err != nil {
		fmt.Fprintf(stdErr, "error loading transducer: %v\n", err)
		return 1
	}
	if logger != nil {
		logger.Info("loaded transducer",
			"transitions", transducer.Len(),
			"known_symbols", transducer.KnownSymbolCount(),
			"duration", time.Since(started),
		)
	}

	tok := alpinotok.NewTokenizer(transducer, opts...)

	return tokenizeStdin(context.Background(), tok, stdIn, stdOut, stdErr, format)
}

// tokenizeStdin hands the whole paragraph batch to tokenbatch.TokenizeAll
// rather than calling Tokenize in a loop, so a multi-paragraph input is
// tokenized concurrently across the shared Tokenizer while still printing
// sentences back out in input order.
func tokenizeStdin(ctx context.Context, tok *alpinotok.Tokenizer, stdIn io.Reader, stdOut, stdErr io.Writer, format string) int {
	paragraphs := readParagraphs(stdIn)
	docs := make([]tokenbatch.Doc, len(paragraphs))
	for i, p := range paragraphs {
		docs[i] = tokenbatch.Doc{Paragraph: p, DocID: fmt.Sprintf("%d", i+1)}
	}

	exitCode := 0
	for _, r := range tokenbatch.TokenizeAll(ctx, tok, docs) {
		if r.Err != nil {
			fmt.Fprintf(stdErr, "error tokenizing paragraph %s (batch %s): %v\n", r.DocID, r.BatchID, r.Err)
			exitCode = 1
			continue
		}
		writeSentences(stdOut, r.Sentences, format)
	}

	return exitCode
}

func writeSentences(stdOut io.Writer, sentences [][]string, format string) {
	switch format {
	case "conll":
		for _, sentence := range sentences {
			for i, token := range sentence {
				fmt.Fprintf(stdOut, "%d\t%s\n", i+1, token)
			}
			fmt.Fprintln(stdOut)
		}
	default:
		for _, sentence := range sentences {
			fmt.Fprintln(stdOut, strings.Join(sentence, " "))
		}
	}
}

// readParagraphs accumulates stdin lines into paragraphs on blank-line
// boundaries. This is deliberately the simplest possible segmentation —
// consecutive non-blank lines joined with a single space form one
// paragraph; anything more sophisticated is out of scope here.
func readParagraphs(r io.Reader) []string {
	var paragraphs []string
	var lines []string

	flush := func() {
		if len(lines) > 0 {
			paragraphs = append(paragraphs, strings.Join(lines, " "))
			lines = nil
		}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		lines = append(lines, line)
	}
	flush()

	return paragraphs
}

func printUsage(stdErr io.Writer) {
	fmt.Fprintln(stdErr, "alpinotok CLI")
	fmt.Fprintln(stdErr)
	fmt.Fprintln(stdErr, "Usage:\n  alpinotok <options> <path to transducer file>")
	fmt.Fprintln(stdErr)
	fmt.Fprintln(stdErr, "Reads blank-line-delimited paragraphs from stdin and writes tokenized")
	fmt.Fprintln(stdErr, "sentences to stdout.")
	fmt.Fprintln(stdErr)
	fmt.Fprintln(stdErr, "Options:")
	flag.PrintDefaults()
}
