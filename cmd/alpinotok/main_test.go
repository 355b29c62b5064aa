package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

// writeTestTransducer writes a tiny transducer file (echoing 'a' and
// passing every other rune, space included, through its unknown edge,
// with no sentence-splitting behavior) good enough to
// exercise the CLI's load/tokenize/print pipeline end to end.
func writeTestTransducer(t *testing.T) string {
	t.Helper()

	appendTransition := func(stream []byte, symbol uint32, isLast bool, next uint32, output string) []byte {
		var inner []byte
		inner = protowire.AppendTag(inner, 1, protowire.VarintType)
		inner = protowire.AppendVarint(inner, uint64(symbol))
		inner = protowire.AppendTag(inner, 2, protowire.VarintType)
		last := uint64(0)
		if isLast {
			last = 1
		}
		inner = protowire.AppendVarint(inner, last)
		inner = protowire.AppendTag(inner, 4, protowire.VarintType)
		inner = protowire.AppendVarint(inner, uint64(next))
		inner = protowire.AppendTag(inner, 5, protowire.BytesType)
		inner = protowire.AppendBytes(inner, []byte(output))
		return protowire.AppendBytes(stream, inner)
	}

	var stream []byte
	stream = appendTransition(stream, 0, false, 0, "") // index 0: sentinel
	stream = appendTransition(stream, 0, false, 2, "") // index 1: bootstrap -> 2
	stream = appendTransition(stream, 2, false, 2, "") // index 2: unknown edge, pass the rune through
	stream = appendTransition(stream, 'a', true, 2, "a")

	path := filepath.Join(t.TempDir(), "tiny.tokenizer.bin")
	require.NoError(t, os.WriteFile(path, stream, 0o644))
	return path
}

func runMain(t *testing.T, stdin string, args []string) (int, string, string) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet("alpinotok", flag.ContinueOnError)

	stdOut := &bytes.Buffer{}
	stdErr := &bytes.Buffer{}

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = append([]string{"alpinotok"}, args...)

	exitCode := doMain(strings.NewReader(stdin), stdOut, stdErr)
	return exitCode, stdOut.String(), stdErr.String()
}

func TestDoMain_TokenizesStdinParagraphs(t *testing.T) {
	path := writeTestTransducer(t)

	exitCode, stdOut, _ := runMain(t, "a a\n\na", []string{path})
	require.Equal(t, 0, exitCode)
	assert.Equal(t, "a a\na\n", stdOut)
}

func TestDoMain_ConllFormat(t *testing.T) {
	path := writeTestTransducer(t)

	exitCode, stdOut, _ := runMain(t, "a a", []string{"-format=conll", path})
	require.Equal(t, 0, exitCode)
	assert.Equal(t, "1\ta\n2\ta\n\n", stdOut)
}

func TestDoMain_Help(t *testing.T) {
	exitCode, _, stdErr := runMain(t, "", []string{"-h"})
	require.Equal(t, 0, exitCode)
	assert.Contains(t, stdErr, "alpinotok CLI")
}

func TestDoMain_MissingPath(t *testing.T) {
	exitCode, _, stdErr := runMain(t, "", []string{})
	require.Equal(t, 0, exitCode) // no args at all prints usage, same as -h
	assert.Contains(t, stdErr, "Usage:")
}

func TestDoMain_InvalidTransducerPath(t *testing.T) {
	exitCode, _, stdErr := runMain(t, "a", []string{filepath.Join(t.TempDir(), "missing.bin")})
	require.Equal(t, 1, exitCode)
	assert.Contains(t, stdErr, "error loading transducer")
}

func TestDoMain_InvalidFormat(t *testing.T) {
	path := writeTestTransducer(t)
	exitCode, _, stdErr := runMain(t, "a", []string{"-format=xml", path})
	require.Equal(t, 1, exitCode)
	assert.Contains(t, stdErr, "invalid -format")
}

func TestDoMain_InvalidMaxRunes(t *testing.T) {
	path := writeTestTransducer(t)
	exitCode, _, stdErr := runMain(t, "a", []string{"-max-runes=not-a-number", path})
	require.Equal(t, 1, exitCode)
	assert.Contains(t, stdErr, "invalid -max-runes")
}
