package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	// Given: a root command with no arguments
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	// When: executing
	err := cmd.Execute()

	// Then: usage is shown instead of waiting on stdin
	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "Usage:", "Help should show usage")
	assert.Contains(t, output, "textmark", "Help should mention program name")
}

func TestRootCmd_ShowsVersion(t *testing.T) {
	// Given: a root command
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--version"})

	// When: executing with --version
	err := cmd.Execute()

	// Then: it should show the version line
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "textmark version", "Version output should use the version template")
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	// Given: a root command
	cmd := NewRootCmd()

	// When: checking available commands
	var commandNames []string
	for _, subcmd := range cmd.Commands() {
		commandNames = append(commandNames, subcmd.Name())
	}

	// Then: every top-level command is registered
	for _, want := range []string{"spans", "stats", "explore", "watch", "logs", "init", "config", "version"} {
		assert.Contains(t, commandNames, want, "Should have %s subcommand", want)
	}
}

func TestRootCmd_SlicesStdin(t *testing.T) {
	// Given: stdin input and one literal term
	t.Setenv("HOME", t.TempDir())

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("the quick brown fox\n"))
	cmd.SetArgs([]string{"quick"})

	// When: executing
	err := cmd.Execute()

	// Then: piped output uses the marker format and keeps every other byte
	require.NoError(t, err)
	assert.Equal(t, "the »quick« brown fox\n", out.String())
}

func TestRootCmd_SlicesFile(t *testing.T) {
	// Given: a file with two occurrences of the term
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha beta\nalpha again\n"), 0644))

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"alpha", "--file", path})

	// When: executing
	err := cmd.Execute()

	// Then: both whole-word occurrences are marked
	require.NoError(t, err)
	assert.Equal(t, "»alpha« beta\n»alpha« again\n", out.String())
}

func TestRootCmd_MultipleFiles_Headed(t *testing.T) {
	// Given: two input files
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.txt")
	pathB := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(pathA, []byte("alpha one\n"), 0644))
	require.NoError(t, os.WriteFile(pathB, []byte("two alpha\n"), 0644))

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"alpha", "--file", pathA, "--file", pathB, "--no-color"})

	// When: executing
	err := cmd.Execute()

	// Then: each file gets a heading, in input order
	require.NoError(t, err)
	output := out.String()
	assert.Contains(t, output, pathA+"\n»alpha« one\n", "First file should follow its heading")
	assert.Contains(t, output, pathB+"\ntwo »alpha«\n", "Second file should follow its heading")
	assert.Less(t, strings.Index(output, pathA), strings.Index(output, pathB), "Files should keep input order")
}

func TestRootCmd_JSONFormat_StreamsDocuments(t *testing.T) {
	// Given: two input files and JSON output
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.txt")
	pathB := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(pathA, []byte("alpha one"), 0644))
	require.NoError(t, os.WriteFile(pathB, []byte("no match here"), 0644))

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"alpha", "--file", pathA, "--file", pathB, "--format", "json"})

	// When: executing
	err := cmd.Execute()
	require.NoError(t, err)

	// Then: output is a stream of JSON documents with no heading lines
	type span struct {
		Start   int    `json:"start"`
		End     int    `json:"end"`
		Matched bool   `json:"matched"`
		Text    string `json:"text"`
	}
	dec := json.NewDecoder(bytes.NewReader(out.Bytes()))

	var first []span
	require.NoError(t, dec.Decode(&first), "First document should decode")
	require.Len(t, first, 2)
	assert.Equal(t, span{Start: 0, End: 5, Matched: true, Text: "alpha"}, first[0])
	assert.Equal(t, span{Start: 5, End: 9, Matched: false, Text: " one"}, first[1])

	var second []span
	require.NoError(t, dec.Decode(&second), "Second document should decode")
	require.Len(t, second, 1)
	assert.False(t, second[0].Matched, "Unmatched file should yield one unmatched span")
	assert.Equal(t, "no match here", second[0].Text)
}

func TestRootCmd_HTMLFormat(t *testing.T) {
	// Given: input containing a character that needs escaping
	t.Setenv("HOME", t.TempDir())

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("ships & whales\n"))
	cmd.SetArgs([]string{"whales", "--format", "html"})

	// When: executing
	err := cmd.Execute()

	// Then: matches are tagged and the text is entity-escaped
	require.NoError(t, err)
	assert.Equal(t, "ships &amp; <mark>whales</mark>\n", out.String())
}

func TestRootCmd_MarkTagFlag(t *testing.T) {
	// Given: HTML output with a custom tag
	t.Setenv("HOME", t.TempDir())

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("hello world\n"))
	cmd.SetArgs([]string{"hello", "--format", "html", "--mark-tag", "strong"})

	// When: executing
	err := cmd.Execute()

	// Then: the custom tag wraps the match
	require.NoError(t, err)
	assert.Equal(t, "<strong>hello</strong> world\n", out.String())
}

func TestRootCmd_RegexTerms(t *testing.T) {
	// Given: --no-escape with a regular expression term
	t.Setenv("HOME", t.TempDir())

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("chapter 12 ends\n"))
	cmd.SetArgs([]string{"--no-escape", "ch[a-z]+"})

	// When: executing
	err := cmd.Execute()

	// Then: the pattern matches as a regex rather than literal text
	require.NoError(t, err)
	assert.Equal(t, "»chapter« 12 ends\n", out.String())
}

func TestRootCmd_CaseInsensitiveByDefault(t *testing.T) {
	// Given: mixed-case occurrences of the term
	t.Setenv("HOME", t.TempDir())

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("Alpha ALPHA alpha\n"))
	cmd.SetArgs([]string{"alpha"})

	// When: executing
	err := cmd.Execute()

	// Then: all casings match
	require.NoError(t, err)
	assert.Equal(t, "»Alpha« »ALPHA« »alpha«\n", out.String())
}

func TestRootCmd_CaseSensitiveFlag(t *testing.T) {
	// Given: mixed-case occurrences and --case-sensitive
	t.Setenv("HOME", t.TempDir())

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("Alpha ALPHA alpha\n"))
	cmd.SetArgs([]string{"alpha", "--case-sensitive"})

	// When: executing
	err := cmd.Execute()

	// Then: only the exact casing matches
	require.NoError(t, err)
	assert.Equal(t, "Alpha ALPHA »alpha«\n", out.String())
}

func TestRootCmd_ContextClipsUnmatchedText(t *testing.T) {
	// Given: a long line and a small context window
	t.Setenv("HOME", t.TempDir())

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("aaaa bbbb cccc dddd eeee\n"))
	cmd.SetArgs([]string{"cccc", "--context", "3"})

	// When: executing
	err := cmd.Execute()

	// Then: only nearby text survives, with elision markers for the rest
	require.NoError(t, err)
	output := out.String()
	assert.Contains(t, output, "»cccc«", "Match should be marked")
	assert.Contains(t, output, "…", "Clipped text should be elided")
	assert.NotContains(t, output, "aaaa", "Distant text should be clipped")
	assert.NotContains(t, output, "eeee", "Distant text should be clipped")
}

func TestRootCmd_InvalidBoundary_Errors(t *testing.T) {
	// Given: an unknown boundary mode
	t.Setenv("HOME", t.TempDir())

	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("text"))
	cmd.SetArgs([]string{"alpha", "--boundary", "diagonal"})

	// When: executing
	err := cmd.Execute()

	// Then: it should fail before reading any input
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown boundary mode", "Error should name the bad mode")
}

func TestRootCmd_InvalidRegex_Errors(t *testing.T) {
	// Given: --no-escape with a broken pattern
	t.Setenv("HOME", t.TempDir())

	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("text"))
	cmd.SetArgs([]string{"--no-escape", "[unclosed"})

	// When: executing
	err := cmd.Execute()

	// Then: the compile error surfaces
	require.Error(t, err)
	assert.Contains(t, err.Error(), "regexp", "Error should come from pattern compilation")
}

func TestRootCmd_MissingFile_Errors(t *testing.T) {
	// Given: a path that does not exist
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "absent.txt")

	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"alpha", "--file", path})

	// When: executing
	err := cmd.Execute()

	// Then: the error carries the file-not-found code and the path
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FILE_NOT_FOUND")
	assert.Contains(t, err.Error(), "absent.txt")
}
