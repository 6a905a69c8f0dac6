package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDeclarations = `
version: "1"
declarations:
  - target: Wrapped
    items_from:
      types: [String, char]
      tuples: 2
      collections: vec
  - target: Int
    derive: TryIntoItems
    items_from:
      types: String
      error_type: ParseError
`

const mixedDeclarations = `
declarations:
  - target: Good
    items_from: {types: u8}
  - target: Bad
    items_from: {tuples: "3..=1"}
`

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestGen_WritesFilesAndManifest(t *testing.T) {
	out := filepath.Join(t.TempDir(), "generated")

	_, stderr, err := execute(t, "gen", "-c", writeFile(t, validDeclarations), "-o", out)
	require.NoError(t, err, stderr)

	wrapped, err := os.ReadFile(filepath.Join(out, "wrapped_items.rs"))
	require.NoError(t, err)
	assert.Contains(t, string(wrapped), "impl itemize::IntoItems<Wrapped> for String\n")

	integer, err := os.ReadFile(filepath.Join(out, "int_items.rs"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(integer), "\nimpl"))

	manifest, err := os.ReadFile(filepath.Join(out, "itemize.manifest.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), "target: Wrapped")
	assert.Contains(t, string(manifest), "id: TryIntoItems/type(String)")
}

func TestGen_RejectedDeclarationStillWritesOthers(t *testing.T) {
	out := t.TempDir()

	_, stderr, err := execute(t, "gen", "-c", writeFile(t, mixedDeclarations), "-o", out, "--no-manifest")
	require.Error(t, err)
	assert.Equal(t, "1 of 2 declarations rejected", err.Error())
	assert.Contains(t, stderr, "error: [Bad] items_from.tuples")

	_, err = os.Stat(filepath.Join(out, "good_items.rs"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(out, "bad_items.rs"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = os.Stat(filepath.Join(out, "itemize.manifest.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestCheck(t *testing.T) {
	path := writeFile(t, validDeclarations)

	stdout, _, err := execute(t, "check", "-c", path)
	require.NoError(t, err)
	assert.Equal(t, path+": 2 declarations, 17 impls\n", stdout)

	_, _, err = execute(t, "check", "-c", writeFile(t, mixedDeclarations))
	require.Error(t, err)
}

func TestCheck_MaxArity(t *testing.T) {
	path := writeFile(t, "declarations:\n  - target: Foo\n    items_from: {tuples: 8}\n")

	_, stderr, err := execute(t, "check", "-c", path, "--max-arity", "4")
	require.Error(t, err)
	assert.Contains(t, stderr, "exceeds the maximum arity 4")

	_, _, err = execute(t, "check", "-c", path)
	require.NoError(t, err)
}

func TestDescribe_Formats(t *testing.T) {
	path := writeFile(t, validDeclarations)

	text, _, err := execute(t, "describe", "-c", path, "--target", "Int")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "// Code generated by itemize-generator. DO NOT EDIT.\n// Target: Int\n"))
	assert.NotContains(t, text, "Wrapped")

	yml, _, err := execute(t, "describe", "-c", path, "-f", "yaml", "-t", "Int")
	require.NoError(t, err)
	assert.Contains(t, yml, "body: ")

	dump, _, err := execute(t, "describe", "-c", path, "-f", "dump", "-t", "Wrapped", "--sum-type", "Sum")
	require.NoError(t, err)
	assert.Contains(t, dump, `"itemize::Sum::Left"`)

	_, _, err = execute(t, "describe", "-c", path, "-f", "xml")
	require.Error(t, err)

	_, _, err = execute(t, "describe", "-c", path, "-t", "Missing")
	require.Error(t, err)
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")

	stdout, _, err := execute(t, "init", path)
	require.NoError(t, err)
	assert.Equal(t, "wrote "+path+"\n", stdout)

	_, _, err = execute(t, "init", path)
	require.Error(t, err)

	_, _, err = execute(t, "init", path, "--force")
	require.NoError(t, err)

	// The starter file passes check.
	stdout, _, err = execute(t, "check", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 declarations")
}

func TestLogFlags(t *testing.T) {
	path := writeFile(t, validDeclarations)

	_, stderr, err := execute(t, "check", "-c", path, "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"generation completed"`)
	assert.Contains(t, stderr, `"target":"Wrapped"`)

	_, _, err = execute(t, "check", "-c", path, "--log-level", "loud")
	require.Error(t, err)
}

func TestMissingConfigFlag(t *testing.T) {
	_, _, err := execute(t, "gen")
	require.Error(t, err)
}

func TestGen_RemovesOutputOfDroppedTargets(t *testing.T) {
	out := t.TempDir()

	_, stderr, err := execute(t, "gen", "-c", writeFile(t, validDeclarations), "-o", out)
	require.NoError(t, err, stderr)

	onlyWrapped := "declarations:\n  - target: Wrapped\n    items_from: {types: String}\n"

	_, stderr, err = execute(t, "gen", "-c", writeFile(t, onlyWrapped), "-o", out)
	require.NoError(t, err, stderr)

	_, err = os.Stat(filepath.Join(out, "wrapped_items.rs"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(out, "int_items.rs"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
