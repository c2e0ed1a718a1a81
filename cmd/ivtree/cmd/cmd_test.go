package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajwerner/intervaltree/codec"
	"github.com/ajwerner/intervaltree/interval"
)

const testDataset = `
entries:
  - {start: 0, end: 10, value: text}
  - {start: 4, end: 8, value: heap}
  - {start: 8, end: 12, value: stack}
`

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "regions.yaml")
	require.NoError(t, os.WriteFile(src, []byte(testDataset), 0o644))

	out := run(t, "--data", src, "--log-level", "error", "query", "--point", "4")
	require.Contains(t, out, "text")
	require.Contains(t, out, "heap")
	require.NotContains(t, out, "stack")
	require.Contains(t, strings.ToLower(out), "2 matches")

	dst := filepath.Join(dir, "regions.cbor")
	run(t, "--data", src, "--log-level", "error", "convert", "--out", dst)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	tree, err := codec.UnmarshalCBOR[int64, string](data)
	require.NoError(t, err)
	require.Equal(t, 3, tree.Len())
	v, ok := tree.Get(interval.New[int64](8, 12))
	require.True(t, ok)
	require.Equal(t, "stack", v)

	out = run(t, "--data", dst, "--log-level", "error", "stats")
	require.Contains(t, out, "0..12")
	require.Contains(t, out, "8..12")
}

func TestFormatFor(t *testing.T) {
	f, err := formatFor("x.yml", "")
	require.NoError(t, err)
	require.Equal(t, codec.YAML, f)
	f, err = formatFor("x.bin", "cbor")
	require.NoError(t, err)
	require.Equal(t, codec.CBOR, f)
	_, err = formatFor("x.bin", "")
	require.ErrorContains(t, err, "cannot infer format")
}

func TestSpanSkipsDegenerate(t *testing.T) {
	tree := codec.Restore([]codec.Entry[int64, string]{
		{Start: 50, End: 10, Value: "backwards"},
		{Start: 5, End: 7, Value: "a"},
		{Start: 6, End: 9, Value: "b"},
	})
	require.Equal(t, "5..9", spanOf(tree))
	require.Equal(t, "-", spanOf(codec.Restore[int64, string](nil)))
}
