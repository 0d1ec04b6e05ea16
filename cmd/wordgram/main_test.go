package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cxxxr/wordgram/lib/testutil"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	root := newRootCommand()
	out := bytes.NewBuffer(nil)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(out)
	root.SetErr(bytes.NewBuffer(nil))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func Test_Tokenize(t *testing.T) {
	out, err := run(t, "cat and dog", "tokenize")
	require.Nil(t, err)
	require.Equal(t, "0\t2\tcat\n6\t8\tand\n12\t14\tdog\n0\t8\tcat and\n6\t14\tand dog\n", out)
}

func Test_TokenizeFlags(t *testing.T) {
	out, err := run(t, "a;b", "tokenize", "--min", "1", "--max", "1", "--delimiter", ";")
	require.Nil(t, err)
	require.Equal(t, "0\t0\ta\n2\t2\t;\n4\t4\tb\n", out)

	_, err = run(t, "a", "tokenize", "--min", "3")
	require.NotNil(t, err)
}

func Test_TokenizeConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "wordgram.yaml")
	require.Nil(t, os.WriteFile(file, []byte("tokenizer:\n  min_words: 2\n  max_words: 2\n"), 0o644))

	out, err := run(t, "x y z", "tokenize", "--config", file)
	require.Nil(t, err)
	require.Equal(t, "0\t4\tx y\n4\t8\ty z\n", out)
}

func Test_IndexSearchDescribe(t *testing.T) {
	manifestFile := testutil.WriteCorpus(t, "pets", map[string]string{"pets.txt": "cat and dog"})
	outputDir := t.TempDir()

	_, err := run(t, "", "index", "-o", outputDir, manifestFile)
	require.Nil(t, err)

	databaseFile := filepath.Join(outputDir, "pets.sqlite3")
	out, err := run(t, "", "search", "-d", databaseFile, "and dog")
	require.Nil(t, err)
	require.Equal(t, "pets.txt:6:14:cat   and   dog\n", out)

	out, err = run(t, "", "describe", "-d", databaseFile)
	require.Nil(t, err)
	require.Contains(t, out, `"and dog" count=1`)

	_, err = run(t, "", "search", "dog")
	require.NotNil(t, err)
}
