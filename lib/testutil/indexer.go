package testutil

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cxxxr/wordgram/lib/indexer"
	"github.com/cxxxr/wordgram/lib/logger"
	"github.com/cxxxr/wordgram/lib/tokenizer"
)

// WriteCorpus writes files into a temporary directory together with a
// manifest listing them and returns the manifest path.
func WriteCorpus(t *testing.T, name string, files map[string]string) string {
	dir := t.TempDir()

	names := make([]string, 0, len(files))
	for filename, body := range files {
		path := filepath.Join(dir, filename)
		require.Nil(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.Nil(t, os.WriteFile(path, []byte(body), 0o644))
		names = append(names, filename)
	}
	sort.Strings(names)

	data, err := json.Marshal(map[string]interface{}{"name": name, "files": names})
	require.Nil(t, err)

	manifestFile := filepath.Join(dir, name+".json")
	require.Nil(t, os.WriteFile(manifestFile, data, 0o644))
	return manifestFile
}

func DoIndex(t *testing.T, tk *tokenizer.Tokenizer, manifestFile string) string {
	databaseFile := filepath.Join(t.TempDir(), "wordgram.sqlite3")
	err := indexer.New(tk).WithLogger(logger.Discard()).Index(context.Background(), manifestFile, databaseFile)
	require.Nil(t, err)
	return databaseFile
}
