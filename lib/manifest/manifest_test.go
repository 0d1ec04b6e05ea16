package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Read(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "animals.json")
	body := `{"files": ["cats.txt", "/abs/dogs.txt"]}`
	require.Nil(t, os.WriteFile(file, []byte(body), 0o644))

	m, err := Read(file)
	require.Nil(t, err)
	require.Equal(t, "animals", m.Name)
	require.Equal(t, []string{filepath.Join(dir, "cats.txt"), "/abs/dogs.txt"}, m.Files)
}

func Test_ReadBroken(t *testing.T) {
	file := filepath.Join(t.TempDir(), "broken.json")
	require.Nil(t, os.WriteFile(file, []byte("{"), 0o644))

	_, err := Read(file)
	require.NotNil(t, err)
}
