package indexer

import (
	"path/filepath"

	"github.com/pkg/errors"
)

func trimExt(file string) string {
	ext := filepath.Ext(file)
	return file[:len(file)-len(ext)]
}

func manifestToOutputName(manifestFile, baseDir, ext string) (string, error) {
	base := filepath.Base(manifestFile)
	abs, err := filepath.Abs(filepath.Join(baseDir, trimExt(base)+ext))
	if err != nil {
		return "", errors.WithStack(err)
	}
	return abs, nil
}

func GetDatabaseFile(manifestFile, outputDir string) (string, error) {
	return manifestToOutputName(manifestFile, outputDir, ".sqlite3")
}
