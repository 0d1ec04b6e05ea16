package indexer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/cxxxr/wordgram/lib/logger"
	"github.com/cxxxr/wordgram/lib/tokenizer"
)

// BulkIndexer indexes several manifests, each into its own database.
type BulkIndexer struct {
	goNum     int
	tokenizer *tokenizer.Tokenizer
	logger    logger.Logger
}

func NewBulkIndexer(goNum int, tk *tokenizer.Tokenizer) *BulkIndexer {
	if goNum < 1 {
		goNum = 1
	}
	return &BulkIndexer{
		goNum:     goNum,
		tokenizer: tk,
		logger:    logger.Default().WithPrefix("Index"),
	}
}

func (b *BulkIndexer) WithLogger(l logger.Logger) *BulkIndexer {
	b.logger = l
	return b
}

func (b *BulkIndexer) index(ctx context.Context, manifestFile, outputDir string) error {
	databaseFile, err := GetDatabaseFile(manifestFile, outputDir)
	if err != nil {
		return err
	}

	err = New(b.tokenizer).WithLogger(b.logger).Index(ctx, manifestFile, databaseFile)
	if err != nil {
		b.logger.Error("failed", "manifest", manifestFile, "err", err)
		return err
	}
	b.logger.Info("done", "manifest", manifestFile, "database", databaseFile)
	return nil
}

// Index stops at the first failing manifest.
func (b *BulkIndexer) Index(ctx context.Context, manifestFiles []string, outputDir string) error {
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(b.goNum)

	for _, manifestFile := range manifestFiles {
		group.Go(func() error {
			return b.index(ctx, manifestFile, outputDir)
		})
	}

	return group.Wait()
}
