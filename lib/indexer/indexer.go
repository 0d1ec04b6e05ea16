package indexer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/cxxxr/wordgram/lib/database"
	"github.com/cxxxr/wordgram/lib/entity"
	"github.com/cxxxr/wordgram/lib/invertedindex"
	"github.com/cxxxr/wordgram/lib/logger"
	"github.com/cxxxr/wordgram/lib/manifest"
	"github.com/cxxxr/wordgram/lib/primitive"
	"github.com/cxxxr/wordgram/lib/tokenizer"
)

const defaultWorkers = 4

type Indexer struct {
	tokenizer     *tokenizer.Tokenizer
	logger        logger.Logger
	workers       int
	index         *invertedindex.InvertedIndex
	tokenIds      map[string]primitive.TokenId
	rootDirectory string
}

func New(tk *tokenizer.Tokenizer) *Indexer {
	return &Indexer{
		tokenizer: tk,
		logger:    logger.Default().WithPrefix("Index"),
		workers:   defaultWorkers,
	}
}

func (i *Indexer) WithLogger(l logger.Logger) *Indexer {
	i.logger = l
	return i
}

// WithWorkers sets how many documents are tokenized at the same time.
func (i *Indexer) WithWorkers(n int) *Indexer {
	if n > 0 {
		i.workers = n
	}
	return i
}

type document struct {
	file   string
	body   string
	tokens []entity.Token
}

func (i *Indexer) computeRelativePath(file string) string {
	rel, err := filepath.Rel(i.rootDirectory, file)
	if err != nil {
		return file
	}
	return rel
}

// analyze runs its own emitter, so it may be called concurrently.
func (i *Indexer) analyze(file string) (*document, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	tokens, err := tokenizer.Collect(i.tokenizer.Stream(bytes.NewReader(data)))
	if err != nil {
		return nil, errors.Wrapf(err, "file: %s", file)
	}

	return &document{file: file, body: string(data), tokens: tokens}, nil
}

func (i *Indexer) analyzeAll(ctx context.Context, files []string) ([]*document, error) {
	docs := make([]*document, len(files))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(i.workers)
	for n, file := range files {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := i.analyze(file)
			if err != nil {
				return err
			}
			docs[n] = doc
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func (i *Indexer) resolveTokenId(term string, db *database.Database) (primitive.TokenId, error) {
	if id, ok := i.tokenIds[term]; ok {
		return id, nil
	}

	id := primitive.TokenId(uuid.NewString())
	if err := db.InsertToken(id, term); err != nil {
		return primitive.EmptyTokenId, err
	}
	i.tokenIds[term] = id
	return id, nil
}

func (i *Indexer) store(doc *document, db *database.Database) error {
	filename := i.computeRelativePath(doc.file)
	if err := db.InsertDocument(filename, doc.body); err != nil {
		return err
	}

	record, err := db.ResolveDocumentByFilename(filename)
	if err != nil {
		return err
	}

	for _, tok := range doc.tokens {
		tokenId, err := i.resolveTokenId(tok.Term, db)
		if err != nil {
			return err
		}
		i.index.Insert(tokenId, record.Id, primitive.Span{Start: tok.Start, End: tok.End})
	}

	i.logger.Info("indexed", "file", filename, "grams", len(doc.tokens))
	return nil
}

// load picks up what an earlier run already stored so new documents extend
// the existing posting lists instead of replacing them.
func (i *Indexer) load(db *database.Database) error {
	index, err := db.ResolveWholeInvertedIndex()
	if err != nil {
		return err
	}
	i.index = index

	tokens, err := db.ResolveAllTokens()
	if err != nil {
		return err
	}
	i.tokenIds = make(map[string]primitive.TokenId, len(tokens))
	for _, token := range tokens {
		i.tokenIds[token.Term] = token.Id
	}
	return nil
}

func (i *Indexer) flush(db *database.Database) error {
	return i.index.Map(func(tokenId primitive.TokenId, postingList *invertedindex.PostingList) error {
		return db.UpsertInvertedIndex(tokenId, postingList.Encode())
	})
}

func (i *Indexer) Index(ctx context.Context, manifestFile, databaseFile string) (err error) {
	m, err := manifest.Read(manifestFile)
	if err != nil {
		return err
	}
	i.rootDirectory = filepath.Dir(manifestFile)

	docs, err := i.analyzeAll(ctx, m.Files)
	if err != nil {
		return err
	}

	db := database.New(databaseFile)
	if err := db.InitTables(); err != nil {
		return err
	}
	if err := db.Connect(); err != nil {
		return err
	}
	defer func() {
		err = db.Finish(err)
	}()

	if err := i.load(db); err != nil {
		return err
	}

	for _, doc := range docs {
		if err := i.store(doc, db); err != nil {
			return err
		}
	}

	return i.flush(db)
}
