package searcher

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/cxxxr/wordgram/lib/database"
	"github.com/cxxxr/wordgram/lib/primitive"
	"github.com/cxxxr/wordgram/lib/tokenizer"
)

var ErrQueryLength = errors.New("query word count outside gram size range")

type Searcher interface {
	Search(query string) ([]*Result, error)
}

var _ Searcher = (*GramSearcher)(nil)

// GramSearcher looks a query up as a single gram. The query is chunked with
// the same delimiters used for indexing, so "a,b" finds the gram "a , b".
type GramSearcher struct {
	tokenizer *tokenizer.Tokenizer
	database  *database.Database
}

func NewGramSearcher(tokenizer *tokenizer.Tokenizer, database *database.Database) *GramSearcher {
	return &GramSearcher{tokenizer: tokenizer, database: database}
}

func (s *GramSearcher) queryTerm(query string) (string, error) {
	chunks := s.tokenizer.Chunks(query)
	if len(chunks) == 0 {
		return "", nil
	}
	if len(chunks) < s.tokenizer.MinWords() || len(chunks) > s.tokenizer.MaxWords() {
		return "", errors.Wrapf(
			ErrQueryLength,
			"%d words, want %d..%d",
			len(chunks), s.tokenizer.MinWords(), s.tokenizer.MaxWords(),
		)
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}
	return strings.Join(texts, " "), nil
}

func (s *GramSearcher) Search(query string) ([]*Result, error) {
	term, err := s.queryTerm(query)
	if err != nil || term == "" {
		return nil, err
	}

	token, err := s.database.ResolveTokenByTerm(term)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, nil
	}

	invertedIndex, err := s.database.ResolveInvertedIndex([]primitive.TokenId{token.Id})
	if err != nil {
		return nil, err
	}

	results := make([]*Result, 0)
	err = invertedIndex.Get(token.Id).Map(func(docId primitive.DocumentId, spans []primitive.Span) error {
		for _, span := range spans {
			results = append(results, newResult(&database.Document{Id: docId}, term, span))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	results, err = resolveResultDocument(results, s.database)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].doc.Filename != results[j].doc.Filename {
			return results[i].doc.Filename < results[j].doc.Filename
		}
		return results[i].span.Start < results[j].span.Start
	})
	return results, nil
}

func resolveResultDocument(results []*Result, db *database.Database) ([]*Result, error) {
	docs, err := db.ResolveDocumentsByIds(uniqueDocIds(results))
	if err != nil {
		return nil, err
	}

	docMap := make(map[primitive.DocumentId]*database.Document, len(docs))
	for _, doc := range docs {
		docMap[doc.Id] = doc
	}

	for _, result := range results {
		doc, ok := docMap[result.doc.Id]
		if !ok {
			return nil, errors.Errorf("document %d not found", result.doc.Id)
		}
		result.doc = doc
	}

	return results, nil
}
