package database

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/stretchr/testify/require"

	"github.com/cxxxr/wordgram/lib/invertedindex"
	"github.com/cxxxr/wordgram/lib/primitive"
)

func connect(t *testing.T) *Database {
	db := New(filepath.Join(t.TempDir(), "wordgram.sqlite3"))
	require.Nil(t, db.InitTables())
	require.Nil(t, db.Connect())
	return db
}

func Test_Documents(t *testing.T) {
	db := connect(t)
	defer db.Close()

	require.Nil(t, db.InsertDocument("a.txt", "cat and dog"))
	require.Nil(t, db.InsertDocument("b.txt", "a,b"))
	require.NotNil(t, db.InsertDocument("a.txt", "duplicate"))

	doc, err := db.ResolveDocumentByFilename("b.txt")
	require.Nil(t, err)
	require.Equal(t, "a,b", doc.Body)

	same, err := db.ResolveDocumentById(doc.Id)
	require.Nil(t, err)
	require.Equal(t, doc, same)

	docs, err := db.ResolveAllDocuments()
	require.Nil(t, err)
	require.Len(t, docs, 2)
	require.Equal(t, "a.txt", docs[0].Filename)

	docs, err = db.ResolveDocumentsByIds([]primitive.DocumentId{doc.Id})
	require.Nil(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "b.txt", docs[0].Filename)

	docs, err = db.ResolveDocumentsByIds(nil)
	require.Nil(t, err)
	require.Empty(t, docs)
}

func Test_Tokens(t *testing.T) {
	db := connect(t)
	defer db.Close()

	require.Nil(t, db.InsertToken("t1", "cat and"))
	require.Nil(t, db.InsertToken("t2", "dog"))

	token, err := db.ResolveTokenByTerm("cat and")
	require.Nil(t, err)
	require.Equal(t, &Token{Id: "t1", Term: "cat and"}, token)

	token, err = db.ResolveTokenByTerm("bird")
	require.Nil(t, err)
	require.Nil(t, token)

	token, err = db.ResolveTokenById("t2")
	require.Nil(t, err)
	require.Equal(t, "dog", token.Term)

	tokens, err := db.ResolveTokensByTerms([]string{"dog", "cat and", "bird"})
	require.Nil(t, err)
	require.Len(t, tokens, 2)

	tokens, err = db.ResolveAllTokens()
	require.Nil(t, err)
	require.Len(t, tokens, 2)
}

func Test_InvertedIndex(t *testing.T) {
	db := connect(t)
	defer db.Close()

	require.Nil(t, db.InsertToken("t1", "cat"))

	index := invertedindex.New()
	index.Insert("t1", 1, primitive.Span{Start: 0, End: 2})
	index.Insert("t1", 3, primitive.Span{Start: 6, End: 8})
	blob, err := index.EncodePostingList("t1")
	require.Nil(t, err)
	require.Nil(t, db.UpsertInvertedIndex("t1", blob))

	index.Insert("t1", 2, primitive.Span{Start: 1, End: 3})
	blob, err = index.EncodePostingList("t1")
	require.Nil(t, err)
	require.Nil(t, db.UpsertInvertedIndex("t1", blob))

	resolved, err := db.ResolveInvertedIndex([]primitive.TokenId{"t1", "missing"})
	require.Nil(t, err)
	require.Equal(t, 1, resolved.Length())
	require.Equal(t, 3, resolved.Get("t1").Count())

	whole, err := db.ResolveWholeInvertedIndex()
	require.Nil(t, err)
	require.Equal(t, []primitive.TokenId{"t1"}, whole.TokenIds())

	empty, err := db.ResolveInvertedIndex(nil)
	require.Nil(t, err)
	require.Equal(t, 0, empty.Length())
}

func Test_CommitOnClose(t *testing.T) {
	file := filepath.Join(t.TempDir(), "wordgram.sqlite3")

	db := New(file)
	require.Nil(t, db.InitTables())
	require.Nil(t, db.Connect())
	require.Nil(t, db.InsertDocument("a.txt", "body"))
	require.Nil(t, db.Close())

	db = New(file)
	require.Nil(t, db.Connect())
	defer db.Close()
	docs, err := db.ResolveAllDocuments()
	require.Nil(t, err)
	require.Len(t, docs, 1)
}

func Test_Finish(t *testing.T) {
	file := filepath.Join(t.TempDir(), "wordgram.sqlite3")

	db := New(file)
	require.Nil(t, db.InitTables())
	require.Nil(t, db.Connect())
	require.Nil(t, db.InsertDocument("kept.txt", "body"))
	require.Nil(t, db.Finish(nil))

	failure := errors.New("indexing failed")
	db = New(file)
	require.Nil(t, db.Connect())
	require.Nil(t, db.InsertDocument("dropped.txt", "body"))
	require.Nil(t, db.InsertToken("t1", "body"))
	require.Equal(t, failure, db.Finish(failure))

	db = New(file)
	require.Nil(t, db.Connect())
	defer db.Close()
	docs, err := db.ResolveAllDocuments()
	require.Nil(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "kept.txt", docs[0].Filename)

	tokens, err := db.ResolveAllTokens()
	require.Nil(t, err)
	require.Empty(t, tokens)
}
