package indexer

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/cxxxr/wordgram/lib/database"
	"github.com/cxxxr/wordgram/lib/invertedindex"
	"github.com/cxxxr/wordgram/lib/primitive"
)

// DescribeInvertedIndex writes every gram with the documents and spans it
// occurs at.
func DescribeInvertedIndex(dbFile string, w io.Writer) (err error) {
	db := database.New(dbFile)
	if err := db.Connect(); err != nil {
		return err
	}
	defer func() {
		err = db.Finish(err)
	}()

	inverted, err := db.ResolveWholeInvertedIndex()
	if err != nil {
		return err
	}

	return inverted.Map(func(tokId primitive.TokenId, postinglist *invertedindex.PostingList) error {
		tok, err := db.ResolveTokenById(tokId)
		if err != nil {
			return err
		}
		if tok == nil {
			return errors.Errorf("token %s not found", tokId)
		}
		fmt.Fprintf(w, "--- %s %q count=%d\n", tok.Id, tok.Term, postinglist.Count())
		return postinglist.Map(func(docId primitive.DocumentId, spans []primitive.Span) error {
			doc, err := db.ResolveDocumentById(docId)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, doc.Id, doc.Filename, spans)
			return nil
		})
	})
}
