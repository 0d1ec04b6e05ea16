package searcher

import (
	"github.com/cxxxr/wordgram/lib/database"
	"github.com/cxxxr/wordgram/lib/primitive"
)

type Result struct {
	doc  *database.Document
	term string
	span primitive.Span
}

func newResult(doc *database.Document, term string, span primitive.Span) *Result {
	return &Result{doc, term, span}
}

func (r *Result) Filename() string {
	return r.doc.Filename
}

func (r *Result) Term() string {
	return r.term
}

func (r *Result) Span() primitive.Span {
	return r.span
}
