package database

import (
	"github.com/cxxxr/wordgram/lib/primitive"
)

type Document struct {
	Id       primitive.DocumentId `db:"id"`
	Filename string               `db:"filename"`
	Body     string               `db:"body"`
}

type Token struct {
	Id   primitive.TokenId `db:"id"`
	Term string            `db:"term"`
}

type InvertedIndex struct {
	TokenId     primitive.TokenId `db:"token_id"`
	PostingList []byte            `db:"posting_list"`
}
