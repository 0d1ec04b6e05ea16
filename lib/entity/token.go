package entity

import "fmt"

// Token is a reusable output slot for one gram. Start and End are inclusive
// character offsets.
type Token struct {
	Term  string
	Start int
	End   int
}

func NewToken() *Token {
	return &Token{}
}

// Reinit overwrites the slot and returns it.
func (t *Token) Reinit(term string, start, end int) *Token {
	t.Term = term
	t.Start = start
	t.End = end
	return t
}

func (t *Token) Len() int {
	return t.End - t.Start + 1
}

func (t *Token) String() string {
	return fmt.Sprintf("%s[%d:%d]", t.Term, t.Start, t.End)
}
