package invertedindex

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/cxxxr/wordgram/lib/primitive"
)

type InvertedIndex struct {
	table map[primitive.TokenId]*PostingList
}

func New() *InvertedIndex {
	return &InvertedIndex{
		table: make(map[primitive.TokenId]*PostingList),
	}
}

func (index *InvertedIndex) Set(tokenId primitive.TokenId, postingList *PostingList) {
	index.table[tokenId] = postingList
}

func (index *InvertedIndex) Get(tokenId primitive.TokenId) *PostingList {
	postingList, ok := index.table[tokenId]
	if !ok {
		return nil
	}
	return postingList
}

func (index *InvertedIndex) Length() int {
	return len(index.table)
}

func (index *InvertedIndex) Insert(tokenId primitive.TokenId, docId primitive.DocumentId, span primitive.Span) {
	postinglist, ok := index.table[tokenId]
	if !ok {
		postinglist = newPostingList()
		index.table[tokenId] = postinglist
	}
	postinglist.insert(docId, span)
}

// TokenIds returns the ids in ascending order.
func (index *InvertedIndex) TokenIds() []primitive.TokenId {
	ids := make([]primitive.TokenId, 0, len(index.table))
	for tokenId := range index.table {
		ids = append(ids, tokenId)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (index *InvertedIndex) Map(fn func(primitive.TokenId, *PostingList) error) error {
	for _, tokenId := range index.TokenIds() {
		if err := fn(tokenId, index.table[tokenId]); err != nil {
			return err
		}
	}
	return nil
}

func (index *InvertedIndex) EncodePostingList(tokenId primitive.TokenId) ([]byte, error) {
	postinglist, ok := index.table[tokenId]
	if !ok {
		return nil, errors.Errorf("%v not found", tokenId)
	}
	return postinglist.Encode(), nil
}
