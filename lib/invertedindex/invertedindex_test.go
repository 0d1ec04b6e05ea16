package invertedindex

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/cxxxr/wordgram/lib/primitive"
)

func Test_InvertedIndex(t *testing.T) {
	index := New()
	index.Insert("b", 1, primitive.Span{Start: 0, End: 2})
	index.Insert("a", 2, primitive.Span{Start: 4, End: 4})
	index.Insert("a", 1, primitive.Span{Start: 6, End: 8})

	require.Equal(t, 2, index.Length())
	require.Equal(t, []primitive.TokenId{"a", "b"}, index.TokenIds())
	require.Nil(t, index.Get("missing"))
	require.Equal(t, 2, index.Get("a").Count())

	visited := make([]primitive.TokenId, 0)
	err := index.Map(func(id primitive.TokenId, list *PostingList) error {
		visited = append(visited, id)
		return list.CheckCorruption()
	})
	require.Nil(t, err)
	require.Equal(t, []primitive.TokenId{"a", "b"}, visited)

	_, err = index.EncodePostingList("missing")
	require.NotNil(t, err)
}

func Test_CheckCorruption(t *testing.T) {
	list := newPostingList()
	list.push(NewPosting(3, nil))
	list.push(NewPosting(1, nil))
	require.True(t, errors.Is(list.CheckCorruption(), ErrCorrupted))

	var empty *PostingList
	require.Nil(t, empty.CheckCorruption())
}
