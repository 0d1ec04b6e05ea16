package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Reinit(t *testing.T) {
	tok := NewToken()
	same := tok.Reinit("cat and", 0, 6)
	require.Same(t, tok, same)
	require.Equal(t, "cat and", tok.Term)
	require.Equal(t, 7, tok.Len())

	tok.Reinit("dog", 8, 10)
	require.Equal(t, Token{Term: "dog", Start: 8, End: 10}, *tok)
	require.Equal(t, "dog[8:10]", tok.String())
}
