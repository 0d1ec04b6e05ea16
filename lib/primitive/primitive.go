package primitive

type TokenId string

const EmptyTokenId = TokenId("")

type DocumentId int

// Span is an inclusive character range inside a document.
type Span struct {
	Start int
	End   int
}
