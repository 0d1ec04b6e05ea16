package invertedindex

import (
	"github.com/pkg/errors"

	"github.com/cxxxr/wordgram/lib/primitive"
)

var ErrCorrupted = errors.New("posting list corrupted")

type Posting struct {
	documentId primitive.DocumentId
	spans      []primitive.Span
	next       *Posting
}

func NewPosting(docId primitive.DocumentId, spans []primitive.Span) *Posting {
	return &Posting{documentId: docId, spans: spans}
}

func (p *Posting) DocumentId() primitive.DocumentId {
	return p.documentId
}

func (p *Posting) Next() *Posting {
	return p.next
}

func (p *Posting) Spans() []primitive.Span {
	return p.spans
}

// PostingList keeps postings ordered by document id.
type PostingList struct {
	head  *Posting
	tail  *Posting
	count int
}

func newPostingList() *PostingList {
	return &PostingList{}
}

func (p *PostingList) Count() int {
	if p == nil {
		return 0
	}
	return p.count
}

func (p *PostingList) Posting() *Posting {
	return p.head
}

func (p *PostingList) insert(docId primitive.DocumentId, span primitive.Span) {
	node := &p.head

	for *node != nil {
		current := *node

		if current.documentId == docId {
			// spans arrive in emission order, which is grouped by gram size
			current.spans = append(current.spans, span)
			return
		}
		if docId < current.documentId {
			p.count++
			*node = &Posting{documentId: docId, spans: []primitive.Span{span}, next: current}
			return
		}

		node = &current.next
	}

	p.count++
	posting := &Posting{documentId: docId, spans: []primitive.Span{span}}
	*node = posting
	p.tail = posting
}

// push appends a posting that is known to carry the largest document id.
func (p *PostingList) push(posting *Posting) {
	posting.next = nil
	if p.tail == nil {
		p.head = posting
	} else {
		p.tail.next = posting
	}
	p.tail = posting
	p.count++
}

func (p *PostingList) Map(fn func(primitive.DocumentId, []primitive.Span) error) error {
	if p == nil {
		return nil
	}
	for current := p.head; current != nil; current = current.next {
		if err := fn(current.documentId, current.spans); err != nil {
			return err
		}
	}
	return nil
}

func (p *PostingList) CheckCorruption() error {
	prevId := primitive.DocumentId(-1)
	n := 0

	err := p.Map(func(id primitive.DocumentId, _ []primitive.Span) error {
		if prevId >= id {
			return errors.Wrapf(ErrCorrupted, "document %d after %d", id, prevId)
		}
		prevId = id
		n++
		return nil
	})
	if err != nil {
		return err
	}
	if n != p.Count() {
		return errors.Wrapf(ErrCorrupted, "count %d, found %d postings", p.Count(), n)
	}
	return nil
}

func (p *PostingList) Encode() []byte {
	enc := newEncoder()
	enc.EncodePostingList(p)
	return enc.Bytes()
}

func DecodePostingList(blob []byte) (*PostingList, error) {
	postinglist, err := newDecoder(blob).DecodePostingList()
	if err != nil {
		return nil, err
	}
	return postinglist, nil
}
