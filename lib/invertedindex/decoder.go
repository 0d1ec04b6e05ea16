package invertedindex

import (
	"github.com/pkg/errors"

	"github.com/cxxxr/wordgram/lib/primitive"
)

var ErrShortBuffer = errors.New("posting list truncated")

type decoder struct {
	buf []byte
	pos int
}

func newDecoder(blob []byte) *decoder {
	return &decoder{buf: blob}
}

func (dec *decoder) decodeUint() (int, error) {
	v := 0
	for {
		if dec.pos >= len(dec.buf) {
			return 0, errors.Wrapf(ErrShortBuffer, "offset %d", dec.pos)
		}
		b := int(dec.buf[dec.pos])
		dec.pos++
		v <<= 7
		if (b >> 7) == 1 {
			v |= (b ^ 128)
		} else {
			v |= b
			return v, nil
		}
	}
}

func (dec *decoder) decodeSpans() ([]primitive.Span, error) {
	n, err := dec.decodeUint()
	if err != nil {
		return nil, err
	}
	spans := make([]primitive.Span, n)
	for i := 0; i < n; i++ {
		if spans[i].Start, err = dec.decodeUint(); err != nil {
			return nil, err
		}
		if spans[i].End, err = dec.decodeUint(); err != nil {
			return nil, err
		}
	}
	return spans, nil
}

func (dec *decoder) decodePosting() (*Posting, error) {
	docId, err := dec.decodeUint()
	if err != nil {
		return nil, err
	}
	spans, err := dec.decodeSpans()
	if err != nil {
		return nil, err
	}
	return NewPosting(primitive.DocumentId(docId), spans), nil
}

func (dec *decoder) DecodePostingList() (*PostingList, error) {
	count, err := dec.decodeUint()
	if err != nil {
		return nil, err
	}
	postinglist := newPostingList()
	for i := 0; i < count; i++ {
		posting, err := dec.decodePosting()
		if err != nil {
			return nil, err
		}
		postinglist.push(posting)
	}
	return postinglist, nil
}
