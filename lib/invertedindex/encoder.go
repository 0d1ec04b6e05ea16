package invertedindex

import "github.com/cxxxr/wordgram/lib/primitive"

type encoder struct {
	buf []byte
}

func newEncoder() *encoder {
	return &encoder{}
}

// EncodeUint writes v as 7-bit groups, most significant first. Every group
// but the last has the high bit set.
func (enc *encoder) EncodeUint(v int) {
	vs := make([]byte, 0, 4)
	vs = append(vs, byte(v&0x7f))
	for {
		v >>= 7
		if v == 0 {
			break
		}
		vs = append(vs, byte((v&0x7f)+0x80))
	}
	enc.buf = append(enc.buf, reverse(vs)...)
}

func (enc *encoder) EncodeSpans(spans []primitive.Span) {
	enc.EncodeUint(len(spans))
	for _, span := range spans {
		enc.EncodeUint(span.Start)
		enc.EncodeUint(span.End)
	}
}

func (enc *encoder) EncodePosting(posting *Posting) {
	enc.EncodeUint(int(posting.documentId))
	enc.EncodeSpans(posting.spans)
}

func (enc *encoder) EncodePostingList(postinglist *PostingList) {
	enc.EncodeUint(postinglist.Count())
	for p := postinglist.Posting(); p != nil; p = p.next {
		enc.EncodePosting(p)
	}
}

func (enc *encoder) Bytes() []byte {
	return enc.buf
}

func reverse[T any](vs []T) []T {
	size := len(vs)
	for i := 0; i < size/2; i++ {
		vs[i], vs[size-i-1] = vs[size-i-1], vs[i]
	}
	return vs
}
