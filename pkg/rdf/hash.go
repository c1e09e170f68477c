package rdf

import "github.com/zeebo/xxh3"

// hashString mixes a one-byte type tag into the term's canonical string
// form before hashing, so that a NamedNode and a Literal that happen to
// share lexical text never collide on the same hash.
func hashString(tag byte, s string) uint64 {
	buf := make([]byte, 0, len(s)+1)
	buf = append(buf, tag)
	buf = append(buf, s...)
	return xxh3.Hash(buf)
}
