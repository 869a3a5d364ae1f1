package lambda

import (
	"encoding/binary"
	"hash/fnv"
)

// Equal reports structural equality: same variants, same names, same
// shape. Alpha-equivalent terms with different bound names are not
// Equal; reduction renames deterministically so that structural
// comparison is enough to assert on results.
func Equal(a, b Term) bool {
	type pair struct {
		a, b Term
	}
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch a := p.a.(type) {
		case Variable:
			b, ok := p.b.(Variable)
			if !ok || a.Name != b.Name {
				return false
			}
		case Abstraction:
			b, ok := p.b.(Abstraction)
			if !ok || a.Param != b.Param {
				return false
			}
			stack = append(stack, pair{a.Body, b.Body})
		case Application:
			b, ok := p.b.(Application)
			if !ok {
				return false
			}
			stack = append(stack, pair{a.Fn, b.Fn}, pair{a.Arg, b.Arg})
		default:
			if p.a != p.b {
				return false
			}
		}
	}
	return true
}

// Hash returns a key for t consistent with Equal: structurally equal
// terms hash alike. Variants are tagged and names length-prefixed, so
// the pre-order byte stream is unambiguous.
func Hash(t Term) uint64 {
	h := fnv.New64a()
	var buf [binary.MaxVarintLen64]byte
	writeName := func(name string) {
		n := binary.PutUvarint(buf[:], uint64(len(name)))
		h.Write(buf[:n])
		h.Write([]byte(name))
	}
	stack := []Term{t}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch t := t.(type) {
		case Variable:
			h.Write([]byte{1})
			writeName(t.Name)
		case Abstraction:
			h.Write([]byte{2})
			writeName(t.Param)
			stack = append(stack, t.Body)
		case Application:
			h.Write([]byte{3})
			stack = append(stack, t.Arg, t.Fn)
		}
	}
	return h.Sum64()
}
