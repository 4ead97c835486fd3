package zx0

// OpKind identifies one parse operation's edge kind: the chosen parse is
// an ordered sequence of (Op, length, offset?) triples.
type OpKind int

const (
	// OpLiteral copies Length bytes straight from the input.
	OpLiteral OpKind = iota
	// OpCopy copies Length bytes from Offset bytes back.
	OpCopy
	// OpCopyPrev copies Length bytes using the same offset as the
	// previous OpCopy/OpCopyPrev.
	OpCopyPrev
)

// Op is one operation in the chosen parse.
type Op struct {
	Kind   OpKind
	Length int
	Offset int // only meaningful for OpCopy; 0 for OpLiteral and OpCopyPrev
}

// backtrack walks the match graph from the terminal block back to the
// synthetic root, then replays it forward as an ordered
// slice of Ops, folding any match that reuses the previous match's offset
// into OpCopyPrev. Ground: the un-reversal step shared
// by every port in the corpus (original_source/src/compress.rs,
// other_examples/jeromelesaux-zx0__zx0.go).
func backtrack(a *arena, terminal int32) []Op {
	var reversed []block
	for h := terminal; h != 0; {
		b := *a.get(h)
		reversed = append(reversed, b)
		h = b.chain
	}
	if len(reversed) == 0 {
		internalInconsistency("backtrack reached an empty chain")
	}

	forward := make([]block, len(reversed))
	for i, b := range reversed {
		forward[len(forward)-1-i] = b
	}

	ops := make([]Op, 0, len(forward)-1)
	lastOffset := initialOffset

	for i := 1; i < len(forward); i++ {
		prev, cur := forward[i-1], forward[i]
		length := cur.pos - prev.pos
		if length <= 0 {
			internalInconsistency("backtrack produced a non-increasing block chain")
		}

		switch {
		case cur.offset == 0:
			ops = append(ops, Op{Kind: OpLiteral, Length: length})
		case cur.offset == lastOffset:
			ops = append(ops, Op{Kind: OpCopyPrev, Length: length})
		default:
			ops = append(ops, Op{Kind: OpCopy, Length: length, Offset: cur.offset})
			lastOffset = cur.offset
		}
	}

	return ops
}
