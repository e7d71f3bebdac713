package squeeze

// Symbol is one LZ77 token: either a literal byte (Dist == 0, LitLen is the
// byte value 0..255) or a back-reference (Dist > 0, LitLen is the match
// length in [MinMatch, MaxMatch]). Pos is the absolute input position the
// symbol starts at, kept for verification and for true-bit-cost accounting.
type Symbol struct {
	LitLen int
	Dist   int
	Pos    int
}

// IsLiteral reports whether s encodes a literal byte rather than a match.
func (s Symbol) IsLiteral() bool { return s.Dist == 0 }

// Store is an append-only container of LZ77 symbols, the "LZ77 store"
// collaborator of spec.md §6. It is deliberately a thin slice wrapper —
// the teacher's compressors thread a growing []byte the same way
// (compress9x.go's `out`), just generalized here to a symbol instead of
// already-encoded bytes.
type Store struct {
	Symbols []Symbol
}

// InitStore resets dst to an empty store, reusing its backing array.
func InitStore(dst *Store) {
	dst.Symbols = dst.Symbols[:0]
}

// CleanStore releases the store's backing array.
func CleanStore(dst *Store) {
	dst.Symbols = nil
}

// CopyStore replaces dst's contents with a copy of src's.
func CopyStore(src *Store, dst *Store) {
	dst.Symbols = append(dst.Symbols[:0], src.Symbols...)
}

// StoreLitLenDist appends one symbol to the store.
func StoreLitLenDist(litLen, dist, pos int, store *Store) {
	store.Symbols = append(store.Symbols, Symbol{LitLen: litLen, Dist: dist, Pos: pos})
}

// VerifyLenDist checks that a claimed match of the given length and
// distance starting at pos actually reproduces bytes already present in in.
// It returns ErrInternal if the match would read before the start of in,
// would run past inEnd, or the bytes disagree; FollowPath runs it on each
// match before storing it (spec.md §4.4).
func VerifyLenDist(in []byte, inEnd, pos, dist, length int) error {
	if dist > pos {
		return ErrInternal
	}
	srcStart := pos - dist
	if pos+length > inEnd || srcStart+length > len(in) {
		return ErrInternal
	}
	for i := 0; i < length; i++ {
		if in[srcStart+i] != in[pos+i] {
			return ErrInternal
		}
	}
	return nil
}

// Decode expands store back into the literal byte sequence it encodes,
// starting from an empty output: each back-reference copies from Dist bytes
// before the current end of that output, and Pos is not consulted, so a
// match that reaches back before the store's first symbol cannot be
// decoded. It is used by tests to check losslessness (spec.md §8,
// "Lossless replay").
func (s *Store) Decode() []byte {
	var out []byte
	for _, sym := range s.Symbols {
		if sym.IsLiteral() {
			out = append(out, byte(sym.LitLen))
			continue
		}
		start := len(out) - sym.Dist
		for i := 0; i < sym.LitLen; i++ {
			out = append(out, out[start+i])
		}
	}
	return out
}

// TotalLength returns the sum of all symbol lengths (1 per literal, LitLen
// per match) in the store — the number of input bytes it encodes.
func (s *Store) TotalLength() int {
	n := 0
	for _, sym := range s.Symbols {
		if sym.IsLiteral() {
			n++
		} else {
			n += sym.LitLen
		}
	}
	return n
}
