package nestedword

// Clone returns an independent copy of m.
func (m *MatchingRelation) Clone() *MatchingRelation {
	succ := make([]int, len(m.succ))
	copy(succ, m.succ)
	pred := make([]int, len(m.pred))
	copy(pred, m.pred)
	return &MatchingRelation{length: m.length, succ: succ, pred: pred}
}

// Clone returns an independent copy of nw; nw.Word is an immutable value
// and is shared, but the Matching is deep-copied so mutating the clone
// never affects nw.
func (nw NestedWord) Clone() NestedWord {
	return NestedWord{Word: nw.Word, Matching: nw.Matching.Clone()}
}
