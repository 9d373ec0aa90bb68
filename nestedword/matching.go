package nestedword

import "fmt"

// NoPosition is the public sentinel for "this side of a match is absent":
// a pending call has no return yet (NoPosition as the return), and a
// pending return has no call yet (NoPosition as the call).
const NoPosition = -1

// Internal per-slot sentinels. notApplicable means "this position plays no
// role on this side" (not a call, for succ; not a return, for pred).
// pendingMark means "this position is a call/return whose counterpart has
// not been set yet". Any other value is an actual matched position.
const (
	notApplicable = -1
	pendingMark   = -2
)

// Match is one (call, return) pair as reported by Matches/GetMatch; either
// side may be NoPosition.
type Match struct {
	Call, Ret int
}

// MatchingRelation is a call/return matching discipline over positions
// [0, length). See the package doc comment for the encoding.
type MatchingRelation struct {
	length int
	succ   []int // succ[i]: return matched to call i, or pendingMark, or notApplicable if i is not a call
	pred   []int // pred[j]: call matched to return j, or pendingMark, or notApplicable if j is not a return
}

// NewMatching returns an empty MatchingRelation of the given length, with
// every position internal.
func NewMatching(length int) *MatchingRelation {
	succ := make([]int, length)
	pred := make([]int, length)
	for i := range succ {
		succ[i] = notApplicable
		pred[i] = notApplicable
	}
	return &MatchingRelation{length: length, succ: succ, pred: pred}
}

// Len reports the number of positions.
func (m *MatchingRelation) Len() int { return m.length }

// IsCall reports whether i is a call position (matched or pending).
func (m *MatchingRelation) IsCall(i int) bool { return m.succ[i] != notApplicable }

// IsReturn reports whether i is a return position (matched or pending).
func (m *MatchingRelation) IsReturn(i int) bool { return m.pred[i] != notApplicable }

// IsInternal reports whether i is neither a call nor a return.
func (m *MatchingRelation) IsInternal(i int) bool { return !m.IsCall(i) && !m.IsReturn(i) }

// IsPending reports whether i is a call with no return yet, or a return
// with no call yet.
func (m *MatchingRelation) IsPending(i int) bool {
	return m.succ[i] == pendingMark || m.pred[i] == pendingMark
}

func (m *MatchingRelation) checkPosition(pos int) error {
	if pos == NoPosition {
		return nil
	}
	if pos < 0 || pos >= m.length {
		return fmt.Errorf("%w: position %d for length %d", ErrInternal, pos, m.length)
	}
	return nil
}

// Matches returns every match currently recorded, one entry per (call,
// return) pair including pending ones, in ascending position order.
func (m *MatchingRelation) Matches() []Match {
	out := make([]Match, 0)
	for i := 0; i < m.length; i++ {
		switch {
		case m.succ[i] != notApplicable:
			ret := m.succ[i]
			if ret == pendingMark {
				ret = NoPosition
			}
			out = append(out, Match{Call: i, Ret: ret})
		case m.pred[i] == pendingMark:
			out = append(out, Match{Call: NoPosition, Ret: i})
		}
	}
	return out
}

// GetPendingCalls returns every call position with no return yet, in
// ascending order.
func (m *MatchingRelation) GetPendingCalls() []int {
	out := make([]int, 0)
	for i := 0; i < m.length; i++ {
		if m.succ[i] == pendingMark {
			out = append(out, i)
		}
	}
	return out
}

// GetPendingReturns returns every return position with no call yet, in
// ascending order.
func (m *MatchingRelation) GetPendingReturns() []int {
	out := make([]int, 0)
	for i := 0; i < m.length; i++ {
		if m.pred[i] == pendingMark {
			out = append(out, i)
		}
	}
	return out
}

// GetMatch returns the match that position i belongs to: (i, returnPos) if
// i is a call, (callPos, i) if i is a return, with NoPosition on whichever
// side is pending. ok is false if i is internal.
func (m *MatchingRelation) GetMatch(i int) (call, ret int, ok bool) {
	if m.succ[i] != notApplicable {
		call = i
		if m.succ[i] == pendingMark {
			ret = NoPosition
		} else {
			ret = m.succ[i]
		}
		return call, ret, true
	}
	if m.pred[i] != notApplicable {
		ret = i
		if m.pred[i] == pendingMark {
			call = NoPosition
		} else {
			call = m.pred[i]
		}
		return call, ret, true
	}
	return 0, 0, false
}

// validateCrossing mirrors original_source's _validate_crossing case
// analysis verbatim: call/ret (the candidate new match) against every
// existing match, with NoPosition standing in for Python's None.
func (m *MatchingRelation) validateCrossing(call, ret int) error {
	for _, existing := range m.Matches() {
		c, r := existing.Call, existing.Ret
		if (call == NoPosition && c == NoPosition) || (ret == NoPosition && r == NoPosition) {
			continue
		}
		switch {
		case call == NoPosition:
			if r == NoPosition {
				if c < ret {
					return crossingError(call, ret, c, r)
				}
			} else if c < ret && ret < r {
				return crossingError(call, ret, c, r)
			}
		case ret == NoPosition:
			if c == NoPosition {
				if call < r {
					return crossingError(call, ret, c, r)
				}
			} else if c < call && call < r {
				return crossingError(call, ret, c, r)
			}
		case c == NoPosition:
			if call < r && r < ret {
				return crossingError(call, ret, c, r)
			}
		case r == NoPosition:
			if call < c && c < ret {
				return crossingError(call, ret, c, r)
			}
		default:
			if (call < c && c <= ret && ret <= r) || (c < call && call <= r && r <= ret) {
				return crossingError(call, ret, c, r)
			}
		}
	}
	return nil
}

func crossingError(call, ret, c, r int) error {
	return fmt.Errorf("%w: match (%d, %d) crosses existing match (%d, %d)", ErrIncomparable, call, ret, c, r)
}

// SetMatch records a match between call and ret; either (but not both) may
// be NoPosition to leave that side pending. Fails without mutating state if
// the arguments are malformed, out of bounds, or would cross an existing
// match.
func (m *MatchingRelation) SetMatch(call, ret int) error {
	if call == NoPosition && ret == NoPosition {
		return fmt.Errorf("%w: at least one of call, return must be an actual position", ErrInvalidInput)
	}
	if call != NoPosition && ret != NoPosition {
		if call == ret {
			return fmt.Errorf("%w: position %d cannot be both call and return", ErrInvalidInput, call)
		}
		if call >= ret {
			return fmt.Errorf("%w: call %d must precede return %d", ErrInvalidInput, call, ret)
		}
	}
	if err := m.checkPosition(call); err != nil {
		return err
	}
	if err := m.checkPosition(ret); err != nil {
		return err
	}
	if err := m.validateCrossing(call, ret); err != nil {
		return err
	}
	if call != NoPosition {
		if ret == NoPosition {
			m.succ[call] = pendingMark
		} else {
			m.succ[call] = ret
		}
	}
	if ret != NoPosition {
		if call == NoPosition {
			m.pred[ret] = pendingMark
		} else {
			m.pred[ret] = call
		}
	}
	return nil
}

// RemoveMatch clears the match at position i, whichever side it occupies.
// Fails if i is internal or out of bounds.
func (m *MatchingRelation) RemoveMatch(i int) error {
	if err := m.checkPosition(i); err != nil {
		return err
	}
	call, ret, ok := m.GetMatch(i)
	if !ok {
		return fmt.Errorf("%w: position %d is internal", ErrInvalidInput, i)
	}
	if call != NoPosition {
		m.succ[call] = notApplicable
	}
	if ret != NoPosition {
		m.pred[ret] = notApplicable
	}
	return nil
}

// Extend grows the relation by k new internal positions.
func (m *MatchingRelation) Extend(k int) error {
	if k < 0 {
		return fmt.Errorf("%w: extend length %d must be non-negative", ErrInvalidInput, k)
	}
	for i := 0; i < k; i++ {
		m.succ = append(m.succ, notApplicable)
		m.pred = append(m.pred, notApplicable)
	}
	m.length += k
	return nil
}

// Slice returns the matching relation restricted to [a, b): matches
// entirely inside become matches; matches crossing the boundary become
// pending on the side outside the slice.
func (m *MatchingRelation) Slice(a, b int) (*MatchingRelation, error) {
	if a < 0 || b > m.length || a > b {
		return nil, fmt.Errorf("%w: slice [%d:%d) out of bounds for length %d", ErrInvalidInput, a, b, m.length)
	}
	length := b - a
	out := NewMatching(length)
	for pos := a; pos < b; pos++ {
		switch {
		case m.succ[pos] != notApplicable:
			call := pos - a
			var ret int
			if m.succ[pos] == pendingMark {
				ret = NoPosition
			} else {
				retPos := m.succ[pos] - a
				if retPos >= length {
					ret = NoPosition
				} else {
					ret = retPos
				}
			}
			if err := out.SetMatch(call, ret); err != nil {
				return nil, err
			}
		case m.pred[pos] != notApplicable:
			var call int
			if m.pred[pos] == pendingMark {
				call = NoPosition
			} else {
				callPos := m.pred[pos] - a
				if callPos < 0 {
					call = NoPosition
				} else {
					call = callPos
				}
			}
			if call == NoPosition {
				ret := pos - a
				if err := out.SetMatch(call, ret); err != nil {
					return nil, err
				}
			}
			// else: the matching call lies inside [a, b) too and will set
			// this exact pair when that position is visited as a call.
		}
	}
	return out, nil
}

// Equal reports whether m and other encode the same matches over the same
// length.
func (m *MatchingRelation) Equal(other *MatchingRelation) bool {
	if other == nil || m.length != other.length {
		return false
	}
	for i := 0; i < m.length; i++ {
		if m.succ[i] != other.succ[i] || m.pred[i] != other.pred[i] {
			return false
		}
	}
	return true
}
