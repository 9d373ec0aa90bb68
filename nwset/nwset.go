package nwset

import (
	"fmt"

	"github.com/segmetric/hpm/nestedword"
	"github.com/segmetric/hpm/pattern"
)

// PatternModelKind selects the underlying pattern.Model a NestedWordSet
// builds its vertex ids over. Only models implementing pattern.VertexLookup
// qualify.
type PatternModelKind int

const (
	// PatternGraphKind uses a pattern.PatternGraph (the default).
	PatternGraphKind PatternModelKind = iota
	// PatternTreeKind uses a pattern.PatternTree.
	PatternTreeKind
)

type config struct {
	contextSize  int
	patternModel PatternModelKind
	closestMatch bool
}

// Option configures a NestedWordSet at construction time.
type Option func(*config)

// WithContextSize sets how many consecutive chains are combined into one
// NestedWord. Default 2.
func WithContextSize(n int) Option { return func(c *config) { c.contextSize = n } }

// WithPatternModel selects the pattern model backing the set. Default
// PatternGraphKind.
func WithPatternModel(kind PatternModelKind) Option {
	return func(c *config) { c.patternModel = kind }
}

// WithClosestMatch selects pattern.ClosestMatch (true, the default) or
// pattern.FirstMatch (false) for the underlying model's traversal.
func WithClosestMatch(closest bool) Option {
	return func(c *config) { c.closestMatch = closest }
}

type vertexModel interface {
	pattern.Model
	pattern.VertexLookup
}

// NestedWordSet learns pattern-model chains in a sliding context window and
// records the NestedWord each complete window combines into.
type NestedWordSet struct {
	patterns      vertexModel
	contextSize   int
	contextQueue  []nestedword.NestedWord
	nestedWords   map[string]nestedword.NestedWord
	combinedCache map[string]nestedword.NestedWord
}

// New builds an empty NestedWordSet.
func New(opts ...Option) (*NestedWordSet, error) {
	cfg := config{contextSize: 2, patternModel: PatternGraphKind, closestMatch: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.contextSize <= 0 {
		return nil, fmt.Errorf("%w: context size %d must be positive", ErrInvalidInput, cfg.contextSize)
	}

	mode := pattern.FirstMatch
	if cfg.closestMatch {
		mode = pattern.ClosestMatch
	}
	var patterns vertexModel
	switch cfg.patternModel {
	case PatternTreeKind:
		patterns = pattern.NewPatternTree(mode)
	default:
		patterns = pattern.NewPatternGraph(mode)
	}

	return &NestedWordSet{
		patterns:      patterns,
		contextSize:   cfg.contextSize,
		nestedWords:   make(map[string]nestedword.NestedWord),
		combinedCache: make(map[string]nestedword.NestedWord),
	}, nil
}

// Patterns exposes the underlying pattern model, e.g. for scoring a chain
// directly against the learned vocabulary.
func (s *NestedWordSet) Patterns() pattern.Model { return s.patterns }

// ContextSize reports the configured context window length.
func (s *NestedWordSet) ContextSize() int { return s.contextSize }

// chainToNW turns one chain into a minimal NestedWord: every position but
// the last is a pending call over the chain's matched vertex ids, and the
// last is an internal. A singleton chain is a single internal.
func (s *NestedWordSet) chainToNW(chain pattern.Chain) (nestedword.NestedWord, error) {
	ids, err := s.patterns.ChainVertexIDs(chain)
	if err != nil {
		return nestedword.NestedWord{}, err
	}
	nw := nestedword.Empty()
	if len(ids) > 1 {
		if err := nw.AddCalls(ids[:len(ids)-1]); err != nil {
			return nestedword.NestedWord{}, err
		}
	}
	nw.AddInternal(ids[len(ids)-1])
	return nw, nil
}

// closePositions matches the `number` most recently opened pending calls in
// nw with new return positions, each labelled by the symbol currently at the
// call it closes.
func closePositions(nw *nestedword.NestedWord, number int) error {
	if number <= 0 {
		return fmt.Errorf("%w: cannot close %d positions", ErrInvalidInput, number)
	}
	pending := nw.Matching.GetPendingCalls() // ascending
	if number > len(pending) {
		return fmt.Errorf("%w: cannot close %d positions, only %d pending", ErrInvalidInput, number, len(pending))
	}
	top := pending[len(pending)-number:]
	for i := len(top) - 1; i >= 0; i-- {
		if err := nw.AddReturn(nw.Word.At(top[i])); err != nil {
			return err
		}
	}
	return nil
}

// combine folds nw2 onto nw1: it walks the common prefix of their pending
// call symbols, and at the first divergence closes nw1's remaining pending
// calls (most recent first) and splices in nw2's tail from that point. If
// the whole common prefix matches, nw1 is returned with nw2's trailing
// symbol appended when it differs from nw1's. Results are cached on the pair
// of NestedWord keys.
func (s *NestedWordSet) combine(nw1, nw2 nestedword.NestedWord) (nestedword.NestedWord, error) {
	if nw1.Len() == 0 {
		return nw2, nil
	}

	key := nw1.Key() + "\x00" + nw2.Key()
	if cached, ok := s.combinedCache[key]; ok {
		return cached, nil
	}

	p1 := nw1.Matching.GetPendingCalls()
	p2 := nw2.Matching.GetPendingCalls()
	n := len(p1)
	if len(p2) < n {
		n = len(p2)
	}

	result, err := nestedword.Empty().Concat(nw1)
	if err != nil {
		return nestedword.NestedWord{}, err
	}

	for d := 0; d < n; d++ {
		if nw1.Word.At(p1[d]) != nw2.Word.At(p2[d]) {
			if err := closePositions(&result, len(p1)-d); err != nil {
				return nestedword.NestedWord{}, err
			}
			tail, err := nw2.Slice(p2[d], nw2.Len())
			if err != nil {
				return nestedword.NestedWord{}, err
			}
			result, err = result.Concat(tail)
			if err != nil {
				return nestedword.NestedWord{}, err
			}
			break
		}
	}

	if result.Word.At(result.Len()-1) != nw2.Word.At(nw2.Len()-1) {
		result.AddInternal(nw2.Word.At(nw2.Len() - 1))
	}

	s.combinedCache[key] = result
	return result, nil
}

func (s *NestedWordSet) combineAll(nws []nestedword.NestedWord) (nestedword.NestedWord, error) {
	result := nestedword.Empty()
	for _, nw := range nws {
		combined, err := s.combine(result, nw)
		if err != nil {
			return nestedword.NestedWord{}, err
		}
		result = combined
	}
	return result, nil
}

// Update learns chain in the underlying pattern model, pushes its
// NestedWord into the context queue (evicting the oldest once the queue is
// full), and, once the queue holds a full window, returns the combined
// NestedWord for that window. Returns nil, nil while the window is still
// filling.
func (s *NestedWordSet) Update(chain pattern.Chain) ([]nestedword.NestedWord, error) {
	if len(chain) == 0 {
		return nil, fmt.Errorf("%w: empty chain", ErrInvalidInput)
	}
	if _, err := s.patterns.Update(chain); err != nil {
		return nil, err
	}
	nw, err := s.chainToNW(chain)
	if err != nil {
		return nil, err
	}

	if len(s.contextQueue) >= s.contextSize {
		s.contextQueue = append(s.contextQueue[:0:0], s.contextQueue[1:]...)
	}
	s.contextQueue = append(s.contextQueue, nw)

	if len(s.contextQueue) < s.contextSize {
		return nil, nil
	}

	combined, err := s.combineAll(s.contextQueue)
	if err != nil {
		return nil, err
	}
	s.nestedWords[combined.Key()] = combined
	return []nestedword.NestedWord{combined}, nil
}

// Learn folds Update over chains in order, collecting every combined
// NestedWord produced along the way.
func (s *NestedWordSet) Learn(chains []pattern.Chain) ([]nestedword.NestedWord, error) {
	var out []nestedword.NestedWord
	for _, c := range chains {
		produced, err := s.Update(c)
		if err != nil {
			return nil, err
		}
		out = append(out, produced...)
	}
	return out, nil
}

// Contains reports whether the window chains, combined exactly as Update
// would, matches a NestedWord already recorded in the set. chains must have
// length ContextSize().
func (s *NestedWordSet) Contains(chains []pattern.Chain) (bool, error) {
	if len(chains) != s.contextSize {
		return false, fmt.Errorf("%w: expected %d chains, got %d", ErrInvalidInput, s.contextSize, len(chains))
	}
	nws := make([]nestedword.NestedWord, len(chains))
	for i, c := range chains {
		if len(c) == 0 {
			return false, fmt.Errorf("%w: empty chain", ErrInvalidInput)
		}
		nw, err := s.chainToNW(c)
		if err != nil {
			return false, err
		}
		nws[i] = nw
	}
	combined, err := s.combineAll(nws)
	if err != nil {
		return false, err
	}
	_, ok := s.nestedWords[combined.Key()]
	return ok, nil
}

// Len reports how many distinct combined NestedWords have been recorded.
func (s *NestedWordSet) Len() int { return len(s.nestedWords) }
