package discretiser

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/segmetric/hpm/node"
)

// SAX discretises a window into a chain of symbolic PAA nodes: per-frame
// means mapped onto an alphabet of size A via Gaussian-quantile cut points.
type SAX struct {
	maxDepth  MaxDepthFunc
	frames    FrameCountFunc
	threshold ThresholdFunc
	alphabet  int
}

// SAXOption configures a SAX discretiser.
type SAXOption func(*SAX)

func WithSAXMaxDepth(f MaxDepthFunc) SAXOption     { return func(s *SAX) { s.maxDepth = f } }
func WithSAXFrameCount(f FrameCountFunc) SAXOption { return func(s *SAX) { s.frames = f } }
func WithSAXThreshold(f ThresholdFunc) SAXOption   { return func(s *SAX) { s.threshold = f } }

// WithSAXAlphabet overrides the default alphabet size of 4.
func WithSAXAlphabet(a int) SAXOption {
	if a < 2 {
		panic("discretiser: sax alphabet must be at least 2")
	}
	return func(s *SAX) { s.alphabet = a }
}

// NewSAX builds a SAX discretiser with defaults: D=⌊log N⌋, F(d)=2^d,
// threshold(d)=0.5, alphabet=4.
func NewSAX(opts ...SAXOption) *SAX {
	s := &SAX{
		maxDepth:  DefaultMaxDepth,
		frames:    DefaultFrameCount,
		threshold: func(int) float64 { return 0.5 },
		alphabet:  4,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// cutPoints returns the A-1 inverse-Normal quantiles at k/A for k=1..A-1
// (the single value [0] when A=2, since Quantile(0.5) of a standard Normal
// is exactly 0).
func cutPoints(alphabet int) []float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1}
	cuts := make([]float64, alphabet-1)
	for k := 1; k < alphabet; k++ {
		cuts[k-1] = dist.Quantile(float64(k) / float64(alphabet))
	}
	return cuts
}

func symbolFor(mean float64, cuts []float64) int {
	sym := 0
	for _, c := range cuts {
		if mean >= c {
			sym++
		}
	}
	return sym
}

func (s *SAX) Discretise(window []float64) (Chain, error) {
	normed, _ := normalise(window)
	d := s.maxDepth(normed)
	cuts := cutPoints(s.alphabet)
	chain := make(Chain, d)
	for depth := 0; depth < d; depth++ {
		f := s.frames(depth)
		frames, err := divide(len(normed), f)
		if err != nil {
			return nil, fmt.Errorf("discretiser: sax depth %d: %w", depth, err)
		}
		means := frameMeans(normed, frames)
		symbols := make([]int, f)
		for i, m := range means {
			symbols[i] = symbolFor(m, cuts)
		}
		n, err := node.NewSAX(depth, len(normed), f, symbols, cuts, s.alphabet, s.threshold(depth))
		if err != nil {
			return nil, err
		}
		chain[depth] = n
	}
	return chain, nil
}
