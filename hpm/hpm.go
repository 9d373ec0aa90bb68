package hpm

import (
	"fmt"

	"github.com/segmetric/hpm/discretiser"
	"github.com/segmetric/hpm/nwset"
	"github.com/segmetric/hpm/pattern"
	"github.com/segmetric/hpm/segmenter"
)

// Config holds the components Run wires together. Build one with Option
// values; any left unset default to the driver's standard configuration.
// Exactly one of a pattern.Model (via WithModel) or a NestedWordSet (via
// WithNestedWordSet) is active; setting one clears the other.
type Config struct {
	segmenter   *segmenter.SlidingWindow
	discretiser discretiser.Discretiser
	model       pattern.Model
	nwSet       *nwset.NestedWordSet
}

// Option configures a Config at Run time.
type Option func(*Config)

// WithSegmenter overrides the default 200-sample SlidingWindow.
func WithSegmenter(s *segmenter.SlidingWindow) Option {
	return func(c *Config) { c.segmenter = s }
}

// WithDiscretiser overrides the default StructuralProminence discretiser.
func WithDiscretiser(d discretiser.Discretiser) Option {
	return func(c *Config) { c.discretiser = d }
}

// WithModel scores test chains one at a time against m, clearing any
// configured NestedWordSet.
func WithModel(m pattern.Model) Option {
	return func(c *Config) { c.model = m; c.nwSet = nil }
}

// WithNestedWordSet scores a sliding context window of test chains against
// s, clearing any configured pattern.Model.
func WithNestedWordSet(s *nwset.NestedWordSet) Option {
	return func(c *Config) { c.nwSet = s; c.model = nil }
}

func defaultConfig() (*Config, error) {
	seg, err := segmenter.New(200)
	if err != nil {
		return nil, err
	}
	return &Config{
		segmenter:   seg,
		discretiser: discretiser.NewStructuralProminence(),
		model:       pattern.NewPatternTree(pattern.FirstMatch),
	}, nil
}

// Run trains on train and scores every point of test: values near 1 mean
// the pattern was seen during training, values near 0 mean it was not.
// Points not covered by any test segment score 0.
//
// Returns ErrTooShort if test is shorter than twice the configured window
// size, without touching train.
func Run(train, test []float64, opts ...Option) ([]float64, error) {
	cfg, err := defaultConfig()
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.model == nil && cfg.nwSet == nil {
		return nil, fmt.Errorf("%w: no model or nested word set configured", ErrInvalidInput)
	}

	windowSize := cfg.segmenter.WindowSize()
	if len(test) < 2*windowSize {
		return nil, ErrTooShort
	}

	trainChains, _, err := discretiseAll(cfg.segmenter, cfg.discretiser, train)
	if err != nil {
		return nil, err
	}
	testChains, segmentLen, err := discretiseAll(cfg.segmenter, cfg.discretiser, test)
	if err != nil {
		return nil, err
	}
	// Segment may have replaced the configured window size with an
	// autocorrelation-derived one; score over what the segments cover.
	windowSize = segmentLen

	if cfg.nwSet != nil {
		if _, err := cfg.nwSet.Learn(trainChains); err != nil {
			return nil, err
		}
	} else if _, err := cfg.model.Learn(trainChains); err != nil {
		return nil, err
	}

	counts := make([]float64, len(test))
	scores := make([]float64, len(test))
	stepSize := cfg.segmenter.StepSize()

	if cfg.nwSet != nil {
		k := cfg.nwSet.ContextSize()
		for i := 0; i+k <= len(testChains); i++ {
			contains, err := cfg.nwSet.Contains(testChains[i : i+k])
			if err != nil {
				return nil, err
			}
			start := i * stepSize
			end := min((i+k-1)*stepSize+windowSize, len(test))
			accumulate(counts, scores, start, end, contains)
		}
	} else {
		for i, chain := range testChains {
			contains, err := cfg.model.Contains(chain)
			if err != nil {
				return nil, err
			}
			start := i * stepSize
			end := min(start+windowSize, len(test))
			accumulate(counts, scores, start, end, contains)
		}
	}

	out := make([]float64, len(test))
	for t := range out {
		if counts[t] == 0 {
			continue
		}
		out[t] = scores[t] / counts[t]
	}
	return out, nil
}

func discretiseAll(seg *segmenter.SlidingWindow, disc discretiser.Discretiser, data []float64) ([]pattern.Chain, int, error) {
	windows, err := seg.Segment(data)
	if err != nil {
		return nil, 0, err
	}
	chains := make([]pattern.Chain, len(windows))
	for i, w := range windows {
		c, err := disc.Discretise(w)
		if err != nil {
			return nil, 0, err
		}
		chains[i] = pattern.Chain(c)
	}
	return chains, len(windows[0]), nil
}

func accumulate(counts, scores []float64, start, end int, contains bool) {
	v := 0.0
	if contains {
		v = 1.0
	}
	for t := start; t < end; t++ {
		counts[t]++
		scores[t] += v
	}
}
