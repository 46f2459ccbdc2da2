package urlregex

import (
	"io"
	"strings"
	"sync"

	"github.com/coregx/coregex"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Scorer Scorer
	Logger logrus.FieldLogger
}

func DefaultConfig() *Config {
	return &Config{
		Scorer: DistanceScore,
		Logger: discardLogger(),
	}
}

type Option func(*Config)

// WithScorer sets the function the aligner uses to rate segment pairs.
func WithScorer(scorer Scorer) Option {
	return func(c *Config) {
		if scorer != nil {
			c.Scorer = scorer
		}
	}
}

// WithLogger sets the logger for fold diagnostics. Entries are debug level.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Inducer learns a sample of URLs and produces one pattern matching all of
// them. It is safe for concurrent use.
type Inducer struct {
	mu     sync.RWMutex
	config *Config

	paths        *orderedMap[string, []Segment]
	queries      *QueryAccumulator
	sawHTTP      bool
	sawHTTPS     bool
	learnedCount int
	queriedCount int
}

func NewInducer(opts ...Option) *Inducer {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	return &Inducer{
		config:  config,
		paths:   newOrderedMap[string, []Segment](),
		queries: NewQueryAccumulator(),
	}
}

func (in *Inducer) Learn(urls []string) {
	in.mu.Lock()
	defer in.mu.Unlock()

	for _, url := range urls {
		in.insert(url)
	}
}

func (in *Inducer) insert(url string) {
	d := Decompose(url)

	switch d.Protocol {
	case ProtocolHTTP:
		in.sawHTTP = true
	case ProtocolHTTPS:
		in.sawHTTPS = true
	}

	in.paths.Set(d.Key, d.Segments)
	in.learnedCount++

	if d.HasQuery {
		in.queriedCount++
		in.queries.Add(d.Query)
	}
}

// Reset forgets everything learned so far.
func (in *Inducer) Reset() {
	in.mu.Lock()
	defer in.mu.Unlock()

	in.paths = newOrderedMap[string, []Segment]()
	in.queries = NewQueryAccumulator()
	in.sawHTTP, in.sawHTTPS = false, false
	in.learnedCount, in.queriedCount = 0, 0
}

// Pattern folds the learned URLs into one generalized sequence and renders
// it as a regular expression.
func (in *Inducer) Pattern() (string, error) {
	in.mu.RLock()
	defer in.mu.RUnlock()

	if in.learnedCount == 0 {
		return "", &InsufficientDataError{Count: in.learnedCount}
	}

	var sb strings.Builder
	sb.WriteString(protocolPrefix(in.sawHTTP, in.sawHTTPS))
	sb.WriteString(assemble(in.generalize()))
	sb.WriteString(in.queries.Fragment(in.queriedCount == in.learnedCount))
	sb.WriteString("$")

	pattern := sb.String()
	in.config.Logger.WithFields(logrus.Fields{
		"learned": in.learnedCount,
		"unique":  in.paths.Len(),
		"pattern": pattern,
	}).Debug("assembled pattern")

	return pattern, nil
}

// Compile builds the pattern and compiles it.
func (in *Inducer) Compile() (*coregex.Regex, error) {
	pattern, err := in.Pattern()
	if err != nil {
		return nil, err
	}

	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return re, nil
}

// Generalized returns the folded segment sequence, or nil if nothing was
// learned.
func (in *Inducer) Generalized() []Segment {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.generalize()
}

// generalize left-folds every distinct URL into the accumulator. Callers
// hold the lock.
func (in *Inducer) generalize() []Segment {
	var generalized []Segment
	step := 0
	in.paths.Each(func(key string, segments []Segment) {
		if step == 0 {
			generalized = append([]Segment(nil), segments...)
			step++
			return
		}

		in.config.Logger.WithFields(logrus.Fields{
			"step":        step,
			"accumulated": len(generalized),
			"incoming":    len(segments),
			"url":         key,
		}).Debug("aligning url")

		generalized = Align(generalized, segments, in.config.Scorer)
		step++
	})
	return generalized
}

// BuildPattern returns the most general pattern matching every URL in urls.
func BuildPattern(urls []string, opts ...Option) (string, error) {
	in := NewInducer(opts...)
	in.Learn(urls)
	return in.Pattern()
}

// Compile builds the pattern for urls and compiles it.
func Compile(urls []string, opts ...Option) (*coregex.Regex, error) {
	in := NewInducer(opts...)
	in.Learn(urls)
	return in.Compile()
}
