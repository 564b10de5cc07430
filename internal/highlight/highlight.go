// Package highlight computes word-level diffs between an original text and a
// revised text and produces rendering-ready segments, so a caller can show
// additions and removals in different visual styles.
package highlight

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a segment of the diff output.
type Kind int

const (
	Unchanged Kind = iota
	Added
	Removed
)

var kindNames = map[Kind]string{
	Unchanged: "unchanged",
	Added:     "added",
	Removed:   "removed",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for kind, name := range kindNames {
		if name == s {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown segment kind %q", s)
}

// Segment is a contiguous run of tokens sharing one change kind. Joining the
// Text of all non-Removed segments in order yields the revised document;
// joining all non-Added segments yields the original.
type Segment struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// ErrInputTooLarge is returned when an input exceeds the configured token cap
// before the quadratic alignment would run.
var ErrInputTooLarge = errors.New("input too large")

// defaultMaxTokens comfortably covers resumes and job descriptions (a few
// thousand tokens) while keeping the O(n*m) table bounded.
const defaultMaxTokens = 5000

type config struct {
	maxTokens int
}

type Option func(*config)

// WithMaxTokens overrides the per-input token cap.
func WithMaxTokens(n int) Option {
	return func(c *config) {
		c.maxTokens = n
	}
}

// Diff aligns the word tokens of original and revised with a longest common
// subsequence and returns the ordered segment list. It is deterministic, has
// no side effects, and is total over all string pairs: identical inputs yield
// a single Unchanged segment, fully disjoint inputs yield one Removed segment
// followed by one Added segment. Within a replaced region, removed text is
// always emitted before added text.
func Diff(original, revised string, opts ...Option) ([]Segment, error) {
	cfg := config{maxTokens: defaultMaxTokens}
	for _, opt := range opts {
		opt(&cfg)
	}

	x := Tokenize(original)
	y := Tokenize(revised)
	if len(x) > cfg.maxTokens {
		return nil, fmt.Errorf("original has %d tokens, limit is %d: %w", len(x), cfg.maxTokens, ErrInputTooLarge)
	}
	if len(y) > cfg.maxTokens {
		return nil, fmt.Errorf("revised has %d tokens, limit is %d: %w", len(y), cfg.maxTokens, ErrInputTooLarge)
	}

	// Anchor the common prefix and suffix before running the quadratic
	// alignment; for typical tailored resumes this removes most tokens.
	prefix := 0
	for prefix < len(x) && prefix < len(y) && x[prefix] == y[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(x)-prefix && suffix < len(y)-prefix && x[len(x)-1-suffix] == y[len(y)-1-suffix] {
		suffix++
	}

	var b builder
	b.add(Unchanged, x[:prefix])
	align(&b, x[prefix:len(x)-suffix], y[prefix:len(y)-suffix])
	b.add(Unchanged, x[len(x)-suffix:])
	return b.segs, nil
}

// align runs the LCS dynamic program over the unanchored middle and emits
// edits through the builder. Backtracking prefers the insert branch on ties,
// which puts removals ahead of additions in the forward output.
func align(b *builder, x, y []string) {
	n, m := len(x), len(y)
	switch {
	case n == 0 && m == 0:
		return
	case n == 0:
		b.add(Added, y)
		return
	case m == 0:
		b.add(Removed, x)
		return
	}

	// dp[i*(m+1)+j] holds the LCS length of x[:i] and y[:j].
	dp := make([]int32, (n+1)*(m+1))
	idx := func(i, j int) int { return i*(m+1) + j }
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if x[i-1] == y[j-1] {
				dp[idx(i, j)] = dp[idx(i-1, j-1)] + 1
			} else if dp[idx(i-1, j)] >= dp[idx(i, j-1)] {
				dp[idx(i, j)] = dp[idx(i-1, j)]
			} else {
				dp[idx(i, j)] = dp[idx(i, j-1)]
			}
		}
	}

	type op struct {
		kind  Kind
		token string
	}
	ops := make([]op, 0, n+m)
	for i, j := n, m; i > 0 || j > 0; {
		switch {
		case i > 0 && j > 0 && x[i-1] == y[j-1]:
			ops = append(ops, op{Unchanged, x[i-1]})
			i--
			j--
		case j > 0 && (i == 0 || dp[idx(i, j-1)] >= dp[idx(i-1, j)]):
			ops = append(ops, op{Added, y[j-1]})
			j--
		default:
			ops = append(ops, op{Removed, x[i-1]})
			i--
		}
	}
	for k := len(ops) - 1; k >= 0; k-- {
		b.addOne(ops[k].kind, ops[k].token)
	}
}

// builder accumulates segments, merging adjacent runs of the same kind so no
// two consecutive output segments share a kind.
type builder struct {
	segs []Segment
}

func (b *builder) add(kind Kind, tokens []string) {
	if len(tokens) == 0 {
		return
	}
	b.addOne(kind, strings.Join(tokens, ""))
}

func (b *builder) addOne(kind Kind, text string) {
	if text == "" {
		return
	}
	if n := len(b.segs); n > 0 && b.segs[n-1].Kind == kind {
		b.segs[n-1].Text += text
		return
	}
	b.segs = append(b.segs, Segment{Kind: kind, Text: text})
}

// Stats counts the word tokens (whitespace runs excluded) added and removed
// across the segment list.
func Stats(segments []Segment) (added, removed int) {
	for _, seg := range segments {
		n := 0
		for _, tok := range Tokenize(seg.Text) {
			if strings.TrimSpace(tok) != "" {
				n++
			}
		}
		switch seg.Kind {
		case Added:
			added += n
		case Removed:
			removed += n
		}
	}
	return added, removed
}
