package services

import (
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/linesift/internal/core/domain"
)

// lineSlice is an in-memory driven.LineSource.
type lineSlice []string

func (l lineSlice) Lines() iter.Seq[string] { return slices.Values(l) }

func (l lineSlice) Err() error { return nil }

var sampleLines = lineSlice{"Hello World", "foo", "HELLO there"}

func collect(t *testing.T, s *Scanner, lines lineSlice) ([]string, domain.ScanResult) {
	t.Helper()
	var out []string
	res, err := s.Scan(lines.Lines(), func(line string) error {
		out = append(out, line)
		return nil
	})
	require.NoError(t, err)
	return out, res
}

func TestScanner_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		cfg    domain.SearchConfig
		lines  lineSlice
		want   []string
		anyOut bool
	}{
		{
			name:   "plain match",
			cfg:    domain.SearchConfig{Pattern: "hello"},
			lines:  sampleLines,
			want:   []string{"Hello World", "HELLO there"},
			anyOut: true,
		},
		{
			name:   "line numbers",
			cfg:    domain.SearchConfig{Pattern: "hello", ShowLineNumbers: true},
			lines:  sampleLines,
			want:   []string{"1:Hello World", "3:HELLO there"},
			anyOut: true,
		},
		{
			name:   "inverted with line numbers",
			cfg:    domain.SearchConfig{Pattern: "hello", ShowLineNumbers: true, InvertMatch: true},
			lines:  sampleLines,
			want:   []string{"2:foo"},
			anyOut: true,
		},
		{
			name:   "no match",
			cfg:    domain.SearchConfig{Pattern: "zzz"},
			lines:  sampleLines,
			want:   nil,
			anyOut: false,
		},
		{
			name:   "empty pattern selects everything",
			cfg:    domain.SearchConfig{Pattern: ""},
			lines:  sampleLines,
			want:   []string{"Hello World", "foo", "HELLO there"},
			anyOut: true,
		},
		{
			name:   "empty pattern inverted selects nothing",
			cfg:    domain.SearchConfig{Pattern: "", InvertMatch: true},
			lines:  sampleLines,
			want:   nil,
			anyOut: false,
		},
		{
			name:   "empty input",
			cfg:    domain.SearchConfig{Pattern: "x"},
			lines:  nil,
			want:   nil,
			anyOut: false,
		},
		{
			name:   "blank lines are numbered",
			cfg:    domain.SearchConfig{Pattern: "b", ShowLineNumbers: true},
			lines:  lineSlice{"", "a", "", "B"},
			want:   []string{"4:B"},
			anyOut: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, res := collect(t, NewScanner(tt.cfg), tt.lines)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.anyOut, res.AnyOutput)
			assert.Equal(t, len(tt.lines), res.LinesRead)
			assert.Equal(t, len(tt.want), res.LinesSelected)
		})
	}
}

func TestScanner_PreservesOriginalCase(t *testing.T) {
	got, _ := collect(t, NewScanner(domain.SearchConfig{Pattern: "WORLD"}), lineSlice{"Hello wOrLd  "})

	assert.Equal(t, []string{"Hello wOrLd  "}, got)
}

func TestScanner_InvertIsComplement(t *testing.T) {
	lines := lineSlice{"alpha", "Beta", "gamma", "ALPHABET", "", "delta alpha"}

	for _, pattern := range []string{"alpha", "a", "", "zzz", "BET"} {
		normal := NewScanner(domain.SearchConfig{Pattern: pattern, ShowLineNumbers: true})
		inverted := NewScanner(domain.SearchConfig{Pattern: pattern, ShowLineNumbers: true, InvertMatch: true})

		selected := map[int]bool{}
		for rec := range normal.Records(lines.Lines()) {
			selected[rec.Number] = true
		}
		for rec := range inverted.Records(lines.Lines()) {
			assert.False(t, selected[rec.Number], "pattern %q: line %d selected twice", pattern, rec.Number)
			selected[rec.Number] = true
		}
		assert.Len(t, selected, len(lines), "pattern %q: every line selected exactly once", pattern)
	}
}

func TestScanner_Idempotent(t *testing.T) {
	s := NewScanner(domain.SearchConfig{Pattern: "hello", ShowLineNumbers: true})

	first, firstRes := collect(t, s, sampleLines)
	second, secondRes := collect(t, s, sampleLines)

	assert.Equal(t, first, second)
	assert.Equal(t, firstRes, secondRes)
}

func TestScanner_LinesMatchesScan(t *testing.T) {
	s := NewScanner(domain.SearchConfig{Pattern: "o", ShowLineNumbers: true})

	lazy := slices.Collect(s.Lines(sampleLines.Lines()))
	eager, _ := collect(t, s, sampleLines)

	assert.Equal(t, eager, lazy)
}

func TestScanner_RecordsAreLazy(t *testing.T) {
	pulled := 0
	lines := func(yield func(string) bool) {
		for _, l := range []string{"hit 1", "miss", "hit 2", "hit 3"} {
			pulled++
			if !yield(l) {
				return
			}
		}
	}

	s := NewScanner(domain.SearchConfig{Pattern: "HIT"})
	for rec := range s.Records(lines) {
		assert.Equal(t, 1, rec.Number)
		break
	}

	assert.Equal(t, 1, pulled)
}

func TestScanner_EmitErrorStopsScan(t *testing.T) {
	boom := errors.New("stdout closed")
	calls := 0

	s := NewScanner(domain.SearchConfig{Pattern: ""})
	res, err := s.Scan(sampleLines.Lines(), func(string) error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, res.LinesRead)
}

func TestScanner_WithFold(t *testing.T) {
	lines := lineSlice{"ÉCOLE normale", "ecole"}

	ascii, _ := collect(t, NewScanner(domain.SearchConfig{Pattern: "école"}), lines)
	unicode, _ := collect(t, NewScanner(domain.SearchConfig{Pattern: "école"}, WithFold(UnicodeFold)), lines)
	nilFold, _ := collect(t, NewScanner(domain.SearchConfig{Pattern: "HELLO"}, WithFold(nil)), sampleLines)

	assert.Nil(t, ascii)
	assert.Equal(t, []string{"ÉCOLE normale"}, unicode)
	assert.Equal(t, []string{"Hello World", "HELLO there"}, nilFold, "nil fold keeps the ASCII default")
}

func TestScanner_Config(t *testing.T) {
	cfg := domain.SearchConfig{Pattern: "Hello", InvertMatch: true}
	s := NewScanner(cfg)

	assert.Equal(t, cfg, s.Config())
}

func TestScanner_MatchesUsesInjectedFold(t *testing.T) {
	var folded []string
	recording := func(s string) string {
		folded = append(folded, s)
		return ASCIIFold(s)
	}

	s := NewScanner(domain.SearchConfig{Pattern: "HeLLo"}, WithFold(recording))

	assert.True(t, s.Matches("say hello"))
	assert.ElementsMatch(t, []string{"say hello", "HeLLo"}, folded)
	assert.Equal(t, CaseInsensitiveContains("say hello", "HeLLo", ASCIIFold), s.Matches("say hello"))
}
