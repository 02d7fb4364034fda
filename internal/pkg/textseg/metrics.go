package textseg

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Metrics describes the line length distribution of a raw text.
// Wrapped reports whether the text arrived hard-wrapped, i.e. re-flowed
// to a fixed column width by whatever produced the file.
type Metrics struct {
	Lines          int
	MeanLineLen    float64
	StdDev         float64
	FilteredMean   float64
	FilteredStdDev float64
	Wrapped        bool
}

// Measure computes per-line length statistics over the non-blank lines
// of raw. Hard-wrapped text shows many lines of near-identical length,
// so the verdict checks how tight the distribution stays once outliers
// outside mean±1.0σ and short closing lines (≤ 0.6×mean) are dropped:
// wrapped iff the remaining σ ≤ 0.25×mean.
//
// Single-line texts are never wrapped. A mean over 150 or a σ of at
// least half the mean also short-circuits to not wrapped.
func Measure(raw string) Metrics {
	var lengths []float64
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lengths = append(lengths, float64(utf8.RuneCountInString(line)))
	}

	m := Metrics{Lines: len(lengths)}
	if len(lengths) == 0 {
		return m
	}

	m.MeanLineLen = round2(mean(lengths))
	if len(lengths) == 1 {
		return m
	}
	m.StdDev = round2(stdDev(lengths))

	if m.MeanLineLen > 150 || 0.5*m.MeanLineLen <= m.StdDev {
		return m
	}

	lower := m.MeanLineLen - m.StdDev
	upper := m.MeanLineLen + m.StdDev
	var kept []float64
	for _, l := range lengths {
		if lower <= l && l <= upper {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		return m
	}

	floor := 0.6 * m.MeanLineLen
	var filtered []float64
	for _, l := range kept {
		if l > floor {
			filtered = append(filtered, l)
		}
	}

	switch len(filtered) {
	case 0:
	case 1:
		m.FilteredMean = round2(filtered[0])
	default:
		m.FilteredMean = round2(mean(filtered))
		m.FilteredStdDev = round2(stdDev(filtered))
	}
	m.Wrapped = m.FilteredStdDev <= 0.25*m.FilteredMean
	return m
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stdDev is the sample standard deviation (n-1 denominator).
func stdDev(xs []float64) float64 {
	mu := mean(xs)
	var sum float64
	for _, x := range xs {
		d := x - mu
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
