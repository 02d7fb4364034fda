package textseg

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"
)

func linesOf(lengths ...int) string {
	parts := make([]string, 0, len(lengths))
	for _, n := range lengths {
		parts = append(parts, strings.Repeat("x", n))
	}
	return strings.Join(parts, "\n")
}

func TestMeasureEmptyText(t *testing.T) {
	m := Measure("")
	if m.Lines != 0 || m.Wrapped {
		t.Fatalf("expected zero lines and not wrapped, got %+v", m)
	}
}

func TestMeasureSingleLineNeverWrapped(t *testing.T) {
	m := Measure("hello")
	if m.Lines != 1 || m.MeanLineLen != 5 || m.StdDev != 0 || m.Wrapped {
		t.Fatalf("unexpected metrics for single line: %+v", m)
	}
}

func TestMeasureVariedProseNotWrapped(t *testing.T) {
	m := Measure(linesOf(10, 80, 20, 70, 15, 90))
	if m.Wrapped {
		t.Fatalf("expected varied line lengths to not be wrapped, got %+v", m)
	}
	if m.MeanLineLen != 47.5 {
		t.Fatalf("expected mean 47.5, got %v", m.MeanLineLen)
	}
	if m.StdDev != 36.3 {
		t.Fatalf("expected stddev 36.3, got %v", m.StdDev)
	}
}

func TestMeasureLongLinesNotWrapped(t *testing.T) {
	m := Measure(linesOf(200, 200))
	if m.Wrapped {
		t.Fatalf("expected mean over 150 to not be wrapped, got %+v", m)
	}
}

func TestMeasureUniformLinesWrapped(t *testing.T) {
	// Four full-width lines plus a short closing line. The closing line
	// falls outside mean±1.0σ and must not spoil the verdict.
	m := Measure(linesOf(60, 60, 60, 60, 25))
	if !m.Wrapped {
		t.Fatalf("expected wrapped, got %+v", m)
	}
	if m.MeanLineLen != 53 || m.StdDev != 15.65 {
		t.Fatalf("unexpected raw stats: %+v", m)
	}
	if m.FilteredMean != 60 || m.FilteredStdDev != 0 {
		t.Fatalf("unexpected filtered stats: %+v", m)
	}
}

func TestSentenceStarts(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []int
	}{
		{"punctuation pairs", "Hello? How are you doing today!?", []int{0, 6}},
		{"quoted speech", `She said, "Hello there!" and walked away.`, []int{0, 10, 24}},
		{"ellipsis", "Is this it? Oh, I hope so... Yes!", []int{0, 11, 28}},
		{"unicode ellipsis and interrobang", "What is this… an interrobang‽ Really?", []int{0, 13, 29}},
		{"contractions are not quotes", "Don't worry. It's fine.", []int{0, 12}},
		{"cjk terminator", "こんにちは。元気ですか。", []int{0, 6}},
		{"punctuation inside enclosure ignored", "He asked (really?) and left.", []int{0, 9, 18}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sentenceStarts([]rune(tc.line))
			if len(got) != len(tc.want) {
				t.Fatalf("got starts %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got starts %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestAnalyzeShortTextSingleSegment(t *testing.T) {
	doc := Analyze("Hello? How are you!")
	if len(doc.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(doc.Segments))
	}
	if doc.Segments[0].SID != 1 || doc.Segments[0].Text != "Hello? How are you!" {
		t.Fatalf("unexpected segment: %+v", doc.Segments[0])
	}
}

func TestAnalyzeLongSentencesSplit(t *testing.T) {
	first := strings.Repeat("aaaa ", 17) + "end."
	second := " " + strings.Repeat("bbbb ", 17) + "next."
	doc := Analyze(first + second)
	if len(doc.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(doc.Segments))
	}
	if doc.Segments[0].SID != 1 || doc.Segments[0].Text != first {
		t.Fatalf("unexpected first segment: %+v", doc.Segments[0])
	}
	if doc.Segments[1].SID != 2 || doc.Segments[1].Text != second {
		t.Fatalf("unexpected second segment: %+v", doc.Segments[1])
	}
}

func TestAnalyzeShortSentencesAccumulate(t *testing.T) {
	// 30 tiny sentences on one line. Markers appear only once the
	// accumulated chunk passes the minimum segment length.
	doc := Analyze(strings.Repeat("Ok. ", 30))
	if len(doc.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(doc.Segments))
	}
	if n := utf8.RuneCountInString(strings.TrimSpace(doc.Segments[0].Text)); n != 83 {
		t.Fatalf("expected first segment of 83 runes, got %d", n)
	}
	if doc.Segments[0].SID != 1 || doc.Segments[1].SID != 2 {
		t.Fatalf("unexpected sids: %+v", doc.Segments)
	}
}

func TestAnalyzeNumbersContinueAcrossLines(t *testing.T) {
	long := strings.Repeat("b", 59) + "."
	doc := Analyze("Hi.\n" + long)
	if len(doc.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(doc.Segments))
	}
	if doc.Segments[0].SID != 1 || doc.Segments[0].Text != "Hi.\n" {
		t.Fatalf("unexpected first segment: %+v", doc.Segments[0])
	}
	if doc.Segments[1].SID != 2 || doc.Segments[1].Text != long {
		t.Fatalf("unexpected second segment: %+v", doc.Segments[1])
	}
}

func TestAnalyzeWrappedTextKeepsSoftBreaks(t *testing.T) {
	line := strings.Repeat("a", 59) + "."
	para := line + "\n" + line + "\n" + line
	doc := Analyze(para + "\n\n" + para)

	if len(doc.Segments) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(doc.Segments))
	}
	for i, seg := range doc.Segments {
		if seg.SID != i+1 {
			t.Fatalf("expected sid %d, got %d", i+1, seg.SID)
		}
	}
	// Soft line breaks stay inside the segment text instead of forcing
	// a new segment per physical line.
	if strings.Count(doc.Segments[0].Text, "\n") != 2 {
		t.Fatalf("expected soft breaks inside first segment, got %q", doc.Segments[0].Text)
	}
	if !strings.HasSuffix(doc.Segments[1].Text, "\n\n") {
		t.Fatalf("expected paragraph separator kept in second segment, got %q", doc.Segments[1].Text)
	}
	if doc.Segments[3].Text != line {
		t.Fatalf("unexpected final segment: %q", doc.Segments[3].Text)
	}
}

func TestAnalyzePreMarkedTextKeepsSids(t *testing.T) {
	doc := Analyze("┼3┼Already numbered.┼8┼Sids preserved.")
	if len(doc.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(doc.Segments))
	}
	if doc.Segments[0].SID != 3 || doc.Segments[0].Text != "Already numbered." {
		t.Fatalf("unexpected first segment: %+v", doc.Segments[0])
	}
	if doc.Segments[1].SID != 8 || doc.Segments[1].Text != "Sids preserved." {
		t.Fatalf("unexpected second segment: %+v", doc.Segments[1])
	}
}

func TestAnalyzeDropsTextBeforeFirstMarker(t *testing.T) {
	doc := Analyze("intro ┼2┼kept")
	if len(doc.Segments) != 1 || doc.Segments[0].SID != 2 || doc.Segments[0].Text != "kept" {
		t.Fatalf("unexpected segments: %+v", doc.Segments)
	}
}

func TestAnalyzeJSONSegmentsPassThrough(t *testing.T) {
	doc := Analyze(`{"segments":[{"sid":4,"text":"uno"},{"sid":9,"text":"dos"}]}`)
	if len(doc.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(doc.Segments))
	}
	if doc.Segments[0].SID != 4 || doc.Segments[0].Text != "uno" {
		t.Fatalf("unexpected first segment: %+v", doc.Segments[0])
	}
	if doc.Segments[1].SID != 9 || doc.Segments[1].Text != "dos" {
		t.Fatalf("unexpected second segment: %+v", doc.Segments[1])
	}
}

func TestAnalyzeJSONSkipsIncompleteSegments(t *testing.T) {
	doc := Analyze(`  {"segments":[{"sid":1},{"sid":2,"text":"keep"}]}`)
	if len(doc.Segments) != 1 || doc.Segments[0].SID != 2 || doc.Segments[0].Text != "keep" {
		t.Fatalf("unexpected segments: %+v", doc.Segments)
	}
}

func TestAnalyzeEmptyJSONSegmentsFallsBackToPlainText(t *testing.T) {
	raw := `{"segments":[]}`
	doc := Analyze(raw)
	if len(doc.Segments) != 1 || doc.Segments[0].SID != 1 || doc.Segments[0].Text != raw {
		t.Fatalf("unexpected segments: %+v", doc.Segments)
	}
}

func TestAnalyzeBlankTextMarshalsEmptySegments(t *testing.T) {
	doc := Analyze("   \n  ")
	if len(doc.Segments) != 0 {
		t.Fatalf("expected no segments, got %+v", doc.Segments)
	}
	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(b) != `{"segments":[]}` {
		t.Fatalf("expected empty segments array, got %s", b)
	}
}

func TestAddMarkersKeepsBlankLines(t *testing.T) {
	if got := AddMarkers(""); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
	if got := AddMarkers("\n\n"); got != "\n\n" {
		t.Fatalf("expected blank lines untouched, got %q", got)
	}
}

func TestAddMarkersReproducesInputAroundMarkers(t *testing.T) {
	text := "Hi.\n" + strings.Repeat("b", 59) + "."
	marked := AddMarkers(text)
	stripped := strings.ReplaceAll(strings.ReplaceAll(marked, "┼1┼", ""), "┼2┼", "")
	if stripped != text {
		t.Fatalf("markers must not alter original characters: %q", marked)
	}
}
