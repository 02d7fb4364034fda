package textseg

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	markerStart = "┼"
	markerEnd   = "┼"

	// A marker is only emitted once the accumulated chunk reaches this
	// many runes after trimming, so short sentences merge into one
	// segment.
	minSentenceLen = 80
)

// enclosurePairs lists (left, right) enclosures. The map built from it
// carries both directions, so a closing character met at top level is
// treated as an opener expecting its counterpart. Later pairs sharing a
// right character overwrite earlier ones.
var enclosurePairs = [][2]rune{
	{'"', '"'},
	{'\'', '\''},
	{'(', ')'},
	{'[', ']'},
	{'{', '}'},
	{'<', '>'},
	{'«', '»'},
	{'‹', '›'},
	{'“', '”'},
	{'‘', '’'},
	{'„', '”'},
	{'‚', '’'},
	{'「', '」'},
	{'『', '』'},
	{'《', '》'},
	{'〈', '〉'},
	{'【', '】'},
	{'〔', '〕'},
	{'〖', '〗'},
	{'〘', '〙'},
	{'〚', '〛'},
	{'（', '）'},
	{'［', '］'},
	{'｛', '｝'},
	{'＜', '＞'},
	{'⟨', '⟩'},
	{'⟪', '⟫'},
	{'⟦', '⟧'},
	{'⟮', '⟯'},
	{'⟬', '⟭'},
	{'⦃', '⦄'},
	{'⦅', '⦆'},
	{'﹙', '﹚'},
	{'﹛', '﹜'},
	{'﹝', '﹞'},
	{'｢', '｣'},
}

var enclosures = buildEnclosureMap()

func buildEnclosureMap() map[rune]rune {
	m := make(map[rune]rune, len(enclosurePairs)*2+1)
	for _, p := range enclosurePairs {
		m[p[0]] = p[1]
		m[p[1]] = p[0]
	}
	// Self-closing symbol pairs with itself.
	m['⦿'] = '⦿'
	return m
}

// AddMarkers inserts ┼N┼ sentence markers into text without altering
// any of its original characters. Markers are numbered from 1 and the
// numbering continues across lines.
//
// Each physical line is marked independently; blank lines pass through
// untouched. When Measure reports the text as hard-wrapped, the marking
// unit becomes the blank-line-separated paragraph instead, so soft line
// breaks stay inside segment text.
func AddMarkers(text string) string {
	if text == "" {
		return ""
	}

	var parts []linePart
	if Measure(text).Wrapped {
		parts = splitParagraphs(text)
	} else {
		parts = splitLines(text)
	}

	markerNo := 1
	var out strings.Builder
	for _, p := range parts {
		if strings.TrimSpace(p.text) == "" {
			out.WriteString(p.text)
			out.WriteString(p.sep)
			continue
		}
		var marked string
		marked, markerNo = markLine(p.text, markerNo)
		out.WriteString(marked)
		out.WriteString(p.sep)
	}
	return out.String()
}

// linePart is a unit of text plus the exact separator that followed it,
// so joining all parts reproduces the input byte for byte.
type linePart struct {
	text string
	sep  string
}

// splitLines breaks text on every line feed cluster (\n, \r or \r\n
// runs).
func splitLines(text string) []linePart {
	if text == "" {
		return []linePart{{}}
	}
	var parts []linePart
	i, n := 0, len(text)
	for i < n {
		start := i
		for i < n && text[i] != '\r' && text[i] != '\n' {
			i++
		}
		line := text[start:i]
		sepStart := i
		for i < n && (text[i] == '\r' || text[i] == '\n') {
			i++
		}
		parts = append(parts, linePart{text: line, sep: text[sepStart:i]})
	}
	return parts
}

// splitParagraphs breaks text only on runs of two or more logical line
// feeds (\r\n counts as one). Single line feeds stay inside the part.
func splitParagraphs(text string) []linePart {
	if text == "" {
		return []linePart{{}}
	}
	var parts []linePart
	i, last, n := 0, 0, len(text)
	for i < n {
		if text[i] != '\r' && text[i] != '\n' {
			i++
			continue
		}
		sepStart := i
		count := 0
		for i < n && (text[i] == '\r' || text[i] == '\n') {
			if text[i] == '\r' && i+1 < n && text[i+1] == '\n' {
				i += 2
			} else {
				i++
			}
			count++
		}
		if count >= 2 {
			parts = append(parts, linePart{text: text[last:sepStart], sep: text[sepStart:i]})
			last = i
		}
	}
	if last < n {
		parts = append(parts, linePart{text: text[last:]})
	} else if len(parts) == 0 {
		parts = append(parts, linePart{})
	}
	return parts
}

// markLine numbers the sentences of one marking unit starting at
// markerNo and returns the marked text plus the next free number.
// Sentences shorter than minSentenceLen accumulate until the combined
// chunk is long enough for a marker.
func markLine(line string, markerNo int) (string, int) {
	runes := []rune(line)
	starts := sentenceStarts(runes)

	var out strings.Builder
	var chunks []string
	for idx, s := range starts {
		e := len(runes)
		if idx+1 < len(starts) {
			e = starts[idx+1]
		}
		chunks = append(chunks, string(runes[s:e]))
		if trimmedLen(chunks) < minSentenceLen {
			continue
		}
		writeMarked(&out, markerNo, chunks)
		markerNo++
		chunks = chunks[:0]
	}
	if trimmedLen(chunks) > 0 {
		writeMarked(&out, markerNo, chunks)
		markerNo++
	}
	return out.String(), markerNo
}

func trimmedLen(chunks []string) int {
	return utf8.RuneCountInString(strings.TrimSpace(strings.Join(chunks, "")))
}

// writeMarked emits ┼N┼ followed by the accumulated chunks. A leading
// line feed is written before the marker so markers land at the visual
// start of a line, not after a soft break.
func writeMarked(out *strings.Builder, markerNo int, chunks []string) {
	joined := strings.Join(chunks, "")
	if strings.HasPrefix(joined, "\r\n") {
		out.WriteString("\r\n")
		joined = joined[2:]
	} else if strings.HasPrefix(joined, "\n") {
		out.WriteString("\n")
		joined = joined[1:]
	}
	out.WriteString(markerStart)
	out.WriteString(strconv.Itoa(markerNo))
	out.WriteString(markerEnd)
	out.WriteString(joined)
}

// sentenceStarts scans one marking unit and returns the rune indices
// where sentences begin. Boundaries are sentence-ending punctuation at
// enclosure depth zero ("...", "…", "‽", "?!", "!?", ".", "?", "!" and
// the CJK 。？！) plus top-level opening and closing enclosures.
// Punctuation inside balanced enclosures never ends a sentence.
func sentenceStarts(line []rune) []int {
	n := len(line)
	starts := []int{0}
	var stack []rune

	i := 0
	for i < n {
		c := line[i]

		if len(stack) > 0 && c == stack[len(stack)-1] {
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				if next := i + 1; next < n && next != starts[len(starts)-1] {
					starts = append(starts, next)
				}
			}
		} else if closer, ok := enclosures[c]; ok {
			// An apostrophe between letters is a contraction, not
			// a quote.
			if (c == '\'' || c == '’') && i > 0 && i < n-1 &&
				unicode.IsLetter(line[i-1]) && unicode.IsLetter(line[i+1]) {
				i++
				continue
			}
			if len(stack) == 0 && i != starts[len(starts)-1] {
				starts = append(starts, i)
			}
			stack = append(stack, closer)
		}

		if end := boundaryEnd(line, i, len(stack)); end != -1 {
			if end < n && end != starts[len(starts)-1] {
				starts = append(starts, end)
			}
			i = end
			continue
		}

		i++
	}
	return starts
}

// boundaryEnd reports the index just past the sentence-ending
// punctuation at i, or -1 when i is not a boundary. Inside an
// enclosure nothing is a boundary.
func boundaryEnd(line []rune, i, depth int) int {
	if depth > 0 {
		return -1
	}
	n := len(line)
	c := line[i]
	switch {
	case c == '.' && i+2 < n && line[i+1] == '.' && line[i+2] == '.':
		return i + 3
	case c == '…' || c == '‽':
		return i + 1
	case i+1 < n && ((c == '?' && line[i+1] == '!') || (c == '!' && line[i+1] == '?')):
		return i + 2
	case c == '.' || c == '?' || c == '!':
		return i + 1
	case c == '。' || c == '？' || c == '！':
		return i + 1
	}
	return -1
}
