// Package textseg turns raw document text into numbered sentence
// segments. Files arrive in one of three shapes: already segmented
// JSON, text with ┼N┼ markers from an earlier pass, or plain text that
// still needs sentence numbering.
package textseg

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Segment is one numbered sentence of a document.
type Segment struct {
	SID  int    `json:"sid"`
	Text string `json:"text"`
}

// Document is the segment list stored in original text columns.
type Document struct {
	Segments []Segment `json:"segments"`
}

var markerRe = regexp.MustCompile(regexp.QuoteMeta(markerStart) + `(\d+)` + regexp.QuoteMeta(markerEnd))

// Analyze converts raw file content into a Document. JSON segment
// input is passed through as-is so an already analyzed file is not
// wrapped into a single segment again. Text that carries ┼N┼ markers
// is split on them; anything else is numbered with AddMarkers first.
func Analyze(raw string) Document {
	if doc, ok := parseJSONSegments(raw); ok {
		return doc
	}
	marked := raw
	if !markerRe.MatchString(raw) {
		marked = AddMarkers(raw)
	}
	return parseMarked(marked)
}

func parseJSONSegments(raw string) (Document, bool) {
	stripped := strings.TrimSpace(raw)
	if !strings.HasPrefix(stripped, "{") {
		return Document{}, false
	}

	var in struct {
		Segments []struct {
			SID  *int    `json:"sid"`
			Text *string `json:"text"`
		} `json:"segments"`
	}
	if err := json.Unmarshal([]byte(stripped), &in); err != nil {
		return Document{}, false
	}
	if len(in.Segments) == 0 {
		return Document{}, false
	}

	var doc Document
	for _, seg := range in.Segments {
		if seg.SID == nil || seg.Text == nil {
			continue
		}
		doc.Segments = append(doc.Segments, Segment{SID: *seg.SID, Text: *seg.Text})
	}
	if len(doc.Segments) == 0 {
		return Document{}, false
	}
	return doc, true
}

// parseMarked splits marked text on ┼N┼ markers. Each segment keeps
// the sid from its marker and the exact text up to the next marker;
// text before the first marker is dropped.
func parseMarked(marked string) Document {
	doc := Document{Segments: []Segment{}}
	matches := markerRe.FindAllStringSubmatchIndex(marked, -1)
	for i, m := range matches {
		sid, _ := strconv.Atoi(marked[m[2]:m[3]])
		end := len(marked)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		doc.Segments = append(doc.Segments, Segment{SID: sid, Text: marked[m[1]:end]})
	}
	return doc
}
