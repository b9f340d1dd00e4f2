// README: Field scanner for one command line: words, park names, dates.
package cli

import (
	"strconv"
	"strings"

	"github.com/tiago-firmino/iaed2024/internal/modules/dates"
)

// lineScanner walks one input line left to right. Park names may be
// double-quoted to embed spaces; everything else is whitespace-delimited.
type lineScanner struct {
	s   string
	pos int
}

func newLineScanner(s string) *lineScanner {
	return &lineScanner{s: strings.TrimRight(s, "\r\n")}
}

func (ls *lineScanner) skipSpaces() {
	for ls.pos < len(ls.s) && (ls.s[ls.pos] == ' ' || ls.s[ls.pos] == '\t') {
		ls.pos++
	}
}

// more reports whether any field is left on the line.
func (ls *lineScanner) more() bool {
	ls.skipSpaces()
	return ls.pos < len(ls.s)
}

// word reads the next whitespace-delimited token.
func (ls *lineScanner) word() (string, bool) {
	if !ls.more() {
		return "", false
	}
	start := ls.pos
	for ls.pos < len(ls.s) && ls.s[ls.pos] != ' ' && ls.s[ls.pos] != '\t' {
		ls.pos++
	}
	return ls.s[start:ls.pos], true
}

// name reads a park name, consuming either a quoted run or a plain token.
// valid is false when the name contains a digit anywhere; the consumed
// text is still returned so callers can report it.
func (ls *lineScanner) name() (text string, valid bool, ok bool) {
	if !ls.more() {
		return "", false, false
	}
	if ls.s[ls.pos] == '"' {
		ls.pos++
		start := ls.pos
		for ls.pos < len(ls.s) && ls.s[ls.pos] != '"' {
			ls.pos++
		}
		text = ls.s[start:ls.pos]
		if ls.pos < len(ls.s) {
			ls.pos++ // closing quote
		}
	} else {
		text, _ = ls.word()
	}
	return text, !strings.ContainsAny(text, "0123456789"), true
}

func (ls *lineScanner) int() (int, bool) {
	w, ok := ls.word()
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(w)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (ls *lineScanner) float() (float64, bool) {
	w, ok := ls.word()
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// date reads a DD-MM-YYYY token.
func (ls *lineScanner) date() (dates.Timestamp, bool) {
	w, ok := ls.word()
	if !ok {
		return dates.Timestamp{}, false
	}
	return parseDate(w)
}

// stamp reads a DD-MM-YYYY token followed by an HH:MM token.
func (ls *lineScanner) stamp() (dates.Timestamp, bool) {
	ts, ok := ls.date()
	if !ok {
		return dates.Timestamp{}, false
	}
	w, ok := ls.word()
	if !ok {
		return dates.Timestamp{}, false
	}
	parts := strings.Split(w, ":")
	if len(parts) != 2 {
		return dates.Timestamp{}, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return dates.Timestamp{}, false
	}
	ts.Hour = h
	ts.Minute = m
	return ts, true
}

func parseDate(w string) (dates.Timestamp, bool) {
	parts := strings.Split(w, "-")
	if len(parts) != 3 {
		return dates.Timestamp{}, false
	}
	d, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	y, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return dates.Timestamp{}, false
	}
	return dates.Timestamp{Year: y, Month: m, Day: d}, true
}
