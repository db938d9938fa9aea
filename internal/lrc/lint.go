package lrc

import (
	"fmt"
	"math"
	"strings"
)

// IssueKind classifies a problem found by Lint.
type IssueKind int

const (
	// IssueMissingBracket marks a line with no closing bracket.
	IssueMissingBracket IssueKind = iota

	// IssueBadTimestamp marks a line whose timestamp evaluates to NaN.
	IssueBadTimestamp

	// IssueOutOfOrder marks a line earlier than the previous timed line.
	IssueOutOfOrder

	// IssueExtraBracket marks a line with more than one closing bracket.
	// Text after the second bracket is dropped by Parse.
	IssueExtraBracket
)

// String returns a short name for the issue kind.
func (k IssueKind) String() string {
	switch k {
	case IssueMissingBracket:
		return "missing-bracket"
	case IssueBadTimestamp:
		return "bad-timestamp"
	case IssueOutOfOrder:
		return "out-of-order"
	case IssueExtraBracket:
		return "extra-bracket"
	default:
		return "unknown"
	}
}

// Issue is one diagnostic produced by Lint.
type Issue struct {
	// Line is the 1-based line number in the source text, counting
	// empty lines.
	Line int

	Kind    IssueKind
	Message string
}

// String formats the issue as "line N: kind: message".
func (i Issue) String() string {
	return fmt.Sprintf("line %d: %s: %s", i.Line, i.Kind, i.Message)
}

// Lint reports lines that Parse would accept but turn into degenerate
// entries. It uses the same line splitting as Parse, so every reported
// line corresponds to exactly one parsed entry.
//
// Lint is diagnostic only; the player never calls it.
func Lint(text string) []Issue {
	var issues []Issue
	prev := math.Inf(-1)

	for n, line := range strings.Split(trimBOM(text), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		lineNo := n + 1

		brackets := strings.Count(line, "]")
		switch {
		case brackets == 0:
			issues = append(issues, Issue{Line: lineNo, Kind: IssueMissingBracket, Message: "no closing bracket, content will be empty"})
		case brackets > 1:
			issues = append(issues, Issue{Line: lineNo, Kind: IssueExtraBracket, Message: "text after the second bracket is ignored"})
		}

		rawTime, _ := splitLine(line)
		t := ParseTime(rawTime)
		if math.IsNaN(t) {
			issues = append(issues, Issue{Line: lineNo, Kind: IssueBadTimestamp, Message: fmt.Sprintf("cannot parse timestamp %q", rawTime)})
			continue
		}

		if t < prev {
			issues = append(issues, Issue{Line: lineNo, Kind: IssueOutOfOrder, Message: fmt.Sprintf("%.2fs is earlier than the previous line (%.2fs)", t, prev)})
		}
		prev = t
	}

	return issues
}
