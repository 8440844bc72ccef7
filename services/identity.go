package services

import "fmt"

// IssueSequenceKey names the counter that numbers issues reported in year.
func IssueSequenceKey(year int) string {
	return fmt.Sprintf("issue-%d", year)
}

// FormatIssueID renders ISS-<year>-<seq> with seq padded to at least 3 digits.
func FormatIssueID(year int, seq int64) string {
	return fmt.Sprintf("ISS-%d-%03d", year, seq)
}
