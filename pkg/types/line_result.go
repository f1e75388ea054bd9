package types

// LineResult pairs a sanitized line with whether any rule matched on it.
// It is produced once per input line and consumed immediately.
type LineResult struct {
	Line    string
	Changed bool
}
