package check

//go:generate go tool stringer -type=Severity -linecomment -output=severity_string.go

type Severity int

const (
	_ Severity = iota // skip zero value, use it as a default (invalid) value for Severity

	SeverityWarning // warning
	SeverityError   // error
)
