package diag

// Severity orders diagnostics: anything at SevError fails the command.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// TableSeverity is the severity of substitution table problems. A lossy
// table is usable and only warned about; strict mode rejects it.
func TableSeverity(strict bool) Severity {
	if strict {
		return SevError
	}
	return SevWarning
}
