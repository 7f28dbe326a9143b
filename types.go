package vizschema

// ParseOpt bundles parsing options for ParseReport.
type ParseOpt struct {
	// MaxBytes caps how much of the candidate input is read. Generated
	// documents are untrusted; a runaway response should not exhaust memory.
	// Zero means no cap.
	MaxBytes int64
}
