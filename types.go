package sv

// NumberMode dictates how numbers in JSON text are represented.
type NumberMode int

const (
	NumberJSONNumber NumberMode = iota // Preserve json.Number (exact text).
	NumberFloat64                      // Decode as float64 (with potential precision loss).
)

// Severity expresses how a parse-time finding is treated.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity // Ignore, Warn (reported through ParseOpt.OnIssue) or Error.
}

// ParseOpt bundles limits applied while turning JSON text into plain values.
// The zero value parses without limits and keeps the last duplicate key.
type ParseOpt struct {
	Strictness Strictness
	MaxDepth   int   // 0: unlimited.
	MaxBytes   int64 // 0: unlimited.
	NumberMode NumberMode
	// OnIssue receives non-fatal findings such as duplicate-key warnings.
	OnIssue func(Issue)
}
