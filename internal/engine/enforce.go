package engine

// DuplicateStrictness controls duplicate key handling.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// SimpleIssue is a minimal issue representation used inside the engine.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

// IssueError is a lightweight error carrying a SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.SimpleIssue.Message }

// EnforceOptions controls runtime enforcement behavior.
type EnforceOptions struct {
	OnDuplicate DuplicateStrictness
	MaxDepth    int
	MaxBytes    int64
	// IssueSink receives every finding, fatal or not. Warnings are only
	// visible through it.
	IssueSink func(SimpleIssue)
}

// WrapWithEnforcement returns a TokenSource that enforces duplicate key policy,
// maximum nesting depth and maximum consumed bytes.
func WrapWithEnforcement(inner TokenSource, opt EnforceOptions) TokenSource {
	return &enforcingTokenSource{inner: inner, opt: opt, frames: NewFrames(opt.OnDuplicate != DupIgnore)}
}

type enforcingTokenSource struct {
	inner  TokenSource
	opt    EnforceOptions
	frames *Frames
}

func (e *enforcingTokenSource) NextToken() (Token, error) {
	tok, err := e.inner.NextToken()
	if err != nil {
		return Token{}, err
	}

	path := e.frames.Path(tok.Kind, tok.String)
	if path == "" {
		path = "/"
	}
	dup := e.frames.Apply(tok)

	switch tok.Kind {
	case KindBeginObject, KindBeginArray:
		if e.opt.MaxDepth > 0 && e.frames.Depth() > e.opt.MaxDepth {
			return Token{}, e.report(SimpleIssue{Code: "parse_error", Path: path, Message: "max depth exceeded"}, true)
		}
	case KindKey:
		if dup {
			si := SimpleIssue{Code: "duplicate_key", Path: path, Message: "key '" + tok.String + "' duplicated"}
			if err := e.report(si, e.opt.OnDuplicate == DupError); err != nil {
				return Token{}, err
			}
		}
	}

	if e.opt.MaxBytes > 0 {
		if off := e.Location(); off >= 0 && off > e.opt.MaxBytes {
			return Token{}, e.report(SimpleIssue{Code: "truncated", Path: path, Message: "max bytes exceeded"}, true)
		}
	}
	return tok, nil
}

func (e *enforcingTokenSource) report(si SimpleIssue, fatal bool) error {
	if e.opt.IssueSink != nil {
		e.opt.IssueSink(si)
	}
	if fatal {
		return IssueError{si}
	}
	return nil
}

func (e *enforcingTokenSource) Location() int64 { return e.inner.Location() }
