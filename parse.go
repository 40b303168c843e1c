package sv

import (
	"errors"
	"io"

	eng "github.com/tinylobby/sv/internal/engine"
)

// ParseJSON decodes JSON text into plain values: map[string]any, []any,
// string, bool, nil and json.Number (or float64 with NumberFloat64). Any
// failure is reported as Issues.
func ParseJSON(data []byte, opts ...ParseOpt) (any, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, singleIssue(CodeTruncated, "max bytes exceeded")
	}
	return ParseFrom(JSONBytes(data), opt)
}

// ReadJSON decodes one JSON document from r. When MaxBytes is set it enforces
// the size cap up front.
func ReadJSON(r io.Reader, opts ...ParseOpt) (any, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 {
		data, err := io.ReadAll(io.LimitReader(r, opt.MaxBytes+1))
		if err != nil {
			return nil, singleIssue(CodeParseError, err.Error())
		}
		return ParseJSON(data, opt)
	}
	return ParseFrom(JSONReader(r), opt)
}

// ParseFrom consumes tokens from the Source and builds the plain value. Input
// after the first complete value is rejected.
func ParseFrom(src Source, opts ...ParseOpt) (any, error) {
	if src == nil {
		return nil, singleIssue(CodeParseError, "nil source")
	}
	opt := lastOpt(opts)
	if src.NumberMode() != opt.NumberMode {
		src = WithNumberMode(src, opt.NumberMode)
	}
	enforced := EnforceSourceIfNeeded(src, opt)
	v, err := decodeAnyFromSource(enforced)
	if err != nil {
		return nil, toIssues(err)
	}
	if _, err := enforced.NextToken(); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, singleIssue(CodeParseError, "unexpected data after top-level value")
		}
		return nil, toIssues(err)
	}
	return v, nil
}

func lastOpt(opts []ParseOpt) ParseOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return ParseOpt{}
}

func decodeAnyFromSource(src Source) (any, error) {
	engSrc := EngineTokenSource(src)
	if src.NumberMode() == NumberFloat64 {
		return eng.DecodeAny(engSrc, eng.AsFloat64)
	}
	return eng.DecodeAny(engSrc, eng.AsJSONNumber)
}

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return Issues{{Code: ie.Code, Path: ie.Path, Message: ie.Message}}
	}
	if errors.Is(err, io.EOF) {
		return Issues{{Path: "/", Code: CodeParseError, Message: "unexpected end of JSON input", Cause: err}}
	}
	return Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
}
