package sv

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tinylobby/sv/i18n"
)

// Issue codes.
const (
	CodeMissingField     = "missing_field"
	CodeArrayExpected    = "array_expected"
	CodeUnsupportedArray = "unsupported_array"
	CodeClassMismatch    = "class_mismatch"
	CodeTypeMismatch     = "type_mismatch"
	CodeSelectorNoMatch  = "selector_no_match"
	CodeParseError       = "parse_error"
	CodeDuplicateKey     = "duplicate_key"
	CodeTruncated        = "truncated"
)

// Issue describes why an input was rejected.
type Issue struct {
	Path     string `json:"path"`               // JSON Pointer of the offending value (for example: /messages/2/user).
	Code     string `json:"code"`               // One of the codes listed above.
	Message  string `json:"message"`
	Class    string `json:"class,omitempty"`    // Owning blueprint, empty at the top level of a parse.
	Field    string `json:"field,omitempty"`
	Expected string `json:"expected,omitempty"` // Declared type or classification.
	Got      string `json:"got,omitempty"`      // Classification of the actual value.
	Cause    error  `json:"-"`                  // Optional: underlying error.
}

func (it Issue) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s at %s", it.Code, pathOrRoot(it.Path))
	if it.Message != "" {
		b.WriteString(": ")
		b.WriteString(it.Message)
	}
	if it.Class != "" || it.Field != "" || it.Expected != "" || it.Got != "" {
		b.WriteString(" (")
		if it.Class != "" || it.Field != "" {
			b.WriteString(it.Class)
			if it.Field != "" {
				if it.Class != "" {
					b.WriteByte('.')
				}
				b.WriteString(it.Field)
			}
			if it.Expected != "" || it.Got != "" {
				b.WriteString(": ")
			}
		}
		if it.Expected != "" || it.Got != "" {
			fmt.Fprintf(b, "expected %q, got %q", it.Expected, it.Got)
		}
		b.WriteByte(')')
	}
	return b.String()
}

func pathOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

// Issues is a collection of validation errors that implements error. The
// engine stops at the first problem, so values it returns hold one Issue.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(iss[i].String())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is/As can see through Issues.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IssueCode returns the code of the first issue carried by err, or "" when err
// does not carry Issues.
func IssueCode(err error) string {
	iss, ok := AsIssues(err)
	if !ok || len(iss) == 0 {
		return ""
	}
	return iss[0].Code
}

func singleIssue(code, msg string) Issues {
	return Issues{{Path: "/", Code: code, Message: msg}}
}

// fail builds the single-issue error returned by the traversal.
func fail(p PathRef, code, class, field, expected, got string) error {
	return Issues{{
		Path:     p.Pointer(),
		Code:     code,
		Message:  i18n.T(code, map[string]string{"class": class, "field": field, "expected": expected, "got": got}),
		Class:    class,
		Field:    field,
		Expected: expected,
		Got:      got,
	}}
}

// rebase moves issues produced by a nested parse under base.
func rebase(base PathRef, err error) error {
	iss, ok := AsIssues(err)
	if !ok {
		return Issues{{Path: base.Pointer(), Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	out := make(Issues, 0, len(iss))
	prefix := base.Pointer()
	if prefix == "/" {
		prefix = ""
	}
	for _, it := range iss {
		p := it.Path
		if p == "" || p == "/" {
			p = pathOrRoot(prefix)
		} else {
			p = prefix + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}
