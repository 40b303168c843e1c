// Package middleware validates JSON request bodies against a class before the
// handler runs. Decode returns a standard net/http middleware, so it plugs
// into chi routers and anything else built on http.Handler.
package middleware

import (
	"context"
	"net/http"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/tinylobby/sv"
)

type ctxKeyInstance struct{}

// ContextWithValue attaches a validated instance to the context.
func ContextWithValue(ctx context.Context, v sv.Schematized) context.Context {
	return context.WithValue(ctx, ctxKeyInstance{}, v)
}

// FromContext retrieves the instance stored by Decode.
func FromContext[T sv.Schematized](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKeyInstance{}).(T)
	return v, ok
}

// DefaultParseOpt returns a recommended default for HTTP JSON boundaries:
// duplicate keys are errors and bodies are capped at 1 MiB and 64 levels.
func DefaultParseOpt() sv.ParseOpt {
	return sv.ParseOpt{
		Strictness: sv.Strictness{OnDuplicateKey: sv.Error},
		MaxDepth:   64,
		MaxBytes:   1 << 20,
	}
}

// ErrorPayload shapes Issues for JSON responses.
func ErrorPayload(issues []sv.Issue) map[string]any {
	return map[string]any{"issues": issues}
}

type config struct {
	opt    sv.ParseOpt
	logger *zap.Logger
}

// Option configures Decode.
type Option func(*config)

// WithParseOpt replaces DefaultParseOpt.
func WithParseOpt(opt sv.ParseOpt) Option { return func(c *config) { c.opt = opt } }

// WithLogger sets the logger rejected requests are reported to.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Decode instantiates the request body as cls and stores the instance in the
// request context. Invalid bodies are answered with 400 and the issues; the
// next handler is not called.
func Decode(cls sv.Class, opts ...Option) func(http.Handler) http.Handler {
	cfg := config{opt: DefaultParseOpt(), logger: zap.NewNop()}
	for _, o := range opts {
		o(&cfg)
	}
	name := cls.Name()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			v, err := decodeBody(r, cls, cfg.opt)
			if err != nil {
				iss, ok := sv.AsIssues(err)
				if !ok {
					iss = sv.Issues{{Path: "/", Code: sv.CodeParseError, Message: err.Error()}}
				}
				cfg.logger.Info("rejected request body",
					zap.String("class", name),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("code", iss[0].Code),
					zap.String("pointer", iss[0].Path),
				)
				writeJSON(w, http.StatusBadRequest, ErrorPayload(iss))
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithValue(r.Context(), v)))
		})
	}
}

func decodeBody(r *http.Request, cls sv.Class, opt sv.ParseOpt) (sv.Schematized, error) {
	if r.Body == nil {
		return nil, sv.Issues{{Path: "/", Code: sv.CodeParseError, Message: "empty request body"}}
	}
	defer r.Body.Close()
	data, err := sv.ReadJSON(r.Body, opt)
	if err != nil {
		return nil, err
	}
	return sv.InstantiateWith(data, cls, opt)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
