package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tinylobby/sv"
)

type validateParams struct {
	class    string
	format   string
	dup      string
	maxDepth int
	maxBytes int64
	indent   bool
}

func newValidateCmd(root *rootParams) *cobra.Command {
	var p validateParams
	cmd := &cobra.Command{
		Use:   "validate [FILE|-]",
		Short: "Validate a document and print its canonical form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runValidate(cmd, root.logger, p, path)
		},
	}
	cmd.Flags().StringVarP(&p.class, "class", "c", "", "class to validate against")
	cmd.Flags().StringVarP(&p.format, "format", "f", "json", "input format: json or yaml")
	cmd.Flags().StringVar(&p.dup, "dup", "error", "duplicate keys: ignore, warn or error")
	cmd.Flags().IntVar(&p.maxDepth, "max-depth", 0, "maximum nesting depth (0: unlimited)")
	cmd.Flags().Int64Var(&p.maxBytes, "max-bytes", 0, "maximum input size in bytes (0: unlimited)")
	cmd.Flags().BoolVar(&p.indent, "indent", false, "indent the output")
	return cmd
}

func parseSeverity(s string) (sv.Severity, error) {
	switch s {
	case "ignore":
		return sv.Ignore, nil
	case "warn":
		return sv.Warn, nil
	case "error":
		return sv.Error, nil
	}
	return 0, fmt.Errorf("invalid --dup %q", s)
}

func runValidate(cmd *cobra.Command, logger *zap.Logger, p validateParams, path string) error {
	cls, err := lookupClass(p.class)
	if err != nil {
		return err
	}
	sev, err := parseSeverity(p.dup)
	if err != nil {
		return err
	}
	opt := sv.ParseOpt{
		Strictness: sv.Strictness{OnDuplicateKey: sev},
		MaxDepth:   p.maxDepth,
		MaxBytes:   p.maxBytes,
		OnIssue: func(it sv.Issue) {
			logger.Warn("parse issue", zap.String("code", it.Code), zap.String("path", it.Path), zap.String("message", it.Message))
		},
	}
	data, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	logger.Debug("read input", zap.String("path", path), zap.Int("bytes", len(data)), zap.String("format", p.format))

	var input any
	switch p.format {
	case "json":
		input, err = sv.ParseJSON(data, opt)
	case "yaml", "yml":
		input, err = decodeYAML(data)
	default:
		return fmt.Errorf("invalid --format %q", p.format)
	}
	if err == nil {
		var v sv.Schematized
		v, err = sv.InstantiateWith(input, cls, opt)
		if err == nil {
			return printCanonical(cmd, v, p.indent)
		}
	}
	if iss, ok := sv.AsIssues(err); ok {
		for _, it := range iss {
			fmt.Fprintln(cmd.ErrOrStderr(), it.String())
		}
		logger.Debug("validation failed", zap.String("class", cls.Name()), zap.Int("issues", len(iss)))
		return fmt.Errorf("%s: invalid %s", path, cls.Name())
	}
	return err
}

func printCanonical(cmd *cobra.Command, v sv.Schematized, indent bool) error {
	var (
		out string
		err error
	)
	if indent {
		out, err = sv.ToStringIndent(v, "", "  ")
	} else {
		out, err = sv.ToString(v)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
