package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/tinylobby/sv"
	_ "github.com/tinylobby/sv/source"
	"github.com/tinylobby/sv/wire"
)

type rootParams struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	params := &rootParams{logger: zap.NewNop()}
	cmd := &cobra.Command{
		Use:           "sv",
		Short:         "Validate documents against schematized classes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(cmd.ErrOrStderr(), params.verbose)
			if err != nil {
				return err
			}
			params.logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = params.logger.Sync()
		},
	}
	cmd.PersistentFlags().BoolVarP(&params.verbose, "verbose", "v", false, "log debug details to stderr")
	cmd.AddCommand(
		newValidateCmd(params),
		newSchemaCmd(),
		newClassesCmd(),
	)
	return cmd
}

func newLogger(w io.Writer, verbose bool) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core), nil
}

func lookupClass(name string) (sv.Class, error) {
	if name == "" {
		return nil, fmt.Errorf("--class is required (one of: %s)", strings.Join(wire.Classes.Names(), ", "))
	}
	cls, ok := wire.Classes.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown class %q (one of: %s)", name, strings.Join(wire.Classes.Names(), ", "))
	}
	return cls, nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

// decodeYAML turns a YAML document into the plain values sv accepts.
func decodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return normalizeYAML(v), nil
}

func normalizeYAML(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = normalizeYAML(e)
		}
		return x
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[fmt.Sprint(k)] = normalizeYAML(e)
		}
		return out
	case []any:
		for i, e := range x {
			x[i] = normalizeYAML(e)
		}
		return x
	}
	return v
}
