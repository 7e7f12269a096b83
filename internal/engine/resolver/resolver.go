// Package resolver turns raw command tokens into a validated build
// configuration.
package resolver

import (
	"strings"

	"go.trai.ch/zerr"

	"github.com/buildforge/forge/internal/core/domain"
)

const (
	flagTarget = "-target"
	flagOutput = "-output"
	flagDebug  = "-debug"
	flagAppend = "-append"
)

// Resolve scans tokens left to right and builds a BuildConfiguration.
//
// Flag names match case-insensitively. -target and -output consume the next
// token verbatim; a valued flag appearing as the last token counts as not
// provided. The first occurrence wins for valued flags, presence flags are
// idempotent, and tokens the host runtime prepends are tolerated rather than
// rejected. An unrecognized target name is a hard failure so malformed
// automation input stops the pipeline instead of building the wrong platform.
func Resolve(tokens []string) (domain.BuildConfiguration, error) {
	var (
		cfg        domain.BuildConfiguration
		haveTarget bool
		haveOutput bool
	)

	for i, tok := range tokens {
		switch strings.ToLower(tok) {
		case flagTarget:
			if haveTarget || i+1 >= len(tokens) {
				continue
			}
			name := tokens[i+1]
			target, ok := domain.ParseTarget(name)
			if !ok {
				err := zerr.With(domain.ErrUnknownTarget, "target", name)
				return domain.BuildConfiguration{}, withArgs(err, tokens)
			}
			cfg.Target = target
			haveTarget = true
		case flagOutput:
			if haveOutput || i+1 >= len(tokens) {
				continue
			}
			cfg.OutputPath = tokens[i+1]
			haveOutput = true
		case flagDebug:
			cfg.Debug = true
		case flagAppend:
			cfg.AppendExisting = true
		}
	}

	if !haveTarget {
		return domain.BuildConfiguration{}, withArgs(domain.ErrMissingTarget, tokens)
	}
	if !haveOutput || cfg.OutputPath == "" {
		return domain.BuildConfiguration{}, withArgs(domain.ErrMissingOutputPath, tokens)
	}

	return cfg, nil
}

// withArgs echoes the full raw token list in the error text so the operator
// sees exactly what was scanned, and keeps it as metadata for callers.
func withArgs(err error, tokens []string) error {
	raw := strings.Join(tokens, " ")
	return zerr.With(zerr.Wrap(err, "raw arguments: "+raw), "args", raw)
}
