package config

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaSource string

var (
	schemaOnce  sync.Once
	schemaCtx   *cue.Context
	schemaValue cue.Value
	schemaErr   error
)

func loadSchema() (*cue.Context, cue.Value, error) {
	schemaOnce.Do(func() {
		schemaCtx = cuecontext.New()
		root := schemaCtx.CompileString(schemaSource, cue.Filename("schema.cue"))
		if err := root.Err(); err != nil {
			schemaErr = fmt.Errorf("compile config schema: %w", err)
			return
		}
		schemaValue = root.LookupPath(cue.ParsePath("#Config"))
		if err := schemaValue.Err(); err != nil {
			schemaErr = fmt.Errorf("lookup config schema: %w", err)
		}
	})
	return schemaCtx, schemaValue, schemaErr
}

// Validate checks cfg against the embedded CUE schema. All violations are
// reported in one error.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	ctx, schema, err := loadSchema()
	if err != nil {
		return err
	}
	value := ctx.Encode(cfg)
	if err := value.Err(); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid config: %s", strings.TrimSpace(cueerrors.Details(err, nil)))
	}
	return nil
}

// Schema returns the CUE source of the configuration schema.
func Schema() string {
	return schemaSource
}
