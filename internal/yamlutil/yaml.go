// Package yamlutil wraps YAML encoding so the rest of the module never
// imports the YAML library directly.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

// FrontMatterDelimiter opens and closes a YAML front-matter block.
const FrontMatterDelimiter = "---"

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// UnmarshalStrict decodes data into v and rejects unknown fields.
// Used for configuration files, where a typo should fail loudly.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Marshal encodes v as YAML.
func Marshal(v any) ([]byte, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}

// FrontMatter encodes v as a "---" delimited YAML block terminated by a
// newline, ready to be followed by a Markdown body.
func FrontMatter(v any) ([]byte, error) {
	out, err := Marshal(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(FrontMatterDelimiter + "\n")
	buf.Write(out)
	if !bytes.HasSuffix(out, []byte("\n")) {
		buf.WriteByte('\n')
	}
	buf.WriteString(FrontMatterDelimiter + "\n")
	return buf.Bytes(), nil
}
