package pipeline

import (
	"errors"
	"fmt"
	"io"

	"github.com/adrg/frontmatter"
)

// ErrFrontMatter indicates the front-matter block could not be decoded.
var ErrFrontMatter = errors.New("invalid front-matter")

// FrontMatterParser splits a post source into metadata and Markdown body.
type FrontMatterParser interface {
	// Parse returns the decoded metadata (possibly empty, never nil) and the
	// body without the front-matter block. A source without front-matter is
	// not an error: the whole input is returned as body.
	Parse(r io.Reader) (map[string]any, []byte, error)
}

// DelimitedFrontMatter parses "---" YAML, "+++" TOML and ";;;" JSON headers.
type DelimitedFrontMatter struct{}

// Parse implements FrontMatterParser.
func (DelimitedFrontMatter) Parse(r io.Reader) (map[string]any, []byte, error) {
	meta := map[string]any{}
	body, err := frontmatter.Parse(r, &meta)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	if meta == nil {
		meta = map[string]any{}
	}
	return meta, body, nil
}

// Compile-time interface check.
var _ FrontMatterParser = DelimitedFrontMatter{}
