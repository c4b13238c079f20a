// Package pipeline implements the stages that turn a Markdown post source
// into renderable HTML:
//   - front-matter extraction (YAML, TOML or JSON header via adrg/frontmatter)
//   - Markdown to HTML conversion via Goldmark (GFM, fenced code blocks,
//     Chroma syntax highlighting with CSS classes)
//   - rewriting of relative src attributes to per-post image folders
//   - plain-text excerpt extraction for listings
//
// Each stage is exposed behind a small interface or pure function so the
// orchestration in the root mdblog package can be tested with fakes.
package pipeline
