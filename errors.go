package mdblog

import "errors"

// Sentinel errors for library operations.
var (
	// Loading errors.
	ErrReadPosts            = errors.New("failed to read posts")
	ErrMalformedFrontMatter = errors.New("malformed front-matter")
	ErrRenderPost           = errors.New("post rendering failed")

	// Template errors.
	ErrTemplateParse  = errors.New("template parsing failed")
	ErrTemplateRender = errors.New("template rendering failed")

	// Build errors.
	ErrBuild           = errors.New("static build failed")
	ErrEmptyOutputDir  = errors.New("output directory cannot be empty")
	ErrUnsafeOutputDir = errors.New("output directory would overwrite sources")

	// Scaffolding errors.
	ErrEmptySlug  = errors.New("title produces an empty slug")
	ErrPostExists = errors.New("post already exists")
)
