// Package assets provides the HTML page templates used to render a site.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in templates compiled into the binary
//	    ├── FilesystemLoader  - templates from a site's templates directory
//	    └── Resolver          - combines both with custom-first fallback
//
// A site may override any subset of the page templates: Resolver tries the
// site's directory first and falls back to the embedded copy only when the
// template does not exist there.
//
// # Templates
//
//	{templatesDir}/
//	├── base.html    # document skeleton, defines "title" and "content" blocks
//	├── index.html   # post listing, receives the ordered posts
//	└── post.html    # single post page
//
// # Security
//
// Template names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within its base directory.
package assets
