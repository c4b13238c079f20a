package main

import "errors"

// CLI errors.
var (
	ErrUsage   = errors.New("invalid usage")
	ErrNoTitle = errors.New("post title is required")
	ErrWatch   = errors.New("watching for changes failed")
)
