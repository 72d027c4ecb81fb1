package main

import "embed"

// configFS holds the default tuning and stages, used when -config is not given
//
//go:embed configs
var configFS embed.FS
