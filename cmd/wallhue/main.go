// wallhue - Terminal colour schemes from wallpapers
//
// wallhue extracts the dominant colours of a wallpaper, builds a readable
// 16-colour terminal scheme from them and renders configuration templates.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/wallhue/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
