/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command typescale generates typography tokens and Figma text styles.
package main

import (
	"errors"
	"os"

	"bennypowers.dev/typescale/cmd"
	"bennypowers.dev/typescale/load"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var exitErr *load.ProcessExitError
		if errors.As(err, &exitErr) && exitErr.Code > 0 {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
