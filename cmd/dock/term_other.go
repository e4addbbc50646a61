//go:build !unix && !windows

package main

import (
	"errors"
	"os"
)

func terminalSize(*os.File) (width, height int, err error) {
	return 0, 0, errors.New("terminal size is not supported on this platform")
}
