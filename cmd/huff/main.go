package main

import (
	"fmt"
	"os"

	"github.com/bytepress/huff/cmd/huff/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
