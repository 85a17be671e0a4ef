// Command ccwc counts bytes, lines, words and characters.
package main

import (
	"os"

	"github.com/rcarmo/go-ccwc/pkg/core"
	"github.com/rcarmo/go-ccwc/pkg/wc"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(wc.Main(stdio, os.Args[1:]))
}
