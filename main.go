//go:build !js

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "viewcube targets js/wasm; build with GOOS=js GOARCH=wasm")
	os.Exit(1)
}
