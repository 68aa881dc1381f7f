//go:build js

package main

import "syscall/js"

type cursor string

const (
	cursorAuto     cursor = "auto"
	cursorDefault  cursor = "default"
	cursorPointer  cursor = "pointer"
	cursorGrab     cursor = "grab"
	cursorGrabbing cursor = "grabbing"
	cursorMove     cursor = "move"
)

func setCursor(elem js.Value, c cursor) {
	elem.Get("style").Set("cursor", string(c))
}
