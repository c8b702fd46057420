package render

import (
	"os"

	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Preview prints a PNG file inline in the terminal. This only works in
// terminals that understand the iTerm image protocol; others print garbage.
func Preview(path string) {
	imgcat.CatFile(path, os.Stdout)
}
