package dbg

import (
	"fmt"
	"strings"
	"unicode"

	petname "github.com/dustinkirkland/golang-petname"
)

// Random readable names, for telling runs apart in logs and file names. Names
// are not unique; they are only meant to be easier on the eyes than a
// timestamp or a request counter.

func init() {
	// Seeded from the clock, so the same name won't keep coming back between
	// runs.
	petname.NonDeterministicMode()
}

// RunName returns a name like "BraveFalcon".
func RunName() string {
	return fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
}

// FileName turns a run name into a file name with the given extension, like
// "closest-brave-falcon.png".
func FileName(prefix, runName, ext string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for i, r := range runName {
		if i == 0 || unicode.IsUpper(r) {
			b.WriteByte('-')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	b.WriteString(ext)
	return b.String()
}
