package pml

import "strings"

// translator rewrites PML tag delimiters into XML tag delimiters.
var translator = strings.NewReplacer(
	"{", "<",
	"}", ">",
	`\`, "/",
)

// Translate rewrites a PML document into XML syntax by replacing every "{"
// with "<", every "}" with ">", and every backslash with "/".
//
// There is no escape mechanism: braces or backslashes occurring in item text
// are rewritten like any other and will usually make the result malformed.
func Translate(raw string) string {
	return translator.Replace(raw)
}
