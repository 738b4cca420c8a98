package shell

import "strings"

// Quote wraps value in single quotes for safe embedding in a shell script.
func Quote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
