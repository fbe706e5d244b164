package envvars

import (
	"maps"
	"slices"
	"strings"

	"github.com/kballard/go-shellquote"
)

// RenderDotenv renders vars as sorted KEY=VALUE lines, quoting values a shell would split.
func RenderDotenv(vars map[string]string) string {
	return render(vars, "")
}

// RenderShell renders vars as sorted export statements.
func RenderShell(vars map[string]string) string {
	return render(vars, "export ")
}

func render(vars map[string]string, prefix string) string {
	var b strings.Builder
	for _, key := range slices.Sorted(maps.Keys(vars)) {
		b.WriteString(prefix)
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(shellquote.Join(vars[key]))
		b.WriteByte('\n')
	}
	return b.String()
}
