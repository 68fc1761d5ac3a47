package patcher

import (
	"strings"
	"text/template"
)

// scriptParams are the inputs to the launch script template.
type scriptParams struct {
	Name    string   // display name of the app
	Flags   []string // flags prepended to caller arguments
	Target  string   // absolute path of the binary to exec
	LogFile string   // absolute path of the per-app launch log
}

// launchScriptTemplate is shared by both strategies: it appends a timestamped
// launch line to the per-app log, then replaces itself with the target binary,
// each configured flag individually quoted, passing caller arguments through.
var launchScriptTemplate = template.Must(template.New("launch").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(`#!/bin/bash
# Launch {{.Name}} with OpenGL flags
echo "$(date): Launching {{.Name}} with flags: {{join .Flags " "}}" >> "{{.LogFile}}"
exec "{{.Target}}"{{range .Flags}} "{{.}}"{{end}} "$@"
`))

// trampolineTemplate is the one-line executable of a synthesized wrapper
// bundle. It only hands off to the launcher script.
var trampolineTemplate = template.Must(template.New("trampoline").Parse(`#!/bin/bash
exec "{{.}}" "$@"
`))

// renderLaunchScript returns the full text of a launch script.
func renderLaunchScript(p scriptParams) string {
	var b strings.Builder
	// Execute cannot fail: the template is static and the inputs are strings.
	_ = launchScriptTemplate.Execute(&b, p)
	return b.String()
}

// renderTrampoline returns the full text of a wrapper bundle executable.
func renderTrampoline(scriptPath string) string {
	var b strings.Builder
	_ = trampolineTemplate.Execute(&b, scriptPath)
	return b.String()
}
