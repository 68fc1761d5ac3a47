package system

import "strings"

// ScriptName returns the launcher script file name for an application,
// e.g. "Google Chrome" -> "google_chrome_opengl.sh".
func ScriptName(appName string) string {
	return strings.ReplaceAll(strings.ToLower(appName), " ", "_") + "_opengl.sh"
}

// WrapperName returns the display name of the synthesized wrapper app,
// e.g. "Spotify" -> "Spotify OpenGL".
func WrapperName(appName string) string {
	return appName + " OpenGL"
}

// WrapperBundleID returns the bundle identifier for a synthesized wrapper
// app, following reverse DNS convention with the app name lowercased and
// dot-joined, e.g. "Foo Bar" -> "com.foo.bar.opengl".
func WrapperBundleID(appName string) string {
	return "com." + strings.ReplaceAll(strings.ToLower(appName), " ", ".") + ".opengl"
}
