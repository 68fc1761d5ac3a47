package system

import "testing"

func TestScriptName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single word", "Spotify", "spotify_opengl.sh"},
		{"two words", "Google Chrome", "google_chrome_opengl.sh"},
		{"three words", "Visual Studio Code", "visual_studio_code_opengl.sh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScriptName(tt.in); got != tt.want {
				t.Errorf("ScriptName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWrapperName(t *testing.T) {
	if got := WrapperName("Spotify"); got != "Spotify OpenGL" {
		t.Errorf("WrapperName = %q, want %q", got, "Spotify OpenGL")
	}
}

func TestWrapperBundleID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single word", "Spotify", "com.spotify.opengl"},
		{"two words", "Foo Bar", "com.foo.bar.opengl"},
		{"mixed case", "OBS Studio", "com.obs.studio.opengl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapperBundleID(tt.in); got != tt.want {
				t.Errorf("WrapperBundleID(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
