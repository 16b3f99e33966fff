package version

import "testing"

func TestString_PrefersLdflagsValue(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	Version = "v1.2.3"
	if got := String(); got != "v1.2.3" {
		t.Errorf("String() = %q, want %q", got, "v1.2.3")
	}
}

func TestString_NonEmpty(t *testing.T) {
	if String() == "" {
		t.Error("String() returned empty version")
	}
}
