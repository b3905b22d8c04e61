package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	got := String()
	if !strings.HasPrefix(got, "paperlayout "+GitRelease) {
		t.Errorf("String() = %q", got)
	}
	if !strings.Contains(GoInfo, runtime.GOOS) {
		t.Errorf("GoInfo = %q, want GOOS %s", GoInfo, runtime.GOOS)
	}
}
