package buildinfo

import (
	"strings"
	"testing"
)

func TestSoftware(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	Version = "v1.2.3"
	if got := Software(); got != "circuitsvg@v1.2.3" {
		t.Errorf("Software() = %q", got)
	}
	if !strings.Contains(Template(), "v1.2.3") {
		t.Errorf("Template() = %q", Template())
	}
}
