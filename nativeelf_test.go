package graphisomorphism_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/TimelessP/graphisomorphism"
)

const demoAppSource = "testdata/demo-app.go"

func TestExtractNative(t *testing.T) {
	binPath := filepath.Join(t.TempDir(), "demo-app")
	cmd := exec.Command("go", "build", "-o", binPath, demoAppSource)
	cmd.Env = append(os.Environ(), "CGO_ENABLED=0")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to compile demo-app: %v\n%s", err, out)
	}

	g, err := graphisomorphism.ExtractNative(binPath)
	if err != nil {
		t.Fatalf("ExtractNative: %v", err)
	}
	if g.NodeCount() == 0 {
		t.Fatal("expected at least one conditional-branch node in a compiled program with an if/switch")
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestExtractNativeRejectsNonELF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-an-elf")
	if err := os.WriteFile(path, []byte("not an ELF file"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := graphisomorphism.ExtractNative(path)
	if err == nil {
		t.Fatal("expected error for non-ELF input, got nil")
	}
}

func TestExtractNativeRejectsMissingFile(t *testing.T) {
	_, err := graphisomorphism.ExtractNative(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
