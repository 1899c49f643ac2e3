package reader

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_ReadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.src")
	content := "input mems:0\r\nmac input, #1\n\n# done\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Could not write test file: %s", err)
	}

	lines, err := ReadSource(path)
	if err != nil {
		t.Fatalf("ReadSource failed: %s", err)
	}
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "input mems:0" {
		t.Errorf("Carriage return not stripped: '%s'", lines[0])
	}
	if lines[1] != "mac input, #1" {
		t.Errorf("Unexpected second line: '%s'", lines[1])
	}
}

func Test_ReadSource_Missing(t *testing.T) {
	if _, err := ReadSource("/no/such/file.src"); err == nil {
		t.Errorf("ReadSource of a missing file should fail")
	}
}
