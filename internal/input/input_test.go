package input

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLinesSkipsBlank(t *testing.T) {
	got, err := Lines(strings.NewReader("D2FE28\n\n  38006F45291200 \r\nEE00D40C823060"))
	if err != nil {
		t.Fatalf("lines: %v", err)
	}
	want := []Line{
		{Number: 1, Text: "D2FE28"},
		{Number: 3, Text: "38006F45291200"},
		{Number: 4, Text: "EE00D40C823060"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestReadStringTrims(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("\n9C0141080250320F1802104A08\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadString(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != "9C0141080250320F1802104A08" {
		t.Fatalf("got %q", got)
	}
	lines, err := ReadLines(path)
	if err != nil || len(lines) != 1 || lines[0].Number != 2 {
		t.Fatalf("lines=%+v err=%v", lines, err)
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "absent"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not exist, got %v", err)
	}
}
