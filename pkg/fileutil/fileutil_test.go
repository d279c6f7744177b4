package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestChecksumReader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "d41d8cd98f00b204e9800998ecf8427e"},
		{"abc", "900150983cd24fb0d6963f7d28e17f72"},
		{strings.Repeat("a", 200*1024), "87803ac1cabd226eeb9c7665efe2a758"},
	}

	for _, tt := range tests {
		sum, err := ChecksumReader(strings.NewReader(tt.in))
		if err != nil {
			t.Fatalf("checksum failed: %v", err)
		}
		if sum.Hex() != tt.want {
			t.Errorf("checksum(len %d) = %s, want %s", len(tt.in), sum.Hex(), tt.want)
		}
	}
}

func TestChecksumFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload")
	if err := os.WriteFile(path, []byte("The quick brown fox jumps over the lazy dog"), PrivateFileMode); err != nil {
		t.Fatal(err)
	}

	sum, err := ChecksumFile(path)
	if err != nil {
		t.Fatalf("checksum failed: %v", err)
	}
	if sum.Hex() != "9e107d9d372bb6826bd81d3542a419d6" {
		t.Errorf("checksum = %s", sum.Hex())
	}
}

func TestChecksumFileMissing(t *testing.T) {
	if _, err := ChecksumFile(filepath.Join(t.TempDir(), "no-such-file")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestExist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	if Exist(path) {
		t.Error("Exist reported a missing file")
	}
	os.WriteFile(path, nil, PrivateFileMode)
	if !Exist(path) {
		t.Error("Exist missed an existing file")
	}
}
