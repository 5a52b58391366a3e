package huffman

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"
)

func TestEncode_ContainerLayout(t *testing.T) {
	const content = "abracadabra"

	var buf bytes.Buffer
	if err := Encode(content, &buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	data := buf.Bytes()

	if len(data) < 8 || !bytes.Equal(data[:4], []byte("HUFF")) {
		t.Fatalf("container does not start with magic: %q", data[:4])
	}
	tableLen := binary.BigEndian.Uint32(data[4:8])
	table := data[8 : 8+int(tableLen)]

	// Every entry must land exactly on the table boundary.
	codes := make(CodeTable)
	for len(table) > 0 {
		symbolLen := int(table[0])
		r, size := utf8.DecodeRune(table[1 : 1+symbolLen])
		if size != symbolLen {
			t.Fatalf("entry symbol is not a single rune: % x", table[1:1+symbolLen])
		}
		codeLen := int(table[1+symbolLen])
		code := Code(table[2+symbolLen : 2+symbolLen+codeLen])
		codes[Symbol(r)] = code
		table = table[2+symbolLen+codeLen:]
	}

	var expectBits uint64
	for _, r := range content {
		code, found := codes[Symbol(r)]
		if !found {
			t.Fatalf("no table entry for %q", r)
		}
		expectBits += uint64(len(code))
	}

	rest := data[8+int(tableLen):]
	if len(rest) < 8 {
		t.Fatalf("missing payload bit count, %d bytes left", len(rest))
	}
	bitCount := binary.BigEndian.Uint64(rest[:8])
	if bitCount != expectBits {
		t.Errorf("expected bit count %d, got %d", expectBits, bitCount)
	}

	payload := rest[8:]
	if expectLen := int((bitCount + 7) / 8); len(payload) != expectLen {
		t.Errorf("expected %d payload bytes, got %d", expectLen, len(payload))
	}
}

func TestEncode_Idempotent(t *testing.T) {
	const content = "deterministic tie-breaks make deterministic containers"

	var first, second bytes.Buffer
	if err := Encode(content, &first); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if err := Encode(content, &second); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("encoding the same input twice produced different containers")
	}
}

func TestEncode_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := Encode("", &buf)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestEncodeFile_InvalidText(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "binary.dat")
	if err := os.WriteFile(src, []byte{0xff, 0xfe, 0xfd}, 0o644); err != nil {
		t.Fatal(err)
	}

	err := EncodeFile(src, filepath.Join(dir, "out.huff"))
	if !errors.Is(err, ErrInvalidText) {
		t.Errorf("expected ErrInvalidText, got %v", err)
	}
}

func TestEncodeFile_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := EncodeFile(filepath.Join(dir, "no-such-file"), filepath.Join(dir, "out.huff"))
	if err == nil || !os.IsNotExist(err) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}
