package huffman

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sort"
	"unicode/utf8"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

var magic = [4]byte{'H', 'U', 'F', 'F'}

// Encode compresses content and writes the container to w.
//
// The frequency table, tree, and code table are built from scratch for this
// one call and discarded afterwards; only their serialized form survives in
// the container.  Empty content yields ErrEmptyInput.
func Encode(content string, w io.Writer) error {
	frequencies := CountFrequencies(content)
	root, err := BuildTree(frequencies)
	if err != nil {
		return err
	}
	codes := GenerateCodes(root)

	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	if err := writeCodeTable(w, codes); err != nil {
		return err
	}
	return writePayload(w, content, codes)
}

// EncodeFile reads the text file at src and writes its compressed container
// to dst, creating or truncating dst.
func EncodeFile(src, dst string) error {
	content, err := readText(src)
	if err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(out)
	if err := Encode(content, bw); err != nil {
		out.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// writeCodeTable serializes the table as a u32 big-endian byte length
// followed by one entry per symbol: symbol length, UTF-8 symbol bytes, code
// length, code bytes as literal '0'/'1' text.  Entries are emitted in
// ascending Symbol order so identical inputs produce identical containers.
func writeCodeTable(w io.Writer, codes CodeTable) error {
	symbols := make([]Symbol, 0, len(codes))
	for symbol := range codes {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool {
		return symbols[i] < symbols[j]
	})

	var buf bytes.Buffer
	var symbolBytes [utf8.UTFMax]byte
	for _, symbol := range symbols {
		code := codes[symbol]
		assert.Assertf(len(code) <= 0xff, "code for %q is %d bits, limit is 255", rune(symbol), len(code))

		n := utf8.EncodeRune(symbolBytes[:], rune(symbol))
		buf.WriteByte(byte(n))
		buf.Write(symbolBytes[:n])
		buf.WriteByte(byte(len(code)))
		buf.WriteString(string(code))
	}

	var word [4]byte
	binary.BigEndian.PutUint32(word[:], uint32(buf.Len()))
	if _, err := w.Write(word[:]); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// writePayload writes the u64 big-endian payload bit count, then the
// concatenated codes of every source symbol packed MSB-first, zero-padded
// to a byte boundary.
func writePayload(w io.Writer, content string, codes CodeTable) error {
	var bitCount uint64
	for _, r := range content {
		code, found := codes[Symbol(r)]
		if !found {
			return fmt.Errorf("huffman: no code for %q: %w", r, ErrUnknownSymbol)
		}
		bitCount += uint64(len(code))
	}

	var word [8]byte
	binary.BigEndian.PutUint64(word[:], bitCount)
	if _, err := w.Write(word[:]); err != nil {
		return err
	}

	bw := bitio.NewWriter(w)
	for _, r := range content {
		code := codes[Symbol(r)]
		for i := 0; i < len(code); i++ {
			if err := bw.WriteBool(code[i] == '1'); err != nil {
				return err
			}
		}
	}
	// Close flushes the final partial byte, padding with zero bits.
	return bw.Close()
}

func readText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("huffman: %s: %w", path, ErrInvalidText)
	}
	return string(raw), nil
}
