package huffman

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/icza/bitio"
)

// ReverseTable maps each Code back to its Symbol: the inverse of the
// CodeTable that produced a container.  Decoding requires it to be a
// bijection over a prefix-free code set; parseCodeTable and buildTrie
// reject containers where it is not.
type ReverseTable map[Code]Symbol

// Decode reads a container from r and returns the original text.
//
// A reader whose first four bytes are not the magic yields ErrBadMagic; a
// truncated or inconsistent code table yields ErrMalformedTable; a payload
// that disagrees with the table or the declared bit count yields
// ErrMalformedPayload.
func Decode(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return decodeContainer(data)
}

// DecodeFile reads the container at src and writes the decoded text to dst,
// creating or truncating dst.  dst is not touched unless decoding fully
// succeeds.
func DecodeFile(src, dst string) error {
	raw, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	content, err := decodeContainer(raw)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, []byte(content), 0o644)
}

func decodeContainer(data []byte) (string, error) {
	if len(data) < len(magic) || !bytes.Equal(data[:len(magic)], magic[:]) {
		return "", ErrBadMagic
	}
	data = data[len(magic):]

	if len(data) < 4 {
		return "", fmt.Errorf("huffman: truncated table length: %w", ErrMalformedTable)
	}
	tableLen := binary.BigEndian.Uint32(data[:4])
	data = data[4:]
	if uint64(len(data)) < uint64(tableLen) {
		return "", fmt.Errorf("huffman: table length %d exceeds container size: %w", tableLen, ErrMalformedTable)
	}

	table, err := parseCodeTable(data[:tableLen])
	if err != nil {
		return "", err
	}
	data = data[tableLen:]

	if len(data) < 8 {
		return "", fmt.Errorf("huffman: truncated payload bit count: %w", ErrMalformedPayload)
	}
	bitCount := binary.BigEndian.Uint64(data[:8])
	return decodePayload(data[8:], bitCount, table)
}

// parseCodeTable parses exactly raw into a ReverseTable.  The cumulative
// entry sizes must land exactly on the table boundary.
func parseCodeTable(raw []byte) (ReverseTable, error) {
	table := make(ReverseTable, 16)
	seen := make(map[Symbol]bool, 16)

	for len(raw) > 0 {
		symbolLen := int(raw[0])
		raw = raw[1:]
		if symbolLen == 0 || symbolLen > len(raw) {
			return nil, fmt.Errorf("huffman: entry overruns table boundary: %w", ErrMalformedTable)
		}
		r, size := utf8.DecodeRune(raw[:symbolLen])
		if size != symbolLen || r == utf8.RuneError && size == 1 {
			return nil, fmt.Errorf("huffman: entry symbol is not a single UTF-8 scalar: %w", ErrMalformedTable)
		}
		raw = raw[symbolLen:]

		if len(raw) == 0 {
			return nil, fmt.Errorf("huffman: entry overruns table boundary: %w", ErrMalformedTable)
		}
		codeLen := int(raw[0])
		raw = raw[1:]
		if codeLen == 0 || codeLen > len(raw) {
			return nil, fmt.Errorf("huffman: entry overruns table boundary: %w", ErrMalformedTable)
		}
		code := Code(raw[:codeLen])
		raw = raw[codeLen:]

		for i := 0; i < len(code); i++ {
			if code[i] != '0' && code[i] != '1' {
				return nil, fmt.Errorf("huffman: code for %q contains byte %#02x: %w", r, code[i], ErrMalformedTable)
			}
		}
		if _, dup := table[code]; dup {
			return nil, fmt.Errorf("huffman: duplicate code %q: %w", string(code), ErrMalformedTable)
		}
		if seen[Symbol(r)] {
			return nil, fmt.Errorf("huffman: duplicate symbol %q: %w", r, ErrMalformedTable)
		}
		seen[Symbol(r)] = true
		table[code] = Symbol(r)
	}

	if len(table) == 0 {
		return nil, fmt.Errorf("huffman: empty code table: %w", ErrMalformedTable)
	}
	return table, nil
}

// decodePayload walks a decoding trie built from the table, consuming
// exactly bitCount bits MSB-first and emitting one symbol per matched code.
// The trailing pad bits are never examined.
func decodePayload(payload []byte, bitCount uint64, table ReverseTable) (string, error) {
	if bitCount > uint64(len(payload))*8 {
		return "", fmt.Errorf("huffman: payload holds %d bits, header claims %d: %w", uint64(len(payload))*8, bitCount, ErrMalformedPayload)
	}

	root, err := buildTrie(table)
	if err != nil {
		return "", err
	}

	br := bitio.NewReader(bytes.NewReader(payload))
	var out strings.Builder
	node := root
	for consumed := uint64(0); consumed < bitCount; consumed++ {
		bit, err := br.ReadBool()
		if err != nil {
			return "", fmt.Errorf("huffman: payload read failed: %w", err)
		}
		if bit {
			node = node.one
		} else {
			node = node.zero
		}
		if node == nil {
			return "", fmt.Errorf("huffman: bit sequence matches no code: %w", ErrMalformedPayload)
		}
		if node.terminal {
			out.WriteRune(rune(node.symbol))
			node = root
		}
	}
	if node != root {
		return "", fmt.Errorf("huffman: payload ends mid-code: %w", ErrMalformedPayload)
	}
	return out.String(), nil
}

// trieNode is one node of the decoding trie.  Walking bits from the root,
// a terminal node is a complete code; prefix-freedom means terminals are
// always leaves.
type trieNode struct {
	symbol   Symbol
	terminal bool
	zero     *trieNode
	one      *trieNode
}

func buildTrie(table ReverseTable) (*trieNode, error) {
	root := &trieNode{}
	for code, symbol := range table {
		node := root
		for i := 0; i < len(code); i++ {
			if node.terminal {
				return nil, fmt.Errorf("huffman: code %q has a shorter code as prefix: %w", string(code), ErrMalformedTable)
			}
			next := &node.zero
			if code[i] == '1' {
				next = &node.one
			}
			if *next == nil {
				*next = &trieNode{}
			}
			node = *next
		}
		if node.terminal || node.zero != nil || node.one != nil {
			return nil, fmt.Errorf("huffman: code %q is a prefix of another code: %w", string(code), ErrMalformedTable)
		}
		node.terminal = true
		node.symbol = symbol
	}
	return root, nil
}
