// Package huffman implements a Huffman entropy coder over Unicode text,
// together with a self-describing binary container format.
//
// Encoding counts symbol frequencies, builds the code tree with a weighted
// merge, assigns prefix-free bit strings by a depth-first walk, and writes
// the code table plus the bit-packed payload.  Decoding reconstructs the
// code table from the container and walks the payload bit by bit; the tree
// itself is never serialized.
//
// Container layout (all integers big-endian):
//
//     offset 0    : 4 bytes  magic = "HUFF"
//     offset 4    : 4 bytes  u32 table byte length T
//     offset 8    : T bytes  entries, each:
//                              u8 symbol length
//                              symbol bytes (UTF-8)
//                              u8 code length
//                              code bytes (ASCII '0'/'1')
//     offset 8+T  : 8 bytes  u64 payload bit count
//     offset 16+T : payload bits, MSB first, zero-padded to a byte boundary
//
// The codes in the table are stored as literal '0'/'1' text, a deliberate
// simplicity/size trade-off.  The payload bit count makes the trailing pad
// bits unambiguous on decode.
//
package huffman
