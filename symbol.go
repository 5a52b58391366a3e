package huffman

// Symbol represents a symbol in the input alphabet: one Unicode scalar
// value from the source text.
type Symbol rune

// FrequencyTable maps each distinct Symbol to its number of occurrences.
type FrequencyTable map[Symbol]uint64

// CountFrequencies scans content and counts occurrences per Symbol.  No
// normalization or case folding is applied.
func CountFrequencies(content string) FrequencyTable {
	table := make(FrequencyTable)
	for _, r := range content {
		table[Symbol(r)]++
	}
	return table
}
