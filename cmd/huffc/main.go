// Command huffc compresses text files with a Huffman code and decompresses
// the resulting containers.
//
//     huffc -e -i input.txt -o output.huff
//     huffc -d -i output.huff -o restored.txt
//
// The encode and decode flags are not exclusive: given both, huffc encodes
// and then decodes sequentially against the same paths.  Given neither, it
// does nothing.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/bitforge/huffman"
)

var (
	input  string
	output string
	encode bool
	decode bool
)

func init() {
	flag.StringVar(&input, "input", "", "input file path")
	flag.StringVar(&input, "i", "", "shorthand for -input")
	flag.StringVar(&output, "output", "", "output file path")
	flag.StringVar(&output, "o", "", "shorthand for -output")
	flag.BoolVar(&encode, "encode", false, "compress input into output")
	flag.BoolVar(&encode, "e", false, "shorthand for -encode")
	flag.BoolVar(&decode, "decode", false, "decompress input into output")
	flag.BoolVar(&decode, "d", false, "shorthand for -decode")
}

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("huffc: ")

	if input == "" || output == "" {
		fmt.Fprintln(os.Stderr, "huffc: both -input and -output are required")
		flag.Usage()
		os.Exit(2)
	}

	if encode {
		if err := huffman.EncodeFile(input, output); err != nil {
			log.Fatal(err)
		}
	}

	if decode {
		err := huffman.DecodeFile(input, output)
		switch {
		case errors.Is(err, huffman.ErrBadMagic):
			// Recoverable: the input is not a container, so there
			// is nothing to decode and no output is written.
			log.Print("not a huffman container, nothing to do")
		case err != nil:
			log.Fatal(err)
		}
	}
}
