// Package huffcode implements static Huffman compression for 7-bit
// character data.
//
// A compressed stream consists of a 512-byte header, holding the frequency
// of each of the 128 symbols as a big-endian uint32, followed by the
// concatenated Huffman codes of the source symbols, packed most significant
// bit first.  The final byte is zero-padded.  There is no end marker: the
// decoder stops after emitting as many symbols as the header frequencies
// add up to.
//
// Encoder and decoder never exchange the code itself.  Both sides rebuild
// the same tree from the header using Build, whose merge order is a pure
// function of the frequency table.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffcode
