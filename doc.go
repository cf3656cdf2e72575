// Package huffpack implements lossless compression of byte streams with
// static (non-adaptive, non-canonical) Huffman codes.
//
// Compression counts byte frequencies, builds a minimum-weight binary tree,
// assigns each byte a prefix-free code by walking the tree, and packs the
// concatenated codes into bytes least-significant-bit first.  Decompression
// needs the CodeTable and the original length that Encode returned; neither is
// stored in the packed bytes.  Package container defines a file format that
// carries both next to the payload.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffpack
