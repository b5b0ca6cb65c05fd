// Package huffman computes Huffman codes for alphabets of weighted symbols.
// Build merges the two lightest nodes until one tree remains, and the
// resulting Tree hands out one Codeword per Symbol.
//
// Codewords are read root to leaf.  A 1 bit means "descend into the left
// subtree", a 0 bit means "descend into the right subtree".  The left child
// of every internal node is the first of the two nodes removed from the
// priority queue when that node was created.
//
// Ties between equal weights are broken by sequence number: leaves are
// numbered in Alphabet insertion order, and merged nodes are numbered after
// all leaves in the order they were created.  The same Alphabet therefore
// always yields the same Tree.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
