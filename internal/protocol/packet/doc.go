// Package packet owns the BITS packet tree: decoding it from a bit stream,
// evaluating it as an expression and walking it.
//
// Ownership boundary:
// - packet header and content model
// - recursive-descent decode over bitstream.Stream
// - expression evaluation and tree traversal
//
// Wire layout, MSB first:
//
//	VVV TTT                         header: version, type
//	TTT=4: (C NNNN)+                literal groups, C=0 ends the value
//	TTT≠4: 0 LLLLLLLLLLLLLLL ...    children fill L bits
//	TTT≠4: 1 KKKKKKKKKKK ...        exactly K children
package packet
