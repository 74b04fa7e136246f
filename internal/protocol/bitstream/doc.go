// Package bitstream owns the bit-level cursor used by the packet decoder.
//
// Ownership boundary:
// - hex to byte packing
// - MSB-first reads of 1..16 bits across byte boundaries
// - cursor position bookkeeping
package bitstream
