// Package mem implements the byte-addressable memory model of the mmix64
// machine.
//
// Memory is a sparse mapping over the full 64-bit address space: any address
// that has never been written reads as zero without consuming storage.
// Multi-byte accesses are big-endian and naturally aligned; an unaligned
// address is silently rounded down to the boundary of the access width.
//
// Widths follow the architecture's naming: a wyde is two bytes, a tetra four,
// an octa eight. The HIGHTETRA pseudo-width is a four-byte access whose value
// occupies the upper half of a 64-bit word.
package mem
