// Package mach implements the register state of the mmix64 machine.
//
// A Machine holds 256 general-purpose 64-bit registers ($0-$255), 32 named
// 64-bit special-purpose registers (rA-rZZ), a program counter, and its
// byte-addressable memory. The machine is a substrate only: it executes no
// instructions, and an embedding caller owns its lifetime and serializes
// access to it.
package mach
