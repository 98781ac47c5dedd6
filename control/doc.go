// Package control provides the BSV control blocks used to frame decimal
// values on the wire.
//
// BSV control blocks use a prefix coding scheme to indicate the type of the
// current byte (which then further indicates how many bytes the field
// contains). The intention is to minimize signaling overhead and pack as much
// data directly into the control block as possible.
//
// Control Block
//
// This diagram indicates the bits that are fixed (filled in) vs bits that are
// available for encoding data (blanks). Only the first byte is shown.
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type                |
//  |---------------|---------------||---------------------|
//  | 1 |                           || Data                |
//  | 0 . 1 |                       || Data Size           |
//  | 0 . 0 . 1 |                   || Data + 1            |
//  | 0 . 0 . 0 . 1 |               || Data + 2            |
//  | 0 . 0 . 0 . 0 . 1 |           || Data Size Size      |
//  | 0 . 0 . 0 . 0 . 0 . 1 . 1 . 0 || Container Unbounded |
//  | 0 . 0 . 0 . 0 . 0 . 1 . 0 . 0 || Container End       |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty               |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null                |
//  |---------------|---------------||---------------------|
//
// All sizes are indexed starting at 1 to maximize their effective range.
//
// Data blocks allow for 7 bits of data to be encoded directly into the block.
//
// Data Size blocks carry up to 64 bytes: the low 6 bits hold the byte count
// minus one and the data follows.
//
// Data + 1 and Data + 2 blocks are two and three byte sequences. The high
// byte of the data shares the control byte (5 and 4 bits respectively).
//
// Data Size Size blocks have 3 parts:
//
//  1. Number of bytes for the data size
//  2. Number of bytes that contain data
//  3. Data
//
// Container Unbounded blocks open a run of fields closed by a Container End
// block. They nest.
//
// Null blocks indicate that the field has no value. Empty blocks indicate
// an empty value.
//
// The symmetric, bounded and skip control blocks are recognized when
// decoding but not supported; decoding one reports an error.
package control
