// Package section decodes the three fixed-layout header regions of an .ibt
// file: the 112-byte FileHeader, the 32-byte DiskSubHeader, and the
// 144-byte-per-entry VarHeader array that forms the variable dictionary.
//
// Decoding never reads the sample region; that is the responsibility of
// package sample.
package section
