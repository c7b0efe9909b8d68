// Package radix detects the radix of integer literals and renders signed
// 64-bit values in decimal, hexadecimal, binary or any base from 2 to 36.
//
// Everything in this package is a pure function of its arguments. There is no
// I/O and no shared state, so conversions can run concurrently without any
// coordination. Printing the rendered lines is left to the caller.
package radix
