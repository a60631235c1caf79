// Package checksum implements the deliberately weak digest that the collision
// engines search against: the sum of a string's code points reduced modulo a
// small fixed modulus.
//
// What
//
//   - Sum(s) returns Σ code points of s, mod Modulus (1024).
//   - Mod(m) returns the same checksum (a Modular) for another modulus m > 0.
//   - Modular.Extend(d, r) digests s+string(r) from d = Sum(s) in O(1).
//   - The empty string always digests to 0.
//
// Why
//
//	The digest space has only Modulus values and is order-insensitive, so
//	collisions are trivially common: "ab" and "ba" collide, and so does any
//	pair of strings whose code points add up to the same residue. That makes
//	it a convenient playground for exhaustive preimage search.
//
// Code points
//
//	Strings are iterated with range, so each rune contributes its Unicode code
//	point. Invalid UTF-8 bytes contribute utf8.RuneError (U+FFFD), exactly as
//	range reports them.
//
// Complexity
//
//   - Time:   O(n) runes.
//   - Memory: O(1); the accumulator is reduced on every rune and never overflows.
package checksum
