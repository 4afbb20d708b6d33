// Package pad extends a one-dimensional signal at both boundaries.
//
// Padding synthesizes samples beyond the ends of a signal so that a filter of
// length 2*width+1 produces one output per input sample. The supported modes
// follow the usual signal-processing definitions:
//
//	Edge       a a a | a b c d | d d d
//	Constant   k k k | a b c d | k k k
//	Reflect    d c b | a b c d | c b a
//	Symmetric  c b a | a b c d | d c b
//	Wrap       b c d | a b c d | a b c
//
// Widths larger than the signal are handled by repeating the reflection or
// period, so any non-negative width is valid for a non-empty signal.
package pad
