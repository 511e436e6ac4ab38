/*
Package cyclotomic evaluates sums of n-th roots of unity with coefficient one.

A sum is represented by its list of exponents and evaluated numerically through
a precomputed AngleTable. The quantity of interest is the house, the largest
absolute value of any Galois conjugate. Everything is done in float64; the
values agree with the published tables to well within 1e-6.
*/
package cyclotomic
