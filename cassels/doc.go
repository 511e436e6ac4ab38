/*
Package cassels searches for sums of n-th roots of unity whose house squared
stays below a cutoff and which are not already explained by Cassels's theorem
on small cyclotomic integers.

A case is an exponent tuple [0, j2, j3, e3, ...] where j2 is a proper divisor
of n, gcd(j3, n) >= j2 and the remaining exponents are non-decreasing, at least
j3 and share a divisor of at least j2 with n. Every such tuple is run through a
cascade of cheap algebraic filters and one numeric house test; the survivors
are the cases left for inspection by hand.

The search is split by (j2, j3). Each pair is an independent worker and all
workers for one j2 finish before the next j2 starts.
*/
package cassels
