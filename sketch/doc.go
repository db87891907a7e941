/*
Package sketch provides the O(1)-memory streaming accumulators that back a
single column's statistical profile: higher-order moments, a deterministic
reservoir sample for quantiles and histograms, a capped categorical
frequency table, and an approximate distinct-count sketch.

Moment-Based Statistics

Single variable moments up to fourth order are computed with the methods of:

"Formulas for Robust, One-Pass Parallel Computation of Covariances and Arbitrary-Order Statistical Moments."
Philippe P. Pébay,
Technical Report SAND2008-6212, Sandia National Laboratories, September 2008.

which extend the results of:

"Note on a method for calculating corrected sums of squares and products".
B. P. Welford (1962).
Technometrics 4(3):419-420

Quantiles and Histograms

Quantiles and histograms are derived at finalize time from a fixed-size
reservoir sample, replaced with a deterministic linear-congruential
replacement rule rather than crypto/math-rand so that results are
reproducible across hosts given the same ingest order. A secondary,
O(1)-memory quantile estimate based on the P2 algorithm is retained for
mid-stream previews:

"The P2 algorithm for dynamic calculation of quantiles and histograms without storing observations."
Raj Jain and Imrich Chlamtac,
Communications of the ACM, Volume 28 Issue 10, October 1985, Pages 1076-1085

Count Distinct

Count distinct is provided by a HyperLogLog implementation based on:

"Hyperloglog: The analysis of a near-optimal cardinality estimation algorithm"
Philippe Flajolet and Éric Fusy and Olivier Gandouet and et al.
in AOFA '07: PROCEEDINGS OF THE 2007 INTERNATIONAL CONFERENCE ON ANALYSIS OF ALGORITHMS

using xxhash in place of the 64-bit FNV hash so that large inputs hash
faster without changing the bias-corrected estimator.

Set Membership

Approximate set membership for the duplicate-row pre-check is provided by a
BloomFilter based on:

"Space/time trade-offs in hash coding with allowable errors"
Burton H. Bloom
Communications of the ACM, Volume 13 Issue 7, July 1970, Pages 422-426

the k hash functions are derived from the top and bottom 32-bits of a single
64-bit hash using h[i] = h1 + i*h2 mod m, per:

"Less hashing, same performance: Building a better Bloom filter"
Adam Kirsch, Michael Mitzenmacher
Random Structures & Algorithms, Volume 33 Issue 2, September 2008, Pages 187-218
*/
package sketch
