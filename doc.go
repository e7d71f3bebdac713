/*
Package squeeze implements an iterative entropy-guided shortest-path LZ77
parser, the kind of optimizer that sits inside a DEFLATE-compatible
compressor ahead of the Huffman/bitstream stage. Given a byte range inside
a larger input, it produces the LZ77 symbol sequence (literals and
length/distance back-references) that minimizes the estimated bit cost of
encoding that range under a chosen Huffman cost model. It does not itself
emit a DEFLATE bitstream, split blocks, or stream: the input range must be
fully materialized in memory.

# Fixed-tree parse

One DP pass under DEFLATE's fixed Huffman costs, no feedback loop:

	store, err := LZ77OptimalFixed(in, 0, len(in))

# Statistics-driven parse

A greedy seed followed by repeated cost-model re-estimation, with
randomized restarts to escape local minima:

	opts := DefaultOptions()
	opts.NumIterations = 15
	store, stats, err := LZ77Optimal(in, 0, len(in), opts)

The returned store holds the best-by-true-bit-cost result seen across
iterations; stats holds the symbol frequencies that produced it.
*/
package squeeze
