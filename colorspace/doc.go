// Package colorspace holds the 8-bit RGB value type shared by every stage of
// the quantization pipeline, together with the two numeric primitives the
// stages are built on:
//
//   - Distance(a, b): Euclidean distance between two colors treated as
//     points in 3-D space: sqrt(Δr² + Δg² + Δb²). It is the edge weight of
//     the implicit complete color graph.
//   - Mean(colors): component-wise integer mean (truncating) of a
//     non-empty collection. It is the representative of a cluster.
//
// Colors are plain comparable structs. Pack/Unpack map a Color to and from
// its 24-bit key (R<<16 | G<<8 | B), which the extraction bitset and the
// palette lookup are indexed by.
//
// No perceptual color space is involved anywhere: all arithmetic is done in
// RGB. The go-colorful bridge (Colorful, Hex) exists only for reporting.
//
// Errors:
//
//   - ErrEmptyCluster: Mean was called with zero colors.
package colorspace
