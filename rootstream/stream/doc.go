// Package stream turns a seed into an endless, reproducible sequence of
// 16-byte blocks.
//
// Each block is produced by hashing the running state together with a
// round counter, sifting one bit out of every digest byte whose bits 1 and
// 2 agree, and XOR-folding the 256 sifted bits down to 128. Two Engines
// built from the same seed yield the same blocks forever, on any platform
// and in any language that follows the same steps.
//
// NOT FOR CRYPTOGRAPHIC USE. The output is statistically well behaved but
// is trivially predictable by anyone who knows the seed, and no attempt is
// made to resist state recovery.
//
// An Engine is owned by one goroutine. Use one Engine per goroutine, Split
// a root seed into independent substreams, or wrap a shared Engine in
// Locked.
package stream
