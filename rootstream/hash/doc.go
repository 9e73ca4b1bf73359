// Package hash is a self-contained SHA-256 (FIPS 180-4), the only primitive
// the rootstream generator is built on. It does not call crypto/sha256.
//
// Sum is a pure function and is safe for concurrent use. A digest returned
// by New is not.
package hash
