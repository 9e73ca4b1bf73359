package stream

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"golang.org/x/crypto/hkdf"

	"github.com/TheusHen/rootstream/rootstream/hash"
)

// ErrInvalidSeed is returned by ParseSeed for malformed hex or a wrong length.
var ErrInvalidSeed = errors.New("stream: invalid seed")

// SeedSize is the conventional seed length in bytes.
const SeedSize = 32

// Eta is 1/√2, the constant the default seed is built from.
const Eta = 0.7071067811865476

// Seed is a conventional 32-byte seed.
type Seed [SeedSize]byte

// DefaultSeed is SeedFrom(Eta). It is the seed the reference vectors are
// published for.
var DefaultSeed = SeedFrom(Eta)

// SeedFrom builds a seed from a float constant: its IEEE-754 bits in
// little-endian order, repeated four times.
func SeedFrom(value float64) Seed {
	var s Seed
	var word [8]byte
	binary.LittleEndian.PutUint64(word[:], math.Float64bits(value))
	for i := 0; i < SeedSize; i += len(word) {
		copy(s[i:], word[:])
	}
	return s
}

// ParseSeed decodes a 64-character hex seed.
func ParseSeed(s string) (Seed, error) {
	var seed Seed
	raw, err := hex.DecodeString(s)
	if err != nil {
		return seed, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	if len(raw) != SeedSize {
		return seed, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidSeed, len(raw), SeedSize)
	}
	copy(seed[:], raw)
	return seed, nil
}

// FormatSeed returns s as lowercase hex.
func FormatSeed(s Seed) string {
	return hex.EncodeToString(s[:])
}

// String implements fmt.Stringer.
func (s Seed) String() string { return FormatSeed(s) }

const deriveInfo = "rootstream-substream"

// DeriveSeed derives a labelled child seed from root with HKDF over the
// package's own SHA-256. Distinct labels give unrelated seeds.
func DeriveSeed(root []byte, label string) (Seed, error) {
	info := make([]byte, 0, len(deriveInfo)+len(label))
	info = append(info, deriveInfo...)
	info = append(info, label...)

	var s Seed
	kdf := hkdf.New(hash.New, root, nil, info)
	if _, err := io.ReadFull(kdf, s[:]); err != nil {
		return Seed{}, err
	}
	return s, nil
}

// Split returns n independent engines whose seeds are DeriveSeed(root, "0"),
// DeriveSeed(root, "1"), and so on.
func Split(root []byte, n int) ([]*Engine, error) {
	if n < 0 {
		n = 0
	}
	engines := make([]*Engine, 0, n)
	for i := 0; i < n; i++ {
		s, err := DeriveSeed(root, strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		engines = append(engines, New(s[:]))
	}
	return engines, nil
}
