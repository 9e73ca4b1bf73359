package stream

import (
	"encoding/binary"
	"iter"

	"github.com/TheusHen/rootstream/rootstream/hash"
)

const (
	// BlockSize is the length of one output block in bytes.
	BlockSize = 16

	// poolBits is the number of sifted bits gathered per block.
	poolBits = 2 * BlockSize * 8
)

// Block is one unit of generator output.
type Block [BlockSize]byte

// Engine is a hash-chained generator. The zero value is not usable; build
// one with New or NewDefault.
type Engine struct {
	state   [hash.Size]byte
	counter uint32
}

// New seeds an Engine with hash(seed). Any length is accepted; 32 bytes is
// the convention.
func New(seed []byte) *Engine {
	return &Engine{state: hash.Sum(seed)}
}

// NewDefault seeds an Engine with DefaultSeed.
func NewDefault() *Engine {
	return New(DefaultSeed[:])
}

// Counter returns the number of hash rounds consumed so far, which is also
// the counter value the next round will hash.
func (e *Engine) Counter() uint32 {
	return e.counter
}

// Next returns the next block and advances the engine.
//
// A round only contributes bits for digest bytes that pass the sifting
// test, so the number of rounds per block varies. There is no cap: a long
// enough run of unlucky digests would keep Next hashing. In practice half
// the bytes of a digest pass, about 16 bits per round.
func (e *Engine) Next() Block {
	var bits [poolBits]byte
	e.collect(&bits)
	return fold(&bits)
}

// All returns an endless sequence of blocks drawn from e. It is not
// restartable: every pull advances the engine, and ranging over All a
// second time continues where the first loop stopped.
func (e *Engine) All() iter.Seq[Block] {
	return func(yield func(Block) bool) {
		for {
			if !yield(e.Next()) {
				return
			}
		}
	}
}

// collect fills bits by chaining state = hash(state || BE32(counter)) and
// keeping bit 0 of every digest byte whose bits 1 and 2 are equal.
func (e *Engine) collect(bits *[poolBits]byte) {
	var input [hash.Size + 4]byte
	n := 0
	for n < poolBits {
		copy(input[:hash.Size], e.state[:])
		binary.BigEndian.PutUint32(input[hash.Size:], e.counter)

		e.state = hash.Sum(input[:])
		e.counter++

		for _, b := range e.state {
			if (b>>1)&1 != (b>>2)&1 {
				continue
			}
			bits[n] = b & 1
			n++
			if n == poolBits {
				break
			}
		}
	}
}

// fold XORs the two halves of bits and packs the result MSB first.
func fold(bits *[poolBits]byte) Block {
	var out Block
	const half = poolBits / 2
	for i := 0; i < half; i++ {
		out[i/8] |= (bits[i] ^ bits[i+half]) << (7 - i%8)
	}
	return out
}
