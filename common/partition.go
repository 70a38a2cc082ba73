// Block partitioner: maps an encoded key to a block id.
package common

import (
	"bytes"
	"sort"

	"github.com/dgryski/go-farm"
)

type Partitioner interface {
	// BlockId never fails for a well-formed key.
	BlockId(encodedKey []byte) BlockId
	NumBlocks() int
}

type hashPartitioner struct {
	numBlocks int
}

// NewHashPartitioner partitions keys by farm fingerprint modulo block count.
func NewHashPartitioner(numBlocks int) Partitioner {
	if numBlocks <= 0 {
		panic("partitioner needs a positive block count")
	}
	return hashPartitioner{numBlocks: numBlocks}
}

func (p hashPartitioner) BlockId(encodedKey []byte) BlockId {
	return BlockId(farm.Fingerprint64(encodedKey) % uint64(p.numBlocks))
}

func (p hashPartitioner) NumBlocks() int {
	return p.numBlocks
}

type orderedPartitioner struct {
	// sorted split points; len(boundaries) + 1 == numBlocks.
	// keys < boundaries[i] and >= boundaries[i-1] fall into block i.
	boundaries [][]byte
}

// NewOrderedPartitioner partitions an ordered key space by binary search
// over the boundary array fixed at table creation.
func NewOrderedPartitioner(boundaries [][]byte) Partitioner {
	for i := 1; i < len(boundaries); i++ {
		if bytes.Compare(boundaries[i-1], boundaries[i]) >= 0 {
			panic("ordered partitioner boundaries must be strictly increasing")
		}
	}
	return orderedPartitioner{boundaries: boundaries}
}

func (p orderedPartitioner) BlockId(encodedKey []byte) BlockId {
	idx := sort.Search(len(p.boundaries), func(i int) bool {
		return bytes.Compare(encodedKey, p.boundaries[i]) < 0
	})
	return BlockId(idx)
}

func (p orderedPartitioner) NumBlocks() int {
	return len(p.boundaries) + 1
}
