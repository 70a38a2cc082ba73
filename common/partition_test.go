package common_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zyq11223/harmony/common"
)

func TestHashPartitioner(t *testing.T) {
	ast := assert.New(t)
	p := common.NewHashPartitioner(4)
	ast.Equal(4, p.NumBlocks())
	for i := 0; i < 1000; i++ {
		key := []byte(fmt.Sprintf("key-%d", i))
		id := p.BlockId(key)
		ast.True(id >= 0 && int(id) < 4)
		// same key, same block
		ast.Equal(id, p.BlockId(key))
	}
}

func TestHashPartitionerSpread(t *testing.T) {
	// not a uniformity proof, just a sanity check that keys do not all
	// collapse into one block
	p := common.NewHashPartitioner(8)
	hit := make(map[common.BlockId]int)
	for i := 0; i < 1000; i++ {
		hit[p.BlockId([]byte(fmt.Sprintf("key-%d", i)))]++
	}
	assert.Greater(t, len(hit), 1)
}

func TestOrderedPartitioner(t *testing.T) {
	ast := assert.New(t)
	p := common.NewOrderedPartitioner([][]byte{[]byte("g"), []byte("p")})
	ast.Equal(3, p.NumBlocks())

	ast.Equal(common.BlockId(0), p.BlockId([]byte("a")))
	ast.Equal(common.BlockId(0), p.BlockId([]byte("fzz")))
	// a boundary is the lower bound of its block
	ast.Equal(common.BlockId(1), p.BlockId([]byte("g")))
	ast.Equal(common.BlockId(1), p.BlockId([]byte("onion")))
	ast.Equal(common.BlockId(2), p.BlockId([]byte("p")))
	ast.Equal(common.BlockId(2), p.BlockId([]byte("zzz")))
}

func TestOrderedPartitionerSingleBlock(t *testing.T) {
	p := common.NewOrderedPartitioner(nil)
	assert.Equal(t, 1, p.NumBlocks())
	assert.Equal(t, common.BlockId(0), p.BlockId([]byte("anything")))
}

func TestOrderedPartitionerRejectsUnsortedBoundaries(t *testing.T) {
	assert.Panics(t, func() {
		common.NewOrderedPartitioner([][]byte{[]byte("p"), []byte("g")})
	})
	assert.Panics(t, func() {
		common.NewOrderedPartitioner([][]byte{[]byte("g"), []byte("g")})
	})
}

func TestHashPartitionerRejectsZeroBlocks(t *testing.T) {
	assert.Panics(t, func() {
		common.NewHashPartitioner(0)
	})
}
