package schedule

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexAllocatesDenselyInFirstSeenOrder(t *testing.T) {
	indexer := NewIndexer()

	assert.Equal(t, uint64(1), indexer.Index(0, 0, 0, 1))
	assert.Equal(t, uint64(2), indexer.Index(0, 0, 1, 0))
	assert.Equal(t, uint64(3), indexer.Index(2, 1, 3, 2))
	assert.Equal(t, uint64(3), indexer.Len())
}

func TestIndexIsStableForRepeatedRequests(t *testing.T) {
	indexer := NewIndexer()

	first := indexer.Index(1, 0, 2, 3)
	for range 5 {
		assert.Equal(t, first, indexer.Index(1, 0, 2, 3))
	}
	assert.Equal(t, uint64(1), indexer.Len())
}

func TestIndexAndAttributesRoundTrip(t *testing.T) {
	for range 10 {
		indexer := NewIndexer()

		indices := make([]uint64, 0, 200)
		for range 200 {
			week := uint64(rand.Intn(7))
			period := uint64(rand.Intn(4))
			host := uint64(rand.Intn(8))
			guest := uint64(rand.Intn(8))
			indices = append(indices, indexer.Index(week, period, host, guest))
		}

		for _, index := range indices {
			week, period, host, guest, ok := indexer.Attributes(index)
			assert.True(t, ok)
			assert.Equal(t, index, indexer.Index(week, period, host, guest))
		}
	}
}

func TestAttributesRejectsUnknownIndices(t *testing.T) {
	indexer := NewIndexer()
	indexer.Index(0, 0, 0, 1)

	for _, index := range []uint64{0, 2, 100, 1 << 40} {
		_, _, _, _, ok := indexer.Attributes(index)
		assert.False(t, ok)
	}
}
