package idprovider_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/operator-framework/decitree/pkg/decitree"
	"github.com/operator-framework/decitree/pkg/decitree/search/idprovider"
)

func TestCounter_Monotonic(t *testing.T) {
	c := idprovider.NewCounter()
	assert.Equal(t, decitree.NodeID("1"), c.NextNodeID())
	assert.Equal(t, decitree.NodeID("2"), c.NextNodeID())
	assert.Equal(t, decitree.NodeID("3"), c.NextNodeID())
}

func TestCounter_Independent(t *testing.T) {
	a := idprovider.NewCounter()
	b := idprovider.NewCounter()
	a.NextNodeID()
	a.NextNodeID()
	assert.Equal(t, decitree.NodeID("1"), b.NextNodeID())
	assert.Equal(t, decitree.NodeID("3"), a.NextNodeID())
}

func TestCounter_ConcurrentCallsAreDistinct(t *testing.T) {
	const workers, perWorker = 8, 250
	c := idprovider.NewCounter()

	var mu sync.Mutex
	seen := map[decitree.NodeID]struct{}{}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := c.NextNodeID()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, workers*perWorker)
}

func TestUUIDProvider_Distinct(t *testing.T) {
	p := idprovider.NewUUIDProvider()
	seen := map[decitree.NodeID]struct{}{}
	for i := 0; i < 100; i++ {
		id := p.NextNodeID()
		_, err := uuid.Parse(id.String())
		require.NoError(t, err)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 100)
}

func TestUUIDProvider_Custom(t *testing.T) {
	fixed := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	p := idprovider.NewCustomUUIDProvider(func() (uuid.UUID, error) { return fixed, nil })
	assert.Equal(t, decitree.NodeID(fixed.String()), p.NextNodeID())
}

func TestUUIDProvider_FallbackStaysDistinct(t *testing.T) {
	p := idprovider.NewCustomUUIDProvider(func() (uuid.UUID, error) {
		return uuid.Nil, errors.New("no entropy")
	})
	first := p.NextNodeID()
	second := p.NextNodeID()
	assert.NotEqual(t, first, second)
	assert.Contains(t, first.String(), "no entropy")
}
