package idprovider

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/operator-framework/decitree/pkg/decitree"
)

var _ decitree.IDProvider = &UUIDProvider{}

type UUIDProviderFn func() (uuid.UUID, error)

// UUIDProvider issues random node ids. When the uuid source fails, the
// provider falls back to a sequence number so ids stay distinct.
type UUIDProvider struct {
	nextUUIDFn UUIDProviderFn
	fallback   int64
}

func NewUUIDProvider() *UUIDProvider {
	return &UUIDProvider{
		nextUUIDFn: func() (uuid.UUID, error) { return uuid.NewRandom() },
	}
}

func NewCustomUUIDProvider(nextUUIDFn UUIDProviderFn) *UUIDProvider {
	return &UUIDProvider{
		nextUUIDFn: nextUUIDFn,
	}
}

func (p *UUIDProvider) NextNodeID() decitree.NodeID {
	id, err := p.nextUUIDFn()
	if err != nil {
		n := atomic.AddInt64(&p.fallback, 1)
		return decitree.NodeID(fmt.Sprintf("fallback-%d (with error: %s)", n, err))
	}
	return decitree.NodeID(id.String())
}
