// internal/domain/wishlist/service_test.go
package wishlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/urbanwear-backend/internal/domain/cart"
	"github.com/your-org/urbanwear-backend/internal/domain/catalog"
	"github.com/your-org/urbanwear-backend/internal/domain/pricing"
)

// memoryStore keeps wishlist ids in a map, standing in for Redis.
type memoryStore struct {
	lists map[string][]uint
}

func newMemoryStore() *memoryStore {
	return &memoryStore{lists: make(map[string][]uint)}
}

func (m *memoryStore) Load(ctx context.Context, sessionID string) ([]uint, error) {
	return append([]uint(nil), m.lists[sessionID]...), nil
}

func (m *memoryStore) Save(ctx context.Context, sessionID string, ids []uint) error {
	m.lists[sessionID] = append([]uint(nil), ids...)
	return nil
}

func (m *memoryStore) Clear(ctx context.Context, sessionID string) error {
	delete(m.lists, sessionID)
	return nil
}

// memoryCartStore mirrors the cart store contract for the move test.
type memoryCartStore struct {
	states map[string]*cart.State
}

func (m *memoryCartStore) Load(ctx context.Context, sessionID string) (*cart.State, error) {
	if state, ok := m.states[sessionID]; ok {
		clone := *state
		clone.Rows = append([]pricing.CartRow(nil), state.Rows...)
		return &clone, nil
	}
	return &cart.State{Rows: []pricing.CartRow{}}, nil
}

func (m *memoryCartStore) Save(ctx context.Context, sessionID string, state *cart.State) error {
	clone := *state
	clone.Rows = append([]pricing.CartRow(nil), state.Rows...)
	m.states[sessionID] = &clone
	return nil
}

func (m *memoryCartStore) Clear(ctx context.Context, sessionID string) error {
	delete(m.states, sessionID)
	return nil
}

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Product{
		{ID: 1, Name: "Signature Oversized Tee", Price: 1199, Category: "T-Shirts", Sizes: []string{"S", "M", "L"}},
		{ID: 10, Name: "Ribbed Tank Top", Price: 899, Category: "T-Shirts", Sizes: []string{"S", "M"}},
	})
}

func newTestService() (*Service, *cart.Service) {
	cat := testCatalog()
	carts := cart.NewService(&memoryCartStore{states: make(map[string]*cart.State)}, cat, pricing.NewEngine(pricing.DefaultRules()))
	return NewService(newMemoryStore(), cat, carts), carts
}

func TestToggleAddsAndRemoves(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	added, err := svc.Toggle(ctx, "s1", 1)
	require.NoError(t, err)
	assert.True(t, added)

	resp, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, uint(1), resp.Items[0].ID)

	added, err = svc.Toggle(ctx, "s1", 1)
	require.NoError(t, err)
	assert.False(t, added)

	resp, err = svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestToggleUnknownProduct(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Toggle(context.Background(), "s1", 999)

	assert.ErrorIs(t, err, ErrUnknownProduct)
}

func TestGetPreservesToggleOrder(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "s1", 10)
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "s1", 1)
	require.NoError(t, err)

	resp, err := svc.Get(ctx, "s1")
	require.NoError(t, err)

	require.Len(t, resp.Items, 2)
	assert.Equal(t, uint(10), resp.Items[0].ID)
	assert.Equal(t, uint(1), resp.Items[1].ID)
}

func TestRemoveMissingProductIsNoOp(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "s1", 1)
	require.NoError(t, err)
	require.NoError(t, svc.Remove(ctx, "s1", 10))

	resp, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)
}

func TestMoveToCartDefaultsFirstSize(t *testing.T) {
	svc, carts := newTestService()
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "s1", 1)
	require.NoError(t, err)

	cartResp, err := svc.MoveToCart(ctx, "s1", 1, "")
	require.NoError(t, err)

	require.Len(t, cartResp.Items, 1)
	assert.Equal(t, "S", cartResp.Items[0].Size)
	assert.Equal(t, 1, cartResp.Items[0].Qty)

	// The product left the wishlist.
	wlResp, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, wlResp.Items)

	// And is really in the cart.
	stored, err := carts.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, stored.Items, 1)
}

func TestMoveToCartExplicitSize(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "s1", 1)
	require.NoError(t, err)

	cartResp, err := svc.MoveToCart(ctx, "s1", 1, "L")
	require.NoError(t, err)

	require.Len(t, cartResp.Items, 1)
	assert.Equal(t, "L", cartResp.Items[0].Size)
}

func TestClear(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "s1", 1)
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, "s1"))

	resp, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}
