// internal/domain/cart/service_test.go
package cart

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/urbanwear-backend/internal/domain/catalog"
	"github.com/your-org/urbanwear-backend/internal/domain/pricing"
)

// memoryStore keeps cart state in a map, standing in for Redis.
type memoryStore struct {
	states map[string]*State
}

func newMemoryStore() *memoryStore {
	return &memoryStore{states: make(map[string]*State)}
}

func (m *memoryStore) Load(ctx context.Context, sessionID string) (*State, error) {
	if state, ok := m.states[sessionID]; ok {
		clone := *state
		clone.Rows = append([]pricing.CartRow(nil), state.Rows...)
		return &clone, nil
	}
	return &State{Rows: []pricing.CartRow{}}, nil
}

func (m *memoryStore) Save(ctx context.Context, sessionID string, state *State) error {
	state.UpdatedAt = time.Now().UTC()
	clone := *state
	clone.Rows = append([]pricing.CartRow(nil), state.Rows...)
	m.states[sessionID] = &clone
	return nil
}

func (m *memoryStore) Clear(ctx context.Context, sessionID string) error {
	delete(m.states, sessionID)
	return nil
}

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Product{
		{ID: 1, Name: "Signature Oversized Tee", Price: 1199, Category: "T-Shirts", Sizes: []string{"S", "M", "L"}},
		{ID: 10, Name: "Ribbed Tank Top", Price: 899, Category: "T-Shirts", Sizes: []string{"S", "M"}},
	})
}

func newTestService() (*Service, *memoryStore) {
	store := newMemoryStore()
	return NewService(store, testCatalog(), pricing.NewEngine(pricing.DefaultRules())), store
}

func TestGetEmptyCart(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Get(context.Background(), "s1")

	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0, resp.TotalQty)
	assert.Equal(t, int64(0), resp.Totals.Total)
}

func TestAddMergesSameProductAndSize(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", &AddItemRequest{ProductID: 1, Size: "M", Qty: 1})
	require.NoError(t, err)

	resp, err := svc.Add(ctx, "s1", &AddItemRequest{ProductID: 1, Size: "M", Qty: 2})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Qty)
	assert.Equal(t, int64(3597), resp.Items[0].LineTotal)
}

func TestAddDifferentSizesStaySeparate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", &AddItemRequest{ProductID: 1, Size: "M", Qty: 1})
	require.NoError(t, err)

	resp, err := svc.Add(ctx, "s1", &AddItemRequest{ProductID: 1, Size: "L", Qty: 1})
	require.NoError(t, err)

	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 2, resp.TotalQty)
}

func TestAddUnknownProduct(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Add(context.Background(), "s1", &AddItemRequest{ProductID: 999, Size: "M", Qty: 1})

	assert.ErrorIs(t, err, ErrUnknownProduct)
}

func TestAddClampsQuantity(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Add(context.Background(), "s1", &AddItemRequest{ProductID: 1, Size: "M", Qty: -3})

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Items[0].Qty)
}

func TestUpdateQuantity(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", &AddItemRequest{ProductID: 1, Size: "M", Qty: 1})
	require.NoError(t, err)

	resp, err := svc.UpdateQuantity(ctx, "s1", &UpdateItemRequest{ProductID: 1, Size: "M", Qty: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Items[0].Qty)

	// Below 1 clamps instead of removing.
	resp, err = svc.UpdateQuantity(ctx, "s1", &UpdateItemRequest{ProductID: 1, Size: "M", Qty: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Items[0].Qty)
}

func TestUpdateQuantityMissingRow(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateQuantity(context.Background(), "s1", &UpdateItemRequest{ProductID: 1, Size: "M", Qty: 2})

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveTargetsOneRow(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", &AddItemRequest{ProductID: 1, Size: "M", Qty: 1})
	require.NoError(t, err)
	_, err = svc.Add(ctx, "s1", &AddItemRequest{ProductID: 1, Size: "L", Qty: 1})
	require.NoError(t, err)

	resp, err := svc.Remove(ctx, "s1", 1, "M")
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, "L", resp.Items[0].Size)
}

func TestApplyCouponPersistsAcrossReads(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", &AddItemRequest{ProductID: 1, Size: "M", Qty: 1})
	require.NoError(t, err)

	resp, err := svc.ApplyCoupon(ctx, "s1", "urban10")
	require.NoError(t, err)
	assert.Equal(t, "URBAN10", resp.CouponCode)
	assert.Equal(t, int64(120), resp.Totals.Discount.Amount)

	// A later read reprices with the stored coupon.
	resp, err = svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "URBAN10", resp.CouponCode)
	assert.Equal(t, int64(120), resp.Totals.Discount.Amount)
}

func TestApplyInvalidCouponClearsPrevious(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", &AddItemRequest{ProductID: 1, Size: "M", Qty: 1})
	require.NoError(t, err)
	_, err = svc.ApplyCoupon(ctx, "s1", "URBAN10")
	require.NoError(t, err)

	resp, err := svc.ApplyCoupon(ctx, "s1", "XYZ")

	assert.ErrorIs(t, err, ErrInvalidCoupon)
	require.NotNil(t, resp)
	assert.Equal(t, "", resp.CouponCode)
	assert.Equal(t, int64(0), resp.Totals.Discount.Amount)

	resp, err = svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "", resp.CouponCode)
}

func TestRemoveCouponKeepsItems(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", &AddItemRequest{ProductID: 1, Size: "M", Qty: 2})
	require.NoError(t, err)
	_, err = svc.ApplyCoupon(ctx, "s1", "WELCOME100")
	require.NoError(t, err)

	resp, err := svc.RemoveCoupon(ctx, "s1")

	require.NoError(t, err)
	assert.Equal(t, "", resp.CouponCode)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, int64(0), resp.Totals.Discount.Amount)
}

func TestGetHealsCorruptedState(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	// State written behind the service's back: stale ids, duplicates,
	// broken quantities.
	store.states["s1"] = &State{Rows: []pricing.CartRow{
		{ProductID: 999, Size: "M", Qty: 1},
		{ProductID: 1, Size: "M", Qty: 0},
		{ProductID: 1, Size: "M", Qty: 2},
	}}

	resp, err := svc.Get(ctx, "s1")

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Qty)

	// The repaired rows were written back.
	assert.Equal(t, []pricing.CartRow{{ProductID: 1, Size: "M", Qty: 3}}, store.states["s1"].Rows)
}

func TestClearRemovesEverything(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", &AddItemRequest{ProductID: 1, Size: "M", Qty: 1})
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, "s1"))

	resp, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestSessionsAreIsolated(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", &AddItemRequest{ProductID: 1, Size: "M", Qty: 1})
	require.NoError(t, err)

	resp, err := svc.Get(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}
