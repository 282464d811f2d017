package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/DRSN-tech/frag-avenue/internal/domain"
	"github.com/DRSN-tech/frag-avenue/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderPlacedPayload(t *testing.T) {
	dhaka := time.FixedZone("BST", 6*60*60)
	placed := time.Date(2026, 3, 14, 18, 0, 0, 0, dhaka)

	order := domain.NewOrder("FRV-1A2B3C4D", placed, []domain.OrderItem{
		{ProductID: "p1", Name: "Baccarat Rouge 540", Brand: "MFK", Size: domain.Size50ml, Quantity: 2, UnitPrice: 45500},
	}, domain.Delivery{FullName: "Jane Doe", Phone: "+8801700000000", Address: "Road 5", City: "Dhaka"})
	event := usecase.NewOrderPlacedEvent("evt-1", placed, "s1", *order)

	data, err := OrderPlacedPayload(event)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, "evt-1", got["eventId"])
	assert.Equal(t, usecase.OrderPlacedEventType, got["eventType"])
	assert.Equal(t, "2026-03-14T12:00:00Z", got["occurredAt"])

	o := got["order"].(map[string]any)
	assert.Equal(t, "FRV-1A2B3C4D", o["id"])
	assert.Equal(t, float64(91000), o["total"])
	assert.Equal(t, "BDT", o["currency"])
	assert.Equal(t, "In Atelier", o["status"])
	assert.Equal(t, "Dhaka", o["city"])

	items := o["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "p1", item["productId"])
	assert.Equal(t, "50ml", item["size"])

	assert.NotContains(t, string(data), "+8801700000000")
	assert.NotContains(t, string(data), "Jane Doe")
}
