package store

import (
	"testing"

	"marketplace-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByTrackingCode(t *testing.T) {
	s := NewDeliveryStore()

	delivery, err := s.ByTrackingCode("KZ-998877")
	require.NoError(t, err)
	assert.Equal(t, "iPhone 15 Pro Max", delivery.ProductName)
	assert.Equal(t, models.DeliveryStatusInTransit, delivery.Status)

	// Case-insensitive, tolerant of surrounding whitespace.
	_, err = s.ByTrackingCode(" kz-998877 ")
	assert.NoError(t, err)

	_, err = s.ByTrackingCode("KZ-000000")
	assert.ErrorIs(t, err, ErrDeliveryNotFound)
}

func TestByStatus(t *testing.T) {
	s := NewDeliveryStore()

	delivered := s.ByStatus(models.DeliveryStatusDelivered)
	require.Len(t, delivered, 1)
	assert.Equal(t, "KZ-112233", delivered[0].TrackingCode)

	assert.Empty(t, s.ByStatus(models.DeliveryStatusFailed))
}

func TestRegisterOrderMakesOrderTrackable(t *testing.T) {
	s := NewDeliveryStore()

	order := models.Order{
		ID:           "o1",
		TrackingCode: "KZ-123456",
		Shipping: models.ShippingInfo{
			FullName: "Maria Santos",
			Phone:    "+244 934 111 222",
			Address:  "Rua Rainha Ginga, Edifício 23",
		},
		Lines: []models.CartLine{
			{ProductName: "Smart TV Samsung 65\" 4K", Quantity: 1},
			{ProductName: "Relógio Inteligente Pro", Quantity: 1},
		},
	}

	created := s.RegisterOrder(&order)
	assert.Equal(t, models.DeliveryStatusPending, created.Status)
	require.Len(t, created.History, 1)
	assert.Equal(t, "Pedido Recebido", created.History[0].Status)

	found, err := s.ByTrackingCode("KZ-123456")
	require.NoError(t, err)
	assert.Equal(t, "Maria Santos", found.ClientName)
	assert.Contains(t, found.ProductName, "Smart TV")
	assert.Contains(t, found.ProductName, "Relógio")
}

func TestOrderStore(t *testing.T) {
	s := NewOrderStore()

	_, err := s.ByID("missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)

	s.Add(models.Order{ID: "o1", Total: 652000})
	s.Add(models.Order{ID: "o2", Total: 100000})

	order, err := s.ByID("o1")
	require.NoError(t, err)
	assert.Equal(t, int64(652000), order.Total)

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "o2", all[0].ID)
}

func TestContractStore(t *testing.T) {
	s := NewContractStore()

	active := s.ByStatus(models.ContractStatusActive)
	require.Len(t, active, 1)
	assert.Equal(t, "Tech Angola", active[0].SellerName)

	assert.Empty(t, s.ByStatus(models.ContractStatusFinished))
}
