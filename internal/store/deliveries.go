package store

import (
	"strings"
	"sync"
	"time"

	"marketplace-service/internal/models"
	"marketplace-service/internal/util"

	"github.com/google/uuid"
)

// DeliveryStore keeps the trackable shipments: a seeded mock list plus one
// delivery per settled checkout.
type DeliveryStore struct {
	mu         sync.RWMutex
	deliveries []models.Delivery
}

func NewDeliveryStore() *DeliveryStore {
	return &DeliveryStore{deliveries: seedDeliveries()}
}

// ByTrackingCode looks up a delivery by its code, case-insensitively.
func (s *DeliveryStore) ByTrackingCode(code string) (*models.Delivery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	code = strings.TrimSpace(code)
	for i := range s.deliveries {
		if strings.EqualFold(s.deliveries[i].TrackingCode, code) {
			util.TrackingLookupsTotal.WithLabelValues("found").Inc()
			d := s.deliveries[i]
			return &d, nil
		}
	}
	util.TrackingLookupsTotal.WithLabelValues("not_found").Inc()
	return nil, ErrDeliveryNotFound
}

// All returns every delivery.
func (s *DeliveryStore) All() []models.Delivery {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Delivery, len(s.deliveries))
	copy(out, s.deliveries)
	return out
}

// ByStatus filters deliveries by status (admin panel view).
func (s *DeliveryStore) ByStatus(status string) []models.Delivery {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Delivery
	for _, d := range s.deliveries {
		if d.Status == status {
			out = append(out, d)
		}
	}
	return out
}

// RegisterOrder creates a pending delivery for a settled order so the
// completed checkout is immediately trackable.
func (s *DeliveryStore) RegisterOrder(order *models.Order) models.Delivery {
	names := make([]string, len(order.Lines))
	for i, line := range order.Lines {
		names[i] = line.ProductName
	}

	now := time.Now()
	d := models.Delivery{
		ID:              uuid.New().String(),
		TrackingCode:    order.TrackingCode,
		ProductName:     strings.Join(names, ", "),
		ClientName:      order.Shipping.FullName,
		ClientPhone:     order.Shipping.Phone,
		DeliveryAddress: order.Shipping.Address,
		Status:          models.DeliveryStatusPending,
		EstimatedDate:   now.AddDate(0, 0, 5).Format("2006-01-02"),
		History: []models.DeliveryEvent{
			{
				Date:     now.Format("2006-01-02 15:04"),
				Status:   "Pedido Recebido",
				Location: "Loja Online",
			},
		},
	}

	s.mu.Lock()
	s.deliveries = append([]models.Delivery{d}, s.deliveries...)
	s.mu.Unlock()

	return d
}

func seedDeliveries() []models.Delivery {
	return []models.Delivery{
		{
			ID:              "d1",
			TrackingCode:    "KZ-998877",
			ProductName:     "iPhone 15 Pro Max",
			ClientName:      "Maria Santos",
			ClientPhone:     "+244 923 111 222",
			DeliveryAddress: "Rua Rainha Ginga, Edifício 23, 4º Andar, Luanda",
			Status:          models.DeliveryStatusInTransit,
			EstimatedDate:   "2024-05-25",
			History: []models.DeliveryEvent{
				{Date: "2024-05-20 10:00", Status: "Pedido Recebido", Location: "Loja Online"},
				{Date: "2024-05-21 14:30", Status: "Processado no Armazém", Location: "Luanda, Viana"},
				{Date: "2024-05-22 09:15", Status: "Saiu para Entrega", Location: "Luanda, Centro"},
			},
		},
		{
			ID:              "d2",
			TrackingCode:    "KZ-554433",
			ProductName:     "Computador HP Pavilion",
			ClientName:      "José Eduardo",
			ClientPhone:     "+244 934 555 666",
			DeliveryAddress: "Condomínio Austin, Vivenda 12, Talatona",
			Status:          models.DeliveryStatusPending,
			EstimatedDate:   "2024-06-01",
			History: []models.DeliveryEvent{
				{Date: "2024-05-28 09:00", Status: "Pedido Recebido", Location: "Loja Online"},
			},
		},
		{
			ID:              "d3",
			TrackingCode:    "KZ-112233",
			ProductName:     "Sofá de Canto",
			ClientName:      "Ana Paula",
			ClientPhone:     "+244 912 333 444",
			DeliveryAddress: "Bairro da Mapunda, Rua 5, Casa 10, Lubango",
			Status:          models.DeliveryStatusDelivered,
			EstimatedDate:   "2024-05-15",
			History: []models.DeliveryEvent{
				{Date: "2024-05-10 09:00", Status: "Pedido Recebido", Location: "Loja Online"},
				{Date: "2024-05-11 11:00", Status: "Processado no Armazém", Location: "Luanda, Viana"},
				{Date: "2024-05-12 08:00", Status: "Em Trânsito Interprovincial", Location: "Estrada Nacional 100"},
				{Date: "2024-05-15 16:00", Status: "Entregue", Location: "Lubango"},
			},
		},
		{
			ID:              "d4",
			TrackingCode:    "KZ-888999",
			ProductName:     "Smart TV Samsung 65\"",
			ClientName:      "Carla Dias",
			ClientPhone:     "+244 923 888 999",
			DeliveryAddress: "Centralidade do Kilamba, Quarteirão X, Prédio 5",
			Status:          models.DeliveryStatusProcessing,
			EstimatedDate:   "2024-06-05",
			History: []models.DeliveryEvent{
				{Date: "2024-06-01 10:30", Status: "Pedido Recebido", Location: "Loja Online"},
				{Date: "2024-06-02 09:00", Status: "Em Processamento", Location: "Armazém Central"},
			},
		},
	}
}
