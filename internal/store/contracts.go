package store

import (
	"sync"

	"marketplace-service/internal/models"
)

// ContractStore keeps the seller/client contracts shown in the admin panel.
type ContractStore struct {
	mu        sync.RWMutex
	contracts []models.Contract
}

func NewContractStore() *ContractStore {
	return &ContractStore{contracts: seedContracts()}
}

// All returns every contract.
func (s *ContractStore) All() []models.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Contract, len(s.contracts))
	copy(out, s.contracts)
	return out
}

// ByStatus filters contracts by status.
func (s *ContractStore) ByStatus(status string) []models.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Contract
	for _, c := range s.contracts {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out
}

func seedContracts() []models.Contract {
	return []models.Contract{
		{
			ID:         "c1",
			SellerName: "Tech Angola",
			ClientName: "Empresa XYZ",
			ClientNIF:  "5412312312",
			Date:       "2024-05-20",
			Terms:      "Fornecimento de equipamentos informáticos com garantia de 12 meses.",
			Value:      6500000,
			Status:     models.ContractStatusActive,
		},
	}
}
