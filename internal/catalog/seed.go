package catalog

import "marketplace-service/internal/models"

// Provinces available in the checkout shipping form.
var Provinces = []string{
	"Bengo", "Benguela", "Bié", "Cabinda", "Cuando Cubango", "Cuanza Norte",
	"Cuanza Sul", "Cunene", "Huambo", "Huíla", "Luanda", "Lunda Norte",
	"Lunda Sul", "Malanje", "Moxico", "Namibe", "Uíge", "Zaire",
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:            "p1",
			Name:          "iPhone 15 Pro Max",
			Description:   "O mais recente iPhone com titânio aeroespacial. Entrega imediata em Luanda.",
			Price:         1850000,
			OriginalPrice: 2100000,
			Currency:      "AOA",
			Stock:         5,
			SellerID:      "u1",
			SellerName:    "Tech Angola",
			Location:      "Luanda, Mutamba",
			Category:      "Eletrónica",
			Options: []models.ProductOption{
				{Name: "Cor", Values: []string{"Titânio Natural", "Titânio Azul", "Titânio Preto"}},
				{Name: "Armazenamento", Values: []string{"256GB", "512GB", "1TB"}},
			},
		},
		{
			ID:          "p2",
			Name:        "Computador HP Pavilion",
			Description: "Ideal para escritório e estudantes. Processador i7, 16GB RAM.",
			Price:       650000,
			Currency:    "AOA",
			Stock:       12,
			SellerID:    "u1",
			SellerName:  "Tech Angola",
			Location:    "Luanda, Talatona",
			Category:    "Informática",
			Options: []models.ProductOption{
				{Name: "Processador", Values: []string{"Intel i5", "Intel i7"}},
				{Name: "RAM", Values: []string{"8GB", "16GB"}},
			},
		},
		{
			ID:          "p3",
			Name:        "Gerador 20kVA Silencioso",
			Description: "Energia garantida para sua empresa ou residência.",
			Price:       4500000,
			Currency:    "AOA",
			Stock:       2,
			SellerID:    "u4",
			SellerName:  "Energia Pura Lda",
			Location:    "Benguela, Centro",
			Category:    "Industrial",
		},
		{
			ID:          "p4",
			Name:        "Sofá de Canto Moderno",
			Description: "Conforto e elegância. Tecido importado.",
			Price:       320000,
			Currency:    "AOA",
			Stock:       8,
			SellerID:    "u5",
			SellerName:  "Casa Bela",
			Location:    "Lubango, Huíla",
			Category:    "Mobiliário",
			Options: []models.ProductOption{
				{Name: "Cor do Tecido", Values: []string{"Cinza", "Bege", "Azul Marinho"}},
				{Name: "Lado do Canto", Values: []string{"Esquerdo", "Direito"}},
			},
		},
		{
			ID:            "p5",
			Name:          "Smart TV Samsung 65\" 4K",
			Description:   "Cinema em casa com cores vibrantes e som imersivo.",
			Price:         950000,
			OriginalPrice: 1200000,
			Currency:      "AOA",
			Stock:         3,
			SellerID:      "u1",
			SellerName:    "Tech Angola",
			Location:      "Luanda, Maianga",
			Category:      "Eletrónica",
		},
		{
			ID:            "p6",
			Name:          "Ténis Nike Air Jordan",
			Description:   "Estilo e conforto para o dia a dia. Tamanhos 40-44.",
			Price:         85000,
			OriginalPrice: 120000,
			Currency:      "AOA",
			Stock:         4,
			SellerID:      "u5",
			SellerName:    "Casa Bela",
			Location:      "Lubango, Huíla",
			Category:      "Moda",
			Options: []models.ProductOption{
				{Name: "Tamanho", Values: []string{"40", "41", "42", "43", "44"}},
				{Name: "Cor", Values: []string{"Vermelho/Preto", "Branco/Preto"}},
			},
			UnavailableOptions: []string{"44"},
		},
		{
			ID:            "p7",
			Name:          "Relógio Inteligente Pro",
			Description:   "Monitoramento de saúde, notificações e bateria de longa duração.",
			Price:         45000,
			OriginalPrice: 70000,
			Currency:      "AOA",
			Stock:         1,
			SellerID:      "u1",
			SellerName:    "Tech Angola",
			Location:      "Luanda, Mutamba",
			Category:      "Eletrónica",
			Options: []models.ProductOption{
				{Name: "Cor da Bracelete", Values: []string{"Preto", "Rosa", "Cinza"}},
			},
		},
	}
}

func seedSellers() []models.Seller {
	return []models.Seller{
		{
			ID:               "u1",
			Name:             "Tech Angola",
			NIF:              "001234567LA032",
			Email:            "comercial@techangola.ao",
			Phone:            "+244 923 000 000",
			Location:         "Luanda, Mutamba",
			StoreDescription: "Líder em tecnologia e gadgets em Angola. Representantes oficiais das melhores marcas como Apple, Samsung e HP.",
			Rating:           4.8,
			ReviewCount:      1240,
			OpeningHours:     "08:00 - 18:00 (Seg-Sex)",
			Tags:             []string{"Eletrónica", "Informática", "Gadgets", "Premium"},
			IsVerified:       true,
		},
		{
			ID:               "u4",
			Name:             "Energia Pura Lda",
			NIF:              "501239999LA001",
			Email:            "vendas@energiapura.ao",
			Phone:            "+244 923 555 111",
			Location:         "Benguela, Centro",
			StoreDescription: "Soluções de energia industrial e doméstica. Geradores, painéis solares e manutenção especializada.",
			Rating:           4.5,
			ReviewCount:      85,
			OpeningHours:     "07:30 - 17:00 (Seg-Sáb)",
			Tags:             []string{"Industrial", "Energia", "Construção", "Serviços"},
			IsVerified:       true,
		},
		{
			ID:               "u5",
			Name:             "Casa Bela",
			NIF:              "504443333LA002",
			Email:            "comercial@casabela.ao",
			Phone:            "+244 945 888 777",
			Location:         "Lubango, Huíla",
			StoreDescription: "Transforme sua casa num lar. Mobiliário moderno, decoração de interiores e têxteis de alta qualidade.",
			Rating:           4.9,
			ReviewCount:      312,
			OpeningHours:     "09:00 - 19:00 (Todos os dias)",
			Tags:             []string{"Mobiliário", "Decoração", "Casa", "Design"},
			IsVerified:       true,
		},
	}
}
