package catalog

// Default returns the price list shipped with the tool. Each call builds a
// fresh value so callers may edit it freely.
func Default() Catalog {
	return Catalog{
		Papers: []PaperEntry{
			{Name: "Adesivo Fosco - 180g", PriceA4: 0.33, PriceA3: 0.74, PriceSheet: 2.97, PricePack: 296.64},
			{Name: "Cartão Triplex - 250g", PriceA4: 0.35, PriceA3: 0.79, PriceSheet: 3.17, PricePack: 475.0},
			{Name: "Cartolina Branca - 180g", PriceA4: 0.29, PriceA3: 0.57, PriceSheet: 1.14, PricePack: 114.0},
			{Name: "Cartolina Branca - 240g", PriceA4: 0.24, PriceA3: 0.48, PriceSheet: 0.95, PricePack: 95.0},
			{Name: "Couché 115g", PriceA4: 0.09, PriceA3: 0.19, PriceSheet: 0.77, PricePack: 192.0},
			{Name: "Couché 150g", PriceA4: 0.08, PriceA3: 0.17, PriceSheet: 0.68, PricePack: 169.45},
			{Name: "Couché 210g", PriceA4: 0.19, PriceA3: 0.43, PriceSheet: 1.71, PricePack: 256.69},
			{Name: "Kraft 110g", PriceA4: 0.11, PriceA3: 0.24, PriceSheet: 0.97, PricePack: 241.84},
			{Name: "Opaline 180g", PriceA4: 0.19, PriceA3: 0.42, PriceSheet: 1.68, PricePack: 114.0},
			{Name: "Offset 75g", PriceA4: 0.06, PriceA3: 0.13, PriceSheet: 0.53, PricePack: 132.0},
			{Name: "Offset 90g", PriceA4: 0.05, PriceA3: 0.12, PriceSheet: 0.47, PricePack: 236.71},
			{Name: "Offset 120g", PriceA4: 0.09, PriceA3: 0.2, PriceSheet: 0.8, PricePack: 200.01},
			{Name: "Vergê 80g", PriceA4: 0.04, PriceA3: 0.1, PriceSheet: 0.39, PricePack: 98.64},
			{Name: "Vergê 180g", PriceA4: 0.12, PriceA3: 0.28, PriceSheet: 1.12, PricePack: 139.49},
		},
		Materials: []MaterialEntry{
			{Name: "Laser Filme", Variants: []MaterialVariant{
				{Name: "A3 (por folha)", Price: 3.57},
				{Name: "Ofício II (por folha)", Price: 1.9},
			}},
			{Name: "Chapa Offset Positiva", Variants: []MaterialVariant{
				{Name: "SAKURAI", Price: 7.58},
				{Name: "HEIDELBERG", Price: 14.0},
			}},
			{Name: "Chapa Offset Térmica Digital (CTP)", Variants: []MaterialVariant{
				{Name: "SAKURAI", Price: 57.0},
				{Name: "HEIDELBERG", Price: 54.5},
			}},
			{Name: "Espiral", Variants: []MaterialVariant{
				{Name: "7 MM", Price: 0.11},
				{Name: "9 MM", Price: 0.13},
				{Name: "12 MM", Price: 0.28},
				{Name: "14 MM", Price: 0.36},
				{Name: "17 MM", Price: 0.44},
				{Name: "20 MM", Price: 0.64},
				{Name: "23 MM", Price: 0.75},
				{Name: "25 MM", Price: 0.98},
				{Name: "29 MM", Price: 1.25},
				{Name: "33 MM", Price: 1.52},
				{Name: "40 MM", Price: 1.7},
				{Name: "45 MM", Price: 2.37},
				{Name: "50 MM", Price: 3.16},
			}},
			{Name: "Capa para Encadernação PP", Variants: []MaterialVariant{
				{Name: "Transparente", Price: 0.4},
				{Name: "Preta", Price: 0.3},
			}},
			{Name: "Fita Dupla Face", Variants: []MaterialVariant{
				{Name: "19 MM (por cm)", Price: 0.005},
				{Name: "25 MM (por cm)", Price: 0.0043},
				{Name: "50 MM (por cm)", Price: 0.0086},
			}},
			{Name: "Bobina Polietileno (Plastificação)", Variants: []MaterialVariant{
				{Name: "34CM×0,05MM×60M (por cm)", Price: 0.0342},
			}},
			{Name: "Adesivo Vinil", Variants: []MaterialVariant{
				{Name: "Preto (por metro)", Price: 14.4},
				{Name: "Azul Médio (por metro)", Price: 15.86},
				{Name: "Vermelho Médio (por metro)", Price: 18.31},
				{Name: "Transparente (por metro)", Price: 9.9},
			}},
			{Name: "Máscara de Transferência", Variants: []MaterialVariant{
				{Name: "Máscara (por metro)", Price: 17.11},
			}},
			{Name: "Bolsa para Pastas", Variants: []MaterialVariant{
				{Name: "25×11", Price: 0.27},
			}},
		},
		Prints: []PrintEntry{
			{Type: "PRETO (1 lado)", Format: "A4", Price: 0.03},
			{Type: "PRETO (1 lado)", Format: "A3", Price: 0.06},
			{Type: "PRETO (FRENTE E VERSO)", Format: "A4", Price: 0.06},
			{Type: "PRETO (FRENTE E VERSO)", Format: "A3", Price: 0.12},
			{Type: "COLORIDO (1 lado)", Format: "A4", Price: 0.25},
			{Type: "COLORIDO (1 lado)", Format: "A3", Price: 0.46},
			{Type: "COLORIDO (FRENTE E VERSO)", Format: "A4", Price: 0.5},
			{Type: "COLORIDO (FRENTE E VERSO)", Format: "A3", Price: 0.92},
		},
		Labor: []LaborEntry{
			{Role: "COORDENADOR DE ARTES GRÁFICAS", HourlyRate: 85.67},
			{Role: "DESIGNER GRÁFICO", HourlyRate: 65.0},
			{Role: "ORÇAMENTISTA GRÁFICO", HourlyRate: 41.37},
			{Role: "MESTRE IMPRESSOR", HourlyRate: 53.84},
			{Role: "IMPRESSOR DIGITAL", HourlyRate: 36.0},
			{Role: "MESTRE IMPRESSOR OFFSET", HourlyRate: 53.84},
			{Role: "IMPRESSOR OFFSET", HourlyRate: 36.0},
			{Role: "OPERADOR DE GUILHOTINA", HourlyRate: 36.0},
			{Role: "MESTRE DE SERVIÇOS GRÁFICOS", HourlyRate: 53.84},
			{Role: "OPERADOR DE ACABAMENTO GRÁFICO", HourlyRate: 36.0},
			{Role: "ENCARREGADO", HourlyRate: 53.84},
		},
	}
}
