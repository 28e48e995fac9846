package i18n

var messagesPT = map[string]string{
	"appName":        "MyDrip",
	"appDescription": "Seu guarda-roupa inteligente",

	"wardrobe":  "Guarda-roupa",
	"mannequin": "Manequim",
	"outfits":   "Looks",
	"profile":   "Perfil",

	"pieces": "peças",
	"looks":  "looks",

	"myWardrobe":          "Meu Guarda-roupa",
	"addPiece":            "Adicionar Peça",
	"searchPlaceholder":   "Buscar por nome ou tags...",
	"allCategories":       "Todas categorias",
	"allSeasons":          "Todas estações",
	"addNewPiece":         "Adicionar Nova Peça",
	"pieceName":           "Nome da Peça",
	"category":            "Categoria",
	"mainColor":           "Cor Principal",
	"appropriateSeasons":  "Estações Adequadas",
	"noPiecesFound":       "Nenhuma peça encontrada",
	"noPiecesDescription": "Comece adicionando suas primeiras peças ao guarda-roupa!",
	"adjustFilters":       "Tente ajustar os filtros de busca.",
	"addFirstPiece":       "Adicionar Primeira Peça",

	"tops":        "Blusas/Camisas",
	"bottoms":     "Calças/Saias",
	"shoes":       "Sapatos",
	"accessories": "Acessórios",

	"summer": "Verão",
	"autumn": "Outono",
	"winter": "Inverno",
	"spring": "Primavera",

	"virtualMannequin":   "Manequim Virtual",
	"measurements":       "Medidas",
	"height":             "Altura",
	"chest":              "Peito",
	"waist":              "Cintura",
	"hips":               "Quadril",
	"shoulderWidth":      "Largura dos Ombros",
	"armLength":          "Comprimento do Braço",
	"legLength":          "Comprimento da Perna",
	"shoeSize":           "Número do Sapato",
	"updateMeasurements": "Atualizar Medidas",

	"createOutfit":         "Criar Look",
	"myOutfits":            "Meus Looks",
	"outfitName":           "Nome do Look",
	"noOutfitsFound":       "Nenhum look encontrado",
	"noOutfitsDescription": "Crie seu primeiro look combinando suas peças!",
	"createFirstOutfit":    "Criar Primeiro Look",

	"userProfile":      "Perfil do Usuário",
	"myMeasurements":   "Minhas Medidas",
	"statistics":       "Estatísticas",
	"totalPieces":      "Total de Peças",
	"totalOutfits":     "Total de Looks",
	"favoriteCategory": "Categoria Favorita",

	"save":    "Salvar",
	"cancel":  "Cancelar",
	"delete":  "Excluir",
	"edit":    "Editar",
	"close":   "Fechar",
	"loading": "Carregando...",
	"error":   "Erro",
	"success": "Sucesso",

	"cm":   "cm",
	"size": "tamanho",
}
