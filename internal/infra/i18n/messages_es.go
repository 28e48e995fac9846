package i18n

var messagesES = map[string]string{
	"appName":        "MyDrip",
	"appDescription": "Tu armario inteligente",

	"wardrobe":  "Armario",
	"mannequin": "Maniquí",
	"outfits":   "Looks",
	"profile":   "Perfil",

	"pieces": "piezas",
	"looks":  "looks",

	"myWardrobe":          "Mi Armario",
	"addPiece":            "Añadir Pieza",
	"searchPlaceholder":   "Buscar por nombre o etiquetas...",
	"allCategories":       "Todas las categorías",
	"allSeasons":          "Todas las estaciones",
	"addNewPiece":         "Añadir Nueva Pieza",
	"pieceName":           "Nombre de la Pieza",
	"category":            "Categoría",
	"mainColor":           "Color Principal",
	"appropriateSeasons":  "Estaciones Apropiadas",
	"noPiecesFound":       "No se encontraron piezas",
	"noPiecesDescription": "¡Comienza añadiendo tus primeras piezas al armario!",
	"adjustFilters":       "Intenta ajustar los filtros de búsqueda.",
	"addFirstPiece":       "Añadir Primera Pieza",

	"tops":        "Blusas/Camisas",
	"bottoms":     "Pantalones/Faldas",
	"shoes":       "Zapatos",
	"accessories": "Accesorios",

	"summer": "Verano",
	"autumn": "Otoño",
	"winter": "Invierno",
	"spring": "Primavera",

	"virtualMannequin":   "Maniquí Virtual",
	"measurements":       "Medidas",
	"height":             "Altura",
	"chest":              "Pecho",
	"waist":              "Cintura",
	"hips":               "Cadera",
	"shoulderWidth":      "Ancho de Hombros",
	"armLength":          "Longitud del Brazo",
	"legLength":          "Longitud de la Pierna",
	"shoeSize":           "Talla de Zapato",
	"updateMeasurements": "Actualizar Medidas",

	"createOutfit":         "Crear Look",
	"myOutfits":            "Mis Looks",
	"outfitName":           "Nombre del Look",
	"noOutfitsFound":       "No se encontraron looks",
	"noOutfitsDescription": "¡Crea tu primer look combinando tus piezas!",
	"createFirstOutfit":    "Crear Primer Look",

	"userProfile":      "Perfil de Usuario",
	"myMeasurements":   "Mis Medidas",
	"statistics":       "Estadísticas",
	"totalPieces":      "Total de Piezas",
	"totalOutfits":     "Total de Looks",
	"favoriteCategory": "Categoría Favorita",

	"save":    "Guardar",
	"cancel":  "Cancelar",
	"delete":  "Eliminar",
	"edit":    "Editar",
	"close":   "Cerrar",
	"loading": "Cargando...",
	"error":   "Error",
	"success": "Éxito",

	"cm":   "cm",
	"size": "talla",
}
