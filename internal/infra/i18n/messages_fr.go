package i18n

var messagesFR = map[string]string{
	"appName":        "MyDrip",
	"appDescription": "Votre garde-robe intelligente",

	"wardrobe":  "Garde-robe",
	"mannequin": "Mannequin",
	"outfits":   "Tenues",
	"profile":   "Profil",

	"pieces": "pièces",
	"looks":  "tenues",

	"myWardrobe":          "Ma Garde-robe",
	"addPiece":            "Ajouter Pièce",
	"searchPlaceholder":   "Rechercher par nom ou étiquettes...",
	"allCategories":       "Toutes les catégories",
	"allSeasons":          "Toutes les saisons",
	"addNewPiece":         "Ajouter Nouvelle Pièce",
	"pieceName":           "Nom de la Pièce",
	"category":            "Catégorie",
	"mainColor":           "Couleur Principale",
	"appropriateSeasons":  "Saisons Appropriées",
	"noPiecesFound":       "Aucune pièce trouvée",
	"noPiecesDescription": "Commencez par ajouter vos premières pièces à la garde-robe!",
	"adjustFilters":       "Essayez d'ajuster les filtres de recherche.",
	"addFirstPiece":       "Ajouter Première Pièce",

	"tops":        "Hauts/Chemises",
	"bottoms":     "Pantalons/Jupes",
	"shoes":       "Chaussures",
	"accessories": "Accessoires",

	"summer": "Été",
	"autumn": "Automne",
	"winter": "Hiver",
	"spring": "Printemps",

	"virtualMannequin":   "Mannequin Virtuel",
	"measurements":       "Mesures",
	"height":             "Taille",
	"chest":              "Poitrine",
	"waist":              "Tour de Taille",
	"hips":               "Hanches",
	"shoulderWidth":      "Largeur d'Épaules",
	"armLength":          "Longueur du Bras",
	"legLength":          "Longueur de la Jambe",
	"shoeSize":           "Pointure",
	"updateMeasurements": "Mettre à Jour les Mesures",

	"createOutfit":         "Créer Tenue",
	"myOutfits":            "Mes Tenues",
	"outfitName":           "Nom de la Tenue",
	"noOutfitsFound":       "Aucune tenue trouvée",
	"noOutfitsDescription": "Créez votre première tenue en combinant vos pièces!",
	"createFirstOutfit":    "Créer Première Tenue",

	"userProfile":      "Profil Utilisateur",
	"myMeasurements":   "Mes Mesures",
	"statistics":       "Statistiques",
	"totalPieces":      "Total des Pièces",
	"totalOutfits":     "Total des Tenues",
	"favoriteCategory": "Catégorie Favorite",

	"save":    "Sauvegarder",
	"cancel":  "Annuler",
	"delete":  "Supprimer",
	"edit":    "Modifier",
	"close":   "Fermer",
	"loading": "Chargement...",
	"error":   "Erreur",
	"success": "Succès",

	"cm":   "cm",
	"size": "taille",
}
