package i18n

var messagesEN = map[string]string{
	"appName":        "MyDrip",
	"appDescription": "Your smart wardrobe",

	"wardrobe":  "Wardrobe",
	"mannequin": "Mannequin",
	"outfits":   "Outfits",
	"profile":   "Profile",

	"pieces": "pieces",
	"looks":  "outfits",

	"myWardrobe":          "My Wardrobe",
	"addPiece":            "Add Piece",
	"searchPlaceholder":   "Search by name or tags...",
	"allCategories":       "All categories",
	"allSeasons":          "All seasons",
	"addNewPiece":         "Add New Piece",
	"pieceName":           "Piece Name",
	"category":            "Category",
	"mainColor":           "Main Color",
	"appropriateSeasons":  "Appropriate Seasons",
	"noPiecesFound":       "No pieces found",
	"noPiecesDescription": "Start by adding your first pieces to the wardrobe!",
	"adjustFilters":       "Try adjusting the search filters.",
	"addFirstPiece":       "Add First Piece",

	"tops":        "Tops/Shirts",
	"bottoms":     "Pants/Skirts",
	"shoes":       "Shoes",
	"accessories": "Accessories",

	"summer": "Summer",
	"autumn": "Autumn",
	"winter": "Winter",
	"spring": "Spring",

	"virtualMannequin":   "Virtual Mannequin",
	"measurements":       "Measurements",
	"height":             "Height",
	"chest":              "Chest",
	"waist":              "Waist",
	"hips":               "Hips",
	"shoulderWidth":      "Shoulder Width",
	"armLength":          "Arm Length",
	"legLength":          "Leg Length",
	"shoeSize":           "Shoe Size",
	"updateMeasurements": "Update Measurements",

	"createOutfit":         "Create Outfit",
	"myOutfits":            "My Outfits",
	"outfitName":           "Outfit Name",
	"noOutfitsFound":       "No outfits found",
	"noOutfitsDescription": "Create your first outfit by combining your pieces!",
	"createFirstOutfit":    "Create First Outfit",

	"userProfile":      "User Profile",
	"myMeasurements":   "My Measurements",
	"statistics":       "Statistics",
	"totalPieces":      "Total Pieces",
	"totalOutfits":     "Total Outfits",
	"favoriteCategory": "Favorite Category",

	"save":    "Save",
	"cancel":  "Cancel",
	"delete":  "Delete",
	"edit":    "Edit",
	"close":   "Close",
	"loading": "Loading...",
	"error":   "Error",
	"success": "Success",

	"cm":   "cm",
	"size": "size",
}
