package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle             = "app_title"
	KeyIngredients          = "ingredients"
	KeyRecipes              = "recipes"
	KeySettings             = "settings"
	KeyFile                 = "file"
	KeyLanguage             = "language"
	KeySave                 = "save"
	KeyCancel               = "cancel"
	KeyLoading              = "loading"
	KeyLoadingRecipes       = "loading_recipes"
	KeyAvailableIngredients = "available_ingredients"
	KeyScaleHeading         = "scale_heading"
	KeyRecipeLabel          = "recipe_label"
	KeyIngredientLabel      = "ingredient_label"
	KeyQuantityLabel        = "quantity_label"
	KeySelectRecipe         = "select_recipe"
	KeySelectIngredient     = "select_ingredient"
	KeyScaleRecipe          = "scale_recipe"
	KeyScaling              = "scaling"
	KeyScaledRecipe         = "scaled_recipe"
	KeyAllRecipes           = "all_recipes"
	KeyIngredientsCaption   = "ingredients_caption"
	KeyStepsCaption         = "steps_caption"
	KeyNoRecipes            = "no_recipes"
	KeyRefresh              = "refresh"
	KeyClearSelection       = "clear_selection"
	KeyFieldsRequired       = "fields_required"
	KeyBaseURL              = "base_url"
	KeyIllustrationWidth    = "illustration_width"
	KeySettingsSaved        = "settings_saved"
	KeyInvalidURL           = "invalid_url"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"fr": "Français",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:             "Boca Recettes",
		KeyIngredients:          "Ingredients",
		KeyRecipes:              "Recipes",
		KeySettings:             "Settings",
		KeyFile:                 "File",
		KeyLanguage:             "Language",
		KeySave:                 "Save",
		KeyCancel:               "Cancel",
		KeyLoading:              "Loading...",
		KeyLoadingRecipes:       "Loading recipes...",
		KeyAvailableIngredients: "Here is the list of all available ingredients:",
		KeyScaleHeading:         "Scale a Recipe by an Ingredient",
		KeyRecipeLabel:          "Recipe:",
		KeyIngredientLabel:      "Ingredient to Scale:",
		KeyQuantityLabel:        "Desired Quantity:",
		KeySelectRecipe:         "-- Select a Recipe --",
		KeySelectIngredient:     "-- Select an Ingredient --",
		KeyScaleRecipe:          "Scale Recipe",
		KeyScaling:              "Scaling recipe...",
		KeyScaledRecipe:         "Scaled Recipe: %s",
		KeyAllRecipes:           "All Recipes",
		KeyIngredientsCaption:   "Ingredients:",
		KeyStepsCaption:         "Steps:",
		KeyNoRecipes:            "No recipes available",
		KeyRefresh:              "Refresh",
		KeyClearSelection:       "Clear selection",
		KeyFieldsRequired:       "All fields must be filled in correctly",
		KeyBaseURL:              "Backend URL",
		KeyIllustrationWidth:    "Illustration Width (px)",
		KeySettingsSaved:        "Settings saved successfully!",
		KeyInvalidURL:           "Invalid URL",
	}

	// French texts
	l.texts["fr"] = map[string]string{
		KeyAppTitle:             "Boca Recettes",
		KeyIngredients:          "Ingrédients",
		KeyRecipes:              "Recettes",
		KeySettings:             "Paramètres",
		KeyFile:                 "Fichier",
		KeyLanguage:             "Langue",
		KeySave:                 "Enregistrer",
		KeyCancel:               "Annuler",
		KeyLoading:              "Chargement...",
		KeyLoadingRecipes:       "Chargement des recettes...",
		KeyAvailableIngredients: "Voici la liste de tous les ingrédients disponibles :",
		KeyScaleHeading:         "Ajuster une recette selon un ingrédient",
		KeyRecipeLabel:          "Recette :",
		KeyIngredientLabel:      "Ingrédient de référence :",
		KeyQuantityLabel:        "Quantité souhaitée :",
		KeySelectRecipe:         "-- Choisir une recette --",
		KeySelectIngredient:     "-- Choisir un ingrédient --",
		KeyScaleRecipe:          "Ajuster la recette",
		KeyScaling:              "Ajustement en cours...",
		KeyScaledRecipe:         "Recette ajustée : %s",
		KeyAllRecipes:           "Toutes les recettes",
		KeyIngredientsCaption:   "Ingrédients :",
		KeyStepsCaption:         "Étapes :",
		KeyNoRecipes:            "Aucune recette disponible",
		KeyRefresh:              "Actualiser",
		KeyClearSelection:       "Effacer la sélection",
		KeyFieldsRequired:       "Tous les champs doivent être correctement remplis",
		KeyBaseURL:              "URL du serveur",
		KeyIllustrationWidth:    "Largeur des illustrations (px)",
		KeySettingsSaved:        "Paramètres enregistrés !",
		KeyInvalidURL:           "URL invalide",
	}
}
