package apitest

import "github.com/fromenjn/boca-recettes/internal/model"

// SampleRecipes returns two recipes sharing some ingredients
func SampleRecipes() []model.Recipe {
	return []model.Recipe{
		{
			ID:   "1",
			Name: "Pancakes",
			Ingredients: []model.Ingredient{
				{Name: "flour", Quantity: 200, Unit: "g"},
				{Name: "milk", Quantity: 300, Unit: "ml"},
				{Name: "egg", Quantity: 2, Unit: "pieces"},
			},
			Steps: []model.Step{
				{
					ID:           "1-1",
					Name:         "Mix",
					Instructions: "Whisk flour, milk and eggs",
					Illustrations: []model.Illustration{
						{ID: "1-1-a", Description: "batter", Filepath: "/images/batter.png"},
					},
				},
				{ID: "1-2", Name: "Cook", Instructions: "Fry in a hot pan"},
			},
		},
		{
			ID:   "2",
			Name: "Omelette",
			Ingredients: []model.Ingredient{
				{Name: "egg", Quantity: 3, Unit: "pieces"},
				{Name: "butter", Quantity: 10, Unit: "g"},
			},
			Steps: []model.Step{
				{ID: "2-1", Name: "Beat", Instructions: "Beat the eggs"},
			},
		},
	}
}
