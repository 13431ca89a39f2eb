package ui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/fromenjn/boca-recettes/internal/model"
	"github.com/fromenjn/boca-recettes/internal/platform"
)

// formatIngredientLine renders "flour: 400 g"
func formatIngredientLine(ing model.Ingredient) string {
	return strings.TrimSpace(fmt.Sprintf(IngredientFormat, ing.Name, ing.DisplayQuantity(), ing.Unit))
}

// RecipeCard renders one recipe: title, ingredient lines and ordered steps
// with their illustrations.
type RecipeCard struct {
	widget.BaseWidget

	recipe       *model.Recipe
	localization *Localization
	images       *platform.ImageLoader
	ctx          context.Context

	// UI components
	titleLabel       *widget.Label
	ingredientLabels []*widget.Label
	stepLabels       []*widget.Label
	illustrations    []*canvas.Image
	content          *fyne.Container
}

// NewRecipeCard creates a card for the recipe. Illustrations are loaded in
// the background with loader until ctx is cancelled; a nil loader shows
// descriptions only.
func NewRecipeCard(ctx context.Context, recipe *model.Recipe, title string, localization *Localization, loader *platform.ImageLoader) *RecipeCard {
	rc := &RecipeCard{
		recipe:       recipe,
		localization: localization,
		images:       loader,
		ctx:          ctx,
	}
	rc.ExtendBaseWidget(rc)
	rc.createUI(title)
	return rc
}

// CreateRenderer implements fyne.Widget
func (rc *RecipeCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(rc.content)
}

// Recipe returns the rendered recipe
func (rc *RecipeCard) Recipe() *model.Recipe {
	return rc.recipe
}

// Title returns the card heading
func (rc *RecipeCard) Title() string {
	return rc.titleLabel.Text
}

// IngredientLines returns the displayed ingredient lines, in order
func (rc *RecipeCard) IngredientLines() []string {
	lines := make([]string, len(rc.ingredientLabels))
	for i, l := range rc.ingredientLabels {
		lines[i] = l.Text
	}
	return lines
}

// StepTitles returns the displayed step headings, in order
func (rc *RecipeCard) StepTitles() []string {
	titles := make([]string, len(rc.stepLabels))
	for i, l := range rc.stepLabels {
		titles[i] = l.Text
	}
	return titles
}

func (rc *RecipeCard) createUI(title string) {
	rc.titleLabel = widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	rc.titleLabel.SizeName = theme.SizeNameSubHeadingText

	ingredients := container.NewVBox()
	for _, ing := range rc.recipe.Ingredients {
		label := widget.NewLabel(formatIngredientLine(ing))
		rc.ingredientLabels = append(rc.ingredientLabels, label)
		ingredients.Add(label)
	}

	steps := container.NewVBox()
	for i, step := range rc.recipe.Steps {
		heading := widget.NewLabelWithStyle(fmt.Sprintf(StepNumberFormat, i+1, step.Name), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		rc.stepLabels = append(rc.stepLabels, heading)

		instructions := widget.NewLabel(step.Instructions)
		instructions.Wrapping = fyne.TextWrapWord

		stepBox := container.NewVBox(heading, instructions)
		for _, ill := range step.Illustrations {
			stepBox.Add(rc.createIllustration(ill))
		}
		steps.Add(stepBox)
	}

	rc.content = container.NewVBox(
		rc.titleLabel,
		widget.NewLabelWithStyle(rc.localization.GetText(KeyIngredientsCaption), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		ingredients,
		widget.NewLabelWithStyle(rc.localization.GetText(KeyStepsCaption), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		steps,
		widget.NewSeparator(),
	)
}

// createIllustration shows the description right away and the image once
// it has been loaded.
func (rc *RecipeCard) createIllustration(ill model.Illustration) fyne.CanvasObject {
	description := widget.NewLabelWithStyle(ill.Description, fyne.TextAlignLeading, fyne.TextStyle{Italic: true})

	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillContain
	img.Hide()
	rc.illustrations = append(rc.illustrations, img)

	if rc.images != nil && ill.Filepath != "" {
		loader := rc.images
		ctx := rc.ctx
		go func() {
			loaded, err := loader.Load(ctx, ill.Filepath)
			if err != nil {
				if ctx.Err() == nil {
					log.Printf("Failed to load illustration %s (%s): %v", ill.ID, ill.Filepath, err)
				}
				return
			}
			if ctx.Err() != nil {
				return
			}
			fyne.Do(func() {
				bounds := loaded.Bounds()
				img.Image = loaded
				img.SetMinSize(fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy())))
				img.Show()
				img.Refresh()
			})
		}()
	}

	return container.NewVBox(img, description)
}
