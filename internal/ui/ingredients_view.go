package ui

import (
	"context"
	"fmt"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/sync/errgroup"

	"github.com/fromenjn/boca-recettes/internal/api"
	"github.com/fromenjn/boca-recettes/internal/model"
	"github.com/fromenjn/boca-recettes/internal/platform"
)

// IngredientsView lists all ingredients and lets the user scale a recipe
// around one of its ingredients.
type IngredientsView struct {
	svc          api.RecipeService
	images       *platform.ImageLoader
	localization *Localization

	mu          sync.Mutex
	state       IngredientsState
	ctx         context.Context
	cancel      context.CancelFunc
	loadCancel  context.CancelFunc
	scaleCancel context.CancelFunc
	scaleSeq    uint64

	// render bookkeeping, UI thread only
	syncing          bool
	recipeIDs        []string
	listedLoad       bool
	renderedScaled   *model.Recipe
	resultCardCancel context.CancelFunc

	// UI components
	content          *fyne.Container
	loadingBox       *fyne.Container
	errorLabel       *widget.Label
	readyBox         *fyne.Container
	ingredientsBox   *fyne.Container
	recipeSelect     *widget.Select
	ingredientSelect *widget.Select
	quantityEntry    *widget.Entry
	scaleBtn         *widget.Button
	clearBtn         *widget.Button
	scalingBox       *fyne.Container
	scaleErrLabel    *widget.Label
	resultBox        *fyne.Container
}

// NewIngredientsView creates the view; call Load to fetch its data
func NewIngredientsView(svc api.RecipeService, images *platform.ImageLoader, localization *Localization) *IngredientsView {
	ctx, cancel := context.WithCancel(context.Background())
	v := &IngredientsView{
		svc:          svc,
		images:       images,
		localization: localization,
		state:        NewIngredientsState(),
		ctx:          ctx,
		cancel:       cancel,
	}
	v.createUI()
	v.render()
	return v
}

// Container returns the view's root canvas object
func (v *IngredientsView) Container() fyne.CanvasObject {
	return v.content
}

// State returns a copy of the current view-state
func (v *IngredientsView) State() IngredientsState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Load fetches ingredients and recipes concurrently. Both must succeed for
// the view to become ready.
func (v *IngredientsView) Load() {
	v.mu.Lock()
	if v.ctx.Err() != nil {
		v.mu.Unlock()
		return
	}
	if v.loadCancel != nil {
		v.loadCancel()
	}
	ctx, cancel := context.WithCancel(v.ctx)
	v.loadCancel = cancel
	v.state = NewIngredientsState()
	v.mu.Unlock()

	v.refresh()
	go v.load(ctx)
}

func (v *IngredientsView) load(ctx context.Context) {
	var (
		ingredients []string
		recipes     []model.Recipe
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ingredients, err = v.svc.ListIngredients(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		recipes, err = v.svc.ListRecipes(gctx)
		return err
	})
	err := g.Wait()

	if ctx.Err() != nil {
		log.Printf("Ingredients view load abandoned: %v", ctx.Err())
		return
	}

	v.mu.Lock()
	if err != nil {
		log.Printf("Ingredients view failed to load: %v", err)
		v.state.SetLoadError(err)
	} else {
		log.Printf("Ingredients view loaded %d ingredients and %d recipes", len(ingredients), len(recipes))
		v.state.SetLoaded(ingredients, recipes)
	}
	v.mu.Unlock()

	v.refresh()
}

// SelectRecipe selects a recipe by ID and narrows the ingredient selector.
// An empty ID clears the selection.
func (v *IngredientsView) SelectRecipe(id string) {
	v.mu.Lock()
	v.state.SelectRecipe(id)
	v.mu.Unlock()
	v.refresh()
}

// SelectIngredient selects an ingredient and narrows the recipe selector.
// An empty name clears the selection.
func (v *IngredientsView) SelectIngredient(name string) {
	v.mu.Lock()
	v.state.SelectIngredient(name)
	v.mu.Unlock()
	v.refresh()
}

// ClearSelection restores both full lists
func (v *IngredientsView) ClearSelection() {
	v.mu.Lock()
	v.state.ClearSelection()
	v.mu.Unlock()
	v.refresh()
}

// SetQuantity sets the desired quantity from user input
func (v *IngredientsView) SetQuantity(text string) {
	v.mu.Lock()
	v.state.SetQuantityText(text)
	v.mu.Unlock()
}

// Scale validates the selection and asks the backend for the scaled recipe.
// A newer request cancels the previous one and only its response is shown.
func (v *IngredientsView) Scale() {
	v.mu.Lock()
	if v.ctx.Err() != nil {
		v.mu.Unlock()
		return
	}

	if err := v.state.Validate(); err != nil {
		log.Printf("Scale request rejected: recipe=%q ingredient=%q quantity=%v",
			v.state.RecipeID, v.state.Ingredient, v.state.Quantity)
		// a rejected request still supersedes the one in flight
		if v.scaleCancel != nil {
			v.scaleCancel()
			v.scaleCancel = nil
		}
		v.scaleSeq++
		v.state.FinishScale(nil, err)
		v.mu.Unlock()
		v.refresh()
		return
	}

	if v.scaleCancel != nil {
		v.scaleCancel()
	}
	ctx, cancel := context.WithCancel(v.ctx)
	v.scaleCancel = cancel
	v.scaleSeq++
	seq := v.scaleSeq

	recipeID := v.state.RecipeID
	scale := &api.Scale{Ingredient: v.state.Ingredient, Quantity: v.state.Quantity}
	v.state.BeginScale()
	v.mu.Unlock()

	log.Printf("Scaling recipe %s: %s -> %v", recipeID, scale.Ingredient, scale.Quantity)
	v.refresh()

	go func() {
		defer cancel()
		recipe, err := v.svc.GetRecipe(ctx, recipeID, scale)

		v.mu.Lock()
		if seq != v.scaleSeq || v.ctx.Err() != nil {
			v.mu.Unlock()
			log.Printf("Dropping stale scale response for recipe %s", recipeID)
			return
		}
		v.state.FinishScale(recipe, err)
		v.mu.Unlock()

		if err != nil {
			log.Printf("Scale request for recipe %s failed: %v", recipeID, err)
		}
		v.refresh()
	}()
}

// Close cancels pending loads and scale requests
func (v *IngredientsView) Close() {
	v.mu.Lock()
	v.cancel()
	v.mu.Unlock()
}

// createUI creates the view's widgets
func (v *IngredientsView) createUI() {
	loc := v.localization

	// Loading and error states
	v.loadingBox = container.NewHBox(widget.NewProgressBarInfinite(), widget.NewLabel(loc.GetText(KeyLoading)))
	v.errorLabel = widget.NewLabel("")
	v.errorLabel.Importance = widget.DangerImportance
	v.errorLabel.Wrapping = fyne.TextWrapWord

	// All ingredients
	v.ingredientsBox = container.NewVBox()
	ingredientsScroll := container.NewVScroll(v.ingredientsBox)
	ingredientsScroll.SetMinSize(fyne.NewSize(SelectMinWidth, IngredientListMinHeight))

	// Selectors
	v.recipeSelect = widget.NewSelect(nil, v.onRecipeSelected)
	v.recipeSelect.PlaceHolder = loc.GetText(KeySelectRecipe)
	clearRecipeBtn := widget.NewButton(IconClose, func() { v.SelectRecipe("") })
	clearRecipeBtn.Importance = widget.LowImportance

	v.ingredientSelect = widget.NewSelect(nil, v.onIngredientSelected)
	v.ingredientSelect.PlaceHolder = loc.GetText(KeySelectIngredient)
	clearIngredientBtn := widget.NewButton(IconClose, func() { v.SelectIngredient("") })
	clearIngredientBtn.Importance = widget.LowImportance

	v.quantityEntry = widget.NewEntry()
	v.quantityEntry.SetPlaceHolder("0")
	v.quantityEntry.OnChanged = v.SetQuantity
	v.quantityEntry.OnSubmitted = func(string) { v.Scale() }

	v.scaleBtn = widget.NewButton(IconScale+" "+loc.GetText(KeyScaleRecipe), v.Scale)
	v.scaleBtn.Importance = widget.HighImportance
	v.clearBtn = widget.NewButton(loc.GetText(KeyClearSelection), v.ClearSelection)

	form := container.New(
		layout.NewFormLayout(),
		widget.NewLabel(loc.GetText(KeyRecipeLabel)), container.NewBorder(nil, nil, nil, clearRecipeBtn, v.recipeSelect),
		widget.NewLabel(loc.GetText(KeyIngredientLabel)), container.NewBorder(nil, nil, nil, clearIngredientBtn, v.ingredientSelect),
		widget.NewLabel(loc.GetText(KeyQuantityLabel)), v.quantityEntry,
	)

	// Scale status and result
	v.scalingBox = container.NewHBox(widget.NewProgressBarInfinite(), widget.NewLabel(loc.GetText(KeyScaling)))
	v.scaleErrLabel = widget.NewLabel("")
	v.scaleErrLabel.Importance = widget.DangerImportance
	v.scaleErrLabel.Wrapping = fyne.TextWrapWord
	v.resultBox = container.NewVBox()

	v.readyBox = container.NewVBox(
		widget.NewLabelWithStyle(loc.GetText(KeyIngredients), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel(loc.GetText(KeyAvailableIngredients)),
		ingredientsScroll,
		widget.NewSeparator(),
		widget.NewLabelWithStyle(loc.GetText(KeyScaleHeading), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		form,
		container.NewHBox(v.scaleBtn, v.clearBtn),
		v.scalingBox,
		v.scaleErrLabel,
		v.resultBox,
	)

	v.content = container.NewPadded(container.NewVScroll(container.NewVBox(v.loadingBox, v.errorLabel, v.readyBox)))
}

func (v *IngredientsView) onRecipeSelected(string) {
	if v.syncing {
		return
	}
	idx := v.recipeSelect.SelectedIndex()
	if idx < 0 || idx >= len(v.recipeIDs) {
		v.SelectRecipe("")
		return
	}
	v.SelectRecipe(v.recipeIDs[idx])
}

func (v *IngredientsView) onIngredientSelected(name string) {
	if v.syncing {
		return
	}
	v.SelectIngredient(name)
}

// refresh schedules a render on the UI thread
func (v *IngredientsView) refresh() {
	fyne.Do(v.render)
}

// render brings the widgets in line with the current state
func (v *IngredientsView) render() {
	st := v.State()

	switch st.Status {
	case model.LoadStatusLoading:
		v.loadingBox.Show()
		v.errorLabel.Hide()
		v.readyBox.Hide()
		v.listedLoad = false
		return
	case model.LoadStatusError:
		v.loadingBox.Hide()
		v.errorLabel.SetText(errorMessage(st.LoadErr, v.localization))
		v.errorLabel.Show()
		v.readyBox.Hide()
		return
	}

	v.loadingBox.Hide()
	v.errorLabel.Hide()
	v.readyBox.Show()

	if !v.listedLoad {
		v.ingredientsBox.RemoveAll()
		for _, name := range st.AllIngredients() {
			v.ingredientsBox.Add(widget.NewLabel(name))
		}
		v.listedLoad = true
	}

	v.renderSelectors(st)
	v.renderScale(st)
}

func (v *IngredientsView) renderSelectors(st IngredientsState) {
	v.syncing = true
	defer func() { v.syncing = false }()

	recipes := st.VisibleRecipes()
	names := make([]string, len(recipes))
	v.recipeIDs = make([]string, len(recipes))
	selected := -1
	for i := range recipes {
		names[i] = recipes[i].Name
		v.recipeIDs[i] = recipes[i].ID
		if recipes[i].ID == st.RecipeID {
			selected = i
		}
	}
	v.recipeSelect.Options = names
	if selected >= 0 {
		v.recipeSelect.SetSelectedIndex(selected)
	} else {
		v.recipeSelect.ClearSelected()
	}
	v.recipeSelect.Refresh()

	v.ingredientSelect.Options = append([]string(nil), st.VisibleIngredients()...)
	if st.Ingredient != "" {
		v.ingredientSelect.SetSelected(st.Ingredient)
	} else {
		v.ingredientSelect.ClearSelected()
	}
	v.ingredientSelect.Refresh()
}

func (v *IngredientsView) renderScale(st IngredientsState) {
	if st.Scale.IsActive() {
		v.scalingBox.Show()
	} else {
		v.scalingBox.Hide()
	}

	if st.ScaleErr != nil {
		v.scaleErrLabel.SetText(errorMessage(st.ScaleErr, v.localization))
		v.scaleErrLabel.Show()
	} else {
		v.scaleErrLabel.SetText("")
		v.scaleErrLabel.Hide()
	}

	if st.Scaled == v.renderedScaled {
		return
	}
	if v.resultCardCancel != nil {
		v.resultCardCancel()
		v.resultCardCancel = nil
	}
	v.resultBox.RemoveAll()
	v.renderedScaled = st.Scaled
	if st.Scaled == nil {
		return
	}

	ctx, cancel := context.WithCancel(v.ctx)
	v.resultCardCancel = cancel
	title := fmt.Sprintf(v.localization.GetText(KeyScaledRecipe), st.Scaled.Name)
	v.resultBox.Add(NewRecipeCard(ctx, st.Scaled, title, v.localization, v.images))
}

// ResultCard returns the card showing the scaled recipe, if any
func (v *IngredientsView) ResultCard() *RecipeCard {
	if len(v.resultBox.Objects) == 0 {
		return nil
	}
	card, _ := v.resultBox.Objects[0].(*RecipeCard)
	return card
}

// errorMessage converts an error into the short text shown inline
func errorMessage(err error, localization *Localization) string {
	if err == nil {
		return ""
	}
	if IsValidationError(err) {
		return localization.GetText(KeyFieldsRequired)
	}
	return err.Error()
}
