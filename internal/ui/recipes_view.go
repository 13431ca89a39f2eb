package ui

import (
	"context"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/fromenjn/boca-recettes/internal/api"
	"github.com/fromenjn/boca-recettes/internal/model"
	"github.com/fromenjn/boca-recettes/internal/platform"
)

// RecipesState is the view-state of the recipes view
type RecipesState struct {
	Status  model.LoadStatus
	Err     error
	Recipes []model.Recipe
}

// RecipesView shows every recipe in full, read-only
type RecipesView struct {
	svc          api.RecipeService
	images       *platform.ImageLoader
	localization *Localization

	mu         sync.Mutex
	state      RecipesState
	ctx        context.Context
	cancel     context.CancelFunc
	loadCancel context.CancelFunc

	// render bookkeeping, UI thread only
	rendered    []model.Recipe
	cardsCancel context.CancelFunc

	// UI components
	content    *fyne.Container
	loadingBox *fyne.Container
	errorLabel *widget.Label
	emptyLabel *widget.Label
	cardsBox   *fyne.Container
	refreshBtn *widget.Button
}

// NewRecipesView creates the view; call Load to fetch its data
func NewRecipesView(svc api.RecipeService, images *platform.ImageLoader, localization *Localization) *RecipesView {
	ctx, cancel := context.WithCancel(context.Background())
	v := &RecipesView{
		svc:          svc,
		images:       images,
		localization: localization,
		state:        RecipesState{Status: model.LoadStatusLoading},
		ctx:          ctx,
		cancel:       cancel,
	}
	v.createUI()
	v.render()
	return v
}

// Container returns the view's root canvas object
func (v *RecipesView) Container() fyne.CanvasObject {
	return v.content
}

// State returns a copy of the current view-state
func (v *RecipesView) State() RecipesState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Load fetches the recipe list; a running load is superseded
func (v *RecipesView) Load() {
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
	v.state = RecipesState{Status: model.LoadStatusLoading}
	v.mu.Unlock()

	v.refresh()

	go func() {
		recipes, err := v.svc.ListRecipes(ctx)
		if ctx.Err() != nil {
			log.Printf("Recipes view load abandoned: %v", ctx.Err())
			return
		}

		v.mu.Lock()
		if err != nil {
			log.Printf("Recipes view failed to load: %v", err)
			v.state = RecipesState{Status: model.LoadStatusError, Err: err}
		} else {
			log.Printf("Recipes view loaded %d recipes", len(recipes))
			v.state = RecipesState{Status: model.LoadStatusReady, Recipes: recipes}
		}
		v.mu.Unlock()

		v.refresh()
	}()
}

// Close cancels the pending load and illustration fetches
func (v *RecipesView) Close() {
	v.mu.Lock()
	v.cancel()
	v.mu.Unlock()
}

// Cards returns the rendered recipe cards, in order
func (v *RecipesView) Cards() []*RecipeCard {
	cards := make([]*RecipeCard, 0, len(v.cardsBox.Objects))
	for _, obj := range v.cardsBox.Objects {
		if card, ok := obj.(*RecipeCard); ok {
			cards = append(cards, card)
		}
	}
	return cards
}

// ErrorText returns the inline error message, empty when none is shown
func (v *RecipesView) ErrorText() string {
	if !v.errorLabel.Visible() {
		return ""
	}
	return v.errorLabel.Text
}

func (v *RecipesView) createUI() {
	loc := v.localization

	v.loadingBox = container.NewHBox(widget.NewProgressBarInfinite(), widget.NewLabel(loc.GetText(KeyLoadingRecipes)))
	v.errorLabel = widget.NewLabel("")
	v.errorLabel.Importance = widget.DangerImportance
	v.errorLabel.Wrapping = fyne.TextWrapWord
	v.emptyLabel = widget.NewLabel(loc.GetText(KeyNoRecipes))
	v.cardsBox = container.NewVBox()

	v.refreshBtn = widget.NewButton(IconRefresh+" "+loc.GetText(KeyRefresh), v.Load)

	header := container.NewBorder(nil, nil,
		widget.NewLabelWithStyle(loc.GetText(KeyAllRecipes), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		v.refreshBtn,
	)

	body := container.NewVBox(v.loadingBox, v.errorLabel, v.emptyLabel, v.cardsBox)
	v.content = container.NewBorder(header, nil, nil, nil, container.NewVScroll(container.NewPadded(body)))
}

func (v *RecipesView) refresh() {
	fyne.Do(v.render)
}

func (v *RecipesView) render() {
	st := v.State()

	v.loadingBox.Hide()
	v.errorLabel.Hide()
	v.emptyLabel.Hide()
	v.cardsBox.Hide()

	switch st.Status {
	case model.LoadStatusLoading:
		v.loadingBox.Show()
		v.refreshBtn.Disable()
		v.clearCards()
		return
	case model.LoadStatusError:
		v.errorLabel.SetText(errorMessage(st.Err, v.localization))
		v.errorLabel.Show()
		v.refreshBtn.Enable()
		v.clearCards()
		return
	}

	v.refreshBtn.Enable()
	if len(st.Recipes) == 0 {
		v.emptyLabel.Show()
		return
	}

	v.cardsBox.Show()
	if sameRecipes(v.rendered, st.Recipes) {
		return
	}
	v.clearCards()

	ctx, cancel := context.WithCancel(v.ctx)
	v.cardsCancel = cancel
	for i := range st.Recipes {
		recipe := &st.Recipes[i]
		v.cardsBox.Add(NewRecipeCard(ctx, recipe, recipe.Name, v.localization, v.images))
		if i < len(st.Recipes)-1 {
			v.cardsBox.Add(widget.NewSeparator())
		}
	}
	v.rendered = st.Recipes
}

func (v *RecipesView) clearCards() {
	if v.cardsCancel != nil {
		v.cardsCancel()
		v.cardsCancel = nil
	}
	v.cardsBox.RemoveAll()
	v.rendered = nil
}

// sameRecipes reports whether both slices share their backing array
func sameRecipes(a, b []model.Recipe) bool {
	return len(a) == len(b) && len(a) > 0 && &a[0] == &b[0]
}
