package main

import (
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/fromenjn/boca-recettes/internal/api"
	"github.com/fromenjn/boca-recettes/internal/config"
	"github.com/fromenjn/boca-recettes/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.fromenjn.boca-recettes"
	AppName = "Boca Recettes"

	WindowWidth  = 900
	WindowHeight = 700
)

func main() {
	cli := kingpin.New("boca-recettes", "Browse and scale recipes from a recipe backend")
	cli.HelpFlag.Short('h')
	cli.Version(version)

	var (
		baseURL = cli.Flag("base-url", "Recipe backend URL, stored for later runs").Short('u').String()
		lang    = cli.Flag("lang", "Interface language").Short('l').Enum("system", "en", "fr")
		debug   = cli.Flag("debug", "Log source locations").Bool()
	)
	kingpin.MustParse(cli.Parse(os.Args[1:]))

	if *debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewKitchenTheme())

	settings := config.NewSettings(myApp)
	if *baseURL != "" {
		if err := ui.ValidateBaseURL(*baseURL); err != nil {
			kingpin.Fatalf("invalid --base-url %q: %v", *baseURL, err)
		}
		settings.SetBaseURL(*baseURL)
	}
	if *lang != "" {
		settings.SetLanguage(*lang)
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	root := ui.NewRootUI(myWindow, settings, func(baseURL string) api.RecipeService {
		return api.NewClient(baseURL)
	})
	myWindow.SetOnClosed(root.Close)

	myWindow.ShowAndRun()
}
