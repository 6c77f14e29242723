package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/vincent7f/MediaTagger/internal/preview"
	"github.com/vincent7f/MediaTagger/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.vincent7f.media-tagger")
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	myWindow := myApp.NewWindow("Video Dataset Manager")
	myWindow.Resize(fyne.NewSize(800, 600))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, preview.NewService())

	// Show and run
	myWindow.ShowAndRun()
}
