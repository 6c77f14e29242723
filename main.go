package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/vincent7f/MediaTagger/internal/preview"
	"github.com/vincent7f/MediaTagger/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.vincent7f.media-tagger"
	AppName = "Video Dataset Manager"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	previewSvc := preview.NewService()
	if !previewSvc.Available() {
		log.Printf("ffmpeg not found in PATH, preview generation disabled")
	}

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, previewSvc)

	// Show and run
	myWindow.ShowAndRun()
}
