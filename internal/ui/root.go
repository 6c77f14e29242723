package ui

import (
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/vincent7f/MediaTagger/internal/config"
	"github.com/vincent7f/MediaTagger/internal/metadata"
	"github.com/vincent7f/MediaTagger/internal/model"
	"github.com/vincent7f/MediaTagger/internal/platform"
	"github.com/vincent7f/MediaTagger/internal/preview"
)

// RootUI represents the main UI structure. It is the single owner of the
// shared application state: the selected dataset directory, the scanned
// video list, the in-memory metadata mapping, and the export selection.
// All mutations happen on the UI thread; the preview worker only receives
// an immutable snapshot of the video list.
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	previewSvc   *preview.Service

	// Application state, mutated on the UI thread only
	datasetDir     string
	videos         []model.Video
	entries        map[string]model.Entry
	exportSelected map[string]bool
	selectedRow    int

	// Widgets
	table         *widget.Table
	dirLabel      *widget.Label
	previewTitle  *widget.Label
	previewImage  *canvas.Image
	statusLabel   *widget.Label
	tagCountsLbl  *widget.Label
	untaggedLbl   *widget.Label
	selectDirBtn  *widget.Button
	refreshBtn    *widget.Button
	editBtn       *widget.Button
	saveBtn       *widget.Button
	exportBtn     *widget.Button
	openBtn       *widget.Button
	revealBtn     *widget.Button
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, previewSvc *preview.Service) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:         window,
		settings:       settings,
		localization:   localization,
		previewSvc:     previewSvc,
		entries:        make(map[string]model.Entry),
		exportSelected: make(map[string]bool),
		selectedRow:    -1,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	previewSvc.SetSeekMs(settings.GetPreviewSeekMs())
	previewSvc.SetUpdateCallback(ui.onPreviewResult)

	ui.setupUI()

	// Restore the dataset from the previous session
	if last := settings.GetLastDatasetDirectory(); last != "" {
		if info, err := os.Stat(last); err == nil && info.IsDir() {
			ui.loadDataset(last)
		}
	}

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.selectDirBtn = widget.NewButton(ui.localization.GetText(KeySelectDirectory), ui.onSelectDirectory)
	ui.refreshBtn = widget.NewButton(ui.localization.GetText(KeyRefresh), ui.onRefresh)
	ui.editBtn = widget.NewButton(ui.localization.GetText(KeyEdit), ui.onEdit)
	ui.saveBtn = widget.NewButton(ui.localization.GetText(KeySave), ui.onSave)
	ui.exportBtn = widget.NewButton(ui.localization.GetText(KeyExport), ui.onExport)
	ui.openBtn = widget.NewButton(ui.localization.GetText(KeyOpen), ui.onOpenExternally)
	ui.revealBtn = widget.NewButton(ui.localization.GetText(KeyReveal), ui.onRevealFile)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.dirLabel = widget.NewLabel(ui.localization.GetText(KeyNoDirectory))
	ui.dirLabel.Truncation = fyne.TextTruncateEllipsis

	toolbar := container.NewHBox(
		ui.selectDirBtn,
		ui.refreshBtn,
		widget.NewSeparator(),
		ui.editBtn,
		ui.saveBtn,
		ui.exportBtn,
		widget.NewSeparator(),
		ui.openBtn,
		ui.revealBtn,
		settingsBtn,
	)
	topPanel := container.NewVBox(toolbar, ui.dirLabel)

	ui.table = widget.NewTable(
		func() (int, int) { return len(ui.videos), ColumnCount },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		ui.updateTableCell,
	)
	ui.table.ShowHeaderRow = true
	ui.table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabel("")
	}
	ui.table.UpdateHeader = ui.updateTableHeader
	ui.table.OnSelected = ui.onCellSelected

	ui.table.SetColumnWidth(ColCheck, CheckColWidth)
	ui.table.SetColumnWidth(ColFilename, FilenameColWidth)
	ui.table.SetColumnWidth(ColPath, PathColWidth)
	ui.table.SetColumnWidth(ColTags, TagsColWidth)
	ui.table.SetColumnWidth(ColNotes, NotesColWidth)

	ui.previewTitle = widget.NewLabel(ui.localization.GetText(KeySelectVideo))
	ui.previewTitle.Alignment = fyne.TextAlignCenter
	ui.previewTitle.Truncation = fyne.TextTruncateEllipsis

	ui.previewImage = canvas.NewImageFromFile("")
	ui.previewImage.FillMode = canvas.ImageFillContain
	ui.previewImage.SetMinSize(fyne.NewSize(PreviewMaxWidth, PreviewMaxHeight))
	ui.previewImage.Hide()

	previewPanel := container.NewBorder(ui.previewTitle, nil, nil, nil, ui.previewImage)

	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeySelectDirToList))
	ui.tagCountsLbl = widget.NewLabel("")
	ui.tagCountsLbl.Wrapping = fyne.TextWrapWord
	ui.untaggedLbl = widget.NewLabel("")
	statusPanel := container.NewVBox(
		widget.NewLabel(ui.localization.GetText(KeyTagsHint)),
		ui.statusLabel,
		ui.tagCountsLbl,
		ui.untaggedLbl,
	)

	split := container.NewHSplit(ui.table, previewPanel)
	split.SetOffset(0.65)

	content := container.NewBorder(
		topPanel,    // top
		statusPanel, // bottom
		nil,         // left
		nil,         // right
		split,       // center
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.selectDirBtn.SetText(ui.localization.GetText(KeySelectDirectory))
	ui.refreshBtn.SetText(ui.localization.GetText(KeyRefresh))
	ui.editBtn.SetText(ui.localization.GetText(KeyEdit))
	ui.saveBtn.SetText(ui.localization.GetText(KeySave))
	ui.exportBtn.SetText(ui.localization.GetText(KeyExport))
	ui.openBtn.SetText(ui.localization.GetText(KeyOpen))
	ui.revealBtn.SetText(ui.localization.GetText(KeyReveal))

	ui.updateStatusPanel()
	ui.table.Refresh()
}

// updateTableHeader fills header cells with localized column titles
func (ui *RootUI) updateTableHeader(id widget.TableCellID, obj fyne.CanvasObject) {
	label, ok := obj.(*widget.Label)
	if !ok {
		return
	}
	switch id.Col {
	case ColCheck:
		label.SetText("")
	case ColFilename:
		label.SetText(ui.localization.GetText(KeyColFilename))
	case ColPath:
		label.SetText(ui.localization.GetText(KeyColPath))
	case ColTags:
		label.SetText(ui.localization.GetText(KeyColTags))
	case ColNotes:
		label.SetText(ui.localization.GetText(KeyColNotes))
	}
}

// updateTableCell fills one table cell with current data
func (ui *RootUI) updateTableCell(id widget.TableCellID, obj fyne.CanvasObject) {
	label, ok := obj.(*widget.Label)
	if !ok {
		return
	}
	if id.Row < 0 || id.Row >= len(ui.videos) {
		label.SetText("")
		return
	}

	video := ui.videos[id.Row]
	entry := ui.entries[video.Path]

	switch id.Col {
	case ColCheck:
		if ui.exportSelected[video.Path] {
			label.SetText(CheckboxChecked)
		} else {
			label.SetText(CheckboxUnchecked)
		}
	case ColFilename:
		label.SetText(video.Name())
	case ColPath:
		label.SetText(video.RelPath)
	case ColTags:
		label.SetText(entry.Tags)
	case ColNotes:
		label.SetText(entry.Notes)
	}
}

// onCellSelected routes table taps: the checkbox column toggles the export
// mark, the tags/notes columns open the editor, any tap selects the row and
// refreshes the preview panel.
func (ui *RootUI) onCellSelected(id widget.TableCellID) {
	if id.Row < 0 || id.Row >= len(ui.videos) {
		return
	}
	ui.selectedRow = id.Row
	video := ui.videos[id.Row]

	switch id.Col {
	case ColCheck:
		if ui.exportSelected[video.Path] {
			delete(ui.exportSelected, video.Path)
		} else {
			ui.exportSelected[video.Path] = true
		}
		ui.table.Refresh()
	case ColTags, ColNotes:
		ui.onEdit()
	}

	ui.updatePreviewPanel()
}

// selectedVideo returns the video of the currently selected row
func (ui *RootUI) selectedVideo() (model.Video, bool) {
	if ui.selectedRow < 0 || ui.selectedRow >= len(ui.videos) {
		return model.Video{}, false
	}
	return ui.videos[ui.selectedRow], true
}

// onSelectDirectory shows the dataset directory picker
func (ui *RootUI) onSelectDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.loadDataset(uri.Path())
	}, ui.window)
}

// onRefresh rescans the current dataset directory
func (ui *RootUI) onRefresh() {
	if ui.datasetDir == "" {
		dialog.ShowInformation(ui.localization.GetText(KeyAppTitle),
			ui.localization.GetText(KeySelectDirFirst), ui.window)
		return
	}
	ui.loadDataset(ui.datasetDir)
}

// loadDataset scans the directory, merges stored metadata against the
// current video list and kicks off a fresh background preview sweep.
// The sweep is restarted from scratch on every (re)load; an in-flight sweep
// for a previous directory is left to finish on its own.
func (ui *RootUI) loadDataset(dir string) {
	ui.datasetDir = dir
	ui.settings.SetLastDatasetDirectory(dir)
	ui.dirLabel.SetText(dir)

	ui.selectedRow = -1
	ui.exportSelected = make(map[string]bool)
	ui.videos = platform.ScanVideos(dir)
	ui.entries = metadata.Merge(ui.videos, metadata.Load(dir))

	log.Printf("Loaded dataset %s: %d video(s)", dir, len(ui.videos))

	ui.table.UnselectAll()
	ui.table.Refresh()
	ui.updateStatusPanel()
	ui.updatePreviewPanel()

	if ui.settings.GetGeneratePreviews() {
		ui.previewSvc.SetSeekMs(ui.settings.GetPreviewSeekMs())
		if sweep := ui.previewSvc.StartSweep(dir, ui.videos); sweep != nil {
			log.Printf("Started preview sweep %s for %d video(s)", sweep.ID, sweep.Total)
		}
	}
}

// updateStatusPanel refreshes the bottom status labels
func (ui *RootUI) updateStatusPanel() {
	if ui.datasetDir == "" {
		ui.statusLabel.SetText(ui.localization.GetText(KeySelectDirToList))
		ui.tagCountsLbl.SetText("")
		ui.untaggedLbl.SetText("")
		return
	}

	ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyVideoCountStatus), len(ui.videos)))

	counts := metadata.CountTags(ui.entries)
	ui.tagCountsLbl.SetText(ui.localization.GetText(KeyTagCounts) + ": " + metadata.FormatTagCounts(counts))
	ui.untaggedLbl.SetText(fmt.Sprintf(ui.localization.GetText(KeyFilesWithoutTags), metadata.CountUntagged(ui.entries)))
}

// updatePreviewPanel shows the cached preview for the selected row, or a
// placeholder when none has been generated yet.
func (ui *RootUI) updatePreviewPanel() {
	video, ok := ui.selectedVideo()
	if !ok || ui.datasetDir == "" {
		ui.previewTitle.SetText(ui.localization.GetText(KeySelectVideo))
		ui.clearPreviewImage()
		return
	}

	previewPath := preview.Path(ui.datasetDir, video.Path)
	if _, err := os.Stat(previewPath); err == nil {
		ui.showPreviewImage(previewPath, video.Name())
	} else {
		ui.previewTitle.SetText(video.Name() + " " + ui.localization.GetText(KeyNoPreviewYet))
		ui.clearPreviewImage()
	}
}

// showPreviewImage loads a preview JPEG into the panel
func (ui *RootUI) showPreviewImage(path, title string) {
	ui.previewTitle.SetText(title)
	ui.previewImage.File = path
	ui.previewImage.Show()
	ui.previewImage.Refresh()
}

// clearPreviewImage hides the preview image area
func (ui *RootUI) clearPreviewImage() {
	ui.previewImage.File = ""
	ui.previewImage.Hide()
	ui.previewImage.Refresh()
}

// onPreviewResult handles per-item notifications from the sweep worker.
// It runs on the worker goroutine, so the UI update is marshaled via
// fyne.Do, and the preview is applied only if it still belongs to the
// currently selected row. Results from a stale sweep of a previously
// loaded directory simply fail this check.
func (ui *RootUI) onPreviewResult(result *model.PreviewResult) {
	if !result.OK {
		return
	}
	fyne.Do(func() {
		video, ok := ui.selectedVideo()
		if !ok || ui.datasetDir == "" {
			return
		}
		if preview.Path(ui.datasetDir, video.Path) == result.PreviewPath {
			ui.showPreviewImage(result.PreviewPath, video.Name())
		}
	})
}

// onEdit opens the tags/notes editor for the selected row
func (ui *RootUI) onEdit() {
	video, ok := ui.selectedVideo()
	if !ok {
		dialog.ShowInformation(ui.localization.GetText(KeyEdit),
			ui.localization.GetText(KeySelectRowFirst), ui.window)
		return
	}

	ShowEditDialog(ui.window, ui.localization, ui.entries[video.Path], func(entry model.Entry) {
		ui.entries[video.Path] = entry
		ui.table.Refresh()
		ui.updateStatusPanel()
	})
}

// onSave persists the in-memory mapping to the sidecar file. On failure the
// error is shown and the in-memory state stays untouched.
func (ui *RootUI) onSave() {
	if ui.datasetDir == "" {
		dialog.ShowInformation(ui.localization.GetText(KeySave),
			ui.localization.GetText(KeySelectDirFirst), ui.window)
		return
	}

	if err := metadata.Save(ui.datasetDir, ui.entries); err != nil {
		log.Printf("Save failed for %s: %v", ui.datasetDir, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorSaving), err), ui.window)
		return
	}

	counts := metadata.CountTags(ui.entries)
	log.Printf("Tag counts (saved): %s", metadata.FormatTagCounts(counts))

	ui.statusLabel.SetText(ui.localization.GetText(KeySavedTo) + " " + metadata.Path(ui.datasetDir))
	ui.tagCountsLbl.SetText(ui.localization.GetText(KeyTagCounts) + ": " + metadata.FormatTagCounts(counts))
	ui.untaggedLbl.SetText(fmt.Sprintf(ui.localization.GetText(KeyFilesWithoutTags), metadata.CountUntagged(ui.entries)))
}

// onExport writes the checked file paths to a user-chosen text file
func (ui *RootUI) onExport() {
	if len(ui.exportSelected) == 0 {
		dialog.ShowInformation(ui.localization.GetText(KeyExport),
			ui.localization.GetText(KeyNothingToExport), ui.window)
		return
	}

	paths := make([]string, 0, len(ui.exportSelected))
	for path := range ui.exportSelected {
		paths = append(paths, path)
	}

	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		destPath := writer.URI().Path()
		writer.Close()

		if err := platform.ExportPaths(destPath, paths); err != nil {
			log.Printf("Export failed for %s: %v", destPath, err)
			dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorExporting), err), ui.window)
			return
		}

		dialog.ShowInformation(ui.localization.GetText(KeyExport),
			fmt.Sprintf("%s: %d → %s", ui.localization.GetText(KeyExportedTo), len(paths), destPath),
			ui.window)
	}, ui.window)
}

// onOpenExternally opens the selected video with the default application.
// A missing file and a failed handler launch are reported as distinct errors.
func (ui *RootUI) onOpenExternally() {
	video, ok := ui.selectedVideo()
	if !ok {
		dialog.ShowInformation(ui.localization.GetText(KeyOpen),
			ui.localization.GetText(KeySelectRowFirst), ui.window)
		return
	}

	if err := platform.OpenFileWithDefaultApp(video.Path); err != nil {
		log.Printf("Error opening file %s: %v", video.Path, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onRevealFile shows the selected video in the system file manager
func (ui *RootUI) onRevealFile() {
	video, ok := ui.selectedVideo()
	if !ok {
		dialog.ShowInformation(ui.localization.GetText(KeyReveal),
			ui.localization.GetText(KeySelectRowFirst), ui.window)
		return
	}

	if err := platform.OpenFileInManager(video.Path); err != nil {
		log.Printf("Error revealing file %s: %v", video.Path, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.previewSvc.SetSeekMs(ui.settings.GetPreviewSeekMs())
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	})
}
