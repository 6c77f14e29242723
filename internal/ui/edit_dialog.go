package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/vincent7f/MediaTagger/internal/metadata"
	"github.com/vincent7f/MediaTagger/internal/model"
)

// ShowEditDialog opens the tags/notes editor for a single video. On confirm
// the tags are normalized and the callback receives the resulting entry;
// cancelling leaves the stored entry untouched.
func ShowEditDialog(window fyne.Window, localization *Localization, entry model.Entry, onSave func(model.Entry)) {
	tagsEntry := widget.NewEntry()
	tagsEntry.SetText(entry.Tags)
	tagsEntry.SetPlaceHolder(localization.GetText(KeyColTags))

	notesEntry := widget.NewMultiLineEntry()
	notesEntry.SetText(entry.Notes)
	notesEntry.Wrapping = fyne.TextWrapWord

	form := container.NewVBox(
		widget.NewLabel(localization.GetText(KeyColTags)),
		tagsEntry,
		widget.NewLabel(localization.GetText(KeyColNotes)),
		notesEntry,
		widget.NewLabel(localization.GetText(KeyTagsHint)),
	)

	editDialog := dialog.NewCustomConfirm(
		localization.GetText(KeyEditDialogTitle),
		localization.GetText(KeyOK),
		localization.GetText(KeyCancel),
		form,
		func(confirmed bool) {
			if !confirmed {
				return
			}
			onSave(model.Entry{
				Tags:  metadata.NormalizeTags(tagsEntry.Text),
				Notes: strings.TrimSpace(notesEntry.Text),
			})
		},
		window,
	)

	editDialog.Resize(fyne.NewSize(EditDialogWidth, EditDialogHeight))
	editDialog.Show()
}
