package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySelectDirectory   = "select_directory"
	KeyNoDirectory       = "no_directory"
	KeyRefresh           = "refresh"
	KeyEdit              = "edit"
	KeySave              = "save"
	KeyExport            = "export"
	KeyOpen              = "open"
	KeyReveal            = "reveal"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyCancel            = "cancel"
	KeyOK                = "ok"
	KeyColFilename       = "col_filename"
	KeyColPath           = "col_path"
	KeyColTags           = "col_tags"
	KeyColNotes          = "col_notes"
	KeyTagsHint          = "tags_hint"
	KeySelectVideo       = "select_video"
	KeyNoPreviewYet      = "no_preview_yet"
	KeySelectRowFirst    = "select_row_first"
	KeySelectDirFirst    = "select_dir_first"
	KeyNothingToExport   = "nothing_to_export"
	KeySavedTo           = "saved_to"
	KeyExportedTo        = "exported_to"
	KeyErrorSaving       = "error_saving"
	KeyErrorExporting    = "error_exporting"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyEditDialogTitle   = "edit_dialog_title"
	KeyPreview           = "preview"
	KeyGeneratePreviews  = "generate_previews"
	KeyPreviewSeekMs     = "preview_seek_ms"
	KeySettingsSaved     = "settings_saved"
	KeyVideoCountStatus  = "video_count_status"
	KeyTagCounts         = "tag_counts"
	KeyFilesWithoutTags  = "files_without_tags"
	KeySelectDirToList   = "select_dir_to_list"
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
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Dataset Video Manager",
		KeySelectDirectory:  "Select directory",
		KeyNoDirectory:      "(no directory selected)",
		KeyRefresh:          "Refresh",
		KeyEdit:             "Edit",
		KeySave:             "Save",
		KeyExport:           "Export",
		KeyOpen:             "Open",
		KeyReveal:           "Reveal",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyCancel:           "Cancel",
		KeyOK:               "OK",
		KeyColFilename:      "Filename",
		KeyColPath:          "Path (relative to selected folder)",
		KeyColTags:          "Tags (, or ; or space separated)",
		KeyColNotes:         "Notes",
		KeyTagsHint:         "Tags: semicolon, comma or space separated. Stored as semicolon-separated.",
		KeySelectVideo:      "Select a video.",
		KeyNoPreviewYet:     "(no preview yet)",
		KeySelectRowFirst:   "Select a row to edit.",
		KeySelectDirFirst:   "Please select a directory first.",
		KeyNothingToExport:  "No files selected for export.",
		KeySavedTo:          "Saved to",
		KeyExportedTo:       "Exported",
		KeyErrorSaving:      "Failed to save",
		KeyErrorExporting:   "Failed to export",
		KeyErrorOpeningFile: "Error opening file",
		KeyEditDialogTitle:  "Edit tags and notes",
		KeyPreview:          "Preview",
		KeyGeneratePreviews: "Generate previews in background",
		KeyPreviewSeekMs:    "Preview frame offset (ms)",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyVideoCountStatus: "%d video(s) (including subfolders).",
		KeyTagCounts:        "Tag counts",
		KeyFilesWithoutTags: "Files without tags: %d",
		KeySelectDirToList:  "Select a directory to list videos.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Менеджер видеодатасета",
		KeySelectDirectory:  "Выбрать папку",
		KeyNoDirectory:      "(папка не выбрана)",
		KeyRefresh:          "Обновить",
		KeyEdit:             "Править",
		KeySave:             "Сохранить",
		KeyExport:           "Экспорт",
		KeyOpen:             "Открыть",
		KeyReveal:           "Показать в папке",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyCancel:           "Отмена",
		KeyOK:               "ОК",
		KeyColFilename:      "Имя файла",
		KeyColPath:          "Путь (относительно выбранной папки)",
		KeyColTags:          "Теги (через , ; или пробел)",
		KeyColNotes:         "Заметки",
		KeyTagsHint:         "Теги: через точку с запятой, запятую или пробел. Хранятся через точку с запятой.",
		KeySelectVideo:      "Выберите видео.",
		KeyNoPreviewYet:     "(превью ещё нет)",
		KeySelectRowFirst:   "Выберите строку для правки.",
		KeySelectDirFirst:   "Сначала выберите папку.",
		KeyNothingToExport:  "Нет файлов для экспорта.",
		KeySavedTo:          "Сохранено в",
		KeyExportedTo:       "Экспортировано",
		KeyErrorSaving:      "Не удалось сохранить",
		KeyErrorExporting:   "Не удалось экспортировать",
		KeyErrorOpeningFile: "Ошибка открытия файла",
		KeyEditDialogTitle:  "Правка тегов и заметок",
		KeyPreview:          "Превью",
		KeyGeneratePreviews: "Генерировать превью в фоне",
		KeyPreviewSeekMs:    "Смещение кадра превью (мс)",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyVideoCountStatus: "%d видео (включая подпапки).",
		KeyTagCounts:        "Счётчики тегов",
		KeyFilesWithoutTags: "Файлов без тегов: %d",
		KeySelectDirToList:  "Выберите папку со списком видео.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Gerenciador de Vídeos do Dataset",
		KeySelectDirectory:  "Selecionar diretório",
		KeyNoDirectory:      "(nenhum diretório selecionado)",
		KeyRefresh:          "Atualizar",
		KeyEdit:             "Editar",
		KeySave:             "Salvar",
		KeyExport:           "Exportar",
		KeyOpen:             "Abrir",
		KeyReveal:           "Mostrar na pasta",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyCancel:           "Cancelar",
		KeyOK:               "OK",
		KeyColFilename:      "Nome do arquivo",
		KeyColPath:          "Caminho (relativo à pasta selecionada)",
		KeyColTags:          "Tags (separadas por , ; ou espaço)",
		KeyColNotes:         "Notas",
		KeyTagsHint:         "Tags: separadas por ponto e vírgula, vírgula ou espaço. Armazenadas com ponto e vírgula.",
		KeySelectVideo:      "Selecione um vídeo.",
		KeyNoPreviewYet:     "(sem prévia ainda)",
		KeySelectRowFirst:   "Selecione uma linha para editar.",
		KeySelectDirFirst:   "Selecione um diretório primeiro.",
		KeyNothingToExport:  "Nenhum arquivo selecionado para exportar.",
		KeySavedTo:          "Salvo em",
		KeyExportedTo:       "Exportado",
		KeyErrorSaving:      "Falha ao salvar",
		KeyErrorExporting:   "Falha ao exportar",
		KeyErrorOpeningFile: "Erro ao abrir arquivo",
		KeyEditDialogTitle:  "Editar tags e notas",
		KeyPreview:          "Prévia",
		KeyGeneratePreviews: "Gerar prévias em segundo plano",
		KeyPreviewSeekMs:    "Deslocamento do quadro da prévia (ms)",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyVideoCountStatus: "%d vídeo(s) (incluindo subpastas).",
		KeyTagCounts:        "Contagem de tags",
		KeyFilesWithoutTags: "Arquivos sem tags: %d",
		KeySelectDirToList:  "Selecione um diretório para listar vídeos.",
	}
}
