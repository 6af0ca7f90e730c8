package i18n

// BisectMessages holds bisect command translatable strings
type BisectMessages struct {
	Use   string
	Short string
	Long  string

	FlagSession   string
	FlagNoPreview string
	FlagShowLimit string

	// Menu
	PromptAction    string
	ActionSplit     string
	ActionSelect    string
	ActionMarkBad   string
	ActionMarkGood  string
	ActionClearMark string
	ActionShow      string
	ActionPatch     string
	ActionExport    string
	ActionSave      string
	ActionReset     string
	ActionQuit      string

	PromptNodes       string
	PromptExportPath  string
	PromptSessionPath string

	EmptyCatalog     string
	SelectionSummary string
	NothingToSplit   string
	SingleStringLeft string
	MoreStrings      string
	Exported         string
	SessionSaved     string
	SessionRestored  string
	SessionMismatch  string

	ErrorFailedToExport  string
	ErrorFailedToSave    string
	ErrorFailedToRestore string
}

// English bisect messages
var EnglishBisectMessages = BisectMessages{
	Use:   "bisect [translation file]",
	Short: "Find the translation that breaks the game",
	Long: `Split the translation strings in halves and patch the game with a part of them
at a time. Mark the halves that crash the game as bad and keep splitting
them until a single string is left.`,

	FlagSession:   "Session file to restore from and save to",
	FlagNoPreview: "Do not show string previews in the tree",
	FlagShowLimit: "Maximum number of strings shown at once (0 for all)",

	PromptAction:    "Action:",
	ActionSplit:     "Split selected node",
	ActionSelect:    "Select nodes",
	ActionMarkBad:   "Mark selected as bad",
	ActionMarkGood:  "Mark selected as good",
	ActionClearMark: "Clear mark",
	ActionShow:      "Show selected strings",
	ActionPatch:     "Patch game with selected strings",
	ActionExport:    "Export selected strings",
	ActionSave:      "Save session",
	ActionReset:     "Start over",
	ActionQuit:      "Quit",

	PromptNodes:       "Nodes to select:",
	PromptExportPath:  "Export to:",
	PromptSessionPath: "Session file:",

	EmptyCatalog:     "The translation file has no translated strings",
	SelectionSummary: "Selected %d of %d strings",
	NothingToSplit:   "Select a single node with at least two strings to split",
	SingleStringLeft: "Single string left: %s => %s",
	MoreStrings:      "... and %d more",
	Exported:         "Exported %d strings to %s",
	SessionSaved:     "Session saved to %s",
	SessionRestored:  "Session %s restored from %s",
	SessionMismatch:  "The session was recorded for a different translation, starting over",

	ErrorFailedToExport:  "Failed to export strings: %v",
	ErrorFailedToSave:    "Failed to save session: %v",
	ErrorFailedToRestore: "Failed to restore session, starting over: %v",
}

// Russian bisect messages
var RussianBisectMessages = BisectMessages{
	Use:   "bisect [файл перевода]",
	Short: "Найти перевод, ломающий игру",
	Long: `Разделить строки перевода пополам и внедрять в игру часть из них за раз.
Отмечайте половины, на которых игра падает, как плохие и делите их дальше,
пока не останется одна строка.`,

	FlagSession:   "Файл сессии для восстановления и сохранения",
	FlagNoPreview: "Не показывать строки в дереве",
	FlagShowLimit: "Сколько строк показывать за раз (0 для всех)",

	PromptAction:    "Действие:",
	ActionSplit:     "Разделить выбранный узел",
	ActionSelect:    "Выбрать узлы",
	ActionMarkBad:   "Отметить выбранные как плохие",
	ActionMarkGood:  "Отметить выбранные как хорошие",
	ActionClearMark: "Снять отметку",
	ActionShow:      "Показать выбранные строки",
	ActionPatch:     "Внедрить выбранные строки в игру",
	ActionExport:    "Экспортировать выбранные строки",
	ActionSave:      "Сохранить сессию",
	ActionReset:     "Начать заново",
	ActionQuit:      "Выход",

	PromptNodes:       "Выберите узлы:",
	PromptExportPath:  "Экспортировать в:",
	PromptSessionPath: "Файл сессии:",

	EmptyCatalog:     "В файле перевода нет переведённых строк",
	SelectionSummary: "Выбрано строк: %d из %d",
	NothingToSplit:   "Для разделения выберите один узел хотя бы с двумя строками",
	SingleStringLeft: "Осталась одна строка: %s => %s",
	MoreStrings:      "... и ещё %d",
	Exported:         "Экспортировано строк: %d в %s",
	SessionSaved:     "Сессия сохранена в %s",
	SessionRestored:  "Сессия %s восстановлена из %s",
	SessionMismatch:  "Сессия записана для другого перевода, начинаем заново",

	ErrorFailedToExport:  "Не удалось экспортировать строки: %v",
	ErrorFailedToSave:    "Не удалось сохранить сессию: %v",
	ErrorFailedToRestore: "Не удалось восстановить сессию, начинаем заново: %v",
}
