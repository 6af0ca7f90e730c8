package i18n

// PatchMessages holds patch command translatable strings
type PatchMessages struct {
	Use   string
	Short string
	Long  string

	FlagDebugPatcher string

	UsingCodepage      string
	Completed          string
	ErrorFailedToPatch string
}

// English patch messages
var EnglishPatchMessages = PatchMessages{
	Use:   "patch [translation file]",
	Short: "Patch the game executable with a translation",
	Long: `Clean up the translation, restore leading and trailing spaces and run the
patcher on the game executable with the chosen codepage.`,

	FlagDebugPatcher: "Run the patcher in debug mode",

	UsingCodepage:      "Using codepage %s",
	Completed:          "Patching completed",
	ErrorFailedToPatch: "Failed to patch: %v",
}

// Russian patch messages
var RussianPatchMessages = PatchMessages{
	Use:   "patch [файл перевода]",
	Short: "Внедрить перевод в исполняемый файл игры",
	Long: `Очистить перевод, восстановить начальные и конечные пробелы и запустить
патчер для исполняемого файла игры с выбранной кодировкой.`,

	FlagDebugPatcher: "Запустить патчер в режиме отладки",

	UsingCodepage:      "Используется кодировка %s",
	Completed:          "Внедрение завершено",
	ErrorFailedToPatch: "Не удалось внедрить перевод: %v",
}
