package i18n

// ExclusionsMessages holds exclusions command translatable strings
type ExclusionsMessages struct {
	Use   string
	Short string
	Long  string

	ListShort   string
	EditShort   string
	AddShort    string
	RemoveShort string

	FlagLanguage string

	ColumnLanguage string
	PromptSelect   string
	Empty          string
	NoCandidates   string
	Saved          string

	ErrorNoLanguage string
}

// English exclusions messages
var EnglishExclusionsMessages = ExclusionsMessages{
	Use:   "exclusions",
	Short: "Manage space fixing exclusions",
	Long: `Manage the original strings whose leading and trailing spaces are not
copied to the translation.`,

	ListShort:   "List exclusions",
	EditShort:   "Choose exclusions among the strings of a translation file",
	AddShort:    "Add exclusions",
	RemoveShort: "Remove exclusions",

	FlagLanguage: "Language the exclusions apply to",

	ColumnLanguage: "Language",
	PromptSelect:   "Strings excluded from space fixing for %s:",
	Empty:          "No exclusions",
	NoCandidates:   "No strings start or end with a space",
	Saved:          "%d exclusions saved for %s",

	ErrorNoLanguage: "A language is required, use --language",
}

// Russian exclusions messages
var RussianExclusionsMessages = ExclusionsMessages{
	Use:   "exclusions",
	Short: "Исключения исправления пробелов",
	Long: `Управление оригинальными строками, начальные и конечные пробелы которых
не переносятся в перевод.`,

	ListShort:   "Показать исключения",
	EditShort:   "Выбрать исключения среди строк файла перевода",
	AddShort:    "Добавить исключения",
	RemoveShort: "Удалить исключения",

	FlagLanguage: "Язык, к которому относятся исключения",

	ColumnLanguage: "Язык",
	PromptSelect:   "Строки без исправления пробелов для %s:",
	Empty:          "Исключений нет",
	NoCandidates:   "Нет строк, начинающихся или заканчивающихся пробелом",
	Saved:          "Сохранено исключений: %d для %s",

	ErrorNoLanguage: "Нужен язык, укажите --language",
}
