package i18n

// CodepagesMessages holds codepages command translatable strings
type CodepagesMessages struct {
	Use   string
	Short string
	Long  string

	FlagLanguage string

	Title          string
	ColumnCodepage string
	Remembered     string

	ErrorNoLanguage   string
	ErrorFailedToScan string
}

// English codepages messages
var EnglishCodepagesMessages = CodepagesMessages{
	Use:   "codepages [translation file or directory]",
	Short: "List codepages that can encode a translation",
	Long: `List the codepages that can encode every translated string of a file,
or of all files of a language in a directory.`,

	FlagLanguage: "Language of the files when a directory is given",

	Title:          "Codepages for %s",
	ColumnCodepage: "Codepage",
	Remembered:     "remembered",

	ErrorNoLanguage:   "A language is required to scan a directory",
	ErrorFailedToScan: "Failed to scan translation files: %v",
}

// Russian codepages messages
var RussianCodepagesMessages = CodepagesMessages{
	Use:   "codepages [файл перевода или каталог]",
	Short: "Список кодировок, подходящих для перевода",
	Long: `Показать кодировки, которыми можно закодировать все переведённые строки
файла или всех файлов языка в каталоге.`,

	FlagLanguage: "Язык файлов, если указан каталог",

	Title:          "Кодировки для %s",
	ColumnCodepage: "Кодировка",
	Remembered:     "запомнена",

	ErrorNoLanguage:   "Для проверки каталога нужен язык",
	ErrorFailedToScan: "Не удалось проверить файлы перевода: %v",
}
