package i18n

// CommonMessages holds common translatable strings
type CommonMessages struct {
	// Error messages
	ErrorInvalidLogLevel     string
	ErrorFailedToSaveConfig  string
	ErrorNoTranslationFile   string
	ErrorFailedToLoadCatalog string
	ErrorUnknownCodepage     string
	ErrorPrompt              string

	// Catalog and codepage messages
	CatalogLoaded      string
	NoCodepageFits     string
	CodepageDoesNotFit string
	PromptExecutable   string

	// Table columns
	ColumnOriginal    string
	ColumnTranslation string

	// Common flag descriptions
	FlagConfig      string
	FlagNoConfig    string
	FlagDebug       string
	FlagLogLevel    string
	FlagUserAgent   string
	FlagLang        string
	FlagNoColor     string
	FlagExecutable  string
	FlagCodepage    string
	FlagNoFixSpaces string
	ElapsedTime     string
}

// English common messages
var EnglishCommonMessages = CommonMessages{
	ErrorInvalidLogLevel:     "Invalid log level: %v",
	ErrorFailedToSaveConfig:  "Failed to save configuration: %v",
	ErrorNoTranslationFile:   "No translation file given and none remembered",
	ErrorFailedToLoadCatalog: "Failed to load translation file: %v",
	ErrorUnknownCodepage:     "Unknown codepage: %s",
	ErrorPrompt:              "Prompt failed: %v",

	CatalogLoaded:      "Translation file loaded",
	NoCodepageFits:     "No codepage can encode every %s translation",
	CodepageDoesNotFit: "Codepage %s cannot encode every translation, unsupported characters will be lost",
	PromptExecutable:   "Path to the game executable:",

	ColumnOriginal:    "Original",
	ColumnTranslation: "Translation",

	FlagConfig:      "Configuration file path",
	FlagNoConfig:    "Do not read or write the configuration file",
	FlagDebug:       "Enable debug logging",
	FlagLogLevel:    "Log level (trace, debug, info, warn, error)",
	FlagUserAgent:   "Custom User-Agent for HTTP requests",
	FlagLang:        "Interface language (en, ru)",
	FlagNoColor:     "Disable colored output",
	FlagExecutable:  "Path to the game executable",
	FlagCodepage:    "Codepage to encode translations with",
	FlagNoFixSpaces: "Do not restore leading and trailing spaces",
	ElapsedTime:     "Time elapsed: %v",
}

// Russian common messages
var RussianCommonMessages = CommonMessages{
	ErrorInvalidLogLevel:     "Неверный уровень журнала: %v",
	ErrorFailedToSaveConfig:  "Не удалось сохранить настройки: %v",
	ErrorNoTranslationFile:   "Файл перевода не указан и не запомнен",
	ErrorFailedToLoadCatalog: "Не удалось загрузить файл перевода: %v",
	ErrorUnknownCodepage:     "Неизвестная кодировка: %s",
	ErrorPrompt:              "Ошибка ввода: %v",

	CatalogLoaded:      "Файл перевода загружен",
	NoCodepageFits:     "Ни одна кодировка не подходит для всех переводов %s",
	CodepageDoesNotFit: "Кодировка %s подходит не для всех переводов, неподдерживаемые символы будут потеряны",
	PromptExecutable:   "Путь к исполняемому файлу игры:",

	ColumnOriginal:    "Оригинал",
	ColumnTranslation: "Перевод",

	FlagConfig:      "Путь к файлу настроек",
	FlagNoConfig:    "Не читать и не записывать файл настроек",
	FlagDebug:       "Включить отладочный журнал",
	FlagLogLevel:    "Уровень журнала (trace, debug, info, warn, error)",
	FlagUserAgent:   "Свой User-Agent для HTTP-запросов",
	FlagLang:        "Язык интерфейса (en, ru)",
	FlagNoColor:     "Отключить цветной вывод",
	FlagExecutable:  "Путь к исполняемому файлу игры",
	FlagCodepage:    "Кодировка для переводов",
	FlagNoFixSpaces: "Не восстанавливать начальные и конечные пробелы",
	ElapsedTime:     "Затрачено времени: %v",
}
