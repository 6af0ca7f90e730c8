package i18n

// DownloadMessages holds download command translatable strings
type DownloadMessages struct {
	Use   string
	Short string
	Long  string

	FlagSource       string
	FlagToken        string
	FlagOrganization string
	FlagProject      string
	FlagLanguage     string
	FlagResources    string
	FlagDir          string
	FlagPattern      string
	FlagAttempts     string

	PromptToken     string
	PromptResources string
	PromptLanguage  string

	Connecting  string
	NoResources string
	Completed   string
	Skipped     string

	ColumnResource string
	ColumnFile     string
	ColumnSize     string
	ColumnStatus   string

	ErrorUnknownSource    string
	ErrorFailedToConnect  string
	ErrorFailedToList     string
	ErrorFailedToDownload string
}

// English download messages
var EnglishDownloadMessages = DownloadMessages{
	Use:   "download",
	Short: "Download translation files",
	Long: `Download the translation files of a language from GitHub or Transifex.

The Transifex API token is read from --token or the TRANSIFEX_TOKEN
environment variable.`,

	FlagSource:       "Where to download from (github, transifex)",
	FlagToken:        "Transifex API token",
	FlagOrganization: "Transifex organization",
	FlagProject:      "Transifex project",
	FlagLanguage:     "Language code to download",
	FlagResources:    "Resources to download (comma-separated)",
	FlagDir:          "Output directory",
	FlagPattern:      "File name pattern with {resource} and {language}",
	FlagAttempts:     "Download attempts per Transifex resource",

	PromptToken:     "Transifex API token:",
	PromptResources: "Resources to download:",
	PromptLanguage:  "Language:",

	Connecting:  "Connecting to %s...",
	NoResources: "No resources available",
	Completed:   "Download completed",
	Skipped:     "skipped",

	ColumnResource: "Resource",
	ColumnFile:     "File",
	ColumnSize:     "Size",
	ColumnStatus:   "Status",

	ErrorUnknownSource:    "Unknown source: %s",
	ErrorFailedToConnect:  "Failed to connect: %v",
	ErrorFailedToList:     "Failed to list translations: %v",
	ErrorFailedToDownload: "Failed to download: %v",
}

// Russian download messages
var RussianDownloadMessages = DownloadMessages{
	Use:   "download",
	Short: "Загрузить файлы перевода",
	Long: `Загрузить файлы перевода для языка с GitHub или Transifex.

Токен API Transifex берётся из --token или переменной окружения
TRANSIFEX_TOKEN.`,

	FlagSource:       "Откуда загружать (github, transifex)",
	FlagToken:        "Токен API Transifex",
	FlagOrganization: "Организация Transifex",
	FlagProject:      "Проект Transifex",
	FlagLanguage:     "Код языка для загрузки",
	FlagResources:    "Ресурсы для загрузки (через запятую)",
	FlagDir:          "Каталог для файлов",
	FlagPattern:      "Шаблон имени файла с {resource} и {language}",
	FlagAttempts:     "Число попыток загрузки ресурса Transifex",

	PromptToken:     "Токен API Transifex:",
	PromptResources: "Ресурсы для загрузки:",
	PromptLanguage:  "Язык:",

	Connecting:  "Подключение к %s...",
	NoResources: "Нет доступных ресурсов",
	Completed:   "Загрузка завершена",
	Skipped:     "пропущен",

	ColumnResource: "Ресурс",
	ColumnFile:     "Файл",
	ColumnSize:     "Размер",
	ColumnStatus:   "Статус",

	ErrorUnknownSource:    "Неизвестный источник: %s",
	ErrorFailedToConnect:  "Не удалось подключиться: %v",
	ErrorFailedToList:     "Не удалось получить список переводов: %v",
	ErrorFailedToDownload: "Не удалось загрузить: %v",
}
