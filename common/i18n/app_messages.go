package i18n

// AppMessages holds application-level translatable strings
type AppMessages struct {
	AppDescription     string
	AppLongDescription string

	// Version command messages
	VersionTitle            string
	VersionLabel            string
	GoVersionLabel          string
	PlatformLabel           string
	SessionCompressionLabel string
	VersionCmdShort         string
	VersionCmdLong          string
}

// English app messages
var EnglishAppMessages = AppMessages{
	AppDescription: "Dwarf Fortress translation helper",
	AppLongDescription: `A tool for downloading Dwarf Fortress translations and patching them into the game.

When a translation crashes the game, the bisect command narrows the
strings down by patching halves of the catalog until the culprit is found.`,

	VersionTitle:            "df-translate",
	VersionLabel:            "Version",
	GoVersionLabel:          "Go Version",
	PlatformLabel:           "Platform",
	SessionCompressionLabel: "Session compression",
	VersionCmdShort:         "Show version information",
	VersionCmdLong:          "Display version information including the session compression codecs",
}

// Russian app messages
var RussianAppMessages = AppMessages{
	AppDescription: "Помощник перевода Dwarf Fortress",
	AppLongDescription: `Инструмент для загрузки переводов Dwarf Fortress и их внедрения в игру.

Если перевод приводит к падению игры, команда bisect сужает круг строк,
внедряя половины каталога, пока виновная строка не будет найдена.`,

	VersionTitle:            "df-translate",
	VersionLabel:            "Версия",
	GoVersionLabel:          "Версия Go",
	PlatformLabel:           "Платформа",
	SessionCompressionLabel: "Сжатие сессий",
	VersionCmdShort:         "Показать информацию о версии",
	VersionCmdLong:          "Показать информацию о версии, включая кодеки сжатия сессий",
}
