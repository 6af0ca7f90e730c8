package i18n

// CheckMessages holds check command translatable strings
type CheckMessages struct {
	Use   string
	Short string
	Long  string

	FlagCodepage string

	DoesNotFit     string
	ChangedSummary string
	UnfitSummary   string
}

// English check messages
var EnglishCheckMessages = CheckMessages{
	Use:   "check [translation file]",
	Short: "Show what cleanup changes in a translation",
	Long: `Show the difference between every translation and the text that will be
patched into the game, and optionally the strings a codepage cannot encode.`,

	FlagCodepage: "Report strings this codepage cannot encode",

	DoesNotFit:     "  %s cannot encode: %s",
	ChangedSummary: "%d of %d translations changed by cleanup",
	UnfitSummary:   "%d translations do not fit %s",
}

// Russian check messages
var RussianCheckMessages = CheckMessages{
	Use:   "check [файл перевода]",
	Short: "Показать изменения перевода при очистке",
	Long: `Показать разницу между каждым переводом и текстом, который будет внедрён
в игру, а также строки, которые не кодируются выбранной кодировкой.`,

	FlagCodepage: "Показать строки, которые не кодируются этой кодировкой",

	DoesNotFit:     "  %s не кодирует: %s",
	ChangedSummary: "Очистка изменила переводов: %d из %d",
	UnfitSummary:   "Переводов, не подходящих для %[2]s: %[1]d",
}
