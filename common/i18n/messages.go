package i18n

import (
	"os"
	"strings"
)

// Language represents supported languages
type Language string

const (
	English Language = "en"
	Russian Language = "ru"
)

// AllMessages holds all translatable strings grouped by command
type AllMessages struct {
	App        AppMessages
	Common     CommonMessages
	Bisect     BisectMessages
	Download   DownloadMessages
	Patch      PatchMessages
	Codepages  CodepagesMessages
	Exclusions ExclusionsMessages
	Check      CheckMessages
}

// CurrentLanguage holds the current language setting
var CurrentLanguage Language = English

// I18nMsg holds the current message set
var I18nMsg AllMessages

// English messages
var EnglishAllMessages = AllMessages{
	App:        EnglishAppMessages,
	Common:     EnglishCommonMessages,
	Bisect:     EnglishBisectMessages,
	Download:   EnglishDownloadMessages,
	Patch:      EnglishPatchMessages,
	Codepages:  EnglishCodepagesMessages,
	Exclusions: EnglishExclusionsMessages,
	Check:      EnglishCheckMessages,
}

// Russian messages
var RussianAllMessages = AllMessages{
	App:        RussianAppMessages,
	Common:     RussianCommonMessages,
	Bisect:     RussianBisectMessages,
	Download:   RussianDownloadMessages,
	Patch:      RussianPatchMessages,
	Codepages:  RussianCodepagesMessages,
	Exclusions: RussianExclusionsMessages,
	Check:      RussianCheckMessages,
}

// DetectLanguage detects the user's language preference based on environment variables
func DetectLanguage() Language {
	envVars := []string{"LC_ALL", "LC_MESSAGES", "LANGUAGE", "LANG"}

	for _, envVar := range envVars {
		if lang := os.Getenv(envVar); lang != "" {
			lang = strings.ToLower(lang)
			if strings.HasPrefix(lang, "ru") || strings.Contains(lang, "russian") {
				return Russian
			}
			return English
		}
	}

	return English
}

// SetLanguage sets the current language and updates messages
func SetLanguage(lang Language) {
	switch Language(strings.ToLower(string(lang))) {
	case Russian:
		CurrentLanguage = Russian
		I18nMsg = RussianAllMessages
	default:
		CurrentLanguage = English
		I18nMsg = EnglishAllMessages
	}
}

// InitLanguage initializes the language system
func InitLanguage() {
	SetLanguage(DetectLanguage())
}
