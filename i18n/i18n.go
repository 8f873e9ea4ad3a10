package i18n

import (
	"log"
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"
)

var lang string

var translations = map[string]map[string]string{
	"Historic dates": {
		"ru": "Исторические даты",
	},
	"Start date": {
		"ru": "Начальная дата",
	},
	"End date": {
		"ru": "Конечная дата",
	},
	"Event %d of %d": {
		"ru": "Событие %d из %d",
	},
}

func init() {
	// Check for override environment variable
	if forcedLang := strings.TrimSpace(os.Getenv("HISTDATES_LANG")); forcedLang != "" {
		log.Printf("HISTDATES_LANG is set to: '%s'", forcedLang)
		lang = forcedLang
		return
	}

	userLocales, err := locale.GetLocales()
	if err != nil || len(userLocales) == 0 {
		lang = "en"
		return
	}
	lang = detect(userLocales[0])
	log.Printf("Label language set to: %s", lang)
}

func detect(userLocale string) string {
	if strings.HasPrefix(userLocale, "ru") {
		return "ru"
	}
	return "en"
}

// T returns the label for key in the detected language, or key itself.
func T(key string) string {
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}
