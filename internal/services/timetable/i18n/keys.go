// Package i18n holds localized success and advisory messages produced by
// the schedule engine. Failure messages come from the platform error catalog.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. Each is registered for every supported language.
const (
	GroupAddedKey      = "schedule.group.added"
	GroupRemovedKey    = "schedule.group.removed"
	GroupAvailableKey  = "schedule.group.available"
	ActionUndoneKey    = "schedule.action.undone"
	ActionRedoneKey    = "schedule.action.redone"
	ScheduleClearedKey = "schedule.cleared"
	ImportSummaryKey   = "schedule.import.summary"

	CreditLoadLowKey       = "schedule.credits.low"
	CreditLoadNormalKey    = "schedule.credits.normal"
	CreditLoadHighKey      = "schedule.credits.high"
	CreditLoadExcessiveKey = "schedule.credits.excessive"
)

var supported = []language.Tag{language.English, language.Spanish}

var matcher = language.NewMatcher(supported)

// Printer returns a message printer for the best supported match of locale,
// falling back to English.
func Printer(locale string) *message.Printer {
	return message.NewPrinter(Match(locale))
}

// Match resolves a locale string ("es-CO", "en") to a supported language.
func Match(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	_, index, _ := matcher.Match(tag)
	return supported[index]
}
