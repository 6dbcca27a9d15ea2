package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, GroupAddedKey, "Group %s of %s added")
	message.SetString(lang, GroupRemovedKey, "Group %s of %s removed")
	message.SetString(lang, GroupAvailableKey, "Group %s of %s fits in the schedule")
	message.SetString(lang, ActionUndoneKey, "Undone: %s")
	message.SetString(lang, ActionRedoneKey, "Redone: %s")
	message.SetString(lang, ScheduleClearedKey, "Schedule cleared")
	message.SetString(lang, ImportSummaryKey, "Imported %d groups, %d failed")

	message.SetString(lang, CreditLoadLowKey, "Low credit load (%d credits), consider adding subjects")
	message.SetString(lang, CreditLoadNormalKey, "Normal credit load (%d credits)")
	message.SetString(lang, CreditLoadHighKey, "High credit load (%d credits), plan your study time carefully")
	message.SetString(lang, CreditLoadExcessiveKey, "Excessive credit load (%d credits), the maximum is %d")
}
