package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Spanish

	message.SetString(lang, GroupAddedKey, "Grupo %s de %s agregado")
	message.SetString(lang, GroupRemovedKey, "Grupo %s de %s eliminado")
	message.SetString(lang, GroupAvailableKey, "El grupo %s de %s cabe en el horario")
	message.SetString(lang, ActionUndoneKey, "Deshecho: %s")
	message.SetString(lang, ActionRedoneKey, "Rehecho: %s")
	message.SetString(lang, ScheduleClearedKey, "Horario limpiado")
	message.SetString(lang, ImportSummaryKey, "Se importaron %d grupos, %d con errores")

	message.SetString(lang, CreditLoadLowKey, "Carga baja de créditos (%d), considera agregar materias")
	message.SetString(lang, CreditLoadNormalKey, "Carga normal de créditos (%d)")
	message.SetString(lang, CreditLoadHighKey, "Carga alta de créditos (%d), planifica bien tu tiempo de estudio")
	message.SetString(lang, CreditLoadExcessiveKey, "Carga excesiva de créditos (%d), el máximo es %d")
}
