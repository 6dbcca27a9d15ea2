package i18n

var esCOMessages = map[Code]string{
	CodeUnknown:               "Ocurrió un error inesperado",
	CodeNotFound:              "{{if .Group}}No se encontró el grupo {{.Group}} para la materia {{.Subject}}{{else}}No se encontró la materia {{.Subject}}{{end}}",
	CodeGroupEmpty:            "El grupo {{.Group}} no tiene sesiones programadas",
	CodeTimeFormatInvalid:     "Formato de hora inválido: {{.Value}}. Use HH:MM",
	CodeDayInvalid:            "Día de la semana no válido: {{.Value}}",
	CodeSessionKindInvalid:    "Tipo de sesión no válido: {{.Value}}",
	CodeScheduleConflict:      "Conflictos de horario detectados para {{.Subject}} grupo {{.Group}}",
	CodeGroupAlreadyPlaced:    "El grupo {{.Group}} de la materia {{.Subject}} ya está en el horario",
	CodeScheduleSlotEmpty:     "No hay ninguna materia asignada el {{.Day}} a las {{.Slot}}",
	CodeScheduleNothingToUndo: "No hay acciones que deshacer",
	CodeScheduleNothingToRedo: "No hay acciones que rehacer",
	CodeScheduleInconsistent:  "El horario quedó en un estado inconsistente",
	CodeImportRecordInvalid:   "No se pudo leer el archivo de horario",
}
