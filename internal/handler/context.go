package handler

type ContextKey string

var (
	LocaleCtx  ContextKey = "locale"
	SprintCtx  ContextKey = "sprint"
	PersonCtx  ContextKey = "person"
	HolidayCtx ContextKey = "holiday"
)
