package i18n

const (
	MsgOK                    = "ok"
	MsgInternalError         = "internalError"
	MsgInvalidBody           = "invalidBody"
	MsgInvalidQuery          = "invalidQuery"
	MsgInvalidID             = "invalidId"
	MsgInvalidDailyHour      = "invalidDailyHour"
	MsgInvalidDateRange      = "invalidDateRange"
	MsgUnknownPeople         = "unknownPeople"
	MsgInvalidTaskStatus     = "invalidTaskStatus"
	MsgDuplicateTaskID       = "duplicateTaskId"
	MsgUnknownLeavePerson    = "unknownLeavePerson"
	MsgSprintNotFound        = "sprintNotFound"
	MsgPersonNotFound        = "personNotFound"
	MsgHolidayNotFound       = "holidayNotFound"
	MsgPersonExists          = "personExists"
	MsgSprintNotDeletable    = "sprintNotDeletable"
	MsgInvalidTransition     = "invalidTransition"
	MsgConfigUpdated         = "configUpdated"
	MsgPersonCreated         = "personCreated"
	MsgPersonUpdated         = "personUpdated"
	MsgPersonDeleted         = "personDeleted"
	MsgHolidaySaved          = "holidaySaved"
	MsgHolidayDeleted        = "holidayDeleted"
	MsgSprintSaved           = "sprintSaved"
	MsgSprintDeleted         = "sprintDeleted"
	MsgPlanningStarted       = "planningStarted"
	MsgSprintCompleted       = "sprintCompleted"
	MsgPlanningInitialized   = "planningInitialized"
	MsgTasksSaved            = "tasksSaved"
	MsgLeavesSaved           = "leavesSaved"
	MsgOptionsSaved          = "optionsSaved"
	MsgNotificationsDisabled = "notificationsDisabled"
)

var dictionaries = map[string]map[string]string{
	LocaleTR: {
		MsgOK:                    "Başarılı",
		MsgInternalError:         "Sunucu hatası",
		MsgInvalidBody:           "İstek gövdesi okunamadı",
		MsgInvalidQuery:          "Geçersiz sorgu parametresi: {0}",
		MsgInvalidID:             "Kimlik yalnızca harf, rakam, - ve _ içerebilir",
		MsgInvalidDailyHour:      "Günlük planlama saati SS:dd biçiminde olmalı: {0}",
		MsgInvalidDateRange:      "Bitiş tarihi başlangıç tarihinden önce olamaz",
		MsgUnknownPeople:         "Tanımsız kişi: {0}",
		MsgInvalidTaskStatus:     "Geçersiz görev durumu: {0}",
		MsgDuplicateTaskID:       "Görev kimliği tekrar ediyor: {0}",
		MsgUnknownLeavePerson:    "İzin kaydındaki kişi tanımsız: {0}",
		MsgSprintNotFound:        "Sprint bulunamadı",
		MsgPersonNotFound:        "Kişi bulunamadı",
		MsgHolidayNotFound:       "Tatil bulunamadı",
		MsgPersonExists:          "Bu kimlikle bir kişi zaten var",
		MsgSprintNotDeletable:    "Yalnızca kaydedilmiş sprintler silinebilir",
		MsgInvalidTransition:     "Sprint bu duruma geçirilemez",
		MsgConfigUpdated:         "Ayarlar güncellendi",
		MsgPersonCreated:         "Kişi eklendi",
		MsgPersonUpdated:         "Kişi güncellendi",
		MsgPersonDeleted:         "Kişi silindi",
		MsgHolidaySaved:          "Tatil kaydedildi",
		MsgHolidayDeleted:        "Tatil silindi",
		MsgSprintSaved:           "Sprint kaydedildi",
		MsgSprintDeleted:         "Sprint silindi",
		MsgPlanningStarted:       "Planlama başlatıldı",
		MsgSprintCompleted:       "Sprint tamamlandı",
		MsgPlanningInitialized:   "Planlama hazırlandı",
		MsgTasksSaved:            "Görevler kaydedildi",
		MsgLeavesSaved:           "İzinler kaydedildi",
		MsgOptionsSaved:          "Seçenekler kaydedildi",
		MsgNotificationsDisabled: "Bildirimler kapalı",
	},
	LocaleEN: {
		MsgOK:                    "OK",
		MsgInternalError:         "Internal server error",
		MsgInvalidBody:           "Request body could not be read",
		MsgInvalidQuery:          "Invalid query parameter: {0}",
		MsgInvalidID:             "Ids may only contain letters, digits, - and _",
		MsgInvalidDailyHour:      "Daily planning hour must be HH:mm: {0}",
		MsgInvalidDateRange:      "End date must not be before start date",
		MsgUnknownPeople:         "Unknown person: {0}",
		MsgInvalidTaskStatus:     "Invalid task status: {0}",
		MsgDuplicateTaskID:       "Duplicate task id: {0}",
		MsgUnknownLeavePerson:    "Leave refers to an unknown person: {0}",
		MsgSprintNotFound:        "Sprint not found",
		MsgPersonNotFound:        "Person not found",
		MsgHolidayNotFound:       "Holiday not found",
		MsgPersonExists:          "A person with this id already exists",
		MsgSprintNotDeletable:    "Only saved sprints can be deleted",
		MsgInvalidTransition:     "Sprint cannot move to this status",
		MsgConfigUpdated:         "Settings updated",
		MsgPersonCreated:         "Person created",
		MsgPersonUpdated:         "Person updated",
		MsgPersonDeleted:         "Person deleted",
		MsgHolidaySaved:          "Holiday saved",
		MsgHolidayDeleted:        "Holiday deleted",
		MsgSprintSaved:           "Sprint saved",
		MsgSprintDeleted:         "Sprint deleted",
		MsgPlanningStarted:       "Planning started",
		MsgSprintCompleted:       "Sprint completed",
		MsgPlanningInitialized:   "Planning initialized",
		MsgTasksSaved:            "Tasks saved",
		MsgLeavesSaved:           "Leaves saved",
		MsgOptionsSaved:          "Options saved",
		MsgNotificationsDisabled: "Notifications are disabled",
	},
}
