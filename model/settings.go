package model

// SettingsDocument is the full contents of settings.json.
type SettingsDocument struct {
	AdminPassword        string         `json:"admin_password"`
	AutoBackup           bool           `json:"auto_backup"`
	BackupDays           int            `json:"backup_days"`
	SchoolName           string         `json:"school_name"`
	SchoolYear           string         `json:"school_year"`
	Terms                []string       `json:"terms"`
	Subjects             []string       `json:"subjects"`
	StandardWorkingHours StandardHours  `json:"standard_working_hours"`
	TermDaysDefault      int            `json:"term_days_default"`
	TermDays             map[string]int `json:"term_days"`
}

type StandardHours struct {
	Daily        float64 `json:"daily"`
	Weekly       float64 `json:"weekly"`
	OvertimeRate float64 `json:"overtime_rate"`
}

// TermTotalDays resolves the number of school days in a term, preferring the
// explicit per-term mapping over the global default.
func (s *SettingsDocument) TermTotalDays(termKey string) int {
	if days, ok := s.TermDays[termKey]; ok {
		return days
	}
	return s.TermDaysDefault
}
