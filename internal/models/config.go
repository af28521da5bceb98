package models

// UserConfig is the single persisted user configuration record.
type UserConfig struct {
	DarkMode             bool   `json:"darkMode"`
	HardMode             bool   `json:"hardMode"`
	StatsImported        bool   `json:"statsImported"`
	TutorialShown        bool   `json:"tutorialShown"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	AppriseURL           string `json:"appriseUrl"`
	ReminderTime         string `json:"reminderTime"`
}

// DefaultUserConfig returns the configuration used before the user has saved
// anything.
func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		ReminderTime: "20:00",
	}
}
