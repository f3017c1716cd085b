package domain

// NotificationPrefs groups opt-ins for outbound notifications.
type NotificationPrefs struct {
	Email            bool `json:"email"`
	Push             bool `json:"push"`
	WeeklyReports    bool `json:"weekly_reports"`
	TaskReminders    bool `json:"task_reminders"`
	CommunityUpdates bool `json:"community_updates"`
}

// AppearancePrefs groups display options.
type AppearancePrefs struct {
	DarkMode          bool   `json:"dark_mode"`
	CompactLayout     bool   `json:"compact_layout"`
	Animations        bool   `json:"animations"`
	ShowSidebarLabels bool   `json:"show_sidebar_labels"`
	Language          string `json:"language"`
}

// PrivacyPrefs groups visibility and security toggles.
type PrivacyPrefs struct {
	ProfileVisible   bool `json:"profile_visible"`
	ActivityStatus   bool `json:"activity_status"`
	TwoFactorEnabled bool `json:"two_factor_enabled"`
}

// DataPrefs groups persistence behavior toggles.
type DataPrefs struct {
	AutoSave    bool `json:"auto_save"`
	SyncDevices bool `json:"sync_devices"`
}

// Preferences is the singleton settings record.
type Preferences struct {
	Notifications NotificationPrefs `json:"notifications"`
	Appearance    AppearancePrefs   `json:"appearance"`
	Privacy       PrivacyPrefs      `json:"privacy"`
	Data          DataPrefs         `json:"data"`
}

// DefaultPreferences returns the out-of-the-box settings, also used by reset.
func DefaultPreferences() Preferences {
	return Preferences{
		Notifications: NotificationPrefs{
			Email:            true,
			Push:             false,
			WeeklyReports:    true,
			TaskReminders:    true,
			CommunityUpdates: false,
		},
		Appearance: AppearancePrefs{
			DarkMode:          true,
			CompactLayout:     false,
			Animations:        true,
			ShowSidebarLabels: true,
			Language:          "en",
		},
		Privacy: PrivacyPrefs{
			ProfileVisible:   true,
			ActivityStatus:   true,
			TwoFactorEnabled: false,
		},
		Data: DataPrefs{
			AutoSave:    true,
			SyncDevices: true,
		},
	}
}
