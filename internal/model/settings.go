package model

// SettingsVersion is the version written into every settings blob saved by
// this build.
const SettingsVersion = 1

// Settings is the persisted top-level blob: display preferences kept apart
// from the drop ledger they are applied to.
type Settings struct {
	Version     int         `json:"version"`
	Preferences Preferences `json:"preferences"`
	Ledger      []ItemDrop  `json:"ledger"`
	// NextDropID is the id the next logged drop receives. It survives
	// clears and removals so ids are never handed out twice.
	NextDropID uint64 `json:"next_drop_id"`
}

type Preferences struct {
	// ResetOnExport clears the ledger after a successful export.
	ResetOnExport bool `json:"reset_on_export"`
	// DropsByKills selects kills as the percentage denominator instead of
	// qualifying chests.
	DropsByKills bool `json:"drops_by_kills"`
	ShowHonors   bool `json:"show_honors"`
	// RecentLimit bounds the recent drops feed; zero shows everything.
	RecentLimit int `json:"recent_limit"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		DropsByKills: true,
		ShowHonors:   true,
		RecentLimit:  20,
	}
}
