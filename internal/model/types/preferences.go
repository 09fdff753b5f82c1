package types

import "github.com/raidlog/droptracker/internal/model"

type PreferencesRequest struct {
	ResetOnExport bool `json:"reset_on_export"`
	DropsByKills  bool `json:"drops_by_kills"`
	ShowHonors    bool `json:"show_honors"`
	RecentLimit   int  `json:"recent_limit" validate:"gte=0,lte=10000"`
}

func (r PreferencesRequest) Preferences() model.Preferences {
	return model.Preferences{
		ResetOnExport: r.ResetOnExport,
		DropsByKills:  r.DropsByKills,
		ShowHonors:    r.ShowHonors,
		RecentLimit:   r.RecentLimit,
	}
}
