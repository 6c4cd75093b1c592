package session

import (
	"time"

	"GoldSentinel/internal/config"
	"GoldSentinel/internal/model"
)

// Session names, on the Dubai (UTC+4) trading clock.
const (
	NameAsian   = "ASIAN (RANGE)"
	NameLondon  = "LONDON (BREAKOUT)"
	NameOverlap = "OVERLAP (STRONGEST)"
	NameNewYork = "NY (VOLATILE)"
	NameLateNY  = "LATE NY (FADE)"
)

// Profile classifies the given instant into a trading session. The Asian
// session is a soft gate: it never forces WAIT, it shrinks the score
// deviation and flags reduced position sizing.
func Profile(now time.Time, cfg *config.Config) model.SessionProfile {
	dubaiHour := (now.UTC().Hour() + 4) % 24
	switch {
	case dubaiHour >= 2 && dubaiHour < 12:
		return model.SessionProfile{Name: NameAsian, Multiplier: cfg.Sessions.Asian, ReducedSize: true}
	case dubaiHour >= 12 && dubaiHour < 17:
		return model.SessionProfile{Name: NameLondon, Multiplier: cfg.Sessions.London}
	case dubaiHour >= 17 && dubaiHour < 21:
		return model.SessionProfile{Name: NameOverlap, Multiplier: cfg.Sessions.Overlap}
	case dubaiHour >= 21 && dubaiHour < 23:
		return model.SessionProfile{Name: NameNewYork, Multiplier: cfg.Sessions.NewYork}
	default:
		return model.SessionProfile{Name: NameLateNY, Multiplier: cfg.Sessions.LateNY}
	}
}
