package game

import (
	"github.com/ProtoSG/momentum-front/internal/model"
)

// LevelName looks up the display name for a level in the static level table.
func LevelName(levels []model.PetLevel, level int) string {
	for _, l := range levels {
		if l.Level == level {
			return l.Name
		}
	}
	return "Unknown"
}

// NextLevelRequirement returns the XP threshold of the next level. ok is
// false at the top of the table (level maxed out).
func NextLevelRequirement(levels []model.PetLevel, level int) (int, bool) {
	for _, l := range levels {
		if l.Level == level+1 {
			return l.ExperienceRequired, true
		}
	}
	return 0, false
}
