package game

import (
	"time"

	"github.com/ProtoSG/momentum-front/internal/model"
)

type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
)

// MoodFor derives the pet's mood from its stat snapshot: the average of
// health, energy and satiety (100 - hunger). Above 70 is happy, above 40
// neutral, anything else sad. Purely cosmetic.
func MoodFor(pet model.Pet) Mood {
	avg := float64(pet.Health+pet.Energy+(StatMax-pet.Hunger)) / 3
	switch {
	case avg > 70:
		return MoodHappy
	case avg > 40:
		return MoodNeutral
	default:
		return MoodSad
	}
}

// FrameInterval is the sprite animation cadence for a mood. A happy pet
// animates faster.
func FrameInterval(m Mood) time.Duration {
	switch m {
	case MoodHappy:
		return 500 * time.Millisecond
	case MoodSad:
		return 1500 * time.Millisecond
	default:
		return time.Second
	}
}
