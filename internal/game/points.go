package game

import (
	"github.com/ProtoSG/momentum-front/internal/model"
)

// Reward tables for completing a mission. Authoritative values live on the
// server; these mirror them for award requests and display estimates.
const (
	PointsLow    = 10
	PointsMedium = 15
	PointsHigh   = 20

	ExperienceLow    = 5
	ExperienceMedium = 10
	ExperienceHigh   = 20
)

// Care action costs in points.
const (
	FeedCost  = 10
	HealCost  = 20
	BoostCost = 15
)

// StatMax is the cap for health, energy and hunger.
const StatMax = 100

// PointsForPriority returns the points awarded for completing a task of the
// given priority. Unknown priorities earn the LOW value.
func PointsForPriority(p model.TaskPriority) int {
	switch p {
	case model.PriorityHigh:
		return PointsHigh
	case model.PriorityMedium:
		return PointsMedium
	default:
		return PointsLow
	}
}

// ExperienceForPriority returns the XP awarded for completing a task of the
// given priority.
func ExperienceForPriority(p model.TaskPriority) int {
	switch p {
	case model.PriorityHigh:
		return ExperienceHigh
	case model.PriorityMedium:
		return ExperienceMedium
	default:
		return ExperienceLow
	}
}

// Care action gates, evaluated against the last-known local snapshot. The
// server re-validates and is the final arbiter.

func CanFeed(pet model.Pet) bool {
	return pet.PointsTotal >= FeedCost && pet.Hunger < StatMax
}

func CanHeal(pet model.Pet) bool {
	return pet.PointsTotal >= HealCost && pet.Health < StatMax
}

func CanBoostEnergy(pet model.Pet) bool {
	return pet.PointsTotal >= BoostCost && pet.Energy < StatMax
}
