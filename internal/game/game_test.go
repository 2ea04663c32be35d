package game

import (
	"testing"
	"time"

	"github.com/ProtoSG/momentum-front/internal/model"
)

func TestRewardTables(t *testing.T) {
	cases := []struct {
		priority model.TaskPriority
		points   int
		xp       int
	}{
		{model.PriorityLow, 10, 5},
		{model.PriorityMedium, 15, 10},
		{model.PriorityHigh, 20, 20},
	}
	for _, tc := range cases {
		if got := PointsForPriority(tc.priority); got != tc.points {
			t.Errorf("PointsForPriority(%s)=%d, want %d", tc.priority, got, tc.points)
		}
		if got := ExperienceForPriority(tc.priority); got != tc.xp {
			t.Errorf("ExperienceForPriority(%s)=%d, want %d", tc.priority, got, tc.xp)
		}
	}
}

func TestMoodBoundaries(t *testing.T) {
	// avg = (health + energy + (100-hunger)) / 3
	cases := []struct {
		name                   string
		health, energy, hunger int
		want                   Mood
	}{
		{"all full", 100, 100, 0, MoodHappy},
		{"avg exactly 70 is neutral", 70, 70, 30, MoodNeutral},
		{"just above 70", 80, 80, 28, MoodHappy},
		{"avg exactly 40 is sad", 40, 40, 60, MoodSad},
		{"just above 40", 50, 50, 60, MoodNeutral},
		{"everything drained", 0, 0, 100, MoodSad},
	}
	for _, tc := range cases {
		pet := model.Pet{Health: tc.health, Energy: tc.energy, Hunger: tc.hunger}
		if got := MoodFor(pet); got != tc.want {
			t.Errorf("%s: MoodFor=%s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestFrameInterval(t *testing.T) {
	if got := FrameInterval(MoodHappy); got != 500*time.Millisecond {
		t.Errorf("happy interval=%v", got)
	}
	if got := FrameInterval(MoodNeutral); got != time.Second {
		t.Errorf("neutral interval=%v", got)
	}
	if got := FrameInterval(MoodSad); got != 1500*time.Millisecond {
		t.Errorf("sad interval=%v", got)
	}
}

func TestCareGates(t *testing.T) {
	cases := []struct {
		name string
		pet  model.Pet
		feed bool
		heal bool
		bst  bool
	}{
		{"rich and needy", model.Pet{PointsTotal: 100, Hunger: 50, Health: 50, Energy: 50}, true, true, true},
		{"broke", model.Pet{PointsTotal: 9, Hunger: 50, Health: 50, Energy: 50}, false, false, false},
		{"feed only", model.Pet{PointsTotal: 10, Hunger: 50, Health: 50, Energy: 50}, true, false, false},
		{"boost but not heal", model.Pet{PointsTotal: 15, Hunger: 50, Health: 50, Energy: 50}, true, false, true},
		{"hunger at cap", model.Pet{PointsTotal: 100, Hunger: 100, Health: 50, Energy: 50}, false, true, true},
		{"health at cap", model.Pet{PointsTotal: 100, Hunger: 50, Health: 100, Energy: 50}, true, false, true},
		{"energy at cap", model.Pet{PointsTotal: 100, Hunger: 50, Health: 50, Energy: 100}, true, true, false},
	}
	for _, tc := range cases {
		if got := CanFeed(tc.pet); got != tc.feed {
			t.Errorf("%s: CanFeed=%v, want %v", tc.name, got, tc.feed)
		}
		if got := CanHeal(tc.pet); got != tc.heal {
			t.Errorf("%s: CanHeal=%v, want %v", tc.name, got, tc.heal)
		}
		if got := CanBoostEnergy(tc.pet); got != tc.bst {
			t.Errorf("%s: CanBoostEnergy=%v, want %v", tc.name, got, tc.bst)
		}
	}
}

func TestTallyTasks(t *testing.T) {
	tasks := []model.Task{
		{TaskID: 1, Status: model.TaskStatusTodo, Priority: model.PriorityHigh},
		{TaskID: 2, Status: model.TaskStatusDone, Priority: model.PriorityHigh},
		{TaskID: 3, Status: model.TaskStatusDone, Priority: model.PriorityLow},
		{TaskID: 4, Status: model.TaskStatusArchived, Priority: model.PriorityMedium},
	}
	tally := TallyTasks(tasks)
	if tally.Pending != 1 || tally.Completed != 2 || tally.Archived != 1 {
		t.Fatalf("tally=%+v", tally)
	}
	// Only DONE tasks count: 20 (high) + 10 (low).
	if tally.EstimatedPoints != 30 {
		t.Fatalf("EstimatedPoints=%d, want 30", tally.EstimatedPoints)
	}
}

func TestLevelLookups(t *testing.T) {
	levels := []model.PetLevel{
		{Level: 1, ExperienceRequired: 0, Name: "Hatchling"},
		{Level: 2, ExperienceRequired: 100, Name: "Whelp"},
	}

	if got := LevelName(levels, 1); got != "Hatchling" {
		t.Errorf("LevelName(1)=%q", got)
	}
	if got := LevelName(levels, 9); got != "Unknown" {
		t.Errorf("LevelName(9)=%q, want Unknown", got)
	}

	req, ok := NextLevelRequirement(levels, 1)
	if !ok || req != 100 {
		t.Errorf("NextLevelRequirement(1)=(%d,%v), want (100,true)", req, ok)
	}
	if _, ok := NextLevelRequirement(levels, 2); ok {
		t.Errorf("expected no next level past the top of the table")
	}
}
