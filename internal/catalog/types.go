package catalog

import "github.com/verdantapp/verdant/internal/reward"

// UnitKind identifies the category of a completable unit.
type UnitKind string

const (
	UnitLesson    UnitKind = "lesson"
	UnitQuiz      UnitKind = "quiz"
	UnitChallenge UnitKind = "challenge"
	UnitGame      UnitKind = "game"
	UnitBoss      UnitKind = "boss"
)

// AllUnitKinds returns all unit kinds in display order.
func AllUnitKinds() []UnitKind {
	return []UnitKind{UnitLesson, UnitQuiz, UnitChallenge, UnitGame, UnitBoss}
}

// IsValid reports whether k is one of the known unit kinds.
func (k UnitKind) IsValid() bool {
	switch k {
	case UnitLesson, UnitQuiz, UnitChallenge, UnitGame, UnitBoss:
		return true
	}
	return false
}

// Scored reports whether completions of this kind carry a performance
// outcome. Only quizzes are scored; every other kind grants a fixed bundle.
func (k UnitKind) Scored() bool {
	return k == UnitQuiz
}

// DisplayName returns a human-readable label for the unit kind.
func (k UnitKind) DisplayName() string {
	switch k {
	case UnitLesson:
		return "Lesson"
	case UnitQuiz:
		return "Quiz"
	case UnitChallenge:
		return "Challenge"
	case UnitGame:
		return "Game"
	case UnitBoss:
		return "Boss"
	default:
		return string(k)
	}
}

// GroupKind identifies the nesting level of a group.
type GroupKind string

const (
	GroupModule     GroupKind = "module"
	GroupSubLevel   GroupKind = "sublevel"
	GroupMajorLevel GroupKind = "majorlevel"
)

// IsValid reports whether k is one of the known group kinds.
func (k GroupKind) IsValid() bool {
	switch k {
	case GroupModule, GroupSubLevel, GroupMajorLevel:
		return true
	}
	return false
}

// Unit is one completable piece of content.
type Unit struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Kind          UnitKind      `json:"kind"`
	Points        int           `json:"points"`
	MaxScore      int           `json:"maxScore,omitempty"` // quizzes only
	Prerequisites []string      `json:"prerequisites,omitempty"`
	Reward        reward.Bundle `json:"reward,omitempty"` // fixed-reward kinds only
}

// RewardSpec returns the reward specification for this unit.
func (u Unit) RewardSpec() reward.Spec {
	if u.Kind.Scored() {
		return reward.Spec{Scored: true, MaxScore: u.MaxScore}
	}
	return reward.Spec{Points: u.Points, Items: u.Reward}
}

// Group is an ordered container of units and/or nested groups, with its own
// unlock gate and an optional terminal boss.
type Group struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Kind          GroupKind `json:"kind"`
	Order         int       `json:"order"`
	Children      []string  `json:"children"` // unit or group ids, in order
	Prerequisites []string  `json:"prerequisites,omitempty"`
	BossID        string    `json:"bossId,omitempty"` // must also appear in Children
}

// Catalog is the immutable content definition consumed by the engine.
type Catalog struct {
	Version string  `json:"version"`
	Units   []Unit  `json:"units"`
	Groups  []Group `json:"groups"`
}
