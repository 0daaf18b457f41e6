package domain

import (
	"fmt"
	"math"
)

const (
	MinGrowthScale = 0.7
	MaxGrowthScale = 1.3
)

// GrowthMode selects how progress is projected for the presenter
type GrowthMode string

const (
	GrowthContinuous GrowthMode = "continuous"
	GrowthStaged     GrowthMode = "staged"
)

// ParseGrowthMode maps config text to a mode, defaulting to continuous
func ParseGrowthMode(s string) GrowthMode {
	if GrowthMode(s) == GrowthStaged {
		return GrowthStaged
	}
	return GrowthContinuous
}

type GrowthStage int

const (
	StageSeedling GrowthStage = iota
	StageSapling
	StageTree
)

func (g GrowthStage) String() string {
	switch g {
	case StageSapling:
		return "sapling"
	case StageTree:
		return "tree"
	default:
		return "seedling"
	}
}

// Growth is the visual projection of phase progress
type Growth struct {
	Mode     GrowthMode
	Progress float64 // 0..1
	Scale    float64 // MinGrowthScale..MaxGrowthScale
	Stage    GrowthStage
}

// NewGrowth projects a progress fraction. Progress is clamped to [0, 1].
func NewGrowth(mode GrowthMode, progress float64) Growth {
	switch {
	case progress < 0 || math.IsNaN(progress):
		progress = 0
	case progress > 1:
		progress = 1
	}
	return Growth{
		Mode:     mode,
		Progress: progress,
		Scale:    MinGrowthScale + (MaxGrowthScale-MinGrowthScale)*progress,
		Stage:    StageFor(progress),
	}
}

// StageFor buckets progress into thirds
func StageFor(progress float64) GrowthStage {
	switch {
	case progress < 1.0/3.0:
		return StageSeedling
	case progress < 2.0/3.0:
		return StageSapling
	default:
		return StageTree
	}
}

// PhaseProgress is 1 - remaining/total during focus and always 1 during a break.
func PhaseProgress(phase Phase, remaining, total int) float64 {
	if phase == PhaseBreak {
		return 1
	}
	if total <= 0 {
		return 0
	}
	return 1 - float64(remaining)/float64(total)
}

// ScaleText formats the scale the way a style property would carry it
func (g Growth) ScaleText() string {
	return fmt.Sprintf("%.3f", g.Scale)
}
