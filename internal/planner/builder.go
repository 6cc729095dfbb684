package planner

import "math"

// Builder turns a Request into a Plan.
type Builder struct {
	newID IDGenerator
}

// New creates a Builder. A nil generator falls back to UUIDv7.
func New(ids IDGenerator) *Builder {
	if ids == nil {
		ids = UUIDv7
	}
	return &Builder{newID: ids}
}

// Build plans a session. It fails only with *ValidationError.
func (b *Builder) Build(req Request) (*Plan, error) {
	total := req.TotalMinutes
	// Zero is rejected along with negatives.
	if math.IsNaN(total) || math.IsInf(total, 0) || total <= 0 {
		return nil, &ValidationError{Field: "total_minutes", Value: total}
	}

	level := req.FitnessLevel
	if level == "" {
		level = LevelIntermediate
	}
	muscle := req.MuscleGroup

	if total < MicroBreakBelow {
		return microBreak(total), nil
	}

	numBlocks := blockCount(total)
	warmup := clampRound(total*WarmupRatio, WarmupMin, WarmupMax)
	cooldown := clampRound(total*CooldownRatio, CooldownMin, CooldownMax)
	remaining := total - warmup - cooldown
	if remaining < MinMainMinutes {
		return quickSequence(total, muscle), nil
	}

	mainCount := max(1, numBlocks-2)
	if numBlocks <= 2 {
		mainCount = 1
	}

	blocks := make([]Block, 0, mainCount+2)
	id := 1
	blocks = append(blocks, Block{
		ID:            id,
		DurationMin:   warmup,
		Type:          TypeWarmup,
		TargetMuscles: []string{muscleFullBody},
		Intensity:     IntensityLow,
		Purpose:       "Increase heart rate and joint mobility",
	})
	for i, dur := range splitBalanced(remaining, mainCount) {
		id++
		blocks = append(blocks, mainBlock(id, i, dur, muscle, level))
	}
	id++
	blocks = append(blocks, Block{
		ID:            id,
		DurationMin:   cooldown,
		Type:          TypeCooldown,
		TargetMuscles: []string{muscleFullBody},
		Intensity:     IntensityLow,
		Purpose:       "Recovery",
	})

	blocks = capBlocks(blocks, MaxBlocks)

	pref := muscle
	if pref == "" {
		pref = noPreference
	}
	return &Plan{
		RequestID:    b.newID(),
		TotalMinutes: total,
		NumBlocks:    len(blocks),
		Blocks:       blocks,
		Meta:         &Meta{FitnessLevel: level, MusclePreference: pref},
	}, nil
}

func microBreak(total float64) *Plan {
	return &Plan{
		TotalMinutes: total,
		NumBlocks:    1,
		Blocks: []Block{{
			ID:            1,
			DurationMin:   math.Max(1, total),
			Type:          TypeMicroBreak,
			TargetMuscles: []string{muscleMobility},
			Intensity:     IntensityLow,
			Purpose:       "Quick mobility + breathing",
		}},
		Meta: &Meta{Note: "Less than 5 minutes — micro-break recommended"},
	}
}

func quickSequence(total float64, muscle string) *Plan {
	target := muscle
	if target == "" {
		target = muscleFullBody
	}
	return &Plan{
		TotalMinutes: total,
		NumBlocks:    1,
		Blocks: []Block{{
			ID:            1,
			DurationMin:   total,
			Type:          TypeQuickSequence,
			TargetMuscles: []string{target},
			Intensity:     IntensityLow,
			Purpose:       "Condensed session",
		}},
	}
}

func mainBlock(id, i int, dur float64, muscle, level string) Block {
	var typ string
	switch {
	case muscle == "" && i%2 == 0:
		typ = TypeMainStrength
	case muscle == "":
		typ = TypeMiniHIIT
	case dur >= StrengthMinMinutes:
		typ = TypeMainStrength
	default:
		typ = TypeMiniHIIT
	}

	hard := dur >= HighEffortMinMinutes
	var intensity Intensity
	switch {
	case level == LevelBeginner && hard:
		intensity = IntensityMedium
	case level == LevelBeginner:
		intensity = IntensityLow
	case hard:
		intensity = IntensityHigh
	default:
		intensity = IntensityMedium
	}

	var target []string
	switch {
	case muscle != "":
		target = []string{muscle}
	case typ == TypeMiniHIIT:
		target = []string{muscleFullBody}
	default:
		target = []string{"Legs", "Glutes"}
	}

	return Block{
		ID:            id,
		DurationMin:   dur,
		Type:          typ,
		TargetMuscles: target,
		Intensity:     intensity,
		Purpose:       "Primary stimulus",
	}
}

// clampRound stays in float64 so very long sessions cannot overflow an int.
func clampRound(v float64, lo, hi int) float64 {
	return math.Min(float64(hi), math.Max(float64(lo), math.Round(v)))
}
