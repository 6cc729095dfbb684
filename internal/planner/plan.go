// Package planner splits a workout session into warmup, main and cooldown blocks.
//
// The builder is a pure function of its request apart from the request ID, which comes
// from an injected generator so tests can pin it.
package planner

import "fmt"

// Block types.
const (
	TypeMicroBreak    = "Micro-Break"
	TypeQuickSequence = "Quick Sequence"
	TypeWarmup        = "Warmup"
	TypeMainStrength  = "Main Strength"
	TypeMiniHIIT      = "Mini HIIT"
	TypeCooldown      = "Cooldown + Mobility"
)

// Intensity is the effort level of a block.
type Intensity string

const (
	IntensityLow    Intensity = "Low"
	IntensityMedium Intensity = "Medium"
	IntensityHigh   Intensity = "High"
)

// Fitness levels. Anything other than Beginner is planned as Intermediate.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
)

const (
	muscleFullBody = "Full body"
	muscleMobility = "Mobility"
	noPreference   = "None"
)

// Request holds the planner inputs.
type Request struct {
	// TotalMinutes is the session length. NaN means the caller did not supply one.
	TotalMinutes float64
	// MuscleGroup is optional; empty means no preference.
	MuscleGroup string
	// FitnessLevel defaults to Intermediate when empty.
	FitnessLevel string
}

// Block is one contiguous segment of the session.
type Block struct {
	ID            int       `json:"id"`
	DurationMin   float64   `json:"duration_min"`
	Type          string    `json:"type"`
	TargetMuscles []string  `json:"target_muscles"`
	Intensity     Intensity `json:"intensity"`
	Purpose       string    `json:"purpose"`
}

// Meta carries auxiliary plan information.
type Meta struct {
	Note             string `json:"note,omitempty"`
	FitnessLevel     string `json:"fitness_level,omitempty"`
	MusclePreference string `json:"muscle_preference,omitempty"`
}

// Plan is the builder output. Blocks are in execution order.
type Plan struct {
	RequestID    string  `json:"request_id,omitempty"`
	TotalMinutes float64 `json:"total_minutes"`
	NumBlocks    int     `json:"num_blocks"`
	Blocks       []Block `json:"blocks"`
	Meta         *Meta   `json:"meta,omitempty"`
}

// Minutes returns the summed duration of all blocks.
func (p *Plan) Minutes() float64 {
	var sum float64
	for _, b := range p.Blocks {
		sum += b.DurationMin
	}
	return sum
}

// ValidationErrorMessage is the fixed message reported for unusable session lengths.
const ValidationErrorMessage = "total_minutes must be a positive number"

// ValidationError reports input the builder cannot plan for.
type ValidationError struct {
	Field string
	Value float64
}

func (e *ValidationError) Error() string {
	return ValidationErrorMessage
}

// Detail includes the rejected value, for logs.
func (e *ValidationError) Detail() string {
	return fmt.Sprintf("%s: rejected value %v", e.Field, e.Value)
}
