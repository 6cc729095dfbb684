package planner

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"testing"
)

func build(t *testing.T, req Request) *Plan {
	t.Helper()
	p, err := New(StaticID("req-1")).Build(req)
	if err != nil {
		t.Fatalf("Build(%+v): unexpected error: %v", req, err)
	}
	return p
}

func durations(p *Plan) []float64 {
	out := make([]float64, len(p.Blocks))
	for i, b := range p.Blocks {
		out[i] = b.DurationMin
	}
	return out
}

// TestBuildRejectsInvalidTotals verifies that zero, negative, NaN and infinite
// session lengths fail with a ValidationError carrying the fixed message.
func TestBuildRejectsInvalidTotals(t *testing.T) {
	tests := []struct {
		name  string
		total float64
	}{
		{"zero", 0},
		{"negative", -10},
		{"NaN", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(nil).Build(Request{TotalMinutes: tt.total})
			if p != nil {
				t.Errorf("plan = %+v, want nil", p)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if err.Error() != ValidationErrorMessage {
				t.Errorf("message = %q, want %q", err.Error(), ValidationErrorMessage)
			}
		})
	}
}

// TestBuildMicroBreak verifies that sessions under five minutes collapse into a
// single mobility block without a request ID.
func TestBuildMicroBreak(t *testing.T) {
	p := build(t, Request{TotalMinutes: 3})

	if p.NumBlocks != 1 || len(p.Blocks) != 1 {
		t.Fatalf("blocks = %d (num_blocks %d), want 1", len(p.Blocks), p.NumBlocks)
	}
	b := p.Blocks[0]
	if b.Type != TypeMicroBreak {
		t.Errorf("type = %q, want %q", b.Type, TypeMicroBreak)
	}
	if b.DurationMin != 3 {
		t.Errorf("duration = %v, want 3", b.DurationMin)
	}
	if !reflect.DeepEqual(b.TargetMuscles, []string{"Mobility"}) {
		t.Errorf("muscles = %v, want [Mobility]", b.TargetMuscles)
	}
	if b.Intensity != IntensityLow {
		t.Errorf("intensity = %q, want Low", b.Intensity)
	}
	if p.RequestID != "" {
		t.Errorf("request_id = %q, want empty", p.RequestID)
	}
	if want := "Less than 5 minutes — micro-break recommended"; p.Meta == nil || p.Meta.Note != want {
		t.Errorf("meta = %+v, want note %q", p.Meta, want)
	}
}

// TestBuildMicroBreakFloor verifies that sub-minute sessions still get a one-minute block.
func TestBuildMicroBreakFloor(t *testing.T) {
	p := build(t, Request{TotalMinutes: 0.5})
	if got := p.Blocks[0].DurationMin; got != 1 {
		t.Errorf("duration = %v, want 1", got)
	}
}

// TestBuildTwentyMinutes verifies the two-block tier: one 15 minute strength block
// between a clamped warmup and the cooldown.
func TestBuildTwentyMinutes(t *testing.T) {
	p := build(t, Request{TotalMinutes: 20})

	want := []Block{
		{ID: 1, DurationMin: 3, Type: TypeWarmup, TargetMuscles: []string{"Full body"}, Intensity: IntensityLow, Purpose: "Increase heart rate and joint mobility"},
		{ID: 2, DurationMin: 15, Type: TypeMainStrength, TargetMuscles: []string{"Legs", "Glutes"}, Intensity: IntensityHigh, Purpose: "Primary stimulus"},
		{ID: 3, DurationMin: 2, Type: TypeCooldown, TargetMuscles: []string{"Full body"}, Intensity: IntensityLow, Purpose: "Recovery"},
	}
	if !reflect.DeepEqual(p.Blocks, want) {
		t.Errorf("blocks =\n%+v\nwant\n%+v", p.Blocks, want)
	}
	if p.NumBlocks != 3 {
		t.Errorf("num_blocks = %d, want 3", p.NumBlocks)
	}
	if p.RequestID != "req-1" {
		t.Errorf("request_id = %q, want %q", p.RequestID, "req-1")
	}
	if p.Meta == nil || p.Meta.FitnessLevel != LevelIntermediate || p.Meta.MusclePreference != "None" {
		t.Errorf("meta = %+v, want Intermediate/None", p.Meta)
	}
}

// TestBuildSixtyMinutesLegsBeginner verifies the four-block tier with a muscle
// preference and beginner intensities.
func TestBuildSixtyMinutesLegsBeginner(t *testing.T) {
	p := build(t, Request{TotalMinutes: 60, MuscleGroup: "legs", FitnessLevel: LevelBeginner})

	if got, want := durations(p), []float64{7, 24, 24, 5}; !reflect.DeepEqual(got, want) {
		t.Fatalf("durations = %v, want %v", got, want)
	}
	for _, b := range p.Blocks[1:3] {
		if b.Type != TypeMainStrength {
			t.Errorf("block %d type = %q, want %q", b.ID, b.Type, TypeMainStrength)
		}
		if b.Intensity != IntensityMedium {
			t.Errorf("block %d intensity = %q, want Medium", b.ID, b.Intensity)
		}
		if !reflect.DeepEqual(b.TargetMuscles, []string{"legs"}) {
			t.Errorf("block %d muscles = %v, want [legs]", b.ID, b.TargetMuscles)
		}
	}
	if p.Meta.FitnessLevel != LevelBeginner || p.Meta.MusclePreference != "legs" {
		t.Errorf("meta = %+v", p.Meta)
	}
}

// TestBuildMainBlockRules covers type, intensity and muscle selection for main blocks.
func TestBuildMainBlockRules(t *testing.T) {
	tests := []struct {
		name      string
		req       Request
		durations []float64
		types     []string
		intensity []Intensity
	}{
		{
			name:      "30 min no preference",
			req:       Request{TotalMinutes: 30},
			durations: []float64{4, 24, 2},
			types:     []string{TypeWarmup, TypeMainStrength, TypeCooldown},
			intensity: []Intensity{IntensityLow, IntensityHigh, IntensityLow},
		},
		{
			name:      "12 min with muscle is strength",
			req:       Request{TotalMinutes: 17, MuscleGroup: "core"},
			durations: []float64{3, 12, 2},
			types:     []string{TypeWarmup, TypeMainStrength, TypeCooldown},
			intensity: []Intensity{IntensityLow, IntensityMedium, IntensityLow},
		},
		{
			name:      "short main with muscle is HIIT",
			req:       Request{TotalMinutes: 12, MuscleGroup: "arms", FitnessLevel: LevelBeginner},
			durations: []float64{3, 7, 2},
			types:     []string{TypeWarmup, TypeMiniHIIT, TypeCooldown},
			intensity: []Intensity{IntensityLow, IntensityLow, IntensityLow},
		},
		{
			name:      "unknown level treated as intermediate",
			req:       Request{TotalMinutes: 12, FitnessLevel: "Advanced"},
			durations: []float64{3, 7, 2},
			types:     []string{TypeWarmup, TypeMainStrength, TypeCooldown},
			intensity: []Intensity{IntensityLow, IntensityMedium, IntensityLow},
		},
		{
			name:      "long session caps warmup and cooldown",
			req:       Request{TotalMinutes: 200},
			durations: []float64{10, 90, 90, 10},
			types:     []string{TypeWarmup, TypeMainStrength, TypeMiniHIIT, TypeCooldown},
			intensity: []Intensity{IntensityLow, IntensityHigh, IntensityHigh, IntensityLow},
		},
		{
			name:      "odd remainder goes to first main block",
			req:       Request{TotalMinutes: 47},
			durations: []float64{6, 19, 18, 4},
			types:     []string{TypeWarmup, TypeMainStrength, TypeMiniHIIT, TypeCooldown},
			intensity: []Intensity{IntensityLow, IntensityHigh, IntensityHigh, IntensityLow},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := build(t, tt.req)
			if got := durations(p); !reflect.DeepEqual(got, tt.durations) {
				t.Fatalf("durations = %v, want %v", got, tt.durations)
			}
			for i, b := range p.Blocks {
				if b.Type != tt.types[i] {
					t.Errorf("block %d type = %q, want %q", i, b.Type, tt.types[i])
				}
				if b.Intensity != tt.intensity[i] {
					t.Errorf("block %d intensity = %q, want %q", i, b.Intensity, tt.intensity[i])
				}
			}
		})
	}
}

// TestBuildHIITTargetsFullBody verifies that an alternating HIIT block without a
// muscle preference targets the full body.
func TestBuildHIITTargetsFullBody(t *testing.T) {
	p := build(t, Request{TotalMinutes: 60})
	hiit := p.Blocks[2]
	if hiit.Type != TypeMiniHIIT {
		t.Fatalf("block 3 type = %q, want %q", hiit.Type, TypeMiniHIIT)
	}
	if !reflect.DeepEqual(hiit.TargetMuscles, []string{"Full body"}) {
		t.Errorf("muscles = %v, want [Full body]", hiit.TargetMuscles)
	}
}

// TestBuildCompressesWhenNoRoomForMain verifies that a session whose warmup and
// cooldown leave no time for a main block becomes one condensed block.
func TestBuildCompressesWhenNoRoomForMain(t *testing.T) {
	tests := []struct {
		name   string
		req    Request
		muscle string
	}{
		{"five minutes", Request{TotalMinutes: 5}, "Full body"},
		{"fractional", Request{TotalMinutes: 5.5, MuscleGroup: "back"}, "back"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := build(t, tt.req)
			if len(p.Blocks) != 1 {
				t.Fatalf("blocks = %d, want 1", len(p.Blocks))
			}
			b := p.Blocks[0]
			if b.Type != TypeQuickSequence {
				t.Errorf("type = %q, want %q", b.Type, TypeQuickSequence)
			}
			if b.DurationMin != tt.req.TotalMinutes {
				t.Errorf("duration = %v, want %v", b.DurationMin, tt.req.TotalMinutes)
			}
			if !reflect.DeepEqual(b.TargetMuscles, []string{tt.muscle}) {
				t.Errorf("muscles = %v, want [%s]", b.TargetMuscles, tt.muscle)
			}
			if p.RequestID != "" || p.Meta != nil {
				t.Errorf("condensed plan should carry no request_id or meta, got %q %+v", p.RequestID, p.Meta)
			}
		})
	}
}

// TestBuildFractionalTotal verifies that fractional sessions still sum exactly.
func TestBuildFractionalTotal(t *testing.T) {
	p := build(t, Request{TotalMinutes: 20.5})
	if got := p.Minutes(); got != 20.5 {
		t.Errorf("sum = %v, want 20.5 (durations %v)", got, durations(p))
	}
}

// TestBuildIdempotent verifies that identical inputs yield identical blocks even when
// request IDs differ.
func TestBuildIdempotent(t *testing.T) {
	n := 0
	b := New(func() string {
		n++
		return string(rune('a' + n))
	})
	req := Request{TotalMinutes: 38, MuscleGroup: "chest"}
	p1, _ := b.Build(req)
	p2, _ := b.Build(req)
	if !reflect.DeepEqual(p1.Blocks, p2.Blocks) {
		t.Errorf("blocks differ:\n%+v\n%+v", p1.Blocks, p2.Blocks)
	}
	if p1.RequestID == p2.RequestID {
		t.Errorf("request IDs should come from the generator each call, both %q", p1.RequestID)
	}
}

// TestBuildHugeTotals verifies totals beyond the int range keep clamped warmup and
// cooldown, positive main blocks and an exact sum.
func TestBuildHugeTotals(t *testing.T) {
	for _, total := range []float64{1e19, 1e20, 1e308} {
		t.Run(strconv.FormatFloat(total, 'g', -1, 64), func(t *testing.T) {
			p := build(t, Request{TotalMinutes: total, MuscleGroup: "legs"})
			if len(p.Blocks) != 4 {
				t.Fatalf("blocks = %d, want 4", len(p.Blocks))
			}
			if w := p.Blocks[0].DurationMin; w != WarmupMax {
				t.Errorf("warmup = %v, want %d", w, WarmupMax)
			}
			if c := p.Blocks[3].DurationMin; c != CooldownMax {
				t.Errorf("cooldown = %v, want %d", c, CooldownMax)
			}
			for _, b := range p.Blocks {
				if b.DurationMin < 1 {
					t.Errorf("block %d duration = %v, want >= 1", b.ID, b.DurationMin)
				}
			}
			for _, b := range p.Blocks[1:3] {
				if b.Type != TypeMainStrength {
					t.Errorf("block %d type = %q, want %q", b.ID, b.Type, TypeMainStrength)
				}
			}
			if got := p.Minutes(); got != total {
				t.Errorf("sum = %v, want %v", got, total)
			}
		})
	}
}
