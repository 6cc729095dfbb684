package planner

// Sessions shorter than this become a single micro-break.
const MicroBreakBelow = 5.0

// MaxBlocks is the upper bound on blocks in any plan.
const MaxBlocks = 4

// MinMainMinutes is the shortest main block the builder will emit. When the time left
// after warmup and cooldown cannot hold one, the session is compressed into one block.
const MinMainMinutes = 1.0

// Warmup and cooldown sizing: round(total*ratio), clamped to [min, max].
const (
	WarmupRatio = 0.12
	WarmupMin   = 3
	WarmupMax   = 10

	CooldownRatio = 0.08
	CooldownMin   = 2
	CooldownMax   = 10
)

// Main block classification thresholds, in minutes.
const (
	// StrengthMinMinutes is the shortest main block typed as strength when the user
	// picked a muscle group.
	StrengthMinMinutes = 12
	// HighEffortMinMinutes bumps intensity one level up.
	HighEffortMinMinutes = 15
)

// BlockCountTier maps a session length to a block count. Tiers are evaluated in order;
// the first tier whose UpTo is >= total wins. The last tier has UpTo == 0 and matches
// everything left.
type BlockCountTier struct {
	UpTo   float64 `json:"up_to,omitempty"`
	Below  float64 `json:"below,omitempty"`
	Blocks int     `json:"blocks"`
	// Else applies when Below is set and total >= Below.
	Else int `json:"else,omitempty"`
}

var blockCountTiers = []BlockCountTier{
	{UpTo: 9, Blocks: 1},
	{UpTo: 19, Blocks: 2},
	{UpTo: 29, Below: 25, Blocks: 2, Else: 3},
	{UpTo: 44, Blocks: 3},
	{Blocks: 4},
}

// RuleTable is the read-only view of the fixed planning constants.
type RuleTable struct {
	MicroBreakBelow float64          `json:"micro_break_below"`
	MaxBlocks       int              `json:"max_blocks"`
	MinMainMinutes  float64          `json:"min_main_minutes"`
	Warmup          Sizing           `json:"warmup"`
	Cooldown        Sizing           `json:"cooldown"`
	StrengthMin     int              `json:"strength_min_minutes"`
	HighEffortMin   int              `json:"high_effort_min_minutes"`
	BlockCounts     []BlockCountTier `json:"block_counts"`
}

// Sizing describes a ratio-and-clamp rule.
type Sizing struct {
	Ratio float64 `json:"ratio"`
	Min   int     `json:"min"`
	Max   int     `json:"max"`
}

// Rules returns a copy of the rule table used by the builder.
func Rules() RuleTable {
	tiers := make([]BlockCountTier, len(blockCountTiers))
	copy(tiers, blockCountTiers)
	return RuleTable{
		MicroBreakBelow: MicroBreakBelow,
		MaxBlocks:       MaxBlocks,
		MinMainMinutes:  MinMainMinutes,
		Warmup:          Sizing{Ratio: WarmupRatio, Min: WarmupMin, Max: WarmupMax},
		Cooldown:        Sizing{Ratio: CooldownRatio, Min: CooldownMin, Max: CooldownMax},
		StrengthMin:     StrengthMinMinutes,
		HighEffortMin:   HighEffortMinMinutes,
		BlockCounts:     tiers,
	}
}

// blockCount picks the intended number of blocks for a session of total minutes.
func blockCount(total float64) int {
	for _, t := range blockCountTiers {
		if t.UpTo != 0 && total > t.UpTo {
			continue
		}
		if t.Below != 0 && total >= t.Below {
			return t.Else
		}
		return t.Blocks
	}
	return MaxBlocks
}
