package config

// #region pattern

// Pattern identifies a movement pattern tracked for debt.
type Pattern string

const (
	PatternSquat Pattern = "SQUAT"
	PatternHinge Pattern = "HINGE"
	PatternPush  Pattern = "PUSH"
	PatternPull  Pattern = "PULL"

	// Core subpatterns by plane of motion.
	PatternCoreTransverse Pattern = "CORE_TRANSVERSE"
	PatternCoreSagittal   Pattern = "CORE_SAGITTAL"
	PatternCoreFrontal    Pattern = "CORE_FRONTAL"

	// Non-debt selection categories addressed by session templates.
	PatternRFD         Pattern = "RFD"
	PatternPatellarIso Pattern = "PATELLAR_ISO"
	PatternMobility    Pattern = "MOBILITY"
)

// #endregion pattern

// #region state

// State is the biological readiness state derived from the check-in.
type State string

const (
	StateGreen  State = "GREEN"
	StateOrange State = "ORANGE"
	StateRed    State = "RED"
)

// #endregion state

// #region archetype

// Archetype is the overall session shape: standard lifting vs recovery.
type Archetype string

const (
	ArchetypePerformance Archetype = "PERFORMANCE"
	ArchetypeRecovery    Archetype = "RECOVERY"
)

// #endregion archetype

// #region tier

// Tier is the role an exercise selection plays, orthogonal to its pattern.
type Tier string

const (
	TierMain                Tier = "MAIN"
	TierCore                Tier = "CORE"
	TierPrep                Tier = "PREP"
	TierAccessoryHip        Tier = "ACCESSORY_HIP"
	TierAccessoryKnee       Tier = "ACCESSORY_KNEE"
	TierAccessoryVertical   Tier = "ACCESSORY_VERTICAL"
	TierAccessoryHorizontal Tier = "ACCESSORY_HORIZONTAL"
	TierDynamic             Tier = "DYNAMIC"

	// Power (RFD) tiers chosen by state.
	TierHigh  Tier = "HIGH"
	TierLow   Tier = "LOW"
	TierUpper Tier = "UPPER"
)

// #endregion tier

// #region protocol

// Protocol identifies a conditioning protocol.
type Protocol string

const (
	ProtocolHIIT Protocol = "HIIT"
	ProtocolSIT  Protocol = "SIT"
	ProtocolSS   Protocol = "SS"
)

// #endregion protocol

// #region plane

// Plane is a push/pull plane used for red-day balance.
type Plane string

const (
	PlaneVertical   Plane = "VERTICAL"
	PlaneHorizontal Plane = "HORIZONTAL"
)

// #endregion plane

// #region skip

// Skip is the selection-matrix sentinel meaning "no exercise fits this slot".
// A Skip entry is distinct from a missing entry: missing is a config defect.
const Skip = "SKIP"

// #endregion skip

// #region matrix

// Matrix is the exercise-selection lookup: pattern → tier → state → name.
// Values are exercise names from the library catalog, or the Skip sentinel.
type Matrix map[Pattern]map[Tier]map[State]string

// Lookup resolves a (pattern, tier, state) triple. ok is false when any
// level of the nesting is absent; Skip entries return ok=true.
func (m Matrix) Lookup(p Pattern, t Tier, s State) (string, bool) {
	tiers, ok := m[p]
	if !ok {
		return "", false
	}
	states, ok := tiers[t]
	if !ok {
		return "", false
	}
	name, ok := states[s]
	return name, ok
}

// #endregion matrix

// #region thresholds

// Band is a lower/upper cut-point pair for one readiness axis.
type Band struct {
	Lower int `yaml:"lower"`
	Upper int `yaml:"upper"`
}

// Thresholds holds the cut points that map (pain, energy) to a State.
//
// Boundary convention (pinned, tested):
//
//	pain:   GREEN iff pain <= lower, ORANGE iff lower < pain <= upper, RED iff pain > upper
//	energy: GREEN iff energy > upper, ORANGE iff lower < energy <= upper, RED iff energy <= lower
type Thresholds struct {
	Pain   Band `yaml:"pain"`
	Energy Band `yaml:"energy"`
}

// #endregion thresholds

// #region slot

// Slot names a (pattern, tier) pair, the unit of accessory relationships.
type Slot struct {
	Pattern Pattern
	Tier    Tier
}

// #endregion slot

// #region logic

// PatternGroups partitions patterns by role.
type PatternGroups struct {
	Main []Pattern `yaml:"main"`
	Core []Pattern `yaml:"core"`
}

// Logic is the decision-rule section: thresholds, priority, power
// selection, and accessory relationships.
type Logic struct {
	Thresholds      Thresholds         `yaml:"thresholds"`
	PatternPriority []Pattern          `yaml:"pattern_priority"`
	PowerSelection  map[State]Tier     `yaml:"power_selection"`
	Relationships   map[Pattern][]Slot `yaml:"-"`
	Patterns        PatternGroups      `yaml:"patterns"`

	// RawRelationships carries "PATTERN:TIER" strings as written in
	// logic.yaml; parsed into Relationships at load time.
	RawRelationships map[Pattern][]string `yaml:"relationships"`
}

// #endregion logic

// #region sessions

// BlockTemplate is one ordered block of a session layout. Components are
// resolved by the composer; see composer package for the grammar
// (MAIN_PATTERN, RELATED_ACCESSORIES, PATTERN:TIER, CONDITIONING:...).
type BlockTemplate struct {
	Type       string   `yaml:"type"`
	Label      string   `yaml:"label"`
	Components []string `yaml:"components"`
}

// Isometric is a timed repair hold for the recovery archetype.
type Isometric struct {
	Name        string `yaml:"name"`
	HoldSeconds int    `yaml:"hold_seconds"`
	Sets        int    `yaml:"sets"`
}

// SessionTemplate is the ordered block layout for one archetype.
type SessionTemplate struct {
	Blocks []BlockTemplate `yaml:"blocks"`
}

// Sessions holds the layouts for both archetypes plus the recovery-only
// checklist data the RECOVERY blocks reference.
type Sessions struct {
	Performance      SessionTemplate `yaml:"performance"`
	Recovery         SessionTemplate `yaml:"recovery"`
	MobilityFlow     []string        `yaml:"mobility_flow"`
	RepairIsometrics []Isometric     `yaml:"repair_isometrics"`
}

// #endregion sessions

// #region conditioning

// ProtocolLevel parameterizes one level of a conditioning protocol.
type ProtocolLevel struct {
	Description     string `yaml:"description"`
	WorkSeconds     int    `yaml:"work_seconds"`
	RestSeconds     int    `yaml:"rest_seconds"`
	Rounds          int    `yaml:"rounds"`
	TargetIntensity string `yaml:"target_intensity"`
	IsBenchmark     bool   `yaml:"is_benchmark"`
}

// ProtocolEntry is one protocol level as written in conditioning.yaml.
type ProtocolEntry struct {
	Tier          Protocol `yaml:"tier"`
	Level         int      `yaml:"level"`
	ProtocolLevel `yaml:",inline"`
}

// Conditioning defines the protocols and their per-level parameters.
// Order lists the non-SS protocols considered on standard days; lowest
// current level wins, ties broken by position in Order.
type Conditioning struct {
	Equipment    string          `yaml:"equipment"`
	TrackingUnit string          `yaml:"tracking_unit"`
	MaxLevel     int             `yaml:"max_level"`
	Order        []Protocol      `yaml:"order"`
	RawProtocols []ProtocolEntry `yaml:"protocols"`

	// Protocols is RawProtocols indexed by (tier, level) at load time.
	Protocols map[Protocol]map[int]ProtocolLevel `yaml:"-"`
}

// #endregion conditioning

// #region library

// CatalogSettings is the tracking metadata attached to a catalog exercise.
type CatalogSettings struct {
	Unit       string `yaml:"unit"`
	Unilateral bool   `yaml:"unilateral"`
	Load       string `yaml:"load"`
}

// CatalogEntry is a single exercise in the library catalog.
type CatalogEntry struct {
	Name     string          `yaml:"name"`
	Category string          `yaml:"category"`
	Settings CatalogSettings `yaml:"settings"`
}

// Library is the exercise catalog.
type Library struct {
	Catalog []CatalogEntry `yaml:"catalog"`
}

// #endregion library

// #region config

// Config is the full parsed configuration. Loaded once, immutable, shared
// by reference across concurrent engine calls.
type Config struct {
	Library      Library      `yaml:"library"`
	Logic        Logic        `yaml:"logic"`
	Sessions     Sessions     `yaml:"sessions"`
	Selections   Matrix       `yaml:"selections"`
	Conditioning Conditioning `yaml:"conditioning"`

	catalog map[string]CatalogSettings
}

// CatalogSettings returns the tracking metadata for an exercise name.
// Unknown names get the catalog defaults (REPS, WEIGHTED, bilateral).
func (c *Config) CatalogSettings(name string) CatalogSettings {
	if s, ok := c.catalog[name]; ok {
		return s
	}
	return CatalogSettings{Unit: "REPS", Load: "WEIGHTED"}
}

// #endregion config
