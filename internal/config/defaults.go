package config

// Default returns the built-in configuration. Load overlays the YAML
// files on top of it, so a partial config dir only overrides the
// sections it ships. Callers using Default directly must call Finalize.

// #region default

func Default() *Config {
	return &Config{
		Library:      defaultLibrary(),
		Logic:        defaultLogic(),
		Sessions:     defaultSessions(),
		Selections:   defaultSelections(),
		Conditioning: defaultConditioning(),
	}
}

// #endregion default

// #region logic

func defaultLogic() Logic {
	return Logic{
		Thresholds: Thresholds{
			Pain:   Band{Lower: 3, Upper: 6},
			Energy: Band{Lower: 2, Upper: 5},
		},
		PatternPriority: []Pattern{PatternSquat, PatternHinge, PatternPush, PatternPull},
		PowerSelection: map[State]Tier{
			StateGreen:  TierHigh,
			StateOrange: TierLow,
			StateRed:    TierUpper,
		},
		RawRelationships: map[Pattern][]string{
			PatternSquat: {"HINGE:ACCESSORY_HIP", "PULL:ACCESSORY_HORIZONTAL"},
			PatternHinge: {"SQUAT:ACCESSORY_KNEE", "PUSH:ACCESSORY_VERTICAL"},
			PatternPush:  {"PULL:ACCESSORY_HORIZONTAL", "SQUAT:ACCESSORY_KNEE"},
			PatternPull:  {"PUSH:ACCESSORY_VERTICAL", "HINGE:ACCESSORY_HIP"},
		},
		Patterns: PatternGroups{
			Main: []Pattern{PatternSquat, PatternHinge, PatternPush, PatternPull},
			Core: []Pattern{PatternCoreTransverse, PatternCoreSagittal, PatternCoreFrontal},
		},
	}
}

// #endregion logic

// #region sessions

func defaultSessions() Sessions {
	return Sessions{
		Performance: SessionTemplate{
			Blocks: []BlockTemplate{
				{Type: "PREP", Label: "Prep & Core", Components: []string{"MOBILITY:DYNAMIC", "PATELLAR_ISO:PREP", "CORE"}},
				{Type: "POWER", Label: "Power", Components: []string{"POWER"}},
				{Type: "MAIN", Label: "Main Lift", Components: []string{"MAIN_PATTERN"}},
				{Type: "ACCESSORIES", Label: "Accessories", Components: []string{"RELATED_ACCESSORIES"}},
				{Type: "CONDITIONING", Label: "Conditioning", Components: []string{"CONDITIONING:AUTO"}},
			},
		},
		Recovery: SessionTemplate{
			Blocks: []BlockTemplate{
				{Type: "PREP", Label: "Mobility Flow", Components: []string{"MOBILITY_FLOW"}},
				{Type: "ISOMETRICS", Label: "Repair Isometrics", Components: []string{"REPAIR_ISOMETRICS"}},
				{Type: "ACCESSORIES", Label: "Balanced Pump", Components: []string{"PLANE_BALANCE"}},
				{Type: "CONDITIONING", Label: "Steady State", Components: []string{"CONDITIONING:SS"}},
			},
		},
		MobilityFlow: []string{
			"Couch Stretch",
			"90/90 Hip Switch",
			"Ankle Rocks",
			"Thoracic Openers",
		},
		RepairIsometrics: []Isometric{
			{Name: "Spanish Squat Hold", HoldSeconds: 45, Sets: 3},
			{Name: "Split Squat Iso Hold", HoldSeconds: 30, Sets: 3},
		},
	}
}

// #endregion sessions

// #region selections

func defaultSelections() Matrix {
	return Matrix{
		PatternSquat: {
			TierMain: {
				StateGreen:  "Back Squat",
				StateOrange: "Box Squat",
				StateRed:    Skip,
			},
			TierAccessoryKnee: {
				StateGreen:  "Bulgarian Split Squat",
				StateOrange: "Leg Press",
				StateRed:    Skip,
			},
		},
		PatternHinge: {
			TierMain: {
				StateGreen:  "Trap Bar Deadlift",
				StateOrange: "Romanian Deadlift",
				StateRed:    Skip,
			},
			TierAccessoryHip: {
				StateGreen:  "Hip Thrust",
				StateOrange: "Single-Leg Hip Thrust",
				StateRed:    "Glute Bridge",
			},
		},
		PatternPush: {
			TierMain: {
				StateGreen:  "Bench Press",
				StateOrange: "Landmine Press",
				StateRed:    "Floor Press",
			},
			TierAccessoryVertical: {
				StateGreen:  "Overhead Press",
				StateOrange: "Half-Kneeling Landmine Press",
				StateRed:    "Seated DB Press",
			},
			TierAccessoryHorizontal: {
				StateGreen:  "Incline DB Press",
				StateOrange: "Push-Up",
				StateRed:    "Push-Up",
			},
		},
		PatternPull: {
			TierMain: {
				StateGreen:  "Weighted Pull-Up",
				StateOrange: "Chest-Supported Row",
				StateRed:    "Band Row",
			},
			TierAccessoryVertical: {
				StateGreen:  "Lat Pulldown",
				StateOrange: "Half-Kneeling Band Pulldown",
				StateRed:    "Band Pulldown",
			},
			TierAccessoryHorizontal: {
				StateGreen:  "Barbell Row",
				StateOrange: "Chest-Supported Row",
				StateRed:    "Band Row",
			},
		},
		PatternCoreTransverse: {
			TierCore: {
				StateGreen:  "Pallof Press",
				StateOrange: "Pallof Press",
				StateRed:    "Pallof Press",
			},
		},
		PatternCoreSagittal: {
			TierCore: {
				StateGreen:  "Hanging Knee Raise",
				StateOrange: "Dead Bug",
				StateRed:    "Dead Bug",
			},
		},
		PatternCoreFrontal: {
			TierCore: {
				StateGreen:  "Suitcase Carry",
				StateOrange: "Side Plank",
				StateRed:    "Side Plank",
			},
		},
		PatternRFD: {
			TierHigh:  {StateGreen: "Trap Bar Jump"},
			TierLow:   {StateOrange: "Box Jump"},
			TierUpper: {StateRed: "Med Ball Chest Pass"},
		},
		PatternPatellarIso: {
			TierPrep: {
				StateGreen:  "Spanish Squat Hold",
				StateOrange: "Spanish Squat Hold",
				StateRed:    "Spanish Squat Hold",
			},
		},
		PatternMobility: {
			TierDynamic: {
				StateGreen:  "World's Greatest Stretch",
				StateOrange: "World's Greatest Stretch",
				StateRed:    "World's Greatest Stretch",
			},
		},
	}
}

// #endregion selections

// #region conditioning

func defaultConditioning() Conditioning {
	return Conditioning{
		Equipment:    "Assault Bike",
		TrackingUnit: "WATTS",
		MaxLevel:     7,
		Order:        []Protocol{ProtocolSIT, ProtocolHIIT},
		RawProtocols: []ProtocolEntry{
			{Tier: ProtocolSS, Level: 1, ProtocolLevel: ProtocolLevel{
				Description: "Zone 2 - steady effort, nasal breathing", WorkSeconds: 1200, RestSeconds: 0, Rounds: 1, TargetIntensity: "ZONE2",
			}},

			{Tier: ProtocolSIT, Level: 1, ProtocolLevel: ProtocolLevel{Description: "All-out sprints, full recovery", WorkSeconds: 15, RestSeconds: 180, Rounds: 4, TargetIntensity: "MAX"}},
			{Tier: ProtocolSIT, Level: 2, ProtocolLevel: ProtocolLevel{Description: "All-out sprints, full recovery", WorkSeconds: 15, RestSeconds: 180, Rounds: 5, TargetIntensity: "MAX"}},
			{Tier: ProtocolSIT, Level: 3, ProtocolLevel: ProtocolLevel{Description: "All-out sprints, full recovery", WorkSeconds: 20, RestSeconds: 180, Rounds: 5, TargetIntensity: "MAX"}},
			{Tier: ProtocolSIT, Level: 4, ProtocolLevel: ProtocolLevel{Description: "All-out sprints, full recovery", WorkSeconds: 20, RestSeconds: 160, Rounds: 6, TargetIntensity: "MAX"}},
			{Tier: ProtocolSIT, Level: 5, ProtocolLevel: ProtocolLevel{Description: "All-out sprints, full recovery", WorkSeconds: 25, RestSeconds: 160, Rounds: 6, TargetIntensity: "MAX"}},
			{Tier: ProtocolSIT, Level: 6, ProtocolLevel: ProtocolLevel{Description: "All-out sprints, full recovery", WorkSeconds: 25, RestSeconds: 150, Rounds: 7, TargetIntensity: "MAX"}},
			{Tier: ProtocolSIT, Level: 7, ProtocolLevel: ProtocolLevel{Description: "All-out sprints, full recovery", WorkSeconds: 30, RestSeconds: 150, Rounds: 8, TargetIntensity: "MAX", IsBenchmark: true}},

			{Tier: ProtocolHIIT, Level: 1, ProtocolLevel: ProtocolLevel{Description: "Hard intervals, incomplete rest", WorkSeconds: 30, RestSeconds: 90, Rounds: 6, TargetIntensity: "BENCHMARK_1.0"}},
			{Tier: ProtocolHIIT, Level: 2, ProtocolLevel: ProtocolLevel{Description: "Hard intervals, incomplete rest", WorkSeconds: 30, RestSeconds: 75, Rounds: 6, TargetIntensity: "BENCHMARK_1.0"}},
			{Tier: ProtocolHIIT, Level: 3, ProtocolLevel: ProtocolLevel{Description: "Hard intervals, incomplete rest", WorkSeconds: 30, RestSeconds: 60, Rounds: 7, TargetIntensity: "BENCHMARK_1.1"}},
			{Tier: ProtocolHIIT, Level: 4, ProtocolLevel: ProtocolLevel{Description: "Hard intervals, incomplete rest", WorkSeconds: 40, RestSeconds: 60, Rounds: 7, TargetIntensity: "BENCHMARK_1.1"}},
			{Tier: ProtocolHIIT, Level: 5, ProtocolLevel: ProtocolLevel{Description: "Hard intervals, incomplete rest", WorkSeconds: 40, RestSeconds: 50, Rounds: 8, TargetIntensity: "BENCHMARK_1.2"}},
			{Tier: ProtocolHIIT, Level: 6, ProtocolLevel: ProtocolLevel{Description: "Hard intervals, incomplete rest", WorkSeconds: 45, RestSeconds: 45, Rounds: 8, TargetIntensity: "BENCHMARK_1.2"}},
			{Tier: ProtocolHIIT, Level: 7, ProtocolLevel: ProtocolLevel{Description: "Hard intervals, incomplete rest", WorkSeconds: 45, RestSeconds: 40, Rounds: 9, TargetIntensity: "BENCHMARK_1.3", IsBenchmark: true}},
		},
	}
}

// #endregion conditioning

// #region library

func defaultLibrary() Library {
	weighted := func(name, category string) CatalogEntry {
		return CatalogEntry{Name: name, Category: category, Settings: CatalogSettings{Unit: "REPS", Load: "WEIGHTED"}}
	}
	bodyweight := func(name, category string) CatalogEntry {
		return CatalogEntry{Name: name, Category: category, Settings: CatalogSettings{Unit: "REPS", Load: "BODYWEIGHT"}}
	}
	timed := func(name, category string) CatalogEntry {
		return CatalogEntry{Name: name, Category: category, Settings: CatalogSettings{Unit: "SECS", Load: "BODYWEIGHT"}}
	}
	unilateral := func(e CatalogEntry) CatalogEntry {
		e.Settings.Unilateral = true
		return e
	}

	return Library{
		Catalog: []CatalogEntry{
			weighted("Back Squat", "SQUAT"),
			weighted("Box Squat", "SQUAT"),
			unilateral(weighted("Bulgarian Split Squat", "SQUAT")),
			weighted("Leg Press", "SQUAT"),

			weighted("Trap Bar Deadlift", "HINGE"),
			weighted("Romanian Deadlift", "HINGE"),
			weighted("Hip Thrust", "HINGE"),
			unilateral(weighted("Single-Leg Hip Thrust", "HINGE")),
			weighted("Glute Bridge", "HINGE"),

			weighted("Bench Press", "PUSH"),
			unilateral(weighted("Landmine Press", "PUSH")),
			weighted("Floor Press", "PUSH"),
			weighted("Overhead Press", "PUSH"),
			unilateral(weighted("Half-Kneeling Landmine Press", "PUSH")),
			weighted("Seated DB Press", "PUSH"),
			weighted("Incline DB Press", "PUSH"),
			bodyweight("Push-Up", "PUSH"),

			weighted("Weighted Pull-Up", "PULL"),
			weighted("Chest-Supported Row", "PULL"),
			weighted("Barbell Row", "PULL"),
			weighted("Lat Pulldown", "PULL"),
			unilateral(weighted("Half-Kneeling Band Pulldown", "PULL")),
			bodyweight("Band Pulldown", "PULL"),
			bodyweight("Band Row", "PULL"),

			unilateral(weighted("Pallof Press", "CORE")),
			bodyweight("Hanging Knee Raise", "CORE"),
			bodyweight("Dead Bug", "CORE"),
			unilateral(weighted("Suitcase Carry", "CORE")),
			unilateral(timed("Side Plank", "CORE")),

			weighted("Trap Bar Jump", "RFD"),
			bodyweight("Box Jump", "RFD"),
			weighted("Med Ball Chest Pass", "RFD"),

			timed("Spanish Squat Hold", "ISOMETRIC"),
			unilateral(timed("Split Squat Iso Hold", "ISOMETRIC")),

			timed("World's Greatest Stretch", "MOBILITY"),
			timed("Couch Stretch", "MOBILITY"),
			timed("90/90 Hip Switch", "MOBILITY"),
			timed("Ankle Rocks", "MOBILITY"),
			timed("Thoracic Openers", "MOBILITY"),
		},
	}
}

// #endregion library
