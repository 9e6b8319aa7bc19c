package rules

import "fmt"

// CompileTactics generates the standard decision ladder. Thresholds are
// interpolated from cfg, so a new config means a new rule set.
func CompileTactics(cfg Config) []*Rule {
	cfg.Validate()
	var rules []*Rule

	rules = append(rules, &Rule{
		Name:         "escape",
		Priority:     600,
		ConditionSrc: `len(Retreat) > 0`,
		Action:       ActionEscape,
	})

	rules = append(rules, &Rule{
		Name:         "engage",
		Priority:     500,
		ConditionSrc: `len(Engage) > 0`,
		Action:       ActionEngage,
	})

	rules = append(rules, &Rule{
		Name:         "hold",
		Priority:     400,
		ConditionSrc: `len(Hold) > 0`,
		Action:       ActionHold,
	})

	rules = append(rules, &Rule{
		Name:         "critical-heal",
		Priority:     300,
		ConditionSrc: fmt.Sprintf(`Self.Health <= %d`, cfg.CriticalHealth),
		Action:       ActionHeal,
	})

	rules = append(rules, &Rule{
		Name:         "objective",
		Priority:     200,
		ConditionSrc: `true`,
		Action:       ActionObjective,
	})

	rules = append(rules, &Rule{
		Name:         "fallback",
		Priority:     100,
		ConditionSrc: `true`,
		Action:       ActionFallback,
	})

	return rules
}

// CompileDeathmatch generates the ladder used on maps with a single healing
// well, where holding the well decides the game.
func CompileDeathmatch(cfg Config) []*Rule {
	cfg.Validate()
	var rules []*Rule

	rules = append(rules, &Rule{
		Name:         "finish-neighbor",
		Priority:     300,
		ConditionSrc: `NeighborLethal()`,
		Action:       ActionNeighbor,
	})

	rules = append(rules, &Rule{
		Name:         "race-to-well",
		Priority:     200,
		ConditionSrc: fmt.Sprintf(`!AdjacentToWell() || Self.Health <= %d || !HasNeighborTarget()`, cfg.CriticalHealth),
		Action:       ActionRaceToWell,
	})

	// Also catches the case where the well and every fallback are unreachable.
	rules = append(rules, &Rule{
		Name:         "engage-neighbor",
		Priority:     100,
		ConditionSrc: `HasNeighborTarget()`,
		Action:       ActionNeighbor,
	})

	return rules
}
