package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults mirror the battle engine's combat constants and the tuned
// thresholds of the heuristic.
const (
	DefaultHitDamage                  = 30  // damage of a direct attack
	DefaultAreaDamage                 = 20  // damage dealt to every adjacent enemy after a move
	DefaultMaxHealth                  = 100 // health cap
	DefaultHealThreshold              = 60  // allies at or below this get healed
	DefaultCriticalHealth             = 30  // one hit from elimination
	DefaultShortHorizon               = 6   // objectives must be closer than this
	DefaultThreatRadius               = 3   // threats within this distance count toward a surround
	DefaultSurroundCount              = 2   // this many nearby threats force a retreat from all of them
	DefaultResourceImbalanceThreshold = 100 // resource gap above which mines stop being worth it
)

// Deathmatch modes.
const (
	DeathmatchAuto   = "auto"   // on maps with exactly one healing well
	DeathmatchAlways = "always"
	DeathmatchNever  = "never"
)

// Config holds every tunable of the policy. Zero values are replaced by
// defaults in Validate.
type Config struct {
	HitDamage                  int    `yaml:"hit_damage"`
	AreaDamage                 int    `yaml:"area_damage"`
	MaxHealth                  int    `yaml:"max_health"`
	HealThreshold              int    `yaml:"heal_threshold"`
	CriticalHealth             int    `yaml:"critical_health"`
	ShortHorizon               int    `yaml:"short_horizon"`
	ThreatRadius               int    `yaml:"threat_radius"`
	SurroundCount              int    `yaml:"surround_count"`
	ResourceImbalanceThreshold int    `yaml:"resource_imbalance_threshold"`
	IgnoreResources            bool   `yaml:"ignore_resources"`
	Deathmatch                 string `yaml:"deathmatch"`
}

func DefaultConfig() Config {
	return Config{
		HitDamage:                  DefaultHitDamage,
		AreaDamage:                 DefaultAreaDamage,
		MaxHealth:                  DefaultMaxHealth,
		HealThreshold:              DefaultHealThreshold,
		CriticalHealth:             DefaultCriticalHealth,
		ShortHorizon:               DefaultShortHorizon,
		ThreatRadius:               DefaultThreatRadius,
		SurroundCount:              DefaultSurroundCount,
		ResourceImbalanceThreshold: DefaultResourceImbalanceThreshold,
		Deathmatch:                 DeathmatchAuto,
	}
}

// Validate fills unset values with defaults and clamps the rest to ranges the
// heuristic can work with.
func (c *Config) Validate() {
	if c.HitDamage <= 0 {
		c.HitDamage = DefaultHitDamage
	}
	if c.MaxHealth <= 0 {
		c.MaxHealth = DefaultMaxHealth
	}
	c.AreaDamage = clampInt(c.AreaDamage, 0, c.MaxHealth)
	c.HealThreshold = clampInt(c.HealThreshold, 0, c.MaxHealth)
	c.CriticalHealth = clampInt(c.CriticalHealth, 0, c.MaxHealth)
	if c.ShortHorizon <= 0 {
		c.ShortHorizon = DefaultShortHorizon
	}
	if c.ThreatRadius <= 0 {
		c.ThreatRadius = DefaultThreatRadius
	}
	if c.SurroundCount <= 0 {
		c.SurroundCount = DefaultSurroundCount
	}
	if c.ResourceImbalanceThreshold < 0 {
		c.ResourceImbalanceThreshold = 0
	}
	switch c.Deathmatch {
	case DeathmatchAuto, DeathmatchAlways, DeathmatchNever:
	default:
		c.Deathmatch = DeathmatchAuto
	}
}

// LoadConfig reads a YAML tuning file. Keys missing from the file keep their
// default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Validate()
	return cfg, nil
}

// TurnsToElimination is how many direct hits a hero with the given health
// survives, rounded up. Negative projections count as already eliminated.
func (c Config) TurnsToElimination(health int) int {
	hit := c.HitDamage
	if hit <= 0 {
		hit = DefaultHitDamage
	}
	if health <= 0 {
		return 0
	}
	return (health + hit - 1) / hit
}

// Critical reports whether a hero with this health should stop fighting and heal.
func (c Config) Critical(health int) bool { return health <= c.CriticalHealth }

// Hurt reports whether a hero is below full health.
func (c Config) Hurt(health int) bool { return health < c.MaxHealth }

func (c Config) useDeathmatch(wells int) bool {
	switch c.Deathmatch {
	case DeathmatchAlways:
		return true
	case DeathmatchNever:
		return false
	}
	return wells == 1
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
