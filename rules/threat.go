package rules

import "github.com/nstehr/tactician/model"

// Role is a guess at how an enemy plays, inferred from its stats.
type Role int

const (
	RoleUnknown Role = iota
	RoleKiller
	RoleMiner
)

func (r Role) String() string {
	switch r {
	case RoleKiller:
		return "killer"
	case RoleMiner:
		return "miner"
	}
	return "unknown"
}

// ClassifyRole assumes most heroes either hunt or mine. A hero that has done
// both, or neither, gives no signal.
func ClassifyRole(h *model.Hero) Role {
	miner := h.MinesCaptured > 0
	killer := h.Kills > 0
	if miner == killer {
		return RoleUnknown
	}
	if miner {
		return RoleMiner
	}
	return RoleKiller
}

// IsThreat treats everyone except a known miner as likely to attack.
func IsThreat(h *model.Hero) bool {
	return ClassifyRole(h) != RoleMiner
}

// AdjacentToHealing reports whether a healing well is one step from p.
func AdjacentToHealing(b *model.Board, p model.Point) bool {
	for _, t := range b.Around(p) {
		if t.Kind == model.TileHealingWell {
			return true
		}
	}
	return false
}
