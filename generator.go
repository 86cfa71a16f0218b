package idgen

import "github.com/google/uuid"

// Generator produces one identifier per call.
type Generator interface {
	GenerateID() uuid.UUID
}

// Strategy names accepted by Config.
const (
	StrategyAlternative = "alternative"
	StrategyStriped     = "striped"
	StrategySecure      = "secure"
	StrategySimple      = "simple"
)

var (
	_ Generator = (*Alternative)(nil)
	_ Generator = (*Striped)(nil)
	_ Generator = (*Secure)(nil)
	_ Generator = (*Simple)(nil)
)
