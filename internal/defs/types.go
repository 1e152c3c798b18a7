// internal/defs/types.go
package defs

import "fmt"

// PartKind tags a field pickup.
type PartKind int

const (
	PartEdge PartKind = iota
	PartRegen
	PartWave
	PartScore
)

// PartKinds lists every kind in declaration order.
var PartKinds = []PartKind{PartEdge, PartRegen, PartWave, PartScore}

func (k PartKind) String() string {
	switch k {
	case PartEdge:
		return "edge"
	case PartRegen:
		return "regen"
	case PartWave:
		return "wave"
	case PartScore:
		return "score"
	default:
		return fmt.Sprintf("PartKind(%d)", int(k))
	}
}

// UnmarshalText lets definition files name kinds by string.
func (k *PartKind) UnmarshalText(text []byte) error {
	for _, kind := range PartKinds {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown part kind %q", text)
}

// EnemyVariant tags a wild enemy's behaviour and stat profile.
type EnemyVariant int

const (
	VariantChaser EnemyVariant = iota
	VariantSkitter
	VariantBrute
)

// EnemyVariants lists every variant in declaration order.
var EnemyVariants = []EnemyVariant{VariantChaser, VariantSkitter, VariantBrute}

func (v EnemyVariant) String() string {
	switch v {
	case VariantChaser:
		return "chaser"
	case VariantSkitter:
		return "skitter"
	case VariantBrute:
		return "brute"
	default:
		return fmt.Sprintf("EnemyVariant(%d)", int(v))
	}
}

// UnmarshalText lets definition files name variants by string.
func (v *EnemyVariant) UnmarshalText(text []byte) error {
	for _, variant := range EnemyVariants {
		if variant.String() == string(text) {
			*v = variant
			return nil
		}
	}
	return fmt.Errorf("unknown enemy variant %q", text)
}
