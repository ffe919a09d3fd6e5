package models

// CapabilityDimension is one of the six fixed axes the analysis scores a
// client on. The set is closed: scores are rejected unless they cover exactly
// these dimensions.
type CapabilityDimension string

const (
	DimensionPersistence  CapabilityDimension = "継続・集中力"
	DimensionExecution    CapabilityDimension = "実行・行動力"
	DimensionEmpathy      CapabilityDimension = "共感・協調性"
	DimensionLogic        CapabilityDimension = "論理・分析力"
	DimensionCreativity   CapabilityDimension = "創造・発想力"
	DimensionPlanning    CapabilityDimension = "計画・堅実性"
)

// CapabilityDimensions returns the dimensions in canonical display order.
// The order is also the tie-break order for rankings.
func CapabilityDimensions() []CapabilityDimension {
	return []CapabilityDimension{
		DimensionPersistence,
		DimensionExecution,
		DimensionEmpathy,
		DimensionLogic,
		DimensionCreativity,
		DimensionPlanning,
	}
}

// IsValidDimension reports whether name is one of the six fixed labels.
func IsValidDimension(name string) bool {
	for _, d := range CapabilityDimensions() {
		if string(d) == name {
			return true
		}
	}
	return false
}
