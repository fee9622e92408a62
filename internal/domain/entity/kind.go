package entity

// Kind is the source collection a record comes from.
type Kind string

// Record kinds.
const (
	Treatment Kind = "treatment"
	Condition Kind = "condition"
	Resource  Kind = "resource"
)

// Kinds lists every kind in corpus order: treatments, conditions, resources.
func Kinds() []Kind {
	return []Kind{Treatment, Condition, Resource}
}

// IsValid checks if the kind is one of the supported values.
func (k Kind) IsValid() bool {
	return k == Treatment || k == Condition || k == Resource
}
