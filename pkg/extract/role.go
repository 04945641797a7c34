package extract

// Role is the three-way classification of a glyph that drives annotation
// slot assignment and bipartite routing.
type Role string

const (
	// RoleProcess marks mediating glyphs: reactions and other transformations.
	RoleProcess Role = "process"
	// RoleLogic marks logical operators (and, or, not, equivalence).
	RoleLogic Role = "logic"
	// RoleEntityPool marks everything else: biological entities and states.
	RoleEntityPool Role = "entity_pool"
)

var processClasses = map[string]bool{
	"process":           true,
	"omitted process":   true,
	"uncertain process": true,
	"association":       true,
	"dissociation":      true,
}

var logicClasses = map[string]bool{
	"and":         true,
	"or":          true,
	"not":         true,
	"equivalence": true,
}

// ClassifyRole maps an SBGN glyph class to its role. Unknown and empty
// classes are entity pools.
func ClassifyRole(class string) Role {
	switch {
	case processClasses[class]:
		return RoleProcess
	case logicClasses[class]:
		return RoleLogic
	default:
		return RoleEntityPool
	}
}

// ParseRole converts the serialized form of a role back into a Role.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleProcess, RoleLogic, RoleEntityPool:
		return r, true
	}
	return "", false
}

func (r Role) String() string { return string(r) }
