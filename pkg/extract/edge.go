package extract

import "strings"

// Edge is one extracted interaction. It is a comparable value; two arcs that
// resolve to equal Edges within a map collapse to one.
type Edge struct {
	Source      string // source glyph label
	Interaction string // arc class, e.g. "consumption"
	Target      string // target glyph label

	AnnotationSource      string
	AnnotationInteraction string
	AnnotationTarget      string

	SourceRole Role
	TargetRole Role

	SourceClass string
	TargetClass string
}

// Fields returns the edge in intermediate table column order.
func (e Edge) Fields() []string {
	return []string{
		e.Source, e.Interaction, e.Target,
		e.AnnotationSource, e.AnnotationInteraction, e.AnnotationTarget,
		string(e.SourceRole), string(e.TargetRole),
		e.SourceClass, e.TargetClass,
	}
}

// String returns the tab-separated row form of the edge.
func (e Edge) String() string { return strings.Join(e.Fields(), "\t") }

// TouchesProcess reports whether either endpoint is a mediating glyph.
func (e Edge) TouchesProcess() bool {
	return e.SourceRole == RoleProcess || e.TargetRole == RoleProcess
}

// TouchesLogic reports whether either endpoint is a logical operator.
func (e Edge) TouchesLogic() bool {
	return e.SourceRole == RoleLogic || e.TargetRole == RoleLogic
}
