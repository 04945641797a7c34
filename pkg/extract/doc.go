// Package extract turns a decoded SBGN-ML document into a flat, typed edge
// list.
//
// # Overview
//
// Each map is processed in four passes, in this order:
//
//  1. Glyphs are registered by id. The label is the "|"-joined list of
//     distinct label texts (newlines folded to spaces), or the id when the
//     glyph has no label.
//  2. Ports are registered as aliases of their parent glyph. An arc that
//     ends on a port behaves exactly as if it ended on the glyph.
//  3. Annotations are resolved: the distinct rdf:li resources of a glyph,
//     "|"-joined.
//  4. Arcs are validated, each endpoint is classified into a [Role], the
//     annotation slots are filled and the resulting [Edge] is kept unless an
//     identical edge was already seen in the same map.
//
// Annotation lookups in pass 4 rely on pass 3 having finished for the map.
//
// # Annotation Slots
//
// An edge carries three annotation slots. When one endpoint is a process,
// that endpoint's annotation describes the interaction, not a participant:
//
//	source role  target role  source slot   interaction slot  target slot
//	process      any          ""            ann(source)       ann(target)
//	other        process      ann(source)   ann(target)       ""
//	other        other        ann(source)   ""                ann(target)
//
// # Warnings
//
// Duplicate or missing ids, empty references, arcs with no class and arcs
// pointing at unknown glyphs are skipped and reported in [Result.Warnings].
// They never abort a run.
//
// # Concurrency
//
// Maps share no state, so [Options.Workers] > 1 processes them in parallel.
// Results are written to per-map slots and concatenated in document order.
package extract
