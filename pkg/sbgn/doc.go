// Package sbgn decodes SBGN-ML pathway diagrams into a plain in-memory model.
//
// # Overview
//
// SBGN-ML describes a pathway as maps of glyphs (nodes) connected by arcs.
// This package keeps only the subset needed to derive an edge list:
//
//   - glyph id, class, labels and ports
//   - rdf:li references found in a glyph's extension/annotation block
//   - arc id, class, source and target
//
// Layout information (bounding boxes, arc geometry, nested glyphs) is
// discarded.
//
// The model carries no logic. Resolving labels, ports, roles and annotations
// into edges is the job of package extract.
//
// # Usage
//
//	doc, err := sbgn.DecodeFile("pamp.sbgn")
//	if err != nil {
//	    return err // MALFORMED_DOCUMENT or FILE_NOT_FOUND
//	}
//	fmt.Println(len(doc.Maps), doc.GlyphCount(), doc.ArcCount())
package sbgn
