// Package pkg provides the libraries behind sbgn2sif.
//
// # Overview
//
// sbgn2sif turns SBGN-ML process description maps into simple interaction
// format (SIF) networks. Entities connected through a process node in the
// map become directly connected in the output, with the edge named after the
// arc types on either side of the process.
//
// # Architecture
//
// The data flow:
//
//	SBGN-ML file
//	     ↓
//	[sbgn] decode maps, glyphs, ports and arcs
//	     ↓
//	[extract] typed edge list + warnings (intermediate SIF)
//	     ↓
//	[bipartite] build → project → compose
//	     ↓
//	[sif] simplified SIF table (TSV or XLSX)
//
// [render] draws the mediating graph and its projection as DOT or SVG.
// [pipeline] runs the stages in order and reports them to [observability].
// [config] loads settings files; [errors] defines the coded errors shared by
// all packages.
//
// # Quick Start
//
//	doc, err := sbgn.DecodeFile("pamp.sbgn")
//	if err != nil {
//	    return err
//	}
//	res, err := pipeline.NewRunner(nil).Execute(ctx, doc, pipeline.Options{Sanitize: true})
//	if err != nil {
//	    return err
//	}
//	return sif.WriteTSV(os.Stdout, sif.SimplifiedTable(res.Simplified))
package pkg
