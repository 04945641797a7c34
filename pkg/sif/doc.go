// Package sif serializes extracted and simplified networks as SIF-style
// edge tables.
//
// Two layouts exist. The intermediate table is the extraction output, one
// row per [extract.Edge], and carries the endpoint roles:
//
//	PARTICIPANT_A  INTERACTION_TYPE  PARTICIPANT_B  ANNOTATION_SOURCE
//	ANNOTATION_INTERACTION  ANNOTATION_TARGET  SOURCE_TYPE  TARGET_TYPE
//	SOURCE_CLASS  TARGET_CLASS
//
// The simplified table is the projected network, one row per graph edge,
// without the role columns.
//
// Tables are written as tab-separated text with [WriteTSV] or as a workbook
// with [WriteXLSX]. [ReadIntermediate] parses the intermediate form back so
// simplification can be rerun without the original diagram.
package sif
