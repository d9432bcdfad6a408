// Package hint implements structural GeoJSON validation ("hinting").
//
// Hinting walks a decoded JSON value and collects every deviation from the
// GeoJSON object model instead of stopping at the first one. Each issue is
// located by a JSON Pointer and carries one of two levels:
//
//   - error: the document violates the format (missing members, wrong
//     types, short or unclosed rings, malformed bbox or crs)
//   - message: the document is usable but not recommended (winding order,
//     excessive precision, positions with more than three elements,
//     single-member GeometryCollections)
//
// # Usage
//
//	h := hint.New(gjhint.DefaultHintOptions())
//	issues := h.Hint(doc)
//	for _, it := range issues {
//	    fmt.Println(it)
//	}
package hint
