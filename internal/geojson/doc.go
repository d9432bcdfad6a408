// Package geojson validates raw file content as GeoJSON.
//
// Validation runs in three steps: the content is parsed as exactly one JSON
// value, duplicate object members are detected on the token stream, and the
// decoded document is passed to the hint engine. The outcome is a
// gjhint.ValidationResult plus, on failure, a typed *gjhint.Error:
//
//   - KindInvalidJSON when parsing fails (hinting is skipped)
//   - KindInvalidGeoJSON when hinting reports issues, or when the hint
//     engine itself fails (the cause then wraps gjhint.ErrHintEngine)
package geojson
