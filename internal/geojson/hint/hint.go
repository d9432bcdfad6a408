package hint

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/vvka-141/gjhint/pkg/gjhint"
)

// maxPrecisionIssues caps the precision messages reported for one document.
const maxPrecisionIssues = 10

var geometryTypes = []string{
	"Point",
	"MultiPoint",
	"LineString",
	"MultiLineString",
	"Polygon",
	"MultiPolygon",
	"GeometryCollection",
}

var allTypes = append([]string{"Feature", "FeatureCollection"}, geometryTypes...)

// Members that may not appear on an object of the given kind of type.
var (
	featureCollectionForbidden = []string{"coordinates", "geometry", "geometries"}
	featureForbidden           = []string{"features", "coordinates", "geometries"}
	geometryForbidden          = []string{"features", "geometry", "properties"}
)

// Hinter checks parsed JSON values against the GeoJSON rules.
// A Hinter is immutable and safe for concurrent use.
type Hinter struct {
	opts gjhint.HintOptions
}

// New creates a Hinter with the given options. A negative MaxPrecision
// falls back to gjhint.DefaultMaxPrecision.
func New(opts gjhint.HintOptions) *Hinter {
	if opts.MaxPrecision < 0 {
		opts.MaxPrecision = gjhint.DefaultMaxPrecision
	}
	return &Hinter{opts: opts}
}

// Hint returns every issue found in doc, in document order. doc is a value
// decoded from JSON: maps, slices, strings, bools, nil, and numbers as
// json.Number or float64.
func (h *Hinter) Hint(doc any) gjhint.Issues {
	w := &walker{opts: h.opts}
	w.root(doc)
	return w.issues
}

type walker struct {
	opts           gjhint.HintOptions
	issues         gjhint.Issues
	precisionCount int
}

func (w *walker) add(path, code, format string, args ...any) {
	w.issues = append(w.issues, gjhint.Issue{
		Path:    path,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Level:   gjhint.LevelError,
	})
}

func (w *walker) message(path, code, format string, args ...any) {
	w.issues = append(w.issues, gjhint.Issue{
		Path:    path,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Level:   gjhint.LevelMessage,
	})
}

func (w *walker) root(doc any) {
	obj, ok := doc.(map[string]any)
	if !ok {
		w.add("", gjhint.CodeInvalidType, "The root of a GeoJSON object must be an object.")
		return
	}
	w.object(obj, "", allTypes, "")
}

// object dispatches on the "type" member. allowed lists the types accepted
// at this position and expected describes them for error messages.
func (w *walker) object(obj map[string]any, path string, allowed []string, expected string) {
	typ, ok := w.typeMember(obj, path)
	if !ok {
		return
	}

	if !contains(allowed, typ) {
		if canonical, found := matchFold(allTypes, typ); found && canonical != typ {
			w.add(join(path, "type"), gjhint.CodeCaseMismatch, "Expected %s but got %s (case sensitive)", canonical, typ)
			return
		}
		if contains(allTypes, typ) {
			w.add(join(path, "type"), gjhint.CodeInvalidType, "The type %s is not allowed here, expected %s", typ, expected)
			return
		}
		w.add(join(path, "type"), gjhint.CodeUnknownType, "The type %s is unknown", typ)
		return
	}

	w.bbox(obj, path)
	w.crs(obj, path)

	switch typ {
	case "FeatureCollection":
		w.featureCollection(obj, path)
	case "Feature":
		w.feature(obj, path)
	case "GeometryCollection":
		w.geometryCollection(obj, path)
	default:
		w.geometry(obj, path, typ)
	}
}

func (w *walker) typeMember(obj map[string]any, path string) (string, bool) {
	raw, present := obj["type"]
	if !present {
		w.add(path, gjhint.CodeRequired, `"type" member required`)
		return "", false
	}
	typ, ok := raw.(string)
	if !ok {
		w.add(join(path, "type"), gjhint.CodeInvalidType, `"type" member should be string, but is %s instead`, kindOf(raw))
		return "", false
	}
	return typ, true
}

func (w *walker) forbid(obj map[string]any, path, typ string, members []string) {
	for _, m := range members {
		if _, present := obj[m]; present {
			w.add(join(path, m), gjhint.CodeForeignMember, `%s object cannot contain a "%s" member`, typ, m)
		}
	}
}

func (w *walker) featureCollection(obj map[string]any, path string) {
	w.forbid(obj, path, "FeatureCollection", featureCollectionForbidden)

	features, ok := w.requiredArray(obj, path, "features")
	if !ok {
		return
	}
	for i, f := range features {
		p := join(path, "features", strconv.Itoa(i))
		fo, isObj := f.(map[string]any)
		if !isObj {
			w.add(p, gjhint.CodeInvalidType, "Every feature must be an object, but is %s instead", kindOf(f))
			continue
		}
		w.object(fo, p, []string{"Feature"}, "Feature")
	}
}

func (w *walker) feature(obj map[string]any, path string) {
	w.forbid(obj, path, "Feature", featureForbidden)

	if id, present := obj["id"]; present {
		switch id.(type) {
		case string, json.Number, float64:
		default:
			w.add(join(path, "id"), gjhint.CodeInvalidType, `Feature "id" member must have a string or number value`)
		}
	}

	if props, present := obj["properties"]; !present {
		w.add(path, gjhint.CodeRequired, `"properties" member required`)
	} else if props != nil {
		if _, isObj := props.(map[string]any); !isObj {
			w.add(join(path, "properties"), gjhint.CodeInvalidType, `"properties" member should be object, but is %s instead`, kindOf(props))
		}
	}

	geom, present := obj["geometry"]
	if !present {
		w.add(path, gjhint.CodeRequired, `"geometry" member required`)
		return
	}
	if geom == nil {
		return
	}
	gobj, isObj := geom.(map[string]any)
	if !isObj {
		w.add(join(path, "geometry"), gjhint.CodeInvalidType, `"geometry" member should be object, but is %s instead`, kindOf(geom))
		return
	}
	w.object(gobj, join(path, "geometry"), geometryTypes, "a geometry")
}

func (w *walker) geometryCollection(obj map[string]any, path string) {
	w.forbid(obj, path, "GeometryCollection", append([]string{"coordinates"}, geometryForbidden...))

	geoms, ok := w.requiredArray(obj, path, "geometries")
	if !ok {
		return
	}
	if len(geoms) == 1 {
		w.message(join(path, "geometries"), gjhint.CodeSingleGeometry,
			"GeometryCollection with a single geometry should be avoided in favor of single part or a single object of multi-part type")
	}
	for i, g := range geoms {
		p := join(path, "geometries", strconv.Itoa(i))
		gobj, isObj := g.(map[string]any)
		if !isObj {
			w.add(p, gjhint.CodeInvalidType, "Every geometry must be an object, but is %s instead", kindOf(g))
			continue
		}
		w.object(gobj, p, geometryTypes, "a geometry")
	}
}

func (w *walker) geometry(obj map[string]any, path, typ string) {
	w.forbid(obj, path, typ, append([]string{"geometries"}, geometryForbidden...))

	coords, ok := w.requiredArray(obj, path, "coordinates")
	if !ok {
		return
	}
	p := join(path, "coordinates")

	switch typ {
	case "Point":
		w.position(coords, p)
	case "MultiPoint":
		w.positions(coords, p)
	case "LineString":
		w.lineString(coords, p)
	case "MultiLineString":
		for i, line := range coords {
			if arr, ok := w.array(line, join(p, strconv.Itoa(i))); ok {
				w.lineString(arr, join(p, strconv.Itoa(i)))
			}
		}
	case "Polygon":
		w.polygon(coords, p)
	case "MultiPolygon":
		for i, poly := range coords {
			if arr, ok := w.array(poly, join(p, strconv.Itoa(i))); ok {
				w.polygon(arr, join(p, strconv.Itoa(i)))
			}
		}
	}
}

func (w *walker) lineString(coords []any, path string) {
	w.positions(coords, path)
	if len(coords) < 2 {
		w.add(path, gjhint.CodeTooShort, "a line needs to have two or more coordinates to be valid")
	}
}

func (w *walker) polygon(rings []any, path string) {
	for i, r := range rings {
		p := join(path, strconv.Itoa(i))
		arr, ok := w.array(r, p)
		if !ok {
			continue
		}
		pts := w.positions(arr, p)
		if len(arr) < 4 {
			w.add(p, gjhint.CodeTooShort, "a LinearRing of coordinates needs to have four or more positions")
			continue
		}
		if len(pts) != len(arr) {
			// Some position was malformed and already reported.
			continue
		}
		if !samePosition(pts[0], pts[len(pts)-1]) {
			w.add(p, gjhint.CodeRingNotClosed, "the first and last positions in a LinearRing of coordinates must be the same")
			continue
		}
		if w.opts.IgnoreRightHandRule {
			continue
		}
		area := signedArea(pts)
		exterior := i == 0
		if (exterior && area < 0) || (!exterior && area > 0) {
			w.message(p, gjhint.CodeRightHandRule, "Polygons and MultiPolygons should follow the right-hand rule")
		}
	}
}

// positions validates coords as an array of positions and returns the ones
// that are well formed.
func (w *walker) positions(coords []any, path string) [][]float64 {
	out := make([][]float64, 0, len(coords))
	for i, c := range coords {
		if pos, ok := w.position(c, join(path, strconv.Itoa(i))); ok {
			out = append(out, pos)
		}
	}
	return out
}

func (w *walker) position(v any, path string) ([]float64, bool) {
	arr, isArr := v.([]any)
	if !isArr {
		w.add(path, gjhint.CodeInvalidType, "position should be an array, is %s instead", kindOf(v))
		return nil, false
	}
	if len(arr) < 2 {
		w.add(path, gjhint.CodeTooShort, "position must have 2 or more elements")
		return nil, false
	}
	if len(arr) > 3 {
		w.message(path, gjhint.CodeTooLong, "position should not have more than 3 elements")
	}

	pos := make([]float64, 0, len(arr))
	for i, el := range arr {
		f, text, ok := number(el)
		if !ok {
			w.add(join(path, strconv.Itoa(i)), gjhint.CodeInvalidType, "each element in a position must be a number")
			return nil, false
		}
		pos = append(pos, f)
		w.precision(text, join(path, strconv.Itoa(i)))
	}
	return pos, true
}

func (w *walker) precision(text, path string) {
	if !w.opts.PrecisionWarning || text == "" {
		return
	}
	if decimals(text) <= w.opts.MaxPrecision {
		return
	}
	w.precisionCount++
	switch {
	case w.precisionCount < maxPrecisionIssues:
		w.message(path, gjhint.CodePrecision, "precision of coordinates should be reduced")
	case w.precisionCount == maxPrecisionIssues:
		w.message(path, gjhint.CodePrecision,
			"truncated warnings: we've encountered coordinate precision warning %d times, no more warnings will be reported", maxPrecisionIssues)
	}
}

func (w *walker) bbox(obj map[string]any, path string) {
	raw, present := obj["bbox"]
	if !present {
		return
	}
	p := join(path, "bbox")
	arr, isArr := raw.([]any)
	if !isArr {
		w.add(p, gjhint.CodeInvalidBBox, "bbox member must be an array of numbers, but is %s", kindOf(raw))
		return
	}

	vals := make([]float64, 0, len(arr))
	for i, el := range arr {
		f, _, ok := number(el)
		if !ok {
			w.add(join(p, strconv.Itoa(i)), gjhint.CodeInvalidBBox, "each element in a bbox member must be a number")
			return
		}
		vals = append(vals, f)
	}

	if len(vals) < 4 || len(vals)%2 != 0 {
		w.add(p, gjhint.CodeInvalidBBox, "bbox must have 2*n elements with n >= 2, got %d", len(vals))
		return
	}

	// Axis 0 is longitude, where min > max means the box crosses the antimeridian.
	n := len(vals) / 2
	for axis := 1; axis < n; axis++ {
		if vals[axis] > vals[axis+n] {
			w.add(p, gjhint.CodeInvalidBBox, "bbox minimum on axis %d (%v) exceeds its maximum (%v)", axis, vals[axis], vals[axis+n])
		}
	}
}

func (w *walker) crs(obj map[string]any, path string) {
	raw, present := obj["crs"]
	if !present || raw == nil {
		return
	}
	p := join(path, "crs")
	crs, isObj := raw.(map[string]any)
	if !isObj {
		w.add(p, gjhint.CodeInvalidCRS, "crs member should be an object, but is %s", kindOf(raw))
		return
	}

	typ, isStr := crs["type"].(string)
	if !isStr {
		w.add(p, gjhint.CodeInvalidCRS, `crs object requires a string "type" member`)
		return
	}
	props, isObj := crs["properties"].(map[string]any)
	if !isObj {
		w.add(p, gjhint.CodeInvalidCRS, `crs object requires a "properties" object member`)
		return
	}

	switch typ {
	case "name":
		if _, ok := props["name"].(string); !ok {
			w.add(join(p, "properties"), gjhint.CodeInvalidCRS, `named crs requires a string "name" property`)
		}
	case "link":
		if _, ok := props["href"].(string); !ok {
			w.add(join(p, "properties"), gjhint.CodeInvalidCRS, `linked crs requires a string "href" property`)
		}
	default:
		w.add(join(p, "type"), gjhint.CodeInvalidCRS, `crs type must be "name" or "link", got %q`, typ)
	}
}

func (w *walker) requiredArray(obj map[string]any, path, member string) ([]any, bool) {
	raw, present := obj[member]
	if !present {
		w.add(path, gjhint.CodeRequired, `"%s" member required`, member)
		return nil, false
	}
	return w.array(raw, join(path, member))
}

func (w *walker) array(v any, path string) ([]any, bool) {
	arr, ok := v.([]any)
	if !ok {
		w.add(path, gjhint.CodeInvalidType, "%s should be an array, but is %s instead", lastSegment(path), kindOf(v))
		return nil, false
	}
	return arr, true
}

// signedArea is the shoelace sum over a closed ring: positive when the ring
// is counter-clockwise.
func signedArea(ring [][]float64) float64 {
	var sum float64
	for i := 0; i < len(ring)-1; i++ {
		sum += ring[i][0]*ring[i+1][1] - ring[i+1][0]*ring[i][1]
	}
	return sum / 2
}

func samePosition(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// number extracts a numeric value and, for json.Number, its literal text.
func number(v any) (float64, string, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil || math.IsInf(f, 0) {
			return 0, "", false
		}
		return f, n.String(), true
	case float64:
		return n, strconv.FormatFloat(n, 'f', -1, 64), true
	default:
		return 0, "", false
	}
}

// decimals counts the digits after the decimal point of a JSON number literal.
func decimals(text string) int {
	mantissa := text
	exp := 0
	if i := strings.IndexAny(text, "eE"); i >= 0 {
		mantissa = text[:i]
		exp, _ = strconv.Atoi(text[i+1:])
	}
	frac := 0
	if dot := strings.IndexByte(mantissa, '.'); dot >= 0 {
		frac = len(strings.TrimRight(mantissa[dot+1:], "0"))
	}
	frac -= exp
	if frac < 0 {
		return 0
	}
	return frac
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "an object"
	case []any:
		return "an array"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case json.Number, float64:
		return "a number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func matchFold(list []string, s string) (string, bool) {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return v, true
		}
	}
	return "", false
}
