package geojson

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/vvka-141/gjhint/pkg/gjhint"
)

type frame struct {
	object    bool
	keys      map[string]struct{}
	expectKey bool
	key       string // member being read, object frames only
	index     int    // element being read, array frames only
}

// duplicateMembers reports every object member whose name repeats an
// earlier member of the same object. Decoding alone keeps only the last
// value, so this runs on the token stream.
func duplicateMembers(content []byte) (gjhint.Issues, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	var issues gjhint.Issues
	var stack []frame

	valueDone := func() {
		if n := len(stack); n > 0 {
			if stack[n-1].object {
				stack[n-1].expectKey = true
			} else {
				stack[n-1].index++
			}
		}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return issues, err
		}

		if n := len(stack); n > 0 && stack[n-1].object && stack[n-1].expectKey {
			if d, ok := tok.(json.Delim); ok && d == '}' {
				stack = stack[:n-1]
				valueDone()
				continue
			}
			key, _ := tok.(string)
			top := &stack[n-1]
			if _, seen := top.keys[key]; seen {
				issues = append(issues, gjhint.Issue{
					Path:    containerPath(stack) + "/" + escapeToken(key),
					Code:    gjhint.CodeDuplicateKey,
					Message: "duplicate member " + strconv.Quote(key),
					Level:   gjhint.LevelError,
				})
			} else {
				top.keys[key] = struct{}{}
			}
			top.key = key
			top.expectKey = false
			continue
		}

		switch d := tok.(type) {
		case json.Delim:
			switch d {
			case '{':
				stack = append(stack, frame{object: true, keys: make(map[string]struct{}), expectKey: true})
			case '[':
				stack = append(stack, frame{})
			case '}', ']':
				stack = stack[:len(stack)-1]
				valueDone()
			}
		default:
			valueDone()
		}
	}
	return issues, nil
}

// containerPath is the JSON Pointer of the innermost container on stack.
func containerPath(stack []frame) string {
	var b strings.Builder
	for _, f := range stack[:len(stack)-1] {
		b.WriteByte('/')
		if f.object {
			b.WriteString(escapeToken(f.key))
		} else {
			b.WriteString(strconv.Itoa(f.index))
		}
	}
	return b.String()
}

var tokenEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func escapeToken(s string) string { return tokenEscaper.Replace(s) }
