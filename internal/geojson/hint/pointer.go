package hint

import "strings"

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// join appends reference tokens to a JSON Pointer (RFC 6901).
func join(base string, tokens ...string) string {
	var b strings.Builder
	b.WriteString(base)
	for _, t := range tokens {
		b.WriteByte('/')
		b.WriteString(pointerEscaper.Replace(t))
	}
	return b.String()
}

// lastSegment returns the final reference token of a pointer, unescaped.
func lastSegment(pointer string) string {
	i := strings.LastIndexByte(pointer, '/')
	if i < 0 {
		return pointer
	}
	seg := pointer[i+1:]
	return strings.NewReplacer("~1", "/", "~0", "~").Replace(seg)
}
