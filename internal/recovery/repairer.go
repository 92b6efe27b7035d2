package recovery

import "strings"

// Repair applies syntax fix-ups for the deviations models most often make when
// asked for JSON:
//
//   - a comma directly before '}' or ']' is dropped
//   - `] , "` loses its inner whitespace
//   - `" , }` becomes `"}`
//   - single-quoted keys and values become double-quoted
//
// Text inside double-quoted strings is copied verbatim, so an apostrophe in
// "St. Peter's" is never mistaken for a delimiter. Repair is idempotent and
// never fills in missing content.
func Repair(candidate string) string {
	r := repairer{src: candidate}
	r.out.Grow(len(candidate))
	r.run()
	return r.out.String()
}

type repairer struct {
	src string
	out strings.Builder
	// last non-whitespace byte written to out, 0 at start
	prev byte
}

func (r *repairer) run() {
	s := r.src
	for i := 0; i < len(s); {
		switch c := s[i]; c {
		case '"':
			end := scanDoubleQuoted(s, i)
			r.write(s[i:end])
			i = r.collapseCommaBeforeBrace(end)
		case '\'':
			if !isValuePosition(r.prev) {
				r.writeByte(c)
				i++
				continue
			}
			closeAt, ok := scanSingleQuoted(s, i)
			if !ok {
				r.writeByte(c)
				i++
				continue
			}
			r.write(`"` + requote(s[i+1:closeAt]) + `"`)
			i = r.collapseCommaBeforeBrace(closeAt + 1)
		case ',':
			if closerFollows(s, i+1) {
				i++
				continue
			}
			r.writeByte(c)
			i++
		case ']':
			r.writeByte(c)
			i++
			// `] , 'x'` counts as `] , "x"`: the quotes are rewritten next
			next, ok := commaThen(s, i, '"')
			if !ok {
				if next, ok = commaThen(s, i, '\''); ok {
					_, ok = scanSingleQuoted(s, next)
				}
			}
			if ok {
				r.writeByte(',')
				i = next
			}
		default:
			r.writeByte(c)
			i++
		}
	}
}

// collapseCommaBeforeBrace turns `" , }` into `"}` and returns where to resume.
func (r *repairer) collapseCommaBeforeBrace(i int) int {
	if next, ok := commaThen(r.src, i, '}'); ok {
		return next
	}
	return i
}

func (r *repairer) write(s string) {
	r.out.WriteString(s)
	for i := len(s) - 1; i >= 0; i-- {
		if !isSpace(s[i]) {
			r.prev = s[i]
			return
		}
	}
}

func (r *repairer) writeByte(c byte) {
	r.out.WriteByte(c)
	if !isSpace(c) {
		r.prev = c
	}
}

// scanDoubleQuoted returns the index just past the string starting at s[start].
// An unterminated string runs to the end of s.
func scanDoubleQuoted(s string, start int) int {
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return len(s)
}

// scanSingleQuoted finds the quote closing the string opened at s[start]. A
// quote only closes the string when followed by a structural character, so
// "'it's'" keeps its apostrophe.
func scanSingleQuoted(s string, start int) (int, bool) {
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '\'':
			j := skipSpace(s, i+1)
			if j == len(s) || strings.IndexByte(",}]:", s[j]) >= 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// requote converts the body of a single-quoted string to a double-quoted body.
func requote(body string) string {
	var b strings.Builder
	b.Grow(len(body) + 2)
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '\\' && i+1 < len(body) && body[i+1] == '\'':
			b.WriteByte('\'')
			i++
		case c == '\\' && i+1 < len(body):
			b.WriteByte(c)
			b.WriteByte(body[i+1])
			i++
		case c == '"':
			b.WriteString(`\"`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// commaThen reports whether s[i:] is whitespace, a comma, whitespace and then
// want. It returns the index of want.
func commaThen(s string, i int, want byte) (int, bool) {
	j := skipSpace(s, i)
	if j >= len(s) || s[j] != ',' {
		return 0, false
	}
	j = skipSpace(s, j+1)
	if j >= len(s) || s[j] != want {
		return 0, false
	}
	return j, true
}

// closerFollows reports whether only whitespace and commas separate s[i:]
// from a closing '}' or ']'.
func closerFollows(s string, i int) bool {
	for ; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r', ',':
			continue
		case '}', ']':
			return true
		default:
			return false
		}
	}
	return false
}

func isValuePosition(prev byte) bool {
	switch prev {
	case 0, '{', '[', ',', ':':
		return true
	}
	return false
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
