package helpers

import "unicode/utf8"

// QuoteSingle renders text as a single-quoted Sass string literal, escaping
// control characters and the quote character itself. Used for the debug
// String() form of quoted sassvalue.String values inside error messages.
func QuoteSingle(text string) string {
	bytes := make([]byte, 0, len(text)+2)
	bytes = append(bytes, '\'')
	i := 0
	n := len(text)

	for i < n {
		c, width := utf8.DecodeRuneInString(text[i:])

		switch c {
		case '\n':
			bytes = append(bytes, '\\', 'n')
		case '\t':
			bytes = append(bytes, '\\', 't')
		case '\\':
			bytes = append(bytes, '\\', '\\')
		case '\'':
			bytes = append(bytes, '\\', '\'')
		default:
			bytes = append(bytes, text[i:i+width]...)
		}

		i += width
	}

	return string(append(bytes, '\''))
}
