package token

// Table reports, for each of the 256 byte values, whether the byte is legal
// in the grammar it describes. Tables are built once at init and never
// mutated, so they are safe to share between concurrent parses.
type Table [256]bool

func (t *Table) Has(b byte) bool {
	return t[b]
}

// tchar delimiters permitted in tokens besides ALPHA and DIGIT, per RFC 9110:
//
//	tchar = "!" / "#" / "$" / "%" / "&" / "'" / "*" / "+" / "-" / "." /
//	        "^" / "_" / "`" / "|" / "~" / DIGIT / ALPHA
var tchar = []byte{'!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~'}

var (
	// Method accepts token bytes of a request method name.
	Method = tokenTable()
	// HeaderName accepts the same token set for header field names.
	HeaderName = tokenTable()
	// HeaderValue accepts horizontal tab, every visible ASCII byte including
	// space, and all opaque high bytes. The remaining control characters
	// never appear in a legal field value.
	HeaderValue = valueTable()
	// URI accepts 0x21-0x7E plus opaque high bytes.
	URI = uriTable()
)

// IsMethod special-cases the uppercase range virtually every method consists
// of before falling back to the table. Results are identical to a plain
// Method.Has for all 256 byte values.
func IsMethod(b byte) bool {
	if 'A' <= b && b <= 'Z' {
		return true
	}

	return Method.Has(b)
}

func tokenTable() *Table {
	t := new(Table)
	span(t, 'A', 'Z')
	span(t, 'a', 'z')
	span(t, '0', '9')
	for _, b := range tchar {
		t[b] = true
	}

	return t
}

func valueTable() *Table {
	t := new(Table)
	t['\t'] = true
	span(t, ' ', 0x7E)
	span(t, 0x80, 0xFF)

	return t
}

func uriTable() *Table {
	t := new(Table)
	span(t, '!', 0x7E)
	span(t, 0x80, 0xFF)

	return t
}

func span(t *Table, from, to byte) {
	for b := int(from); b <= int(to); b++ {
		t[b] = true
	}
}
