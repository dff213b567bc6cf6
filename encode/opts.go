package encode

type EncodeOption func(*EncState)

// EncodeIndent breaks containers holding other containers over lines,
// indenting by n spaces per level. Zero writes everything on one line.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeWire writes without spaces after separators.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c != nil {
			es.colors = c
		}
	}
}
