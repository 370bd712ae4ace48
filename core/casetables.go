package core

// Case tables for ASCII comparisons during pattern evaluation. Built
// once on the 0→1 initialization transition and immutable afterwards;
// the matching engine reads them for case-insensitive and case-toggled
// byte comparisons.

func buildCaseTables(lowercase, altercase *[256]byte) {
	for i := 0; i < 256; i++ {
		switch {
		case i >= 'a' && i <= 'z':
			altercase[i] = byte(i - 32)
		case i >= 'A' && i <= 'Z':
			altercase[i] = byte(i + 32)
		default:
			altercase[i] = byte(i)
		}

		if i >= 'A' && i <= 'Z' {
			lowercase[i] = byte(i + 32)
		} else {
			lowercase[i] = byte(i)
		}
	}
}

// Lowercase returns the ASCII lowercasing table. Valid only while the
// library is active; treat the table as read-only.
func (l *Library) Lowercase() *[256]byte {
	return &l.lowercase
}

// Altercase returns the ASCII case-toggling table: a-z and A-Z swap,
// everything else maps to itself. Same validity rules as Lowercase.
func (l *Library) Altercase() *[256]byte {
	return &l.altercase
}
