package encode

type EncodeOption func(*EncState)

// EncodeRules selects the pretty printing rules, DefaultRules if unset.
func EncodeRules(r *Rules) EncodeOption {
	return func(es *EncState) { es.rules = r }
}

// EncodeIndent overrides the indentation unit of the rules in use.
func EncodeIndent(indent string) EncodeOption {
	return func(es *EncState) { es.indent = &indent }
}

// EncodeCompact selects the single line form with sorted keys.
func EncodeCompact(v bool) EncodeOption {
	return func(es *EncState) { es.compact = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
