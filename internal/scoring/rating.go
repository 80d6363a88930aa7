package scoring

// Band maps a minimum score to a label.
type Band struct {
	Min   float64
	Label string
}

// Scale is an ordered list of bands, highest minimum first. The first
// band whose minimum the score meets wins; the last band should carry
// Min 0 as the fallback.
type Scale []Band

// Rating returns the label for a score.
func (s Scale) Rating(score float64) string {
	for _, b := range s {
		if score >= b.Min {
			return b.Label
		}
	}
	if len(s) > 0 {
		return s[len(s)-1].Label
	}
	return ""
}
