package knowledge

import "slugline/internal/textutil"

func propLabelTable() map[string]string {
	table := map[string]string{
		"phone":    "mobile phone",
		"هاتف":     "mobile phone",
		"موبايل":   "mobile phone",
		"تليفون":   "mobile phone",
		"laptop":   "laptop computer",
		"computer": "laptop computer",
		"لابتوب":   "laptop computer",
		"حاسب آلي": "laptop computer",
		"كمبيوتر":  "laptop computer",
		"envelope": "mail envelope",
		"ظرف":      "mail envelope",
		"مظروف":    "mail envelope",
	}
	normalized := make(map[string]string, len(table))
	for key, label := range table {
		normalized[textutil.Normalize(key)] = label
	}
	return normalized
}

// CanonicalProp upgrades a prop label to its more specific production name
// when the table has one; otherwise the label passes through unchanged.
func (b *Base) CanonicalProp(label string) string {
	if upgraded, ok := b.propLabels[textutil.Normalize(label)]; ok {
		return upgraded
	}
	return label
}
