package recommender

var maleGenderTerms = map[string]struct{}{
	"hombre":    {},
	"masculino": {},
	"masculine": {},
	"male":      {},
	"man":       {},
	"men":       {},
}

var femaleGenderTerms = map[string]struct{}{
	"mujer":    {},
	"femenino": {},
	"feminine": {},
	"female":   {},
	"woman":    {},
	"women":    {},
}

// GenderMatches reports whether a catalog item's gender is acceptable for a
// preference. Unisex on either side always matches; otherwise both sides
// must map into the same canonical gender set.
func GenderMatches(itemGender, preference string) bool {
	item := NormalizeTerm(itemGender)
	pref := NormalizeTerm(preference)

	if pref == "" || pref == "any" || pref == "all" {
		return true
	}
	if item == "unisex" || pref == "unisex" {
		return true
	}

	_, itemMale := maleGenderTerms[item]
	_, itemFemale := femaleGenderTerms[item]
	_, prefMale := maleGenderTerms[pref]
	_, prefFemale := femaleGenderTerms[pref]

	return (itemMale && prefMale) || (itemFemale && prefFemale)
}
