package recommender

// metadataAccumulator collects preference metadata across answered options.
// List fields are unioned with first-seen order preserved; scalar fields are
// last-write-wins, which is deterministic because answers are processed in
// ascending question order.
type metadataAccumulator struct {
	occasions        []string
	seasons          []string
	personality      []string
	avoidFamilies    []string
	mustContainNotes []string
	preferredNotes   []string
	heartNotesBonus  []string
	baseNotesBonus   []string

	gender              string
	intensity           string
	intensityMax        string
	duration            string
	projection          string
	discoveryMode       string
	structurePreference string
	phasePreference     string
}

func (m *metadataAccumulator) extract(option Option) {
	meta := option.Metadata
	if meta == nil {
		return
	}

	m.occasions = appendUnique(m.occasions, meta.Occasions...)
	m.seasons = appendUnique(m.seasons, meta.Seasons...)
	m.personality = appendUnique(m.personality, meta.Personality...)
	m.avoidFamilies = appendUnique(m.avoidFamilies, meta.AvoidFamilies...)
	m.mustContainNotes = appendUnique(m.mustContainNotes, meta.MustContainNotes...)
	m.heartNotesBonus = appendUnique(m.heartNotesBonus, meta.HeartNotesBonus...)
	m.baseNotesBonus = appendUnique(m.baseNotesBonus, meta.BaseNotesBonus...)

	if meta.GenderType != "" {
		m.gender = canonicalGenderPreference(meta.GenderType)
	}
	if meta.Intensity != "" {
		m.intensity = meta.Intensity
	}
	if meta.IntensityMax != "" {
		m.intensityMax = meta.IntensityMax
	}
	if meta.Duration != "" {
		m.duration = meta.Duration
	}
	if meta.Projection != "" {
		m.projection = meta.Projection
	}
	if meta.DiscoveryMode != "" {
		m.discoveryMode = meta.DiscoveryMode
	}
	if meta.StructurePreference != "" {
		m.structurePreference = meta.StructurePreference
	}
	if meta.PhasePreference != "" {
		m.phasePreference = meta.PhasePreference
	}
}

func (m *metadataAccumulator) toProfileMetadata() ProfileMetadata {
	return ProfileMetadata{
		PreferredNotes:       m.preferredNotes,
		AvoidFamilies:        m.avoidFamilies,
		MustContainNotes:     m.mustContainNotes,
		HeartNotesBonus:      m.heartNotesBonus,
		BaseNotesBonus:       m.baseNotesBonus,
		PreferredOccasions:   m.occasions,
		PreferredSeasons:     m.seasons,
		PersonalityTraits:    m.personality,
		IntensityPreference:  m.intensity,
		IntensityMax:         m.intensityMax,
		DurationPreference:   m.duration,
		ProjectionPreference: m.projection,
		DiscoveryMode:        m.discoveryMode,
		StructurePreference:  m.structurePreference,
		PhasePreference:      m.phasePreference,
	}
}

// canonicalGenderPreference maps questionnaire gender markers onto the
// values the scorer understands.
func canonicalGenderPreference(genderType string) string {
	switch NormalizeTerm(genderType) {
	case "masculine":
		return "male"
	case "feminine":
		return "female"
	case "all":
		return "any"
	default:
		return NormalizeTerm(genderType)
	}
}

// appendUnique unions values into dst preserving first-seen order,
// comparing case-insensitively.
func appendUnique(dst []string, values ...string) []string {
	seen := make(map[string]struct{}, len(dst))
	for _, v := range dst {
		seen[NormalizeTerm(v)] = struct{}{}
	}
	for _, v := range values {
		key := NormalizeTerm(v)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		dst = append(dst, v)
	}
	return dst
}
