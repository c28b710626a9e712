package milestone

import "lifeweeks/internal/life"

// Cultural returns the fixed life-ritual calendar: the sixteen Hindu
// Sanskaras, spanning birth rites through the final rites at the projected
// end of life. The list is appended to every estimate regardless of
// provider outcome and is not configurable.
func Cultural() []life.Milestone {
	return []life.Milestone{
		// Pre-natal rites.
		{AgeYears: 0, Title: "Garbhadhana", Glyph: "🌱", Description: "The ritual for conception."},
		{AgeYears: 0, Title: "Pumsavana", Glyph: "🤰", Description: "A ceremony for fetal protection and well-being."},
		{AgeYears: 0, Title: "Simantonnayana", Glyph: "🙏", Description: "A ritual during pregnancy to ensure mother's and child's well-being."},

		// Childhood rites.
		{AgeYears: 0, Title: "Jatakarma", Glyph: "👶", Description: "Birth rituals performed immediately after a child is born."},
		{AgeYears: 0, Title: "Namakarana", Glyph: "📜", Description: "The naming ceremony for the child."},
		{AgeYears: 0, Title: "Nishkramana", Glyph: "🚪", Description: "The child's first outing from the home."},
		{AgeYears: 1, Title: "Annaprashana", Glyph: "🍚", Description: "The ceremony for the child's first solid food."},
		{AgeYears: 3, Title: "Chudakarana", Glyph: "✂️", Description: "The first haircutting ceremony (Mundan)."},
		{AgeYears: 5, Title: "Karnavedha", Glyph: "💎", Description: "The piercing of the earlobes."},

		// Educational rites.
		{AgeYears: 5, Title: "Vidyarambha", Glyph: "📖", Description: "The initiation into learning the alphabet."},
		{AgeYears: 8, Title: "Upanayana", Glyph: "🧵", Description: "The sacred thread ceremony."},
		{AgeYears: 12, Title: "Vedarambha", Glyph: "📿", Description: "The commencement of Vedic studies."},
		{AgeYears: 16, Title: "Keshant", Glyph: "🪒", Description: "The ceremony for shaving the beard (Godaan)."},
		{AgeYears: 20, Title: "Samavartan", Glyph: "🎓", Description: "The ritual marking the completion of studentship."},

		// Adulthood and final rites.
		{AgeYears: 25, Title: "Vivaha", Glyph: "💍", Description: "The marriage ceremony."},
		{AgeYears: 80, Title: "Antyeshti", Glyph: "🕯️", Description: "The final rites or funeral rituals performed after death."},
	}
}

// FallbackBiological returns the biological/sociological marker set used
// when the provider returns zero milestones. It substitutes for the
// provider list entirely; the two are never merged.
func FallbackBiological() []life.Milestone {
	return []life.Milestone{
		{AgeYears: 25, Title: "Frontal Lobe Maturity", Glyph: "🧠", Description: "Brain fully developed."},
		{AgeYears: 30, Title: "Physical Peak", Glyph: "💪", Description: "Peak muscle mass and bone density."},
		{AgeYears: 35, Title: "Sarcopenia", Glyph: "📉", Description: "Muscle mass naturally begins to decrease."},
		{AgeYears: 45, Title: "Presbyopia", Glyph: "👓", Description: "Reading glasses often needed."},
		{AgeYears: 50, Title: "Cognitive Shift", Glyph: "🧩", Description: "Processing speed changes."},
		{AgeYears: 60, Title: "Empty Nest", Glyph: "🐦", Description: "Children leave home."},
		{AgeYears: 65, Title: "Retirement", Glyph: "🌅", Description: "Standard retirement age."},
		{AgeYears: 70, Title: "Peak Happiness", Glyph: "😊", Description: "Happiness U-curve upswing."},
	}
}
