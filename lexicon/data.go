package lexicon

// builtinEntries is the builtin word list. Glosses are lower-case; the
// reverse index is derived from them at load time.
var builtinEntries = []Entry{
	// Pronouns
	{"kuv", []string{"i", "me"}},
	{"koj", []string{"you (singular)", "you"}},
	{"nws", []string{"he", "she", "it"}},
	{"peb", []string{"we", "us", "three"}},
	{"nej", []string{"you (plural)"}},
	{"lawv", []string{"they", "them"}},

	// Common verbs
	{"yog", []string{"to be", "is", "am", "are"}},
	{"tsis", []string{"no", "not"}},
	{"nyob", []string{"to live", "to stay", "to be at"}},
	{"zoo", []string{"good", "well"}},
	{"los", []string{"to come"}},
	{"mus", []string{"to go"}},
	{"ua", []string{"to do", "to make"}},
	{"tau", []string{"to get", "to obtain", "can"}},
	{"yuav", []string{"will", "want", "going to"}},
	{"xav", []string{"to think", "to want"}},
	{"paub", []string{"to know"}},
	{"pom", []string{"to see"}},
	{"noj", []string{"to eat"}},
	{"haus", []string{"to drink"}},
	{"pw", []string{"to sleep"}},
	{"hais", []string{"to say", "to speak"}},

	// Family
	{"niam", []string{"mother"}},
	{"txiv", []string{"father"}},
	{"tub", []string{"son"}},
	{"ntxhais", []string{"daughter"}},
	{"kwv", []string{"younger brother"}},
	{"tij", []string{"older brother"}},
	{"muam", []string{"younger sister"}},

	// Food
	{"mov", []string{"rice"}},
	{"nqaij", []string{"meat"}},
	{"zaub", []string{"vegetables"}},
	{"kua", []string{"soup"}},
	{"qe", []string{"egg"}},

	// Numbers
	{"xoom", []string{"zero"}},
	{"ib", []string{"one"}},
	{"ob", []string{"two"}},
	{"plaub", []string{"four", "hair"}},
	{"tsib", []string{"five"}},
	{"rau", []string{"six"}},
	{"xya", []string{"seven"}},
	{"yim", []string{"eight"}},
	{"cuaj", []string{"nine"}},
	{"kaum", []string{"ten"}},

	// Colors
	{"dawb", []string{"white"}},
	{"dub", []string{"black"}},
	{"liab", []string{"red"}},

	// Common words
	{"neeg", []string{"person", "people"}},
	{"hmoob", []string{"hmong"}},
	{"tsev", []string{"house", "home"}},
	{"chaw", []string{"place"}},
	{"lub", []string{"classifier"}},
	{"tus", []string{"classifier"}},
	{"hnub", []string{"day", "sun"}},
	{"hmo", []string{"night"}},
	{"dev", []string{"dog"}},
	{"tsheb", []string{"car", "vehicle"}},
	{"kev", []string{"road", "way"}},
	{"ntawv", []string{"paper", "book"}},
}
