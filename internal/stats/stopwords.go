package stats

import "strings"

// Frequency analysis excludes high-frequency function words. The lists cover
// the languages most common on the network: English, German and French.
// Callers pass the set explicitly so the tokenizer stays pure; DefaultStopWords
// builds the union once per call.

var englishStopWords = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "aren't", "as", "at", "be", "because", "been",
	"before", "being", "below", "between", "both", "but", "by", "can",
	"can't", "cannot", "could", "couldn't", "did", "didn't", "do", "does",
	"doesn't", "doing", "don't", "down", "during", "each", "few", "for",
	"from", "further", "had", "hadn't", "has", "hasn't", "have", "haven't",
	"having", "he", "he'd", "he'll", "he's", "her", "here", "here's", "hers",
	"herself", "him", "himself", "his", "how", "how's", "i", "i'd", "i'll",
	"i'm", "i've", "if", "in", "into", "is", "isn't", "it", "it's", "its",
	"itself", "just", "let's", "me", "more", "most", "mustn't", "my",
	"myself", "no", "nor", "not", "now", "of", "off", "on", "once", "only",
	"or", "other", "ought", "our", "ours", "ourselves", "out", "over", "own",
	"same", "shan't", "she", "she'd", "she'll", "she's", "should",
	"shouldn't", "so", "some", "such", "than", "that", "that's", "the",
	"their", "theirs", "them", "themselves", "then", "there", "there's",
	"these", "they", "they'd", "they'll", "they're", "they've", "this",
	"those", "through", "to", "too", "under", "until", "up", "very", "was",
	"wasn't", "we", "we'd", "we'll", "we're", "we've", "were", "weren't",
	"what", "what's", "when", "when's", "where", "where's", "which", "while",
	"who", "who's", "whom", "why", "why's", "with", "won't", "would",
	"wouldn't", "you", "you'd", "you'll", "you're", "you've", "your",
	"yours", "yourself", "yourselves",
}

var germanStopWords = []string{
	"aber", "alle", "allem", "allen", "aller", "alles", "als", "also", "am",
	"an", "ander", "andere", "anderem", "anderen", "anderer", "anderes",
	"auch", "auf", "aus", "bei", "bin", "bis", "bist", "da", "damit", "dann",
	"das", "dass", "dein", "deine", "dem", "den", "der", "des", "dich",
	"die", "dies", "diese", "diesem", "diesen", "dieser", "dieses", "dir",
	"doch", "dort", "du", "durch", "ein", "eine", "einem", "einen", "einer",
	"eines", "einig", "einige", "er", "es", "etwas", "euch", "euer", "eure",
	"für", "gegen", "gewesen", "hab", "habe", "haben", "hat", "hatte",
	"hatten", "hier", "hin", "hinter", "ich", "ihm", "ihn", "ihnen", "ihr",
	"ihre", "im", "in", "indem", "ins", "ist", "ja", "jede", "jedem",
	"jeden", "jeder", "jedes", "jene", "jenem", "jenen", "jener", "jenes",
	"kann", "kein", "keine", "keinem", "keinen", "keiner", "keines",
	"können", "könnte", "machen", "man", "manche", "mein", "meine", "mich",
	"mir", "mit", "muss", "musste", "nach", "nicht", "nichts", "noch", "nun",
	"nur", "ob", "oder", "ohne", "sehr", "sein", "seine", "selbst", "sich",
	"sie", "sind", "so", "solche", "soll", "sollte", "sondern", "sonst",
	"um", "und", "uns", "unser", "unter", "viel", "vom", "von", "vor",
	"wann", "war", "waren", "warst", "was", "weg", "weil", "weiter",
	"welche", "welchem", "welchen", "welcher", "welches", "wenn", "werde",
	"werden", "wie", "wieder", "will", "wir", "wird", "wirst", "wo",
	"wollen", "wollte", "während", "würde", "würden", "zu", "zum", "zur",
	"zwar", "zwischen", "über",
}

var frenchStopWords = []string{
	"au", "aux", "avec", "ce", "ces", "cette", "dans", "de", "des", "du",
	"elle", "elles", "en", "et", "eux", "il", "ils", "je", "la", "le",
	"les", "leur", "leurs", "lui", "ma", "mais", "me", "mes", "moi", "mon",
	"ne", "nos", "notre", "nous", "on", "ou", "où", "par", "pas", "pour",
	"qu", "que", "qui", "sa", "se", "ses", "son", "sur", "ta", "te", "tes",
	"toi", "ton", "tu", "un", "une", "vos", "votre", "vous", "y", "été",
	"étée", "étées", "étés", "étant", "suis", "es", "est", "sommes", "êtes",
	"sont", "serai", "seras", "sera", "serons", "serez", "seront", "étais",
	"était", "étions", "étiez", "étaient", "fus", "fut", "furent", "sois",
	"soit", "soyons", "soyez", "soient", "ai", "as", "avons", "avez", "ont",
	"aurai", "auras", "aura", "aurons", "aurez", "auront", "avais", "avait",
	"avions", "aviez", "avaient", "eut", "eurent", "aie", "aies", "ait",
	"ayons", "ayez", "aient", "cela", "ça", "ici", "même", "tout", "tous",
	"toute", "toutes", "comme", "autre", "autres", "fait", "faire", "plus",
	"sans", "si", "leur", "dont", "alors", "après", "avant", "bien", "car",
	"chez", "donc", "encore", "entre", "jamais", "moins", "non", "peu",
	"quand", "très",
}

// DefaultStopWords returns the union of the built-in language lists,
// lowercased, ready to hand to Tokenize.
func DefaultStopWords() map[string]struct{} {
	set := make(map[string]struct{}, len(englishStopWords)+len(germanStopWords)+len(frenchStopWords))
	for _, list := range [][]string{englishStopWords, germanStopWords, frenchStopWords} {
		for _, w := range list {
			set[strings.ToLower(w)] = struct{}{}
		}
	}
	return set
}
