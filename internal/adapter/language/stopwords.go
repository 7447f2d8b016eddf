package language

// Tiny stopword lists, one per supported language. These cover only the
// most common function words; counting filters against them lowercased.

var englishStopwords = []string{
	"a", "about", "after", "again", "all", "an", "and", "any", "are",
	"as", "at", "be", "because", "been", "before", "being", "between",
	"but", "by", "did", "do", "does", "down", "during", "each", "for",
	"from", "had", "has", "have", "he", "her", "here", "hers", "him",
	"his", "how", "i", "if", "in", "into", "is", "it", "its", "me",
	"more", "most", "my", "no", "nor", "not", "of", "off", "on", "once",
	"only", "or", "other", "our", "out", "over", "she", "so", "some",
	"such", "than", "that", "the", "their", "them", "then", "there",
	"these", "they", "this", "those", "through", "to", "too", "under",
	"until", "up", "was", "we", "were", "what", "when", "where", "which",
	"while", "who", "whom", "why", "will", "with", "you", "your",
}

var spanishStopwords = []string{
	"a", "al", "algo", "ante", "antes", "como", "con", "contra", "cual",
	"cuando", "de", "del", "desde", "donde", "durante", "e", "el", "ella",
	"ellas", "ellos", "en", "entre", "era", "eran", "es", "esa", "ese",
	"eso", "esta", "este", "esto", "fue", "fueron", "ha", "han", "hasta",
	"hay", "la", "las", "le", "les", "lo", "los", "más", "me", "mi",
	"muy", "ni", "no", "nos", "o", "os", "otra", "otro", "para", "pero",
	"poco", "por", "porque", "que", "quien", "se", "sin", "sobre", "son",
	"su", "sus", "también", "te", "tu", "un", "una", "uno", "unos", "y",
	"ya", "yo",
}

var frenchStopwords = []string{
	"a", "au", "aux", "avec", "ce", "ces", "cette", "dans", "de", "des",
	"donc", "du", "elle", "elles", "en", "est", "et", "il", "ils", "je",
	"la", "le", "les", "leur", "leurs", "lui", "mais", "me", "même",
	"moi", "mon", "ne", "ni", "nos", "notre", "nous", "on", "ont", "ou",
	"où", "par", "pas", "plus", "pour", "qu", "que", "qui", "sa", "sans",
	"se", "ses", "son", "sont", "sous", "sur", "te", "toi", "ton", "tu",
	"un", "une", "vos", "votre", "vous", "à", "été", "être",
}

var hungarianStopwords = []string{
	"a", "abban", "ahhoz", "ahogy", "ahol", "aki", "akik", "akkor",
	"amely", "ami", "amit", "az", "azt", "azzal", "azért", "be", "benne",
	"csak", "de", "e", "egy", "el", "ez", "ezt", "fel", "hogy", "ha",
	"hanem", "hol", "igen", "ilyen", "is", "itt", "ki", "le", "lehet",
	"lesz", "majd", "meg", "mert", "mi", "mint", "mit", "már", "még",
	"nem", "ott", "pedig", "s", "sem", "szerint", "van", "vagy", "volt",
	"által", "és", "így", "ő", "ők", "őt", "úgy",
}

var norwegianStopwords = []string{
	"alle", "at", "av", "bare", "ble", "blir", "da", "de", "dem", "den",
	"denne", "der", "dere", "det", "dette", "din", "disse", "du", "eller",
	"en", "enn", "er", "et", "etter", "for", "fra", "ha", "hadde", "han",
	"hans", "har", "hun", "hva", "hvor", "i", "ikke", "inn", "jeg", "kan",
	"kom", "kun", "man", "med", "meg", "mellom", "men", "mot", "noe",
	"noen", "nå", "og", "om", "opp", "oss", "over", "på", "samme", "seg",
	"selv", "sin", "sine", "sitt", "skal", "skulle", "som", "så", "til",
	"ut", "uten", "var", "ved", "vi", "vil", "ville", "være", "vært", "å",
}

var russianStopwords = []string{
	"а", "без", "бы", "был", "была", "были", "было", "быть", "в", "вам",
	"вас", "вот", "все", "вы", "где", "да", "даже", "для", "до", "его",
	"ее", "ей", "ему", "если", "есть", "еще", "же", "за", "и", "из",
	"или", "им", "их", "к", "как", "когда", "кто", "ли", "меня", "мне",
	"мы", "на", "над", "не", "него", "нет", "ни", "но", "о", "об", "он",
	"она", "они", "оно", "от", "по", "под", "при", "с", "так", "такой",
	"там", "тебя", "то", "того", "тоже", "только", "том", "ты", "у",
	"уже", "чего", "чем", "что", "чтобы", "эта", "эти", "это", "я",
}

var swedishStopwords = []string{
	"alla", "allt", "att", "av", "blev", "bli", "blir", "de", "dem",
	"den", "denna", "deras", "dess", "det", "detta", "dig", "din", "du",
	"där", "då", "efter", "ej", "eller", "en", "er", "ett", "från",
	"för", "ha", "hade", "han", "hans", "har", "henne", "hennes", "hon",
	"honom", "hur", "här", "i", "icke", "inom", "inte", "jag", "kan",
	"man", "med", "mellan", "men", "mig", "min", "mot", "mycket", "ni",
	"nu", "när", "någon", "något", "och", "om", "oss", "på", "samma",
	"sedan", "sig", "sin", "sina", "sitt", "skulle", "som", "så", "till",
	"under", "upp", "ut", "utan", "vad", "var", "vara", "vi", "vid",
	"vilken", "än", "är", "åt", "över",
}

func buildSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}
