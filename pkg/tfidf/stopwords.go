package tfidf

// englishStopWords is the common English stop-word list used to drop filler terms.
var englishStopWords = toSet(
	"a", "about", "above", "after", "again", "against", "all", "almost", "also", "am",
	"among", "an", "and", "any", "are", "as", "at", "be", "because", "been", "before",
	"being", "below", "between", "both", "but", "by", "can", "cannot", "could", "did",
	"do", "does", "doing", "done", "down", "during", "each", "either", "else", "enough",
	"etc", "even", "ever", "every", "few", "for", "from", "further", "get", "had", "has",
	"have", "having", "he", "her", "here", "hers", "herself", "him", "himself", "his",
	"how", "however", "i", "if", "in", "into", "is", "it", "its", "itself", "just",
	"least", "less", "made", "many", "may", "me", "might", "more", "most", "much", "must",
	"my", "myself", "neither", "no", "nor", "not", "now", "of", "off", "often", "on",
	"once", "only", "or", "other", "our", "ours", "ourselves", "out", "over", "own",
	"per", "please", "rather", "same", "she", "should", "since", "so", "some", "still",
	"such", "than", "that", "the", "their", "theirs", "them", "themselves", "then",
	"there", "these", "they", "this", "those", "though", "through", "thus", "to", "too",
	"under", "until", "up", "upon", "us", "very", "was", "we", "well", "were", "what",
	"when", "where", "whether", "which", "while", "who", "whom", "whose", "why", "will",
	"with", "within", "without", "would", "yet", "you", "your", "yours", "yourself",
	"yourselves",
)

func toSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
