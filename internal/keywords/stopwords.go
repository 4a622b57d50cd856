package keywords

// englishStopwords holds common English words excluded from keyword
// candidacy. Contractions are absent because candidate tokens are
// purely alphabetic.
var englishStopwords = map[string]struct{}{
	"about": {}, "above": {}, "across": {}, "after": {}, "afterwards": {},
	"again": {}, "against": {}, "all": {}, "almost": {}, "alone": {},
	"along": {}, "already": {}, "also": {}, "although": {}, "always": {},
	"among": {}, "amongst": {}, "and": {}, "another": {}, "any": {},
	"anyhow": {}, "anyone": {}, "anything": {}, "anyway": {}, "anywhere": {},
	"are": {}, "around": {}, "back": {}, "became": {}, "because": {},
	"become": {}, "becomes": {}, "becoming": {}, "been": {}, "before": {},
	"beforehand": {}, "behind": {}, "being": {}, "below": {}, "beside": {},
	"besides": {}, "between": {}, "beyond": {}, "both": {}, "but": {},
	"can": {}, "cannot": {}, "could": {}, "did": {}, "does": {},
	"doing": {}, "done": {}, "down": {}, "during": {}, "each": {},
	"either": {}, "else": {}, "elsewhere": {}, "enough": {}, "etc": {},
	"even": {}, "ever": {}, "every": {}, "everyone": {}, "everything": {},
	"everywhere": {}, "except": {}, "few": {}, "for": {}, "former": {},
	"formerly": {}, "from": {}, "further": {}, "had": {}, "has": {},
	"have": {}, "having": {}, "hence": {}, "her": {}, "here": {},
	"hereafter": {}, "hereby": {}, "herein": {}, "hereupon": {}, "hers": {},
	"herself": {}, "him": {}, "himself": {}, "his": {}, "how": {},
	"however": {}, "indeed": {}, "instead": {}, "into": {}, "its": {},
	"itself": {}, "just": {}, "last": {}, "latter": {}, "least": {},
	"less": {}, "many": {}, "may": {}, "meanwhile": {}, "might": {},
	"mine": {}, "more": {}, "moreover": {}, "most": {}, "mostly": {},
	"much": {}, "must": {}, "myself": {}, "namely": {}, "neither": {},
	"never": {}, "nevertheless": {}, "next": {}, "nobody": {}, "none": {},
	"nor": {}, "not": {}, "nothing": {}, "now": {}, "nowhere": {},
	"off": {}, "often": {}, "once": {}, "one": {}, "only": {},
	"onto": {}, "other": {}, "others": {}, "otherwise": {}, "our": {},
	"ours": {}, "ourselves": {}, "out": {}, "over": {}, "own": {},
	"per": {}, "perhaps": {}, "rather": {}, "same": {}, "seem": {},
	"seemed": {}, "seeming": {}, "seems": {}, "several": {}, "she": {},
	"should": {}, "since": {}, "some": {}, "somehow": {}, "someone": {},
	"something": {}, "sometime": {}, "sometimes": {}, "somewhere": {},
	"still": {}, "such": {}, "than": {}, "that": {}, "the": {},
	"their": {}, "theirs": {}, "them": {}, "themselves": {}, "then": {},
	"thence": {}, "there": {}, "thereafter": {}, "thereby": {},
	"therefore": {}, "therein": {}, "thereupon": {}, "these": {},
	"they": {}, "this": {}, "those": {}, "though": {}, "through": {},
	"throughout": {}, "thus": {}, "together": {}, "too": {}, "toward": {},
	"towards": {}, "under": {}, "until": {}, "upon": {}, "very": {},
	"was": {}, "well": {}, "were": {}, "what": {}, "whatever": {},
	"when": {}, "whence": {}, "whenever": {}, "where": {}, "whereafter": {},
	"whereas": {}, "whereby": {}, "wherein": {}, "whereupon": {},
	"wherever": {}, "whether": {}, "which": {}, "while": {}, "whither": {},
	"who": {}, "whoever": {}, "whole": {}, "whom": {}, "whose": {},
	"why": {}, "will": {}, "with": {}, "within": {}, "without": {},
	"would": {}, "yet": {}, "you": {}, "your": {}, "yours": {},
	"yourself": {}, "yourselves": {},
}
