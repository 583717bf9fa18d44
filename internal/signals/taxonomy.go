// Package signals holds the editorial signal taxonomy and the scorer
// that rates a block of text against it. Categories are pattern-based:
// primary ones mark rare, strong indicators of narrative interest,
// secondary ones broader supporting themes.
package signals

import "regexp"

type Tier int

const (
	Primary Tier = iota
	Secondary
)

type Category struct {
	Name     string
	Tier     Tier
	Patterns []*regexp.Regexp
}

// Labels maps category names to the display form used on digest cards.
var Labels = map[string]string{
	"watercooler":      "Watercooler Anecdote",
	"mental_model":     "Eccentric Mental Model",
	"last_of_kind":     "Last of a Kind",
	"underdog":         "Underdog / Overlooked",
	"diy":              "Hidden Origin / DIY",
	"defiance":         "Strategic Defiance",
	"heretic":          "Scientific Heretic",
	"humanising":       "Humanising Contrast",
	"irony":            "Narrative Irony",
	"direct_quote":     "Voice of the Person",
	"chance_encounter": "Pivotal Chance Moment",
	"late_bloom":       "Late Discovery",
	"origin_story":     "Origin Story",
	"vivid_detail":     "Vivid Personal Detail",
}

func compileAll(exprs []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

// categories is the process-wide immutable registry. Order is fixed so
// matched-signal lists come out deterministic run to run.
var categories = []Category{
	{Name: "watercooler", Tier: Primary, Patterns: compileAll([]string{
		`\brefused\b`, `\binsisted\b`, `\bbetting\b`, `\bwager\b`,
		`\bleg(?:end|endary)\b`, `\brunning joke\b`, `\bquirk\b`,
		`\binfamous\b`, `\bnotorious\b`, `\bsurpris\w+\b`,
		`\bcurious\b`, `\bstrange\b`, `\bremarkabl\w+\b`,
		`\bincident\b`, `\bcharacter\b`, `\bhumou?r\b`, `\bwit\b`,
		`\bwhimsical\b`, `\bbizarre\b`, `\beccentric\b`, `\bpeculiar\b`,
		`\bself-deprecat\w+\b`, `\bfamous for\b`, `\bknown for\b`,
		`\bstory goes\b`, `\baccording to\b`, `\bonce\b`,
	})},
	{Name: "mental_model", Tier: Primary, Patterns: compileAll([]string{
		`\beccentric\b`, `\bhobb(?:y|ies)\b`, `\bphilosophy\b`,
		`\bbelief\b`, `\binvention\b`, `\bpatent\b`, `\btheory\b`,
		`\bdevised\b`, `\bpioneered\b`, `\bunique\b`, `\bunusual\b`,
		`\bunorthodox\b`, `\bself-taught\b`, `\bautodidact\b`,
		`\blast wish\b`, `\bfinal wish\b`, `\bwanted to be\b`,
		`\bbelieved that\b`, `\bfirmly\b`, `\bcreated\b`,
		`\bbuilt\b`, `\bdeveloped\b`,
	})},
	{Name: "last_of_kind", Tier: Secondary, Patterns: compileAll([]string{
		`\blast\b`, `\bfinal\b`, `\bend of an era\b`, `\bextinct\b`,
		`\bvanish\w+\b`, `\bdisappear\w+\b`, `\bobsolete\b`,
		`\bforgotten\b`, `\bnow lost\b`,
	})},
	{Name: "underdog", Tier: Secondary, Patterns: compileAll([]string{
		`\bobscur\w+\b`, `\boverlooked\b`, `\bignored\b`,
		`\bunrecogni[sz]\w+\b`, `\bposthum\w+\b`, `\bonly after\b`,
		`\byears later\b`, `\bdespite\b`, `\bstruggl\w+\b`,
		`\bunsung\b`, `\bnever recognised\b`,
	})},
	{Name: "diy", Tier: Secondary, Patterns: compileAll([]string{
		`\bself-taught\b`, `\bdropout\b`, `\baccidental\w*\b`,
		`\bby chance\b`, `\bgarage\b`, `\bno formal\b`,
		`\bwithout training\b`, `\bhumble origin\b`,
		`\bno experience\b`, `\bnever.*before\b`,
		`\btaught himself\b`, `\btaught herself\b`,
	})},
	{Name: "defiance", Tier: Secondary, Patterns: compileAll([]string{
		`\brefused\b`, `\bdefied\b`, `\bresist\w+\b`,
		`\bfirst woman\b`, `\bfirst black\b`, `\bfirst african\b`,
		`\bfirst person\b`, `\bpersist\w+\b`, `\bcourage\b`,
		`\bbroke\b`, `\bbarrier\b`, `\btrailblaz\w+\b`,
		`\bpioneer\w*\b`, `\bpaved the way\b`,
	})},
	{Name: "heretic", Tier: Secondary, Patterns: compileAll([]string{
		`\bdismiss\w+\b`, `\bscoff\w+\b`, `\bvindicat\w+\b`,
		`\bproved.*wrong\b`, `\bskeptic\w*\b`, `\bcontroversi\w+\b`,
		`\bunconventional\b`, `\bmocked\b`, `\bridiculed\b`,
		`\bno one believed\b`, `\bcalled.*crazy\b`, `\bcalled.*mad\b`,
		`\bblasphemy\b`, `\bheresy\b`,
	})},
	{Name: "humanising", Tier: Secondary, Patterns: compileAll([]string{
		`\bfeared\b`, `\bcried\b`, `\blaughed\b`, `\bfamily\b`,
		`\bfriend\w*\b`, `\bhumble\b`, `\bmodest\b`, `\bquiet\w*\b`,
		`\bshy\b`, `\bloved\b`, `\bdevoted\b`,
		`\bnever told\b`, `\bkept quiet\b`, `\bkept secret\b`,
	})},
	{Name: "irony", Tier: Secondary, Patterns: compileAll([]string{
		`\bironical?ly?\b`, `\bparadox\b`, `\bunexpected\b`,
		`\btwist\b`, `\bdespite\b`, `\bnevertheless\b`,
		`\bcuriously\b`, `\bof all people\b`,
		`\bturned out\b`, `\bwho knew\b`, `\blittle did\b`,
		`\bfailed.*became\b`, `\baccident.*led\b`,
	})},
	{Name: "direct_quote", Tier: Secondary, Patterns: compileAll([]string{
		`"[^"]{15,}"`, "“[^”]{15,}”",
		`\bhe (?:said|told|recalled|wrote)\b`,
		`\bshe (?:said|told|recalled|wrote)\b`,
		`\b(?:he|she) later (?:said|told|recalled|wrote)\b`,
		`\b(?:he|she) once (?:said|told)\b`,
		`\bas (?:he|she) put it\b`,
		`\bin (?:an|a) interview\b`,
	})},
	{Name: "chance_encounter", Tier: Secondary, Patterns: compileAll([]string{
		`\boverheard\b`, `\bhappened to\b`, `\bby chance\b`,
		`\bchance (?:meeting|encounter)\b`, `\bwrong turn\b`,
		`\bone day\b`, `\bstumbl\w+\b`, `\baccident\w*\b`,
		`\bsaw an ad\b`, `\bfortuit\w+\b`, `\bserendipit\w+\b`,
		`\bcoincidence\b`, `\bstroke of luck\b`,
	})},
	{Name: "late_bloom", Tier: Secondary, Patterns: compileAll([]string{
		`\btoiled in obscurity\b`, `\bdiscovered in (?:her|his)\b`,
		`\blong.delayed\b`, `\bafter retir\w+\b`, `\blate start\b`,
		`\bfinally\b`, `\bin (?:her|his) [5-9]0s\b`,
		`\bin (?:her|his) 80s\b`, `\bfor decades?\b`,
		`\bafter (?:\d+ )?years\b`, `\bwaited\b`,
		`\bnever.*recogni[sz]\w+\b`, `\blong.*before\b`,
	})},
	{Name: "origin_story", Tier: Secondary, Patterns: compileAll([]string{
		`\bgrew up\b`, `\bhumble\b`, `\bgarage\b`, `\bfactory\b`,
		`\bbasement\b`, `\bworkshop\b`, `\bfirst job\b`,
		`\bchildhood\b`, `\bfather.*told\b`, `\bmother.*told\b`,
		`\bfather.*wanted\b`, `\bmother.*wanted\b`,
		`\bbefore.*famous\b`, `\bbefore.*career\b`,
		`\bworking.class\b`, `\bpoverty\b`, `\bghetto\b`,
	})},
	{Name: "vivid_detail", Tier: Secondary, Patterns: compileAll([]string{
		`\bevery day\b`, `\balways carried\b`, `\bnever miss\w+\b`,
		`\britual\b`, `\bcoffin\b`, `\bnude\b`, `\bhid\w*\b`,
		`\bdisguis\w+\b`, `\bsmuggl\w+\b`, `\bpocket\w*\b`,
		`\bcollect\w+\b`, `\bobsess\w+\b`, `\bmeticulou\w+\b`,
		`\bsecret\w*\b`, `\bhiding\b`,
	})},
}
