package taxonomy

// #region direct-ideation

// Direct statements of wanting to die. All critical.
var directIdeationPhrases = []string{
	"i want to die",
	"want to die",
	"i want to kill myself",
	"kill myself",
	"killing myself",
	"i want to end my life",
	"end my life",
	"ending my life",
	"i want to be dead",
	"wish i was dead",
	"wish i were dead",
	"i should be dead",
	"i want to commit suicide",
	"commit suicide",
	"suicidal",
	"i am suicidal",
	"thinking about suicide",
	"thoughts of suicide",
	"take my own life",
	"taking my own life",
	"i want it all to end",
	"i want to disappear forever",
	"dont want to be alive",
	"don't want to be alive",
	"dont want to live",
	"don't want to live",
	"no longer want to live",
	"ready to die",
}

// #endregion

// #region indirect-ideation

// Softer expressions pointing the same direction. High.
var indirectIdeationPhrases = []string{
	"better off without me",
	"better off dead",
	"everyone would be better off",
	"no reason to live",
	"no reason to go on",
	"nothing to live for",
	"tired of living",
	"tired of being alive",
	"cant go on",
	"can't go on",
	"cant do this anymore",
	"can't do this anymore",
	"whats the point of living",
	"what's the point of living",
	"life is not worth living",
	"not worth living",
	"wouldnt mind if i didnt wake up",
	"wouldn't mind if i didn't wake up",
	"hope i dont wake up",
	"hope i don't wake up",
	"want to go to sleep and never wake up",
	"the world would be better without me",
}

// Passive drift without stated intent. Moderate, but still in the crisis
// group for the combined-risk escalation rule.
var indirectIdeationModeratePhrases = []string{
	"wish i could sleep forever",
	"wish i could just disappear",
	"wish i could vanish",
	"tired of existing",
	"i am a burden to everyone",
	"burden to everyone",
	"everyone is better without me around",
	"wouldnt be missed",
	"wouldn't be missed",
	"nobody would notice if i was gone",
	"nobody would notice if i were gone",
}

// #endregion

// #region planning

// Method or plan language. All critical.
var planningPhrases = []string{
	"i have a plan to",
	"planning to kill",
	"planning my suicide",
	"how to kill myself",
	"ways to kill myself",
	"how to end it",
	"how to end my life",
	"painless way to die",
	"wrote a suicide note",
	"writing a suicide note",
	"suicide note",
	"giving away my things",
	"gave away my things",
	"saying my goodbyes",
	"final goodbye",
	"stockpiling pills",
	"saving up pills",
	"bought a rope",
	"bought a gun to",
	"picked a date",
	"picked the day",
	"know how i would do it",
	"decided how to do it",
	"overdose on",
	"jump off a bridge",
	"jump off the roof",
	"step in front of a train",
	"step in front of traffic",
}

// #endregion

// #region self-harm

// Active self-injury language. High.
var selfHarmPhrases = []string{
	"hurt myself",
	"hurting myself",
	"want to hurt myself",
	"harm myself",
	"harming myself",
	"cut myself",
	"cutting myself",
	"started cutting",
	"burn myself",
	"burning myself",
	"hit myself",
	"hitting myself",
	"punish myself physically",
	"scratch myself until",
	"self harm",
	"self-harm",
	"self harming",
	"self-harming",
	"deserve pain",
	"deserve to hurt",
	"make myself bleed",
	"starve myself",
	"starving myself",
	"stopped eating on purpose",
}

// #endregion

// #region hopelessness

// Hopelessness and despair. Moderate.
var hopelessnessPhrases = []string{
	"hopeless",
	"no hope left",
	"lost all hope",
	"nothing will ever get better",
	"never get better",
	"never going to get better",
	"no way out",
	"no way forward",
	"trapped with no",
	"feel trapped",
	"pointless to try",
	"whats the point",
	"what's the point",
	"no point anymore",
	"nothing matters anymore",
	"empty inside",
	"completely numb",
	"feel dead inside",
	"cant feel anything",
	"can't feel anything",
	"worthless",
	"i am worthless",
	"useless to everyone",
	"hate myself",
	"i hate my life",
	"my life is over",
	"beyond help",
	"nobody can help me",
	"nothing helps",
	"given up on everything",
	"i give up",
}

// #endregion

// #region behavioral

// Behavioral red flags. Moderate.
var behavioralPhrases = []string{
	"stopped taking my medication",
	"stopped my medication",
	"quit my meds",
	"drinking to cope",
	"drinking every night",
	"drinking myself",
	"using drugs to cope",
	"getting high to forget",
	"havent slept in days",
	"haven't slept in days",
	"cant sleep at all",
	"can't sleep at all",
	"sleeping all day every day",
	"stopped leaving the house",
	"havent left my room",
	"haven't left my room",
	"cut everyone off",
	"cutting everyone off",
	"pushed everyone away",
	"pushing everyone away",
	"isolating myself",
	"stopped talking to everyone",
	"stopped eating",
	"cant eat anything",
	"can't eat anything",
	"skipping work every day",
	"stopped going to work",
	"stopped going to school",
	"reckless lately",
	"driving recklessly on purpose",
	"dont care what happens to me",
	"don't care what happens to me",
}

// #endregion

// #region third-party

// Risk concerning another person. High.
var thirdPartyPhrases = []string{
	"my friend wants to die",
	"my friend is suicidal",
	"someone i know is suicidal",
	"she wants to kill herself",
	"he wants to kill himself",
	"they want to kill themselves",
	"she is going to hurt herself",
	"he is going to hurt himself",
	"worried they will hurt themselves",
	"threatened to kill himself",
	"threatened to kill herself",
	"threatened to kill themselves",
	"said goodbye like it was forever",
	"talking about ending it",
	"talks about dying all the time",
	"someone is hurting me",
	"afraid of my partner",
	"partner hurts me",
	"hits me when",
	"threatens to hurt me",
}

// #endregion

// #region imminent

// Happening right now. Critical.
var imminentPhrases = []string{
	"going to do it tonight",
	"going to do it today",
	"going to do it now",
	"doing it tonight",
	"tonight is the night",
	"this is my last day",
	"this is goodbye",
	"by the time you read this",
	"wont be here tomorrow",
	"won't be here tomorrow",
	"pills in my hand",
	"pills in front of me",
	"standing on the bridge",
	"standing on the ledge",
	"holding the blade",
	"have the gun out",
	"loaded the gun",
	"about to take them all",
	"took a bunch of pills",
	"just took all my pills",
	"already cut myself tonight",
	"cant stop myself right now",
	"can't stop myself right now",
}

// #endregion

// #region table

// phrases is the complete fixed taxonomy, built once at init.
var phrases []CrisisPhrase

func init() {
	add := func(list []string, cat Category, sev Severity) {
		for _, p := range list {
			phrases = append(phrases, CrisisPhrase{Phrase: p, Category: cat, Severity: sev})
		}
	}
	add(directIdeationPhrases, CategoryDirectIdeation, SeverityCritical)
	add(indirectIdeationPhrases, CategoryIndirectIdeation, SeverityHigh)
	add(indirectIdeationModeratePhrases, CategoryIndirectIdeation, SeverityModerate)
	add(planningPhrases, CategoryPlanning, SeverityCritical)
	add(selfHarmPhrases, CategorySelfHarm, SeverityHigh)
	add(hopelessnessPhrases, CategoryHopelessness, SeverityModerate)
	add(behavioralPhrases, CategoryBehavioral, SeverityModerate)
	add(thirdPartyPhrases, CategoryThirdParty, SeverityHigh)
	add(imminentPhrases, CategoryImminent, SeverityCritical)
}

// Phrases returns the fixed taxonomy table. The slice header is shared;
// callers must treat it as read-only.
func Phrases() []CrisisPhrase {
	return phrases
}

// #endregion
