package lexicon

import "github.com/mwaleedk/go-emergency-dispatch/internal/models"

// TermLanguage marks which vocabulary a keyword entry belongs to. Script
// entries are matched against the raw text; latin and shared entries are
// matched against the lowercased text. Shared terms are plain English
// words that also circulate in Roman Urdu messages.
type TermLanguage string

const (
	TermScript TermLanguage = "script"
	TermLatin  TermLanguage = "latin"
	TermShared TermLanguage = "shared"
)

type KeywordEntry struct {
	Term       string
	Language   TermLanguage
	Category   models.Category
	Subservice string
	// Display holds the Urdu-script form for latin/shared terms, used by
	// the transliterator. Empty for script entries.
	Display string
}

var keywordEntries = []KeywordEntry{
	// medical — Urdu script
	{Term: "ایمبولینس", Language: TermScript, Category: models.CategoryMedical, Subservice: "ambulance_dispatch"},
	{Term: "ہسپتال", Language: TermScript, Category: models.CategoryMedical, Subservice: "nearest_hospital_lookup"},
	{Term: "ڈاکٹر", Language: TermScript, Category: models.CategoryMedical, Subservice: "appointment_booking"},
	{Term: "نرس", Language: TermScript, Category: models.CategoryMedical, Subservice: "triage_advice"},
	{Term: "درد", Language: TermScript, Category: models.CategoryMedical, Subservice: "triage_advice"},
	{Term: "خون بہنا", Language: TermScript, Category: models.CategoryMedical, Subservice: "ambulance_dispatch"},
	{Term: "خون", Language: TermScript, Category: models.CategoryMedical, Subservice: "ambulance_dispatch"},
	{Term: "ٹوٹا ہوا", Language: TermScript, Category: models.CategoryMedical, Subservice: "ambulance_dispatch"},
	{Term: "فریکچر", Language: TermScript, Category: models.CategoryMedical, Subservice: "ambulance_dispatch"},
	{Term: "بے ہوش", Language: TermScript, Category: models.CategoryMedical, Subservice: "ambulance_dispatch"},
	{Term: "سانس", Language: TermScript, Category: models.CategoryMedical, Subservice: "ambulance_dispatch"},
	{Term: "زخمی", Language: TermScript, Category: models.CategoryMedical, Subservice: "ambulance_dispatch"},
	{Term: "مریض", Language: TermScript, Category: models.CategoryMedical, Subservice: "ambulance_dispatch"},
	{Term: "علاج", Language: TermScript, Category: models.CategoryMedical, Subservice: "triage_advice"},
	{Term: "دوا", Language: TermScript, Category: models.CategoryMedical, Subservice: "prescription_refill"},

	// medical — Roman Urdu / shared
	{Term: "ambulance", Language: TermShared, Category: models.CategoryMedical, Subservice: "ambulance_dispatch", Display: "ایمبولینس"},
	{Term: "ambulens", Language: TermLatin, Category: models.CategoryMedical, Subservice: "ambulance_dispatch", Display: "ایمبولینس"},
	{Term: "hospital", Language: TermShared, Category: models.CategoryMedical, Subservice: "nearest_hospital_lookup", Display: "ہسپتال"},
	{Term: "haspatal", Language: TermLatin, Category: models.CategoryMedical, Subservice: "nearest_hospital_lookup", Display: "ہسپتال"},
	{Term: "doctor", Language: TermShared, Category: models.CategoryMedical, Subservice: "appointment_booking", Display: "ڈاکٹر"},
	{Term: "daktar", Language: TermLatin, Category: models.CategoryMedical, Subservice: "appointment_booking", Display: "ڈاکٹر"},
	{Term: "nurse", Language: TermShared, Category: models.CategoryMedical, Subservice: "triage_advice", Display: "نرس"},
	{Term: "pain", Language: TermShared, Category: models.CategoryMedical, Subservice: "triage_advice", Display: "درد"},
	{Term: "dard", Language: TermLatin, Category: models.CategoryMedical, Subservice: "triage_advice", Display: "درد"},
	{Term: "bleeding", Language: TermShared, Category: models.CategoryMedical, Subservice: "ambulance_dispatch", Display: "خون بہنا"},
	{Term: "khoon", Language: TermLatin, Category: models.CategoryMedical, Subservice: "ambulance_dispatch", Display: "خون"},
	{Term: "broken", Language: TermShared, Category: models.CategoryMedical, Subservice: "ambulance_dispatch", Display: "ٹوٹا ہوا"},
	{Term: "tuta", Language: TermLatin, Category: models.CategoryMedical, Subservice: "ambulance_dispatch", Display: "ٹوٹا ہوا"},
	{Term: "fracture", Language: TermShared, Category: models.CategoryMedical, Subservice: "ambulance_dispatch", Display: "فریکچر"},
	{Term: "unconscious", Language: TermShared, Category: models.CategoryMedical, Subservice: "ambulance_dispatch", Display: "بے ہوش"},
	{Term: "be hosh", Language: TermLatin, Category: models.CategoryMedical, Subservice: "ambulance_dispatch", Display: "بے ہوش"},
	{Term: "breathing", Language: TermShared, Category: models.CategoryMedical, Subservice: "ambulance_dispatch", Display: "سانس"},
	{Term: "saans", Language: TermLatin, Category: models.CategoryMedical, Subservice: "ambulance_dispatch", Display: "سانس"},
	{Term: "injured", Language: TermShared, Category: models.CategoryMedical, Subservice: "ambulance_dispatch", Display: "زخمی"},
	{Term: "mareez", Language: TermLatin, Category: models.CategoryMedical, Subservice: "ambulance_dispatch", Display: "مریض"},
	{Term: "ilaj", Language: TermLatin, Category: models.CategoryMedical, Subservice: "triage_advice", Display: "علاج"},
	{Term: "dawa", Language: TermLatin, Category: models.CategoryMedical, Subservice: "prescription_refill", Display: "دوا"},
	{Term: "seizure", Language: TermShared, Category: models.CategoryMedical, Subservice: "ambulance_dispatch"},
	{Term: "choking", Language: TermShared, Category: models.CategoryMedical, Subservice: "ambulance_dispatch"},
	{Term: "stroke", Language: TermShared, Category: models.CategoryMedical, Subservice: "ambulance_dispatch"},
	{Term: "heart attack", Language: TermShared, Category: models.CategoryMedical, Subservice: "ambulance_dispatch"},
	{Term: "fever", Language: TermShared, Category: models.CategoryMedical, Subservice: "triage_advice"},

	// police — Urdu script
	{Term: "پولیس", Language: TermScript, Category: models.CategoryPolice, Subservice: "emergency_response"},
	{Term: "ڈکیتی", Language: TermScript, Category: models.CategoryPolice, Subservice: "emergency_response"},
	{Term: "چوری", Language: TermScript, Category: models.CategoryPolice, Subservice: "report_incident"},
	{Term: "چور", Language: TermScript, Category: models.CategoryPolice, Subservice: "suspect_tracking"},
	{Term: "حملہ", Language: TermScript, Category: models.CategoryPolice, Subservice: "emergency_response"},
	{Term: "تشدد", Language: TermScript, Category: models.CategoryPolice, Subservice: "emergency_response"},
	{Term: "بندوق", Language: TermScript, Category: models.CategoryPolice, Subservice: "emergency_response"},
	{Term: "چاقو", Language: TermScript, Category: models.CategoryPolice, Subservice: "emergency_response"},
	{Term: "فائرنگ", Language: TermScript, Category: models.CategoryPolice, Subservice: "emergency_response"},
	{Term: "جرم", Language: TermScript, Category: models.CategoryPolice, Subservice: "report_incident"},

	// police — Roman Urdu / shared
	{Term: "police", Language: TermShared, Category: models.CategoryPolice, Subservice: "emergency_response", Display: "پولیس"},
	{Term: "robbery", Language: TermShared, Category: models.CategoryPolice, Subservice: "emergency_response", Display: "ڈکیتی"},
	{Term: "dakaiti", Language: TermLatin, Category: models.CategoryPolice, Subservice: "emergency_response", Display: "ڈکیتی"},
	{Term: "theft", Language: TermShared, Category: models.CategoryPolice, Subservice: "report_incident", Display: "چوری"},
	{Term: "chori", Language: TermLatin, Category: models.CategoryPolice, Subservice: "report_incident", Display: "چوری"},
	{Term: "stolen", Language: TermShared, Category: models.CategoryPolice, Subservice: "report_incident", Display: "چوری ہوا"},
	{Term: "thief", Language: TermShared, Category: models.CategoryPolice, Subservice: "suspect_tracking", Display: "چور"},
	{Term: "chor", Language: TermLatin, Category: models.CategoryPolice, Subservice: "suspect_tracking", Display: "چور"},
	{Term: "attack", Language: TermShared, Category: models.CategoryPolice, Subservice: "emergency_response", Display: "حملہ"},
	{Term: "hamla", Language: TermLatin, Category: models.CategoryPolice, Subservice: "emergency_response", Display: "حملہ"},
	{Term: "assault", Language: TermShared, Category: models.CategoryPolice, Subservice: "emergency_response", Display: "حملہ"},
	{Term: "violence", Language: TermShared, Category: models.CategoryPolice, Subservice: "emergency_response", Display: "تشدد"},
	{Term: "tashaddud", Language: TermLatin, Category: models.CategoryPolice, Subservice: "emergency_response", Display: "تشدد"},
	{Term: "gun", Language: TermShared, Category: models.CategoryPolice, Subservice: "emergency_response", Display: "بندوق"},
	{Term: "banduq", Language: TermLatin, Category: models.CategoryPolice, Subservice: "emergency_response", Display: "بندوق"},
	{Term: "knife", Language: TermShared, Category: models.CategoryPolice, Subservice: "emergency_response", Display: "چاقو"},
	{Term: "chaqoo", Language: TermLatin, Category: models.CategoryPolice, Subservice: "emergency_response", Display: "چاقو"},
	{Term: "shooting", Language: TermShared, Category: models.CategoryPolice, Subservice: "emergency_response", Display: "فائرنگ"},
	{Term: "firing", Language: TermLatin, Category: models.CategoryPolice, Subservice: "emergency_response", Display: "فائرنگ"},
	{Term: "burglary", Language: TermShared, Category: models.CategoryPolice, Subservice: "report_incident"},
	{Term: "crime", Language: TermShared, Category: models.CategoryPolice, Subservice: "non_emergency_guidance"},

	// disaster — Urdu script
	{Term: "آگ", Language: TermScript, Category: models.CategoryDisaster, Subservice: "evacuation_guidance"},
	{Term: "سیلاب", Language: TermScript, Category: models.CategoryDisaster, Subservice: "evacuation_guidance"},
	{Term: "زلزلہ", Language: TermScript, Category: models.CategoryDisaster, Subservice: "situation_monitor"},
	{Term: "پہاڑی تودہ", Language: TermScript, Category: models.CategoryDisaster, Subservice: "evacuation_guidance"},
	{Term: "طوفان", Language: TermScript, Category: models.CategoryDisaster, Subservice: "situation_monitor"},
	{Term: "خالی کرو", Language: TermScript, Category: models.CategoryDisaster, Subservice: "evacuation_guidance"},
	{Term: "پناہ گاہ", Language: TermScript, Category: models.CategoryDisaster, Subservice: "resource_request"},
	{Term: "بچاؤ", Language: TermScript, Category: models.CategoryDisaster, Subservice: "evacuation_guidance"},

	// disaster — Roman Urdu / shared
	{Term: "fire", Language: TermShared, Category: models.CategoryDisaster, Subservice: "evacuation_guidance", Display: "آگ"},
	{Term: "aag", Language: TermLatin, Category: models.CategoryDisaster, Subservice: "evacuation_guidance", Display: "آگ"},
	{Term: "flood", Language: TermShared, Category: models.CategoryDisaster, Subservice: "evacuation_guidance", Display: "سیلاب"},
	{Term: "sailab", Language: TermLatin, Category: models.CategoryDisaster, Subservice: "evacuation_guidance", Display: "سیلاب"},
	{Term: "earthquake", Language: TermShared, Category: models.CategoryDisaster, Subservice: "situation_monitor", Display: "زلزلہ"},
	{Term: "zalzala", Language: TermLatin, Category: models.CategoryDisaster, Subservice: "situation_monitor", Display: "زلزلہ"},
	{Term: "landslide", Language: TermShared, Category: models.CategoryDisaster, Subservice: "evacuation_guidance", Display: "پہاڑی تودہ"},
	{Term: "pahari toda", Language: TermLatin, Category: models.CategoryDisaster, Subservice: "evacuation_guidance", Display: "پہاڑی تودہ"},
	{Term: "storm", Language: TermShared, Category: models.CategoryDisaster, Subservice: "situation_monitor", Display: "طوفان"},
	{Term: "toofan", Language: TermLatin, Category: models.CategoryDisaster, Subservice: "situation_monitor", Display: "طوفان"},
	{Term: "cyclone", Language: TermShared, Category: models.CategoryDisaster, Subservice: "situation_monitor"},
	{Term: "evacuate", Language: TermShared, Category: models.CategoryDisaster, Subservice: "evacuation_guidance", Display: "خالی کرو"},
	{Term: "khali karo", Language: TermLatin, Category: models.CategoryDisaster, Subservice: "evacuation_guidance", Display: "خالی کرو"},
	{Term: "shelter", Language: TermShared, Category: models.CategoryDisaster, Subservice: "resource_request", Display: "پناہ گاہ"},
	{Term: "panah gah", Language: TermLatin, Category: models.CategoryDisaster, Subservice: "resource_request", Display: "پناہ گاہ"},
	{Term: "collapse", Language: TermShared, Category: models.CategoryDisaster, Subservice: "infrastructure_alert"},
	{Term: "wildfire", Language: TermShared, Category: models.CategoryDisaster, Subservice: "evacuation_guidance"},
}

// Transliteration pairs for tokens that are not category keywords but
// still have a curated script form.
var extraTransliterations = map[string]string{
	"emergency":    "ایمرجنسی",
	"help":         "مدد",
	"madad":        "مدد",
	"need":         "ضرورت",
	"zaroorat":     "ضرورت",
	"yes":          "ہاں",
	"haan":         "ہاں",
	"no":           "نہیں",
	"nahin":        "نہیں",
	"urgent":       "فوری",
	"fori":         "فوری",
	"quickly":      "جلدی",
	"jaldi":        "جلدی",
	"salam":        "سلام",
	"salaam":       "سلام",
	"adaab":        "آداب",
	"khuda hafiz":  "خدا حافظ",
	"allah hafiz":  "اللہ حافظ",
}

// Urgency indicators are kept separate from the category keyword table:
// "unconscious" is a severity cue, not a category cue.
var (
	criticalScript = []string{
		"بے ہوش", "سانس نہیں", "قلب کی دھڑکن رک گئی", "شدید خون",
		"بندوق", "فائرنگ", "آگ", "دھماکہ", "پھنس گیا", "فوری خطرہ",
	}
	criticalLatin = []string{
		"be hosh", "saans nahin", "dil ki dhadkan ruk gayi", "shadeed khoon",
		"banduq", "firing", "aag", "dhamaka", "phans gaya", "fori khatra",
	}
	criticalEnglish = []string{
		"not breathing", "unconscious", "cardiac arrest", "heavy bleeding",
		"gun", "shooting", "fire", "explosion", "trapped", "immediate danger",
		"choking", "can't breathe", "drowning", "seizure", "convulsions", "fits",
	}

	seriousScript = []string{
		"فریکچر", "ٹوٹا ہوا", "شدید درد", "ڈکیتی", "حملہ", "خطرہ",
		"سیلاب", "گر گیا", "زلزلہ", "پہاڑی تودہ",
	}
	seriousLatin = []string{
		"fracture", "tuta", "shadeed dard", "dakaiti", "hamla", "khatra",
		"sailab", "gir gaya", "zalzala", "pahari toda",
	}
	seriousEnglish = []string{
		"fracture", "broken", "severe pain", "robbery", "assault", "threat",
		"flood", "collapse", "landslide", "earthquake",
	}
)

// inProgressCrimes are serious indicators promoted to critical when the
// message signals the crime is happening right now.
var inProgressCrimes = map[string]bool{
	"robbery": true,
	"assault": true,
}

var greetingsScript = []string{
	"سلام علیکم", "السلام علیکم", "سلام", "آداب", "خدا حافظ", "اللہ حافظ",
	"صبح بخیر", "شام بخیر", "رات بخیر",
}

var greetingsLatin = []string{
	"assalamualaikum", "assalamu alaikum", "salaam alaikum", "salam alaikum",
	"salaam", "salam", "adaab", "khuda hafiz", "allah hafiz",
	"subah bakhair", "shaam bakhair", "raat bakhair",
	"good morning", "good afternoon", "good evening", "greetings",
	"hello", "hey", "hi",
}

// englishExclusions are common English words that also appear in the
// Roman Urdu vocabulary. They never count toward roman-language detection,
// preventing false positives like "ok", "no" or "pain".
var englishExclusions = map[string]bool{
	"ok": true, "no": true, "pain": true, "help": true, "need": true,
	"please": true, "yes": true, "i": true, "you": true, "we": true,
	"they": true, "the": true, "a": true, "an": true, "and": true,
	"or": true, "but": true, "call": true, "ambulance": true,
}

var stopwords = map[string]bool{
	"i": true, "the": true, "and": true, "a": true, "an": true, "to": true,
	"for": true, "my": true, "me": true, "is": true, "of": true, "on": true,
	"in": true, "with": true, "it": true, "we": true, "us": true,
	"our": true, "am": true, "please": true,
}
