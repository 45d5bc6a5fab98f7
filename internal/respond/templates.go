package respond

import "github.com/mwaleedk/go-emergency-dispatch/internal/models"

// templateLang folds the detected language onto the three template sets.
// Mixed messages render with the script templates, which keep the Urdu
// cues intact for readers of either form.
func templateLang(lang models.Language) models.Language {
	switch lang {
	case models.LanguageUrdu, models.LanguageMixed:
		return models.LanguageUrdu
	case models.LanguageRoman:
		return models.LanguageRoman
	default:
		return models.LanguageEnglish
	}
}

var serviceLabels = map[models.Language]map[models.Category]string{
	models.LanguageEnglish: {
		models.CategoryMedical:  "🏥 MEDICAL",
		models.CategoryPolice:   "🚔 POLICE",
		models.CategoryDisaster: "🌪️ DISASTER",
		models.CategoryGeneral:  "📞 GENERAL",
	},
	models.LanguageUrdu: {
		models.CategoryMedical:  "🏥 طبی",
		models.CategoryPolice:   "🚔 پولیس",
		models.CategoryDisaster: "🌪️ آفت",
		models.CategoryGeneral:  "📞 عمومی",
	},
	models.LanguageRoman: {
		models.CategoryMedical:  "🏥 Medical",
		models.CategoryPolice:   "🚔 Police",
		models.CategoryDisaster: "🌪️ Disaster",
		models.CategoryGeneral:  "📞 General",
	},
}

var urgencyLabels = map[models.Language]map[models.Urgency]string{
	models.LanguageEnglish: {
		models.UrgencyCritical:      "🔴 U1",
		models.UrgencySerious:       "🟡 U2",
		models.UrgencyInformational: "🟢 U3",
	},
	models.LanguageUrdu: {
		models.UrgencyCritical:      "🔴 فوری",
		models.UrgencySerious:       "🟡 ضروری",
		models.UrgencyInformational: "🟢 عام",
	},
	models.LanguageRoman: {
		models.UrgencyCritical:      "🔴 Zaroori",
		models.UrgencySerious:       "🟡 Important",
		models.UrgencyInformational: "🟢 Normal",
	},
}

var summaries = map[models.Language]map[models.Urgency]string{
	models.LanguageEnglish: {
		models.UrgencyCritical:      "🚨 This is a life-threatening emergency. Help is being arranged immediately.",
		models.UrgencySerious:       "⚠️ This is a serious situation. You are being connected with the right service.",
		models.UrgencyInformational: "ℹ️ Your request has been noted.",
	},
	models.LanguageUrdu: {
		models.UrgencyCritical:      "🚨 یہ جان لیوا ایمرجنسی ہے، فوری مدد کا بندوبست کیا جا رہا ہے۔",
		models.UrgencySerious:       "⚠️ یہ سنگین صورتحال ہے، آپ کو درست سروس سے جوڑا جا رہا ہے۔",
		models.UrgencyInformational: "ℹ️ آپ کی درخواست نوٹ کر لی گئی ہے۔",
	},
	models.LanguageRoman: {
		models.UrgencyCritical:      "🚨 Yeh jaan leva emergency hai, fori madad ka bandobast kiya ja raha hai.",
		models.UrgencySerious:       "⚠️ Yeh sangeen soorat-e-haal hai, aap ko durust service se jora ja raha hai.",
		models.UrgencyInformational: "ℹ️ Aap ki darkhwast note kar li gayi hai.",
	},
}

var actionLines = map[models.Language]map[models.Category]string{
	models.LanguageEnglish: {
		models.CategoryMedical:  "✅ Emergency units have been dispatched to your location.",
		models.CategoryPolice:   "✅ The nearest police station has been alerted.",
		models.CategoryDisaster: "✅ Emergency evacuation coordination has been initiated.",
		models.CategoryGeneral:  "✅ Your request has been logged.",
	},
	models.LanguageUrdu: {
		models.CategoryMedical:  "✅ ایمرجنسی یونٹس آپ کے مقام پر بھیج دیے گئے ہیں۔",
		models.CategoryPolice:   "✅ قریبی پولیس اسٹیشن کو الرٹ کر دیا گیا ہے۔",
		models.CategoryDisaster: "✅ ہنگامی انخلا کی کارروائی شروع کر دی گئی ہے۔",
		models.CategoryGeneral:  "✅ آپ کی درخواست درج کر لی گئی ہے۔",
	},
	models.LanguageRoman: {
		models.CategoryMedical:  "✅ Emergency units aap ki location par bhej diye gaye hain.",
		models.CategoryPolice:   "✅ Qareebi police station ko alert kar diya gaya hai.",
		models.CategoryDisaster: "✅ Hangami inkhila ki karwai shuru kar di gayi hai.",
		models.CategoryGeneral:  "✅ Aap ki darkhwast darj kar li gayi hai.",
	},
}

var minimalActions = map[models.Language]string{
	models.LanguageEnglish: "Dispatched",
	models.LanguageUrdu:    "بھیجا",
	models.LanguageRoman:   "Bhijaya",
}

var followUps = map[models.Language]map[models.Category]string{
	models.LanguageEnglish: {
		models.CategoryMedical:  "Is the patient conscious and breathing?",
		models.CategoryPolice:   "Are you in a safe place right now?",
		models.CategoryDisaster: "Are there people trapped nearby?",
		models.CategoryGeneral:  "Could you describe the emergency or how I can assist you today?",
	},
	models.LanguageUrdu: {
		models.CategoryMedical:  "کیا مریض ہوش میں ہے اور سانس لے رہا ہے؟",
		models.CategoryPolice:   "کیا آپ اس وقت محفوظ جگہ پر ہیں؟",
		models.CategoryDisaster: "کیا قریب لوگ پھنسے ہوئے ہیں؟",
		models.CategoryGeneral:  "برائے کرم اپنی ایمرجنسی کی تفصیل بتائیں",
	},
	models.LanguageRoman: {
		models.CategoryMedical:  "Kya mareez hosh mein hai aur saans le raha hai?",
		models.CategoryPolice:   "Kya aap is waqt mehfooz jagah par hain?",
		models.CategoryDisaster: "Kya qareeb log phanse hue hain?",
		models.CategoryGeneral:  "Barae karam apni emergency ki tafseel batayen",
	},
}

var minimalFollowUps = map[models.Language]map[models.Category]string{
	models.LanguageEnglish: {
		models.CategoryMedical:  "Conscious?",
		models.CategoryPolice:   "Safe?",
		models.CategoryDisaster: "Trapped?",
		models.CategoryGeneral:  "Details?",
	},
	models.LanguageUrdu: {
		models.CategoryMedical:  "ہوش میں؟",
		models.CategoryPolice:   "محفوظ؟",
		models.CategoryDisaster: "پھنسے؟",
		models.CategoryGeneral:  "تفصیل؟",
	},
	models.LanguageRoman: {
		models.CategoryMedical:  "Hosh mein?",
		models.CategoryPolice:   "Mehfooz?",
		models.CategoryDisaster: "Phanse?",
		models.CategoryGeneral:  "Tafseel?",
	},
}

var facilityHeadings = map[models.Language]string{
	models.LanguageEnglish: "🏢 Nearest center",
	models.LanguageUrdu:    "🏢 قریبی مرکز",
	models.LanguageRoman:   "🏢 Qareebi markaz",
}

var generalHelpLines = map[models.Language]string{
	models.LanguageEnglish: "📞 I'm here to help. Let me know what you need.",
	models.LanguageUrdu:    "📞 میں مدد کے لیے حاضر ہوں، بتائیں کیا چاہیے۔",
	models.LanguageRoman:   "📞 Main madad ke liye hazir hoon, batayen kya chahiye.",
}
