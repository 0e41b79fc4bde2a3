// Package i18n holds the localized label tables for indicator rows and
// section titles. Lookup falls back to English and then to the
// caller-supplied default, so a missing translation never blanks a label.
package i18n

// DefaultLang is used when the requested language has no table.
const DefaultLang = "en"

// Supported reports whether a language has a table of its own.
func Supported(lang string) bool {
	_, ok := tables[lang]
	return ok
}

// Normalize maps an arbitrary language tag onto a supported one.
func Normalize(lang string) string {
	if Supported(lang) {
		return lang
	}
	return DefaultLang
}

// T resolves key in the given language, falling back to English, then to
// fallback, then to the key itself.
func T(lang, key, fallback string) string {
	if s, ok := tables[lang][key]; ok {
		return s
	}
	if s, ok := tables[DefaultLang][key]; ok {
		return s
	}
	if fallback != "" {
		return fallback
	}
	return key
}

var tables = map[string]map[string]string{
	"en": {
		"title_overview":     "Overview",
		"title_gender":       "Population by Gender",
		"title_institutions": "Institutions (Universities)",
		"title_health":       "Health Indicators",
		"title_economic":     "Economic Indicators",
		"title_education":    "Education Metrics",

		"health_beds":            "Hospital beds per 1,000 people",
		"health_expenditure_gdp": "Current health expenditure (% of GDP)",
		"health_physicians":      "Physicians per 1,000 people",

		"econ_gdp":             "GDP (current US$)",
		"econ_unemployment":    "Unemployment rate (%)",
		"econ_inflation":       "Inflation (annual %)",
		"econ_gdp_per_capita":  "GDP per capita (current US$)",
		"econ_poverty":         "Poverty headcount ratio (% at $2.15/day)",
		"econ_gov_exp_gdp":     "Government expenditure (% of GDP)",
		"econ_current_account": "Current account balance (US$)",

		"edu_literacy":           "Adult literacy rate (%)",
		"edu_primary_enroll":     "Primary school net enrollment (%)",
		"edu_secondary_enroll":   "Secondary school enrollment (gross %)",
		"edu_tertiary_enroll":    "Tertiary school enrollment (gross %)",
		"edu_primary_complete":   "Primary completion rate (%)",
		"edu_secondary_complete": "Secondary completion rate (%)",
		"edu_tertiary_complete":  "Tertiary completion rate (%)",
		"edu_ptr_primary":        "Pupil-teacher ratio (Primary)",
		"edu_ptr_secondary":      "Pupil-teacher ratio (Secondary)",
	},
	"ur": {
		"title_overview":     "خلاصہ",
		"title_gender":       "آبادی (مرد/عورت)",
		"title_institutions": "ادارے (جامعات)",
		"title_health":       "صحت کے اشاریے",
		"title_economic":     "معاشی اشاریے",
		"title_education":    "تعلیمی اشاریے",

		"health_beds":            "ہر 1000 افراد پر ہسپتال بیڈز",
		"health_expenditure_gdp": "صحت پر اخراجات (% GDP)",
		"health_physicians":      "ہر 1000 افراد پر ڈاکٹر",

		"econ_gdp":             "مجموعی قومی پیداوار (موجودہ امریکی ڈالر)",
		"econ_unemployment":    "بے روزگاری شرح (%)",
		"econ_inflation":       "مہنگائی (سالانہ %)",
		"econ_gdp_per_capita":  "فی کس GDP (موجودہ امریکی ڈالر)",
		"econ_poverty":         "غربت سر شمار (% $2.15/دن)",
		"econ_gov_exp_gdp":     "حکومتی اخراجات (% GDP)",
		"econ_current_account": "کرنٹ اکاؤنٹ بیلنس (امریکی ڈالر)",

		"edu_literacy":           "بالغان کی خواندگی کی شرح (%)",
		"edu_primary_enroll":     "ابتدائی تعلیم خالص اندراج (%)",
		"edu_secondary_enroll":   "ثانوی تعلیم اندراج (مجموعی %)",
		"edu_tertiary_enroll":    "اعلیٰ تعلیم اندراج (مجموعی %)",
		"edu_primary_complete":   "ابتدائی تکمیل کی شرح (%)",
		"edu_secondary_complete": "ثانوی تکمیل کی شرح (%)",
		"edu_tertiary_complete":  "اعلیٰ تکمیل کی شرح (%)",
		"edu_ptr_primary":        "طالب علم-استاد تناسب (ابتدائی)",
		"edu_ptr_secondary":      "طالب علم-استاد تناسب (ثانوی)",
	},
	"hi": {
		"title_overview":     "सारांश",
		"title_gender":       "जनसंख्या (पुरुष/महिला)",
		"title_institutions": "संस्थान (विश्वविद्यालय)",
		"title_health":       "स्वास्थ्य संकेतक",
		"title_economic":     "आर्थिक संकेतक",
		"title_education":    "शिक्षा संकेतक",

		"health_beds":            "प्रति 1000 जनसंख्या अस्पताल बेड",
		"health_expenditure_gdp": "स्वास्थ्य व्यय (% GDP)",
		"health_physicians":      "प्रति 1000 जनसंख्या चिकित्सक",

		"econ_gdp":             "सकल घरेलू उत्पाद (वर्तमान US$)",
		"econ_unemployment":    "बेरोज़गारी दर (%)",
		"econ_inflation":       "मुद्रास्फीति (वार्षिक %)",
		"econ_gdp_per_capita":  "प्रति व्यक्ति GDP (वर्तमान US$)",
		"econ_poverty":         "गरीबी हेडकाउंट (% $2.15/दिन)",
		"econ_gov_exp_gdp":     "सरकारी व्यय (% GDP)",
		"econ_current_account": "चालू खाते का शेष (US$)",

		"edu_literacy":           "वयस्क साक्षरता दर (%)",
		"edu_primary_enroll":     "प्राथमिक शुद्ध नामांकन (%)",
		"edu_secondary_enroll":   "माध्यमिक नामांकन (सकल %)",
		"edu_tertiary_enroll":    "तृतीयक नामांकन (सकल %)",
		"edu_primary_complete":   "प्राथमिक पूर्णता दर (%)",
		"edu_secondary_complete": "माध्यमिक पूर्णता दर (%)",
		"edu_tertiary_complete":  "तृतीयक पूर्णता दर (%)",
		"edu_ptr_primary":        "प्यूपिल-टीचर अनुपात (प्राथमिक)",
		"edu_ptr_secondary":      "प्यूपिल-टीचर अनुपात (माध्यमिक)",
	},
}
