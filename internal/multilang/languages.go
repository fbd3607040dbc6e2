package multilang

import (
	"errors"
	"fmt"
	"slices"
)

var ErrUnknownLanguage = errors.New("unknown language")

// DefaultLanguage is used when a requested sample is not translated.
const DefaultLanguage = "en"

type CoverageTier string

const (
	CoverageHigh   CoverageTier = "high"
	CoverageMedium CoverageTier = "medium"
	CoverageLow    CoverageTier = "low"
)

// TierFor buckets a coverage percentage.
func TierFor(coverage int) CoverageTier {
	switch {
	case coverage >= 90:
		return CoverageHigh
	case coverage >= 75:
		return CoverageMedium
	default:
		return CoverageLow
	}
}

type Language struct {
	Code       string       `json:"code"`
	Name       string       `json:"name"`
	NativeName string       `json:"native_name"`
	Flag       string       `json:"flag"`
	Coverage   int          `json:"coverage"`
	Tier       CoverageTier `json:"tier"`
	LegalDocs  int          `json:"legal_docs"`
	Countries  []string     `json:"countries"`
}

type Sample struct {
	Language string `json:"language"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

var languages = []Language{
	{Code: "en", Name: "English", NativeName: "English", Flag: "🇺🇸", Coverage: 100, LegalDocs: 15420, Countries: []string{"US", "UK", "AU", "CA", "NZ"}},
	{Code: "ar", Name: "Arabic", NativeName: "العربية", Flag: "🇸🇦", Coverage: 95, LegalDocs: 8750, Countries: []string{"UAE", "SA", "EG", "JO", "LB"}},
	{Code: "fr", Name: "French", NativeName: "Français", Flag: "🇫🇷", Coverage: 90, LegalDocs: 6200, Countries: []string{"FR", "BE", "CH", "CA", "MA"}},
	{Code: "de", Name: "German", NativeName: "Deutsch", Flag: "🇩🇪", Coverage: 85, LegalDocs: 5100, Countries: []string{"DE", "AT", "CH"}},
	{Code: "zh", Name: "Chinese", NativeName: "中文", Flag: "🇨🇳", Coverage: 80, LegalDocs: 4800, Countries: []string{"CN", "TW", "HK", "SG"}},
	{Code: "ja", Name: "Japanese", NativeName: "日本語", Flag: "🇯🇵", Coverage: 75, LegalDocs: 3200, Countries: []string{"JP"}},
	{Code: "hi", Name: "Hindi", NativeName: "हिन्दी", Flag: "🇮🇳", Coverage: 70, LegalDocs: 2900, Countries: []string{"IN"}},
	{Code: "ru", Name: "Russian", NativeName: "Русский", Flag: "🇷🇺", Coverage: 65, LegalDocs: 2100, Countries: []string{"RU", "BY", "KZ"}},
}

var samples = map[string]Sample{
	"en": {
		Language: "en",
		Title:    "Traffic Violation Notice",
		Content: "You have been issued a traffic violation for exceeding the speed limit. The fine amount is $200 " +
			"and must be paid within 30 days to avoid additional penalties.",
	},
	"ar": {
		Language: "ar",
		Title:    "إشعار مخالفة مرورية",
		Content: "لقد تم إصدار مخالفة مرورية لك بسبب تجاوز حد السرعة المسموح. مبلغ الغرامة هو 200 دولار " +
			"ويجب دفعها خلال 30 يوماً لتجنب العقوبات الإضافية.",
	},
	"fr": {
		Language: "fr",
		Title:    "Avis d'infraction routière",
		Content: "Vous avez reçu une contravention pour excès de vitesse. Le montant de l'amende est de 200 $ " +
			"et doit être payé dans les 30 jours pour éviter des pénalités supplémentaires.",
	},
}

func withTier(l Language) Language {
	l.Tier = TierFor(l.Coverage)
	l.Countries = slices.Clone(l.Countries)
	return l
}

// Languages lists every supported language, highest coverage first.
func Languages() []Language {
	out := make([]Language, 0, len(languages))
	for _, l := range languages {
		out = append(out, withTier(l))
	}
	return out
}

func Lookup(code string) (Language, error) {
	for _, l := range languages {
		if l.Code == code {
			return withTier(l), nil
		}
	}
	return Language{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
}

// SampleFor returns the demo notice in the requested language, or in English
// when that language has no translation yet.
func SampleFor(code string) Sample {
	if s, ok := samples[code]; ok {
		return s
	}
	return samples[DefaultLanguage]
}
