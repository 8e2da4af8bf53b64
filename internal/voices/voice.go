package voices

import "strings"

const (
	// ClonedPrefix — по нему отличаем пользовательский голос от встроенного
	ClonedPrefix = "cloned_"

	CustomCategory   = "Custom Voices"
	AllVoicesFilter  = "All Voices"
	DefaultCategory  = "Professional"
	customLanguage   = "Custom"
	customGenderMark = "Custom"
)

// Voice — выбираемая голосовая идентичность, встроенная или склонированная
type Voice struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Gender      string `json:"gender"`
	Category    string `json:"category"`
	IsCustom    bool   `json:"is_custom"`

	// только для кастомных: URL аудио-образца в хранилище
	DownloadURL string `json:"download_url,omitempty"`
}

func newVoice(v Voice) Voice {
	v.IsCustom = strings.HasPrefix(v.ID, ClonedPrefix)
	return v
}

// целевая таксономия категорий
var consolidatedCategories = map[string]bool{
	"Business":          true,
	"Professional":      true,
	"Entertainment":     true,
	"Education":         true,
	"News & Media":      true,
	"Health & Wellness": true,
	"Technology":        true,
	"Sports & Fitness":  true,
	"Travel & Culture":  true,
	"Creative Arts":     true,
	"Lifestyle":         true,
	"Community":         true,
	CustomCategory:      true,
}

// legacyCategoryMap сводит старые дробные категории к консолидированным
var legacyCategoryMap = map[string]string{
	// Business & Professional
	"Corporate":        "Business",
	"Finance":          "Business",
	"Commercial":       "Business",
	"Customer Service": "Business",
	"Hospitality":      "Business",

	// Entertainment & Media
	"Podcast":       "Entertainment",
	"Radio":         "Entertainment",
	"TV":            "Entertainment",
	"Comedy":        "Entertainment",
	"ASMR":          "Entertainment",
	"Fantasy":       "Entertainment",
	"Suspense":      "Entertainment",
	"Parody":        "Entertainment",
	"Satirist":      "Entertainment",
	"Improv":        "Entertainment",
	"Observational": "Entertainment",
	"Prank":         "Entertainment",
	"Commentary":    "Entertainment",

	// Education & Learning
	"Educational":  "Education",
	"Philosophy":   "Education",
	"Science":      "Education",
	"Documentary":  "Education",
	"Storytelling": "Education",
	"Literary":     "Education",
	"Narration":    "Education",

	// News & Media
	"News":            "News & Media",
	"Current Affairs": "News & Media",
	"True Crime":      "News & Media",
	"Debate":          "News & Media",
	"Panel":           "News & Media",
	"Activism":        "News & Media",
	"Political":       "News & Media",

	// Health & Wellness
	"Wellness":      "Health & Wellness",
	"Medical":       "Health & Wellness",
	"Therapy":       "Health & Wellness",
	"Meditation":    "Health & Wellness",
	"Mindfulness":   "Health & Wellness",
	"Motivational":  "Health & Wellness",
	"Inspirational": "Health & Wellness",

	// Technology
	"Synthetic": "Technology",
	"AI":        "Technology",

	// Sports & Fitness
	"Sports":   "Sports & Fitness",
	"Fitness":  "Sports & Fitness",
	"Activity": "Sports & Fitness",

	// Travel & Culture
	"Travel":   "Travel & Culture",
	"Cultural": "Travel & Culture",
	"Regional": "Travel & Culture",
	"Urban":    "Travel & Culture",

	// Creative Arts
	"Creative":  "Creative Arts",
	"Music":     "Creative Arts",
	"Art":       "Creative Arts",
	"Design":    "Creative Arts",
	"Fashion":   "Creative Arts",
	"Beauty":    "Creative Arts",
	"Character": "Creative Arts",
	"Emotional": "Creative Arts",

	// Lifestyle
	"Cooking":   "Lifestyle",
	"Parenting": "Lifestyle",
	"Youth":     "Lifestyle",
	"Elderly":   "Lifestyle",
	"Casual":    "Lifestyle",
	"Energetic": "Lifestyle",
	"Mystical":  "Lifestyle",

	// Community & Social
	"Social Media": "Community",
	"Influencer":   "Community",
	"Reviews":      "Community",
	"Support":      "Community",

	// Voice types
	"Neutral": "Professional",
	"Male":    "Professional",
	"Female":  "Professional",
}

// consolidateCategory применяется один раз, при сборке каталога —
// запросы уже работают только с консолидированными значениями
func consolidateCategory(category string) string {
	if consolidatedCategories[category] {
		return category
	}
	if mapped, ok := legacyCategoryMap[category]; ok {
		return mapped
	}
	return DefaultCategory
}

func loadBuiltinVoices() []Voice {
	loaded := make([]Voice, 0, len(builtinVoices))
	for _, v := range builtinVoices {
		v.Category = consolidateCategory(v.Category)
		loaded = append(loaded, newVoice(v))
	}
	return loaded
}
