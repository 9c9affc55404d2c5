package domain

// HumorCategory identifies the kind of humor item.
type HumorCategory string

const (
	CategoryDadJokes         HumorCategory = "DAD_JOKES"
	CategoryKnockKnockJokes  HumorCategory = "KNOCK_KNOCK_JOKES"
	CategoryOneLiners        HumorCategory = "ONE_LINERS"
	CategoryDarkHumors       HumorCategory = "DARK_HUMORS"
	CategoryTrickyRiddles    HumorCategory = "TRICKY_RIDDLES"
	CategoryOXQuiz           HumorCategory = "OX_QUIZ"
	CategoryFunnyQuotes      HumorCategory = "FUNNY_QUOTES"
	CategoryStoryJokes       HumorCategory = "STORY_JOKES"
	CategoryDetectivePuzzles HumorCategory = "DETECTIVE_PUZZLES"
	CategoryYourHumors       HumorCategory = "YOUR_HUMORS"
)

// Categories is the fixed category enumeration in canonical order.
var Categories = []HumorCategory{
	CategoryDadJokes,
	CategoryKnockKnockJokes,
	CategoryOneLiners,
	CategoryDarkHumors,
	CategoryTrickyRiddles,
	CategoryOXQuiz,
	CategoryFunnyQuotes,
	CategoryStoryJokes,
	CategoryDetectivePuzzles,
	CategoryYourHumors,
}

func (c HumorCategory) String() string { return string(c) }

func (c HumorCategory) IsValid() bool {
	switch c {
	case CategoryDadJokes, CategoryKnockKnockJokes, CategoryOneLiners,
		CategoryDarkHumors, CategoryTrickyRiddles, CategoryOXQuiz,
		CategoryFunnyQuotes, CategoryStoryJokes, CategoryDetectivePuzzles,
		CategoryYourHumors:
		return true
	}
	return false
}

// Preview placeholders shown instead of the real punchline in locked bundles.
const (
	PlaceholderPunchline = "Purchase to view punchline! :)"
	PlaceholderAnswer    = "Purchase to view answer! :)"
)

// punchline-style categories get the punchline placeholder, answer-style
// categories (quiz/riddle/puzzle) get the answer placeholder. Categories
// without a mapping get an empty placeholder.
var previewPlaceholders = map[HumorCategory]string{
	CategoryDadJokes:         PlaceholderPunchline,
	CategoryKnockKnockJokes:  PlaceholderPunchline,
	CategoryOneLiners:        PlaceholderPunchline,
	CategoryDarkHumors:       PlaceholderPunchline,
	CategoryStoryJokes:       PlaceholderPunchline,
	CategoryTrickyRiddles:    PlaceholderAnswer,
	CategoryOXQuiz:           PlaceholderAnswer,
	CategoryDetectivePuzzles: PlaceholderAnswer,
}

// PreviewPlaceholder returns the redaction text for a category's punchline.
func (c HumorCategory) PreviewPlaceholder() string {
	return previewPlaceholders[c]
}
