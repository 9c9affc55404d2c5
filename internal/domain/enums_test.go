package domain

import "testing"

func TestHumorCategory_IsValid(t *testing.T) {
	t.Parallel()

	for _, c := range Categories {
		if !c.IsValid() {
			t.Errorf("%s should be valid", c)
		}
	}

	for _, s := range []string{"", "dad_jokes", "PUNS", "DAD_JOKES "} {
		if HumorCategory(s).IsValid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestPreviewPlaceholder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		category HumorCategory
		want     string
	}{
		{CategoryDadJokes, PlaceholderPunchline},
		{CategoryKnockKnockJokes, PlaceholderPunchline},
		{CategoryTrickyRiddles, PlaceholderAnswer},
		{CategoryOXQuiz, PlaceholderAnswer},
		{CategoryDetectivePuzzles, PlaceholderAnswer},
		{CategoryFunnyQuotes, ""},
		{CategoryYourHumors, ""},
	}

	for _, tc := range cases {
		if got := tc.category.PreviewPlaceholder(); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.category, got, tc.want)
		}
	}
}
