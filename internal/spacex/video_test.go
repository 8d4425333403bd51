package spacex

import "testing"

func strPtr(s string) *string { return &s }

func TestExtractVideoID(t *testing.T) {
	cases := []struct {
		name string
		in   *string
		want string
	}{
		{"absent", nil, "error"},
		{"empty", strPtr(""), "error"},
		{"watch", strPtr("https://www.youtube.com/watch?v=abcdefghijk"), "abcdefghijk"},
		{"watch_extra_params", strPtr("https://www.youtube.com/watch?v=0a_Tmp5Dw4k&feature=youtu.be"), "0a_Tmp5Dw4k"},
		{"amp_v", strPtr("https://www.youtube.com/watch?feature=player&v=abcdefghijk"), "abcdefghijk"},
		{"short", strPtr("https://youtu.be/abcdefghijk"), "abcdefghijk"},
		{"short_with_time", strPtr("https://youtu.be/abcdefghijk?t=30"), "abcdefghijk"},
		{"embed", strPtr("https://www.youtube.com/embed/abcdefghijk"), "abcdefghijk"},
		{"v_path", strPtr("https://www.youtube.com/v/abcdefghijk?version=3"), "abcdefghijk"},
		{"user_path", strPtr("https://www.youtube.com/user/SpaceX#p/u/1/abcdefghijk"), "abcdefghijk"},
		{"fragment_stops_id", strPtr("https://youtu.be/abcdefghijk#x"), "abcdefghijk"},
		{"not_a_video", strPtr("https://example.com/not-a-video"), "error"},
		{"too_short", strPtr("https://youtu.be/abc"), "error"},
		{"too_long", strPtr("https://youtu.be/abcdefghijkl"), "error"},
		{"surrogate_pair_counts_twice", strPtr("https://youtu.be/ab\U0001F680cdefghi"), "ab\U0001F680cdefghi"},
		{"eleven_runes_too_many_units", strPtr("https://youtu.be/\U0001F680\U0001F680\U0001F680\U0001F680\U0001F680\U0001F680\U0001F680\U0001F680\U0001F680\U0001F680\U0001F680"), "error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractVideoID(tc.in); got != tc.want {
				t.Fatalf("ExtractVideoID = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEmbedURL(t *testing.T) {
	l := Launch{VideoLink: strPtr("https://youtu.be/abcdefghijk")}
	if got := l.EmbedURL(); got != "https://www.youtube.com/embed/abcdefghijk" {
		t.Fatalf("EmbedURL = %q", got)
	}
	if got := (Launch{}).EmbedURL(); got != "https://www.youtube.com/embed/error" {
		t.Fatalf("EmbedURL without video = %q, want sentinel embed", got)
	}
}
