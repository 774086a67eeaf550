package extract

import (
	"testing"

	"github.com/riverfjs/rtltext-go/internal/types"
)

func TestURLs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []types.URL
	}{
		{"http", "see http://example.com now", []types.URL{{URL: "http://example.com", Offset: 4, Length: 18}}},
		{"www", "www.example.com", []types.URL{{URL: "www.example.com", Offset: 0, Length: 15}}},
		{"after hebrew", "שלום https://example.com", []types.URL{{URL: "https://example.com", Offset: 5, Length: 19}}},
		{"trailing period", "go to https://example.com.", []types.URL{{URL: "https://example.com", Offset: 6, Length: 19}}},
		{"repeated", "http://a.com http://a.com", []types.URL{
			{URL: "http://a.com", Offset: 0, Length: 12},
			{URL: "http://a.com", Offset: 13, Length: 12},
		}},
		{"after quote", "שלום \"https://example.com/abc\"", []types.URL{{URL: "https://example.com/abc", Offset: 6, Length: 23}}},
		{"after colon", "שלום:https://example.com/abc", []types.URL{{URL: "https://example.com/abc", Offset: 5, Length: 23}}},
		{"indented paragraph", "שלום\n\n    https://y.com", []types.URL{{URL: "https://y.com", Offset: 10, Length: 13}}},
		{"indented continuation", "שלום\n\t\thttps://y.com", []types.URL{{URL: "https://y.com", Offset: 7, Length: 13}}},
		{"bare domain with path", "שלום example.com/abcdef", []types.URL{{URL: "example.com/abcdef", Offset: 5, Length: 18}}},
		{"bare generic domain", "try example.org.", []types.URL{{URL: "example.org", Offset: 4, Length: 11}}},
		{"country domain with path", "visit x.il/path", []types.URL{{URL: "x.il/path", Offset: 6, Length: 9}}},
		{"country domain without path", "visit x.il", nil},
		{"unbalanced paren", "(see https://example.com/a)", []types.URL{{URL: "https://example.com/a", Offset: 5, Length: 21}}},
		{"file name", "open notes.txt", nil},
		{"version", "version 1.2.3", nil},
		{"glued to word", "xhttps://a.com", nil},
		{"email", "mail me at a@b.com", nil},
		{"none", "no links here", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := URLs(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("URLs(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("URLs(%q)[%d] = %+v, want %+v", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestURL_ToDict(t *testing.T) {
	u := types.URL{URL: "http://x.co", Offset: 0, Length: 11}
	d := u.ToDict()
	if d["url"] != "http://x.co" || d["length"] != 11 {
		t.Errorf("ToDict() = %v", d)
	}
}
