package crawler

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func TestExtractDescription(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "meta description wins verbatim",
			html: `<html><head><meta name="description" content="We sell handmade shoes online."></head>
				<body><p>Some much longer paragraph with many more words than the meta tag has.</p></body></html>`,
			want: "We sell handmade shoes online.",
		},
		{
			name: "og description fallback",
			html: `<html><head><meta property="og:description" content="  Crafted leather goods since 1985.  "></head></html>`,
			want: "Crafted leather goods since 1985.",
		},
		{
			name: "longest substantial paragraph",
			html: `<html><body><p>Too short here.</p>
				<p>This paragraph has exactly enough words to qualify fine.</p>
				<p>This one is the longest paragraph of all and it certainly has more than six words.</p></body></html>`,
			want: "This one is the longest paragraph of all and it certainly has more than six words.",
		},
		{
			name: "nothing usable",
			html: `<html><body><p>Short one.</p></body></html>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractDescription(mustDoc(t, tt.html))
			if got != tt.want {
				t.Errorf("extractDescription() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractLogo(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "icon link beats og image",
			html: `<html><head><link rel="icon" href="/favicon.png">
				<meta property="og:image" content="https://cdn.example.com/og.png"></head></html>`,
			want: "https://example.com/favicon.png",
		},
		{
			name: "og image fallback",
			html: `<html><head><meta property="og:image" content="https://cdn.example.com/og.png"></head></html>`,
			want: "https://cdn.example.com/og.png",
		},
		{
			name: "header img with logo class",
			html: `<html><body><header><img class="site-logo" src="assets/logo.svg"></header>
				<img src="/hero.jpg"></body></html>`,
			want: "https://example.com/assets/logo.svg",
		},
		{
			name: "img with logo alt anywhere",
			html: `<html><body><div><img alt="Acme Logo" src="/img/acme.png"></div></body></html>`,
			want: "https://example.com/img/acme.png",
		},
		{
			name: "no logo at all",
			html: `<html><body><img src="/photo.jpg" alt="a photo"></body></html>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractLogo(mustDoc(t, tt.html), "https://example.com/")
			if got != tt.want {
				t.Errorf("extractLogo() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#FF5733", "#ff5733"},
		{"ff5733", "#ff5733"},
		{"#FFF", "#ffffff"},
		{"abc", "#aabbcc"},
		{"#aabbccdd", "#aabbcc"},
		{"  #Aa12Ff ", "#aa12ff"},
		{"red", ""},
		{"#xyz", ""},
		{"#12345", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeHex(tt.in); got != tt.want {
			t.Errorf("normalizeHex(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractColors(t *testing.T) {
	html := `<html><head>
		<meta name="theme-color" content="#FF5733">
		<style>
			:root { --brand-primary: #0B5FFF; --spacing: 8px; }
			.btn { color: #0b5fff; background: #ffffff; }
			.accent { color: #22c55e; }
		</style>
	</head><body>
		<div style="background-color: #8800CC">x</div>
	</body></html>`

	got := extractColors(mustDoc(t, html))
	want := []string{"#ff5733", "#0b5fff", "#8800cc", "#22c55e"}
	if len(got) != len(want) {
		t.Fatalf("extractColors() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("color[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtractColorsExpandsShorthand(t *testing.T) {
	html := `<html><head>
		<meta name="theme-color" content="#fff">
		<style>:root { --brand-primary: #ABC; }</style>
	</head></html>`

	got := extractColors(mustDoc(t, html))
	want := []string{"#ffffff", "#aabbcc"}
	if len(got) != len(want) {
		t.Fatalf("extractColors() = %v, want %v", got, want)
	}
	for i, c := range got {
		if c != want[i] {
			t.Errorf("color[%d] = %q, want %q", i, c, want[i])
		}
		if len(c) != 7 {
			t.Errorf("color %q is not #rrggbb", c)
		}
	}
}

func TestExtractColorsSkipsGenericAndCaps(t *testing.T) {
	html := `<html><head><style>
		a { color: #ffffff; }
		b { color: #333333; }
		c { color: #111111; }
		d { color: #222222; }
		e { color: #444444; }
		f { color: #555555; }
		g { color: #777777; }
	</style></head></html>`

	got := extractColors(mustDoc(t, html))
	if len(got) != maxBrandColors {
		t.Fatalf("got %d colors, want %d: %v", len(got), maxBrandColors, got)
	}
	for _, c := range got {
		if genericColors[c] {
			t.Errorf("generic color %q should have been skipped", c)
		}
	}
}

func TestInferTones(t *testing.T) {
	tests := []struct {
		name string
		desc string
		want []string
	}{
		{
			name: "motivating keywords",
			desc: "We help businesses grow faster every day.",
			want: []string{"Motivating", "Optimistic"},
		},
		{
			name: "informative keywords",
			desc: "A platform to manage and analyze your data.",
			want: []string{"Informative", "Professional"},
		},
		{
			name: "both groups ordered by vocabulary",
			desc: "An AI platform that helps you improve results.",
			want: []string{"Professional", "Informative", "Motivating"},
		},
		{
			name: "default",
			desc: "Bespoke tailoring for discerning customers.",
			want: []string{"Professional", "Informative"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inferTones(tt.desc)
			if len(got) != len(tt.want) {
				t.Fatalf("inferTones() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("tone[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtractLanguage(t *testing.T) {
	tests := []struct {
		name string
		html string
		desc string
		want string
	}{
		{
			name: "html lang primary subtag",
			html: `<html lang="fr-CA"></html>`,
			want: "fr",
		},
		{
			name: "uppercase lang normalized",
			html: `<html lang="DE"></html>`,
			want: "de",
		},
		{
			name: "no lang short description defaults en",
			html: `<html></html>`,
			desc: "Too short to detect.",
			want: "en",
		},
		{
			name: "cyrillic description detected",
			html: `<html></html>`,
			desc: "Мы продаём лучшие товары для дома и сада по выгодным ценам каждый день",
			want: "ru",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractLanguage(mustDoc(t, tt.html), tt.desc)
			if got != tt.want {
				t.Errorf("extractLanguage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"The quick brown fox jumps over the lazy dog", "en"},
		{"Быстрая коричневая лиса прыгает через ленивую собаку", "ru"},
		{"", "en"},
		{"12345 678", "en"},
	}

	for _, tt := range tests {
		if got := DetectLanguage(tt.text); got != tt.want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
