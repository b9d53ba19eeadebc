package content

import (
	"strings"
	"testing"

	"github.com/Xushengqwer/trade_site/models/entities"
	"gorm.io/datatypes"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Çelik Boru İhracatı", "celik-boru-ihracati"},
		{"Şekerli Ürünler", "sekerli-urunler"},
		{"  Hello,   World!  ", "hello-world"},
		{"Steel Pipe 2024", "steel-pipe-2024"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSlugifyTruncatesAtWordBoundary(t *testing.T) {
	long := strings.Repeat("export ", 30)
	got := Slugify(long)
	if len(got) > MaxSlugLength {
		t.Fatalf("slug too long: %d", len(got))
	}
	if strings.HasSuffix(got, "-") || !strings.HasSuffix(got, "export") {
		t.Errorf("slug not cut at word boundary: %q", got)
	}
}

func TestWhatsAppLink(t *testing.T) {
	if got := WhatsAppLink("+90 (532) 123 45 67", ""); got != "https://wa.me/905321234567" {
		t.Errorf("unexpected link %s", got)
	}
	got := WhatsAppLink("+90 532 123 45 67", "Merhaba Ali & ekip?")
	want := "https://wa.me/905321234567?text=Merhaba%20Ali%20%26%20ekip%3F"
	if got != want {
		t.Errorf("WhatsAppLink = %s, want %s", got, want)
	}
}

func TestReplyGreeting(t *testing.T) {
	if got := ReplyGreeting("Ali", "Fiyat"); got != `Merhaba Ali, "Fiyat" konulu mesajınız için teşekkür ederiz.` {
		t.Errorf("unexpected greeting %q", got)
	}
	if got := ReplyGreeting("", ""); got != "Merhaba, mesajınız için teşekkür ederiz." {
		t.Errorf("unexpected greeting %q", got)
	}
}

func TestPrompts(t *testing.T) {
	p := &entities.Product{
		Name:           "Seamless Steel Pipe",
		Slug:           "seamless-steel-pipe",
		Manufacturer:   "Acme",
		TechnicalSpecs: datatypes.JSONSlice[entities.TechnicalSpec]{{Name: "Diameter", Value: "50mm"}},
		SEO:            datatypes.NewJSONType(entities.ProductSEO{Keywords: []string{"steel pipe"}}),
	}

	desc := ProductDescriptionPrompt(p, "Pipes")
	for _, want := range []string{"Seamless Steel Pipe", "Category: Pipes", "Diameter: 50mm", "Focus keyword: steel pipe", "1.5% and 2.5%"} {
		if !strings.Contains(desc, want) {
			t.Errorf("description prompt missing %q:\n%s", want, desc)
		}
	}

	blog := BlogPostPrompt("steel pipe", []string{"steel pipe", "steel pipes"}, []*entities.Product{p})
	if !strings.Contains(blog, "/products/seamless-steel-pipe") || !strings.Contains(blog, "steel pipe, steel pipes") {
		t.Errorf("blog prompt missing product link or keywords:\n%s", blog)
	}

	if meta := SEOMetaPrompt(p); !strings.Contains(meta, "Focus keyword: steel pipe") {
		t.Errorf("meta prompt missing focus keyword:\n%s", meta)
	}
	if ProductDescriptionPrompt(nil, "") != "" || SEOMetaPrompt(nil) != "" {
		t.Errorf("nil product should produce empty prompt")
	}
}

func TestFocusKeywordFallback(t *testing.T) {
	p := &entities.Product{Name: "Marble Tile"}
	if got := FocusKeyword(p); got != "Marble Tile" {
		t.Errorf("expected product name fallback, got %q", got)
	}
	p.SEO = datatypes.NewJSONType(entities.ProductSEO{FocusKeyword: "marble", Keywords: []string{"tile"}})
	if got := FocusKeyword(p); got != "marble" {
		t.Errorf("expected focus keyword, got %q", got)
	}
}
