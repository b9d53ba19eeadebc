package seo

import (
	"encoding/json"
	"testing"

	"github.com/Xushengqwer/trade_site/config"
	"github.com/Xushengqwer/trade_site/models/entities"
	"gorm.io/datatypes"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in           string
		wantAmount   string
		wantCurrency string
		wantOK       bool
	}{
		{"$1,250 / ton", "1250", "USD", true},
		{"1.250,50 TL", "1250.5", "TRY", true},
		{"€12.5 per kg", "12.5", "EUR", true},
		{"USD 3,400.75", "3400.75", "USD", true},
		{"1.250.000", "1250000", "USD", true},
		{"12,5", "12.5", "USD", true},
		{"Fiyat için iletişime geçin", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			amount, currency, ok := ParsePrice(tt.in, "USD")
			if ok != tt.wantOK {
				t.Fatalf("ParsePrice(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if amount.String() != tt.wantAmount {
				t.Errorf("amount = %s, want %s", amount.String(), tt.wantAmount)
			}
			if currency != tt.wantCurrency {
				t.Errorf("currency = %s, want %s", currency, tt.wantCurrency)
			}
		})
	}
}

func TestBuildURL(t *testing.T) {
	if got := BuildURL("https://example.com/", "products", "çelik boru"); got != "https://example.com/products/%C3%A7elik%20boru" {
		t.Errorf("unexpected url %s", got)
	}
	if got := BuildURL(""); got != "/" {
		t.Errorf("expected / for empty base, got %s", got)
	}
}

func TestProductJSONLD(t *testing.T) {
	site := config.SiteInfo{BaseURL: "https://example.com", Name: "Example Export", Currency: "USD"}
	p := &entities.Product{
		Name:         "Seamless Steel Pipe",
		Slug:         "seamless-steel-pipe",
		Manufacturer: "Acme Steel",
		Price:        "$1,250 / ton",
		Description:  "<p>High quality pipe</p>",
		Images:       datatypes.JSONSlice[entities.ProductImage]{{URL: "https://cdn.example.com/a.jpg", Alt: "pipe"}},
		SEO:          datatypes.NewJSONType(entities.ProductSEO{MetaDescription: "Pipes for export", Keywords: []string{"steel", "pipe"}}),
	}

	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(ProductJSONLD(p, site)), &doc); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if doc["@type"] != "Product" || doc["name"] != "Seamless Steel Pipe" {
		t.Errorf("unexpected header fields: %v", doc)
	}
	if doc["description"] != "Pipes for export" {
		t.Errorf("expected meta description to be used, got %v", doc["description"])
	}
	if doc["url"] != "https://example.com/products/seamless-steel-pipe" {
		t.Errorf("unexpected url %v", doc["url"])
	}
	offer, ok := doc["offers"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected offers, got %v", doc["offers"])
	}
	if offer["price"] != "1250.00" || offer["priceCurrency"] != "USD" {
		t.Errorf("unexpected offer %v", offer)
	}
	brand, _ := doc["brand"].(map[string]interface{})
	if brand["name"] != "Acme Steel" {
		t.Errorf("unexpected brand %v", doc["brand"])
	}
}

func TestProductJSONLDWithoutPrice(t *testing.T) {
	p := &entities.Product{Name: "Marble", Slug: "marble", Price: "Fiyat için iletişime geçin", Description: "Natural marble"}
	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(ProductJSONLD(p, config.SiteInfo{Currency: "USD"})), &doc); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := doc["offers"]; ok {
		t.Errorf("expected no offers for non-numeric price")
	}
	if doc["description"] != "Natural marble" {
		t.Errorf("expected description fallback, got %v", doc["description"])
	}
}

func TestBlogPostingJSONLD(t *testing.T) {
	post := &entities.BlogPost{Title: "Export Guide", Slug: "export-guide", Excerpt: "How to export", AuthorName: "Ayşe", Tags: datatypes.JSONSlice[string]{"export", "guide"}}
	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(BlogPostingJSONLD(post, config.SiteInfo{BaseURL: "https://example.com", Name: "Example"})), &doc); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if doc["headline"] != "Export Guide" || doc["keywords"] != "export, guide" {
		t.Errorf("unexpected doc %v", doc)
	}
	if _, ok := doc["datePublished"]; ok {
		t.Errorf("unpublished post should not carry datePublished")
	}
}
