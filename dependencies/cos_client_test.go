package dependencies

import (
	"net/url"
	"testing"

	"go.uber.org/zap"

	"github.com/Xushengqwer/trade_site/config"
)

func TestJoinObjectURL(t *testing.T) {
	tests := []struct {
		base, key, want string
	}{
		{"https://cdn.example.com", "sitemap.xml", "https://cdn.example.com/sitemap.xml"},
		{"https://cdn.example.com/", "/rss.xml", "https://cdn.example.com/rss.xml"},
		{"https://cdn.example.com/site", "feeds/rss.xml", "https://cdn.example.com/site/feeds/rss.xml"},
	}
	for _, tt := range tests {
		base, err := url.Parse(tt.base)
		if err != nil {
			t.Fatalf("parse %s: %v", tt.base, err)
		}
		if got := joinObjectURL(base, tt.key); got != tt.want {
			t.Errorf("joinObjectURL(%s, %s) = %s, want %s", tt.base, tt.key, got, tt.want)
		}
	}
}

func TestInitCOSRejectsIncompleteConfig(t *testing.T) {
	if _, err := InitCOS(&config.COSConfig{BucketName: "b"}, zap.NewNop()); err == nil {
		t.Fatal("expected error for incomplete config")
	}
	if _, err := InitCOS(nil, zap.NewNop()); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestInitCOSUsesBaseURL(t *testing.T) {
	storage, err := InitCOS(&config.COSConfig{
		SecretID: "id", SecretKey: "key", BucketName: "site", AppID: "1250000000",
		Region: "ap-guangzhou", BaseURL: "https://static.example.com",
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("InitCOS: %v", err)
	}
	cs := storage.(*cosStorage)
	if got := cs.PublicURL("sitemap.xml"); got != "https://static.example.com/sitemap.xml" {
		t.Errorf("unexpected public url %s", got)
	}
}
