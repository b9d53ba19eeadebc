package seo

import (
	"reflect"
	"testing"
)

const threshold = 0.7

func TestSimilarity(t *testing.T) {
	if s := Similarity("Steel Pipe", "steel pipe"); s != 1 {
		t.Errorf("expected identical topics (ignoring case) to score 1, got %v", s)
	}
	if s := Similarity("steel pipes", "steel pipe"); s <= threshold {
		t.Errorf("expected plural variant to exceed threshold, got %v", s)
	}
	if s := Similarity("steel pipe", "olive oil export"); s > 0.3 {
		t.Errorf("expected unrelated topics to be dissimilar, got %v", s)
	}
}

func TestClusterTopicsGroupsSimilar(t *testing.T) {
	topics := []string{
		"steel pipe",
		"olive oil export",
		"steel pipes",
		"olive oil exports",
		"marble tiles",
	}
	got := ClusterTopics(topics, threshold)
	want := [][]string{
		{"steel pipe", "steel pipes"},
		{"olive oil export", "olive oil exports"},
		{"marble tiles"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ClusterTopics = %v, want %v", got, want)
	}
}

func TestClusterTopicsTransitiveMerge(t *testing.T) {
	// "steel piping" 与 "stee pipe" 本身不够相似，但都与 "steel pipe" 相似，因此合并为一组
	if s := Similarity("steel piping", "stee pipe"); s > threshold {
		t.Fatalf("test precondition failed: similarity %v", s)
	}
	topics := []string{"steel piping", "olive oil", "stee pipe", "steel pipe"}
	got := ClusterTopics(topics, threshold)
	want := [][]string{
		{"steel piping", "stee pipe", "steel pipe"},
		{"olive oil"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ClusterTopics = %v, want %v", got, want)
	}
}

func TestClusterTopicsSkipsBlankAndDuplicates(t *testing.T) {
	got := ClusterTopics([]string{"", "  ", "Granite", "granite", " granite "}, threshold)
	want := [][]string{{"Granite"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ClusterTopics = %v, want %v", got, want)
	}
	if got := ClusterTopics(nil, threshold); len(got) != 0 {
		t.Fatalf("expected no clusters for nil input, got %v", got)
	}
}

func TestClusterTopicsIdempotent(t *testing.T) {
	topics := []string{
		"steel pipe", "copper wire", "steel pipes", "copper wires",
		"seamless steel pipe", "hazelnut", "hazelnuts", "dried apricot",
	}
	first := ClusterTopics(topics, threshold)

	again := MergeGroups(first, threshold)
	if !reflect.DeepEqual(first, again) {
		t.Fatalf("merging clustered groups changed them:\nfirst: %v\nagain: %v", first, again)
	}

	var flat []string
	for _, g := range first {
		flat = append(flat, g...)
	}
	if reclustered := ClusterTopics(flat, threshold); !reflect.DeepEqual(first, reclustered) {
		t.Fatalf("re-clustering flattened output changed it:\nfirst: %v\nagain: %v", first, reclustered)
	}
}
