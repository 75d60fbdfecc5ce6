package integrations

import (
	"context"
	"testing"

	"github.com/matzehuels/wingetreport/pkg/record"
)

type suffixResolver struct {
	name   string
	prefix string
	adopt  bool
}

func (s suffixResolver) Name() string { return s.name }

func (s suffixResolver) Applies(r record.PackageRecord) bool {
	return len(r.ID) >= len(s.prefix) && r.ID[:len(s.prefix)] == s.prefix
}

func (s suffixResolver) Enrich(_ context.Context, r record.PackageRecord) (record.PackageRecord, bool) {
	if s.adopt {
		r.DownloadURL += "/" + s.name
	}
	return r, s.adopt
}

func TestChain(t *testing.T) {
	chain := Chain{
		suffixResolver{name: "a", prefix: "Vendor.", adopt: true},
		suffixResolver{name: "b", prefix: "Other.", adopt: true},
		suffixResolver{name: "c", prefix: "Vendor.App", adopt: true},
	}

	r := record.New("Vendor.App")
	r.DownloadURL = "https://example.com"
	got, adopted := chain.Enrich(context.Background(), r)
	if got.DownloadURL != "https://example.com/a/c" {
		t.Errorf("DownloadURL = %q, want https://example.com/a/c", got.DownloadURL)
	}
	if !adopted {
		t.Error("adopted = false, want true")
	}
}

func TestChain_AdoptedByAnyResolver(t *testing.T) {
	tests := []struct {
		name  string
		chain Chain
		want  bool
	}{
		{"none apply", Chain{suffixResolver{name: "a", prefix: "Other.", adopt: true}}, false},
		{"applies without adopting", Chain{suffixResolver{name: "a", prefix: "Vendor."}}, false},
		{"one of two adopts", Chain{
			suffixResolver{name: "a", prefix: "Vendor.", adopt: true},
			suffixResolver{name: "b", prefix: "Vendor."},
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := tt.chain.Enrich(context.Background(), record.New("Vendor.App"))
			if got != tt.want {
				t.Errorf("adopted = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChain_Empty(t *testing.T) {
	r := record.New("x")
	got, adopted := Chain(nil).Enrich(context.Background(), r)
	if got != r || adopted {
		t.Error("empty chain should return record unchanged and not adopted")
	}
}
