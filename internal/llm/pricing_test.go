package llm

import "testing"

func TestLookupCost_KnownModel(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	if c.InputPerMTok != 0.15 || c.OutputPerMTok != 0.6 {
		t.Fatalf("unexpected pricing: %+v", c)
	}
}

func TestLookupCost_VendorPrefixFallback(t *testing.T) {
	c := LookupCost("google/gemini-2.5-flash")
	if c == nil {
		t.Fatal("expected pricing via bare-ID fallback")
	}
	if c.InputPerMTok != 0.3 {
		t.Fatalf("unexpected input pricing: %v", c.InputPerMTok)
	}
}

func TestLookupCost_UnknownModel(t *testing.T) {
	if c := LookupCost("vendor/never-heard-of-it"); c != nil {
		t.Fatalf("expected nil for unknown model, got %+v", c)
	}
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 1, OutputPerMTok: 10}
	got := c.Cost(1_000_000, 100_000)
	if got != 2.0 {
		t.Fatalf("expected cost 2.0, got %v", got)
	}
}
