package stage

import "testing"

func TestHealthy(t *testing.T) {
	h := Healthy("analyze")
	if !h.Ready {
		t.Fatal("expected ready health")
	}
	if h.Name != "analyze" {
		t.Fatalf("unexpected name: %q", h.Name)
	}
	if h.Detail != "" {
		t.Fatalf("expected empty detail, got %q", h.Detail)
	}
}

func TestUnhealthy(t *testing.T) {
	h := Unhealthy("index", "store closed")
	if h.Ready {
		t.Fatal("expected not ready")
	}
	if h.Detail != "store closed" {
		t.Fatalf("unexpected detail: %q", h.Detail)
	}
}
