package nlp

import (
	"sync"
	"testing"
)

func TestResolverCachesEngines(t *testing.T) {
	r := NewResolver()

	first := r.Engine("en")
	second := r.Engine("en")
	if first != second {
		t.Error("expected the same cached engine instance for repeated lookups")
	}
}

func TestResolverNormalizesCodes(t *testing.T) {
	r := NewResolver()

	if got := r.Engine("jpn").Code(); got != "ja" {
		t.Errorf("Engine(\"jpn\").Code() = %q, want %q", got, "ja")
	}
	if got := r.Engine("en-US").Code(); got != "en" {
		t.Errorf("Engine(\"en-US\").Code() = %q, want %q", got, "en")
	}
}

func TestResolverFallsBackToDefault(t *testing.T) {
	r := NewResolver()

	tests := []string{"fr", "zz", "", "not-a-language-code"}
	for _, code := range tests {
		engine := r.Engine(code)
		if engine.Code() != DefaultLanguage {
			t.Errorf("Engine(%q).Code() = %q, want default %q", code, engine.Code(), DefaultLanguage)
		}
	}
}

func TestResolverBoundedToSupportedSet(t *testing.T) {
	r := NewResolver()

	for _, code := range []string{"fr", "de", "ko", "ru", "zz"} {
		r.Engine(code)
	}
	r.Engine("en")
	r.Engine("es")
	r.Engine("ja")

	r.mu.RLock()
	size := len(r.engines)
	r.mu.RUnlock()

	if size > len(Supported()) {
		t.Errorf("cache holds %d engines, want at most %d", size, len(Supported()))
	}
}

func TestResolverConcurrentAccess(t *testing.T) {
	r := NewResolver()
	codes := []string{"en", "es", "ja", "fr", "jpn"}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			engine := r.Engine(codes[n%len(codes)])
			if engine == nil {
				t.Error("Engine returned nil")
			}
		}(i)
	}
	wg.Wait()
}

func TestNewEngineUnsupported(t *testing.T) {
	if _, err := NewEngine("ko"); err == nil {
		t.Error("expected error for unsupported language")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"en", "en"},
		{"EN", "en"},
		{"en-US", "en"},
		{"jpn", "ja"},
		{"spa", "es"},
		{"ja-JP", "ja"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.expected {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestProfileFor(t *testing.T) {
	if p := ProfileFor("ja"); p.HasCase || p.CountWords {
		t.Errorf("japanese profile should be caseless and character-counted: %+v", p)
	}
	if p := ProfileFor("en"); !p.HasCase || !p.CountWords {
		t.Errorf("english profile should be cased and word-counted: %+v", p)
	}
	// Unsupported codes resolve to the default profile
	if p := ProfileFor("ko"); p.Code != DefaultLanguage {
		t.Errorf("ProfileFor(\"ko\").Code = %q, want %q", p.Code, DefaultLanguage)
	}
}
