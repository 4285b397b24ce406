package publisher

import "testing"

func TestTargets_DefaultOnly(t *testing.T) {
	got := targets(testConfig("/workspace"))

	if len(got) != 1 {
		t.Fatalf("expected 1 target, got %d", len(got))
	}
	if got[0].path != "/workspace/public/index.json" {
		t.Errorf("expected path '/workspace/public/index.json', got %q", got[0].path)
	}
	if got[0].indexName != "my_index" {
		t.Errorf("expected index 'my_index', got %q", got[0].indexName)
	}
}

func TestTargets_Languages(t *testing.T) {
	got := targets(testConfig("/workspace", "en", "fr", "es"))

	want := []uploadTarget{
		{path: "/workspace/public/index.json", indexName: "my_index"},
		{path: "/workspace/public/en/index.json", indexName: "my_index_en"},
		{path: "/workspace/public/fr/index.json", indexName: "my_index_fr"},
		{path: "/workspace/public/es/index.json", indexName: "my_index_es"},
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d targets, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("target %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestTargets_Separator(t *testing.T) {
	cfg := testConfig("/workspace", "es")
	cfg.Separator = "-"

	got := targets(cfg)
	if got[1].indexName != "my_index-es" {
		t.Errorf("expected index 'my_index-es', got %q", got[1].indexName)
	}
}

func TestTargets_UpperCaseLanguage(t *testing.T) {
	got := targets(testConfig("/workspace", "FR"))

	if got[1].path != "/workspace/public/fr/index.json" {
		t.Errorf("expected lower-cased path segment, got %q", got[1].path)
	}
	if got[1].indexName != "my_index_FR" {
		t.Errorf("expected verbatim index suffix, got %q", got[1].indexName)
	}
}
