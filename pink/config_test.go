package pink

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(`keywords:
  print: write
  continue: again
comment_char: "#"
recursion_limit: 50
step_quota: 1000
seed: 7
`))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Keywords["print"] != "write" || cfg.Keywords["continue"] != "again" {
		t.Fatalf("unexpected keywords %v", cfg.Keywords)
	}
	if cfg.CommentChar != "#" || cfg.RecursionLimit != 50 || cfg.StepQuota != 1000 || cfg.Seed != 7 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadConfigEmptyDocument(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Keywords != nil || cfg.CommentChar != "" {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestLoadConfigRejectsInvalidDocuments(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"unknown field", "keyword:\n  print: write\n", "field keyword not found"},
		{"unknown keyword", "keywords:\n  lambda: fn\n", "unknown keyword"},
		{"duplicate spelling", "keywords:\n  print: let\n", "more than once"},
		{"long comment", "comment_char: \"//\"\n", "single character"},
		{"operator comment", "comment_char: \"+\"\n", "conflicts"},
		{"negative limit", "recursion_limit: -1\n", "must not be negative"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(tc.doc))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pink.yaml")
	if err := os.WriteFile(path, []byte("comment_char: \"#\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.CommentChar != "#" {
		t.Fatalf("unexpected comment char %q", cfg.CommentChar)
	}

	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestNewInterpreterValidatesConfig(t *testing.T) {
	if _, err := NewInterpreter(Config{CommentChar: "a"}); err == nil {
		t.Fatalf("expected identifier comment char to be rejected")
	}
	if _, err := NewInterpreter(Config{Keywords: map[string]string{"if": "1f"}}); err == nil {
		t.Fatalf("expected non-identifier spelling to be rejected")
	}
}
