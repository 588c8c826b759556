package pink

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const (
	defaultRecursionLimit = 1000
	reservedCommentChars  = "(){}[],.;+-*/%&!=<>:|\"'\\_"
)

// Config controls language surface and execution bounds. The yaml-tagged
// fields can be loaded from a file with LoadConfig; the rest are wired by
// the host.
type Config struct {
	// Keywords remaps canonical keyword names to new spellings,
	// e.g. {"continue": "again", "print": "write"}.
	Keywords map[string]string `yaml:"keywords"`
	// CommentChar starts a comment that runs to end of line. Defaults to "$".
	CommentChar string `yaml:"comment_char"`
	// RecursionLimit caps the call depth. Defaults to 1000.
	RecursionLimit int `yaml:"recursion_limit"`
	// StepQuota caps the number of evaluation steps per Run. Zero means unlimited.
	StepQuota int `yaml:"step_quota"`
	// Seed makes random deterministic when non-zero.
	Seed uint64 `yaml:"seed"`

	Stdout  io.Writer   `yaml:"-"`
	Stdin   io.Reader   `yaml:"-"`
	OnError func(error) `yaml:"-"`
	Random  *rand.Rand  `yaml:"-"`
}

// LoadConfig decodes a YAML configuration document. Unknown fields are
// rejected so typos in keyword files surface early.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("pink: decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and decodes the YAML configuration at path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("pink: open config: %w", err)
	}
	defer f.Close()
	cfg, err := LoadConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	if _, err := cfg.commentRune(); err != nil {
		return err
	}
	if _, err := NewKeywordTable(cfg.Keywords); err != nil {
		return err
	}
	if cfg.RecursionLimit < 0 {
		return fmt.Errorf("pink: recursion_limit must not be negative, got %d", cfg.RecursionLimit)
	}
	if cfg.StepQuota < 0 {
		return fmt.Errorf("pink: step_quota must not be negative, got %d", cfg.StepQuota)
	}
	return nil
}

func (cfg Config) commentRune() (rune, error) {
	if cfg.CommentChar == "" {
		return defaultCommentChar, nil
	}
	r, size := utf8.DecodeRuneInString(cfg.CommentChar)
	if size != len(cfg.CommentChar) {
		return 0, fmt.Errorf("pink: comment_char must be a single character, got %q", cfg.CommentChar)
	}
	if unicode.IsSpace(r) || isIdentifierRune(r) || strings.ContainsRune(reservedCommentChars, r) {
		return 0, fmt.Errorf("pink: comment_char %q conflicts with the language syntax", cfg.CommentChar)
	}
	return r, nil
}
