package layout

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/paperlayout/model"
)

// Category is the role assigned to a paragraph.
type Category int

const (
	CategoryBody Category = iota
	CategoryTitle
	CategoryReferencesHeading
	CategorySpecialBlock
	CategorySubheading
	CategoryUppercaseHeading
	CategoryReference
)

// String returns a string representation of the category
func (c Category) String() string {
	switch c {
	case CategoryTitle:
		return "title"
	case CategoryReferencesHeading:
		return "references-heading"
	case CategorySpecialBlock:
		return "special-block"
	case CategorySubheading:
		return "subheading"
	case CategoryUppercaseHeading:
		return "uppercase-heading"
	case CategoryReference:
		return "reference"
	default:
		return "body"
	}
}

// IsHeading reports whether the category is emitted as a heading, which is
// followed by an empty spacer paragraph.
func (c Category) IsHeading() bool {
	switch c {
	case CategoryTitle, CategoryReferencesHeading, CategorySpecialBlock,
		CategorySubheading, CategoryUppercaseHeading:
		return true
	}
	return false
}

// Font sizes in half-points.
const (
	TitleSize             = 25
	ReferencesHeadingSize = 23
	HeadingSize           = 20
	CaptionSize           = 17
)

// BodySpaceAfter is the spacing after body paragraphs, in points.
const BodySpaceAfter = 7.2

// Classification describes how one paragraph is re-emitted.
type Classification struct {
	Category Category

	// Columns is the column count the paragraph requires. Zero keeps the
	// current count.
	Columns int

	Bold      bool
	Alignment model.Alignment

	// Size is the run size in half-points. Zero inherits.
	Size int

	// SpaceAfter is the paragraph spacing after, in points. Zero inherits.
	SpaceAfter float64

	// Numbered marks an item of the numbered reference list.
	Numbered bool

	// Rule is the name of the rule that produced the classification.
	Rule string
}

// State is the pass-wide classification state. Both flags only ever turn on.
type State struct {
	// InReferences is set once a references heading has been seen.
	InReferences bool

	// TitleEmitted is set by the first title.
	TitleEmitted bool
}

// Rule is one step of the classification cascade. Match must not modify the
// state; Apply may. A rule with a nil Apply skips the paragraph.
type Rule struct {
	Name  string
	Match func(text string, st *State) bool
	Apply func(text string, st *State) Classification
}

// Config holds the classifier vocabulary.
type Config struct {
	// ReferenceMarkers open the references section when found anywhere in
	// the text, case-insensitively.
	ReferenceMarkers []string

	// SpecialPrefixes mark abstract and keyword blocks, case-insensitively.
	SpecialPrefixes []string

	// SectionKeywords make a short paragraph a subheading when found
	// anywhere in its upper-cased text.
	SectionKeywords []string

	// MaxKeywordWords is the longest paragraph, in words, that a section
	// keyword can promote to a subheading.
	MaxKeywordWords int

	// ListPrefix matches numbered and lettered heading prefixes.
	ListPrefix *regexp.Regexp
}

// DefaultConfig returns the standard academic-paper vocabulary.
func DefaultConfig() Config {
	return Config{
		ReferenceMarkers: []string{"REFERENCES", "BIBLIOGRAPHY"},
		SpecialPrefixes:  []string{"ABSTRACT", "KEYWORDS"},
		SectionKeywords: []string{
			"INTRODUCTION", "CONCLUSION", "CHAPTER", "SECTION", "METHODOLOGY",
			"RESULT", "DISCUSSION", "ABSTRACT", "KEYWORDS",
		},
		MaxKeywordWords: 8,
		ListPrefix:      regexp.MustCompile(`^(\p{Nd}+|[A-ZIVX]+)[.)][\s\v\p{Z}\x{85}]+`),
	}
}

// Classifier evaluates an ordered rule list.
type Classifier struct {
	config Config
	rules  []Rule
}

// NewClassifier creates a classifier with the default configuration.
func NewClassifier() *Classifier {
	return NewClassifierWithConfig(DefaultConfig())
}

// NewClassifierWithConfig creates a classifier with a custom configuration.
func NewClassifierWithConfig(config Config) *Classifier {
	if config.ListPrefix == nil {
		config.ListPrefix = DefaultConfig().ListPrefix
	}
	c := &Classifier{config: config}
	c.rules = c.buildRules()
	return c
}

// Rules returns the classifier's rules in evaluation order.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Classify normalizes text and returns the classification of the first
// matching rule. It returns false when the paragraph must be skipped.
// A nil st is treated as a fresh state.
func (c *Classifier) Classify(text string, st *State) (Classification, bool) {
	if st == nil {
		st = &State{}
	}
	text = Normalize(text)
	for _, r := range c.rules {
		if !r.Match(text, st) {
			continue
		}
		if r.Apply == nil {
			return Classification{}, false
		}
		cl := r.Apply(text, st)
		cl.Rule = r.Name
		return cl, true
	}
	return Classification{}, false
}

var defaultClassifier = NewClassifier()

// Classify classifies text with the default classifier.
func Classify(text string, st *State) (Classification, bool) {
	return defaultClassifier.Classify(text, st)
}

// Rules returns the default rule list.
func Rules() []Rule {
	return defaultClassifier.Rules()
}

func (c *Classifier) buildRules() []Rule {
	cfg := c.config
	return []Rule{
		{
			Name:  "empty",
			Match: func(text string, _ *State) bool { return text == "" },
		},
		{
			Name: "references-heading",
			Match: func(text string, _ *State) bool {
				return containsAny(strings.ToUpper(text), cfg.ReferenceMarkers)
			},
			Apply: func(_ string, st *State) Classification {
				st.InReferences = true
				return Classification{
					Category:  CategoryReferencesHeading,
					Bold:      true,
					Alignment: model.AlignCenter,
					Size:      ReferencesHeadingSize,
				}
			},
		},
		{
			Name: "reference",
			Match: func(text string, st *State) bool {
				return st.InReferences && !IsUpper(text)
			},
			Apply: func(string, *State) Classification {
				return Classification{Category: CategoryReference, Numbered: true}
			},
		},
		{
			Name: "uppercase-heading",
			Match: func(text string, _ *State) bool {
				return IsUpper(text) && wordCount(text) > 1
			},
			Apply: func(_ string, st *State) Classification {
				if !st.TitleEmitted {
					st.TitleEmitted = true
					return Classification{
						Category:  CategoryTitle,
						Columns:   1,
						Bold:      true,
						Alignment: model.AlignCenter,
						Size:      TitleSize,
					}
				}
				return heading(CategoryUppercaseHeading, model.AlignLeft)
			},
		},
		{
			Name: "special-block",
			Match: func(text string, _ *State) bool {
				return hasPrefixAny(strings.ToUpper(text), cfg.SpecialPrefixes)
			},
			Apply: func(string, *State) Classification {
				return heading(CategorySpecialBlock, model.AlignJustify)
			},
		},
		{
			Name: "subheading",
			Match: func(text string, _ *State) bool {
				words := wordCount(text)
				switch {
				case cfg.ListPrefix.MatchString(text):
					return true
				case words <= cfg.MaxKeywordWords && containsAny(strings.ToUpper(text), cfg.SectionKeywords):
					return true
				case strings.HasSuffix(text, ":"):
					return true
				}
				return IsUpper(text) && words <= 1
			},
			Apply: func(string, *State) Classification {
				return heading(CategorySubheading, model.AlignLeft)
			},
		},
		{
			Name:  "body",
			Match: func(string, *State) bool { return true },
			Apply: func(string, *State) Classification {
				return Classification{
					Category:   CategoryBody,
					Columns:    2,
					Alignment:  model.AlignJustify,
					SpaceAfter: BodySpaceAfter,
				}
			},
		},
	}
}

func heading(cat Category, align model.Alignment) Classification {
	return Classification{
		Category:  cat,
		Columns:   2,
		Bold:      true,
		Alignment: align,
		Size:      HeadingSize,
	}
}

// Normalize trims surrounding whitespace and converts text to NFC, so that
// decomposed accents compare equal to their composed forms.
func Normalize(text string) string {
	return norm.NFC.String(strings.TrimSpace(text))
}

// IsUpper reports whether text has at least one cased letter and no
// lower-case or title-case letters.
func IsUpper(text string) bool {
	cased := false
	for _, r := range text {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, strings.ToUpper(sub)) {
			return true
		}
	}
	return false
}

func hasPrefixAny(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, strings.ToUpper(p)) {
			return true
		}
	}
	return false
}
