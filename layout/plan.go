package layout

import (
	"github.com/tsawler/paperlayout/model"
)

// StepKind identifies what the emitter does with a block.
type StepKind int

const (
	StepParagraph StepKind = iota
	StepImage
	StepTable
)

func (k StepKind) String() string {
	switch k {
	case StepImage:
		return "image"
	case StepTable:
		return "table"
	default:
		return "paragraph"
	}
}

// Step is the layout decision for one source block.
type Step struct {
	// Index is the block's position in the source.
	Index int

	Kind StepKind

	// Text is the normalized paragraph text. For images it is the caption.
	Text string

	// Classification is set for paragraph steps only.
	Classification Classification

	// NewSection is true when a section with Columns columns must be opened
	// before emitting the block.
	NewSection bool

	// Columns is the active column count while the block is emitted.
	Columns int

	// Table is set for table steps.
	Table *model.Table
}

// Pass walks a block stream once, classifying paragraphs and tracking
// column transitions. It is not safe for concurrent use.
type Pass struct {
	classifier *Classifier
	state      State
	tracker    Tracker
}

// NewPass creates a pass with the default classifier.
func NewPass() *Pass {
	return NewPassWithClassifier(defaultClassifier)
}

// NewPassWithClassifier creates a pass with a custom classifier.
func NewPassWithClassifier(c *Classifier) *Pass {
	if c == nil {
		c = defaultClassifier
	}
	return &Pass{classifier: c, tracker: Tracker{columns: 1}}
}

// State returns a copy of the current classification state.
func (p *Pass) State() State { return p.state }

// Columns returns the active column count.
func (p *Pass) Columns() int { return p.tracker.Current() }

// Next decides the step for block b at position i. It returns false when
// the block produces no output.
//
// Paragraphs with an embedded graphic become image steps before any text
// rule runs. Images and tables keep the current column count.
func (p *Pass) Next(i int, b model.Block) (Step, bool) {
	switch blk := b.(type) {
	case *model.Paragraph:
		text := Normalize(blk.Text)
		if blk.HasGraphic {
			return Step{Index: i, Kind: StepImage, Text: text, Columns: p.tracker.Current()}, true
		}
		c, ok := p.classifier.Classify(text, &p.state)
		if !ok {
			return Step{}, false
		}
		opened := p.tracker.Ensure(c.Columns)
		return Step{
			Index:          i,
			Kind:           StepParagraph,
			Text:           text,
			Classification: c,
			NewSection:     opened,
			Columns:        p.tracker.Current(),
		}, true
	case *model.Table:
		return Step{Index: i, Kind: StepTable, Table: blk, Columns: p.tracker.Current()}, true
	}
	return Step{}, false
}

// Plan is the outcome of a dry run.
type Plan struct {
	Steps []Step

	// Sections is the number of sections the output will have.
	Sections int

	// Skipped counts blocks that produce no output.
	Skipped int

	// Images counts image steps.
	Images int
}

// BuildPlan runs a full pass over blocks without emitting anything.
func BuildPlan(blocks []model.Block) Plan {
	return BuildPlanWithClassifier(blocks, defaultClassifier)
}

// BuildPlanWithClassifier is BuildPlan with a custom classifier.
func BuildPlanWithClassifier(blocks []model.Block, c *Classifier) Plan {
	pass := NewPassWithClassifier(c)
	plan := Plan{Sections: 1}
	for i, b := range blocks {
		step, ok := pass.Next(i, b)
		if !ok {
			plan.Skipped++
			continue
		}
		if step.NewSection {
			plan.Sections++
		}
		if step.Kind == StepImage {
			plan.Images++
		}
		plan.Steps = append(plan.Steps, step)
	}
	return plan
}
