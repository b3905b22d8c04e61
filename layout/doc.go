// Package layout decides how each block of a source document is re-emitted
// in a two-column paper layout.
//
// The package is pure: it never touches a document. It classifies paragraph
// text, tracks the active column count, and reports the outcome as [Step]
// values that an emitter turns into output.
//
// # Classification
//
// A [Classifier] evaluates an ordered list of [Rule] values; the first rule
// that matches decides the [Category]:
//
//	st := &layout.State{}
//	c, ok := layout.Classify("ARTICLE MAIN TITLE", st)
//	// c.Category == layout.CategoryTitle, c.Columns == 1, st.TitleEmitted == true
//
// The rules are, in order:
//
//   - empty text is skipped
//   - "REFERENCES" or "BIBLIOGRAPHY" anywhere opens the references section
//   - inside references, anything not all-uppercase is a numbered reference
//   - the first all-uppercase multi-word paragraph is the title; later ones
//     are uppercase headings
//   - text starting with "ABSTRACT" or "KEYWORDS" is a special block
//   - list prefixes, short keyword lines, trailing colons and single
//     uppercase words are subheadings
//   - everything else is body text
//
// # Sections
//
// A [Tracker] holds the active column count. [Tracker.Ensure] reports a
// transition only when the target differs from the current count, so
// consecutive blocks with the same layout never open redundant sections.
//
// # Passes
//
// A [Pass] combines both for one ordered walk over [model.Block] values:
//
//	pass := layout.NewPass()
//	for i, b := range blocks {
//	    step, ok := pass.Next(i, b)
//	    if !ok {
//	        continue
//	    }
//	    if step.NewSection {
//	        // open a continuous section with step.Columns columns
//	    }
//	    // emit according to step.Kind and step.Classification
//	}
//
// [BuildPlan] runs a pass without emitting anything and is used for dry runs.
package layout
