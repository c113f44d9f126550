// Package export renders generated study sets as a plain-text/markdown study
// sheet: numbered assignment headings, A-D labeled options with the correct
// one marked, and the explanation appended to each question.
package export

import (
	"fmt"
	"strings"

	"quiz-forge/internal/domain"
)

// DefaultTitle is used when the caller supplies no title.
const DefaultTitle = "Generated Assignments and Quiz"

const correctMarker = "✅"

// StudySheet renders the study set under the given title.
func StudySheet(title string, set *domain.StudySet) string {
	if title == "" {
		title = DefaultTitle
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)

	b.WriteString("## Assignment Questions\n\n")
	for i, assignment := range set.Assignments {
		fmt.Fprintf(&b, "**Assignment %d:**\n%s\n\n", i+1, assignment)
	}

	b.WriteString("## Quiz Questions\n\n")
	for i, q := range set.Questions {
		fmt.Fprintf(&b, "**Question %d:** %s\n", i+1, q.Text)
		for j, option := range q.Options {
			marker := "  "
			if j == q.CorrectIndex {
				marker = correctMarker
			}
			fmt.Fprintf(&b, "%s %s. %s\n", marker, optionLabel(j), option)
		}
		fmt.Fprintf(&b, "*Explanation: %s*\n\n", q.Explanation)
	}

	return b.String()
}

// optionLabel converts an option index to its letter label (0 -> A).
func optionLabel(i int) string {
	return string(rune('A' + i))
}
