package llm

import (
	"fmt"
	"strings"

	"github.com/presentwallah/engine/internal/models"
)

// Generation parameters per call purpose. Content and refinement calls run
// cooler than outline suggestion, which benefits from some variety.
const (
	ContentTemperature = 0.6
	ContentMaxTokens   = 1024
	OutlineTemperature = 0.7
	OutlineMaxTokens   = 512
)

// ContentPrompt builds the prompt for initial section content. Documents get
// prose paragraphs; decks get strictly formatted bullet lines.
func ContentPrompt(sectionTitle, mainTopic, documentType string) string {
	if documentType == models.DocumentTypeDocx {
		return fmt.Sprintf(`You are a senior business consultant writing a high-impact document.

Main topic: %s
Section: "%s"

Write authoritative content for this section.
- 300-500 words in 2-3 well-developed paragraphs
- Open with an insight or data point, close with actionable takeaways
- Use precise business terminology and concrete examples
- No meta-commentary, do not repeat the section title

Deliver ONLY the section content.`, mainTopic, sectionTitle)
	}
	return fmt.Sprintf(`You are a senior strategy consultant creating an executive presentation.

Presentation topic: %s
Current slide: "%s"

Create punchy, executive-level bullet points for this slide.
- Output EXACTLY 4-6 bullets, each starting with "• " (bullet symbol + space)
- 8-15 words per bullet, no paragraphs, no numbered lists, no extra text
- Lead with action verbs or specific metrics; no vague statements

Deliver ONLY the bullet points.`, mainTopic, sectionTitle)
}

// RefinePrompt builds the prompt for revising existing content according to
// a user instruction.
func RefinePrompt(currentContent, instruction, sectionTitle, documentType string) string {
	if documentType == models.DocumentTypePptx {
		return fmt.Sprintf(`You are a presentation coach refining an executive slide.

Slide: "%s"

Existing bullets:
%s

User's refinement request:
%s

Revise the bullets to address the request.
- Return EXACTLY 4-6 bullets, each starting with "• "
- 8-15 words per bullet, no paragraphs, no meta-commentary

Deliver ONLY the revised bullet points.`, sectionTitle, currentContent, instruction)
	}
	return fmt.Sprintf(`You are a business consultant refining document content for executive review.

Section: "%s"

Current content:
%s

User's refinement request:
%s

Revise the content to address the feedback while keeping the authoritative
tone, the 300-500 word length, and the paragraph structure.

Deliver ONLY the refined content.`, sectionTitle, currentContent, instruction)
}

// OutlinePrompt builds the prompt for suggesting section or slide titles.
// numItems only applies to slide decks; zero means provider default.
func OutlinePrompt(mainTopic, documentType string, numItems int) string {
	if documentType == models.DocumentTypeDocx {
		return fmt.Sprintf(`You are a senior business consultant structuring a high-impact document.

Topic: %s

Create a logical document outline with 6-8 section titles.
- Start with context, build through analysis and strategy, end with
  recommendations or next steps
- Titles must be specific; avoid generic labels like "Overview"

Provide ONLY the section titles, one per line, no numbering, no bullets.`, mainTopic)
	}
	numSlides := numItems
	if numSlides <= 0 {
		numSlides = 8
	}
	return fmt.Sprintf(`You are a strategy consultant outlining a C-suite presentation.

Topic: %s

Create exactly %d impactful slide titles that tell a compelling story, from
a hook through analysis to a call-to-action.
- Each title 3-7 words, punchy and specific
- Avoid generic labels ("Introduction", "Background")

Provide ONLY the slide titles, one per line, no numbering, no bullets.`, mainTopic, numSlides)
}

// ParseOutline splits an outline response into one title per non-empty line.
func ParseOutline(response string) []string {
	var titles []string
	for _, line := range strings.Split(response, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			titles = append(titles, line)
		}
	}
	return titles
}
