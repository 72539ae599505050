package render

import (
	"bytes"

	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/schema/soo/wml"

	"github.com/presentwallah/engine/internal/models"
)

// Placeholder emitted for sections whose content was never generated.
const docxPlaceholder = "[Content not generated yet]"

// RenderDocx builds the Word document: centered title, topic line, then one
// heading + paragraph per section in ascending order-index order. The output
// is deterministic for identical inputs; the only failure mode is the
// serialization call itself, which is propagated.
func RenderDocx(project *models.Project, sections []models.Section) ([]byte, error) {
	doc := document.New()

	title := doc.AddParagraph()
	title.SetStyle("Title")
	title.Properties().SetAlignment(wml.ST_JcCenter)
	title.AddRun().AddText(project.Title)

	topic := doc.AddParagraph()
	topic.AddRun().AddText("Topic: " + project.MainTopic)
	doc.AddParagraph()

	for _, section := range SortSections(sections) {
		heading := doc.AddParagraph()
		heading.SetStyle("Heading1")
		heading.AddRun().AddText(section.Title)

		body := doc.AddParagraph()
		if section.Content != "" {
			body.AddRun().AddText(section.Content)
		} else {
			body.AddRun().AddText(docxPlaceholder)
		}

		// spacer between sections
		doc.AddParagraph()
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
