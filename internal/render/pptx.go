package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/unidoc/unioffice"
	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/common"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/presentation"
	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/pml"

	"github.com/presentwallah/engine/internal/models"
	"github.com/presentwallah/engine/pkg/logger"
	"go.uber.org/zap"
)

// ImageSource supplies slide imagery. Both operations fail soft; a miss
// degrades the slide to the text-only layout.
type ImageSource interface {
	Search(ctx context.Context, query, orientation string) (string, bool)
	Download(ctx context.Context, url string) ([]byte, bool)
}

// Fixed canvas and region geometry. Every deck uses the same 10x7.5in
// canvas regardless of content volume; there is no layout solver.
const (
	slideWidth  = 10 * measurement.Inch
	slideHeight = 7.5 * measurement.Inch

	// title slide
	bandTop        = 5 * measurement.Inch
	bandHeight     = 2.5 * measurement.Inch
	titleBoxLeft   = 0.8 * measurement.Inch
	titleBoxTop    = 2.5 * measurement.Inch
	titleBoxWidth  = 8.4 * measurement.Inch
	titleBoxHeight = 2 * measurement.Inch
	subtitleLeft   = 1 * measurement.Inch
	subtitleTop    = 5.5 * measurement.Inch
	subtitleWidth  = 8 * measurement.Inch
	subtitleHeight = 1 * measurement.Inch

	// content slides
	headerHeight    = 1.2 * measurement.Inch
	headerTextLeft  = 0.6 * measurement.Inch
	headerTextTop   = 0.25 * measurement.Inch
	headerTextWidth = 8.8 * measurement.Inch
	headerTextH     = 0.7 * measurement.Inch

	imageLeft   = 0.5 * measurement.Inch
	imageTop    = 1.7 * measurement.Inch
	imageWidth  = 4.2 * measurement.Inch
	imageHeight = 4.8 * measurement.Inch

	contentTop    = 1.8 * measurement.Inch
	contentHeight = 4.8 * measurement.Inch
	// text sits right of the image when one was placed, otherwise spans
	// the wide centered region
	narrowTextLeft  = 5.2 * measurement.Inch
	narrowTextWidth = 4.3 * measurement.Inch
	wideTextLeft    = 1 * measurement.Inch
	wideTextWidth   = 8 * measurement.Inch
)

const (
	slideFont        = "Calibri"
	titleFontSize    = 60 * measurement.Point
	subtitleFontSize = 28 * measurement.Point
	headerFontSize   = 36 * measurement.Point

	pptxPlaceholder = "Content not generated yet"
)

// Fixed paragraph rhythm for content text. Line spacing is in thousandths
// of a percent, the gaps in hundredths of a point.
const (
	bodyLineSpacingPct = 130000 // 1.3 lines
	bodySpaceBeforePts = 1400   // 14pt
	bodySpaceAfterPts  = 800    // 8pt
)

var placeholderColor = color.RGB(150, 150, 150)

// RenderPptx builds the slide deck. The first section becomes the title
// slide; the rest become content slides. A nil ImageSource or
// includeImages=false yields a text-only deck.
func RenderPptx(ctx context.Context, project *models.Project, sections []models.Section, imgSrc ImageSource, includeImages bool) ([]byte, error) {
	ppt := presentation.New()
	setSlideSize(ppt)

	palette := ResolveTemplate(project.Template)
	fontSize := measurement.Distance(project.FontSize) * measurement.Point
	if project.FontSize <= 0 {
		fontSize = 20 * measurement.Point
	}

	for idx, section := range SortSections(sections) {
		if idx == 0 {
			addTitleSlide(ppt, &section, project, palette)
			continue
		}
		addContentSlide(ctx, ppt, &section, palette, fontSize, imgSrc, includeImages)
	}

	var buf bytes.Buffer
	if err := ppt.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setSlideSize(ppt *presentation.Presentation) {
	if ppt.X().SldSz == nil {
		ppt.X().SldSz = pml.NewCT_SlideSize()
	}
	ppt.X().SldSz.CxAttr = int32(slideWidth / measurement.EMU)
	ppt.X().SldSz.CyAttr = int32(slideHeight / measurement.EMU)
}

// addTitleSlide simulates a gradient with two stacked flat rectangles, then
// centers the deck title and topic subtitle over them.
func addTitleSlide(ppt *presentation.Presentation, section *models.Section, project *models.Project, palette Palette) {
	slide := ppt.AddSlide()

	addRect(slide, 0, 0, slideWidth, slideHeight, palette.Primary)
	addRect(slide, 0, bandTop, slideWidth, bandHeight, palette.Secondary)

	title := slide.AddTextBox()
	title.Properties().SetPosition(titleBoxLeft, titleBoxTop)
	title.Properties().SetSize(titleBoxWidth, titleBoxHeight)
	para := title.AddParagraph()
	para.Properties().SetAlign(dml.ST_TextAlignTypeCtr)
	run := para.AddRun()
	run.SetText(section.Title)
	run.Properties().SetFont(slideFont)
	run.Properties().SetSize(titleFontSize)
	run.Properties().SetBold(true)
	run.Properties().SetSolidFill(color.White)

	subtitle := slide.AddTextBox()
	subtitle.Properties().SetPosition(subtitleLeft, subtitleTop)
	subtitle.Properties().SetSize(subtitleWidth, subtitleHeight)
	para = subtitle.AddParagraph()
	para.Properties().SetAlign(dml.ST_TextAlignTypeCtr)
	run = para.AddRun()
	run.SetText(project.MainTopic)
	run.Properties().SetFont(slideFont)
	run.Properties().SetSize(subtitleFontSize)
	run.Properties().SetSolidFill(palette.Accent)
}

func addContentSlide(ctx context.Context, ppt *presentation.Presentation, section *models.Section, palette Palette, fontSize measurement.Distance, imgSrc ImageSource, includeImages bool) {
	slide := ppt.AddSlide()

	addRect(slide, 0, 0, slideWidth, headerHeight, palette.Primary)

	header := slide.AddTextBox()
	header.Properties().SetPosition(headerTextLeft, headerTextTop)
	header.Properties().SetSize(headerTextWidth, headerTextH)
	para := header.AddParagraph()
	run := para.AddRun()
	run.SetText(section.Title)
	run.Properties().SetFont(slideFont)
	run.Properties().SetSize(headerFontSize)
	run.Properties().SetBold(true)
	run.Properties().SetSolidFill(color.White)

	imagePlaced := false
	if includeImages && imgSrc != nil {
		imagePlaced = placeImage(ctx, ppt, slide, section.Title, imgSrc)
	}

	textLeft, textWidth := measurement.Distance(wideTextLeft), measurement.Distance(wideTextWidth)
	if imagePlaced {
		textLeft, textWidth = narrowTextLeft, narrowTextWidth
	}

	box := slide.AddTextBox()
	box.Properties().SetPosition(textLeft, contentTop)
	box.Properties().SetSize(textWidth, contentHeight)

	lines := BulletLines(section.Content)
	if len(lines) == 0 {
		para = box.AddParagraph()
		setBodySpacing(para.Properties().X())
		run = para.AddRun()
		run.SetText(pptxPlaceholder)
		run.Properties().SetFont(slideFont)
		run.Properties().SetSize(20 * measurement.Point)
		run.Properties().SetSolidFill(placeholderColor)
		run.X().R.RPr.IAttr = unioffice.Bool(true)
		return
	}

	textColor := color.RGB(40, 40, 40)
	for _, line := range lines {
		para = box.AddParagraph()
		setBodySpacing(para.Properties().X())
		run = para.AddRun()
		run.SetText(line)
		run.Properties().SetFont(slideFont)
		run.Properties().SetSize(fontSize)
		run.Properties().SetSolidFill(textColor)
	}
}

// setBodySpacing applies the fixed rhythm to one content paragraph. There
// is no autofit; text that outgrows the box simply clips.
func setBodySpacing(pp *dml.CT_TextParagraphProperties) {
	pp.LnSpc = dml.NewCT_TextSpacing()
	pp.LnSpc.SpcPct = dml.NewCT_TextSpacingPercent()
	pp.LnSpc.SpcPct.ValAttr.ST_TextSpacingPercent = unioffice.Int32(bodyLineSpacingPct)

	pp.SpcBef = dml.NewCT_TextSpacing()
	pp.SpcBef.SpcPts = dml.NewCT_TextSpacingPoint()
	pp.SpcBef.SpcPts.ValAttr = bodySpaceBeforePts

	pp.SpcAft = dml.NewCT_TextSpacing()
	pp.SpcAft.SpcPts = dml.NewCT_TextSpacingPoint()
	pp.SpcAft.SpcPts.ValAttr = bodySpaceAfterPts
}

// placeImage tries the query variants in fixed priority order and places the
// first photo that both resolves and downloads. Every failure is a soft
// miss; the caller falls back to the wide text layout.
func placeImage(ctx context.Context, ppt *presentation.Presentation, slide presentation.Slide, title string, imgSrc ImageSource) bool {
	queries := []string{
		title,
		fmt.Sprintf("%s business", title),
		fmt.Sprintf("%s professional", title),
	}

	for _, query := range queries {
		url, ok := imgSrc.Search(ctx, query, "landscape")
		if !ok {
			continue
		}
		data, ok := imgSrc.Download(ctx, url)
		if !ok {
			continue
		}

		img, err := common.ImageFromBytes(data)
		if err != nil {
			logger.L().Debug("slide image decode failed", zap.String("query", query), zap.Error(err))
			continue
		}
		iref, err := ppt.AddImage(img)
		if err != nil {
			logger.L().Debug("slide image embed failed", zap.String("query", query), zap.Error(err))
			continue
		}

		pic := slide.AddImage(iref)
		pic.Properties().SetPosition(imageLeft, imageTop)
		pic.Properties().SetSize(imageWidth, imageHeight)
		return true
	}
	return false
}

// addRect draws a flat-colored rectangle via a geometry-only text box.
func addRect(slide presentation.Slide, x, y, w, h measurement.Distance, fill color.Color) {
	rect := slide.AddTextBox()
	rect.Properties().SetPosition(x, y)
	rect.Properties().SetSize(w, h)
	rect.Properties().SetGeometry(dml.ST_ShapeTypeRect)
	rect.Properties().SetSolidFill(fill)
}
