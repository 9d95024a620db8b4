package transcriber

import (
	"github.com/gomutex/godocx"
)

const (
	fontName      = "Times New Roman"
	fontSize      = 12
	timestampSize = 9
)

// writeTranscriptDocx exports the timestamped transcript as a styled
// docx document for sharing with club members.
func writeTranscriptDocx(title string, segments []Segment, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	doc.AddParagraph("").AddText(title).Font(fontName).Size(16).Color("000000").Bold(true)
	doc.AddParagraph("")

	for _, seg := range segments {
		p := doc.AddParagraph("")
		p.AddText("["+seg.Start+"] ").Font(fontName).Size(timestampSize).Color("707070").Bold(true)
		p.AddText(seg.Text).Font(fontName).Size(fontSize).Color("000000")
	}

	return doc.SaveTo(outputPath)
}
