package dashboard

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"metrodesk/cmd/metrodesk/ui"
	"metrodesk/internal/format"
)

// documentsPanel lists the session's uploaded documents and embeds the
// second upload surface. The list itself lives in the shell's aggregator;
// the panel only owns its upload widget.
type documentsPanel struct {
	upload uploadWidget
}

func newDocumentsPanel(styles ui.Styles) documentsPanel {
	p := documentsPanel{
		upload: newUploadWidget(styles, "Paths to PDF files, space separated"),
	}
	p.upload.input.Focus()
	return p
}

func (m Model) viewDocuments() string {
	docs := m.docs.All()

	var sections []string
	sections = append(sections, m.styles.Title.Render("Documents"))
	sections = append(sections, m.styles.Subtitle.Render(
		fmt.Sprintf("%d %s uploaded this session", len(docs), format.Plural(len(docs), "document"))))
	sections = append(sections, "")

	uploadBox := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Bold.Render("Upload PDF documents"),
		m.documents.upload.input.View(),
		m.styles.Muted.Render("enter upload typed paths  •  ctrl+b browse files"),
	)
	if m.documents.upload.busy {
		uploadBox = lipgloss.JoinVertical(lipgloss.Left, uploadBox,
			m.spinner.View()+m.styles.Muted.Render(" Processing documents..."))
	}
	sections = append(sections, m.styles.Card.Render(uploadBox), "")

	if len(docs) == 0 {
		sections = append(sections,
			m.styles.Muted.Render("No documents uploaded yet. Add PDF files to see them here."))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	for _, d := range docs {
		card := lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Bold.Render(d.Name)+" "+m.styles.Badge.Render(d.Type),
			m.styles.Body.Render(d.Summary),
			m.styles.Muted.Render(format.FileSize(d.Size)+"  •  "+format.DateTime(d.UploadDate)),
		)
		sections = append(sections, m.styles.Card.Render(card))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
