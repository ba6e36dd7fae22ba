package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ExportNote 渲染 PDF 所需的笔记快照
type ExportNote struct {
	ID        int64
	Title     string
	Category  string
	Tags      []string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
	Content   string
}

// Render 生成单条笔记的 PDF
func Render(note *ExportNote) ([]byte, error) {
	return RenderAll(note.Title, []*ExportNote{note})
}

// RenderAll 生成多条笔记的 PDF，每条一节从新页开始，页脚带页码
func RenderAll(title string, notes []*ExportNote) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle(title, true)
	doc.AliasNbPages("")
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Helvetica", "I", 8)
		doc.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", doc.PageNo()), "", 0, "C", false, 0, "")
	})

	for _, note := range notes {
		doc.AddPage()
		writeSection(doc, note)
	}
	if len(notes) == 0 {
		doc.AddPage()
		doc.SetFont("Helvetica", "I", 11)
		doc.MultiCell(0, 6, "No notes to export.", "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeSection 写一节：标题、编号、元数据表、正文
func writeSection(doc *gofpdf.Fpdf, note *ExportNote) {
	doc.SetFont("Helvetica", "B", 18)
	doc.MultiCell(0, 9, note.Title, "", "L", false)
	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(120, 120, 120)
	doc.CellFormat(0, 6, fmt.Sprintf("Note #%d", note.ID), "", 1, "L", false, 0, "")
	doc.SetTextColor(0, 0, 0)
	doc.Ln(4)

	category := note.Category
	if category == "" {
		category = "-"
	}
	tags := strings.Join(note.Tags, ", ")
	if tags == "" {
		tags = "-"
	}
	rows := [][2]string{
		{"Category", category},
		{"Tags", tags},
		{"Status", note.Status},
		{"Created", note.CreatedAt.Format("2006-01-02 15:04")},
		{"Updated", note.UpdatedAt.Format("2006-01-02 15:04")},
	}
	for _, row := range rows {
		doc.SetFont("Helvetica", "B", 10)
		doc.CellFormat(30, 7, row[0], "1", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
		doc.MultiCell(0, 7, row[1], "1", "L", false)
	}
	doc.Ln(6)

	doc.SetFont("Helvetica", "", 11)
	for _, paragraph := range strings.Split(note.Content, "\n") {
		if strings.TrimSpace(paragraph) == "" {
			doc.Ln(4)
			continue
		}
		doc.MultiCell(0, 6, paragraph, "", "L", false)
		doc.Ln(1)
	}
}
