package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

type QuestionRow struct {
	QuestionNo string
	Awarded    float64
	Total      float64
}

// IndividualReport holds everything printed on a per-submission report.
type IndividualReport struct {
	StudentName    string
	StudentClass   string
	TestTitle      string
	Subject        string
	Score          float64
	MaxScore       float64
	Remarks        string
	Strengths      string
	Improvements   string
	QuestionScores []QuestionRow
	GradedAt       time.Time
}

type DistributionBucket struct {
	Label string
	Count int
}

type ClassRow struct {
	StudentName string
	Score       float64
	Status      string
}

// ClassReport holds the aggregate figures of one test.
type ClassReport struct {
	TestTitle    string
	Subject      string
	Submissions  int
	Graded       int
	Average      float64
	Highest      float64
	Lowest       float64
	Distribution []DistributionBucket
	Rows         []ClassRow
}

// BuildIndividualReport renders a student performance report PDF.
func BuildIndividualReport(r *IndividualReport) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 20)
	doc.CellFormat(0, 12, "Student Performance Report", "", 1, "C", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "", 11)
	infoRow(doc, "Student Name:", r.StudentName)
	infoRow(doc, "Class:", r.StudentClass)
	infoRow(doc, "Test:", r.TestTitle)
	infoRow(doc, "Subject:", r.Subject)
	infoRow(doc, "Date:", r.GradedAt.Format("January 2, 2006"))
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 10, fmt.Sprintf("Overall Score: %.1f / %.1f", r.Score, r.MaxScore), "", 1, "L", false, 0, "")
	doc.Ln(2)

	if len(r.QuestionScores) > 0 {
		sectionHeading(doc, "Question Scores")
		doc.SetFont("Helvetica", "B", 10)
		doc.CellFormat(40, 8, "Question", "1", 0, "C", false, 0, "")
		doc.CellFormat(40, 8, "Awarded", "1", 0, "C", false, 0, "")
		doc.CellFormat(40, 8, "Total", "1", 1, "C", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
		for _, qs := range r.QuestionScores {
			doc.CellFormat(40, 8, qs.QuestionNo, "1", 0, "C", false, 0, "")
			doc.CellFormat(40, 8, fmt.Sprintf("%.1f", qs.Awarded), "1", 0, "C", false, 0, "")
			doc.CellFormat(40, 8, fmt.Sprintf("%.1f", qs.Total), "1", 1, "C", false, 0, "")
		}
		doc.Ln(2)
	}

	textSection(doc, "Remarks", r.Remarks)
	textSection(doc, "Strengths", r.Strengths)
	textSection(doc, "Areas for Improvement", r.Improvements)

	return output(doc)
}

// BuildClassReport renders the aggregate class performance PDF for one test.
func BuildClassReport(r *ClassReport) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 20)
	doc.CellFormat(0, 12, "Class Performance Report", "", 1, "C", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "", 11)
	infoRow(doc, "Test:", r.TestTitle)
	infoRow(doc, "Subject:", r.Subject)
	infoRow(doc, "Submissions:", fmt.Sprintf("%d (%d graded)", r.Submissions, r.Graded))
	doc.Ln(4)

	sectionHeading(doc, "Summary")
	doc.SetFont("Helvetica", "", 11)
	infoRow(doc, "Average Score:", fmt.Sprintf("%.1f", r.Average))
	infoRow(doc, "Highest Score:", fmt.Sprintf("%.1f", r.Highest))
	infoRow(doc, "Lowest Score:", fmt.Sprintf("%.1f", r.Lowest))
	doc.Ln(2)

	if len(r.Distribution) > 0 {
		sectionHeading(doc, "Score Distribution")
		doc.SetFont("Helvetica", "", 10)
		for _, bucket := range r.Distribution {
			doc.CellFormat(40, 7, bucket.Label, "1", 0, "C", false, 0, "")
			doc.CellFormat(40, 7, fmt.Sprintf("%d", bucket.Count), "1", 1, "C", false, 0, "")
		}
		doc.Ln(2)
	}

	sectionHeading(doc, "Students")
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(80, 8, "Student", "1", 0, "L", false, 0, "")
	doc.CellFormat(40, 8, "Score", "1", 0, "C", false, 0, "")
	doc.CellFormat(40, 8, "Status", "1", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	for _, row := range r.Rows {
		doc.CellFormat(80, 8, row.StudentName, "1", 0, "L", false, 0, "")
		doc.CellFormat(40, 8, fmt.Sprintf("%.1f", row.Score), "1", 0, "C", false, 0, "")
		doc.CellFormat(40, 8, row.Status, "1", 1, "C", false, 0, "")
	}

	return output(doc)
}

func infoRow(doc *gofpdf.Fpdf, label, value string) {
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(45, 7, label, "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}

func sectionHeading(doc *gofpdf.Fpdf, title string) {
	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
}

func textSection(doc *gofpdf.Fpdf, title, body string) {
	if body == "" {
		return
	}
	sectionHeading(doc, title)
	doc.SetFont("Helvetica", "", 11)
	doc.MultiCell(0, 6, body, "", "L", false)
	doc.Ln(2)
}

func output(doc *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
