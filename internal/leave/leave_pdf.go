package leave

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	ExportFilename    = "approved_leave_requests.pdf"
	ExportContentType = "application/pdf"

	exportTitle = "HR Approved Leave Requests"

	// Positions are in points measured from the bottom of the page.
	titleX      = 200.0
	titleY      = 800.0
	rowX        = 100.0
	firstRowY   = 770.0
	nextPageY   = 800.0
	rowStep     = 20.0
	bottomLimit = 50.0
)

// RowPlacement is where one export row lands.
type RowPlacement struct {
	Page int
	Y    float64
}

// LayoutRows places n rows on pages, opening a new page once the cursor drops
// below the bottom margin. A page is opened only when a row needs it.
func LayoutRows(n int) []RowPlacement {
	out := make([]RowPlacement, 0, n)
	page, y := 1, firstRowY
	for i := 0; i < n; i++ {
		if y < bottomLimit {
			page++
			y = nextPageY
		}
		out = append(out, RowPlacement{Page: page, Y: y})
		y -= rowStep
	}
	return out
}

func exportRow(l LeaveRequest) string {
	return fmt.Sprintf("%s (%s) - %s to %s (%d days)",
		l.employeeName(),
		l.department(),
		l.StartDate.Format(dateLayout),
		l.EndDate.Format(dateLayout),
		l.DaysRequested(),
	)
}

// RenderApprovedPDF writes one A4 document listing the given requests.
func RenderApprovedPDF(leaves []LeaveRequest) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(exportTitle, true)
	pdf.SetFont("Helvetica", "", 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	_, height := pdf.GetPageSize()
	top := func(y float64) float64 { return height - y }

	pdf.AddPage()
	pdf.Text(titleX, top(titleY), exportTitle)

	page := 1
	for i, p := range LayoutRows(len(leaves)) {
		if p.Page != page {
			pdf.AddPage()
			page = p.Page
		}
		pdf.Text(rowX, top(p.Y), tr(exportRow(leaves[i])))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
