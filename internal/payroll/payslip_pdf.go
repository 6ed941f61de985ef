package payroll

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/vivek068790/Employee-Register-App/internal/domain"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

func payslipLines(p domain.PayrollData) []string {
	return []string{
		fmt.Sprintf("Payslip - %s %d", p.Month, p.Year),
		"",
		fmt.Sprintf("Name: %s", p.Name),
		fmt.Sprintf("Employee ID: %s", p.EmployeeCode),
		fmt.Sprintf("Gender: %s", p.Gender),
		"",
		fmt.Sprintf("Days present: %d", p.DaysPresent),
		fmt.Sprintf("Daily rate: %d", p.DailyRate),
		fmt.Sprintf("Basic salary: %d", p.TotalSalary),
		fmt.Sprintf("Contractor fee: %d", p.ContractorFee),
		fmt.Sprintf("Total: %d", p.TotalWithContractorFee),
	}
}

// renderPayslipPDF lays the payslip out as a single A4 page of Helvetica
// text lines.
func renderPayslipPDF(p domain.PayrollData) []byte {
	lines := payslipLines(p)

	var content strings.Builder
	content.WriteString("BT\n/F1 12 Tf\n16 TL\n50 800 Td\n")
	for i, line := range lines {
		if i == 0 {
			fmt.Fprintf(&content, "(%s) Tj\n", pdfEscape(line))
			continue
		}
		fmt.Fprintf(&content, "T* (%s) Tj\n", pdfEscape(line))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n", len(objects)+1)
	out.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(objects)+1, xref)
	return out.Bytes()
}

// pdfEscape turns v into the body of a PDF literal string in WinAnsi
// (Windows-1252) encoding. Runes outside the code page fall back to their
// base letter when they have one, otherwise to '?'. Bytes above 0x7e are
// written as octal escapes so the content stream stays ASCII.
func pdfEscape(v string) string {
	var b strings.Builder
	for _, r := range v {
		c := winAnsiByte(r)
		switch {
		case c == '\\' || c == '(' || c == ')':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < 0x20 || c > 0x7e:
			fmt.Fprintf(&b, "\\%03o", c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func winAnsiByte(r rune) byte {
	if c, ok := charmap.Windows1252.EncodeRune(r); ok {
		return c
	}
	for _, d := range norm.NFD.String(string(r)) {
		if unicode.Is(unicode.Mn, d) {
			continue
		}
		if c, ok := charmap.Windows1252.EncodeRune(d); ok {
			return c
		}
		break
	}
	return '?'
}
