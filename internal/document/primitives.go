// Package document renders service orders into the three printable PDF
// artifacts: the full two-page order, the foreign/maintenance-service
// variant, and the compact receipt ticket. Coordinates, fonts and colors
// reproduce the layout the shop already prints, so output stays visually
// bit-compatible with the existing documents.
package document

import (
	"regexp"
	"strconv"
	"strings"

	"sieeg_orders/internal/domain/entities"

	"github.com/jung-kurt/gofpdf"
)

type rgb struct{ r, g, b int }

var (
	colorHeaderBlue = rgb{30, 64, 175}
	colorAccentBlue = rgb{59, 130, 246}
	colorTeal       = rgb{0, 184, 148}
	colorGreen      = rgb{34, 197, 94}
	colorRed        = rgb{239, 68, 68}
	colorSlate700   = rgb{51, 65, 85}
	colorSlate500   = rgb{100, 116, 139}
	colorSlate400   = rgb{148, 163, 184}
	colorSlate300   = rgb{203, 213, 225}
	colorSlate200   = rgb{226, 232, 240}
	colorSlate900   = rgb{15, 23, 42}
	colorSurface    = rgb{248, 250, 252}
)

func setFill(pdf *gofpdf.Fpdf, c rgb) { pdf.SetFillColor(c.r, c.g, c.b) }
func setDraw(pdf *gofpdf.Fpdf, c rgb) { pdf.SetDrawColor(c.r, c.g, c.b) }
func setText(pdf *gofpdf.Fpdf, c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }

// drawSection renders a titled container: drop shadow, white body, light
// border and a blue header bar with a lighter accent stripe. Call sites own
// width/height so they control pagination.
func drawSection(pdf *gofpdf.Fpdf, tr func(string) string, x, y, w, h float64, title string) {
	pdf.SetFillColor(220, 220, 220)
	pdf.Rect(x+2, y+2, w, h, "F")

	pdf.SetFillColor(255, 255, 255)
	pdf.Rect(x, y, w, h, "F")

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.5)
	pdf.Rect(x, y, w, h, "D")

	setFill(pdf, colorHeaderBlue)
	pdf.Rect(x, y, w, 28, "F")

	setFill(pdf, colorAccentBlue)
	pdf.Rect(x, y, 4, 28, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(x+12, y+18, tr(title))

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 12)
}

// drawField renders a small uppercase caption above a value with a rule
// beneath. A missing value renders an em dash so the field position stays
// visually anchored.
func drawField(pdf *gofpdf.Fpdf, tr func(string) string, x, y, w float64, label, value string) {
	pdf.SetFont("Helvetica", "B", 7.5)
	setText(pdf, colorSlate500)
	pdf.Text(x, y, tr(strings.ToUpper(label)))

	pdf.SetFont("Helvetica", "", 10)
	setText(pdf, colorSlate900)
	if value == "" {
		value = "—"
	}
	pdf.Text(x+2, y+11, tr(value))

	setDraw(pdf, colorSlate200)
	pdf.SetLineWidth(0.8)
	pdf.Line(x, y+14, x+w, y+14)
}

// drawCheckbox renders a rounded box with a white checkmark when checked,
// an outlined empty box otherwise, plus the label to its right.
func drawCheckbox(pdf *gofpdf.Fpdf, tr func(string) string, x, y float64, label string, checked bool) {
	if checked {
		setFill(pdf, colorHeaderBlue)
		pdf.RoundedRect(x, y, 12, 12, 2, "1234", "FD")

		pdf.SetDrawColor(255, 255, 255)
		pdf.SetLineWidth(2)
		pdf.Line(x+3, y+6, x+5, y+9)
		pdf.Line(x+5, y+9, x+9, y+3)
	} else {
		setFill(pdf, colorSurface)
		setDraw(pdf, colorSlate300)
		pdf.SetLineWidth(0.5)
		pdf.RoundedRect(x, y, 12, 12, 2, "1234", "FD")
	}

	pdf.SetFont("Helvetica", "", 9.5)
	setText(pdf, colorSlate700)
	pdf.Text(x+16, y+9, tr(label))
	pdf.SetTextColor(0, 0, 0)
}

var patternSplitRe = regexp.MustCompile(`[^0-9]+`)

// ParsePattern extracts the ordered 0–8 grid-cell indices from the stored
// unlock-pattern string (dash-joined by the capture UI, but any non-digit
// separator is accepted). Out-of-range values are dropped.
func ParsePattern(pattern string) []int {
	var indices []int
	for _, chunk := range patternSplitRe.Split(pattern, -1) {
		if chunk == "" {
			continue
		}
		n, err := strconv.Atoi(chunk)
		if err != nil || n < 0 || n > 8 {
			continue
		}
		indices = append(indices, n)
	}
	return indices
}

// patternSegments lists the connecting line segments between consecutive
// visited cells, in draw order.
func patternSegments(indices []int) [][2]int {
	if len(indices) < 2 {
		return nil
	}
	segs := make([][2]int, 0, len(indices)-1)
	for i := 1; i < len(indices); i++ {
		segs = append(segs, [2]int{indices[i-1], indices[i]})
	}
	return segs
}

// drawPatternGrid renders the 3×3 unlock-pattern visualization: a soft
// background card, connecting segments between visited dots in capture
// order, filled dots (with shadow) for visited cells and outlined dots for
// the rest.
func drawPatternGrid(pdf *gofpdf.Fpdf, x, y, size float64, pattern string) {
	spacing := size / 2
	type point struct{ x, y float64 }
	points := make([]point, 0, 9)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			points = append(points, point{x + float64(c)*spacing, y + float64(r)*spacing})
		}
	}

	indices := ParsePattern(pattern)

	setFill(pdf, colorSurface)
	pdf.RoundedRect(x-8, y-8, size+16, size+16, 3, "1234", "F")

	if len(indices) > 1 {
		setDraw(pdf, colorHeaderBlue)
		pdf.SetLineWidth(2.5)
		for _, seg := range patternSegments(indices) {
			a, b := points[seg[0]], points[seg[1]]
			pdf.Line(a.x, a.y, b.x, b.y)
		}
	}

	visited := make(map[int]bool, len(indices))
	for _, i := range indices {
		visited[i] = true
	}
	for i, p := range points {
		if visited[i] {
			setFill(pdf, colorSlate500)
			pdf.Circle(p.x+0.5, p.y+0.5, 5, "F")
			setFill(pdf, colorHeaderBlue)
			pdf.Circle(p.x, p.y, 5, "F")
		} else {
			pdf.SetFillColor(255, 255, 255)
			setDraw(pdf, colorSlate300)
			pdf.SetLineWidth(1.5)
			pdf.Circle(p.x, p.y, 4, "FD")
		}
	}
}

type badgeStyle struct {
	fill  rgb
	label string
	text  rgb
}

var estadoBadges = map[entities.OrderStatus]badgeStyle{
	entities.OrderStatusPendiente:    {rgb{148, 163, 184}, "PENDIENTE", rgb{255, 255, 255}},
	entities.OrderStatusEnRevision:   {rgb{251, 191, 36}, "EN REVISIÓN", rgb{120, 53, 15}},
	entities.OrderStatusEnReparacion: {rgb{59, 130, 246}, "EN REPARACIÓN", rgb{255, 255, 255}},
	entities.OrderStatusListo:        {rgb{34, 197, 94}, "LISTO", rgb{255, 255, 255}},
	entities.OrderStatusEntregado:    {rgb{100, 116, 139}, "ENTREGADO", rgb{255, 255, 255}},
}

// badgeFor never returns an empty style: unknown or missing states fall back
// to the Pendiente look.
func badgeFor(estado entities.OrderStatus) badgeStyle {
	if b, ok := estadoBadges[estado]; ok {
		return b
	}
	return estadoBadges[entities.OrderStatusPendiente]
}

// drawStatusBadge renders the filled rounded status pill with centered
// contrasting text.
func drawStatusBadge(pdf *gofpdf.Fpdf, tr func(string) string, x, y, w, h float64, estado entities.OrderStatus) {
	b := badgeFor(estado)

	pdf.SetFillColor(200, 200, 200)
	pdf.RoundedRect(x+1, y+1, w, h, h/2, "1234", "F")

	setFill(pdf, b.fill)
	pdf.RoundedRect(x, y, w, h, h/2, "1234", "F")

	pdf.SetFont("Helvetica", "B", 8)
	setText(pdf, b.text)
	label := tr(b.label)
	pdf.Text(x+(w-pdf.GetStringWidth(label))/2, y+13, label)
	pdf.SetTextColor(0, 0, 0)
}
