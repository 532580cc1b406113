package document

import (
	"sieeg_orders/internal/domain/entities"

	"github.com/jung-kurt/gofpdf"
)

var (
	bitacoraColWidths = []float64{70, 35, 45, 40, 45, 45, 70}
	bitacoraColNames  = []string{"Área", "Filtros", "Condensadora", "Presión Gas", "Evaporadora", "Revisión Elect.", "Observaciones"}
)

// buildForaneoPages renders the simplified foreign/maintenance-service
// document: page 1 carries only client and service-date info (no equipment,
// no accessories), page 2 the maintenance log table.
func buildForaneoPages(pdf *gofpdf.Fpdf, tr func(string) string, o *entities.Order, logo []byte) {
	// ---- page 1: client and service info ----
	pdf.AddPage()
	y := 40.0

	setFill(pdf, colorSurface)
	pdf.Rect(0, 0, pageW, 110, "F")

	drawLogoCard(pdf, logo, y)

	pdf.SetFont("Helvetica", "", 10)
	setText(pdf, rgb{71, 85, 105})
	pdf.Text(margin+120, y+38, tr("Servicio Foráneo - Mantenimiento"))
	pdf.SetFontSize(9)
	setText(pdf, colorSlate500)
	pdf.Text(margin+120, y+52, tr("Bitácora de Aire Acondicionado"))

	drawFolioBox(pdf, tr, o, y, colorTeal)

	y += 90

	const clientH = 95.0
	drawSection(pdf, tr, margin, y, pageW-2*margin, clientH, "INFORMACIÓN DEL CLIENTE")
	y += 42
	drawField(pdf, tr, margin+15, y, 235, "Nombre completo", o.Cliente.Nombre)
	drawField(pdf, tr, margin+270, y, 105, "Teléfono", o.Cliente.Telefono)
	drawField(pdf, tr, margin+395, y, 115, "Dirección", o.Cliente.Direccion)
	y += clientH - 8

	const ubicH = 60.0
	drawSection(pdf, tr, margin, y, pageW-2*margin, ubicH, "INFORMACIÓN DE SERVICIO")
	y += 42
	drawField(pdf, tr, margin+15, y, pageW-2*margin-30, "Fecha de mantenimiento", o.FechaIngreso)

	drawPageFooter(pdf, tr, "Página 1 de 2")

	// ---- page 2: maintenance log ----
	pdf.AddPage()
	setFill(pdf, colorSurface)
	pdf.Rect(0, 0, pageW, 80, "F")

	y = 40

	setFill(pdf, colorTeal)
	pdf.Rect(margin-5, y-5, 6, 32, "F")

	pdf.SetFont("Helvetica", "B", 18)
	setText(pdf, colorTeal)
	pdf.Text(margin+8, y+12, tr("Bitácora de Mantenimiento"))

	pdf.SetFont("Helvetica", "", 9)
	setText(pdf, colorSlate500)
	pdf.Text(margin+8, y+26, tr("Registro detallado de revisiones por área"))

	y = 90

	drawBitacoraHeader(pdf, tr, y)
	y += 12

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 8)

	const rowHeight = 14.0
	for idx, row := range o.TrabajosRealizados.Rows {
		if idx%2 == 0 {
			setFill(pdf, colorSurface)
			pdf.Rect(margin, y, pageW-2*margin, rowHeight, "F")
		}

		pdf.SetDrawColor(200, 200, 200)
		pdf.SetLineWidth(0.5)

		x := margin

		// area
		pdf.Rect(x, y, bitacoraColWidths[0], rowHeight, "D")
		drawClipped(pdf, tr, x+2, y+7, bitacoraColWidths[0]-4, orDashCell(row.Area))
		x += bitacoraColWidths[0]

		x = drawChecklistCell(pdf, tr, x, y, bitacoraColWidths[1], rowHeight, row.LimpiezaFiltros)
		x = drawChecklistCell(pdf, tr, x, y, bitacoraColWidths[2], rowHeight, row.LimpiezaCondensadora)

		// gas pressure
		pdf.Rect(x, y, bitacoraColWidths[3], rowHeight, "D")
		drawClipped(pdf, tr, x+2, y+7, bitacoraColWidths[3]-4, orDashCell(row.PresionGas))
		x += bitacoraColWidths[3]

		x = drawChecklistCell(pdf, tr, x, y, bitacoraColWidths[4], rowHeight, row.LimpiezaEvaporadora)

		// electrical check
		pdf.Rect(x, y, bitacoraColWidths[5], rowHeight, "D")
		drawClipped(pdf, tr, x+2, y+7, bitacoraColWidths[5]-4, orDashCell(row.RevisionElectrica))
		x += bitacoraColWidths[5]

		// observations
		pdf.Rect(x, y, bitacoraColWidths[6], rowHeight, "D")
		drawClipped(pdf, tr, x+2, y+7, bitacoraColWidths[6]-4, orDashCell(row.Observaciones))

		y += rowHeight

		// overflow: new page with the header row repeated
		if y > 720 {
			pdf.AddPage()
			y = 40
			drawBitacoraHeader(pdf, tr, y)
			y += 12
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont("Helvetica", "", 8)
		}
	}

	drawPageFooter(pdf, tr, "Página 2 de 2")
}

func drawBitacoraHeader(pdf *gofpdf.Fpdf, tr func(string) string, y float64) {
	setFill(pdf, colorTeal)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 8)

	x := margin
	for i, name := range bitacoraColNames {
		pdf.Rect(x, y, bitacoraColWidths[i], 12, "F")
		drawClipped(pdf, tr, x+2, y+8, bitacoraColWidths[i]-4, name)
		x += bitacoraColWidths[i]
	}
}

// drawChecklistCell renders a SI/NO checklist value as a colored badge:
// green for SI, red for anything else. Returns the x of the next column.
func drawChecklistCell(pdf *gofpdf.Fpdf, tr func(string) string, x, y, w, h float64, value string) float64 {
	pdf.Rect(x, y, w, h, "D")

	c := colorRed
	if value == "SI" {
		c = colorGreen
	}
	setFill(pdf, c)
	pdf.Rect(x+2, y+2, w-4, h-4, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.Text(x+w/2-3, y+7, tr(orDashCell(value)))
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 8)

	return x + w
}

// drawClipped draws the first wrapped line that fits the cell width,
// degrading long values the way the table cells always have.
func drawClipped(pdf *gofpdf.Fpdf, tr func(string) string, x, y, w float64, txt string) {
	lines := pdf.SplitText(txt, w)
	if len(lines) == 0 {
		return
	}
	pdf.Text(x, y, tr(lines[0]))
}

func orDashCell(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
