package document

import (
	"bytes"
	"math"
	"strconv"

	"sieeg_orders/internal/domain/entities"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageW  = 595.0
	margin = 40.0
)

const (
	footerAddress = "Boulevard Belisario Domínguez #4213 L5, Fracc. La Gloria, Tuxtla Gutiérrez, Chiapas"
	footerPhones  = "Tel: 961 118 0157  •  WhatsApp: 961 333 6529"
)

var termsClauses = []string{
	"SIEEG no se responsabiliza en caso el equipo presente daños por mal uso de terceros o a nivel software y/o hardware antes de su ingreso a reparación.",
	"El cliente acepta pagar todas las piezas y mano de obra al finalizar la reparación.",
	"La fecha estimada de finalización está sujeta a cambios según la disponibilidad de piezas.",
	"El taller de reparación no es responsable de ninguna pérdida de datos en equipos electrónicos.",
	"Si la reparación requiere trabajos y/o piezas que no se hayan especificado anteriormente, SIEEG indicará un presupuesto actualizado, en caso de no autorizarlo no se realizará ninguna reparación.",
	"SIEEG te notificará una vez que tu producto esté reparado y listo para su entrega, este mismo se almacenará sin coste durante los primeros 10 días hábiles. Después de 10 días, si no se ha retirado el dispositivo, se cobrará los gastos de almacenamiento. El gasto de almacenamiento equivale a $50.00 por día.",
	"Una vez el producto se considere abandonado, SIEEG tomará la propiedad del mismo en compensación de los costos de almacenamiento.",
	"La garantía sobre reparaciones es válida solo en la mano de obra a partir de la fecha de finalización.",
}

// RenderOrder produces the printable service-order document. Orders whose
// work log classifies as foreign/maintenance service get the simplified
// variant automatically; callers never pick the layout.
func RenderOrder(o *entities.Order, logo []byte) ([]byte, error) {
	pdf := buildOrderPDF(o, logo)
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildOrderPDF(o *entities.Order, logo []byte) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if o.IsForeignService() {
		buildForaneoPages(pdf, tr, o, logo)
	} else {
		buildStandardPages(pdf, tr, o, logo)
	}
	return pdf
}

func buildStandardPages(pdf *gofpdf.Fpdf, tr func(string) string, o *entities.Order, logo []byte) {
	// ---- page 1: order data ----
	pdf.AddPage()
	y := 40.0

	setFill(pdf, colorSurface)
	pdf.Rect(0, 0, pageW, 110, "F")

	drawLogoCard(pdf, logo, y)

	pdf.SetFont("Helvetica", "", 10)
	setText(pdf, rgb{71, 85, 105})
	pdf.Text(margin+120, y+38, tr("Ingeniería y Telecomunicaciones"))
	pdf.SetFontSize(9)
	setText(pdf, colorSlate500)
	pdf.Text(margin+120, y+52, tr("Orden de Servicio"))

	infoBoxX := drawFolioBox(pdf, tr, o, y, colorHeaderBlue)
	drawStatusBadge(pdf, tr, infoBoxX+10, y+62, 150, 20, o.Estado)

	y += 90

	// client info
	const clientH = 95.0
	drawSection(pdf, tr, margin, y, pageW-2*margin, clientH, "INFORMACIÓN DEL CLIENTE")
	y += 42
	drawField(pdf, tr, margin+15, y, 235, "Nombre completo", o.Cliente.Nombre)
	drawField(pdf, tr, margin+270, y, 105, "Teléfono", o.Cliente.Telefono)
	drawField(pdf, tr, margin+395, y, 115, "Correo electrónico", o.Cliente.Correo)
	y += clientH - 8

	// equipment info
	const equipoH = 95.0
	drawSection(pdf, tr, margin, y, pageW-2*margin, equipoH, "INFORMACIÓN DEL EQUIPO")
	y += 42
	drawField(pdf, tr, margin+15, y, 115, "Tipo de equipo", o.Equipo.Tipo)
	drawField(pdf, tr, margin+145, y, 105, "Marca", o.Equipo.Marca)
	drawField(pdf, tr, margin+270, y, 105, "Modelo", o.Equipo.Modelo)
	drawField(pdf, tr, margin+395, y, 115, "Número de serie", o.Equipo.NumeroSerie)
	y += equipoH - 8

	// accessories & security
	const accH = 170.0
	accTop := y
	drawSection(pdf, tr, margin, accTop, pageW-2*margin, accH, "ACCESORIOS Y SEGURIDAD")
	y = accTop + 42

	type check struct {
		label   string
		checked bool
	}
	all := []check{
		{"Cargador", o.Accesorios.Cargador},
		{"SIM Card", o.Accesorios.SimCard},
		{"Bandeja SIM", o.Accesorios.BandejaSIM},
		{"Memoria SD", o.Accesorios.MemoriaSD},
		{"Funda", o.Accesorios.Funda},
		{"Cable", o.Accesorios.Cable},
	}
	var selected []check
	for _, c := range all {
		if c.checked {
			selected = append(selected, c)
		}
	}

	const maxCols = 3
	const colWidth = 170.0
	if len(selected) > 0 {
		cbX, cbY := margin+15, y
		for i, c := range selected {
			drawCheckbox(pdf, tr, cbX, cbY, c.label, c.checked)
			cbX += colWidth
			if (i+1)%maxCols == 0 {
				cbX = margin + 15
				cbY += 28
			}
		}
		rows := math.Ceil(float64(len(selected)) / maxCols)
		y += rows*28 + 6
	} else {
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.Text(margin+15, y+12, tr("Sin accesorios marcados"))
		y += 24
	}

	// pattern, password and free-text accessories only when present; the
	// row re-flows left to right so nothing leaves an empty hole.
	patron := o.Accesorios.Patron
	currentX := margin + 15
	baseY := math.Max(y+8, accTop+72)
	lowerRowHeight := 0.0

	if o.Accesorios.Otro != "" {
		drawField(pdf, tr, currentX, baseY, 220, "Otros accesorios", o.Accesorios.Otro)
		currentX += 240
		lowerRowHeight = math.Max(lowerRowHeight, 24)
	}
	if patron != "" {
		pdf.SetFont("Helvetica", "B", 7.5)
		setText(pdf, colorSlate500)
		pdf.Text(currentX, baseY, tr("PATRÓN DE SEGURIDAD"))
		drawPatternGrid(pdf, currentX, baseY+10, 52, patron)
		currentX += 130
		lowerRowHeight = math.Max(lowerRowHeight, 72)
	}
	if o.Contrasena != "" {
		available := pageW - margin - currentX - 20
		drawField(pdf, tr, currentX, baseY, math.Max(available, 120), "Contraseña", o.Contrasena)
		lowerRowHeight = math.Max(lowerRowHeight, 24)
	}
	y = baseY + lowerRowHeight + 16

	// fault description
	const fallaH = 210.0
	drawSection(pdf, tr, margin, y, pageW-2*margin, fallaH, "DESCRIPCIÓN DE LA FALLA")
	y += 42
	pdf.SetFont("Helvetica", "", 10)
	setText(pdf, colorSlate700)
	desc := o.DescripcionFalla
	if desc == "" {
		desc = "Sin descripción"
	}
	drawWrapped(pdf, tr, margin+15, y, pageW-2*margin-30, 11, desc)

	drawPageFooter(pdf, tr, "Página 1 de 2")

	// ---- page 2: terms and signatures ----
	pdf.AddPage()
	setFill(pdf, colorSurface)
	pdf.Rect(0, 0, pageW, 80, "F")
	y = 55

	setFill(pdf, colorHeaderBlue)
	pdf.Rect(margin-5, y-5, 6, 32, "F")

	pdf.SetFont("Helvetica", "B", 18)
	setText(pdf, colorHeaderBlue)
	pdf.Text(margin+8, y+12, tr("Términos y Condiciones"))

	pdf.SetFont("Helvetica", "", 9)
	setText(pdf, colorSlate500)
	pdf.Text(margin+8, y+26, tr("Por favor, lea cuidadosamente antes de firmar"))

	y += 50

	for i, term := range termsClauses {
		setFill(pdf, colorHeaderBlue)
		pdf.Circle(margin+5, y-3, 7, "F")
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 8)
		numX := margin + 3.0
		if i >= 9 {
			numX = margin + 1.5
		}
		pdf.Text(numX, y+1, strconv.Itoa(i+1))

		pdf.SetFont("Helvetica", "", 9)
		setText(pdf, colorSlate700)
		lines := pdf.SplitText(term, pageW-2*margin-25)
		for j, line := range lines {
			pdf.Text(margin+20, y+float64(j)*11, tr(line))
		}
		y += float64(len(lines))*11 + 10
	}

	// signature block
	y = 595

	pdf.SetFillColor(220, 220, 220)
	pdf.RoundedRect(margin+2, y+2, pageW-2*margin, 155, 8, "1234", "F")
	pdf.SetFillColor(255, 255, 255)
	pdf.RoundedRect(margin, y, pageW-2*margin, 155, 8, "1234", "F")
	setDraw(pdf, colorSlate200)
	pdf.SetLineWidth(1)
	pdf.RoundedRect(margin, y, pageW-2*margin, 155, 8, "1234", "D")

	pdf.Line(pageW/2, y+10, pageW/2, y+145)

	sigY := y + 25
	drawSignatureColumn(pdf, tr, margin+35, y, sigY, 22, "FIRMA DEL CLIENTE",
		o.FirmaCliente, "firma_cliente", o.Cliente.Nombre, "Nombre del cliente", 55)
	drawSignatureColumn(pdf, tr, pageW/2+35, y, sigY, 20, "FIRMA DEL TÉCNICO",
		o.FirmaTecnico, "firma_tecnico", o.TecnicoNombre, "Nombre del técnico", 53)

	drawPageFooter(pdf, tr, "Página 2 de 2")
}

func drawSignatureColumn(pdf *gofpdf.Fpdf, tr func(string) string, x, blockY, sigY, titleOffset float64, title, signature, imgName, personName, caption string, captionOffset float64) {
	pdf.SetFont("Helvetica", "B", 10)
	setText(pdf, colorHeaderBlue)
	pdf.Text(x+titleOffset, blockY+18, tr(title))

	setFill(pdf, colorSurface)
	pdf.RoundedRect(x, sigY, 180, 70, 4, "1234", "F")
	setDraw(pdf, colorSlate300)
	pdf.SetLineWidth(0.5)
	pdf.RoundedRect(x, sigY, 180, 70, 4, "1234", "D")

	if signature != "" {
		embedDataURL(pdf, imgName, signature, x+10, sigY+5, 160, 60)
	}

	setDraw(pdf, colorSlate300)
	pdf.SetLineWidth(0.8)
	pdf.Line(x+20, sigY+95, x+160, sigY+95)

	pdf.SetFont("Helvetica", "", 9)
	setText(pdf, rgb{71, 85, 105})
	name := personName
	if name == "" {
		name = "______________________"
	}
	nameW := pdf.GetStringWidth(tr(name))
	pdf.Text(x+90-nameW/2, sigY+108, tr(name))

	pdf.SetFont("Helvetica", "", 7.5)
	setText(pdf, colorSlate400)
	pdf.Text(x+captionOffset, sigY+118, tr(caption))
}

// drawLogoCard draws the white rounded card with the shop logo in the page
// header. Without logo bytes the card is omitted entirely, matching the
// degraded output when the logo fetch fails.
func drawLogoCard(pdf *gofpdf.Fpdf, logo []byte, y float64) {
	if len(logo) == 0 {
		return
	}
	pdf.SetFillColor(200, 200, 200)
	pdf.RoundedRect(margin+2, y+2, 105, 55, 4, "1234", "F")
	pdf.SetFillColor(255, 255, 255)
	pdf.RoundedRect(margin, y, 105, 55, 4, "1234", "F")
	embedLogo(pdf, "logo", logo, margin+2.5, y+2.5, 100, 50)
}

func drawFolioBox(pdf *gofpdf.Fpdf, tr func(string) string, o *entities.Order, y float64, accent rgb) float64 {
	infoBoxX := pageW - margin - 170

	pdf.SetFillColor(220, 220, 220)
	pdf.RoundedRect(infoBoxX+2, y+2, 170, 58, 6, "1234", "F")
	pdf.SetFillColor(255, 255, 255)
	pdf.RoundedRect(infoBoxX, y, 170, 58, 6, "1234", "F")
	setDraw(pdf, colorSlate200)
	pdf.SetLineWidth(1)
	pdf.RoundedRect(infoBoxX, y, 170, 58, 6, "1234", "D")

	pdf.SetFont("Helvetica", "B", 8)
	setText(pdf, colorSlate500)
	pdf.Text(infoBoxX+10, y+16, "FOLIO")

	pdf.SetFont("Helvetica", "B", 18)
	setText(pdf, accent)
	pdf.Text(infoBoxX+10, y+36, tr(orDash(o.Folio)))

	pdf.SetFont("Helvetica", "", 8.5)
	setText(pdf, colorSlate500)
	pdf.Text(infoBoxX+10, y+50, tr(orDash(o.FechaIngreso)))

	return infoBoxX
}

func drawPageFooter(pdf *gofpdf.Fpdf, tr func(string) string, pageLabel string) {
	setFill(pdf, colorSurface)
	pdf.Rect(0, 770, pageW, 72, "F")
	pdf.SetFont("Helvetica", "", 7.5)
	setText(pdf, colorSlate500)
	pdf.Text(margin, 785, tr(footerAddress))
	pdf.Text(margin, 797, tr(footerPhones))
	pdf.SetFontSize(7)
	setText(pdf, colorSlate400)
	pdf.Text(pageW-margin-60, 797, tr(pageLabel))
}

// drawWrapped word-wraps txt to width and draws it line by line with the
// given leading. Wrapping happens on the UTF-8 text; the cp1252 translation
// is applied per line at draw time because SplitText only accepts UTF-8.
func drawWrapped(pdf *gofpdf.Fpdf, tr func(string) string, x, y, width, leading float64, txt string) float64 {
	lines := pdf.SplitText(txt, width)
	for i, line := range lines {
		pdf.Text(x, y+float64(i)*leading, tr(line))
	}
	return y + float64(len(lines))*leading
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
