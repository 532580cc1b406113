package document

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"sieeg_orders/internal/domain/entities"

	"github.com/jung-kurt/gofpdf"
)

// Receipt-printer page: 80mm wide, 200mm tall, millimeter units.
const (
	ticketW      = 80.0
	ticketH      = 200.0
	ticketMargin = 6.0
)

// RenderTicket produces the compact single-column ticket for an order.
// origin is the public site base (e.g. https://sieeg.com.mx) used to build
// the customer self-service lookup URL.
func RenderTicket(o *entities.Order, logo []byte, origin string) ([]byte, error) {
	pdf := buildTicketPDF(o, logo, origin)
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildTicketPDF(o *entities.Order, logo []byte, origin string) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: ticketW, Ht: ticketH},
	})
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	contentW := ticketW - 2*ticketMargin
	y := 8.0

	consultaURL := fmt.Sprintf("%s/consulta?folio=%s", strings.TrimSuffix(origin, "/"), url.QueryEscape(o.Folio))

	embedLogo(pdf, "ticket_logo", logo, (ticketW-24)/2, y, 24, 12)
	y += 15

	// centered title
	pdf.SetFont("Helvetica", "B", 13)
	title := "ORDEN DE SERVICIO"
	pdf.Text(ticketW/2-pdf.GetStringWidth(title)/2, y, title)
	y += 5

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.4)
	pdf.Line(ticketMargin+10, y, ticketW-ticketMargin-10, y)
	y += 6

	// folio, right-aligned value
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(ticketMargin, y, "FOLIO:")
	pdf.SetFontSize(12)
	folio := tr(orDash(o.Folio))
	pdf.Text(ticketW-ticketMargin-pdf.GetStringWidth(folio), y, folio)
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(ticketMargin, y, tr("Fecha: "+orDash(o.FechaIngreso)))
	y += 8

	y = ticketHeading(pdf, tr, y, "CLIENTE")

	pdf.SetFont("Helvetica", "B", 10)
	for _, line := range pdf.SplitText(orDash(o.Cliente.Nombre), contentW) {
		pdf.Text(ticketMargin, y, tr(line))
		y += 4.5
	}
	y += 2

	pdf.SetFont("Helvetica", "", 9)
	if o.Cliente.Telefono != "" {
		pdf.Text(ticketMargin, y, tr("Tel: "+o.Cliente.Telefono))
		y += 5
	}
	y += 3

	y = ticketHeading(pdf, tr, y, "EQUIPO")

	pdf.SetFont("Helvetica", "B", 10)
	equipo := strings.TrimSpace(orDash(o.Equipo.Tipo) + " " + o.Equipo.Marca)
	pdf.Text(ticketMargin, y, tr(equipo))
	y += 5

	pdf.SetFont("Helvetica", "", 9)
	if o.Equipo.Modelo != "" {
		pdf.Text(ticketMargin, y, tr("Modelo: "+o.Equipo.Modelo))
		y += 4
	}
	if o.Equipo.NumeroSerie != "" {
		pdf.Text(ticketMargin, y, tr("Serie: "+o.Equipo.NumeroSerie))
		y += 4
	}
	y += 3

	y = ticketHeading(pdf, tr, y, "ESTADO")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(245, 245, 245)
	pdf.Rect(ticketMargin, y-3, contentW, 7, "F")
	pdf.Text(ticketMargin+2, y+1, tr(orDash(string(o.Estado))))
	y += 9

	pdf.SetFont("Helvetica", "B", 9)
	y = ticketHeading(pdf, tr, y, "DESCRIPCIÓN / FALLA")

	pdf.SetFont("Helvetica", "", 9)
	desc := o.DescripcionFalla
	if desc == "" {
		desc = "Sin descripción"
	}
	descLines := pdf.SplitText(desc, contentW)
	for _, line := range descLines {
		pdf.Text(ticketMargin, y, tr(line))
		y += 4.5
	}
	y += 4

	if o.Accesorios.Any() || o.Contrasena != "" {
		pdf.SetFont("Helvetica", "B", 9)
		y = ticketHeading(pdf, tr, y, "ACCESORIOS")

		pdf.SetFont("Helvetica", "", 9)
		var accList []string
		if o.Accesorios.Cargador {
			accList = append(accList, "Cargador")
		}
		if o.Accesorios.SimCard {
			accList = append(accList, "SIM Card")
		}
		if o.Accesorios.BandejaSIM {
			accList = append(accList, "Bandeja SIM")
		}
		if o.Accesorios.MemoriaSD {
			accList = append(accList, "Memoria SD")
		}
		if o.Accesorios.Funda {
			accList = append(accList, "Funda")
		}
		if o.Accesorios.Cable {
			accList = append(accList, "Cable")
		}
		if o.Accesorios.Otro != "" {
			accList = append(accList, o.Accesorios.Otro)
		}

		if len(accList) > 0 {
			for _, line := range pdf.SplitText(strings.Join(accList, ", "), contentW) {
				pdf.Text(ticketMargin, y, tr(line))
				y += 4.5
			}
			y += 3
		}

		if o.Accesorios.Patron != "" {
			pdf.Text(ticketMargin, y, tr("Patrón: "+o.Accesorios.Patron))
			y += 4
		}
		if o.Contrasena != "" {
			pdf.Text(ticketMargin, y, tr("Contraseña: "+o.Contrasena))
			y += 4
		}
		y += 2
	}

	// online lookup
	y += 3
	pdf.SetLineWidth(0.3)
	pdf.Line(ticketMargin, y, ticketW-ticketMargin, y)
	y += 6

	pdf.SetFont("Helvetica", "B", 9)
	y = ticketHeading(pdf, tr, y, "CONSULTA EN LÍNEA")

	pdf.SetFont("Helvetica", "", 8)
	for _, line := range pdf.SplitText(consultaURL, contentW) {
		pdf.Text(ticketMargin, y, tr(line))
		y += 4
	}
	y += 4

	pdf.SetFont("Helvetica", "I", 8)
	pdf.Text(ticketMargin, y, tr("Escanea o visita para ver el estado de tu equipo."))
	y += 6

	pdf.SetLineWidth(0.2)
	pdf.Line(ticketMargin, y, ticketW-ticketMargin, y)
	y += 4
	pdf.SetFont("Helvetica", "", 7)
	thanks := "Gracias por confiar en SIEEG"
	pdf.Text(ticketW/2-pdf.GetStringWidth(thanks)/2, y, thanks)

	return pdf
}

// ticketHeading draws a bold section caption with a hairline rule under
// the full content width and returns the y for the section body.
func ticketHeading(pdf *gofpdf.Fpdf, tr func(string) string, y float64, title string) float64 {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.Text(ticketMargin, y, tr(title))
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.2)
	pdf.Line(ticketMargin, y+1, ticketW-ticketMargin, y+1)
	return y + 5
}
