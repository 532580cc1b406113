package entities

import (
	"fmt"
	"math/rand"
	"time"
)

// Order is the service order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (folio-index): folio, used by the public lookup
//
// Monetary representation:
//   - CostoTotal is always derived from PiezasUsadas; the stored value is a
//     cache and is recomputed on every parts-affecting write.
//
// Date fields other than CreatedAt/UpdatedAt are plain YYYY-MM-DD strings:
// they come from date inputs, are printed verbatim on documents and never
// participate in arithmetic.

type Order struct {
	ID    string `json:"id"`
	Folio string `json:"folio"`

	Estado OrderStatus `json:"estado"`

	Cliente    Cliente    `json:"cliente"`
	Equipo     Equipo     `json:"equipo"`
	Accesorios Accesorios `json:"accesorios"`
	Contrasena string     `json:"contrasena,omitempty"`

	Diagnostico        string  `json:"diagnostico,omitempty"`
	DescripcionFalla   string  `json:"descripcionFalla,omitempty"`
	Comentarios        string  `json:"comentarios,omitempty"`
	TrabajosRealizados WorkLog `json:"trabajosRealizados"`

	PiezasUsadas []Pieza `json:"piezasUsadas"`
	CostoTotal   float64 `json:"costoTotal"`

	TecnicoUID    string `json:"tecnicoUid,omitempty"`
	TecnicoNombre string `json:"tecnicoNombre,omitempty"`
	FirmaCliente  string `json:"firmaCliente,omitempty"`
	FirmaTecnico  string `json:"firmaTecnico,omitempty"`

	FechaIngreso      string `json:"fechaIngreso,omitempty"`
	FechaEstimada     string `json:"fechaEstimada,omitempty"`
	FechaFinalizacion string `json:"fechaFinalizacion,omitempty"`

	QuienRecibe  string `json:"quienRecibe,omitempty"`
	FechaEntrega string `json:"fechaEntrega,omitempty"`

	MotivoCancelacion string `json:"motivoCancelacion,omitempty"`
	FechaCancelacion  string `json:"fechaCancelacion,omitempty"`

	Eliminado         bool   `json:"eliminado,omitempty"`
	MotivoEliminacion string `json:"motivoEliminacion,omitempty"`
	FechaEliminacion  string `json:"fechaEliminacion,omitempty"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

type Cliente struct {
	Nombre    string `json:"nombre"`
	Telefono  string `json:"telefono,omitempty"`
	Correo    string `json:"correo,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

type Equipo struct {
	Tipo        string `json:"tipo,omitempty"`
	Marca       string `json:"marca,omitempty"`
	Modelo      string `json:"modelo,omitempty"`
	NumeroSerie string `json:"numeroSerie,omitempty"`
}

type Accesorios struct {
	Cargador   bool   `json:"cargador"`
	SimCard    bool   `json:"simCard"`
	BandejaSIM bool   `json:"bandejaSIM"`
	MemoriaSD  bool   `json:"memoriaSD"`
	Funda      bool   `json:"funda"`
	Cable      bool   `json:"cable"`
	Otro       string `json:"otro,omitempty"`
	Patron     string `json:"patron,omitempty"`
}

// Any reports whether at least one accessory flag or free-text entry is set.
func (a Accesorios) Any() bool {
	return a.Cargador || a.SimCard || a.BandejaSIM || a.MemoriaSD || a.Funda || a.Cable || a.Otro != "" || a.Patron != ""
}

type Pieza struct {
	Descripcion string  `json:"descripcion"`
	Cantidad    int     `json:"cantidad"`
	Precio      float64 `json:"precio"`
	SKU         string  `json:"sku,omitempty"`
	CatalogID   string  `json:"catalogId,omitempty"`
}

// TotalPiezas derives the order total: Σ(cantidad × precio). Negative
// quantities or prices contribute nothing.
func TotalPiezas(piezas []Pieza) float64 {
	total := 0.0
	for _, p := range piezas {
		if p.Cantidad > 0 && p.Precio > 0 {
			total += float64(p.Cantidad) * p.Precio
		}
	}
	return total
}

// RecalcularTotal refreshes CostoTotal from the current parts list. The
// stored value is never trusted; any write path touching PiezasUsadas must
// call this before persisting.
func (o *Order) RecalcularTotal() {
	o.CostoTotal = TotalPiezas(o.PiezasUsadas)
}

// IsForeignService reports whether the order is a foreign/maintenance-service
// order, decided by the shape of its work log (see WorkLog).
func (o *Order) IsForeignService() bool {
	return o.TrabajosRealizados.Maintenance
}

// GenerateFolio builds a human-facing ticket code: S + YYMMDD + 2 random
// digits. Example: S25090114. The scheme matches the codes already in
// circulation; collisions are possible and intentionally unhandled.
func GenerateFolio() string {
	now := time.Now()
	return fmt.Sprintf("S%s%d", now.Format("060102"), 10+rand.Intn(90))
}
