package request

import (
	"sieeg_orders/internal/domain/entities"
	"sieeg_orders/internal/usecase"
)

// CreateOrderRequest is the intake payload for a new service order. The
// trabajosRealizados field accepts every legacy shape (flat array, registros
// wrapper, maintenance rows); normalization happens while unmarshaling.
type CreateOrderRequest struct {
	Folio            string              `json:"folio"`
	Cliente          entities.Cliente    `json:"cliente" binding:"required"`
	Equipo           entities.Equipo     `json:"equipo"`
	Accesorios       entities.Accesorios `json:"accesorios"`
	Contrasena       string              `json:"contrasena"`
	DescripcionFalla string              `json:"descripcionFalla"`
	Comentarios      string              `json:"comentarios"`
	Trabajos         entities.WorkLog    `json:"trabajosRealizados"`
	Piezas           []entities.Pieza    `json:"piezasUsadas"`
	TecnicoUID       string              `json:"tecnicoUid"`
	TecnicoNombre    string              `json:"tecnicoNombre"`
	FechaIngreso     string              `json:"fechaIngreso"`
	FechaEstimada    string              `json:"fechaEstimada"`
}

func (r CreateOrderRequest) ToInput() usecase.CreateOrderInput {
	return usecase.CreateOrderInput{
		Folio:            r.Folio,
		Cliente:          r.Cliente,
		Equipo:           r.Equipo,
		Accesorios:       r.Accesorios,
		Contrasena:       r.Contrasena,
		DescripcionFalla: r.DescripcionFalla,
		Comentarios:      r.Comentarios,
		Trabajos:         r.Trabajos,
		Piezas:           r.Piezas,
		TecnicoUID:       r.TecnicoUID,
		TecnicoNombre:    r.TecnicoNombre,
		FechaIngreso:     r.FechaIngreso,
		FechaEstimada:    r.FechaEstimada,
	}
}

// UpdateOrderRequest carries partial content edits. Absent fields stay
// untouched; explicit empty strings clear.
type UpdateOrderRequest struct {
	Diagnostico       *string           `json:"diagnostico"`
	DescripcionFalla  *string           `json:"descripcionFalla"`
	Comentarios       *string           `json:"comentarios"`
	Trabajos          *entities.WorkLog `json:"trabajosRealizados"`
	Piezas            *[]entities.Pieza `json:"piezasUsadas"`
	TecnicoUID        *string           `json:"tecnicoUid"`
	TecnicoNombre     *string           `json:"tecnicoNombre"`
	FirmaCliente      *string           `json:"firmaCliente"`
	FechaEstimada     *string           `json:"fechaEstimada"`
	FechaFinalizacion *string           `json:"fechaFinalizacion"`
}

func (r UpdateOrderRequest) ToPatch() usecase.ContentPatch {
	return usecase.ContentPatch{
		Diagnostico:       r.Diagnostico,
		DescripcionFalla:  r.DescripcionFalla,
		Comentarios:       r.Comentarios,
		Trabajos:          r.Trabajos,
		Piezas:            r.Piezas,
		TecnicoUID:        r.TecnicoUID,
		TecnicoNombre:     r.TecnicoNombre,
		FirmaCliente:      r.FirmaCliente,
		FechaEstimada:     r.FechaEstimada,
		FechaFinalizacion: r.FechaFinalizacion,
	}
}

type ChangeStatusRequest struct {
	Estado string `json:"estado" binding:"required"`
}

type DeliverOrderRequest struct {
	QuienRecibe  string `json:"quienRecibe" binding:"required"`
	FechaEntrega string `json:"fechaEntrega" binding:"required"`
}

type CancelOrderRequest struct {
	MotivoCancelacion string `json:"motivoCancelacion" binding:"required"`
}

type SignOrderRequest struct {
	Firma string `json:"firma" binding:"required"`
}

type DeleteOrderRequest struct {
	Motivo string `json:"motivo"`
}
