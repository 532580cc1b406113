package response

import (
	"sieeg_orders/internal/domain/entities"
)

type OrderResponse struct {
	ID     string `json:"id"`
	Folio  string `json:"folio"`
	Estado string `json:"estado"`

	Cliente    entities.Cliente    `json:"cliente"`
	Equipo     entities.Equipo     `json:"equipo"`
	Accesorios entities.Accesorios `json:"accesorios"`
	Contrasena string              `json:"contrasena,omitempty"`

	Diagnostico      string `json:"diagnostico,omitempty"`
	DescripcionFalla string `json:"descripcionFalla,omitempty"`
	Comentarios      string `json:"comentarios,omitempty"`

	Trabajos   entities.WorkLog `json:"trabajosRealizados"`
	Piezas     []entities.Pieza `json:"piezasUsadas"`
	CostoTotal float64          `json:"costoTotal"`

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

	Eliminado         bool   `json:"eliminado"`
	MotivoEliminacion string `json:"motivoEliminacion,omitempty"`
	FechaEliminacion  string `json:"fechaEliminacion,omitempty"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

func FromOrder(o entities.Order) OrderResponse {
	piezas := o.PiezasUsadas
	if piezas == nil {
		piezas = []entities.Pieza{}
	}

	return OrderResponse{
		ID:                o.ID,
		Folio:             o.Folio,
		Estado:            string(o.Estado),
		Cliente:           o.Cliente,
		Equipo:            o.Equipo,
		Accesorios:        o.Accesorios,
		Contrasena:        o.Contrasena,
		Diagnostico:       o.Diagnostico,
		DescripcionFalla:  o.DescripcionFalla,
		Comentarios:       o.Comentarios,
		Trabajos:          o.TrabajosRealizados,
		Piezas:            piezas,
		CostoTotal:        o.CostoTotal,
		TecnicoUID:        o.TecnicoUID,
		TecnicoNombre:     o.TecnicoNombre,
		FirmaCliente:      o.FirmaCliente,
		FirmaTecnico:      o.FirmaTecnico,
		FechaIngreso:      o.FechaIngreso,
		FechaEstimada:     o.FechaEstimada,
		FechaFinalizacion: o.FechaFinalizacion,
		QuienRecibe:       o.QuienRecibe,
		FechaEntrega:      o.FechaEntrega,
		MotivoCancelacion: o.MotivoCancelacion,
		FechaCancelacion:  o.FechaCancelacion,
		Eliminado:         o.Eliminado,
		MotivoEliminacion: o.MotivoEliminacion,
		FechaEliminacion:  o.FechaEliminacion,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

type ShareDocumentResponse struct {
	URL string `json:"url"`
}

type ProductResponse struct {
	ID     string  `json:"id"`
	Nombre string  `json:"nombre"`
	SKU    string  `json:"sku,omitempty"`
	Precio float64 `json:"precio"`
	Imagen string  `json:"imagen,omitempty"`
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ProductResponse{
			ID:     p.ID,
			Nombre: p.Nombre,
			SKU:    p.SKU,
			Precio: p.Precio,
			Imagen: p.Imagen,
		})
	}
	return out
}
