package entities

// OrderStatus represents the lifecycle of a service order.
//
// Domain notes:
//   - Status values are the human-facing Spanish labels; they travel as-is
//     over the API and into the printed documents.
//   - Entregado and Cancelado are terminal for the normal flow. Cancelado
//     additionally freezes the record: no content edits are accepted.

type OrderStatus string

const (
	OrderStatusPendiente    OrderStatus = "Pendiente"
	OrderStatusEnRevision   OrderStatus = "En revisión"
	OrderStatusEnReparacion OrderStatus = "En reparación"
	OrderStatusListo        OrderStatus = "Listo"
	OrderStatusEntregado    OrderStatus = "Entregado"
	OrderStatusCancelado    OrderStatus = "Cancelado"
)

// AssignableStatuses are the states an admin may freely move an order between
// while it is not terminal. Entregado and Cancelado are reached only through
// their dedicated transitions.
var AssignableStatuses = []OrderStatus{
	OrderStatusPendiente,
	OrderStatusEnRevision,
	OrderStatusEnReparacion,
	OrderStatusListo,
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusEntregado || s == OrderStatusCancelado
}

func (s OrderStatus) IsAssignable() bool {
	for _, a := range AssignableStatuses {
		if s == a {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsValid() bool {
	return s.IsAssignable() || s.IsTerminal()
}
