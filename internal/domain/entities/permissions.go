package entities

// Role of the acting user, as asserted by the (external) auth layer.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTecnico Role = "tecnico"
)

// Actor is the authenticated user performing an operation.
type Actor struct {
	UID    string
	Nombre string
	Rol    Role
}

// Permissions is the full set of editable affordances for one actor on one
// order. Both the use cases and any UI consume this same answer, so role
// checks live here and nowhere else.
type Permissions struct {
	CanEditContent  bool
	CanChangeStatus bool
	CanSign         bool
	CanCancel       bool
	CanDeliver      bool
}

// PermissionsFor computes the affordances of actor over o.
//
// Rules:
//   - A cancelled order is read-only for everyone.
//   - Admins edit content, reassign non-terminal statuses, cancel, and mark
//     Listo orders delivered.
//   - Technicians edit content only on orders assigned to them, and may add
//     their signature once; they never touch status.
func PermissionsFor(actor Actor, o Order) Permissions {
	if o.Estado == OrderStatusCancelado {
		return Permissions{}
	}

	switch actor.Rol {
	case RoleAdmin:
		return Permissions{
			CanEditContent:  true,
			CanChangeStatus: !o.Estado.IsTerminal(),
			CanSign:         o.FirmaTecnico == "",
			CanCancel:       !o.Estado.IsTerminal(),
			CanDeliver:      o.Estado == OrderStatusListo,
		}
	case RoleTecnico:
		if actor.UID == "" || actor.UID != o.TecnicoUID {
			return Permissions{}
		}
		return Permissions{
			CanEditContent: true,
			CanSign:        o.FirmaTecnico == "",
		}
	default:
		return Permissions{}
	}
}
