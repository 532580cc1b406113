package entities

import "testing"

func TestPermissionsFor(t *testing.T) {
	admin := Actor{UID: "adm-1", Rol: RoleAdmin}
	tecnico := Actor{UID: "tec-1", Rol: RoleTecnico}

	t.Run("cancelled order is read only for everyone", func(t *testing.T) {
		o := Order{Estado: OrderStatusCancelado, TecnicoUID: "tec-1"}
		for _, actor := range []Actor{admin, tecnico} {
			if p := PermissionsFor(actor, o); p != (Permissions{}) {
				t.Fatalf("actor %q: expected no permissions, got %#v", actor.UID, p)
			}
		}
	})

	t.Run("admin on working order", func(t *testing.T) {
		p := PermissionsFor(admin, Order{Estado: OrderStatusEnReparacion})
		if !p.CanEditContent || !p.CanChangeStatus || !p.CanCancel || !p.CanSign {
			t.Fatalf("unexpected permissions: %#v", p)
		}
		if p.CanDeliver {
			t.Fatalf("delivery requires Listo")
		}
	})

	t.Run("admin delivers only from Listo", func(t *testing.T) {
		if p := PermissionsFor(admin, Order{Estado: OrderStatusListo}); !p.CanDeliver {
			t.Fatalf("expected CanDeliver on Listo")
		}
	})

	t.Run("admin on delivered order", func(t *testing.T) {
		p := PermissionsFor(admin, Order{Estado: OrderStatusEntregado})
		if p.CanChangeStatus || p.CanCancel || p.CanDeliver {
			t.Fatalf("terminal state should block transitions: %#v", p)
		}
		if !p.CanEditContent {
			t.Fatalf("delivered orders still accept content fixes")
		}
	})

	t.Run("signature is write once", func(t *testing.T) {
		p := PermissionsFor(admin, Order{Estado: OrderStatusListo, FirmaTecnico: "data:image/png;base64,x"})
		if p.CanSign {
			t.Fatalf("existing signature must block re-signing")
		}
	})

	t.Run("technician on own order", func(t *testing.T) {
		p := PermissionsFor(tecnico, Order{Estado: OrderStatusEnRevision, TecnicoUID: "tec-1"})
		if !p.CanEditContent || !p.CanSign {
			t.Fatalf("unexpected permissions: %#v", p)
		}
		if p.CanChangeStatus || p.CanCancel || p.CanDeliver {
			t.Fatalf("technicians never touch status: %#v", p)
		}
	})

	t.Run("technician on someone else's order", func(t *testing.T) {
		p := PermissionsFor(tecnico, Order{Estado: OrderStatusEnRevision, TecnicoUID: "tec-2"})
		if p != (Permissions{}) {
			t.Fatalf("expected no permissions, got %#v", p)
		}
	})

	t.Run("unknown role gets nothing", func(t *testing.T) {
		p := PermissionsFor(Actor{UID: "x", Rol: "invitado"}, Order{Estado: OrderStatusPendiente})
		if p != (Permissions{}) {
			t.Fatalf("expected no permissions, got %#v", p)
		}
	})
}
