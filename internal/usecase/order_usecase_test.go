package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sieeg_orders/internal/domain/entities"
	"sieeg_orders/internal/events"
	mock_interfaces "sieeg_orders/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func passthroughSave(repo *mock_interfaces.MockIOrderRepository) {
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o entities.Order) (entities.Order, error) {
			return o, nil
		})
}

func TestOrderUseCase_Create(t *testing.T) {
	t.Run("missing client name", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreateOrderInput{})
		if !errors.Is(err, ErrMissingClienteNombre) {
			t.Fatalf("expected ErrMissingClienteNombre, got %v", err)
		}
	})

	t.Run("defaults and derived total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockIChangeNotifier(ctrl)
		uc := NewOrderUseCase(repo, notifier)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				return o, nil
			})
		notifier.EXPECT().Publish(events.ChangeCreated, gomock.Any())

		created, err := uc.Create(context.Background(), CreateOrderInput{
			Cliente: entities.Cliente{Nombre: "Juan Pérez"},
			Piezas: []entities.Pieza{
				{Descripcion: "Pantalla", Cantidad: 1, Precio: 1500},
				{Descripcion: "Mica", Cantidad: 2, Precio: 100},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated id")
		}
		if !strings.HasPrefix(created.Folio, "S") || len(created.Folio) != 9 {
			t.Fatalf("unexpected folio %q", created.Folio)
		}
		if created.Estado != entities.OrderStatusPendiente {
			t.Fatalf("expected Pendiente, got %q", created.Estado)
		}
		if created.CostoTotal != 1700 {
			t.Fatalf("expected total 1700, got %v", created.CostoTotal)
		}
		if created.CreatedAt == 0 || created.UpdatedAt != created.CreatedAt {
			t.Fatalf("expected matching timestamps, got %d/%d", created.CreatedAt, created.UpdatedAt)
		}
	})

	t.Run("explicit folio kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				return o, nil
			})

		created, err := uc.Create(context.Background(), CreateOrderInput{
			Folio:   " S25010101 ",
			Cliente: entities.Cliente{Nombre: "Ana"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Folio != "S25010101" {
			t.Fatalf("expected trimmed explicit folio, got %q", created.Folio)
		}
	})
}

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("zero value means not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, nil)

		_, err := uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderUseCase_UpdateContent(t *testing.T) {
	admin := entities.Actor{UID: "adm-1", Rol: entities.RoleAdmin}

	t.Run("cancelled order is immutable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(
			entities.Order{ID: "ord-1", Estado: entities.OrderStatusCancelado}, nil)

		diag := "no enciende"
		_, err := uc.UpdateContent(context.Background(), admin, "ord-1", ContentPatch{Diagnostico: &diag})
		if !errors.Is(err, ErrOrderCancelled) {
			t.Fatalf("expected ErrOrderCancelled, got %v", err)
		}
	})

	t.Run("unassigned technician forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(
			entities.Order{ID: "ord-1", Estado: entities.OrderStatusEnRevision, TecnicoUID: "tec-2"}, nil)

		diag := "x"
		_, err := uc.UpdateContent(context.Background(),
			entities.Actor{UID: "tec-1", Rol: entities.RoleTecnico}, "ord-1", ContentPatch{Diagnostico: &diag})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("patch applies and total is recomputed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockIChangeNotifier(ctrl)
		uc := NewOrderUseCase(repo, notifier)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(
			entities.Order{ID: "ord-1", Estado: entities.OrderStatusEnReparacion, CostoTotal: 50}, nil)
		passthroughSave(repo)
		notifier.EXPECT().Publish(events.ChangeUpdated, "ord-1")

		diag := "batería agotada"
		piezas := []entities.Pieza{{Descripcion: "Batería", Cantidad: 1, Precio: 800}}
		updated, err := uc.UpdateContent(context.Background(), admin, "ord-1", ContentPatch{
			Diagnostico: &diag,
			Piezas:      &piezas,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Diagnostico != diag {
			t.Fatalf("diagnostico not applied: %q", updated.Diagnostico)
		}
		if updated.CostoTotal != 800 {
			t.Fatalf("expected recomputed total 800, got %v", updated.CostoTotal)
		}
		if updated.UpdatedAt == 0 {
			t.Fatalf("expected UpdatedAt stamp")
		}
	})

	t.Run("untouched fields survive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(
			entities.Order{ID: "ord-1", Estado: entities.OrderStatusPendiente, Comentarios: "urgente"}, nil)
		passthroughSave(repo)

		diag := "x"
		updated, err := uc.UpdateContent(context.Background(), admin, "ord-1", ContentPatch{Diagnostico: &diag})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Comentarios != "urgente" {
			t.Fatalf("comentarios lost: %q", updated.Comentarios)
		}
	})
}

func TestOrderUseCase_ChangeStatus(t *testing.T) {
	admin := entities.Actor{UID: "adm-1", Rol: entities.RoleAdmin}

	t.Run("terminal targets are rejected", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		for _, target := range []entities.OrderStatus{entities.OrderStatusEntregado, entities.OrderStatusCancelado, "Otro"} {
			_, err := uc.ChangeStatus(context.Background(), admin, "ord-1", target)
			if !errors.Is(err, ErrInvalidStatus) {
				t.Fatalf("target %q: expected ErrInvalidStatus, got %v", target, err)
			}
		}
	})

	t.Run("delivered order is frozen", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(
			entities.Order{ID: "ord-1", Estado: entities.OrderStatusEntregado}, nil)

		_, err := uc.ChangeStatus(context.Background(), admin, "ord-1", entities.OrderStatusPendiente)
		if !errors.Is(err, ErrOrderTerminal) {
			t.Fatalf("expected ErrOrderTerminal, got %v", err)
		}
	})

	t.Run("backwards moves among working states are allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(
			entities.Order{ID: "ord-1", Estado: entities.OrderStatusListo}, nil)
		passthroughSave(repo)

		updated, err := uc.ChangeStatus(context.Background(), admin, "ord-1", entities.OrderStatusPendiente)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Estado != entities.OrderStatusPendiente {
			t.Fatalf("expected Pendiente, got %q", updated.Estado)
		}
	})
}

func TestOrderUseCase_Deliver(t *testing.T) {
	admin := entities.Actor{UID: "adm-1", Rol: entities.RoleAdmin}

	t.Run("receiver and date validated before any lookup", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		if _, err := uc.Deliver(context.Background(), admin, "ord-1", "  ", "2025-09-01"); !errors.Is(err, ErrMissingReceiver) {
			t.Fatalf("expected ErrMissingReceiver, got %v", err)
		}
		if _, err := uc.Deliver(context.Background(), admin, "ord-1", "María", ""); !errors.Is(err, ErrMissingDeliveryDate) {
			t.Fatalf("expected ErrMissingDeliveryDate, got %v", err)
		}
	})

	t.Run("only Listo can be delivered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(
			entities.Order{ID: "ord-1", Estado: entities.OrderStatusEnReparacion}, nil)

		_, err := uc.Deliver(context.Background(), admin, "ord-1", "María", "2025-09-01")
		if !errors.Is(err, ErrNotReadyForDelivery) {
			t.Fatalf("expected ErrNotReadyForDelivery, got %v", err)
		}
	})

	t.Run("successful delivery stamps receiver and date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockIChangeNotifier(ctrl)
		uc := NewOrderUseCase(repo, notifier)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(
			entities.Order{ID: "ord-1", Estado: entities.OrderStatusListo}, nil)
		passthroughSave(repo)
		notifier.EXPECT().Publish(events.ChangeUpdated, "ord-1")

		delivered, err := uc.Deliver(context.Background(), admin, "ord-1", " María López ", "2025-09-01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if delivered.Estado != entities.OrderStatusEntregado {
			t.Fatalf("expected Entregado, got %q", delivered.Estado)
		}
		if delivered.QuienRecibe != "María López" || delivered.FechaEntrega != "2025-09-01" {
			t.Fatalf("delivery data not stamped: %q %q", delivered.QuienRecibe, delivered.FechaEntrega)
		}
	})
}

func TestOrderUseCase_Cancel(t *testing.T) {
	admin := entities.Actor{UID: "adm-1", Rol: entities.RoleAdmin}

	t.Run("reason is mandatory", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.Cancel(context.Background(), admin, "ord-1", "   ")
		if !errors.Is(err, ErrMissingCancelReason) {
			t.Fatalf("expected ErrMissingCancelReason, got %v", err)
		}
	})

	t.Run("cancelling twice conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(
			entities.Order{ID: "ord-1", Estado: entities.OrderStatusCancelado}, nil)

		_, err := uc.Cancel(context.Background(), admin, "ord-1", "cliente desistió")
		if !errors.Is(err, ErrOrderCancelled) {
			t.Fatalf("expected ErrOrderCancelled, got %v", err)
		}
	})

	t.Run("successful cancellation stamps reason and date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(
			entities.Order{ID: "ord-1", Estado: entities.OrderStatusPendiente}, nil)
		passthroughSave(repo)

		cancelled, err := uc.Cancel(context.Background(), admin, "ord-1", "cliente desistió")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cancelled.Estado != entities.OrderStatusCancelado {
			t.Fatalf("expected Cancelado, got %q", cancelled.Estado)
		}
		if cancelled.MotivoCancelacion != "cliente desistió" || cancelled.FechaCancelacion == "" {
			t.Fatalf("cancellation data not stamped: %#v", cancelled)
		}
	})
}

func TestOrderUseCase_SignAsTechnician(t *testing.T) {
	t.Run("existing signature blocks re-signing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(
			entities.Order{ID: "ord-1", Estado: entities.OrderStatusListo, FirmaTecnico: "data:image/png;base64,old"}, nil)

		_, err := uc.SignAsTechnician(context.Background(),
			entities.Actor{UID: "adm-1", Rol: entities.RoleAdmin}, "ord-1", "data:image/png;base64,new")
		if !errors.Is(err, ErrAlreadySigned) {
			t.Fatalf("expected ErrAlreadySigned, got %v", err)
		}
	})

	t.Run("assigned technician signs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(
			entities.Order{ID: "ord-1", Estado: entities.OrderStatusListo, TecnicoUID: "tec-1"}, nil)
		passthroughSave(repo)

		signed, err := uc.SignAsTechnician(context.Background(),
			entities.Actor{UID: "tec-1", Rol: entities.RoleTecnico}, "ord-1", "data:image/png;base64,sig")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if signed.FirmaTecnico == "" {
			t.Fatalf("signature not recorded")
		}
	})
}

func TestOrderUseCase_SoftDeleteAndRestore(t *testing.T) {
	admin := entities.Actor{UID: "adm-1", Rol: entities.RoleAdmin}

	t.Run("technicians cannot delete", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.SoftDelete(context.Background(),
			entities.Actor{UID: "tec-1", Rol: entities.RoleTecnico}, "ord-1", "duplicada")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("delete keeps estado and publishes deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockIChangeNotifier(ctrl)
		uc := NewOrderUseCase(repo, notifier)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(
			entities.Order{ID: "ord-1", Estado: entities.OrderStatusEnReparacion}, nil)
		passthroughSave(repo)
		notifier.EXPECT().Publish(events.ChangeDeleted, "ord-1")

		deleted, err := uc.SoftDelete(context.Background(), admin, "ord-1", "duplicada")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !deleted.Eliminado || deleted.MotivoEliminacion != "duplicada" || deleted.FechaEliminacion == "" {
			t.Fatalf("deletion data not stamped: %#v", deleted)
		}
		if deleted.Estado != entities.OrderStatusEnReparacion {
			t.Fatalf("estado must survive deletion, got %q", deleted.Estado)
		}
	})

	t.Run("restore requires a deleted order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(
			entities.Order{ID: "ord-1", Estado: entities.OrderStatusPendiente}, nil)

		_, err := uc.Restore(context.Background(), admin, "ord-1")
		if !errors.Is(err, ErrOrderNotDeleted) {
			t.Fatalf("expected ErrOrderNotDeleted, got %v", err)
		}
	})

	t.Run("restore clears deletion fields and keeps estado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockIChangeNotifier(ctrl)
		uc := NewOrderUseCase(repo, notifier)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{
			ID: "ord-1", Estado: entities.OrderStatusListo,
			Eliminado: true, MotivoEliminacion: "error", FechaEliminacion: "2025-08-01",
		}, nil)
		passthroughSave(repo)
		notifier.EXPECT().Publish(events.ChangeRestored, "ord-1")

		restored, err := uc.Restore(context.Background(), admin, "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if restored.Eliminado || restored.MotivoEliminacion != "" || restored.FechaEliminacion != "" {
			t.Fatalf("deletion fields not cleared: %#v", restored)
		}
		if restored.Estado != entities.OrderStatusListo {
			t.Fatalf("estado must survive restore, got %q", restored.Estado)
		}
	})
}

func TestOrderUseCase_LookupByFolio(t *testing.T) {
	t.Run("blank folio", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.LookupByFolio(context.Background(), " ")
		if !errors.Is(err, ErrInvalidFolio) {
			t.Fatalf("expected ErrInvalidFolio, got %v", err)
		}
	})

	t.Run("deleted orders are hidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByFolio(gomock.Any(), "S25090110").Return(
			entities.Order{ID: "ord-1", Folio: "S25090110", Eliminado: true}, nil)

		_, err := uc.LookupByFolio(context.Background(), "S25090110")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("exposes only the public subset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByFolio(gomock.Any(), "S25090110").Return(entities.Order{
			ID:            "ord-1",
			Folio:         "S25090110",
			Estado:        entities.OrderStatusEnReparacion,
			Cliente:       entities.Cliente{Nombre: "Juan", Telefono: "555"},
			Equipo:        entities.Equipo{Tipo: "Laptop", Marca: "Dell"},
			Contrasena:    "1234",
			TecnicoNombre: "Téc. Mario",
			CostoTotal:    500,
		}, nil)

		view, err := uc.LookupByFolio(context.Background(), "S25090110")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Folio != "S25090110" || view.Estado != entities.OrderStatusEnReparacion {
			t.Fatalf("unexpected view: %#v", view)
		}
		if view.Equipo.Marca != "Dell" || view.CostoTotal != 500 {
			t.Fatalf("unexpected view data: %#v", view)
		}
	})
}
