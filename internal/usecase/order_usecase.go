package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"sieeg_orders/internal/domain/entities"
	"sieeg_orders/internal/events"
	"sieeg_orders/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidFolio         = errors.New("invalid folio")
	ErrMissingClienteNombre = errors.New("missing customer name")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrOrderCancelled       = errors.New("order is cancelled and read-only")
	ErrOrderTerminal        = errors.New("order is in a terminal status")
	ErrNotReadyForDelivery  = errors.New("order is not ready for delivery")
	ErrMissingReceiver      = errors.New("missing receiver name")
	ErrMissingDeliveryDate  = errors.New("missing delivery date")
	ErrMissingCancelReason  = errors.New("missing cancellation reason")
	ErrMissingSignature     = errors.New("missing signature image")
	ErrAlreadySigned        = errors.New("order already carries a technician signature")
	ErrOrderNotDeleted      = errors.New("order is not deleted")
	ErrForbidden            = errors.New("actor is not allowed to perform this operation")
)

// CreateOrderInput is the order-creation payload. Folio is optional; when
// empty one is generated. Status, timestamps and the derived total are
// always assigned here, never taken from the caller.
type CreateOrderInput struct {
	Folio            string
	Cliente          entities.Cliente
	Equipo           entities.Equipo
	Accesorios       entities.Accesorios
	Contrasena       string
	DescripcionFalla string
	Comentarios      string
	Trabajos         entities.WorkLog
	Piezas           []entities.Pieza
	TecnicoUID       string
	TecnicoNombre    string
	FechaIngreso     string
	FechaEstimada    string
}

// ContentPatch carries partial edits to an order's content fields. Nil
// pointers leave the field untouched. Status and delivery/cancellation data
// are deliberately absent: those move only through their transitions.
type ContentPatch struct {
	Diagnostico       *string
	DescripcionFalla  *string
	Comentarios       *string
	Trabajos          *entities.WorkLog
	Piezas            *[]entities.Pieza
	TecnicoUID        *string
	TecnicoNombre     *string
	FirmaCliente      *string
	FechaEstimada     *string
	FechaFinalizacion *string
}

// PublicOrderView is the folio-lookup subset exposed to customers.
type PublicOrderView struct {
	Folio            string               `json:"folio"`
	Estado           entities.OrderStatus `json:"estado"`
	FechaIngreso     string               `json:"fechaIngreso,omitempty"`
	TecnicoNombre    string               `json:"tecnicoNombre,omitempty"`
	Equipo           entities.Equipo      `json:"equipo"`
	DescripcionFalla string               `json:"descripcionFalla,omitempty"`
	PiezasUsadas     []entities.Pieza     `json:"piezasUsadas"`
	CostoTotal       float64              `json:"costoTotal"`
}

// IOrderUseCase exposes the order lifecycle:
//   - creation (folio + Pendiente + timestamps)
//   - content edits, gated by PermissionsFor and the Cancelado freeze
//   - status reassignment among non-terminal states
//   - the two guarded transitions: Listo→Entregado and →Cancelado
//   - soft delete / restore, orthogonal to status
//   - the public folio lookup

type IOrderUseCase interface {
	Create(ctx context.Context, in CreateOrderInput) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	ListDeleted(ctx context.Context) ([]entities.Order, error)
	UpdateContent(ctx context.Context, actor entities.Actor, id string, patch ContentPatch) (entities.Order, error)
	ChangeStatus(ctx context.Context, actor entities.Actor, id string, status entities.OrderStatus) (entities.Order, error)
	Deliver(ctx context.Context, actor entities.Actor, id, quienRecibe, fechaEntrega string) (entities.Order, error)
	Cancel(ctx context.Context, actor entities.Actor, id, motivo string) (entities.Order, error)
	SignAsTechnician(ctx context.Context, actor entities.Actor, id, firma string) (entities.Order, error)
	SoftDelete(ctx context.Context, actor entities.Actor, id, motivo string) (entities.Order, error)
	Restore(ctx context.Context, actor entities.Actor, id string) (entities.Order, error)
	LookupByFolio(ctx context.Context, folio string) (PublicOrderView, error)
}

type OrderUseCase struct {
	repo     interfaces.IOrderRepository
	notifier interfaces.IChangeNotifier
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, notifier interfaces.IChangeNotifier) *OrderUseCase {
	return &OrderUseCase{repo: repo, notifier: notifier}
}

func (u *OrderUseCase) Create(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	if strings.TrimSpace(in.Cliente.Nombre) == "" {
		return entities.Order{}, ErrMissingClienteNombre
	}

	folio := strings.TrimSpace(in.Folio)
	if folio == "" {
		folio = entities.GenerateFolio()
	}

	now := time.Now().UnixMilli()
	o := entities.Order{
		ID:                 uuid.NewString(),
		Folio:              folio,
		Estado:             entities.OrderStatusPendiente,
		Cliente:            in.Cliente,
		Equipo:             in.Equipo,
		Accesorios:         in.Accesorios,
		Contrasena:         in.Contrasena,
		DescripcionFalla:   in.DescripcionFalla,
		Comentarios:        in.Comentarios,
		TrabajosRealizados: in.Trabajos,
		PiezasUsadas:       in.Piezas,
		TecnicoUID:         in.TecnicoUID,
		TecnicoNombre:      in.TecnicoNombre,
		FechaIngreso:       in.FechaIngreso,
		FechaEstimada:      in.FechaEstimada,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	o.RecalcularTotal()

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	u.publish(events.ChangeCreated, created.ID)
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) List(ctx context.Context) ([]entities.Order, error) {
	return u.repo.List(ctx)
}

func (u *OrderUseCase) ListDeleted(ctx context.Context) ([]entities.Order, error) {
	return u.repo.ListDeleted(ctx)
}

func (u *OrderUseCase) UpdateContent(ctx context.Context, actor entities.Actor, id string, patch ContentPatch) (entities.Order, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.Estado == entities.OrderStatusCancelado {
		return entities.Order{}, ErrOrderCancelled
	}
	if !entities.PermissionsFor(actor, o).CanEditContent {
		return entities.Order{}, ErrForbidden
	}

	if patch.Diagnostico != nil {
		o.Diagnostico = *patch.Diagnostico
	}
	if patch.DescripcionFalla != nil {
		o.DescripcionFalla = *patch.DescripcionFalla
	}
	if patch.Comentarios != nil {
		o.Comentarios = *patch.Comentarios
	}
	if patch.Trabajos != nil {
		o.TrabajosRealizados = *patch.Trabajos
	}
	if patch.Piezas != nil {
		o.PiezasUsadas = *patch.Piezas
		o.RecalcularTotal()
	}
	if patch.TecnicoUID != nil {
		o.TecnicoUID = *patch.TecnicoUID
	}
	if patch.TecnicoNombre != nil {
		o.TecnicoNombre = *patch.TecnicoNombre
	}
	if patch.FirmaCliente != nil {
		o.FirmaCliente = *patch.FirmaCliente
	}
	if patch.FechaEstimada != nil {
		o.FechaEstimada = *patch.FechaEstimada
	}
	if patch.FechaFinalizacion != nil {
		o.FechaFinalizacion = *patch.FechaFinalizacion
	}

	return u.save(ctx, o)
}

func (u *OrderUseCase) ChangeStatus(ctx context.Context, actor entities.Actor, id string, status entities.OrderStatus) (entities.Order, error) {
	if !status.IsAssignable() {
		return entities.Order{}, ErrInvalidStatus
	}

	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.Estado == entities.OrderStatusCancelado {
		return entities.Order{}, ErrOrderCancelled
	}
	if o.Estado.IsTerminal() {
		return entities.Order{}, ErrOrderTerminal
	}
	if !entities.PermissionsFor(actor, o).CanChangeStatus {
		return entities.Order{}, ErrForbidden
	}

	o.Estado = status
	return u.save(ctx, o)
}

// Deliver commits Listo → Entregado. Both the receiver name and the delivery
// date are validated before any persistence call; no partial transition is
// possible.
func (u *OrderUseCase) Deliver(ctx context.Context, actor entities.Actor, id, quienRecibe, fechaEntrega string) (entities.Order, error) {
	quienRecibe = strings.TrimSpace(quienRecibe)
	fechaEntrega = strings.TrimSpace(fechaEntrega)
	if quienRecibe == "" {
		return entities.Order{}, ErrMissingReceiver
	}
	if fechaEntrega == "" {
		return entities.Order{}, ErrMissingDeliveryDate
	}

	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.Estado == entities.OrderStatusCancelado {
		return entities.Order{}, ErrOrderCancelled
	}
	if o.Estado != entities.OrderStatusListo {
		return entities.Order{}, ErrNotReadyForDelivery
	}
	if !entities.PermissionsFor(actor, o).CanDeliver {
		return entities.Order{}, ErrForbidden
	}

	o.Estado = entities.OrderStatusEntregado
	o.QuienRecibe = quienRecibe
	o.FechaEntrega = fechaEntrega
	return u.save(ctx, o)
}

// Cancel commits a non-terminal order to Cancelado, stamping the reason and
// the current date. The record becomes read-only afterwards.
func (u *OrderUseCase) Cancel(ctx context.Context, actor entities.Actor, id, motivo string) (entities.Order, error) {
	motivo = strings.TrimSpace(motivo)
	if motivo == "" {
		return entities.Order{}, ErrMissingCancelReason
	}

	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.Estado == entities.OrderStatusCancelado {
		return entities.Order{}, ErrOrderCancelled
	}
	if o.Estado.IsTerminal() {
		return entities.Order{}, ErrOrderTerminal
	}
	if !entities.PermissionsFor(actor, o).CanCancel {
		return entities.Order{}, ErrForbidden
	}

	o.Estado = entities.OrderStatusCancelado
	o.MotivoCancelacion = motivo
	o.FechaCancelacion = time.Now().Format("2006-01-02")
	return u.save(ctx, o)
}

func (u *OrderUseCase) SignAsTechnician(ctx context.Context, actor entities.Actor, id, firma string) (entities.Order, error) {
	if strings.TrimSpace(firma) == "" {
		return entities.Order{}, ErrMissingSignature
	}

	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.Estado == entities.OrderStatusCancelado {
		return entities.Order{}, ErrOrderCancelled
	}
	if o.FirmaTecnico != "" {
		return entities.Order{}, ErrAlreadySigned
	}
	if !entities.PermissionsFor(actor, o).CanSign {
		return entities.Order{}, ErrForbidden
	}

	o.FirmaTecnico = firma
	return u.save(ctx, o)
}

// SoftDelete marks an order eliminated with a reason; it disappears from the
// normal listing but stays recoverable. Estado is untouched.
func (u *OrderUseCase) SoftDelete(ctx context.Context, actor entities.Actor, id, motivo string) (entities.Order, error) {
	if actor.Rol != entities.RoleAdmin {
		return entities.Order{}, ErrForbidden
	}

	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	o.Eliminado = true
	o.MotivoEliminacion = strings.TrimSpace(motivo)
	o.FechaEliminacion = time.Now().Format("2006-01-02")

	saved, err := u.saveQuiet(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	u.publish(events.ChangeDeleted, saved.ID)
	return saved, nil
}

func (u *OrderUseCase) Restore(ctx context.Context, actor entities.Actor, id string) (entities.Order, error) {
	if actor.Rol != entities.RoleAdmin {
		return entities.Order{}, ErrForbidden
	}

	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if !o.Eliminado {
		return entities.Order{}, ErrOrderNotDeleted
	}

	o.Eliminado = false
	o.MotivoEliminacion = ""
	o.FechaEliminacion = ""

	saved, err := u.saveQuiet(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	u.publish(events.ChangeRestored, saved.ID)
	return saved, nil
}

func (u *OrderUseCase) LookupByFolio(ctx context.Context, folio string) (PublicOrderView, error) {
	folio = strings.TrimSpace(folio)
	if folio == "" {
		return PublicOrderView{}, ErrInvalidFolio
	}

	o, err := u.repo.GetByFolio(ctx, folio)
	if err != nil {
		return PublicOrderView{}, err
	}
	if o.ID == "" || o.Eliminado {
		return PublicOrderView{}, ErrOrderNotFound
	}

	return PublicOrderView{
		Folio:            o.Folio,
		Estado:           o.Estado,
		FechaIngreso:     o.FechaIngreso,
		TecnicoNombre:    o.TecnicoNombre,
		Equipo:           o.Equipo,
		DescripcionFalla: o.DescripcionFalla,
		PiezasUsadas:     o.PiezasUsadas,
		CostoTotal:       o.CostoTotal,
	}, nil
}

func (u *OrderUseCase) save(ctx context.Context, o entities.Order) (entities.Order, error) {
	saved, err := u.saveQuiet(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	u.publish(events.ChangeUpdated, saved.ID)
	return saved, nil
}

func (u *OrderUseCase) saveQuiet(ctx context.Context, o entities.Order) (entities.Order, error) {
	o.UpdatedAt = time.Now().UnixMilli()
	saved, err := u.repo.Save(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	if saved.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return saved, nil
}

func (u *OrderUseCase) publish(t events.ChangeType, orderID string) {
	if u.notifier == nil {
		return
	}
	u.notifier.Publish(t, orderID)
	log.Printf("[orders][usecase] change published type=%s order_id=%s", t, orderID)
}
