package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"sieeg_orders/internal/document"
	"sieeg_orders/internal/domain/entities"
	"sieeg_orders/internal/usecase/interfaces"
)

var ErrStorageNotConfigured = errors.New("file storage not configured")

// defaultPublicBaseURL is the shop site the printed lookup URL points at
// when PUBLIC_BASE_URL is not set.
const defaultPublicBaseURL = "https://sieeg.com.mx"

// IDocumentUseCase produces the printable artifacts for an order. Rendering
// is independent of how the result is consumed: the same bytes serve
// download, print and link-sharing.

type IDocumentUseCase interface {
	RenderOrderDocument(ctx context.Context, id string) (data []byte, filename string, err error)
	RenderTicketDocument(ctx context.Context, id string) (data []byte, filename string, err error)
	ShareOrderDocument(ctx context.Context, id string) (url string, err error)
}

type DocumentUseCase struct {
	repo          interfaces.IOrderRepository
	storage       interfaces.IFileStorage
	logo          interfaces.ILogoProvider
	publicBaseURL string
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(repo interfaces.IOrderRepository, storage interfaces.IFileStorage, logo interfaces.ILogoProvider, publicBaseURL string) *DocumentUseCase {
	publicBaseURL = strings.TrimSpace(publicBaseURL)
	if publicBaseURL == "" {
		publicBaseURL = defaultPublicBaseURL
	}
	return &DocumentUseCase{repo: repo, storage: storage, logo: logo, publicBaseURL: publicBaseURL}
}

// RenderOrderDocument renders the full order document (or the foreign
// maintenance variant, decided by the order's work-log classification).
func (u *DocumentUseCase) RenderOrderDocument(ctx context.Context, id string) ([]byte, string, error) {
	o, err := u.getOrder(ctx, id)
	if err != nil {
		return nil, "", err
	}

	data, err := document.RenderOrder(&o, u.fetchLogo(ctx))
	if err != nil {
		return nil, "", err
	}
	return data, documentFilename("Orden", o.Folio), nil
}

func (u *DocumentUseCase) RenderTicketDocument(ctx context.Context, id string) ([]byte, string, error) {
	o, err := u.getOrder(ctx, id)
	if err != nil {
		return nil, "", err
	}

	data, err := document.RenderTicket(&o, u.fetchLogo(ctx), u.publicBaseURL)
	if err != nil {
		return nil, "", err
	}
	return data, documentFilename("Ticket", o.Folio), nil
}

// ShareOrderDocument renders the order document, uploads it to the blob
// storage collaborator and returns the shareable URL.
func (u *DocumentUseCase) ShareOrderDocument(ctx context.Context, id string) (string, error) {
	if u.storage == nil {
		return "", ErrStorageNotConfigured
	}

	data, filename, err := u.RenderOrderDocument(ctx, id)
	if err != nil {
		return "", err
	}

	url, err := u.storage.Upload(ctx, strings.TrimSpace(id), filename, data)
	if err != nil {
		log.Printf("[document][usecase] upload failed order_id=%s err=%v", id, err)
		return "", err
	}
	log.Printf("[document][usecase] document shared order_id=%s url=%s", id, url)
	return url, nil
}

func (u *DocumentUseCase) getOrder(ctx context.Context, id string) (entities.Order, error) {
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

// fetchLogo is best-effort: rendering proceeds without the logo when the
// fetch fails or no provider is wired.
func (u *DocumentUseCase) fetchLogo(ctx context.Context) []byte {
	if u.logo == nil {
		return nil
	}
	logo, err := u.logo.Fetch(ctx)
	if err != nil {
		log.Printf("[document][usecase] logo fetch failed, rendering without logo err=%v", err)
		return nil
	}
	return logo
}

func documentFilename(kind, folio string) string {
	if folio == "" {
		folio = "servicio"
	}
	return fmt.Sprintf("%s_%s.pdf", kind, folio)
}
