package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"sieeg_orders/internal/domain/entities"
	"sieeg_orders/internal/usecase/interfaces"
)

var ErrMissingWooCommerceConfig = errors.New("missing WOOCOMMERCE_URL or consumer credentials")

const defaultSearchLimit = 10

// WooCommerceCatalog queries a WooCommerce store's REST API for products,
// backing the parts-used autocomplete.
//
// Required env vars:
//   - WOOCOMMERCE_URL (store base, e.g. https://tienda.example.com)
//   - WOOCOMMERCE_CONSUMER_KEY
//   - WOOCOMMERCE_CONSUMER_SECRET
type WooCommerceCatalog struct {
	httpClient     *http.Client
	baseURL        string
	consumerKey    string
	consumerSecret string
}

var _ interfaces.IProductCatalog = (*WooCommerceCatalog)(nil)

func NewWooCommerceCatalog() (*WooCommerceCatalog, error) {
	baseURL := strings.TrimSuffix(strings.TrimSpace(os.Getenv("WOOCOMMERCE_URL")), "/")
	key := strings.TrimSpace(os.Getenv("WOOCOMMERCE_CONSUMER_KEY"))
	secret := strings.TrimSpace(os.Getenv("WOOCOMMERCE_CONSUMER_SECRET"))

	if baseURL == "" || key == "" || secret == "" {
		log.Printf("[catalog][woocommerce] missing store configuration")
		return nil, ErrMissingWooCommerceConfig
	}
	log.Printf("[catalog][woocommerce] client initialized store=%s", baseURL)

	return &WooCommerceCatalog{
		httpClient:     &http.Client{Timeout: 15 * time.Second},
		baseURL:        baseURL,
		consumerKey:    key,
		consumerSecret: secret,
	}, nil
}

type wooProduct struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	SKU   string `json:"sku"`
	Price string `json:"price"`

	Images []struct {
		Src string `json:"src"`
	} `json:"images"`
}

func (c *WooCommerceCatalog) Search(ctx context.Context, query string) ([]entities.Product, error) {
	endpoint := fmt.Sprintf("%s/wp-json/wc/v3/products?search=%s&per_page=%d",
		c.baseURL, url.QueryEscape(query), defaultSearchLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.consumerKey, c.consumerSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[catalog][woocommerce] search request failed err=%v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("[catalog][woocommerce] search failed status=%d body=%s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("woocommerce search returned status %d", resp.StatusCode)
	}

	var raw []wooProduct
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		log.Printf("[catalog][woocommerce] response decode failed err=%v", err)
		return nil, err
	}

	products := make([]entities.Product, 0, len(raw))
	for _, p := range raw {
		precio, _ := strconv.ParseFloat(p.Price, 64)

		imagen := ""
		if len(p.Images) > 0 {
			imagen = p.Images[0].Src
		}

		products = append(products, entities.Product{
			ID:     strconv.Itoa(p.ID),
			Nombre: p.Name,
			SKU:    p.SKU,
			Precio: precio,
			Imagen: imagen,
		})
	}
	log.Printf("[catalog][woocommerce] search success query=%q results=%d", query, len(products))

	return products, nil
}
