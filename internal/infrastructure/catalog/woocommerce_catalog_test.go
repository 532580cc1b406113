package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testCatalog(t *testing.T, baseURL string) *WooCommerceCatalog {
	t.Helper()
	t.Setenv("WOOCOMMERCE_URL", baseURL)
	t.Setenv("WOOCOMMERCE_CONSUMER_KEY", "ck_test")
	t.Setenv("WOOCOMMERCE_CONSUMER_SECRET", "cs_test")

	c, err := NewWooCommerceCatalog()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestNewWooCommerceCatalog_MissingConfig(t *testing.T) {
	t.Setenv("WOOCOMMERCE_URL", "")
	t.Setenv("WOOCOMMERCE_CONSUMER_KEY", "")
	t.Setenv("WOOCOMMERCE_CONSUMER_SECRET", "")

	if _, err := NewWooCommerceCatalog(); err == nil {
		t.Fatalf("expected configuration error")
	}
}

func TestWooCommerceCatalog_Search(t *testing.T) {
	t.Run("maps products and sends credentials", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/wp-json/wc/v3/products" {
				t.Fatalf("unexpected path %q", r.URL.Path)
			}
			if got := r.URL.Query().Get("search"); got != "pantalla rota" {
				t.Fatalf("unexpected search %q", got)
			}
			user, pass, ok := r.BasicAuth()
			if !ok || user != "ck_test" || pass != "cs_test" {
				t.Fatalf("missing basic auth credentials")
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"id":101,"name":"Pantalla iPhone","sku":"PAN-12","price":"1800.50","images":[{"src":"https://cdn/img.png"}]},
				{"id":102,"name":"Mica","sku":"","price":"","images":[]}
			]`))
		}))
		defer srv.Close()

		c := testCatalog(t, srv.URL)
		products, err := c.Search(context.Background(), "pantalla rota")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(products) != 2 {
			t.Fatalf("expected 2 products, got %d", len(products))
		}
		if products[0].ID != "101" || products[0].Precio != 1800.50 || products[0].Imagen != "https://cdn/img.png" {
			t.Fatalf("unexpected product: %#v", products[0])
		}
		if products[1].Precio != 0 || products[1].Imagen != "" {
			t.Fatalf("empty price/image should map to zero values: %#v", products[1])
		}
	})

	t.Run("non 200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		}))
		defer srv.Close()

		c := testCatalog(t, srv.URL)
		if _, err := c.Search(context.Background(), "x"); err == nil {
			t.Fatalf("expected error on 401")
		}
	})
}
