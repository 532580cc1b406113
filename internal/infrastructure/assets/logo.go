package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"sieeg_orders/internal/usecase/interfaces"
)

var ErrMissingLogoURL = errors.New("missing LOGO_URL")

// maxLogoBytes bounds the in-memory copy of the fetched image.
const maxLogoBytes = 2 << 20

// HTTPLogoProvider downloads the shop logo once and serves the cached bytes
// for every subsequent document render.
type HTTPLogoProvider struct {
	httpClient *http.Client
	logoURL    string

	mu     sync.Mutex
	cached []byte
}

var _ interfaces.ILogoProvider = (*HTTPLogoProvider)(nil)

func NewHTTPLogoProvider() (*HTTPLogoProvider, error) {
	logoURL := strings.TrimSpace(os.Getenv("LOGO_URL"))
	if logoURL == "" {
		log.Printf("[assets][logo] missing LOGO_URL")
		return nil, ErrMissingLogoURL
	}

	return &HTTPLogoProvider{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logoURL:    logoURL,
	}, nil
}

func (p *HTTPLogoProvider) Fetch(ctx context.Context) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != nil {
		return p.cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.logoURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Printf("[assets][logo] fetch failed err=%v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[assets][logo] fetch failed status=%d", resp.StatusCode)
		return nil, fmt.Errorf("logo fetch returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes))
	if err != nil {
		return nil, err
	}
	log.Printf("[assets][logo] fetch success size=%d", len(data))

	p.cached = data
	return data, nil
}
