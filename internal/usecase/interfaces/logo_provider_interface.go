package interfaces

import "context"

// ILogoProvider fetches the shop logo embedded in generated documents.
// A failed fetch is never fatal to rendering; documents degrade to no logo.
type ILogoProvider interface {
	Fetch(ctx context.Context) ([]byte, error)
}
