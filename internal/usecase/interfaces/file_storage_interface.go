package interfaces

import "context"

// IFileStorage abstracts the blob-storage collaborator used for sharing
// generated documents as links.
type IFileStorage interface {
	Upload(ctx context.Context, orderID, filename string, data []byte) (url string, err error)
}
