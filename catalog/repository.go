package catalog

import "context"

/* Small interfaces. Persistence is a full dump at shutdown and a full
 * reload at startup, there are no incremental writes.
 */

type Reader interface {
	Load(ctx context.Context) (Snapshot, error)
}

type Writer interface {
	Save(ctx context.Context, snapshot Snapshot) error
}

type Repository interface {
	Reader
	Writer
	Close(ctx context.Context) error
}
