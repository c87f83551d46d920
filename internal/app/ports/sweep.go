package ports

import (
	"context"
	"time"
)

type SweeperPort interface {
	Run(ctx context.Context, now time.Time)
}
