package output

import (
	"context"

	"github.com/seqworks/toxotype/internal/model"
)

// Output defines the interface for toxinotype report destinations.
type Output interface {
	Write(ctx context.Context, result model.Result) error
	Close() error
}
