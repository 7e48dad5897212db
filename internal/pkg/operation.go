package pkg

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/simp-lee/logger"
)

const (
	operationKey   = "operation"
	operationIDKey = "operation_id"
	operationIDLen = 8 // 8 bytes = 16 hex chars
)

var operationIDFallbackCounter atomic.Uint64

// WithOperation tags ctx with a facade operation name and a fresh id.
// Records logged with the returned context through a logger built with
// logger.ContextMiddleware carry both attributes, so a failed statement
// can be traced back to the call that issued it.
func WithOperation(ctx context.Context, name string) context.Context {
	return logger.WithContextAttrs(ctx,
		slog.String(operationKey, name),
		slog.String(operationIDKey, newOperationID()),
	)
}

// OperationID returns the id attached by WithOperation, or "".
func OperationID(ctx context.Context) string {
	var id string
	for _, a := range logger.FromContext(ctx) {
		if a.Key == operationIDKey {
			id = a.Value.String()
		}
	}
	return id
}

func newOperationID() string {
	b := make([]byte, operationIDLen)
	if _, err := rand.Read(b); err != nil {
		binary.BigEndian.PutUint32(b[:4], uint32(time.Now().UnixNano()))
		binary.BigEndian.PutUint32(b[4:], uint32(operationIDFallbackCounter.Add(1)))
	}
	return hex.EncodeToString(b)
}
