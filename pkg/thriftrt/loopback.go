package thriftrt

import (
	"context"
	"io"
	"log/slog"

	"github.com/apache/thrift/lib/go/thrift"
)

// Processor is implemented by every generated service processor.
type Processor interface {
	Process(ctx context.Context, iprot, oprot thrift.TProtocol) error
}

type loopbackOptions struct {
	log *slog.Logger
}

type LoopbackOption func(*loopbackOptions)

func WithLogger(log *slog.Logger) LoopbackOption {
	return func(o *loopbackOptions) {
		o.log = log
	}
}

// NewLoopback returns a Connection that hands every request to proc in the
// calling goroutine and returns whatever proc wrote back.
func NewLoopback(proc Processor, pf thrift.TProtocolFactory, opts ...LoopbackOption) Connection {
	o := loopbackOptions{
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(&o)
	}

	var conn *connection

	conn = &connection{
		pf: pf,
		send: func(ctx context.Context, data []byte) ([]byte, error) {
			out := conn.Transport()

			iprot := conn.Protocol(conn.Receive(data))
			oprot := conn.Protocol(out)

			if err := proc.Process(ctx, iprot, oprot); err != nil {
				o.log.Error("loopback process errored", "error", err)
				return nil, err
			}

			o.log.Debug("loopback call processed", "request", len(data), "response", len(out.Bytes()))

			return out.Bytes(), nil
		},
	}

	if conn.pf == nil {
		conn.pf = thrift.NewTBinaryProtocolFactoryDefault()
	}

	return conn
}
