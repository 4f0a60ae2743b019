package thriftrt

import (
	"context"

	"github.com/apache/thrift/lib/go/thrift"
)

// Message is a message body: an args or result envelope, or an
// application exception.
type Message interface {
	Write(ctx context.Context, oprot thrift.TProtocol) error
}

// WriteMessage frames body as one message and flushes oprot.
func WriteMessage(ctx context.Context, oprot thrift.TProtocol, name string, mtype thrift.TMessageType, seqID int32, body Message) error {
	if err := oprot.WriteMessageBegin(ctx, name, mtype, seqID); err != nil {
		return err
	}

	if err := body.Write(ctx, oprot); err != nil {
		return err
	}

	if err := oprot.WriteMessageEnd(ctx); err != nil {
		return err
	}

	return oprot.Flush(ctx)
}
