package thriftrt

import (
	"context"
	"sync"
	"testing"

	"github.com/apache/thrift/lib/go/thrift"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestClient(t *testing.T) {
	t.Run("starts sequence ids at one", func(t *testing.T) {
		r := require.New(t)

		c := NewClient(nil)
		r.Equal(int32(0), c.LastSeqID())
		r.Equal(int32(1), c.NextSeqID())
		r.Equal(int32(2), c.NextSeqID())
		r.Equal(int32(2), c.LastSeqID())
	})

	t.Run("never hands out the same id twice", func(t *testing.T) {
		r := require.New(t)

		c := NewClient(nil)

		var (
			mu   sync.Mutex
			seen = map[int32]struct{}{}
			eg   errgroup.Group
		)

		for range 64 {
			eg.Go(func() error {
				id := c.NextSeqID()

				mu.Lock()
				defer mu.Unlock()

				seen[id] = struct{}{}
				return nil
			})
		}

		r.NoError(eg.Wait())
		r.Len(seen, 64)
		r.Equal(int32(64), c.LastSeqID())
	})
}

func TestConnection(t *testing.T) {
	t.Run("can pass flushed bytes to send", func(t *testing.T) {
		r := require.New(t)
		ctx := context.Background()

		var sent []byte

		conn := NewConnection(nil, func(ctx context.Context, data []byte) ([]byte, error) {
			sent = data
			return []byte("reply"), nil
		})

		out := conn.Transport()
		oprot := conn.Protocol(out)
		r.NoError(oprot.WriteMessageBegin(ctx, "ping", thrift.CALL, 7))
		r.NoError(oprot.WriteMessageEnd(ctx))
		r.NoError(oprot.Flush(ctx))

		reply, err := conn.Send(ctx, out.Bytes())
		r.NoError(err)
		r.Equal([]byte("reply"), reply)

		iprot := conn.Protocol(conn.Receive(sent))
		name, mtype, seqID, err := iprot.ReadMessageBegin(ctx)
		r.NoError(err)
		r.Equal("ping", name)
		r.Equal(thrift.CALL, mtype)
		r.Equal(int32(7), seqID)
	})

	t.Run("knows the binary and compact protocols", func(t *testing.T) {
		r := require.New(t)

		_, ok := ProtocolFactory("binary")
		r.True(ok)

		_, ok = ProtocolFactory("compact")
		r.True(ok)

		_, ok = ProtocolFactory("json")
		r.False(ok)
	})
}
