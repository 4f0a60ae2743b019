package thriftrt

import (
	"bytes"
	"context"

	"github.com/apache/thrift/lib/go/thrift"
)

//go:generate go run go.uber.org/mock/mockgen -destination=thriftrtmock/connection.go -package=thriftrtmock miren.dev/thriftgen/pkg/thriftrt Connection

// Transport is the write side of a single call. Bytes returns everything
// written and flushed so far.
type Transport interface {
	thrift.TTransport
	Bytes() []byte
}

// Connection is what generated clients talk to. Each call asks for a fresh
// Transport, wraps it with Protocol, and hands the flushed bytes to Send.
type Connection interface {
	Transport() Transport
	Receive(data []byte) thrift.TTransport
	Protocol(trans thrift.TTransport) thrift.TProtocol
	Send(ctx context.Context, data []byte) ([]byte, error)
}

type SendFunc func(ctx context.Context, data []byte) ([]byte, error)

type connection struct {
	pf   thrift.TProtocolFactory
	send SendFunc
}

var _ Connection = (*connection)(nil)

// NewConnection builds a Connection that frames calls with pf and passes the
// encoded request to send.
func NewConnection(pf thrift.TProtocolFactory, send SendFunc) Connection {
	if pf == nil {
		pf = thrift.NewTBinaryProtocolFactoryDefault()
	}

	return &connection{pf: pf, send: send}
}

func (c *connection) Transport() Transport {
	return thrift.NewTMemoryBuffer()
}

func (c *connection) Receive(data []byte) thrift.TTransport {
	return &thrift.TMemoryBuffer{Buffer: bytes.NewBuffer(data)}
}

func (c *connection) Protocol(trans thrift.TTransport) thrift.TProtocol {
	return c.pf.GetProtocol(trans)
}

func (c *connection) Send(ctx context.Context, data []byte) ([]byte, error) {
	return c.send(ctx, data)
}

// ProtocolFactory maps a protocol name to its factory. The empty name is
// the binary protocol.
func ProtocolFactory(name string) (thrift.TProtocolFactory, bool) {
	switch name {
	case "", "binary":
		return thrift.NewTBinaryProtocolFactoryDefault(), true
	case "compact":
		return thrift.NewTCompactProtocolFactory(), true
	default:
		return nil, false
	}
}
