package tutorial

import (
	"bytes"
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/apache/thrift/lib/go/thrift"
	"github.com/stretchr/testify/require"
	"miren.dev/thriftgen/pkg/thriftrt"
	"miren.dev/thriftgen/pkg/thriftrt/example/shared"
)

var errOverloaded = errors.New("calculator overloaded")

// calculator implements ScientificCalculatorHandler, and so the handlers of
// every service it extends.
type calculator struct {
	mu     sync.Mutex
	pings  int
	zipped int
	logs   map[int32]int32
}

var _ ScientificCalculatorHandler = (*calculator)(nil)

func newCalculator() *calculator {
	return &calculator{logs: map[int32]int32{}}
}

func (c *calculator) GetStruct(ctx context.Context, key int32) (*shared.SharedStruct, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.logs[key]
	if !ok {
		return nil, errors.New("no such log entry")
	}

	return &shared.SharedStruct{
		Key:   thriftrt.Ptr(key),
		Value: thriftrt.Ptr(Operation(v).String()),
	}, nil
}

func (c *calculator) Add(ctx context.Context, a int32, b int32) (int32, error) {
	return a + b, nil
}

func (c *calculator) Ping(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pings++
	return nil
}

func (c *calculator) Calculate(ctx context.Context, logid int32, w *Work) (int32, error) {
	if w.GetComment() == "busy" {
		return 0, &Unavailable{Reason: thriftrt.Ptr("try later")}
	}

	if w.GetComment() == "overload" {
		return 0, errOverloaded
	}

	if w.GetComment() == "panic" {
		panic("calculator on fire")
	}

	if w.GetComment() == "nil" {
		var ouch *InvalidOperation
		return 0, ouch
	}

	var ret int32

	switch w.GetOp() {
	case OperationAdd:
		ret = w.GetNum1() + w.GetNum2()
	case OperationSubtract:
		ret = w.GetNum1() - w.GetNum2()
	case OperationMultiply:
		ret = w.GetNum1() * w.GetNum2()
	case OperationDivide:
		if w.GetNum2() == 0 {
			return 0, &InvalidOperation{
				WhatOp: thriftrt.Ptr(int32(w.GetOp())),
				Why:    thriftrt.Ptr("Cannot divide by 0"),
			}
		}
		ret = w.GetNum1() / w.GetNum2()
	default:
		return 0, &InvalidOperation{
			WhatOp: thriftrt.Ptr(int32(w.GetOp())),
			Why:    thriftrt.Ptr("Invalid operation"),
		}
	}

	c.mu.Lock()
	c.logs[logid] = int32(w.GetOp())
	c.mu.Unlock()

	return ret, nil
}

// Echo answers through a future to exercise handlers that complete
// asynchronously.
func (c *calculator) Echo(ctx context.Context, e *Everything) (*Everything, error) {
	f := thriftrt.NewFuture[*Everything]()

	go func() {
		if e == nil {
			f.Reject(errors.New("nothing to echo"))
			return
		}
		f.Resolve(e)
	}()

	return f.Await(ctx)
}

func (c *calculator) Zip(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.zipped++
	return nil
}

func (c *calculator) Power(ctx context.Context, base float64, exp MyInteger) (float64, error) {
	return math.Pow(base, float64(exp)), nil
}

func (c *calculator) Check(ctx context.Context, v *Value) (Operation, error) {
	if err := v.Validate(); err != nil {
		return 0, err
	}

	// check declares no exceptions, so this one reaches the peer as text.
	if v.GetText() == "stray" {
		return 0, &InvalidOperation{
			WhatOp: thriftrt.Ptr(int32(OperationDivide)),
			Why:    thriftrt.Ptr("nope"),
		}
	}

	if v.HasText() {
		return OperationFromString(v.GetText())
	}

	return Operation(v.GetNumber()), nil
}

func protocols() map[string]thrift.TProtocolFactory {
	return map[string]thrift.TProtocolFactory{
		"binary":  thrift.NewTBinaryProtocolFactoryDefault(),
		"compact": thrift.NewTCompactProtocolFactory(),
	}
}

// encode runs fn against a fresh protocol and returns the flushed bytes.
func encode(t *testing.T, pf thrift.TProtocolFactory, fn func(ctx context.Context, oprot thrift.TProtocol) error) []byte {
	t.Helper()

	ctx := context.Background()

	buf := thrift.NewTMemoryBuffer()
	oprot := pf.GetProtocol(buf)

	require.NoError(t, fn(ctx, oprot))
	require.NoError(t, oprot.Flush(ctx))

	return buf.Bytes()
}

func decoder(pf thrift.TProtocolFactory, data []byte) thrift.TProtocol {
	return pf.GetProtocol(&thrift.TMemoryBuffer{Buffer: bytes.NewBuffer(data)})
}
