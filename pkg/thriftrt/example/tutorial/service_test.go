package tutorial

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/apache/thrift/lib/go/thrift"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"
	"miren.dev/thriftgen/pkg/thriftrt"
	"miren.dev/thriftgen/pkg/thriftrt/thriftrtmock"
)

func TestProcessor(t *testing.T) {
	for pname, pf := range protocols() {
		t.Run(pname, func(t *testing.T) {
			t.Run("replies to ping with the call's sequence id", func(t *testing.T) {
				r := require.New(t)
				ctx := context.Background()

				h := newCalculator()
				proc := NewCalculatorProcessor(h)

				call := encode(t, pf, func(ctx context.Context, oprot thrift.TProtocol) error {
					return thriftrt.WriteMessage(ctx, oprot, "ping", thrift.CALL, 7, &CalculatorPingArgs{})
				})

				out := thrift.NewTMemoryBuffer()
				r.NoError(proc.Process(ctx, decoder(pf, call), pf.GetProtocol(out)))

				r.Equal(1, h.pings)

				iprot := decoder(pf, out.Bytes())

				name, mtype, seqID, err := iprot.ReadMessageBegin(ctx)
				r.NoError(err)
				r.Equal("ping", name)
				r.Equal(thrift.REPLY, mtype)
				r.Equal(int32(7), seqID)

				// A void result carries no fields at all.
				_, err = iprot.ReadStructBegin(ctx)
				r.NoError(err)
				_, fieldType, _, err := iprot.ReadFieldBegin(ctx)
				r.NoError(err)
				r.Equal(thrift.TType(thrift.STOP), fieldType)
			})

			t.Run("answers an unknown function with UNKNOWN_METHOD", func(t *testing.T) {
				r := require.New(t)
				ctx := context.Background()

				proc := NewScientificCalculatorProcessor(newCalculator())

				call := encode(t, pf, func(ctx context.Context, oprot thrift.TProtocol) error {
					return thriftrt.WriteMessage(ctx, oprot, "frobnicate", thrift.CALL, 3, &CalculatorCalculateArgs{
						Logid: thriftrt.Ptr(int32(1)),
					})
				})

				out := thrift.NewTMemoryBuffer()
				r.NoError(proc.Process(ctx, decoder(pf, call), pf.GetProtocol(out)))

				iprot := decoder(pf, out.Bytes())

				name, mtype, seqID, err := iprot.ReadMessageBegin(ctx)
				r.NoError(err)
				r.Equal("frobnicate", name)
				r.Equal(thrift.EXCEPTION, mtype)
				r.Equal(int32(3), seqID)

				x := thrift.NewTApplicationException(thrift.UNKNOWN_APPLICATION_EXCEPTION, "")
				r.NoError(x.Read(ctx, iprot))
				r.Equal(int32(thrift.UNKNOWN_METHOD), x.TypeId())
				r.Equal("Unknown function frobnicate", x.Error())
			})

			t.Run("frames declared exceptions as replies", func(t *testing.T) {
				r := require.New(t)
				ctx := context.Background()

				proc := NewCalculatorProcessor(newCalculator())

				call := encode(t, pf, func(ctx context.Context, oprot thrift.TProtocol) error {
					return thriftrt.WriteMessage(ctx, oprot, "calculate", thrift.CALL, 11, &CalculatorCalculateArgs{
						Logid: thriftrt.Ptr(int32(1)),
						W: &Work{
							Num1: thriftrt.Ptr(int32(1)),
							Num2: thriftrt.Ptr(int32(0)),
							Op:   thriftrt.Ptr(OperationDivide),
						},
					})
				})

				out := thrift.NewTMemoryBuffer()
				r.NoError(proc.Process(ctx, decoder(pf, call), pf.GetProtocol(out)))

				iprot := decoder(pf, out.Bytes())

				_, mtype, seqID, err := iprot.ReadMessageBegin(ctx)
				r.NoError(err)
				r.Equal(thrift.REPLY, mtype)
				r.Equal(int32(11), seqID)

				var result CalculatorCalculateResult
				r.NoError(result.Read(ctx, iprot))
				r.False(result.HasSuccess())
				r.False(result.HasBusy())
				r.True(result.HasOuch())
				r.Equal("Cannot divide by 0", result.GetOuch().GetWhy())
			})
		})
	}
}

func loopbackClient(t *testing.T, pf thrift.TProtocolFactory) (*ScientificCalculatorClient, *calculator) {
	t.Helper()

	h := newCalculator()
	conn := thriftrt.NewLoopback(NewScientificCalculatorProcessor(h), pf)

	return NewScientificCalculatorClient(conn), h
}

func TestClient(t *testing.T) {
	for pname, pf := range protocols() {
		t.Run(pname, func(t *testing.T) {
			t.Run("can call functions inherited from an included service", func(t *testing.T) {
				r := require.New(t)
				ctx := context.Background()

				c, _ := loopbackClient(t, pf)

				sum, err := c.Add(ctx, 2, 40)
				r.NoError(err)
				r.Equal(int32(42), sum)

				ret, err := c.Calculate(ctx, 5, &Work{
					Num1: thriftrt.Ptr(int32(6)),
					Num2: thriftrt.Ptr(int32(7)),
					Op:   thriftrt.Ptr(OperationMultiply),
				})
				r.NoError(err)
				r.Equal(int32(42), ret)

				entry, err := c.GetStruct(ctx, 5)
				r.NoError(err)
				r.Equal(int32(5), entry.GetKey())
				r.Equal("MULTIPLY", entry.GetValue())

				pow, err := c.Power(ctx, 2, 10)
				r.NoError(err)
				r.Equal(float64(1024), pow)

				op, err := c.Check(ctx, &Value{Text: thriftrt.Ptr("SUBTRACT")})
				r.NoError(err)
				r.Equal(OperationSubtract, op)
			})

			t.Run("surfaces declared exceptions in throws order", func(t *testing.T) {
				r := require.New(t)
				ctx := context.Background()

				c, _ := loopbackClient(t, pf)

				_, err := c.Calculate(ctx, 1, &Work{
					Num1: thriftrt.Ptr(int32(1)),
					Num2: thriftrt.Ptr(int32(0)),
					Op:   thriftrt.Ptr(OperationDivide),
				})

				var ouch *InvalidOperation
				r.ErrorAs(err, &ouch)
				r.Equal(int32(OperationDivide), ouch.GetWhatOp())

				_, err = c.Calculate(ctx, 1, &Work{Comment: thriftrt.Ptr("busy")})

				var busy *Unavailable
				r.ErrorAs(err, &busy)
				r.Equal("try later", busy.GetReason())
			})

			t.Run("reports undeclared handler errors as application exceptions", func(t *testing.T) {
				r := require.New(t)
				ctx := context.Background()

				c, _ := loopbackClient(t, pf)

				_, err := c.Calculate(ctx, 1, &Work{Comment: thriftrt.Ptr("overload")})

				var x thrift.TApplicationException
				r.ErrorAs(err, &x)
				r.Equal(int32(thrift.UNKNOWN_APPLICATION_EXCEPTION), x.TypeId())
				r.Equal(errOverloaded.Error(), x.Error())

				_, err = c.Calculate(ctx, 1, &Work{Comment: thriftrt.Ptr("panic")})
				r.ErrorAs(err, &x)
				r.Contains(x.Error(), "calculator on fire")

				_, err = c.GetStruct(ctx, 404)
				r.ErrorAs(err, &x)
				r.Equal("no such log entry", x.Error())
			})

			t.Run("describes an undeclared exception by its set fields", func(t *testing.T) {
				r := require.New(t)
				ctx := context.Background()

				c, _ := loopbackClient(t, pf)

				_, err := c.Check(ctx, &Value{Text: thriftrt.Ptr("stray")})

				var x thrift.TApplicationException
				r.ErrorAs(err, &x)
				r.Equal(int32(thrift.UNKNOWN_APPLICATION_EXCEPTION), x.TypeId())
				r.Equal("InvalidOperation(WhatOp:4 Why:nope)", x.Error())
			})

			t.Run("treats a nil declared exception as unknown", func(t *testing.T) {
				r := require.New(t)
				ctx := context.Background()

				c, _ := loopbackClient(t, pf)

				_, err := c.Calculate(ctx, 1, &Work{Comment: thriftrt.Ptr("nil")})

				var ouch *InvalidOperation
				r.False(errors.As(err, &ouch))

				var x thrift.TApplicationException
				r.ErrorAs(err, &x)
				r.Equal(int32(thrift.UNKNOWN_APPLICATION_EXCEPTION), x.TypeId())
				r.Equal("<nil>", x.Error())
			})

			t.Run("can wait on handlers that answer asynchronously", func(t *testing.T) {
				r := require.New(t)
				ctx := context.Background()

				c, _ := loopbackClient(t, pf)

				in := &Everything{
					Label:  thriftrt.Ptr("echo"),
					Scores: map[string]float64{"a": 1.5},
				}

				out, err := c.Echo(ctx, in)
				r.NoError(err)
				r.Equal(in, out)

				_, err = c.Echo(ctx, nil)
				var x thrift.TApplicationException
				r.ErrorAs(err, &x)
				r.Equal("nothing to echo", x.Error())
			})

			t.Run("sends oneway calls without a reply", func(t *testing.T) {
				r := require.New(t)
				ctx := context.Background()

				c, h := loopbackClient(t, pf)

				r.NoError(c.Zip(ctx))
				r.NoError(c.Ping(ctx))

				r.Equal(1, h.zipped)
				r.Equal(1, h.pings)
			})

			t.Run("hands out distinct increasing sequence ids to concurrent calls", func(t *testing.T) {
				r := require.New(t)
				ctx := context.Background()

				loop := thriftrt.NewLoopback(NewScientificCalculatorProcessor(newCalculator()), pf)

				var (
					mu  sync.Mutex
					ids []int32
				)

				conn := thriftrt.NewConnection(pf, func(ctx context.Context, data []byte) ([]byte, error) {
					_, _, seqID, err := decoder(pf, data).ReadMessageBegin(ctx)
					if err != nil {
						return nil, err
					}

					mu.Lock()
					ids = append(ids, seqID)
					mu.Unlock()

					return loop.Send(ctx, data)
				})

				c := NewScientificCalculatorClient(conn)

				const calls = 32

				eg, ctx := errgroup.WithContext(ctx)
				for i := range calls {
					eg.Go(func() error {
						sum, err := c.Add(ctx, int32(i), 1)
						if err != nil {
							return err
						}
						if sum != int32(i)+1 {
							return errors.New("wrong sum")
						}
						return nil
					})
				}

				r.NoError(eg.Wait())

				slices.Sort(ids)
				r.Len(ids, calls)
				for i, id := range ids {
					r.Equal(int32(i+1), id)
				}
				r.Equal(int32(calls), c.LastSeqID())
			})
		})
	}
}

// mockConnection answers every Send with reply, framing requests with pf.
func mockConnection(t *testing.T, pf thrift.TProtocolFactory, reply []byte, sendErr error) thriftrt.Connection {
	t.Helper()

	ctrl := gomock.NewController(t)

	framing := thriftrt.NewConnection(pf, nil)

	conn := thriftrtmock.NewMockConnection(ctrl)
	conn.EXPECT().Transport().DoAndReturn(framing.Transport).AnyTimes()
	conn.EXPECT().Protocol(gomock.Any()).DoAndReturn(framing.Protocol).AnyTimes()
	conn.EXPECT().Receive(gomock.Any()).DoAndReturn(framing.Receive).AnyTimes()
	conn.EXPECT().Send(gomock.Any(), gomock.Any()).Return(reply, sendErr).Times(1)

	return conn
}

func TestClientDecoding(t *testing.T) {
	pf := thrift.NewTBinaryProtocolFactoryDefault()

	t.Run("reports an exception before a success value", func(t *testing.T) {
		r := require.New(t)

		reply := encode(t, pf, func(ctx context.Context, oprot thrift.TProtocol) error {
			return thriftrt.WriteMessage(ctx, oprot, "calculate", thrift.REPLY, 1, &CalculatorCalculateResult{
				Success: thriftrt.Ptr(int32(99)),
				Ouch:    &InvalidOperation{Why: thriftrt.Ptr("first")},
				Busy:    &Unavailable{Reason: thriftrt.Ptr("second")},
			})
		})

		c := NewCalculatorClient(mockConnection(t, pf, reply, nil))

		ret, err := c.Calculate(context.Background(), 1, &Work{})
		r.Equal(int32(0), ret)

		var ouch *InvalidOperation
		r.ErrorAs(err, &ouch)
		r.Equal("first", ouch.GetWhy())
	})

	t.Run("rejects a reply for another function", func(t *testing.T) {
		r := require.New(t)

		reply := encode(t, pf, func(ctx context.Context, oprot thrift.TProtocol) error {
			return thriftrt.WriteMessage(ctx, oprot, "subtract", thrift.REPLY, 1, &CalculatorPingResult{})
		})

		c := NewCalculatorClient(mockConnection(t, pf, reply, nil))

		_, err := c.Add(context.Background(), 1, 2)

		var x thrift.TApplicationException
		r.ErrorAs(err, &x)
		r.Equal(int32(thrift.WRONG_METHOD_NAME), x.TypeId())
		r.Equal("Received a response to an unknown RPC function: subtract", x.Error())
	})

	t.Run("reports a missing result as unknown", func(t *testing.T) {
		r := require.New(t)

		reply := encode(t, pf, func(ctx context.Context, oprot thrift.TProtocol) error {
			return thriftrt.WriteMessage(ctx, oprot, "add", thrift.REPLY, 1, &CalculatorPingResult{})
		})

		c := NewCalculatorClient(mockConnection(t, pf, reply, nil))

		_, err := c.Add(context.Background(), 1, 2)

		var x thrift.TApplicationException
		r.ErrorAs(err, &x)
		r.Equal(int32(thrift.UNKNOWN_APPLICATION_EXCEPTION), x.TypeId())
		r.Equal("add failed: unknown result", x.Error())
	})

	t.Run("passes on application exceptions from the peer", func(t *testing.T) {
		r := require.New(t)

		reply := encode(t, pf, func(ctx context.Context, oprot thrift.TProtocol) error {
			x := thrift.NewTApplicationException(thrift.INTERNAL_ERROR, "server melted")
			return thriftrt.WriteMessage(ctx, oprot, "ping", thrift.EXCEPTION, 1, x)
		})

		c := NewCalculatorClient(mockConnection(t, pf, reply, nil))

		err := c.Ping(context.Background())

		var x thrift.TApplicationException
		r.ErrorAs(err, &x)
		r.Equal(int32(thrift.INTERNAL_ERROR), x.TypeId())
		r.Equal("server melted", x.Error())
	})

	t.Run("returns transport and decode errors as they are", func(t *testing.T) {
		r := require.New(t)

		boom := errors.New("connection reset")

		c := NewCalculatorClient(mockConnection(t, pf, nil, boom))
		r.ErrorIs(c.Ping(context.Background()), boom)

		c = NewCalculatorClient(mockConnection(t, pf, []byte{0x80}, nil))
		err := c.Ping(context.Background())
		r.Error(err)

		var x thrift.TApplicationException
		r.False(errors.As(err, &x))
	})
}
