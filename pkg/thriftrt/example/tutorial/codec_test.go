package tutorial

import (
	"context"
	"testing"

	"github.com/apache/thrift/lib/go/thrift"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
	"miren.dev/thriftgen/pkg/thriftrt"
	"miren.dev/thriftgen/pkg/thriftrt/example/shared"
)

func TestStructCodec(t *testing.T) {
	for pname, pf := range protocols() {
		t.Run(pname, func(t *testing.T) {
			t.Run("can round trip every field type", func(t *testing.T) {
				r := require.New(t)

				f := fuzz.New().NilChance(0).NumElements(1, 4).Funcs(
					// Readers hand back empty binary as nil, so keep it non-empty.
					func(b *[]byte, c fuzz.Continue) {
						*b = []byte("b" + c.RandString())
					},
				)

				for range 50 {
					var in Everything
					f.Fuzz(&in)

					data := encode(t, pf, in.Write)

					var out Everything
					r.NoError(out.Read(context.Background(), decoder(pf, data)))

					r.Equal(in, out)
				}
			})

			t.Run("leaves absent fields unset", func(t *testing.T) {
				r := require.New(t)

				in := Everything{
					Label: thriftrt.Ptr("only"),
					Ids:   []int32{3, 1, 3},
				}

				var out Everything
				r.NoError(out.Read(context.Background(), decoder(pf, encode(t, pf, in.Write))))

				r.Equal(in, out)
				r.False(out.HasWork())
				r.False(out.HasFlag())
				r.Equal(int64(0), out.GetBig())
				r.Equal([]int32{3, 1, 3}, out.GetIds())
			})

			t.Run("skips unknown field ids", func(t *testing.T) {
				r := require.New(t)

				withExtra := encode(t, pf, func(ctx context.Context, oprot thrift.TProtocol) error {
					r.NoError(oprot.WriteStructBegin(ctx, "Everything"))

					r.NoError(oprot.WriteFieldBegin(ctx, "flag", thrift.BOOL, 1))
					r.NoError(oprot.WriteBool(ctx, true))
					r.NoError(oprot.WriteFieldEnd(ctx))

					r.NoError(oprot.WriteFieldBegin(ctx, "mystery", thrift.LIST, 99))
					r.NoError(oprot.WriteListBegin(ctx, thrift.STRUCT, 1))
					r.NoError((&Work{Num1: thriftrt.Ptr(int32(4))}).Write(ctx, oprot))
					r.NoError(oprot.WriteListEnd(ctx))
					r.NoError(oprot.WriteFieldEnd(ctx))

					r.NoError(oprot.WriteFieldBegin(ctx, "label", thrift.STRING, 7))
					r.NoError(oprot.WriteString(ctx, "after"))
					r.NoError(oprot.WriteFieldEnd(ctx))

					r.NoError(oprot.WriteFieldStop(ctx))
					return oprot.WriteStructEnd(ctx)
				})

				without := encode(t, pf, (&Everything{
					Flag:  thriftrt.Ptr(true),
					Label: thriftrt.Ptr("after"),
				}).Write)

				var a, b Everything
				r.NoError(a.Read(context.Background(), decoder(pf, withExtra)))
				r.NoError(b.Read(context.Background(), decoder(pf, without)))

				r.Equal(b, a)
				r.Equal("after", a.GetLabel())
			})

			t.Run("skips a field whose wire tag does not match", func(t *testing.T) {
				r := require.New(t)

				data := encode(t, pf, func(ctx context.Context, oprot thrift.TProtocol) error {
					r.NoError(oprot.WriteStructBegin(ctx, "Everything"))

					// label is a string, send an i64 in its place
					r.NoError(oprot.WriteFieldBegin(ctx, "label", thrift.I64, 7))
					r.NoError(oprot.WriteI64(ctx, 1<<40))
					r.NoError(oprot.WriteFieldEnd(ctx))

					r.NoError(oprot.WriteFieldBegin(ctx, "tags", thrift.MAP, 10))
					r.NoError(oprot.WriteMapBegin(ctx, thrift.STRING, thrift.STRING, 1))
					r.NoError(oprot.WriteString(ctx, "k"))
					r.NoError(oprot.WriteString(ctx, "v"))
					r.NoError(oprot.WriteMapEnd(ctx))
					r.NoError(oprot.WriteFieldEnd(ctx))

					r.NoError(oprot.WriteFieldBegin(ctx, "big", thrift.I64, 5))
					r.NoError(oprot.WriteI64(ctx, 42))
					r.NoError(oprot.WriteFieldEnd(ctx))

					r.NoError(oprot.WriteFieldStop(ctx))
					return oprot.WriteStructEnd(ctx)
				})

				var out Everything
				r.NoError(out.Read(context.Background(), decoder(pf, data)))

				r.False(out.HasLabel())
				r.Nil(out.Tags)
				r.Equal(int64(42), out.GetBig())
			})

			t.Run("can carry structs from an included document", func(t *testing.T) {
				r := require.New(t)

				in := Everything{
					Shared: &shared.SharedStruct{Key: thriftrt.Ptr(int32(9)), Value: thriftrt.Ptr("nine")},
					Work:   &Work{Num2: thriftrt.Ptr(int32(1)), Op: thriftrt.Ptr(OperationDivide)},
				}

				var out Everything
				r.NoError(out.Read(context.Background(), decoder(pf, encode(t, pf, in.Write))))

				r.Equal(int32(9), out.GetShared().GetKey())
				r.Equal(OperationDivide, out.GetWork().GetOp())
			})
		})
	}
}

func TestConstructors(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		r := require.New(t)

		w, err := NewWork(nil)
		r.NoError(err)
		r.True(w.HasNum1())
		r.Equal(int32(0), w.GetNum1())
		r.False(w.HasNum2())
	})

	t.Run("rejects a missing required field", func(t *testing.T) {
		r := require.New(t)

		_, err := NewWork(&Work{Num2: thriftrt.Ptr(int32(2))})
		r.Error(err)

		var rf *thriftrt.RequiredFieldError
		r.ErrorAs(err, &rf)
		r.Equal("Work", rf.Struct)
		r.Equal("op", rf.Field)
	})

	t.Run("keeps explicit values over defaults", func(t *testing.T) {
		r := require.New(t)

		w, err := NewWork(&Work{
			Num1: thriftrt.Ptr(int32(5)),
			Num2: thriftrt.Ptr(int32(2)),
			Op:   thriftrt.Ptr(OperationMultiply),
		})
		r.NoError(err)
		r.Equal(int32(5), w.GetNum1())
	})

	t.Run("requires exactly one union field", func(t *testing.T) {
		r := require.New(t)

		_, err := NewValue(&Value{})
		var uc *thriftrt.UnionFieldCountError
		r.ErrorAs(err, &uc)
		r.Equal(0, uc.Set)

		_, err = NewValue(&Value{Text: thriftrt.Ptr("ADD"), Number: thriftrt.Ptr(int64(1))})
		r.ErrorAs(err, &uc)
		r.Equal(2, uc.Set)

		v, err := NewValue(&Value{Number: thriftrt.Ptr(int64(3))})
		r.NoError(err)
		r.Equal(int64(3), v.GetNumber())

		err = (&Value{}).Write(context.Background(), thrift.NewTBinaryProtocolConf(thrift.NewTMemoryBuffer(), nil))
		r.ErrorAs(err, &uc)
	})

	t.Run("exceptions are errors", func(t *testing.T) {
		r := require.New(t)

		var err error = &InvalidOperation{Why: thriftrt.Ptr("nope")}
		r.Equal("InvalidOperation(Why:nope)", err.Error())
	})

	t.Run("describes set fields by value", func(t *testing.T) {
		r := require.New(t)

		w := &Work{
			Num1: thriftrt.Ptr(int32(6)),
			Op:   thriftrt.Ptr(OperationMultiply),
		}
		r.Equal("Work(Num1:6 Op:MULTIPLY)", w.String())

		args := &CalculatorCalculateArgs{Logid: thriftrt.Ptr(int32(2)), W: w}
		r.Equal("CalculatorCalculateArgs(Logid:2 W:Work(Num1:6 Op:MULTIPLY))", args.String())

		r.Equal("CalculatorPingArgs()", (&CalculatorPingArgs{}).String())
		r.Equal("<nil>", (*Work)(nil).String())
	})
}

func TestEnums(t *testing.T) {
	r := require.New(t)

	r.Equal("MULTIPLY", OperationMultiply.String())
	r.Equal("<UNSET>", Operation(77).String())

	op, err := OperationFromString("DIVIDE")
	r.NoError(err)
	r.Equal(OperationDivide, op)

	_, err = OperationFromString("MODULO")
	r.Error(err)
}
