package kizuna

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve1(t *testing.T) {
	l := New()

	_, err := Resolve1[int](l)
	assert.ErrorIs(t, err, ErrNotFound)

	Insert(l, 5)
	v, err := Resolve1[int](l)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestResolve12(t *testing.T) {
	l := fullLocator()

	a, b, c, d, e, f, g, h, i, j, k, m, err := Resolve12[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12](l)
	require.NoError(t, err)

	got := []int{int(a), int(b), int(c), int(d), int(e), int(f), int(g), int(h), int(i), int(j), int(k), int(m)}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, got)
}

func TestResolve_FirstMissingReported(t *testing.T) {
	l := New()
	Insert(l, T1(1))

	a, b, c, err := Resolve3[T1, T2, T3](l)
	require.Error(t, err)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, reflect.TypeOf(T2(0)), nf.Type)

	// No partial results
	assert.Zero(t, a)
	assert.Zero(t, b)
	assert.Zero(t, c)
}

func TestResolve_FactoriesRunInOrder(t *testing.T) {
	l := New()

	var order []string
	InsertWith(l, func(*Locator) T1 { order = append(order, "T1"); return 1 })
	InsertWith(l, func(*Locator) T2 { order = append(order, "T2"); return 2 })
	InsertWith(l, func(*Locator) T3 { order = append(order, "T3"); return 3 })

	_, _, _, err := Resolve3[T3, T1, T2](l)
	require.NoError(t, err)
	assert.Equal(t, []string{"T3", "T1", "T2"}, order)
}

func TestResolveTypes(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*Locator)
		types   []reflect.Type
		want    []any
		wantErr error
	}{
		{
			name:  "empty list",
			types: nil,
			want:  []any{},
		},
		{
			name:  "concrete types",
			setup: func(l *Locator) { Insert(l, 1); Insert(l, "x") },
			types: []reflect.Type{reflect.TypeOf(""), reflect.TypeOf(0)},
			want:  []any{"x", 1},
		},
		{
			name:    "missing type",
			setup:   func(l *Locator) { Insert(l, 1) },
			types:   []reflect.Type{reflect.TypeOf(0), reflect.TypeOf("")},
			wantErr: ErrNotFound,
		},
		{
			name:    "nil type",
			types:   []reflect.Type{nil},
			wantErr: ErrInvalidHandler,
		},
		{
			name:    "too many types",
			types:   make([]reflect.Type, MaxArity+1),
			wantErr: ErrInvalidHandler,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			if tt.setup != nil {
				tt.setup(l)
			}

			values, err := ResolveTypes(l, tt.types...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, values)
				return
			}

			require.NoError(t, err)
			got := make([]any, len(values))
			for i, v := range values {
				got[i] = v.Interface()
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveTypes_InterfaceBinding(t *testing.T) {
	l := New()
	Insert[Greeter](l, &englishGreeter{name: "x"})

	greeterType := reflect.TypeOf((*Greeter)(nil)).Elem()
	values, err := ResolveTypes(l, greeterType)
	require.NoError(t, err)
	require.Len(t, values, 1)

	assert.Equal(t, greeterType, values[0].Type())
	assert.Equal(t, "hello x", values[0].Interface().(Greeter).Greet())
}

func TestResolveTypes_NilValue(t *testing.T) {
	l := New()
	Insert[*ServiceA](l, nil)

	values, err := ResolveTypes(l, reflect.TypeOf((*ServiceA)(nil)))
	require.NoError(t, err)
	assert.True(t, values[0].IsNil())
}

func TestResolveTypes_ArityError(t *testing.T) {
	_, err := ResolveTypes(New(), make([]reflect.Type, 13)...)

	var arity *ArityError
	require.ErrorAs(t, err, &arity)
	assert.Equal(t, 13, arity.Arity)
	assert.Equal(t, MaxArity, arity.Max)
}
