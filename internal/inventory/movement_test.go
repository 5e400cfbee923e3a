package inventory

import (
	"errors"
	"testing"
)

func TestNextQuantity(t *testing.T) {
	tests := []struct {
		name    string
		typ     Type
		current int
		amount  int
		want    int
		wantErr error
	}{
		{name: "in adds", typ: TypeIn, current: 10, amount: 5, want: 15},
		{name: "in from zero", typ: TypeIn, current: 0, amount: 3, want: 3},
		{name: "out subtracts", typ: TypeOut, current: 10, amount: 4, want: 6},
		{name: "out exact", typ: TypeOut, current: 7, amount: 7, want: 0},
		{name: "out over", typ: TypeOut, current: 3, amount: 4, wantErr: ErrInsufficientStock},
		{name: "out from zero", typ: TypeOut, current: 0, amount: 1, wantErr: ErrInsufficientStock},
		{name: "adjustment sets absolute", typ: TypeAdjustment, current: 10, amount: 2, want: 2},
		{name: "adjustment up", typ: TypeAdjustment, current: 1, amount: 50, want: 50},
		{name: "zero amount", typ: TypeIn, current: 10, amount: 0, wantErr: ErrInvalidQuantity},
		{name: "negative amount", typ: TypeOut, current: 10, amount: -2, wantErr: ErrInvalidQuantity},
		{name: "unknown type", typ: Type("transfer"), current: 10, amount: 1, wantErr: ErrInvalidType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextQuantity(tt.typ, tt.current, tt.amount)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NextQuantity() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NextQuantity() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("NextQuantity() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTypeValid(t *testing.T) {
	for _, typ := range []Type{TypeIn, TypeOut, TypeAdjustment} {
		if !typ.Valid() {
			t.Errorf("%q should be valid", typ)
		}
	}
	for _, typ := range []Type{"", "IN", "transfer"} {
		if typ.Valid() {
			t.Errorf("%q should not be valid", typ)
		}
	}
}

func TestInsufficientStockErrorUnwrap(t *testing.T) {
	err := &InsufficientStockError{ProductID: 7, Name: "Widget", Requested: 5, Available: 2}
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatal("InsufficientStockError should unwrap to ErrInsufficientStock")
	}

	var short *InsufficientStockError
	if !errors.As(error(err), &short) {
		t.Fatal("errors.As should find InsufficientStockError")
	}
	if short.Available != 2 || short.ProductID != 7 {
		t.Fatalf("unexpected fields: %+v", short)
	}
}
