package assets

import (
	"testing"

	"github.com/lafriks/go-tiled"
)

func TestIntPropReadsDeclaredInts(t *testing.T) {
	t.Parallel()

	props := tiled.Properties{
		{Name: "epoch", Type: "int", Value: "-2"},
	}

	v, ok := intProp(props, "epoch")
	if !ok {
		t.Fatalf("expected epoch to be present")
	}
	if v != -2 {
		t.Fatalf("epoch = %d, want -2", v)
	}
}

func TestIntPropTreatsWrongTypeAsAbsent(t *testing.T) {
	t.Parallel()

	props := tiled.Properties{
		{Name: "epoch", Type: "string", Value: "2"},
		{Name: "damage", Type: "int", Value: "3"},
	}

	if _, ok := intProp(props, "epoch"); ok {
		t.Fatalf("string-typed epoch should read as absent")
	}
	if _, ok := floatProp(props, "damage"); ok {
		t.Fatalf("int-typed damage should read as absent for floatProp")
	}
	if _, ok := intProp(props, "missing"); ok {
		t.Fatalf("missing property should read as absent")
	}
}

func TestIntPropTreatsUnparsableValueAsAbsent(t *testing.T) {
	t.Parallel()

	props := tiled.Properties{
		{Name: "epoch", Type: "int", Value: "not-a-number"},
	}

	if _, ok := intProp(props, "epoch"); ok {
		t.Fatalf("unparsable int should read as absent")
	}
}

func TestObjectProp(t *testing.T) {
	t.Parallel()

	props := tiled.Properties{
		{Name: "dst", Type: "object", Value: "17"},
		{Name: "unset", Type: "object", Value: "0"},
		{Name: "mistyped", Type: "int", Value: "17"},
	}

	id, ok := objectProp(props, "dst")
	if !ok || id != 17 {
		t.Fatalf("dst = (%d, %v), want (17, true)", id, ok)
	}
	if _, ok := objectProp(props, "unset"); ok {
		t.Fatalf("object reference 0 should read as absent")
	}
	if _, ok := objectProp(props, "mistyped"); ok {
		t.Fatalf("int-typed property should not read as an object reference")
	}
}
