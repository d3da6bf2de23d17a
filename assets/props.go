package assets

import (
	"strconv"

	"github.com/lafriks/go-tiled"
)

// Typed property access over the map document's key/value bags.
//
// go-tiled's own getters return a zero value for both "missing" and
// "wrong type", which is not enough here: a property of the wrong
// declared type must read as absent, never as zero. These helpers
// report absence explicitly and only accept values whose declared type
// matches.

func findProp(props tiled.Properties, name string) *tiled.Property {
	for _, p := range props {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// intProp returns the named int property, or ok=false if it is missing
// or not declared as an int.
func intProp(props tiled.Properties, name string) (int, bool) {
	p := findProp(props, name)
	if p == nil || p.Type != "int" {
		return 0, false
	}
	v, err := strconv.Atoi(p.Value)
	if err != nil {
		return 0, false
	}
	return v, true
}

// floatProp returns the named float property, or ok=false if it is
// missing or not declared as a float.
func floatProp(props tiled.Properties, name string) (float64, bool) {
	p := findProp(props, name)
	if p == nil || p.Type != "float" {
		return 0, false
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// objectProp returns the named object-reference property as the
// referenced object's id, or ok=false if it is missing or not an
// object reference. Tiled stores an unset object reference as 0.
func objectProp(props tiled.Properties, name string) (uint32, bool) {
	p := findProp(props, name)
	if p == nil || p.Type != "object" {
		return 0, false
	}
	v, err := strconv.ParseUint(p.Value, 10, 32)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint32(v), true
}
