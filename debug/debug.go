package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Coerce bool
	Keys   bool
	Refs   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Coerce = boolEnv("VS_DEBUG_COERCE")
	d.Keys = boolEnv("VS_DEBUG_KEYS")
	d.Refs = boolEnv("VS_DEBUG_REFS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Coerce() bool {
	return d.Coerce
}
func Keys() bool {
	return d.Keys
}
func Refs() bool {
	return d.Refs
}
