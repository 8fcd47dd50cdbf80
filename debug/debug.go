package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Mutate bool
	Patch  bool
	Where  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("MOTHER_DEBUG_PARSE")
	d.Mutate = boolEnv("MOTHER_DEBUG_MUTATE")
	d.Patch = boolEnv("MOTHER_DEBUG_PATCH")
	d.Where = boolEnv("MOTHER_DEBUG_WHERE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Mutate() bool {
	return d.Mutate
}
func Patch() bool {
	return d.Patch
}
func Where() bool {
	return d.Where
}
