package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Load bool
	Save bool
	Env  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("ALPENSTOCK_DEBUG_LOAD")
	d.Save = boolEnv("ALPENSTOCK_DEBUG_SAVE")
	d.Env = boolEnv("ALPENSTOCK_DEBUG_ENV")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool {
	return d.Load
}
func Save() bool {
	return d.Save
}
func Env() bool {
	return d.Env
}
