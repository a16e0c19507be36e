package main

import "runtime/debug"

var TheVersion = "devel"

// Version returns the module version, or TheVersion with the VCS revision
// for local builds.
func Version() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return TheVersion
	}
	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return TheVersion + "-" + s.Value[:7]
		}
	}
	return TheVersion
}
