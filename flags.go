package main

import "flag"

var (
	logLevelFlag  = flag.String("log-level", "info", "Log level (\"debug\", \"info\", \"warn\", \"error\")")
	controlsFlag  = flag.String("controls", "standard", "Control scheme (\"standard\", \"superaction\", \"driving\", \"roller\")")
	mappingsFlag  = flag.String("mappings", "", "Path to a YAML file mapping gamepad buttons to controller inputs")
	biosFlag      = flag.String("bios", "", "Path to the ColecoVision BIOS ROM")
	statsviewFlag = flag.Bool("statsview", false, "Serve runtime statistics on "+statsviewAddress)
)
