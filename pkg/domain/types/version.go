package types

// Version is the build version, overridden with -ldflags at release time
var Version = "dev"
