package types

// Version is overwritten at build time via -ldflags
var Version = "dev"

// AppName is used as CLI name and env var prefix base
const AppName = "statusboard"
