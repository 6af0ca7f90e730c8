package constant

// Set with -ldflags "-X github.com/xishang0128/df-translate/constant.Version=..."
var (
	Version   = "dev"
	BuildTime = "unknown"
)
