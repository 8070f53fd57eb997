package version

const APP = "bilifeed"

var (
	VERSION = "dev"
	COMMIT  = "unknown"
)
