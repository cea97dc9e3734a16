package safehaven

var (
	VERSION = "dev"
	COMMIT  = "unknown"
)
