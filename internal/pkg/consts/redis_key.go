package consts

const (
	RevokedTokenKey       = "token:revoked:"
	DashboardOverviewKey  = "dashboard:overview:"
	DashboardRatingsKey   = "dashboard:ratings:"
	DashboardBenchmarkKey = "dashboard:benchmark"
)

const (
	DashboardBenchmarkLock = "lock:dashboard:benchmark"
)
