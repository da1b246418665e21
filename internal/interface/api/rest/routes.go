package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth  = RouteApiV1 + "/auth"
	RouteLogin = RouteAuth + "/login"

	RouteUsers = RouteApiV1 + "/users"

	// files
	RouteFiles        = RouteApiV1 + "/files"
	RouteFile         = RouteFiles + "/:file_id"
	RouteFileDownload = RouteFile + "/download"
	RouteFileVersions = RouteFile + "/versions"

	// folders
	RouteFolders = RouteApiV1 + "/folders"
	RouteFolder  = RouteFolders + "/:folder_id"

	// shares
	RouteShares         = RouteApiV1 + "/shares"
	RouteResourceShares = RouteApiV1 + "/resources/:resource_id/shares"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
