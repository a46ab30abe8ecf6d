package v1

// BasePath is the URL prefix all version-1 routes are grouped under.
const BasePath = "/api/v1"
