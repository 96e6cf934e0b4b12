package utils

// ServiceReport is the payload of the /service status endpoint.
type ServiceReport struct {
	Version VersionReport          `json:"version"`
	Health  Health                 `json:"health"`
	Metrics map[string]interface{} `json:"metrics"`
	Config  map[string]interface{} `json:"config,omitempty"`
}

// VersionReport holds all version-related information for the service.
type VersionReport struct {
	Str string  `json:"str"`
	Obj Version `json:"obj"`
}

// Version holds the components of a parsed version string.
type Version struct {
	Major     string `json:"major"`
	Minor     string `json:"minor"`
	Patch     string `json:"patch"`
	Branch    string `json:"branch"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	Arch      string `json:"arch"`
}

// Health represents the health status of the service.
type Health struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Message string `json:"message"`
}
