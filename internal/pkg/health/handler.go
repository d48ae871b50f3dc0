package health

import (
	"errors"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// ErrNATSDisconnected is returned when the NATS connection is down
var ErrNATSDisconnected = errors.New("nats connection is not established")

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// healthReport is the /health/ready response body
type healthReport struct {
	Status       string                 `json:"status"`
	Dependencies map[string]CheckResult `json:"dependencies"`
}

// RegisterHealthEndpoints registers ping, liveness and readiness endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, svc *Service) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	if version == "" {
		version = "development"
	}

	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, BuildInfo{
			Version:     version,
			ServiceName: serviceName,
			GoVersion:   runtime.Version(),
			Hostname:    hostname,
			ServerTime:  time.Now(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/health/ready", func(c echo.Context) error {
		results, healthy := svc.CheckAll(c.Request().Context())
		report := healthReport{Status: "ready", Dependencies: results}
		status := http.StatusOK
		if !healthy {
			report.Status = "degraded"
			status = http.StatusServiceUnavailable
		}
		return c.JSON(status, report)
	})
}
