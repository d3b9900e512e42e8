// internal/handlers/infrastructure/healthz/models.go
package healthz

const (
	StatusOK    = "ok"
	StatusError = "error"

	Reachable   = "reachable"
	Unreachable = "unreachable"
	Disabled    = "disabled"
)

type Output struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
	Version  string `json:"version,omitempty"`
}
