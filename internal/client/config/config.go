package config

import "time"

// Remote backends selectable with -m.
const (
	BackendGRPC = "grpc"
	BackendS3   = "s3"
)

// Config holds runtime settings for the DraftKeeper CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - OnlineCheckInterval: how often the client checks server reachability.
//   - DatabasePath: SQLite file holding projects and session metadata.
//   - DebounceInterval: quiet period after the last edit before a push.
//   - RemoteBackend: where project copies live, BackendGRPC or BackendS3.
//   - S3*: bucket settings used when RemoteBackend is BackendS3.
//   - LogFile: path of the rotated client log.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	DatabasePath        string
	DebounceInterval    time.Duration
	RemoteBackend       string

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string

	LogFile string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.DatabasePath = "draftkeeper.db"
	c.DebounceInterval = 30 * time.Second
	c.RemoteBackend = BackendGRPC
	c.S3Region = "us-east-1"
	c.LogFile = "draftkeeper.log"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
