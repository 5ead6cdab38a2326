package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/admingate/internal/flagx"
	"github.com/dmitrijs2005/admingate/internal/timex"
)

// JsonConfig mirrors Config for JSON unmarshalling. Interval fields use
// timex.Duration, which accepts both string values such as "50ms" and
// integer nanoseconds. After unmarshalling, values are copied into the
// runtime Config.
type JsonConfig struct {
	EndpointAddrGRPC     string         `json:"endpoint_addr_grpc"`
	MetricsAddr          string         `json:"metrics_addr"`
	UsersFile            string         `json:"users_file"`
	QueueBackend         string         `json:"queue_backend"`
	QueueDir             string         `json:"queue_dir"`
	DatabaseDSN          string         `json:"database_dsn"`
	PollInterval         timex.Duration `json:"poll_interval"`
	SyncCommandResponses bool           `json:"sync_command_responses"`
	CommandTimeout       timex.Duration `json:"command_timeout"`
	ArchiveInterval      timex.Duration `json:"archive_interval"`
	S3RootUser           string         `json:"s3_root_user"`
	S3RootPassword       string         `json:"s3_root_password"`
	S3Bucket             string         `json:"s3_bucket"`
	S3Region             string         `json:"s3_region"`
	S3BaseEndpoint       string         `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags; when
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.MetricsAddr = c.MetricsAddr
	config.UsersFile = c.UsersFile
	config.QueueBackend = c.QueueBackend
	config.QueueDir = c.QueueDir
	config.DatabaseDSN = c.DatabaseDSN
	config.PollInterval = time.Duration(c.PollInterval.Duration)
	config.SyncCommandResponses = c.SyncCommandResponses
	config.CommandTimeout = time.Duration(c.CommandTimeout.Duration)
	config.ArchiveInterval = time.Duration(c.ArchiveInterval.Duration)
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
}
