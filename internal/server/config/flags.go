package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/admingate/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-m string   metrics bind address (empty disables the endpoint)
//	-f string   path to the users credentials file
//	-q string   queue backend: file, postgres or memory
//	-w string   directory for the file queue backend
//	-d string   PostgreSQL DSN
//	-i int      subscription poll interval, milliseconds
//	-s bool     wait synchronously for command outcomes
//	-t int      synchronous command timeout, seconds
//	-n int      archive snapshot interval, minutes
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name (empty disables archival)
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-f", "-q", "-w", "-d", "-i", "-s", "-t", "-n", "-u", "-p", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "metrics endpoint address")
	fs.StringVar(&config.UsersFile, "f", config.UsersFile, "users credentials file")
	fs.StringVar(&config.QueueBackend, "q", config.QueueBackend, "queue backend (file|postgres|memory)")
	fs.StringVar(&config.QueueDir, "w", config.QueueDir, "queue directory for the file backend")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")

	pollIntervalMs := fs.Int("i", int(config.PollInterval.Milliseconds()), "poll_interval (in milliseconds)")
	fs.BoolVar(&config.SyncCommandResponses, "s", config.SyncCommandResponses, "wait for command outcomes synchronously")
	commandTimeoutSec := fs.Int("t", int(config.CommandTimeout.Seconds()), "command_timeout (in seconds)")
	archiveIntervalMin := fs.Int("n", int(config.ArchiveInterval.Minutes()), "archive_interval (in minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 root bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 root region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.PollInterval = time.Duration(*pollIntervalMs) * time.Millisecond
	config.CommandTimeout = time.Duration(*commandTimeoutSec) * time.Second
	config.ArchiveInterval = time.Duration(*archiveIntervalMin) * time.Minute
}
