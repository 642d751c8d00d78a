package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a local stand-in server listen address in format [host]:[port]
//	-u remote list service base URL
//	-o owner key
//	-t request timeout (e.g. "5s"); zero means no timeout
//	-r background reload interval (e.g. "1m"); zero disables it
//	-delete-failure reaction to a failed remote delete: keep | reload
//	-d database DSN of the local stand-in server
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var remoteAddress string
	var owner string
	var requestTimeout time.Duration
	var reloadInterval time.Duration
	var deleteFailure string
	var databaseDSN string
	var jsonConfigPath string

	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&remoteAddress, "u", "", "Remote list service base URL")
	fs.StringVar(&owner, "o", "", "Owner key")
	fs.DurationVar(&requestTimeout, "t", 0, "Request timeout (e.g., 5s)")
	fs.DurationVar(&reloadInterval, "r", 0, "Reload interval (e.g., 1m)")
	fs.StringVar(&deleteFailure, "delete-failure", "", "Reaction to a failed delete: keep | reload")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Owner:               owner,
			DeleteFailurePolicy: DeleteFailurePolicy(deleteFailure),
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{ReloadInterval: reloadInterval},
		Server:  Server{HTTPAddress: serverAddress.String()},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port into the NetAddress. An empty host listens on all
// interfaces; otherwise the host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
