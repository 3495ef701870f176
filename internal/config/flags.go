package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Flag names registered by [BindFlags].
const (
	flagAPIURL         = "api-url"
	flagRequestTimeout = "request-timeout"
	flagDSN            = "dsn"
	flagCacheBackend   = "cache-backend"
	flagSyncInterval   = "sync-interval"
	flagSyncPause      = "sync-pause"
	flagListen         = "listen"
	flagShellOrigin    = "shell-origin"
	flagCacheVersion   = "cache-version"
	flagVAPIDPublicKey = "vapid-public-key"
	flagReceiverURL    = "receiver-url"
	flagNotify         = "notify"
	flagConfig         = "config"
	flagLogFile        = "log-file"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// BindFlags registers every configuration flag on fs.
//
// Flags:
//
//	-a/--api-url           remote story API base URL
//	--request-timeout      outbound request timeout (e.g. "30s")
//	-d/--dsn               local SQLite database path
//	--cache-backend        response cache backend: sqlite or memory
//	--sync-interval        offline-story flush period (e.g. "5m")
//	--sync-pause           minimum gap between queued submissions
//	-l/--listen            proxy listen address in form host:port
//	--shell-origin         origin the application shell is fetched from
//	--cache-version        current shell cache name
//	--vapid-public-key     application server key for push subscriptions
//	--receiver-url         externally reachable base of the push receiver
//	-n/--notify            shoutrrr URL, repeatable
//	-c/--config            JSON config file path
//	--log-file             client log file path
func BindFlags(fs *pflag.FlagSet) {
	fs.StringP(flagAPIURL, "a", "", "Remote story API base URL")
	fs.Duration(flagRequestTimeout, 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringP(flagDSN, "d", "", "Local database DSN")
	fs.String(flagCacheBackend, "", "Response cache backend (sqlite|memory)")
	fs.Duration(flagSyncInterval, 0, "Offline story sync interval (e.g., 5m)")
	fs.Duration(flagSyncPause, 0, "Minimum pause between queued submissions")
	fs.VarP(&NetAddress{}, flagListen, "l", "Proxy net address host:port")
	fs.String(flagShellOrigin, "", "Application shell origin")
	fs.String(flagCacheVersion, "", "Current shell cache name")
	fs.String(flagVAPIDPublicKey, "", "VAPID public key")
	fs.String(flagReceiverURL, "", "Push receiver base URL")
	fs.StringSliceP(flagNotify, "n", nil, "Shoutrrr notification URL (repeatable)")
	fs.StringP(flagConfig, "c", "", "JSON config file path")
	fs.String(flagLogFile, "", "Client log file path")
}

// flagsConfig reads the flags registered by [BindFlags] back into a
// [StructuredConfig]. Unset flags keep their zero value.
func flagsConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	var errs []error
	str := func(name string) string {
		v, err := fs.GetString(name)
		errs = append(errs, err)
		return v
	}

	cfg := &StructuredConfig{
		App: App{
			LogFile: str(flagLogFile),
		},
		Adapter: Adapter{
			BaseURL: str(flagAPIURL),
		},
		Storage: Storage{
			DB:           DB{DSN: str(flagDSN)},
			CacheBackend: str(flagCacheBackend),
		},
		Proxy: Proxy{
			ShellOrigin:  str(flagShellOrigin),
			CacheVersion: str(flagCacheVersion),
		},
		Push: Push{
			VAPIDPublicKey: str(flagVAPIDPublicKey),
			ReceiverURL:    str(flagReceiverURL),
		},
		JSONFilePath: str(flagConfig),
	}

	var err error
	cfg.Adapter.RequestTimeout, err = fs.GetDuration(flagRequestTimeout)
	errs = append(errs, err)
	cfg.Workers.SyncInterval, err = fs.GetDuration(flagSyncInterval)
	errs = append(errs, err)
	cfg.Workers.SyncPause, err = fs.GetDuration(flagSyncPause)
	errs = append(errs, err)
	cfg.Notifications.URLs, err = fs.GetStringSlice(flagNotify)
	errs = append(errs, err)

	if listen := fs.Lookup(flagListen); listen != nil {
		cfg.Proxy.Address = listen.Value.String()
	}

	if err = errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress, or an
// empty string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "address"
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
