package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"

	"github.com/devmarvs/sesscookie/apperr"
	"github.com/devmarvs/sesscookie/config"
	"github.com/devmarvs/sesscookie/logging"
)

const defaultEnvPrefix = "SESSCOOKIE_"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stdout)
		return 2
	}

	switch args[0] {
	case "issue":
		return issueCmd(args[1:], stdout, stderr)
	case "clear":
		return clearCmd(args[1:], stdout, stderr)
	case "match":
		return matchCmd(args[1:], stdout, stderr)
	case "check":
		return checkCmd(args[1:], stdout, stderr)
	default:
		usage(stdout)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "sesscookie CLI")
	fmt.Fprintln(w, "\nCommands:")
	fmt.Fprintln(w, "  sesscookie issue [-config app.json|app.ini] [-env-prefix SESSCOOKIE_] [-value v]")
	fmt.Fprintln(w, "  sesscookie clear [-config app.json|app.ini] [-env-prefix SESSCOOKIE_]")
	fmt.Fprintln(w, "  sesscookie match [-config app.json|app.ini] -origin example.com -host www.example.com -path /app")
	fmt.Fprintln(w, "  sesscookie check [-config app.json|app.ini] [-env-prefix SESSCOOKIE_]")
}

type common struct {
	configPath string
	envPrefix  string
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "JSON or INI config file")
	fs.StringVar(&c.envPrefix, "env-prefix", defaultEnvPrefix, "Environment override prefix (empty to disable)")
}

func (c common) load(stderr io.Writer) (config.Config, *slog.Logger, bool) {
	cfg, err := config.Load(c.configPath, c.envPrefix)
	logger := logging.NewLogger(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: stderr})
	if err != nil {
		attrs := []any{slog.String("error", err.Error())}
		if appErr := apperr.As(err); appErr != nil {
			attrs = append(attrs, slog.String("code", appErr.Code))
		}
		logger.Error("load config failed", attrs...)
		return cfg, logger, false
	}
	for _, warning := range config.Warnings(cfg) {
		logger.Warn(warning, slog.Any("policy", cfg.Cookie))
	}
	return cfg, logger, true
}

func issueCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("issue", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var c common
	c.register(fs)
	value := fs.String("value", "", "Cookie value")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, logger, ok := c.load(stderr)
	if !ok {
		return 1
	}

	cookie := cfg.Cookie.Cookie(*value)
	logger.Debug("cookie issued", slog.Any("policy", cfg.Cookie), slog.Time("expires", cookie.Expires))
	fmt.Fprintf(stdout, "Set-Cookie: %s\n", cookie.String())
	return 0
}

func clearCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("clear", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var c common
	c.register(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, _, ok := c.load(stderr)
	if !ok {
		return 1
	}

	fmt.Fprintf(stdout, "Set-Cookie: %s\n", cfg.Cookie.Expired().String())
	return 0
}

func matchCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("match", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var c common
	c.register(fs)
	origin := fs.String("origin", "", "Host that issued the cookie (required)")
	host := fs.String("host", "", "Request host (default: origin)")
	path := fs.String("path", "/", "Request path")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *origin == "" {
		fmt.Fprintln(stderr, "usage: sesscookie match -origin example.com [-host www.example.com] [-path /app]")
		return 2
	}
	if *host == "" {
		*host = *origin
	}

	cfg, _, ok := c.load(stderr)
	if !ok {
		return 1
	}

	req := &http.Request{
		Method: http.MethodGet,
		URL:    &url.URL{Scheme: "http", Host: *host, Path: *path},
		Host:   *host,
	}

	if cfg.Cookie.Applies(*origin, req) {
		fmt.Fprintln(stdout, "match")
		return 0
	}
	fmt.Fprintln(stdout, "no match")
	return 1
}

func checkCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var c common
	c.register(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, logger, ok := c.load(stderr)
	if !ok {
		return 1
	}

	logger.Info("config ok", slog.Any("policy", cfg.Cookie))
	fmt.Fprintln(stdout, "ok")
	return 0
}
