package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"

	"github.com/zalando/go-keyring"
	"golang.org/x/term"
)

// Credential store coordinates and the session override variable.
const (
	keyringService = "adventofcode"
	keyringUser    = "session_id"
	sessionEnv     = "AOC_SESSION"
)

// Session storage targets.
const (
	storeKeyring = "keyring"
	storeConfig  = "config"
)

var errNoSession = errors.New("no session id stored")

// secret holds a credential and keeps it out of logs and dumps.
type secret string

func (s secret) String() string   { return "[redacted]" }
func (s secret) GoString() string { return `secret("[redacted]")` }

func (s secret) MarshalText() ([]byte, error) { return []byte("[redacted]"), nil }

// Expose returns the raw value.
func (s secret) Expose() string { return string(s) }

// sessionStore resolves the session id from the environment, the config file
// and the OS keyring, in that order.
type sessionStore struct {
	cfg        *appConfig
	configPath string
	log        *logger
	getenv     func(string) string
	prompt     func() (string, error)
	hold       func(func())
}

func newSessionStore(cfg *appConfig, configPath string, log *logger) *sessionStore {
	return &sessionStore{
		cfg:        cfg,
		configPath: configPath,
		log:        log,
		getenv:     os.Getenv,
		prompt:     promptSession,
		hold:       func(f func()) { f() },
	}
}

// lookup returns the first stored session id without prompting.
func (s *sessionStore) lookup() (secret, string, error) {
	if v := strings.TrimSpace(s.getenv(sessionEnv)); v != "" {
		return secret(v), "env", nil
	}
	if s.cfg != nil && s.cfg.SessionID != "" {
		return secret(s.cfg.SessionID), storeConfig, nil
	}
	v, err := keyring.Get(keyringService, keyringUser)
	switch {
	case err == nil && strings.TrimSpace(v) != "":
		return secret(strings.TrimSpace(v)), storeKeyring, nil
	case err == nil, errors.Is(err, keyring.ErrNotFound):
		return "", "", errNoSession
	default:
		return "", "", fmt.Errorf("read keyring: %w", err)
	}
}

// SessionID returns the stored session id. When nothing is stored it asks for
// one and saves the answer in the keyring.
func (s *sessionStore) SessionID(ctx context.Context) (secret, error) {
	v, source, err := s.lookup()
	if err == nil {
		s.log.debugf("session id from %s", source)
		return v, nil
	}
	if !errors.Is(err, errNoSession) {
		s.log.warnf("%v, asking for session id", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var raw string
	s.hold(func() { raw, err = s.prompt() })
	if err != nil {
		return "", err
	}
	id, err := parseSessionInput(raw)
	if err != nil {
		return "", err
	}
	if err := s.Save(id, storeKeyring); err != nil {
		return "", err
	}
	return id, nil
}

// Save stores the session id in target.
func (s *sessionStore) Save(id secret, target string) error {
	switch target {
	case storeKeyring:
		if err := keyring.Set(keyringService, keyringUser, id.Expose()); err != nil {
			return fmt.Errorf("write keyring: %w", err)
		}
		s.log.ok("session id saved to keyring")
	case storeConfig:
		if s.cfg == nil || s.configPath == "" {
			return errors.New("no config file to save session id to")
		}
		s.cfg.SessionID = id.Expose()
		if err := saveConfig(s.configPath, *s.cfg); err != nil {
			return err
		}
		s.log.okf("session id saved to %s", s.configPath)
	default:
		return fmt.Errorf("unknown session store %q (want %s or %s)", target, storeKeyring, storeConfig)
	}
	return nil
}

// Forget removes the keyring entry. A missing entry is not an error.
func (s *sessionStore) Forget() error {
	if err := keyring.Delete(keyringService, keyringUser); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("delete keyring entry: %w", err)
	}
	return nil
}

// promptSession reads the session id from the terminal without echo, or a
// single line when stdin is not a terminal.
func promptSession() (string, error) {
	_, _ = fmt.Fprint(os.Stderr, "Enter session id (token / `Cookie: ...` / curl command): ")
	if isTerminal(os.Stdin) {
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		_, _ = fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("read session id: %w", err)
		}
		return string(b), nil
	}
	return readLine(os.Stdin)
}

func readLine(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if sc.Scan() {
		return sc.Text(), nil
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read session id: %w", err)
	}
	return "", errors.New("empty input")
}

// Regex patterns for parsing curl commands and headers.
var (
	reCurlCookieBQuoted   = regexp.MustCompile(`(?s)(?:^|\s)-b\s+(?:'([^']*)'|"([^"]*)")`)
	reCurlCookieBUnquoted = regexp.MustCompile(`(?m)(?:^|\s)-b\s+([^\s\\]+)`)
	reHeaderCookie        = regexp.MustCompile(`(?i)(?:^|\s)(?:-H\s+)?['"]?cookie\s*:\s*([^'"\n]*)`)
)

// parseSessionInput extracts the session cookie value from a bare token, a
// `session=...` pair, a Cookie header or a curl command.
func parseSessionInput(text string) (secret, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("empty input")
	}
	trim := func(s string) string { return strings.TrimSpace(strings.Trim(s, `"'`)) }

	header := ""
	if m := reCurlCookieBQuoted.FindStringSubmatch(text); len(m) == 3 {
		header = trim(m[1])
		if header == "" {
			header = trim(m[2])
		}
	}
	if header == "" {
		if m := reHeaderCookie.FindStringSubmatch(text); len(m) == 2 {
			header = trim(m[1])
		}
	}
	if header == "" {
		if m := reCurlCookieBUnquoted.FindStringSubmatch(text); len(m) == 2 {
			header = trim(m[1])
		}
	}
	if header == "" && strings.Contains(text, "=") {
		header = trim(text)
	}

	if header == "" {
		token := trim(text)
		if strings.ContainsAny(token, " \t\r\n;") {
			return "", errors.New("session id not found: paste the token, `session=...` or a curl command")
		}
		return secret(token), nil
	}
	for _, c := range parseCookieHeader(header) {
		if c.Name == "session" && c.Value != "" {
			return secret(c.Value), nil
		}
	}
	return "", errors.New("session cookie not found in input")
}

// parseCookieHeader parses a Cookie header string into individual cookies.
func parseCookieHeader(header string) []*http.Cookie {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil
	}
	parts := strings.Split(header, ";")
	out := make([]*http.Cookie, 0, len(parts))
	for _, p := range parts {
		name, val, ok := strings.Cut(strings.TrimSpace(p), "=")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out = append(out, &http.Cookie{Name: name, Value: strings.TrimSpace(val), Path: "/"})
	}
	return out
}
