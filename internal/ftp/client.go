package ftp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	goftp "github.com/jlaffaye/ftp"
	"go.uber.org/zap"
)

const (
	DefaultTimeout     = 30 * time.Second
	DefaultTestTimeout = 10 * time.Second
)

// Reply codes that decide the failure kind.
const (
	codeNotLoggedIn     = 530
	codeNeedAccount     = 532
	codeFileUnavailable = 550
	codeBadFileName     = 553
)

var ErrNoSettings = errors.New("No FTP settings provided")

type Kind int

const (
	KindOther Kind = iota
	KindConnection
	KindAuth
	KindPermission
)

// Error is a classified FTP failure. Its message carries the user-facing prefix.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindConnection:
		return "Failed to connect to FTP server: " + e.Err.Error()
	case KindAuth:
		return "FTP authentication failed: " + e.Err.Error()
	case KindPermission:
		return "FTP permission denied: " + e.Err.Error()
	default:
		return "FTP error: " + e.Err.Error()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

type Settings struct {
	Host     string
	Port     int
	Username string
	Password string
}

func (s Settings) Addr() string {
	port := s.Port
	if port == 0 {
		port = 21
	}
	return net.JoinHostPort(s.Host, strconv.Itoa(port))
}

// Conn is the part of an FTP session the client uses.
type Conn interface {
	Login(user, password string) error
	Stor(path string, r io.Reader) error
	NameList(path string) ([]string, error)
	CurrentDir() (string, error)
	Quit() error
}

// DialFunc opens a session to addr.
type DialFunc func(ctx context.Context, addr string, timeout time.Duration) (Conn, error)

func dialServer(ctx context.Context, addr string, timeout time.Duration) (Conn, error) {
	conn, err := goftp.Dial(addr, goftp.DialWithTimeout(timeout), goftp.DialWithContext(ctx))
	if err != nil {
		return nil, err
	}
	return conn, nil
}

type Client struct {
	timeout     time.Duration
	testTimeout time.Duration
	dial        DialFunc
	logger      *zap.Logger
}

func NewClient(timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		timeout:     timeout,
		testTimeout: DefaultTestTimeout,
		dial:        dialServer,
		logger:      logger,
	}
}

// WithDialer replaces how sessions are opened.
func (c *Client) WithDialer(dial DialFunc) *Client {
	c.dial = dial
	return c
}

// Upload stores one file on the server and returns the success message.
func (c *Client) Upload(ctx context.Context, settings *Settings, filename string, data io.Reader) (string, error) {
	if settings == nil {
		return "", ErrNoSettings
	}

	conn, err := c.open(ctx, settings, c.timeout)
	if err != nil {
		return "", err
	}
	defer conn.Quit()

	if err := conn.Stor(filename, data); err != nil {
		return "", classify(err, KindOther)
	}

	c.logger.Info("ftp upload finished", zap.String("host", settings.Host), zap.String("file", filename))
	return fmt.Sprintf("File '%s' uploaded successfully to %s", filename, settings.Host), nil
}

// Test logs in and lists the working directory.
func (c *Client) Test(ctx context.Context, settings *Settings) (string, error) {
	if settings == nil {
		return "", ErrNoSettings
	}

	conn, err := c.open(ctx, settings, c.testTimeout)
	if err != nil {
		return "", err
	}
	defer conn.Quit()

	dir, err := conn.CurrentDir()
	if err != nil {
		return "", classify(err, KindOther)
	}
	entries, err := conn.NameList(dir)
	if err != nil {
		return "", classify(err, KindOther)
	}

	serverMessage := fmt.Sprintf("working directory %s, %d entries", dir, len(entries))
	return fmt.Sprintf("Connected successfully to %s. Server message: %s", settings.Host, serverMessage), nil
}

func (c *Client) open(ctx context.Context, settings *Settings, timeout time.Duration) (Conn, error) {
	conn, err := c.dial(ctx, settings.Addr(), timeout)
	if err != nil {
		c.logger.Warn("ftp connect failed", zap.String("host", settings.Host), zap.Error(err))
		return nil, &Error{Kind: KindConnection, Err: err}
	}

	if err := conn.Login(settings.Username, settings.Password); err != nil {
		conn.Quit()
		c.logger.Warn("ftp login failed", zap.String("host", settings.Host), zap.Error(err))
		return nil, classify(err, KindAuth)
	}
	return conn, nil
}

// classify maps a server reply to a failure kind. Permission replies are
// recognised by code; fallback is used for everything else.
func classify(err error, fallback Kind) error {
	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		switch protoErr.Code {
		case codeNotLoggedIn:
			return &Error{Kind: KindAuth, Err: err}
		case codeNeedAccount, codeFileUnavailable, codeBadFileName:
			if fallback != KindAuth {
				return &Error{Kind: KindPermission, Err: err}
			}
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "connection"):
		return &Error{Kind: KindConnection, Err: err}
	case strings.Contains(msg, "permission"):
		return &Error{Kind: KindPermission, Err: err}
	}
	return &Error{Kind: fallback, Err: err}
}
