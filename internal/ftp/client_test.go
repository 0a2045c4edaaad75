package ftp_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mockup-catalog-backend/internal/ftp"
)

type fakeConn struct {
	loginErr error
	storErr  error
	stored   map[string][]byte
	quit     bool
}

func (f *fakeConn) Login(user, password string) error { return f.loginErr }

func (f *fakeConn) Stor(path string, r io.Reader) error {
	if f.storErr != nil {
		return f.storErr
	}
	data, _ := io.ReadAll(r)
	f.stored[path] = data
	return nil
}

func (f *fakeConn) NameList(path string) ([]string, error) { return []string{"a.csv", "b.csv"}, nil }

func (f *fakeConn) CurrentDir() (string, error) { return "/", nil }

func (f *fakeConn) Quit() error {
	f.quit = true
	return nil
}

func dialerFor(conn *fakeConn, dialErr error, gotAddr *string) ftp.DialFunc {
	return func(ctx context.Context, addr string, timeout time.Duration) (ftp.Conn, error) {
		if gotAddr != nil {
			*gotAddr = addr
		}
		if dialErr != nil {
			return nil, dialErr
		}
		return conn, nil
	}
}

var settings = &ftp.Settings{Host: "ftp.example.com", Port: 2121, Username: "u", Password: "p"}

func TestUpload_Success(t *testing.T) {
	conn := &fakeConn{stored: map[string][]byte{}}
	var addr string
	client := ftp.NewClient(0, nil).WithDialer(dialerFor(conn, nil, &addr))

	msg, err := client.Upload(context.Background(), settings, "export.csv", bytes.NewBufferString("a,b\n"))
	require.NoError(t, err)
	assert.Equal(t, "File 'export.csv' uploaded successfully to ftp.example.com", msg)
	assert.Equal(t, "ftp.example.com:2121", addr)
	assert.Equal(t, []byte("a,b\n"), conn.stored["export.csv"])
	assert.True(t, conn.quit)
}

func TestUpload_NoSettings(t *testing.T) {
	client := ftp.NewClient(0, nil)
	_, err := client.Upload(context.Background(), nil, "x.csv", bytes.NewReader(nil))
	assert.EqualError(t, err, "No FTP settings provided")
}

func TestUpload_Classification(t *testing.T) {
	tests := []struct {
		name     string
		dialErr  error
		loginErr error
		storErr  error
		kind     ftp.Kind
		prefix   string
	}{
		{"dial", errors.New("dial tcp: i/o timeout"), nil, nil, ftp.KindConnection, "Failed to connect to FTP server: "},
		{"login", nil, &textproto.Error{Code: 530, Msg: "Login incorrect."}, nil, ftp.KindAuth, "FTP authentication failed: "},
		{"login other", nil, errors.New("unexpected reply"), nil, ftp.KindAuth, "FTP authentication failed: "},
		{"stor denied", nil, nil, &textproto.Error{Code: 550, Msg: "Permission denied."}, ftp.KindPermission, "FTP permission denied: "},
		{"stor other", nil, nil, &textproto.Error{Code: 452, Msg: "Insufficient storage space"}, ftp.KindOther, "FTP error: "},
		{"stor connection", nil, nil, errors.New("connection reset by peer"), ftp.KindConnection, "Failed to connect to FTP server: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := &fakeConn{loginErr: tt.loginErr, storErr: tt.storErr, stored: map[string][]byte{}}
			client := ftp.NewClient(time.Second, nil).WithDialer(dialerFor(conn, tt.dialErr, nil))

			_, err := client.Upload(context.Background(), settings, "x.csv", bytes.NewBufferString("x"))
			require.Error(t, err)

			var ftpErr *ftp.Error
			require.True(t, errors.As(err, &ftpErr))
			assert.Equal(t, tt.kind, ftpErr.Kind)
			assert.Contains(t, err.Error(), tt.prefix)
		})
	}
}

func TestTest_Success(t *testing.T) {
	conn := &fakeConn{stored: map[string][]byte{}}
	client := ftp.NewClient(0, nil).WithDialer(dialerFor(conn, nil, nil))

	msg, err := client.Test(context.Background(), settings)
	require.NoError(t, err)
	assert.Contains(t, msg, "Connected successfully to ftp.example.com. Server message: ")
	assert.Contains(t, msg, "2 entries")
}

func TestSettingsAddr_DefaultPort(t *testing.T) {
	s := ftp.Settings{Host: "ftp.example.com"}
	assert.Equal(t, "ftp.example.com:21", s.Addr())
}
