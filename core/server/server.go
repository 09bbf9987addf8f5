// Package server exposes the shell over SSH. Every session gets its own
// interpreter; all sessions share one serialized client connection to the
// target.
package server

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"

	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"

	"github.com/cascade-sh/cascade/core/config"
	"github.com/cascade-sh/cascade/core/logger"
	"github.com/cascade-sh/cascade/core/remote"
	"github.com/cascade-sh/cascade/core/shell"
)

// Server is the SSH front-end.
type Server struct {
	cfg     *config.Configuration
	client  remote.Client
	resolve shell.Resolver
	log     *logger.Logger

	sshServer *ssh.Server
}

// New builds a server from the configuration. The client is wrapped so that
// concurrent sessions take turns on the single target connection.
func New(cfg *config.Configuration, client remote.Client, resolve shell.Resolver, log *logger.Logger) (*Server, error) {
	s := &Server{
		cfg:     cfg,
		client:  remote.Serialized(client),
		resolve: resolve,
		log:     log,
	}

	s.sshServer = &ssh.Server{
		Addr: fmt.Sprintf(":%d", cfg.SSH.Port),
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			ok := s.passwordAllowed(password)
			if !ok {
				s.log.NewSession().Record(&logger.Entry{Login: &logger.Login{
					Success:    false,
					Username:   ctx.User(),
					RemoteAddr: ctx.RemoteAddr().String(),
				}})
			}
			return ok
		},
	}

	if keyPath := cfg.SSH.HostKeyPath; keyPath != "" {
		s.sshServer.SetOption(ssh.HostKeyFile(keyPath))
	} else {
		// No configured key: generate a throwaway host key for this run.
		_, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, err
		}
		signer, err := gossh.NewSignerFromKey(priv)
		if err != nil {
			return nil, err
		}
		s.sshServer.AddHostKey(signer)
	}

	return s, nil
}

// passwordAllowed checks the password against every configured one in
// constant time. An empty list rejects all logins.
func (s *Server) passwordAllowed(password string) bool {
	ok := false
	for _, allowed := range s.cfg.SSH.Passwords {
		if subtle.ConstantTimeCompare([]byte(password), []byte(allowed)) == 1 {
			ok = true
		}
	}
	return ok
}

func (s *Server) handleSession(sess ssh.Session) {
	sessionLog := s.log.NewSession()
	sessionLog.Record(&logger.Entry{Login: &logger.Login{
		Success:    true,
		Username:   sess.User(),
		RemoteAddr: sess.RemoteAddr().String(),
	}})

	ptyInfo, winch, isPTY := sess.Pty()
	var mu sync.Mutex
	width := ptyInfo.Window.Width
	if width <= 0 {
		width = 80
	}
	go func() {
		for window := range winch {
			mu.Lock()
			width = window.Width
			mu.Unlock()
		}
	}()

	if s.cfg.SSH.Banner != "" {
		fmt.Fprintln(sess, s.cfg.SSH.Banner)
	}
	if isPTY && s.cfg.Motd != "" {
		fmt.Fprintln(sess, s.cfg.Motd)
	}

	sh, err := shell.New(sess.Context(), s.client, s.cfg, s.resolve, sessionLog, shell.Options{
		Stdin:      sess,
		Stdout:     sess,
		Stderr:     sess.Stderr(),
		IsTerminal: isPTY,
		Width: func() int {
			mu.Lock()
			defer mu.Unlock()
			return width
		},
	})
	if err != nil {
		fmt.Fprintf(sess.Stderr(), "cascade: %v\n", err)
		sess.Exit(1)
		return
	}
	defer sh.Close()

	// `ssh user@host 'line'` runs one line and returns its exit code.
	if raw := sess.RawCommand(); raw != "" {
		exit := sh.Interpret(sess.Context(), raw)
		sessionLog.Record(&logger.Entry{SessionEnd: &logger.SessionEnd{}})
		sess.Exit(exit)
		return
	}

	sh.Run(sess.Context())
	sessionLog.Record(&logger.Entry{SessionEnd: &logger.SessionEnd{}})
	sess.Exit(sh.Session.LastExit)
}

// ListenAndServe accepts connections until Shutdown. A clean shutdown
// reports nil rather than ssh.ErrServerClosed.
func (s *Server) ListenAndServe() error {
	if err := s.sshServer.ListenAndServe(); !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for active sessions.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.sshServer.Shutdown(ctx)
}

// Addr reports the configured listen address.
func (s *Server) Addr() string {
	return s.sshServer.Addr
}
