package core

import (
	"context"
	"fmt"
	"io"
	"log"
	"runtime/debug"

	"github.com/gliderlabs/ssh"
	"github.com/josephlewis42/pipesh/core/config"
	"github.com/josephlewis42/pipesh/core/logger"
	"github.com/josephlewis42/pipesh/core/vos"
	"github.com/juju/ratelimit"
	gossh "golang.org/x/crypto/ssh"
)

// Server gives every SSH connection its own Session.
type Server struct {
	configuration *config.Configuration
	logger        *logger.Logger
	sshServer     *ssh.Server
}

// NewServer creates an SSH server using the configured host key.
func NewServer(configuration *config.Configuration, eventLogger *logger.Logger) (*Server, error) {
	hostKeyPem, err := configuration.HostKeyPem()
	if err != nil {
		return nil, fmt.Errorf("reading host key: %w", err)
	}
	signer, err := gossh.ParsePrivateKey(hostKeyPem)
	if err != nil {
		return nil, fmt.Errorf("parsing host key: %w", err)
	}

	server := &Server{
		configuration: configuration,
		logger:        eventLogger,
	}

	server.sshServer = &ssh.Server{
		Addr: fmt.Sprintf(":%d", configuration.SSH.Port),
		Handler: func(s ssh.Session) {
			if err := server.HandleConnection(s); err != nil {
				log.Printf("session error: %v", err)
				s.Exit(1)
			}
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			accepted := configuration.PasswordAllowed(password)
			eventLogger.Sessionless().Record(&logger.LoginAttempt{
				Username:   ctx.User(),
				RemoteAddr: fmt.Sprintf("%s", ctx.RemoteAddr()),
				Accepted:   accepted,
			})
			return accepted
		},
	}
	server.sshServer.AddHostKey(signer)

	return server, nil
}

// HandleConnection runs a shell, or the line given as the SSH command, for
// the connection.
func (srv *Server) HandleConnection(s ssh.Session) (err error) {
	sessionLogger := srv.logger.NewSession()
	defer func() {
		if r := recover(); r != nil {
			sessionLogger.Record(&logger.Panic{
				Context:    "ssh session",
				Stacktrace: string(debug.Stack()),
			})
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	var stdout io.Writer = s
	if rate := srv.configuration.SSH.OutputRate; rate > 0 {
		stdout = ratelimit.Writer(s, ratelimit.NewBucketWithRate(float64(rate), rate))
	}

	vfs, startDir, err := vos.NewVFSFromConfig(srv.configuration)
	if err != nil {
		return err
	}

	ptyInfo, winch, isPTY := s.Pty()
	virtOS, err := vos.NewSessionOS(vfs, startDir, &vos.SessionAttr{
		Files: vos.NewVIOAdapter(s, stdout, s.Stderr()),
		PTY: vos.PTY{
			Width:  ptyInfo.Window.Width,
			Height: ptyInfo.Window.Height,
			Term:   ptyInfo.Term,
			IsPTY:  isPTY,
		},
	})
	if err != nil {
		return err
	}

	// Watch for window changes.
	if isPTY {
		go (func() {
			for window := range winch {
				virtOS.SetPTY(vos.PTY{
					Width:  window.Width,
					Height: window.Height,
					Term:   ptyInfo.Term,
					IsPTY:  isPTY,
				})
			}
		})()
	}

	session := NewSession(srv.configuration, virtOS, sessionLogger, &logger.SessionStart{
		Source:     "ssh",
		User:       s.User(),
		RemoteAddr: fmt.Sprintf("%s", s.RemoteAddr()),
	})

	if line := s.RawCommand(); line != "" {
		if err := session.RunLine(line); err != nil {
			return err
		}
		return s.Exit(0)
	}

	shell, err := NewShell(session)
	if err != nil {
		return err
	}
	defer shell.Close()

	if err := shell.Run(); err != nil {
		return err
	}
	return s.Exit(0)
}

// ListenAndServe accepts connections until the server is shut down.
func (srv *Server) ListenAndServe() error {
	log.Printf("- Starting SSH server on %s\n", srv.sshServer.Addr)
	return srv.sshServer.ListenAndServe()
}

// Shutdown stops accepting connections and waits for sessions to end.
func (srv *Server) Shutdown(ctx context.Context) error {
	return srv.sshServer.Shutdown(ctx)
}
