// Package app wires configuration, logging, the database store and the
// password hasher into a Provisioner and runs a single CreateUser call.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/amrit110/moonshot-ui/internal/common"
	"github.com/amrit110/moonshot-ui/internal/config"
	"github.com/amrit110/moonshot-ui/internal/cryptox"
	"github.com/amrit110/moonshot-ui/internal/logging"
	"github.com/amrit110/moonshot-ui/internal/provisioner"
	"github.com/amrit110/moonshot-ui/internal/store"
	"golang.org/x/term"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	provisioner  *provisioner.Provisioner
	out          io.Writer
	readPassword func() (string, error)
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stderr, c.Debug)

	connector, err := store.NewConnector(c.DatabaseDSN, store.Options{
		Migrate:        c.Migrate,
		ConnectTimeout: c.ConnectTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	p := provisioner.New(connector, cryptox.NewBcryptHasher(c.BcryptCost), logger)

	return &App{
		config:       c,
		logger:       logger,
		provisioner:  p,
		out:          os.Stdout,
		readPassword: promptPassword,
	}, nil
}

func (a *App) initSignalHandler(cancelFunc context.CancelFunc) func() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case <-sigs:
			cancelFunc()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}

// Run creates the configured user, prints the outcome to stdout and returns
// the process exit code: 0 on success, 1 on failure.
func (a *App) Run(ctx context.Context) int {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	stop := a.initSignalHandler(cancelFunc)
	defer stop()

	password := a.config.Password
	if password == "" {
		p, err := a.readPassword()
		if err != nil {
			a.logger.Warn(ctx, "error reading password", "error", err.Error())
		}
		password = p
	}

	user, err := a.provisioner.CreateUser(ctx, a.config.Email, password)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to add user: %v\n", err)
		return 1
	}

	fmt.Fprintf(a.out, "User added successfully: %s (id %d)\n", user.Email, user.ID)
	return 0
}

// promptPassword reads the password from the terminal without echo. It
// returns "" when stdin is not a terminal.
func promptPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", nil
	}

	fmt.Fprint(os.Stderr, "Enter password: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(b)

	return string(b), nil
}
