// Package provisioner creates user accounts: it validates the credentials,
// opens a database session, hashes the password and inserts the user row.
//
// Every failure is returned as an *Error carrying an ErrorKind; nothing else
// escapes CreateUser, panics from collaborators included.
package provisioner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amrit110/moonshot-ui/internal/common"
	"github.com/amrit110/moonshot-ui/internal/cryptox"
	"github.com/amrit110/moonshot-ui/internal/logging"
	"github.com/amrit110/moonshot-ui/internal/models"
	"github.com/amrit110/moonshot-ui/internal/repositories/users"
	"github.com/amrit110/moonshot-ui/internal/store"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type credentials struct {
	Email    string `validate:"required,email,max=320"`
	Password string `validate:"required"`
}

type Provisioner struct {
	connector store.Connector
	hasher    cryptox.Hasher
	logger    logging.Logger
	validate  *validator.Validate
}

func New(connector store.Connector, hasher cryptox.Hasher, logger logging.Logger) *Provisioner {
	return &Provisioner{
		connector: connector,
		hasher:    hasher,
		logger:    logger,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// CreateUser stores a new user with a bcrypt hash of password and returns it
// with the id assigned by the database.
//
// The session opened for the call is closed on every path once connecting
// succeeded. The insert runs in a transaction, so a failed call leaves no row.
// Calling it twice with the same email fails the second time with
// KindPersistence and an error matching common.ErrorAlreadyExists.
func (p *Provisioner) CreateUser(ctx context.Context, email, password string) (user *models.User, err error) {
	log := p.logger.With("request_id", uuid.NewString())

	defer func() {
		if r := recover(); r != nil {
			user = nil
			err = &Error{Kind: KindUnknown, Err: fmt.Errorf("panic: %v", r)}
		}
		if err != nil {
			log.Error(ctx, "error creating user", "email", email, "kind", string(KindOf(err)), "error", err.Error())
		}
	}()

	if verr := p.validate.Struct(credentials{Email: email, Password: password}); verr != nil {
		return nil, &Error{Kind: KindValidation, Err: fmt.Errorf("%w: %s", common.ErrorValidation, describe(verr))}
	}

	session, err := p.connector.Connect(ctx)
	if err != nil {
		return nil, &Error{Kind: KindConnection, Err: err}
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			log.Warn(ctx, "error closing database session", "error", cerr.Error())
		}
	}()
	log.Debug(ctx, "database session opened")

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, &Error{Kind: KindHashing, Err: err}
	}

	log.Info(ctx, "attempting to create user", "email", email)

	err = session.InTx(ctx, func(ctx context.Context, repo users.Repository) error {
		created, err := repo.Create(ctx, &models.User{Email: email, PasswordHash: hash})
		if err != nil {
			return err
		}
		user = created
		return nil
	})
	if err != nil {
		return nil, &Error{Kind: KindPersistence, Err: err}
	}

	log.Info(ctx, "user created", "id", user.ID, "email", user.Email)
	return user, nil
}

// describe turns validator errors into "email is not a valid address" style
// messages.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "email":
			msgs = append(msgs, field+" is not a valid address")
		case "max":
			msgs = append(msgs, field+" is too long")
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return strings.Join(msgs, ", ")
}
