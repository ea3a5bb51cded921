package application

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/foryous/reviews-api/internal/domain/entity"
	repo "github.com/foryous/reviews-api/internal/domain/repository"
)

// CreateStatus classifies the outcome of an account create so the HTTP layer
// can decide how much of the distinction to expose.
type CreateStatus int

const (
	// StatusStored means the account was persisted and has an identity.
	StatusStored CreateStatus = iota
	// StatusInvalid means a field check failed before the store was touched.
	StatusInvalid
	// StatusConflict means the store rejected the insert on a unique key.
	StatusConflict
)

// AccountResult carries the outcome of a create attempt. Message is only
// meaningful for the two failure statuses.
type AccountResult struct {
	Status  CreateStatus
	Message string
	Account *entity.Account
}

const minFieldLen = 2

type AccountService struct {
	Repo   repo.AccountRepository
	Logger *logrus.Logger
}

func NewAccountService(r repo.AccountRepository, logger *logrus.Logger) *AccountService {
	return &AccountService{Repo: r, Logger: logger}
}

type CreateAccountInput struct {
	Name        string
	Email       string
	PhoneNumber string
	Password    string
	HasPassword bool
}

// Create validates the input, constructs the account and persists it.
// Validation failures never touch the store. A store conflict is reported as
// a result, not an error; only unexpected store failures return err.
func (s *AccountService) Create(in CreateAccountInput) (AccountResult, error) {
	if utf8.RuneCountInString(in.Name) < minFieldLen {
		return AccountResult{Status: StatusInvalid, Message: "Name is missing, or is less than 2 characters"}, nil
	}
	// The message says "User ID" for the email field; clients depend on
	// the wording.
	if utf8.RuneCountInString(in.Email) < minFieldLen {
		return AccountResult{Status: StatusInvalid, Message: "User ID is missing, or is less than 2 characters"}, nil
	}

	a := &entity.Account{Name: in.Name, Email: in.Email}
	if in.HasPassword {
		if err := a.SetPassword(in.Password); err != nil {
			return AccountResult{}, err
		}
	}
	if in.PhoneNumber != "" {
		a.PhoneNumber = in.PhoneNumber
	}

	if err := s.Repo.Create(a); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			s.Logger.WithFields(logrus.Fields{"name": in.Name, "email": in.Email}).Warn("account create conflict")
			return AccountResult{
				Status:  StatusConflict,
				Message: fmt.Sprintf("Processed %s, either a format error or email %s is duplicate", in.Name, in.Email),
			}, nil
		}
		return AccountResult{}, err
	}
	return AccountResult{Status: StatusStored, Account: a}, nil
}

// List returns the projection of every account row.
func (s *AccountService) List() ([]entity.AccountProjection, error) {
	accounts, err := s.Repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]entity.AccountProjection, 0, len(accounts))
	for i := range accounts {
		out = append(out, accounts[i].Projection())
	}
	return out, nil
}
