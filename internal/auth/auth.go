package auth

import (
	"errors"
	"github.com/KeivinIsmaili/cashcard/internal/config"
	"github.com/KeivinIsmaili/cashcard/internal/model"
	"golang.org/x/crypto/bcrypt"
	"slices"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Verifier resolves request credentials to a principal.
type Verifier interface {
	Authenticate(username, password string) (*model.Principal, error)
}

type account struct {
	hash  []byte
	roles []string
}

// Auth is a Verifier over a fixed set of accounts hashed once at start-up.
type Auth struct {
	users map[string]account
	// dummy is compared against when the username is unknown so both
	// failure paths cost one bcrypt comparison.
	dummy []byte
}

func New(conf *config.AuthConfig) (*Auth, error) {
	cost := conf.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	users := conf.Users
	if len(users) == 0 {
		users = DefaultUsers()
	}

	a := &Auth{users: make(map[string]account, len(users))}
	for _, u := range users {
		hash, err := HashPassword(u.Password, cost)
		if err != nil {
			return nil, err
		}
		a.users[u.Username] = account{hash: []byte(hash), roles: slices.Clone(u.Roles)}
	}

	dummy, err := HashPassword("", cost)
	if err != nil {
		return nil, err
	}
	a.dummy = []byte(dummy)

	return a, nil
}

// DefaultUsers returns the demo accounts installed when none are configured.
func DefaultUsers() []config.UserConfig {
	return []config.UserConfig{
		{Username: "sarah1", Password: "abc123", Roles: []string{model.RoleCardOwner}},
		{Username: "hank-owns-no-cards", Password: "qrs456", Roles: []string{"NON-OWNER"}},
		{Username: "kumar2", Password: "xyz789", Roles: []string{model.RoleCardOwner}},
	}
}

func (a *Auth) Authenticate(username, password string) (*model.Principal, error) {
	acc, ok := a.users[username]
	if !ok {
		_ = ComparePasswords(a.dummy, []byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := ComparePasswords(acc.hash, []byte(password)); err != nil {
		return nil, err
	}

	return &model.Principal{Name: username, Roles: slices.Clone(acc.roles)}, nil
}

func HashPassword(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

func ComparePasswords(hash, password []byte) error {
	if err := bcrypt.CompareHashAndPassword(hash, password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
