package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/cairncms/cairn/pkg/model"
	"github.com/cairncms/cairn/pkg/server/store"
)

// Ensure AccountsStore implements store.AccountsStore
var _ store.AccountsStore = (*AccountsStore)(nil)

// AccountsStore implements store.AccountsStore using GORM
type AccountsStore struct {
	db *gorm.DB
}

// NewAccountsStore creates a new AccountsStore
func NewAccountsStore(db *gorm.DB) *AccountsStore {
	return &AccountsStore{db: db}
}

// CreateAccount persists a new account
func (s *AccountsStore) CreateAccount(ctx context.Context, account *model.Account) error {
	return s.db.WithContext(ctx).Create(account).Error
}

// AccountByID retrieves an account by id
func (s *AccountsStore) AccountByID(ctx context.Context, id string) (*model.Account, error) {
	var account model.Account
	tx := s.db.WithContext(ctx).Where("id = ?", id).First(&account)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return &account, nil
}

// AccountByEmail retrieves an account by email
func (s *AccountsStore) AccountByEmail(ctx context.Context, email string, activeOnly bool) (*model.Account, error) {
	return s.accountBy(ctx, "email = ?", email, activeOnly)
}

// AccountByUsername retrieves an account by username
func (s *AccountsStore) AccountByUsername(ctx context.Context, username string, activeOnly bool) (*model.Account, error) {
	return s.accountBy(ctx, "username = ?", username, activeOnly)
}

// AccountByApplication retrieves an account listing the application key
func (s *AccountsStore) AccountByApplication(ctx context.Context, application string, activeOnly bool) (*model.Account, error) {
	return s.accountBy(ctx, "? = ANY(applications)", application, activeOnly)
}

func (s *AccountsStore) accountBy(ctx context.Context, cond string, arg interface{}, activeOnly bool) (*model.Account, error) {
	var account model.Account
	query := s.db.WithContext(ctx).Where(cond, arg)
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.First(&account).Error; err != nil {
		return nil, translate(err)
	}
	return &account, nil
}

// ActivateAccount flips the account matching the activation code to active.
// The code is not cleared, so repeating the call is a no-op that still
// returns the account.
func (s *AccountsStore) ActivateAccount(ctx context.Context, code string) (*model.Account, error) {
	var account model.Account
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("activation_code = ?", code).First(&account).Error; err != nil {
			return translate(err)
		}
		if account.Active {
			return nil
		}
		if err := tx.Model(&account).Update("active", true).Error; err != nil {
			return err
		}
		account.Active = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}
