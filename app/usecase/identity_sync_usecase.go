package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"portal-service/app/domain"
	"portal-service/app/port"
)

// SyncAccount is one entry of the account list the identity sync walks.
type SyncAccount struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// SyncResult summarizes one batch run.
type SyncResult struct {
	Total     int
	Rewritten int
	InSync    int
	Failed    int
}

// IdentitySyncUsecase reconciles local user primary keys with the identity
// provider's identity IDs for a fixed account list. The batch is strictly
// sequential: each account's authenticate, lookup, update, sign-out sequence
// completes before the next begins. A per-account failure is logged and the
// batch continues; there is no rollback, so partial application across the
// list is an accepted outcome.
type IdentitySyncUsecase struct {
	identity port.IdentityGateway
	users    port.UserRepository
	logger   *slog.Logger
}

// NewIdentitySyncUsecase creates a new IdentitySyncUsecase
func NewIdentitySyncUsecase(
	identity port.IdentityGateway,
	users port.UserRepository,
	logger *slog.Logger,
) *IdentitySyncUsecase {
	return &IdentitySyncUsecase{
		identity: identity,
		users:    users,
		logger:   logger.With("component", "identity_sync"),
	}
}

// Run walks the account list and reconciles each one.
func (u *IdentitySyncUsecase) Run(ctx context.Context, accounts []SyncAccount) *SyncResult {
	batchID := fmt.Sprintf("SYNC-%d", time.Now().UnixNano())
	result := &SyncResult{Total: len(accounts)}

	u.logger.Info("starting identity sync batch",
		"batch_id", batchID,
		"accounts", len(accounts))

	for _, account := range accounts {
		rewritten, err := u.syncAccount(ctx, account)
		switch {
		case err != nil:
			result.Failed++
			u.logger.Error("account sync failed",
				"batch_id", batchID,
				"email", account.Email,
				"error", err)
		case rewritten:
			result.Rewritten++
		default:
			result.InSync++
		}
	}

	u.logger.Info("identity sync batch finished",
		"batch_id", batchID,
		"total", result.Total,
		"rewritten", result.Rewritten,
		"in_sync", result.InSync,
		"failed", result.Failed)

	return result
}

// syncAccount reconciles a single account. The provider session is signed
// out after processing regardless of outcome, so no session leaks across
// iterations.
func (u *IdentitySyncUsecase) syncAccount(ctx context.Context, account SyncAccount) (rewritten bool, err error) {
	identity, err := u.identity.Authenticate(ctx, account.Email, account.Password)
	if err != nil {
		return false, fmt.Errorf("authenticate: %w", err)
	}

	defer func() {
		if signOutErr := u.identity.SignOut(ctx, identity.SessionToken); signOutErr != nil {
			u.logger.Warn("sign-out after sync failed",
				"email", account.Email,
				"error", signOutErr)
		}
	}()

	user, err := u.users.FindByEmail(ctx, account.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, fmt.Errorf("no local user for %s: %w", account.Email, err)
		}
		return false, fmt.Errorf("lookup: %w", err)
	}

	if user.ID == identity.ID {
		u.logger.Debug("user already in sync",
			"email", account.Email,
			"user_id", user.ID)
		return false, nil
	}

	u.logger.Info("rewriting local user ID",
		"email", account.Email,
		"old_id", user.ID,
		"new_id", identity.ID)

	if _, err := u.users.UpdateID(ctx, account.Email, identity.ID); err != nil {
		return false, fmt.Errorf("rewrite: %w", err)
	}

	return true, nil
}
