package migration

import (
	"context"
	"errors"

	"github.com/mytestspam8-prog/africash/internal/domain/entity"
	errs "github.com/mytestspam8-prog/africash/internal/domain/error"
	coreport "github.com/mytestspam8-prog/africash/internal/domain/port/core"
	"github.com/mytestspam8-prog/africash/internal/domain/port/persistence"
	"github.com/mytestspam8-prog/africash/internal/domain/usecase/auth"
	"github.com/mytestspam8-prog/africash/internal/domain/usecase/wallet"
)

// Demo account credentials, matching the development fixtures
const (
	demoEmail    = "test@africash.com"
	demoPassword = "password123"
	demoName     = "Test User"
	demoPhone    = "+241 00 00 00 00"
	demoReferral = "REF123"
	demoBonus    = 50000 // 500.00 welcome balance in cents
)

// SeedDemoUser creates the demo account with its welcome bonus if it does
// not exist yet. The bonus is credited through the balance mutator so the
// ledger stays consistent with the balance. Idempotent across restarts.
func SeedDemoUser(
	ctx context.Context,
	users persistence.UserRepository,
	walletService *wallet.Service,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) error {
	if _, err := users.GetByEmail(ctx, demoEmail); err == nil {
		logger.Info("Demo user already seeded", map[string]any{
			"email": demoEmail,
		})
		return nil
	} else if !errors.Is(err, errs.ErrUserNotFound) {
		return err
	}

	hash, err := auth.HashPassword(demoPassword)
	if err != nil {
		return err
	}

	user, err := entity.NewUser(demoName, demoEmail, demoPhone, hash, demoReferral, timeProvider)
	if err != nil {
		return err
	}

	if err := users.Create(ctx, user); err != nil {
		// A concurrent instance may have seeded first
		if errors.Is(err, errs.ErrEmailTaken) {
			return nil
		}
		return err
	}

	if _, err := walletService.ApplyDelta(ctx, user.ID, demoBonus, entity.TypeBonus, "Welcome Bonus"); err != nil {
		return err
	}

	logger.Info("Database seeded with demo user", map[string]any{
		"email": demoEmail,
	})
	return nil
}
