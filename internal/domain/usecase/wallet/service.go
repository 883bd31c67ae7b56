package wallet

import (
	"context"
	"fmt"

	"github.com/mytestspam8-prog/africash/internal/domain/entity"
	errs "github.com/mytestspam8-prog/africash/internal/domain/error"
	coreport "github.com/mytestspam8-prog/africash/internal/domain/port/core"
	"github.com/mytestspam8-prog/africash/internal/domain/port/persistence"
)

// Service is the balance mutator: the only sanctioned path for changing a
// user's stored balance. Every mutation writes the balance and its ledger
// entry inside one unit of work, so the ledger cannot drift from the balance.
type Service struct {
	uow          persistence.UnitOfWork
	ledger       persistence.LedgerRepository
	users        persistence.UserRepository
	rewards      RewardTable
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new wallet service
func NewService(
	uow persistence.UnitOfWork,
	users persistence.UserRepository,
	ledger persistence.LedgerRepository,
	rewards RewardTable,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	if rewards == nil {
		rewards = DefaultRewardTable()
	}
	return &Service{
		uow:          uow,
		users:        users,
		ledger:       ledger,
		rewards:      rewards,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ApplyDelta adjusts the user's balance by a signed amount and appends the
// matching ledger entry atomically. Either both writes persist or neither.
func (s *Service) ApplyDelta(
	ctx context.Context,
	userID uint64,
	deltaInCents int64,
	txType entity.TransactionType,
	description string,
) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	entry, err := entity.NewTransaction(userID, txType, deltaInCents, description, s.timeProvider)
	if err != nil {
		return nil, err
	}

	var user *entity.User
	err = s.withinTransaction(ctx, func(txCtx context.Context) error {
		var txErr error
		user, txErr = s.uow.GetUserRepository(txCtx).AdjustBalance(txCtx, userID, deltaInCents)
		if txErr != nil {
			return txErr
		}
		return s.uow.GetLedgerRepository(txCtx).AppendTransaction(txCtx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Balance mutated", map[string]any{
		"user_id":     userID,
		"type":        string(txType),
		"delta":       entity.FormatCents(deltaInCents),
		"new_balance": user.FormattedBalance(),
	})

	return user, nil
}

// Earn credits the reward for a completed ad task. For known task IDs the
// server-side reward table overrides the client-reported amount.
func (s *Service) Earn(ctx context.Context, userID uint64, taskID string, clientAmountInCents int64) (*entity.User, error) {
	if taskID == "" {
		return nil, errs.NewValidationError("taskId", "taskId is required")
	}
	if clientAmountInCents < 0 {
		return nil, errs.ErrNegativeAmount
	}

	amount, known := s.rewards.Resolve(taskID, clientAmountInCents)
	if !known {
		s.logger.Warn("Unknown task ID, trusting client amount", map[string]any{
			"user_id": userID,
			"task_id": taskID,
			"amount":  entity.FormatCents(amount),
		})
	}
	if amount <= 0 {
		return nil, errs.NewValidationError("amount", "amount must be positive")
	}

	return s.ApplyDelta(ctx, userID, amount, entity.TypeEarn, fmt.Sprintf("Completed task: %s", taskID))
}

// Withdraw creates a pending payout request, debits the balance and appends
// the ledger entry, all inside one unit of work. A request exceeding the
// current balance fails with ErrInsufficientFunds and changes nothing.
func (s *Service) Withdraw(ctx context.Context, userID uint64, amountInCents int64, method, phoneNumber string) (*entity.Withdrawal, error) {
	withdrawal, err := entity.NewWithdrawal(userID, amountInCents, method, phoneNumber, s.timeProvider)
	if err != nil {
		return nil, err
	}

	entry, err := entity.NewTransaction(
		userID,
		entity.TypeWithdraw,
		-amountInCents,
		fmt.Sprintf("Withdrawal request via %s", method),
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	err = s.withinTransaction(ctx, func(txCtx context.Context) error {
		ledger := s.uow.GetLedgerRepository(txCtx)
		if _, txErr := s.uow.GetUserRepository(txCtx).AdjustBalance(txCtx, userID, -amountInCents); txErr != nil {
			return txErr
		}
		if txErr := ledger.CreateWithdrawal(txCtx, withdrawal); txErr != nil {
			return txErr
		}
		return ledger.AppendTransaction(txCtx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Withdrawal requested", map[string]any{
		"user_id": userID,
		"amount":  withdrawal.FormattedAmount(),
		"method":  method,
	})

	return withdrawal, nil
}

// Activate flips the user's activation flag. Re-activating is a no-op.
func (s *Service) Activate(ctx context.Context, userID uint64) (*entity.User, error) {
	user, err := s.users.SetActivated(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User activated", map[string]any{
		"user_id": userID,
	})

	return user, nil
}

// Transactions lists the user's ledger entries, newest first
func (s *Service) Transactions(ctx context.Context, userID uint64) ([]entity.Transaction, error) {
	return s.ledger.ListTransactions(ctx, userID)
}

// Withdrawals lists the user's payout requests, newest first
func (s *Service) Withdrawals(ctx context.Context, userID uint64) ([]entity.Withdrawal, error) {
	return s.ledger.ListWithdrawals(ctx, userID)
}

// withinTransaction runs fn inside a unit of work, committing on success and
// rolling back on error
func (s *Service) withinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(txCtx); err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Rollback failed", map[string]any{
				"error": rbErr.Error(),
			})
		}
		return err
	}

	return s.uow.Commit(txCtx)
}
