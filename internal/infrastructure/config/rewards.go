package config

import (
	"fmt"

	"github.com/mytestspam8-prog/africash/internal/domain/entity"
	"github.com/mytestspam8-prog/africash/internal/domain/usecase/wallet"
)

// RewardTable converts the configured decimal reward amounts into a cents
// table for the wallet service. Falls back to the built-in table when no
// rewards are configured.
func (c RewardsConfig) RewardTable() (wallet.RewardTable, error) {
	if len(c) == 0 {
		return wallet.DefaultRewardTable(), nil
	}

	table := make(wallet.RewardTable, len(c))
	for taskID, amount := range c {
		cents, err := entity.ParseAmount(amount)
		if err != nil {
			return nil, fmt.Errorf("invalid reward amount for task %q: %w", taskID, err)
		}
		table[taskID] = cents
	}
	return table, nil
}
