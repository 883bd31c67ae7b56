package wallet

// RewardTable maps ad task IDs to the amount (in cents) the server credits
// for completing them. The server-side value always overrides whatever
// amount the client reports for a known task.
type RewardTable map[string]int64

// DefaultRewardTable returns the built-in task rewards
func DefaultRewardTable() RewardTable {
	return RewardTable{
		"diamond_1": 5,  // 0.05
		"diamond_2": 10, // 0.10
		"diamond_3": 30, // 0.30
		"gagner":    50, // 0.50
	}
}

// Resolve returns the credited amount for a task. For a known task the fixed
// server-side reward wins; for an unknown task the client-reported amount is
// trusted.
func (t RewardTable) Resolve(taskID string, clientAmountInCents int64) (amountInCents int64, known bool) {
	if reward, ok := t[taskID]; ok {
		return reward, true
	}
	return clientAmountInCents, false
}
