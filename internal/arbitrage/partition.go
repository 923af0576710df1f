package arbitrage

import "fmt"

// Partition splits the flat pool into one contiguous sub-range per leg,
// consuming left-to-right: leg i starts exactly where leg i-1 ended.
// The whole layout is validated up front so an overrun fails the batch
// before a single call is issued.
func Partition(pool []PoolAccount, legs []Leg) ([][]PoolAccount, error) {
	subs := make([][]PoolAccount, len(legs))
	offset := 0
	for i, leg := range legs {
		end := offset + int(leg.AccountsCount)
		if end > len(pool) {
			return nil, fmt.Errorf("%w: leg %d needs [%d, %d) of %d",
				ErrInsufficientAccounts, i, offset, end, len(pool))
		}
		subs[i] = pool[offset:end]
		offset = end
	}
	return subs, nil
}
