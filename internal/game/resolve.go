package game

// HighestBidders returns the players tied at the highest bet among the given
// non-zero bets, together with that amount. An empty map yields no bidders.
func HighestBidders(bets map[string]int) ([]string, int) {
	maxBet := 0
	for _, amount := range bets {
		if amount > maxBet {
			maxBet = amount
		}
	}
	if maxBet == 0 {
		return nil, 0
	}
	var ids []string
	for id, amount := range bets {
		if amount == maxBet {
			ids = append(ids, id)
		}
	}
	return ids, maxBet
}

// TallyVotes counts votes received per target player.
func TallyVotes(votes map[string]string) map[string]int {
	counts := make(map[string]int, len(votes))
	for _, target := range votes {
		counts[target]++
	}
	return counts
}
