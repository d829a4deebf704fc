package game

import (
	"sort"

	"github.com/yeogirlyun/holdem-engine/util"
)

// SeatsInPot is one pot slice: the chips in it and the seats eligible to
// win it, in seat order.
type SeatsInPot struct {
	Pot     int64
	SeatNos []int
}

// buildPots slices total investments into a main pot and side pots. Slice
// boundaries are the distinct street-total investments of the players still
// in contention, ascending; folded players' chips fall into the slices
// their investment spans but never make them eligible. The top slice
// absorbs any folded investment above the highest contender level so no
// chips leak. A slice with a single eligible seat is an uncalled wager and
// simply returns to that seat at settlement.
func buildPots(players []*Player) []*SeatsInPot {
	levelSet := make(map[int64]bool)
	for _, p := range players {
		if p != nil && p.InContention() && p.TotalInvested > 0 {
			levelSet[p.TotalInvested] = true
		}
	}
	levels := make([]int64, 0, len(levelSet))
	for level := range levelSet {
		levels = append(levels, level)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })
	if len(levels) == 0 {
		return nil
	}

	var pots []*SeatsInPot
	prev := int64(0)
	for i, level := range levels {
		top := i == len(levels)-1
		slice := &SeatsInPot{}
		for _, p := range players {
			if p == nil || !p.Inhand {
				continue
			}
			contrib := util.MinInt64(p.TotalInvested, level) - util.MinInt64(p.TotalInvested, prev)
			if top && p.TotalInvested > level {
				contrib += p.TotalInvested - level
			}
			slice.Pot += contrib
			if p.InContention() && p.TotalInvested >= level {
				slice.SeatNos = append(slice.SeatNos, p.SeatNo)
			}
		}
		pots = append(pots, slice)
		prev = level
	}
	return pots
}
