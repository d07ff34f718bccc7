package stats

import (
	"fmt"
	"math"
)

func float64ToPercent(value float64) string {
	switch {
	case value == 1:
		return "100%"
	case math.IsNaN(value):
		return "N/A"
	default:
		return fmt.Sprintf("%.1f%%", value*100)
	}
}

func primitiveTotal(stat PrimitiveStat) playerStat {
	return playerStat{
		name: string(stat),
		getFunc: func(primStats *PrimitiveStatline) any {
			return primStats.get(stat)
		},
		req: []PrimitiveStat{stat},
	}
}

func sumPlayers(playerStats map[string]*playerStatline, stat playerStat) int {
	var total int
	for _, ps := range playerStats {
		if v, ok := stat.getFunc(ps.primStats).(int); ok {
			total += v
		}
	}
	return total
}

func teamSum(stat playerStat) teamStat {
	return teamStat{
		name: stat.name,
		getFunc: func(playerStats map[string]*playerStatline) any {
			return sumPlayers(playerStats, stat)
		},
		req: []playerStat{stat},
	}
}
