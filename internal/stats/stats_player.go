package stats

type playerStat struct {
	name    string
	getFunc func(primStats *PrimitiveStatline) any
	req     []PrimitiveStat
}

type playerStatline struct {
	stats     []playerStat
	primStats *PrimitiveStatline
	side      GameTeamSide
}

func (ps *playerStatline) getAll() statlineDto {
	statline := make(statlineDto)
	for _, s := range ps.stats {
		statline[s.name] = s.getFunc(ps.primStats)
	}
	return statline
}

func newPlayerStatline(playerStats []playerStat, side GameTeamSide) *playerStatline {
	statline := playerStatline{
		stats: playerStats,
		side:  side,
	}

	primReq := make([]PrimitiveStat, 0)
	seen := make(map[PrimitiveStat]bool)
	for _, s := range playerStats {
		for _, req := range s.req {
			if !seen[req] {
				seen[req] = true
				primReq = append(primReq, req)
			}
		}
	}

	statline.primStats = newPrimitiveStatline(primReq)
	return &statline
}
