package stats

type teamStat struct {
	name    string
	getFunc func(playerStats map[string]*playerStatline) any
	req     []playerStat
}

type teamStatline struct {
	stats       []teamStat
	playerStats map[string]*playerStatline
}

func (ts teamStatline) get(stat teamStat) any {
	return stat.getFunc(ts.playerStats)
}

func (ts teamStatline) getAll() statlineDto {
	statline := make(statlineDto)
	for _, s := range ts.stats {
		statline[s.name] = s.getFunc(ts.playerStats)
	}
	return statline
}

func newTeamStatline(playerKeys []string, side GameTeamSide, teamStats []teamStat) teamStatline {
	statline := teamStatline{
		stats:       teamStats,
		playerStats: make(map[string]*playerStatline),
	}

	playerStatsReq := make([]playerStat, 0)
	seen := make(map[string]bool)
	for _, s := range teamStats {
		for _, req := range s.req {
			if !seen[req.name] {
				seen[req.name] = true
				playerStatsReq = append(playerStatsReq, req)
			}
		}
	}

	for _, key := range playerKeys {
		statline.playerStats[key] = newPlayerStatline(playerStatsReq, side)
	}
	return statline
}
