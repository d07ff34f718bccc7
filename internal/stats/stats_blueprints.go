package stats

import "fmt"

// GameStatlineBlueprint lists the game stats of a statline and any team stats reported on
// their own. Team stats required by game stats are always included.
type GameStatlineBlueprint struct {
	stats     []GameStat
	teamStats []teamStat
}

func (bp GameStatlineBlueprint) allTeamStats() []teamStat {
	teamStats := make([]teamStat, 0, len(bp.teamStats))
	seen := make(map[string]bool)
	add := func(s teamStat) {
		if !seen[s.name] {
			seen[s.name] = true
			teamStats = append(teamStats, s)
		}
	}
	for _, s := range bp.teamStats {
		add(s)
	}
	for _, gs := range bp.stats {
		for _, req := range gs.req {
			add(req)
		}
	}
	return teamStats
}

// FootballBlueprint tracks every PrimitiveStat per player and reports team totals plus the
// score line.
var FootballBlueprint = GameStatlineBlueprint{
	stats: []GameStat{gameScore, gameShots},
	teamStats: []teamStat{
		teamGoals, teamAssists, teamShots, teamShotsOnTarget, teamShotOnTargetPercent,
		teamKeyPasses, teamPassesCompleted, teamDribbles, teamTacklesWon, teamInterceptions,
		teamClearances, teamBlocks, teamAerialsWon, teamSaves, teamYellowCards, teamRedCards,
	},
}

// PLAYER STATS
var (
	playerGoals         = primitiveTotal(Goal)
	playerAssists       = primitiveTotal(Assist)
	playerShotsOnTarget = primitiveTotal(ShotOnTarget)
	playerShots         = playerStat{
		name: "Sh",
		getFunc: func(primStats *PrimitiveStatline) any {
			return primStats.get(ShotOnTarget) + primStats.get(ShotOffTarget)
		},
		req: []PrimitiveStat{ShotOnTarget, ShotOffTarget},
	}
	playerKeyPasses       = primitiveTotal(KeyPass)
	playerPassesCompleted = primitiveTotal(PassCompleted)
	playerDribbles        = primitiveTotal(Dribble)
	playerTacklesWon      = primitiveTotal(TackleWon)
	playerInterceptions   = primitiveTotal(Interception)
	playerClearances      = primitiveTotal(Clearance)
	playerBlocks          = primitiveTotal(Block)
	playerAerialsWon      = primitiveTotal(AerialWon)
	playerSaves           = primitiveTotal(Save)
	playerYellowCards     = primitiveTotal(YellowCard)
	playerRedCards        = primitiveTotal(RedCard)
)

// TEAM STATS
var (
	teamGoals               = teamSum(playerGoals)
	teamAssists             = teamSum(playerAssists)
	teamShots               = teamSum(playerShots)
	teamShotsOnTarget       = teamSum(playerShotsOnTarget)
	teamShotOnTargetPercent = teamStat{
		name: "SoT%",
		getFunc: func(playerStats map[string]*playerStatline) any {
			onTarget := float64(sumPlayers(playerStats, playerShotsOnTarget))
			shots := float64(sumPlayers(playerStats, playerShots))
			return float64ToPercent(onTarget / shots)
		},
		req: []playerStat{playerShotsOnTarget, playerShots},
	}
	teamKeyPasses       = teamSum(playerKeyPasses)
	teamPassesCompleted = teamSum(playerPassesCompleted)
	teamDribbles        = teamSum(playerDribbles)
	teamTacklesWon      = teamSum(playerTacklesWon)
	teamInterceptions   = teamSum(playerInterceptions)
	teamClearances      = teamSum(playerClearances)
	teamBlocks          = teamSum(playerBlocks)
	teamAerialsWon      = teamSum(playerAerialsWon)
	teamSaves           = teamSum(playerSaves)
	teamYellowCards     = teamSum(playerYellowCards)
	teamRedCards        = teamSum(playerRedCards)
)

// GAME STATS
var (
	gameScore = GameStat{
		name: "Score",
		getFunc: func(home, away teamStatline) any {
			return fmt.Sprintf("%d-%d", home.get(teamGoals), away.get(teamGoals))
		},
		req: []teamStat{teamGoals},
	}
	gameShots = GameStat{
		name: "Shots",
		getFunc: func(home, away teamStatline) any {
			return fmt.Sprintf("%d-%d", home.get(teamShots), away.get(teamShots))
		},
		req: []teamStat{teamShots},
	}
)
