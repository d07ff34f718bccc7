package stats

// GameStat makes calculations with the team statlines of both sides.
type GameStat struct {
	name    string
	getFunc func(home, away teamStatline) any
	req     []teamStat
}

type GameTeamSide int

const (
	TeamHome GameTeamSide = iota
	TeamAway
)

// GameStatline is a struct that contains a map of PrimitiveStat's at its root,
// and layers of stats over top. Each layer is a set of functions that calculate values based on
// the layer beneath: PrimitiveStat's are used to calculate player stats, which are used to
// calculate team stats, which are used to calculate game stats. All writes to statline are done
// to PrimitiveStat types, while all reads are from the layers above.
type GameStatline struct {
	stats       []GameStat
	home        teamStatline
	away        teamStatline
	playerStats map[string]*playerStatline
}

// Add adds add to stat for the player with playerKey and returns the new value.
func (gsl *GameStatline) Add(playerKey string, stat PrimitiveStat, add int) (int, error) {
	statline, ok := gsl.playerStats[playerKey]
	if !ok {
		return 0, ErrUnknownPlayer
	}
	return statline.primStats.set(stat, add)
}

// Get returns the current value of a primitive stat for a player, 0 when untracked.
func (gsl *GameStatline) Get(playerKey string, stat PrimitiveStat) int {
	statline, ok := gsl.playerStats[playerKey]
	if !ok {
		return 0
	}
	return statline.primStats.get(stat)
}

// GetDto executes all stats in GameStatline and returns a GameStatlineDto.
func (gsl *GameStatline) GetDto() GameStatlineDto {
	cleanStatline := GameStatlineDto{}
	cleanStatline.GameStats = make(statlineDto)
	for _, s := range gsl.stats {
		cleanStatline.GameStats[s.name] = s.getFunc(gsl.home, gsl.away)
	}
	cleanStatline.Teams.Home.TeamStats = gsl.home.getAll()
	cleanStatline.Teams.Away.TeamStats = gsl.away.getAll()

	homePlayerStats := make(map[string]statlineDto)
	for p, s := range gsl.home.playerStats {
		homePlayerStats[p] = s.getAll()
	}
	cleanStatline.Teams.Home.PlayerStats = homePlayerStats

	awayPlayerStats := make(map[string]statlineDto)
	for p, s := range gsl.away.playerStats {
		awayPlayerStats[p] = s.getAll()
	}
	cleanStatline.Teams.Away.PlayerStats = awayPlayerStats

	return cleanStatline
}

// NewGameStatline returns a pointer to a GameStatline with specified GameStatlineBlueprint and
// player keys.
func NewGameStatline(homePlayerKeys, awayPlayerKeys []string,
	blueprint GameStatlineBlueprint) *GameStatline {
	statline := GameStatline{
		stats: blueprint.stats,
	}

	teamStats := blueprint.allTeamStats()
	statline.home = newTeamStatline(homePlayerKeys, TeamHome, teamStats)
	statline.away = newTeamStatline(awayPlayerKeys, TeamAway, teamStats)

	playerStats := make(map[string]*playerStatline)
	for p, s := range statline.home.playerStats {
		playerStats[p] = s
	}
	for p, s := range statline.away.playerStats {
		playerStats[p] = s
	}
	statline.playerStats = playerStats

	return &statline
}

// GameStatlineDto is a GameStatline with all stats executed and returned as a struct with no
// functionality.
type GameStatlineDto struct {
	GameStats statlineDto `json:"game_stats"`
	Teams     struct {
		Home struct {
			TeamStats   statlineDto            `json:"team_stats,omitempty"`
			PlayerStats map[string]statlineDto `json:"player_stats,omitempty"`
		} `json:"home"`
		Away struct {
			TeamStats   statlineDto            `json:"team_stats,omitempty"`
			PlayerStats map[string]statlineDto `json:"player_stats,omitempty"`
		} `json:"away"`
	} `json:"teams"`
}

type statlineDto map[string]any
