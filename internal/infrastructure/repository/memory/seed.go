package memory

import "github.com/riskibarqy/sleeper-league/internal/domain/player"

// SeedPlayers is a small directory so roster views render names before the
// first player sync completes.
func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "4046", FirstName: "Patrick", LastName: "Mahomes", Position: "QB", Team: "KC", Active: true},
		{ID: "4984", FirstName: "Josh", LastName: "Allen", Position: "QB", Team: "BUF", Active: true},
		{ID: "6904", FirstName: "Jalen", LastName: "Hurts", Position: "QB", Team: "PHI", Active: true},
		{ID: "4034", FirstName: "Christian", LastName: "McCaffrey", Position: "RB", Team: "SF", Active: true},
		{ID: "9509", FirstName: "Bijan", LastName: "Robinson", Position: "RB", Team: "ATL", Active: true},
		{ID: "4866", FirstName: "Saquon", LastName: "Barkley", Position: "RB", Team: "PHI", Active: true},
		{ID: "6794", FirstName: "Justin", LastName: "Jefferson", Position: "WR", Team: "MIN", Active: true},
		{ID: "7564", FirstName: "Ja'Marr", LastName: "Chase", Position: "WR", Team: "CIN", Active: true},
		{ID: "6786", FirstName: "CeeDee", LastName: "Lamb", Position: "WR", Team: "DAL", Active: true},
		{ID: "4881", FirstName: "Lamar", LastName: "Jackson", Position: "QB", Team: "BAL", Active: true},
		{ID: "4217", FirstName: "George", LastName: "Kittle", Position: "TE", Team: "SF", Active: true},
		{ID: "8130", FirstName: "Trey", LastName: "McBride", Position: "TE", Team: "ARI", Active: true},
	}
}
