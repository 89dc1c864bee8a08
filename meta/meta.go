// meta/meta.go
package meta

// EPISODES defines the number of MCTS simulations per decision.
const EPISODES = 600

// WITH_CUTOFF defines the maximum number of random plies per rollout.
const WITH_CUTOFF = 40

// MAX_PLIES caps the length of a self-play game.
const MAX_PLIES = 200

// GAMES defines the number of self-play games per batch.
const GAMES = 5

// OUTPUT is the default path of the game report.
const OUTPUT = "results.csv"
