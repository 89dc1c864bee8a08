package store

const createGameTable = `
CREATE TABLE IF NOT EXISTS games (
  batch string not null,
  id integer not null,
  time datetime,
  result string,
  winner string,
  moves int,
  seconds real,
  iterations int,
  depth int,
  PRIMARY KEY (batch, id)
)`

const insertStmt = `
INSERT INTO games (batch, id, time, result, winner, moves, seconds, iterations, depth)
VALUES (:batch, :id, :time, :result, :winner, :moves, :seconds, :iterations, :depth)
`

const selectGames = `
SELECT batch, id, time, result, winner, moves, seconds, iterations, depth
FROM games WHERE batch = ? ORDER BY id
`

const selectSummary = `
SELECT result, COUNT(*) AS games, AVG(moves) AS avg_moves
FROM games WHERE batch = ? GROUP BY result ORDER BY result
`

const selectBatches = `SELECT DISTINCT batch FROM games ORDER BY batch`
