package matchlog

const createGamesTable = `
CREATE TABLE IF NOT EXISTS games (
  day            string not null,
  id             integer not null,
  time           datetime,
  engine_color   char(1),
  opponent_color char(1),
  moves          int,
  duration_ms    int,
  score1 int, score2 int, score3 int, score4 int, score5 int, score6 int,
  winner         char(1),
  engine_won     boolean,
  UNIQUE(day, id)
)`

// createColorGamesView exposes one row per color played, the way a two-player
// player_games view would flatten a per-game row into one row per side;
// here the "side" is a color's own score against the best of the
// other five, matching get_pessimist_score's own-vs-best-opponent
// comparison rather than a fixed two-player split.
const createColorGamesView = `
CREATE VIEW IF NOT EXISTS color_games (
  day, id, color, score, is_winner
) AS
SELECT day, id, '1', score1, CASE WHEN winner = '1' THEN 1 ELSE 0 END FROM games
UNION ALL
SELECT day, id, '2', score2, CASE WHEN winner = '2' THEN 1 ELSE 0 END FROM games
UNION ALL
SELECT day, id, '3', score3, CASE WHEN winner = '3' THEN 1 ELSE 0 END FROM games
UNION ALL
SELECT day, id, '4', score4, CASE WHEN winner = '4' THEN 1 ELSE 0 END FROM games
UNION ALL
SELECT day, id, '5', score5, CASE WHEN winner = '5' THEN 1 ELSE 0 END FROM games
UNION ALL
SELECT day, id, '6', score6, CASE WHEN winner = '6' THEN 1 ELSE 0 END FROM games
`

const insertGameStmt = `
INSERT INTO games (
  day, id, time, engine_color, opponent_color, moves, duration_ms,
  score1, score2, score3, score4, score5, score6, winner, engine_won
) VALUES (
  :day, :id, :time, :engine_color, :opponent_color, :moves, :duration_ms,
  :score1, :score2, :score3, :score4, :score5, :score6, :winner, :engine_won
)`
