// Self-play driver for the Chess 39 engine: generates fresh armies, plays
// random legal moves until the game ends or a ply cap is hit, and prints
// the outcome with the final position in FEN.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Harel-levin/chess-39-project/internal/game"
)

func main() {
	seed := flag.Int64("seed", getenvInt64("CHESS39_SEED", time.Now().UnixNano()), "random seed (games use seed+index)")
	games := flag.Int("games", getenvInt("CHESS39_GAMES", 1), "number of games to play concurrently")
	maxPlies := flag.Int("max-plies", getenvInt("CHESS39_MAX_PLIES", 400), "stop a game after this many plies")
	showBoard := flag.Bool("show-board", getenvBool("CHESS39_SHOW_BOARD", false), "print the board after every game")
	flag.Parse()

	if *games < 1 {
		log.Fatalf("invalid -games %d", *games)
	}

	log.Printf("Playing %d game(s), seed=%d, max plies %d", *games, *seed, *maxPlies)

	var g errgroup.Group
	for i := 0; i < *games; i++ {
		i := i
		g.Go(func() error {
			return playGame(i, *seed+int64(i), *maxPlies, *showBoard)
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}

// playGame owns its engine for the whole game, keeping the single-writer
// discipline the engine requires.
func playGame(index int, seed int64, maxPlies int, showBoard bool) error {
	rng := rand.New(rand.NewSource(seed))
	eng, err := game.NewEngineWithRand("white", "black", rng)
	if err != nil {
		return fmt.Errorf("game %d: %w", index, err)
	}

	plies := 0
	for eng.Status() == game.StatusOngoing && plies < maxPlies {
		moves := eng.LegalMoves()
		if len(moves) == 0 {
			break
		}
		mv := moves[rng.Intn(len(moves))]
		req := game.MoveRequest{
			From:     mv.From,
			To:       mv.To,
			PlayerID: eng.PlayerID(eng.Turn()),
		}
		if _, err := eng.MakeMove(req); err != nil {
			return fmt.Errorf("game %d ply %d: %w", index, plies, err)
		}
		plies++
	}

	outcome := eng.Status().String()
	if winner, ok := eng.Winner(); ok {
		outcome = fmt.Sprintf("%s (%s wins)", outcome, winner)
	}
	log.Printf("game %d: %s after %d plies", index, outcome, plies)
	log.Printf("game %d: %s", index, eng.FEN())
	if showBoard {
		fmt.Println(eng.Board())
	}
	return nil
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
