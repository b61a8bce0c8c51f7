// Selfplay pits two difficulty presets against each other over a batch of
// games and prints the tally. Useful for sanity-checking that higher
// difficulties actually win more.
package main

import (
	"flag"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/reyamade/komago/pkg/engine"
	"github.com/reyamade/komago/pkg/shogi"
)

func main() {
	var (
		senteLevel  = flag.String("sente", "hard", "difficulty for sente")
		goteLevel   = flag.String("gote", "easy", "difficulty for gote")
		games       = flag.Int("games", 4, "number of games")
		concurrency = flag.Int("concurrency", 2, "games played in parallel")
		maxPlies    = flag.Int("maxplies", 150, "move cap before a game counts as drawn")
	)
	flag.Parse()

	sl, err := engine.ParseLevel(*senteLevel)
	if err != nil {
		log.Fatal(err)
	}
	gl, err := engine.ParseLevel(*goteLevel)
	if err != nil {
		log.Fatal(err)
	}

	var mu sync.Mutex
	var senteWins, goteWins, draws int

	var g errgroup.Group
	g.SetLimit(*concurrency)
	for i := 0; i < *games; i++ {
		var gameIndex = i
		g.Go(func() error {
			var winner, decided = playGame(sl, gl, *maxPlies)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case !decided:
				draws++
				fmt.Printf("game %d: draw by move cap\n", gameIndex)
			case winner == shogi.Sente:
				senteWins++
				fmt.Printf("game %d: sente (%v) wins\n", gameIndex, sl)
			default:
				goteWins++
				fmt.Printf("game %d: gote (%v) wins\n", gameIndex, gl)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("sente %d, gote %d, draws %d\n", senteWins, goteWins, draws)
}

// playGame runs one game to checkmate or the move cap. The second result
// is false for a capped game.
func playGame(senteLevel, goteLevel engine.Level, maxPlies int) (shogi.Player, bool) {
	var board = shogi.NewBoard()
	var engines = map[shogi.Player]*engine.Engine{
		shogi.Sente: engine.NewEngine(senteLevel),
		shogi.Gote:  engine.NewEngine(goteLevel),
	}

	for len(board.History()) < maxPlies {
		var side = board.Turn()
		var move, err = engines[side].GetMove(board, side)
		if err != nil {
			// no legal moves: the side to move has lost
			return side.Opponent(), true
		}
		if err := board.Apply(move); err != nil {
			// engine moves are pre-validated; a failure here is a bug
			log.Fatalf("engine produced illegal move %v: %v", move, err)
		}
		if board.IsCheckmate(board.Turn()) {
			return side, true
		}
	}
	return shogi.Sente, false
}
