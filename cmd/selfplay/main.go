package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/bits"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"sync"

	"golang.org/x/sync/errgroup"
	"reversi/internal/reversi"
)

// 随机自对弈：既是压测也是规则引擎的一致性检查。
// 每局固定种子，出问题时可以用同一个种子复现。

type gameResult struct {
	winner reversi.Side // NoSide 表示平局
	plies  int
	passes int
}

func main() {
	games := flag.Int("games", 1000, "number of games to play")
	concurrency := flag.Int("concurrency", 4, "parallel workers")
	seed := flag.Int64("seed", 1, "base rng seed")
	pprofAddr := flag.String("pprof", "", "pprof listen address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof listening on %s", *pprofAddr)
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				log.Printf("pprof failed: %v", err)
			}
		}()
	}

	if err := run(context.Background(), *games, *concurrency, *seed); err != nil {
		log.Fatal(err)
	}
	log.Println("selfplay finished.")
}

func run(ctx context.Context, games, concurrency int, seed int64) error {
	g, ctx := errgroup.WithContext(ctx)

	seeds := make(chan int64)
	results := make(chan gameResult)

	g.Go(func() error {
		defer close(seeds)
		for i := 0; i < games; i++ {
			select {
			case seeds <- seed + int64(i):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for s := range seeds {
				res, err := playGame(s)
				if err != nil {
					return err
				}
				select {
				case results <- res:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	g.Go(func() error {
		var blackWins, whiteWins, draws, plies, passes, n int
		for res := range results {
			n++
			plies += res.plies
			passes += res.passes
			switch res.winner {
			case reversi.Black:
				blackWins++
			case reversi.White:
				whiteWins++
			default:
				draws++
			}
			if n%100 == 0 {
				log.Printf("played %d/%d games", n, games)
			}
		}
		if n > 0 {
			log.Printf("games=%d black=%d white=%d draw=%d avg_plies=%.1f passes=%d",
				n, blackWins, whiteWins, draws, float64(plies)/float64(n), passes)
		}
		return nil
	})

	return g.Wait()
}

// playGame 以固定种子随机走完一整局，逐手校验引擎不变量。
func playGame(seed int64) (gameResult, error) {
	rng := rand.New(rand.NewSource(seed))
	pos := reversi.NewInitialPosition()

	var res gameResult
	for !pos.IsGameOver() {
		if res.plies > 200 {
			return res, fmt.Errorf("seed %d: game did not terminate", seed)
		}
		if pos.Black&pos.White != 0 {
			return res, fmt.Errorf("seed %d: black and white overlap after %d plies", seed, res.plies)
		}

		legal := pos.LegalMoves()
		if legal == 0 {
			next, err := pos.ApplyPass()
			if err != nil {
				return res, fmt.Errorf("seed %d: pass rejected: %w", seed, err)
			}
			pos = next
			res.passes++
			res.plies++
			continue
		}

		before := bits.OnesCount64(pos.Black | pos.White)
		next, err := pos.ApplyMove(randomBit(rng, legal))
		if err != nil {
			return res, fmt.Errorf("seed %d: legal move rejected: %w", seed, err)
		}
		if after := bits.OnesCount64(next.Black | next.White); after != before+1 {
			return res, fmt.Errorf("seed %d: disc count %d -> %d after one move", seed, before, after)
		}
		pos = next
		res.plies++
	}

	b, w := pos.Score()
	switch {
	case b > w:
		res.winner = reversi.Black
	case w > b:
		res.winner = reversi.White
	default:
		res.winner = reversi.NoSide
	}
	return res, nil
}

func randomBit(rng *rand.Rand, bb uint64) int {
	n := rng.Intn(bits.OnesCount64(bb))
	for i := 0; i < n; i++ {
		bb &= bb - 1
	}
	return bits.TrailingZeros64(bb)
}
