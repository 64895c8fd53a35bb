// Command predict queries a running predictor server.
//
//	predict -surface clay "Roger Federer" "Rafael Nadal"
//	predict -find nad
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/courtside/tennis-predictor/internal/client"
	"github.com/courtside/tennis-predictor/internal/models"
	"github.com/courtside/tennis-predictor/internal/ui"
)

var (
	baseURL = flag.String("url", "http://localhost:8000", "Predictor server base URL")
	surface = flag.String("surface", string(models.DefaultSurface), "Court surface: grass, hard or clay")
	find    = flag.String("find", "", "List up to three player names containing this text and exit")
	timeout = flag.Duration("timeout", 10*time.Second, "Request timeout")
)

func main() {
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	log := logger.Sugar()

	api := client.New(client.Config{BaseURL: *baseURL, Timeout: *timeout})
	ctx := context.Background()

	if *find != "" {
		names, err := api.PlayerNames(ctx)
		if err != nil {
			log.Fatalw("Error loading players", "error", err)
		}
		for _, name := range ui.Suggest(names, *find) {
			fmt.Println(name)
		}
		return
	}

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: predict [-surface grass|hard|clay] PLAYER1 PLAYER2")
		os.Exit(2)
	}
	s, err := models.ParseSurface(*surface)
	if err != nil {
		log.Fatalw("Invalid surface", "error", err)
	}

	res, err := api.Predict(ctx, models.PredictionRequest{
		Player1: flag.Arg(0),
		Player2: flag.Arg(1),
		Surface: s,
	})
	if err != nil {
		log.Fatalw("Error making prediction", "error", err)
	}

	fmt.Printf("%s vs %s on %s: %s wins", flag.Arg(0), flag.Arg(1), s.Label(), res.Winner)
	if res.Confidence > 0 {
		fmt.Printf(" (%.1f%%)", res.Confidence*100)
	}
	fmt.Println()
}
