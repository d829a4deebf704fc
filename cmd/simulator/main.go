package main

import (
	"flag"
	"math/rand"
	"os"

	"github.com/google/uuid"

	"github.com/yeogirlyun/holdem-engine/driver"
	"github.com/yeogirlyun/holdem-engine/game"
	"github.com/yeogirlyun/holdem-engine/gamescript"
	"github.com/yeogirlyun/holdem-engine/logging"
	"github.com/yeogirlyun/holdem-engine/util"
)

var (
	cmdArgs    arg
	mainLogger = logging.GetZeroLogger("main::main", os.Stdout)
)

type arg struct {
	scriptFile string
	numHands   uint
	numPlayers int
	smallBlind int64
	bigBlind   int64
	buyIn      int64
	seed       int64
	gameCode   string
}

func init() {
	flag.StringVar(&cmdArgs.scriptFile, "script", "", "Game script YAML file. When given, the script is replayed and verified instead of running bots.")
	flag.UintVar(&cmdArgs.numHands, "hands", 10, "Number of hands for bots to play")
	flag.IntVar(&cmdArgs.numPlayers, "players", 6, "Number of bot players (2-9)")
	flag.Int64Var(&cmdArgs.smallBlind, "sb", 100, "Small blind in cents")
	flag.Int64Var(&cmdArgs.bigBlind, "bb", 200, "Big blind in cents")
	flag.Int64Var(&cmdArgs.buyIn, "buy-in", 20000, "Buy-in per player in cents")
	flag.Int64Var(&cmdArgs.seed, "seed", 0, "Deck shuffle seed (0 uses a random seed)")
	flag.StringVar(&cmdArgs.gameCode, "game-code", "", "Game code to use. If not provided, one is generated.")
	flag.Parse()
}

func main() {
	os.Exit(simulator())
}

func simulator() int {
	gameCode := cmdArgs.gameCode
	if gameCode == "" {
		gameCode = uuid.New().String()
	}

	if cmdArgs.scriptFile != "" {
		return runScript(gameCode)
	}
	return runBots(gameCode)
}

func runScript(gameCode string) int {
	mainLogger.Info().Msgf("Game Script File: %s", cmdArgs.scriptFile)
	script, err := gamescript.ReadGameScript(cmdArgs.scriptFile)
	if err != nil {
		mainLogger.Error().Msgf("Error while parsing script file: %+v", err)
		return 1
	}
	runner, err := driver.NewScriptRunner(script, os.Stdout,
		game.WithEventSink(game.NewLogEventSink(os.Stdout)))
	if err != nil {
		mainLogger.Error().Msgf("Error while setting up script runner: %+v", err)
		return 1
	}
	if err := runner.Run(); err != nil {
		mainLogger.Error().Msgf("Script verification failed: %+v", err)
		return 1
	}
	mainLogger.Info().Msgf("Script %s verified", cmdArgs.scriptFile)
	return 0
}

func runBots(gameCode string) int {
	if cmdArgs.numPlayers < 2 || cmdArgs.numPlayers > 9 {
		mainLogger.Error().Msgf("Invalid number of players: %d", cmdArgs.numPlayers)
		return 1
	}

	seats := make([]game.SeatPlayer, cmdArgs.numPlayers)
	sources := make(map[int]game.DecisionSource, cmdArgs.numPlayers)
	for i := 0; i < cmdArgs.numPlayers; i++ {
		seats[i] = game.SeatPlayer{SeatNo: i, Name: botName(i), BuyIn: cmdArgs.buyIn}
		if i%2 == 0 {
			sources[i] = driver.NewAggressorBot(int64(i)+1, 0.3)
		} else {
			sources[i] = driver.CallingStationBot{}
		}
	}

	opts := []game.TableOption{
		game.WithEventSink(game.NewLogEventSink(os.Stdout)),
	}
	if cmdArgs.seed != 0 {
		opts = append(opts, game.WithRandSource(rand.NewSource(cmdArgs.seed)))
	}
	table, err := game.NewTable(game.GameConfig{
		GameCode:   gameCode,
		MaxSeats:   cmdArgs.numPlayers,
		SmallBlind: cmdArgs.smallBlind,
		BigBlind:   cmdArgs.bigBlind,
	}, seats, opts...)
	if err != nil {
		mainLogger.Error().Msgf("Error while creating table: %+v", err)
		return 1
	}

	runnerOpts := []driver.BotRunnerOption{}
	if util.Env.ShouldPersistHandState() {
		mainLogger.Info().Msgf("Persisting hand state to redis at %s", util.Env.GetRedisURL())
		tracker := game.NewRedisHandStateTracker(
			util.Env.GetRedisURL(), util.Env.GetRedisPW(), util.Env.GetRedisDB())
		runnerOpts = append(runnerOpts, driver.WithPersistence(tracker))
	}

	runner := driver.NewBotRunner(table, sources, runnerOpts...)
	if err := runner.Run(uint32(cmdArgs.numHands)); err != nil {
		mainLogger.Error().Msgf("Bot run failed: %+v", err)
		return 1
	}
	mainLogger.Info().Msgf("Played %d hands in game %s", runner.HandsPlayed, gameCode)
	for i := 0; i < cmdArgs.numPlayers; i++ {
		p := table.PlayerAt(i)
		mainLogger.Info().Msgf("Seat %d (%s): %d", i, p.Name, p.Stack)
	}
	return 0
}

func botName(i int) string {
	names := []string{"yong", "brian", "tom", "jim", "rob", "bill", "david", "rich", "josh"}
	return names[i%len(names)]
}
