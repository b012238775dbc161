package main

import (
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"tactics-server/internal/domain"
	"tactics-server/internal/engine"
	"tactics-server/internal/server"
	"tactics-server/internal/version"
	"tactics-server/pkg/logger"
	"tactics-server/pkg/scenario"
)

func init() {
	logger.Init()
}

// mapFile - формат файла уровня: размеры, стены и слой объектов.
// Это уже РАСПАРСЕННАЯ форма; экспорт из редактора карт в нее -
// забота внешнего пайплайна.
type mapFile struct {
	Width   int                  `json:"width"`
	Height  int                  `json:"height"`
	Walls   [][2]int             `json:"walls"`
	Records []domain.SpawnRecord `json:"records"`
}

func main() {
	var mapPath string
	flag.StringVar(&mapPath, "map", "", "Path to level JSON file (empty for built-in demo)")
	flag.Parse()

	logger.Log.Info("Starting tactics server...")
	logger.Log.Info(version.String())

	cfg := engine.NewConfig()

	var gameService *engine.GameService
	var err error

	if mapPath != "" {
		gameService, err = serviceFromFile(cfg, mapPath)
	} else {
		logger.Log.Info("No map given, using built-in demo level")
		plan := scenario.Demo()
		w, h := plan.Size()
		gameService, err = engine.NewService(cfg, w, h, plan.Terrain(), plan.Records())
	}
	if err != nil {
		// Без валидных данных карты уровень не стартует
		logger.Log.Fatal("Failed to build world: ", err)
	}

	gameService.Start()

	port := os.Getenv("TS_PORT")
	if port == "" {
		port = "8080"
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	srv := server.New(gameService, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error: ", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
}

func serviceFromFile(cfg engine.Config, path string) (*engine.GameService, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var mf mapFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, err
	}

	walls := make(map[domain.Position]bool, len(mf.Walls))
	for _, w := range mf.Walls {
		walls[domain.Position{X: w[0], Y: w[1]}] = true
	}
	terrain := func(x, y int) bool {
		return walls[domain.Position{X: x, Y: y}]
	}

	return engine.NewService(cfg, mf.Width, mf.Height, terrain, mf.Records)
}
