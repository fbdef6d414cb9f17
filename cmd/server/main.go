package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"

	"gridwar/internal/adapter/abilities/exprcat"
	"gridwar/internal/adapter/agent/scripted"
	boardinmem "gridwar/internal/adapter/board/inmemory"
	httpadapter "gridwar/internal/adapter/http"
	metricsinmem "gridwar/internal/adapter/metrics/inmemory"
	gormrepo "gridwar/internal/adapter/repo/gorm"
	memrepo "gridwar/internal/adapter/repo/memory"
	"gridwar/internal/app/action"
	"gridwar/internal/app/match"
	"gridwar/internal/app/observe"
	"gridwar/internal/app/ports"
	"gridwar/internal/app/replay"
	"gridwar/internal/app/status"
	"gridwar/internal/app/turn"
	"gridwar/internal/domain/game"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	registry, err := exprcat.DefaultRegistry()
	if err != nil {
		log.Fatalf("build ability catalog: %v", err)
	}

	eventRepo, archiveRepo, txManager := mustBuildRepos(logger)
	board := boardinmem.NewBoard()
	kpiRecorder := metricsinmem.NewRecorder()

	st := game.NewState(game.StateConfig{
		Width:      intEnv("GRIDWAR_MAP_WIDTH", game.DefaultMapWidth),
		Height:     intEnv("GRIDWAR_MAP_HEIGHT", game.DefaultMapHeight),
		MaxPlayers: intEnv("GRIDWAR_PLAYERS", 2),
		Seed:       int64(intEnv("GRIDWAR_SEED", 0)),
	})

	agents := buildAgents(intEnv("GRIDWAR_PLAYERS", 2))

	manager := &turn.Manager{
		Actions:    action.NewUseCase(registry),
		Registry:   registry,
		Timeout:    time.Duration(intEnv("GRIDWAR_DECISION_TIMEOUT_SECONDS", 30)) * time.Second,
		MaxActions: intEnv("GRIDWAR_MAX_ACTIONS", game.DefaultMaxActionsPerTurn),
		Metrics:    kpiRecorder,
		Events:     eventRepo,
		Log:        logger,
	}

	runner := &match.Runner{
		Turns:    manager,
		Agents:   agents,
		Board:    board,
		Archive:  archiveRepo,
		Tx:       txManager,
		MaxTurns: intEnv("GRIDWAR_MAX_TURNS", game.DefaultMaxTurns),
		Log:      logger,
	}

	go func() {
		if err := runner.Run(context.Background(), st); err != nil {
			logger.Error("match run failed", "error", err)
		}
	}()

	h := httpadapter.Handler{
		ObserveUC: observe.UseCase{Board: board},
		StatusUC:  status.UseCase{Board: board},
		ReplayUC:  replay.UseCase{Events: eventRepo},
		Board:     board,
		KPI:       kpiRecorder,
	}

	addr := strings.TrimSpace(os.Getenv("GRIDWAR_ADDR"))
	if addr == "" {
		addr = ":8080"
	}
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	logger.Info("gridwar server listening", "addr", addr, "game_id", st.GameID)
	s.Spin()
}

// mustBuildRepos wires postgres archival when GRIDWAR_DB_DSN is set and
// falls back to the in-memory store otherwise.
func mustBuildRepos(logger *slog.Logger) (ports.EventRepository, ports.MatchArchive, ports.TxManager) {
	dsn := strings.TrimSpace(os.Getenv("GRIDWAR_DB_DSN"))
	if dsn == "" {
		store := memrepo.NewStore()
		return memrepo.NewEventRepo(store), memrepo.NewArchiveRepo(store), memrepo.NewTxManager()
	}
	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.Migrate(db); err != nil {
		log.Fatalf("migrate archive schema: %v", err)
	}
	logger.Info("archiving to postgres")
	return gormrepo.NewEventRepo(db), gormrepo.NewArchiveRepo(db), gormrepo.NewTxManager(db)
}

func buildAgents(count int) []turn.Agent {
	if count < 2 {
		count = 2
	}
	if count > game.MaxPlayers {
		count = game.MaxPlayers
	}
	agents := make([]turn.Agent, 0, count)
	for i := 0; i < count; i++ {
		id := "agent-" + strconv.Itoa(i+1)
		agents = append(agents, turn.Agent{ID: id, Decide: scripted.New(id)})
	}
	return agents
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
