package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/tsegaye25/portfolio-api/internal/config"
	"github.com/tsegaye25/portfolio-api/internal/database"
	"github.com/tsegaye25/portfolio-api/internal/github"
	"github.com/tsegaye25/portfolio-api/internal/handler"
	"github.com/tsegaye25/portfolio-api/internal/queue"
	"github.com/tsegaye25/portfolio-api/internal/repository"
	"github.com/tsegaye25/portfolio-api/internal/router"
	"github.com/tsegaye25/portfolio-api/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}

	// File-backed store holds the GitHub project cache and the demo
	// session/dashboard data across restarts.
	fs, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	ghCache := github.New(fs, cfg.GitHubUser)

	users := repository.NewUserRepo(db)
	resets := repository.NewResetTokenRepo(db)

	h := router.Handlers{
		Auth:        handler.NewAuthHandler(cfg, users, resets),
		Projects:    handler.NewProjectHandler(repository.NewProjectRepo(db)),
		Skills:      handler.NewSkillHandler(repository.NewSkillRepo(db)),
		Experiences: handler.NewExperienceHandler(repository.NewExperienceRepo(db)),
		Education:   handler.NewEducationHandler(repository.NewEducationRepo(db)),
		Contact:     handler.NewContactHandler(repository.NewContactRepo(db)),
		Profile:     handler.NewProfileHandler(users),
		Github:      handler.NewGithubHandler(ghCache),
		Demo:        handler.NewDemoHandler(fs),
	}

	// Background consumer logs contact.received events to logs/contact.log.
	go func() {
		if err := queue.StartContactConsumer(); err != nil {
			log.Printf("contact consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.Register(e, h, cfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
