package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"crudapp/internal/config"
	"crudapp/internal/jobs"
	"crudapp/internal/logger"
	"crudapp/internal/mongo"
	"crudapp/internal/mysql"
	"crudapp/internal/routing"
	"crudapp/pkg/person"
	"crudapp/pkg/session"
	"crudapp/pkg/views"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load() // env file + process environment

	logger := logger.Load(cfg.LogLevel)

	db := mysql.LoadDB(cfg.MySQLDSN)
	defer db.Close()

	mongoDB := mongo.LoadDB(cfg.MongoURI, cfg.MongoDBName)
	defer func() {
		if err := mongoDB.Client().Disconnect(context.Background()); err != nil {
			logger.Error("mongo disconnect", "error", err)
		}
	}()

	sessionRepo := session.NewSQLRepo(db)
	sessionStore := session.NewStore(sessionRepo, []byte(cfg.SessionSecret))
	sessionStore.Options.Secure = cfg.SecureCookies

	scheduler, err := jobs.Start(sessionRepo, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer scheduler.Stop()

	tpl, err := views.New()
	if err != nil {
		log.Fatal(err)
	}

	r := mux.NewRouter()
	routing.InitRoutes(r, routing.Deps{
		People:      person.NewService(person.NewMongoRepo(mongoDB)),
		Sessions:    sessionStore,
		SessionName: cfg.SessionName,
		Views:       tpl,
		Logger:      logger,
	})
	routing.ServeStaticFiles(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routing.StartServer(ctx, cfg.Addr, routing.Handler(r, logger), logger); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}
