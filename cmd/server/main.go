package main

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/adarsht2308/dellcube-lms-sub000/config"
	"github.com/adarsht2308/dellcube-lms-sub000/db"
	"github.com/adarsht2308/dellcube-lms-sub000/db/mongo"
	"github.com/adarsht2308/dellcube-lms-sub000/db/postgres"
	"github.com/adarsht2308/dellcube-lms-sub000/handlers"
	"github.com/adarsht2308/dellcube-lms-sub000/logger"
	"github.com/adarsht2308/dellcube-lms-sub000/repository"
	"github.com/adarsht2308/dellcube-lms-sub000/routes"
	"github.com/adarsht2308/dellcube-lms-sub000/service"
	"github.com/adarsht2308/dellcube-lms-sub000/utils"
)

func main() {
	// Load config from .env or system environment
	cfg := config.LoadConfig()
	logger.Setup()
	handlers.SetJWTSecret(cfg.JWTSecret)

	var docketRepo repository.DocketRepository
	var userRepo repository.UserRepository
	var branchRepo repository.BranchProfileRepository
	var regionRepo repository.RegionResolver
	var goodsRepo repository.GoodsTypeRepository

	switch cfg.DBType {
	case "postgres":
		// Run migrations first
		db.RunMigrations()

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			logrus.Fatalf("postgres connect failed: %v", err)
		}
		defer pg.Disconnect()

		docketRepo = repository.NewPostgresDocketRepo(pg.Conn)
		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		branchRepo = repository.NewPostgresBranchRepo(pg.Conn)
		regionRepo = repository.NewPostgresRegionRepo(pg.Conn)
		goodsRepo = repository.NewPostgresGoodsTypeRepo(pg.Conn)

	case "mongo":
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			logrus.Fatalf("mongo connect failed: %v", err)
		}
		defer mg.Disconnect()

		docketRepo = repository.NewMongoDocketRepo(mg.Client)
		userRepo = repository.NewMongoUserRepo(mg.Client)
		branchRepo = repository.NewMongoBranchRepo(mg.Client)
		regionRepo = repository.NewMongoRegionRepo(mg.Client)
		goodsRepo = repository.NewMongoGoodsTypeRepo(mg.Client)

	default:
		logrus.Fatal("DB_TYPE not supported")
	}

	docketService := service.NewDocketService(docketRepo, regionRepo, goodsRepo, utils.R2SignatureStore{})

	// Handlers
	docketHandler := &handlers.DocketHandler{Service: docketService}
	userHandler := &handlers.UserHandler{Repo: userRepo}
	branchHandler := &handlers.BranchHandler{Repo: branchRepo}

	pdfRepo := repository.NewPDFRepository(docketRepo, branchRepo)
	pdfHandler := &handlers.PDFHandler{
		Service:  docketService,
		Repo:     pdfRepo,
		SavePath: cfg.PDFSavePath,
		UploadR2: true,
	}

	routes.SetupRoutes(userHandler, docketHandler, branchHandler, pdfHandler)

	logrus.Infof("Server running on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
