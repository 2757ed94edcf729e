package app

import (
	"unlinked/internal/config"
	"unlinked/internal/database"
	"unlinked/internal/email"
	"unlinked/internal/logger"
	"unlinked/internal/repository"
	"unlinked/internal/service"
	"unlinked/internal/storage"
)

func App(cfg *config.Config, log *logger.Logger) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Не удалось подключиться к БД")
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Не удалось инициализировать MinIO")
	}

	// email collaborator
	mailer := email.NewMailtrapClient(cfg)

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient, mailer, log)

	return db, repo, services
}
