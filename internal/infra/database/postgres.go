package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/totegamma/storykeep/internal/infra/database/models"
)

func NewPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), Config())
	return db, err
}

// Config is shared by every dialector the service is opened with.
func Config() *gorm.Config {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             300 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  false,
		},
	)

	return &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger,
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Account{},
		&models.Task{},
		&models.Area{},
		&models.Project{},
		&models.Milestone{},
		&models.Lifestage{},
		&models.Resource{},
		&models.TaskMilestone{},
		&models.TaskResource{},
		&models.Story{},
		&models.Incident{},
		&models.SensoryDetail{},
		&models.Point{},
		&models.Script{},
		&models.Media{},
		&models.Person{},
		&models.Link{},
		&models.Character{},
		&models.StoryPerson{},
		&models.IncidentPerson{},
		&models.StoryLink{},
		&models.StoryCharacter{},
	)
}
