package main

import (
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/Sandeep-456/Deepkalrity-assignment/internal/ai/resumeai"
	"github.com/Sandeep-456/Deepkalrity-assignment/internal/config"
	"github.com/Sandeep-456/Deepkalrity-assignment/internal/docext"
	"github.com/Sandeep-456/Deepkalrity-assignment/migrations"
	"github.com/Sandeep-456/Deepkalrity-assignment/pkg/logx"
	"github.com/Sandeep-456/Deepkalrity-assignment/resume/resumeapi"
	"github.com/Sandeep-456/Deepkalrity-assignment/resume/resumeinfra"
	"github.com/Sandeep-456/Deepkalrity-assignment/resume/resumesrv"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	// Infrastructure
	DB *sqlx.DB

	// Services
	ResumeService *resumesrv.Service

	// API Handlers
	ResumeHandlers *resumeapi.ResumeHandlers
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	db, err := sqlx.Connect("postgres", c.Config.GetDatabaseDSN())
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(c.Config.Database.MaxOpenConns)
	db.SetMaxIdleConns(c.Config.Database.MaxIdleConns)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		logx.Fatalf("Failed to set migration dialect: %v", err)
	}
	if err := goose.Up(db.DB, "."); err != nil {
		logx.Fatalf("Failed to run migrations: %v", err)
	}
	logx.Info("Database migrations applied")
}

func (c *Container) initServices() {
	repo := resumeinfra.NewPostgresResumeRepository(c.DB)
	analyzer := resumeai.NewClient(c.Config.AI.APIKey, c.Config.AI.Model)
	extractor := docext.New()

	c.ResumeService = resumesrv.NewService(repo, analyzer, extractor, c.Config.AI.Timeout)
	c.ResumeHandlers = resumeapi.NewResumeHandlers(c.ResumeService)
}
