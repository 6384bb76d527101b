package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"

	"resume-parser/internal/llm"
	"resume-parser/internal/llm/groq"
	"resume-parser/internal/llm/openai"
	"resume-parser/internal/resumes"
	"resume-parser/internal/shared/config"
	"resume-parser/internal/shared/server"
	"resume-parser/internal/shared/storage/db"
	"resume-parser/internal/shared/storage/object"
	localstore "resume-parser/internal/shared/storage/object/local"
	s3store "resume-parser/internal/shared/storage/object/s3"
	"resume-parser/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config  config.Config
	Router  *gin.Engine
	DB      *sql.DB
	Store   object.ObjectStore
	Repo    resumes.Repo
	LLM     llm.Client
	Service *resumes.Service
	Handler *resumes.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	telemetry.SetLevel(cfg.LogLevel)
	ctx := context.Background()

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, repo, err := buildRepo(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	svc := &resumes.Service{Store: store, Repo: repo, LLM: client}
	handler := resumes.NewHandler(svc)

	return &App{
		Config:  cfg,
		Router:  server.NewRouter(cfg, handler),
		DB:      sqlDB,
		Store:   store,
		Repo:    repo,
		LLM:     client,
		Service: svc,
		Handler: handler,
	}, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			return nil, fmt.Errorf("build s3 store: %w", err)
		}
		return store, nil
	}
	return localstore.New(cfg.UploadDir), nil
}

// buildRepo picks the metadata backend: Postgres when DATABASE_URL is set,
// otherwise the single JSON metadata file.
func buildRepo(ctx context.Context, cfg config.Config) (*sql.DB, resumes.Repo, error) {
	if cfg.DatabaseURL != "" {
		conn, err := db.Connect(ctx, cfg.DatabaseURL, db.DefaultServerOptions())
		if err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}
		return conn, &resumes.PGRepo{DB: conn}, nil
	}

	repo, err := resumes.NewFileRepo(cfg.MetadataFile)
	if err != nil {
		return nil, nil, fmt.Errorf("open metadata file: %w", err)
	}
	return nil, repo, nil
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "groq":
		return groq.NewClient(cfg.LLMAPIKey, cfg.LLMModel)
	case "openai":
		return openai.NewClient(cfg.LLMAPIKey, cfg.LLMModel)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLMProvider)
	}
}
