package app

import (
	"context"
	"errors"
	"log"
	"time"

	"skill-swap/internal/config"
	"skill-swap/internal/database"
	dbpostgres "skill-swap/internal/database/postgres"
	"skill-swap/internal/infrastructure/cache"
	"skill-swap/internal/pkg/jwt"
	"skill-swap/internal/repository"
	"skill-swap/internal/usecase"
	"skill-swap/internal/ws"
)

// Container owns the process-wide dependencies.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	JWT    jwt.Service

	Auth      usecase.AuthUsecase
	User      usecase.UserUsecase
	Skill     *usecase.Skill
	UserSkill usecase.UserSkillUsecase
	Search    usecase.SearchUsecase
	Matching  usecase.MatchingUsecase
	Learning  usecase.LearningUsecase
	Swap      usecase.SwapUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return NewContainerWithDB(cfg, logger, db), nil
}

// NewContainerWithDB wires the container around an existing connection.
func NewContainerWithDB(cfg config.Config, logger *log.Logger, db database.DB) *Container {
	if logger == nil {
		logger = log.Default()
	}
	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		Hub:    ws.NewHub(logger),
		JWT:    jwt.NewFromConfig(cfg.JWT, cfg.App.AppName),
	}
	c.wireUsecases()
	return c
}

func (c *Container) wireUsecases() {
	users := repository.NewPostgresUserRepository(c.DB)
	profiles := repository.NewPostgresProfileRepository(c.DB)
	skills := repository.NewPostgresSkillRepository(c.DB)
	userSkills := repository.NewPostgresUserSkillRepository(c.DB)
	swaps := repository.NewPostgresSwapRequestRepository(c.DB)

	c.Auth = usecase.NewAuthUsecase(users, c.JWT)
	c.User = usecase.NewUserUsecase(users, profiles)
	c.Skill = usecase.NewSkillUsecase(skills, c.Cache, c.Logger)
	c.UserSkill = usecase.NewUserSkillUsecase(userSkills, skills, c.Skill)
	c.Search = usecase.NewSearchUsecase(c.Skill, profiles, c.Cache, c.Config.Matching)
	c.Matching = usecase.NewMatchingUsecase(profiles, c.Config.Matching)
	c.Learning = usecase.NewLearningUsecase(profiles)
	c.Swap = usecase.NewSwapUsecase(swaps, userSkills, users, c.Hub, c.Logger)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
