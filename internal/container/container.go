package container

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"

	"dental-tracker-api/internal/activity"
	"dental-tracker-api/internal/auth"
	"dental-tracker-api/internal/config"
	"dental-tracker-api/internal/goal"
	"dental-tracker-api/internal/note"
	"dental-tracker-api/internal/router"
	"dental-tracker-api/internal/storage"
	"dental-tracker-api/internal/tip"
	"dental-tracker-api/internal/user"
)

type Container struct {
	Config            config.Config
	UserContainer     *user.UserContainer
	GoalContainer     *goal.GoalContainer
	ActivityContainer *activity.ActivityContainer
	NoteContainer     *note.NoteContainer
	TipContainer      *tip.TipContainer
}

func New(cfg config.Config) *Container {
	auth.Init(cfg.JWTSecret)

	if err := config.Connect(context.Background(), cfg); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	db := config.DB

	if err := db.AutoMigrate(
		&user.User{},
		&goal.Goal{},
		&activity.Activity{},
		&note.Note{},
		&tip.Tip{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	// the activity repository backs both the activity endpoints and the
	// guarded goal deletion flow
	activityRepo := activity.NewRepository(db)

	userContainer := user.NewUserContainer(db, cfg.JWTExpiry)
	goalContainer := goal.NewGoalContainer(db, activityRepo)
	activityContainer := activity.NewActivityContainer(activityRepo, goalContainer.Repo)
	noteContainer := note.NewNoteContainer(db, storage.NewDiskImageStore(cfg.UploadDir))
	tipContainer := tip.NewTipContainer(db)

	if err := tip.Seed(tipContainer.Repo); err != nil {
		log.Fatalf("failed to seed tips: %v", err)
	}

	return &Container{
		Config:            cfg,
		UserContainer:     userContainer,
		GoalContainer:     goalContainer,
		ActivityContainer: activityContainer,
		NoteContainer:     noteContainer,
		TipContainer:      tipContainer,
	}
}

// Router builds the HTTP route tree shared by the server and lambda
// entrypoints.
func (c *Container) Router() *chi.Mux {
	return router.New(router.RouterConfig{
		UserHandler:     c.UserContainer.Handler,
		GoalHandler:     c.GoalContainer.Handler,
		ActivityHandler: c.ActivityContainer.Handler,
		NoteHandler:     c.NoteContainer.Handler,
		TipHandler:      c.TipContainer.Handler,
		AllowedOrigins:  c.Config.AllowedOrigins(),
	})
}
