package note

import "gorm.io/gorm"

type NoteContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewNoteContainer(db *gorm.DB, images ImageStore) *NoteContainer {
	repo := NewRepository(db)
	service := NewService(repo, images)
	handler := NewHandler(service)

	return &NoteContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
