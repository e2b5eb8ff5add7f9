package tip

import "gorm.io/gorm"

type TipContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewTipContainer(db *gorm.DB) *TipContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &TipContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
