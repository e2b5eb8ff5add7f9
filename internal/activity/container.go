package activity

type ActivityContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

// NewActivityContainer wires the activity store against the goal store that
// backs the ownership re-check on creation.
func NewActivityContainer(repo Repository, goals GoalStore) *ActivityContainer {
	service := NewService(repo, goals)
	handler := NewHandler(service)

	return &ActivityContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
