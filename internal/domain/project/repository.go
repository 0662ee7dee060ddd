package project

import "context"

type Repository interface {
	Create(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, id uint) (*Project, error)
	List(ctx context.Context) ([]*Project, error)
}
