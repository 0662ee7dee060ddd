package project

import (
	"fmt"
	"time"
)

// Project is the container that owns work items and column definitions.
type Project struct {
	id        uint
	name      string
	ownerID   uint
	createdAt time.Time
}

func NewProject(name string, ownerID uint) (*Project, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("project name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("project name exceeds maximum length of 100 characters")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	return &Project{
		name:      name,
		ownerID:   ownerID,
		createdAt: time.Now(),
	}, nil
}

func Reconstruct(id uint, name string, ownerID uint, createdAt time.Time) (*Project, error) {
	if id == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}
	return &Project{
		id:        id,
		name:      name,
		ownerID:   ownerID,
		createdAt: createdAt,
	}, nil
}

func (p *Project) ID() uint             { return p.id }
func (p *Project) Name() string         { return p.name }
func (p *Project) OwnerID() uint        { return p.ownerID }
func (p *Project) CreatedAt() time.Time { return p.createdAt }

func (p *Project) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("project ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	p.id = id
	return nil
}
