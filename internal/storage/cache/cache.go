package cache

import (
	"sync"

	"github.com/yukimo/studytrack.git/internal/models"
)

// Subjects is the in-memory subject lookup shared by the aggregator
// and the views. It is refilled on every subject fetch and consulted
// by id when records are projected for display.
type Subjects struct {
	mu       sync.Mutex
	subjects map[int64]models.Subject
}

func NewSubjects() *Subjects {
	return &Subjects{
		subjects: make(map[int64]models.Subject),
	}
}

// Fill replaces the cached set with a fresh subject list.
func (c *Subjects) Fill(subjects []models.Subject) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subjects = make(map[int64]models.Subject, len(subjects))
	for _, s := range subjects {
		c.subjects[s.ID] = s
	}
}

func (c *Subjects) Get(id int64) (models.Subject, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, exists := c.subjects[id]
	return s, exists
}

func (c *Subjects) Set(subject models.Subject) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subjects[subject.ID] = subject
}

func (c *Subjects) Delete(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.subjects, id)
}

// All returns the cached subjects in unspecified order.
func (c *Subjects) All() []models.Subject {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Subject, 0, len(c.subjects))
	for _, s := range c.subjects {
		out = append(out, s)
	}
	return out
}
