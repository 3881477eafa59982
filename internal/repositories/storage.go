package repositories

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"gym-maintenance/internal/entities"
)

// Querier is the handle repositories run against: the Storage itself, or the
// transaction handed out by WithTx.
type Querier interface {
	view(fn func(d *dataset))
	update(fn func(d *dataset) error) error
	now() time.Time
	// nextID must only be called from inside update.
	nextID(prefix string) string
}

type dataset struct {
	units         []entities.Unit
	equipments    []entities.Equipment
	calls         []entities.TechnicalCall
	checklists    []entities.Checklist
	users         []entities.User
	notifications []entities.Notification
}

func (d *dataset) clone() *dataset {
	c := &dataset{
		units:         slices.Clone(d.units),
		equipments:    slices.Clone(d.equipments),
		calls:         make([]entities.TechnicalCall, len(d.calls)),
		checklists:    make([]entities.Checklist, len(d.checklists)),
		users:         make([]entities.User, len(d.users)),
		notifications: slices.Clone(d.notifications),
	}
	for i, call := range d.calls {
		c.calls[i] = call.Clone()
	}
	for i, chk := range d.checklists {
		c.checklists[i] = chk.Clone()
	}
	for i, u := range d.users {
		c.users[i] = u.Clone()
	}
	return c
}

// Storage owns every collection of the service. All access goes through the
// repositories built on top of it.
type Storage struct {
	mu        sync.RWMutex
	data      *dataset
	clock     func() time.Time
	lastStamp int64
}

type Option func(*Storage)

func WithClock(clock func() time.Time) Option {
	return func(s *Storage) {
		s.clock = clock
	}
}

func NewStorage(opts ...Option) *Storage {
	s := &Storage{
		data:  &dataset{},
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now is the storage clock, shared with services that stamp dates.
func (s *Storage) Now() time.Time {
	return s.clock()
}

func (s *Storage) view(fn func(d *dataset)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.data)
}

func (s *Storage) update(fn func(d *dataset) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

func (s *Storage) now() time.Time {
	return s.clock()
}

// nextID returns PREFIX-<epoch ms>. A stamp not greater than the previous one
// is bumped, so ids stay unique within the process.
func (s *Storage) nextID(prefix string) string {
	stamp := s.clock().UnixMilli()
	if stamp <= s.lastStamp {
		stamp = s.lastStamp + 1
	}
	s.lastStamp = stamp
	return fmt.Sprintf("%s-%d", prefix, stamp)
}

// Snapshot is a deep copy of every collection taken under one read lock.
type Snapshot struct {
	Units         []entities.Unit          `yaml:"units"`
	Equipments    []entities.Equipment     `yaml:"equipments"`
	Calls         []entities.TechnicalCall `yaml:"calls"`
	Checklists    []entities.Checklist     `yaml:"checklists"`
	Users         []entities.User          `yaml:"users"`
	Notifications []entities.Notification  `yaml:"notifications"`
}

func (s *Storage) Snapshot() Snapshot {
	var snap Snapshot
	s.view(func(d *dataset) {
		c := d.clone()
		snap = Snapshot{
			Units:         c.units,
			Equipments:    c.equipments,
			Calls:         c.calls,
			Checklists:    c.checklists,
			Users:         c.users,
			Notifications: c.notifications,
		}
	})
	return snap
}

// Load replaces every collection with the records of snap, keeping their ids.
func (s *Storage) Load(snap Snapshot) {
	loaded := (&dataset{
		units:         snap.Units,
		equipments:    snap.Equipments,
		calls:         snap.Calls,
		checklists:    snap.Checklists,
		users:         snap.Users,
		notifications: snap.Notifications,
	}).clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = loaded
}
