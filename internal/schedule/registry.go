package schedule

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/javiermolinar/classgrid/internal/grid"
	"github.com/javiermolinar/classgrid/internal/recurrence"
)

// group is one master and the repeats derived from it.
type group struct {
	master  *Block
	repeats []*Block
}

// ReconcileResult reports what a reconciliation did to a group.
type ReconcileResult struct {
	Found   bool // false when the master does not exist
	Synced  bool // existing repeats kept and synchronized
	Removed int
	Created int
}

// Registry owns every block on the grid. Blocks are handed out as copies;
// the registry is the only place a block is mutated.
type Registry struct {
	logger *zap.Logger

	nextID int64
	blocks map[int64]*Block
	order  []int64 // insertion order
	groups map[uuid.UUID]*group

	newGroupID func() uuid.UUID
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithGroupIDs overrides the group id generator.
func WithGroupIDs(fn func() uuid.UUID) RegistryOption {
	return func(r *Registry) {
		if fn != nil {
			r.newGroupID = fn
		}
	}
}

// NewRegistry creates an empty registry. A nil logger disables logging.
func NewRegistry(logger *zap.Logger, opts ...RegistryOption) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{
		logger:     logger,
		nextID:     1,
		blocks:     make(map[int64]*Block),
		groups:     make(map[uuid.UUID]*group),
		newGroupID: uuid.New,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Len returns the number of blocks, repeats included.
func (r *Registry) Len() int {
	return len(r.order)
}

// Blocks returns copies of all blocks in insertion order.
func (r *Registry) Blocks() []Block {
	out := make([]Block, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.blocks[id])
	}
	return out
}

// Block returns a copy of the block with the given id.
func (r *Registry) Block(id int64) (Block, bool) {
	b, ok := r.blocks[id]
	if !ok {
		return Block{}, false
	}
	return *b, true
}

// Group returns the master and repeats of a group.
func (r *Registry) Group(groupID uuid.UUID) (master Block, repeats []Block, ok bool) {
	g, ok := r.groups[groupID]
	if !ok {
		return Block{}, nil, false
	}
	repeats = make([]Block, 0, len(g.repeats))
	for _, rep := range g.repeats {
		repeats = append(repeats, *rep)
	}
	return *g.master, repeats, true
}

// BlocksInGroup returns every block carrying groupID.
func (r *Registry) BlocksInGroup(groupID uuid.UUID) []Block {
	var out []Block
	for _, id := range r.order {
		if b := r.blocks[id]; b.GroupID == groupID {
			out = append(out, *b)
		}
	}
	return out
}

// CreateMaster places a new master block and derives its repeats.
func (r *Registry) CreateMaster(day grid.Day, start, duration int) (Block, error) {
	if !day.Valid() {
		return Block{}, ErrInvalidDay
	}
	if duration < grid.MinDuration {
		return Block{}, fmt.Errorf("%w: %d < %d", ErrDurationTooShort, duration, grid.MinDuration)
	}
	if day.Restricted() && start < grid.RestrictedFloor {
		return Block{}, fmt.Errorf("%w: %s at %s", ErrBeforeFloor, day, grid.FormatClock(start))
	}

	master := &Block{
		ID:             r.allocID(),
		Day:            day,
		StartMinute:    start,
		DurationMinute: duration,
		Role:           RoleMaster,
		GroupID:        r.newGroupID(),
	}
	r.insert(master)
	r.groups[master.GroupID] = &group{master: master}

	r.logger.Debug("master created",
		zap.Int64("id", master.ID),
		zap.String("day", day.String()),
		zap.Int("start", start),
		zap.Int("duration", duration),
		zap.String("group", master.GroupID.String()))

	r.ReconcileRepeats(master.ID, true)
	return *master, nil
}

// SetGeometry updates a master's start and duration and mirrors them onto
// its repeats. The repeat set is not recomputed.
func (r *Registry) SetGeometry(id int64, start, duration int) error {
	b, ok := r.blocks[id]
	if !ok {
		return ErrBlockNotFound
	}
	if b.Role != RoleMaster {
		return ErrNotMaster
	}
	b.StartMinute = start
	b.DurationMinute = duration
	r.SyncGroup(id)
	return nil
}

// SetAssignment sets the professor or class of a master and syncs its group.
func (r *Registry) SetAssignment(id int64, kind AssignmentKind, value string) error {
	b, ok := r.blocks[id]
	if !ok {
		return ErrBlockNotFound
	}
	if b.Role != RoleMaster {
		return ErrNotMaster
	}
	switch kind {
	case KindProfessor:
		b.Professor = value
	case KindClass:
		b.Class = value
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAssignment, kind)
	}
	r.logger.Debug("assignment set",
		zap.Int64("id", id),
		zap.String("kind", string(kind)),
		zap.String("value", value))
	r.SyncGroup(id)
	return nil
}

// SyncGroup copies the master's start, duration, professor and class onto
// every repeat of its group. Unknown ids and repeats are ignored.
func (r *Registry) SyncGroup(masterID int64) {
	g := r.groupOfMaster(masterID)
	if g == nil || len(g.repeats) == 0 {
		return
	}
	for _, rep := range g.repeats {
		copyShape(rep, g.master)
	}
	r.logger.Debug("group synced",
		zap.String("group", g.master.GroupID.String()),
		zap.Int("repeats", len(g.repeats)))
}

// ReconcileRepeats recomputes the repeat set of a master from its current
// day and duration. When the existing repeats already cover the expected
// days and force is false, they are only synchronized. Otherwise all
// repeats are destroyed and recreated.
func (r *Registry) ReconcileRepeats(masterID int64, force bool) ReconcileResult {
	g := r.groupOfMaster(masterID)
	if g == nil {
		return ReconcileResult{}
	}
	master := g.master
	expected := recurrence.Expected(master.Day, master.DurationMinute)

	r.logger.Debug("checking repeats",
		zap.String("day", master.Day.String()),
		zap.Int("duration", master.DurationMinute),
		zap.Int("expected", len(expected)))

	result := ReconcileResult{Found: true}
	if !force && recurrence.SameDays(r.repeatDays(g), expected) {
		r.logger.Debug("pattern unchanged, syncing existing repeats")
		r.SyncGroup(masterID)
		result.Synced = true
		return result
	}

	if len(g.repeats) > 0 {
		r.logger.Debug("pattern changed or forced, removing old repeats",
			zap.Int("count", len(g.repeats)))
		for _, rep := range g.repeats {
			r.remove(rep.ID)
		}
		result.Removed = len(g.repeats)
		g.repeats = nil
	}

	if len(expected) == 0 {
		r.logger.Debug("no repeats expected")
		return result
	}

	r.logger.Debug("creating repeats", zap.Int("count", len(expected)))
	for _, exp := range expected {
		rep := &Block{
			ID:      r.allocID(),
			Day:     exp.Day,
			Role:    RoleRepeat,
			GroupID: master.GroupID,
			Pattern: exp.Pattern,
		}
		copyShape(rep, master)
		r.insert(rep)
		g.repeats = append(g.repeats, rep)
		r.logger.Debug("repeat created",
			zap.String("day", exp.Day.String()),
			zap.String("group", master.GroupID.String()))
	}
	result.Created = len(expected)
	return result
}

// DeleteMaster removes a master and its whole group. It reports whether
// anything was removed.
func (r *Registry) DeleteMaster(masterID int64) bool {
	g := r.groupOfMaster(masterID)
	if g == nil {
		return false
	}
	for _, rep := range g.repeats {
		r.remove(rep.ID)
	}
	r.remove(g.master.ID)
	delete(r.groups, g.master.GroupID)
	r.logger.Debug("group deleted",
		zap.String("group", g.master.GroupID.String()),
		zap.Int("repeats", len(g.repeats)))
	return true
}

func (r *Registry) groupOfMaster(masterID int64) *group {
	b, ok := r.blocks[masterID]
	if !ok || b.Role != RoleMaster {
		return nil
	}
	g, ok := r.groups[b.GroupID]
	if !ok || g.master != b {
		return nil
	}
	return g
}

func (r *Registry) repeatDays(g *group) []grid.Day {
	days := make([]grid.Day, 0, len(g.repeats))
	for _, rep := range g.repeats {
		days = append(days, rep.Day)
	}
	return days
}

func (r *Registry) allocID() int64 {
	id := r.nextID
	r.nextID++
	return id
}

func (r *Registry) insert(b *Block) {
	r.blocks[b.ID] = b
	r.order = append(r.order, b.ID)
}

func (r *Registry) remove(id int64) {
	delete(r.blocks, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
}

func copyShape(dst, src *Block) {
	dst.StartMinute = src.StartMinute
	dst.DurationMinute = src.DurationMinute
	dst.Professor = src.Professor
	dst.Class = src.Class
}
