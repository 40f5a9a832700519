package board

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/dragboard/internal/dnd"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/projects"
	"github.com/thenoetrevino/dragboard/internal/tui/view"
)

func newTestBoard(t *testing.T) (*Board, *projects.Registry) {
	t.Helper()
	reg := projects.NewRegistry()
	b, err := New(reg, nil)
	require.NoError(t, err)
	return b, reg
}

func ids(ps []*models.Project) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestNew_LaneIdentifiers(t *testing.T) {
	b, _ := newTestBoard(t)
	doc := b.doc

	require.Len(t, b.Lanes(), 2)
	assert.NotNil(t, doc.GetElementByID("active-projects"))
	assert.NotNil(t, doc.GetElementByID("finished-projects"))
	assert.NotNil(t, doc.GetElementByID("active-projects-list"))
	assert.NotNil(t, doc.GetElementByID("finished-projects-list"))
	assert.Equal(t, "ACTIVE PROJECTS", b.Lane(models.StatusActive).Title())
	assert.Equal(t, "FINISHED PROJECTS", b.Lane(models.StatusFinished).Title())
}

func TestLane_RendersOnNotification(t *testing.T) {
	b, reg := newTestBoard(t)

	p := reg.AddProject("Build site", "desc", 2)

	active := b.Lane(models.StatusActive)
	require.Len(t, active.AssignedProjects(), 1)
	assert.Equal(t, p.ID, active.AssignedProjects()[0].ID)
	assert.Empty(t, b.Lane(models.StatusFinished).AssignedProjects())

	card := b.doc.GetElementByID(p.ID)
	require.NotNil(t, card)
	assert.Equal(t, "Build site", card.MustQuery("h2").Text)
	assert.Equal(t, "2 persons assigned.", card.MustQuery("h3").Text)
	assert.Equal(t, "desc", card.MustQuery("p").Text)
	assert.Equal(t, "active-projects-list", card.Parent().ID)
}

func TestLane_InitialRenderFromExistingProjects(t *testing.T) {
	reg := projects.NewRegistry()
	x := reg.AddProject("x", "", 1)
	y := reg.AddProject("y", "", 1)
	reg.MoveProject(y.ID, models.StatusFinished)

	b, err := New(reg, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{x.ID}, ids(b.Lane(models.StatusActive).AssignedProjects()))
	assert.Equal(t, []string{y.ID}, ids(b.Lane(models.StatusFinished).AssignedProjects()))
}

func TestMove_UpdatesBothLanes(t *testing.T) {
	b, reg := newTestBoard(t)
	x := reg.AddProject("x", "", 1)
	y := reg.AddProject("y", "", 1)

	notifications := 0
	reg.AddListener(func([]*models.Project) { notifications++ })

	reg.MoveProject(x.ID, models.StatusFinished)

	assert.Equal(t, 1, notifications)
	assert.Equal(t, []string{y.ID}, ids(b.Lane(models.StatusActive).AssignedProjects()))
	assert.Equal(t, []string{x.ID}, ids(b.Lane(models.StatusFinished).AssignedProjects()))
	assert.Equal(t, "finished-projects-list", b.doc.GetElementByID(x.ID).Parent().ID)
}

func TestRenderProjects_FullRebuildKeepsSequenceOrder(t *testing.T) {
	b, reg := newTestBoard(t)
	var added []string
	for i := range 4 {
		added = append(added, reg.AddProject(fmt.Sprintf("p%d", i), "", 1).ID)
	}
	reg.MoveProject(added[1], models.StatusFinished)
	reg.MoveProject(added[1], models.StatusActive)

	list := b.doc.GetElementByID(ListID(models.StatusActive))
	var rendered []string
	for _, c := range list.Children() {
		rendered = append(rendered, c.ID)
	}
	assert.Equal(t, added, rendered, "cards follow registry insertion order, not move order")
	assert.Len(t, b.Lane(models.StatusActive).Items(), 4)
}

// The lanes partition the registry: disjoint and complete
func TestLanes_PartitionRegistry(t *testing.T) {
	b, reg := newTestBoard(t)
	rng := rand.New(rand.NewSource(7))

	var all []string
	for i := range 20 {
		all = append(all, reg.AddProject(fmt.Sprintf("p%d", i), "", i).ID)
	}
	statuses := models.Statuses()
	for range 60 {
		reg.MoveProject(all[rng.Intn(len(all))], statuses[rng.Intn(len(statuses))])

		seen := map[string]int{}
		for _, lane := range b.Lanes() {
			for _, p := range lane.AssignedProjects() {
				assert.Equal(t, lane.Status(), p.Status)
				seen[p.ID]++
			}
		}
		require.Len(t, seen, len(all))
		for id, n := range seen {
			assert.Equal(t, 1, n, "project %s appears in %d lanes", id, n)
		}
	}
}

func TestProjectItem_DragStart(t *testing.T) {
	b, reg := newTestBoard(t)
	y := reg.AddProject("y", "", 1)

	item := b.ItemByID(y.ID)
	require.NotNil(t, item)

	e := &dnd.DragEvent{Type: dnd.DragStart, Transfer: dnd.NewDataTransfer()}
	item.DragStartHandler(e)

	assert.Equal(t, y.ID, e.Transfer.GetData(dnd.MediaTypeText))
	assert.Equal(t, dnd.EffectMove, e.Transfer.EffectAllowed)
	assert.Equal(t, []string{dnd.MediaTypeText}, e.Transfer.Types())
}

func TestDragOver_AcceptsTextPayload(t *testing.T) {
	b, _ := newTestBoard(t)
	lane := b.Lane(models.StatusFinished)

	dt := dnd.NewDataTransfer()
	dt.SetData(dnd.MediaTypeText, "anything")
	e := &dnd.DragEvent{Type: dnd.DragOver, Transfer: dt}
	lane.DragOverHandler(e)

	assert.True(t, e.DefaultPrevented())
	assert.True(t, lane.Droppable())
	assert.Equal(t, DragOver, lane.State())

	lane.DragLeaveHandler(&dnd.DragEvent{Type: dnd.DragLeave, Transfer: dt})
	assert.False(t, lane.Droppable())
	assert.Equal(t, Idle, lane.State())
}

func TestDragOver_IgnoresOtherMediaTypes(t *testing.T) {
	b, _ := newTestBoard(t)
	lane := b.Lane(models.StatusFinished)

	dt := dnd.NewDataTransfer()
	dt.SetData("text/uri-list", "https://example.com")
	dt.SetData(dnd.MediaTypeText, "p1")
	e := &dnd.DragEvent{Type: dnd.DragOver, Transfer: dt}
	lane.DragOverHandler(e)

	assert.False(t, e.DefaultPrevented())
	assert.False(t, lane.Droppable())
	assert.Equal(t, Idle, lane.State())
}

func TestDrop_MovesProjectAndClearsMarker(t *testing.T) {
	b, reg := newTestBoard(t)
	x := reg.AddProject("x", "", 1)
	lane := b.Lane(models.StatusFinished)

	var s dnd.Session
	s.Begin(b.ItemByID(x.ID))
	s.Over(lane)
	require.True(t, lane.Droppable())

	res := s.Release()

	assert.True(t, res.Dropped)
	assert.False(t, lane.Droppable())
	assert.Equal(t, Idle, lane.State())
	got, _ := reg.Get(x.ID)
	assert.Equal(t, models.StatusFinished, got.Status)
	assert.Equal(t, []string{x.ID}, ids(lane.AssignedProjects()))
}

func TestDrop_SameLaneDoesNotNotify(t *testing.T) {
	b, reg := newTestBoard(t)
	x := reg.AddProject("x", "", 1)
	lane := b.Lane(models.StatusActive)

	notifications := 0
	reg.AddListener(func([]*models.Project) { notifications++ })
	before := lane.Items()

	var s dnd.Session
	s.Begin(b.ItemByID(x.ID))
	s.Over(lane)
	s.Release()

	assert.Zero(t, notifications)
	assert.Same(t, before[0], lane.Items()[0], "no re-render on a no-op move")
	assert.False(t, lane.Droppable())
}

func TestDrop_UnknownIDIsIgnored(t *testing.T) {
	b, reg := newTestBoard(t)
	reg.AddProject("x", "", 1)
	lane := b.Lane(models.StatusFinished)

	notifications := 0
	reg.AddListener(func([]*models.Project) { notifications++ })

	dt := dnd.NewDataTransfer()
	dt.SetData(dnd.MediaTypeText, "stale-id")
	lane.DropHandler(&dnd.DragEvent{Type: dnd.Drop, Transfer: dt})

	assert.Zero(t, notifications)
	assert.Empty(t, lane.AssignedProjects())
}

func TestBoard_LaneLookups(t *testing.T) {
	b, _ := newTestBoard(t)

	assert.Equal(t, 0, b.LaneIndex(models.StatusActive))
	assert.Equal(t, 1, b.LaneIndex(models.StatusFinished))
	assert.Nil(t, b.LaneAt(-1))
	assert.Nil(t, b.LaneAt(2))
	assert.Equal(t, b.Lane(models.StatusFinished), b.LaneAt(1))
	assert.Nil(t, b.ItemByID("missing"))
	assert.Equal(t, view.AppHostID, b.LaneAt(0).Element().Parent().ID)
}

func TestDrop_NilTransferIsIgnored(t *testing.T) {
	b, reg := newTestBoard(t)
	reg.AddProject("x", "", 1)
	lane := b.Lane(models.StatusFinished)
	lane.DragOverHandler(&dnd.DragEvent{Type: dnd.DragOver, Transfer: dnd.NewDataTransfer()})

	notifications := 0
	reg.AddListener(func([]*models.Project) { notifications++ })

	assert.NotPanics(t, func() {
		lane.DropHandler(&dnd.DragEvent{Type: dnd.Drop})
	})
	assert.Zero(t, notifications)
	assert.False(t, lane.Droppable())
	assert.Equal(t, Idle, lane.State())
}

// Project ids that collide with lane element ids must not redirect a
// lane's rebuild into another lane's list.
func TestRenderProjects_IDsMatchingLaneIDs(t *testing.T) {
	generated := []string{ListID(models.StatusFinished), "b", ElementID(models.StatusFinished)}
	n := 0
	reg := projects.NewRegistry(projects.WithIDGenerator(func() string {
		id := generated[n]
		n++
		return id
	}))
	b, err := New(reg, nil)
	require.NoError(t, err)

	first := reg.AddProject("a", "", 1)
	second := reg.AddProject("b", "", 1)
	third := reg.AddProject("c", "", 1)
	reg.MoveProject(second.ID, models.StatusFinished)

	assert.Equal(t, []string{first.ID, third.ID}, ids(b.Lane(models.StatusActive).AssignedProjects()))
	assert.Len(t, b.Lane(models.StatusActive).Items(), 2)
	assert.Len(t, b.Lane(models.StatusFinished).Items(), 1)

	activeList := b.Lane(models.StatusActive).Element().MustQuery("ul")
	finishedList := b.Lane(models.StatusFinished).Element().MustQuery("ul")
	assert.Len(t, activeList.Children(), 2)
	require.Len(t, finishedList.Children(), 1)
	assert.Equal(t, second.ID, finishedList.Children()[0].ID)
}
