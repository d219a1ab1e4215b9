package grid

// Cell is a single lattice square. Its position never changes; role, mark
// and distance are mutable and owned by whoever holds the Grid.
type Cell struct {
	pos      Position
	role     Role
	mark     Mark
	distance int
}

// Position returns the cell coordinates.
func (c *Cell) Position() Position { return c.pos }

// Row returns the cell row.
func (c *Cell) Row() int { return c.pos.Row }

// Col returns the cell column.
func (c *Cell) Col() int { return c.pos.Col }

// Role returns the current role.
func (c *Cell) Role() Role { return c.role }

// Mark returns the current per-run mark.
func (c *Cell) Mark() Mark { return c.mark }

// Distance returns the hop count recorded by the last depth-first run.
func (c *Cell) Distance() int { return c.distance }

func (c *Cell) IsBarrier() bool { return c.role == RoleBarrier }
func (c *Cell) IsStart() bool   { return c.role == RoleStart }
func (c *Cell) IsEnd() bool     { return c.role == RoleEnd }
func (c *Cell) IsOpen() bool    { return c.mark == MarkOpen }
func (c *Cell) IsClosed() bool  { return c.mark == MarkClosed }
func (c *Cell) IsPath() bool    { return c.mark == MarkPath }

// MarkStart makes the cell the start. Any previous role is replaced.
func (c *Cell) MarkStart() { c.role = RoleStart }

// MarkEnd makes the cell the end. Any previous role is replaced.
func (c *Cell) MarkEnd() { c.role = RoleEnd }

// MarkBarrier makes the cell non-traversable and drops any run mark.
func (c *Cell) MarkBarrier() {
	c.role = RoleBarrier
	c.mark = MarkNone
}

func (c *Cell) MarkOpen()   { c.mark = MarkOpen }
func (c *Cell) MarkClosed() { c.mark = MarkClosed }
func (c *Cell) MarkPath()   { c.mark = MarkPath }

// SetDistance records the depth-first hop count.
func (c *Cell) SetDistance(d int) { c.distance = d }

// ClearMark drops the run mark and distance but keeps the role.
func (c *Cell) ClearMark() {
	c.mark = MarkNone
	c.distance = 0
}

// Reset returns the cell to an empty traversable square.
func (c *Cell) Reset() {
	c.role = RoleNone
	c.ClearMark()
}
